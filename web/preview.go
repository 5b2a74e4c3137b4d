package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// markdown renders preview pages; fenced code blocks get chroma styling.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
)

// handlePreview renders the active tab as a markdown preview page. Only
// markdown tabs have a preview; anything else answers 404.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	tab, ok := s.session.ActiveTab()
	if !ok || tab.Language != "md" {
		http.Error(w, "no markdown tab active", http.StatusNotFound)
		return
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(tab.Content), &body); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, previewShell, tab.Name, body.String())
}

const previewShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s preview</title>
<style>
body { max-width: 46rem; margin: 2rem auto; padding: 0 1rem;
       font-family: sans-serif; line-height: 1.5; }
pre { padding: 0.75rem; overflow-x: auto; border-radius: 4px; }
code { font-family: monospace; }
</style>
</head>
<body>
%s
</body>
</html>
`
