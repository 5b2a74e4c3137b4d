package editor

import (
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"
)

// DefaultLanguage is the tag used when nothing better is known.
const DefaultLanguage = "plaintext"

// Tab is one open, independently edited instance of a file's content. Its
// content diverges from the originating tree node after edits; nothing is
// written back.
type Tab struct {
	ID       string // opaque, unique for the process lifetime
	Name     string
	Language string
	Content  string
}

func newTab(name, language, content string) *Tab {
	if language == "" {
		language = LanguageForFilename(name)
	}
	return &Tab{
		ID:       ulid.Make().String(),
		Name:     name,
		Language: language,
		Content:  content,
	}
}

// extLanguages maps file suffixes to language tags.
var extLanguages = map[string]string{
	".html": "html",
	".htm":  "html",
	".css":  "css",
	".js":   "js",
	".md":   "md",
}

// LanguageForFilename infers a language tag from a file name's extension,
// defaulting to plaintext.
func LanguageForFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if lang, ok := extLanguages[ext]; ok {
		return lang
	}
	return DefaultLanguage
}

// LanguageLabel returns the display label for a language tag: the tag
// upper-cased.
func LanguageLabel(tag string) string {
	return strings.ToUpper(tag)
}
