package tree

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFind(t *testing.T) {
	roots := SampleProject()

	node := Find(roots, "app.js")
	if node == nil {
		t.Fatal("Find(app.js) returned nil")
	}
	if node.Kind != File {
		t.Errorf("Kind = %q, want %q", node.Kind, File)
	}
	if node.Language != "js" {
		t.Errorf("Language = %q, want %q", node.Language, "js")
	}

	if Find(roots, "missing.txt") != nil {
		t.Error("Find(missing.txt) should return nil")
	}
	// Folder names are not file matches.
	if Find(roots, "src") != nil {
		t.Error("Find(src) matched a folder")
	}
}

func TestWalkOrder(t *testing.T) {
	roots := SampleProject()

	var names []string
	Walk(roots, func(n *Node, depth int) {
		names = append(names, n.Name)
	})

	want := []string{"src", "index.html", "styles.css", "app.js", "README.md", "notes.txt"}
	if len(names) != len(want) {
		t.Fatalf("walked %d nodes, want %d: %v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("walk[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "b.txt"), "bee")
	mustWrite(t, filepath.Join(dir, "a.txt"), "ay")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	mustWrite(t, filepath.Join(dir, "sub", "c.css"), "p { color: red }")
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	roots, err := FromDir(dir)
	if err != nil {
		t.Fatalf("FromDir: %v", err)
	}

	// Folders first, then files, both sorted; dot dirs skipped.
	want := []string{"sub", "a.txt", "b.txt"}
	if len(roots) != len(want) {
		t.Fatalf("got %d roots, want %d", len(roots), len(want))
	}
	for i := range want {
		if roots[i].Name != want[i] {
			t.Errorf("roots[%d] = %q, want %q", i, roots[i].Name, want[i])
		}
	}

	if roots[0].Kind != Folder {
		t.Errorf("sub Kind = %q, want folder", roots[0].Kind)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].Name != "c.css" {
		t.Fatalf("sub children = %+v", roots[0].Children)
	}
	if got := roots[0].Children[0].Content; got != "p { color: red }" {
		t.Errorf("c.css content = %q", got)
	}
	if roots[1].Content != "ay" {
		t.Errorf("a.txt content = %q, want %q", roots[1].Content, "ay")
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}
