// Package tree models the file explorer's folder/file forest. The tree is
// read-only from the editor's point of view: opening a file copies its
// content into a tab and edits are never written back.
package tree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind discriminates folder and file nodes.
type Kind string

const (
	Folder Kind = "folder"
	File   Kind = "file"
)

// Node is one entry in the explorer tree.
type Node struct {
	Kind     Kind
	Name     string
	Expanded bool    // folders only
	Children []*Node // folders only, in display order
	Language string  // files only; "" means infer from the name
	Content  string  // files only, initial source text
}

// Find walks the tree depth-first and returns the first file node with the
// given name, or nil.
func Find(roots []*Node, name string) *Node {
	for _, n := range roots {
		if n.Kind == File && n.Name == name {
			return n
		}
		if n.Kind == Folder {
			if found := Find(n.Children, name); found != nil {
				return found
			}
		}
	}
	return nil
}

// Walk calls fn for every node, depth-first, parents before children.
func Walk(roots []*Node, fn func(n *Node, depth int)) {
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			if n.Kind == Folder {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(roots, 0)
}

// skipDirs are directories FromDir never descends into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// maxFileSize caps how much of a real file FromDir will load into a node.
const maxFileSize = 256 * 1024

// FromDir builds a tree from a real directory so the demo can browse an
// actual project. Folders sort before files, both alphabetically. Unreadable
// or oversized files become empty file nodes rather than errors.
func FromDir(root string) ([]*Node, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var folders, files []*Node
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				continue
			}
			children, err := FromDir(filepath.Join(root, name))
			if err != nil {
				continue
			}
			folders = append(folders, &Node{
				Kind:     Folder,
				Name:     name,
				Children: children,
			})
			continue
		}
		node := &Node{Kind: File, Name: name}
		if info, err := e.Info(); err == nil && info.Size() <= maxFileSize {
			if data, err := os.ReadFile(filepath.Join(root, name)); err == nil {
				node.Content = string(data)
			}
		}
		files = append(files, node)
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return append(folders, files...), nil
}
