package editor

import "strings"

// TabExpansion is the two-space run every literal tab character becomes.
// Normalization is lossy and one-way: stored content never keeps tabs.
const TabExpansion = "  "

// EmptyMarkup is the placeholder the highlight layer shows for an empty
// document, so the overlay never collapses to zero height.
const EmptyMarkup = "&nbsp;"

// NoFileStatus is the status label for the valid zero-tabs-open state.
const NoFileStatus = "No file"

// Caret is a 1-based line/column position.
type Caret struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Frame is one recompute's output: everything the visual layers need to
// stay in sync with the text surface.
type Frame struct {
	Markup     string `json:"markup"`
	Lines      int    `json:"lines"`
	Caret      Caret  `json:"caret"`
	ScrollTop  int    `json:"scrollTop"`
	ScrollLeft int    `json:"scrollLeft"`
	Status     string `json:"status"`
}

// NormalizeTabs expands every literal tab to two spaces.
func NormalizeTabs(text string) string {
	return strings.ReplaceAll(text, "\t", TabExpansion)
}

// LineCount returns one entry per newline-delimited line, minimum one.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// CaretAt converts a byte offset into a line/column position: line is the
// newline count before offset plus one, column is the offset minus the index
// of the nearest preceding newline. Offsets outside the text are clamped.
func CaretAt(text string, offset int) Caret {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return Caret{Line: line, Col: col}
}
