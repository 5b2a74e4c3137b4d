package editor

import "strings"

// IndentUnit is what a structural tab key inserts: exactly two spaces.
const IndentUnit = "  "

// LeadingIndent returns the run of spaces and tabs at the start of line.
func LeadingIndent(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

// lineStart returns the index just after the nearest newline before offset,
// which is the start of the line containing offset.
func lineStart(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return strings.LastIndexByte(text[:offset], '\n') + 1
}

// CurrentLineIndent returns the leading whitespace of the line containing
// offset, looking only at text before the offset.
func CurrentLineIndent(text string, offset int) string {
	start := lineStart(text, offset)
	if offset > len(text) {
		offset = len(text)
	}
	return LeadingIndent(text[start:offset])
}

// clampSelection orders and bounds a selection against text.
func clampSelection(text string, selStart, selEnd int) (int, int) {
	if selStart < 0 {
		selStart = 0
	}
	if selStart > len(text) {
		selStart = len(text)
	}
	if selEnd < selStart {
		selEnd = selStart
	}
	if selEnd > len(text) {
		selEnd = len(text)
	}
	return selStart, selEnd
}

// InsertIndent collapses the selection into two literal spaces and returns
// the new text and the caret offset just after them.
func InsertIndent(text string, selStart, selEnd int) (string, int) {
	selStart, selEnd = clampSelection(text, selStart, selEnd)
	newText := text[:selStart] + IndentUnit + text[selEnd:]
	return newText, selStart + len(IndentUnit)
}

// BreakLine replaces the selection with a newline and returns the new text,
// the caret offset just after the newline, and the leading whitespace of the
// line the selection started on, captured from the pre-break text so the
// deferred auto-indent step can reuse it. The indent is copied verbatim; it
// never grows after an opening brace or shrinks after a closing one.
func BreakLine(text string, selStart, selEnd int) (newText string, caret int, indent string) {
	selStart, selEnd = clampSelection(text, selStart, selEnd)
	indent = CurrentLineIndent(text, selStart)
	newText = text[:selStart] + "\n" + text[selEnd:]
	return newText, selStart + 1, indent
}

// InsertAt inserts s at offset and returns the new text and the caret offset
// advanced past the insertion.
func InsertAt(text string, offset int, s string) (string, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return text[:offset] + s + text[offset:], offset + len(s)
}
