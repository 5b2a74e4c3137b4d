package editor

import "testing"

func TestLeadingIndent(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"no indent", "hello", ""},
		{"spaces", "    hello", "    "},
		{"tab", "\thello", "\t"},
		{"mixed", " \t code", " \t "},
		{"whitespace only", "   ", "   "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LeadingIndent(tt.line); got != tt.want {
				t.Errorf("LeadingIndent(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestInsertIndent(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		selStart  int
		selEnd    int
		wantText  string
		wantCaret int
	}{
		{"at start", "ab", 0, 0, "  ab", 2},
		{"middle", "ab", 1, 1, "a  b", 3},
		{"at end", "ab", 2, 2, "ab  ", 4},
		{"collapses selection", "abcdef", 1, 4, "a  ef", 3},
		{"empty text", "", 0, 0, "  ", 2},
		{"out of range clamps", "ab", 5, 9, "ab  ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotCaret := InsertIndent(tt.text, tt.selStart, tt.selEnd)
			if gotText != tt.wantText || gotCaret != tt.wantCaret {
				t.Errorf("InsertIndent(%q, %d, %d) = (%q, %d), want (%q, %d)",
					tt.text, tt.selStart, tt.selEnd, gotText, gotCaret, tt.wantText, tt.wantCaret)
			}
			// Exactly two characters inserted.
			if len(gotText) != len(tt.text)-(min(tt.selEnd, len(tt.text))-min(tt.selStart, len(tt.text)))+2 {
				t.Errorf("inserted length mismatch: %q from %q", gotText, tt.text)
			}
		})
	}
}

func TestBreakLine(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		selStart   int
		selEnd     int
		wantText   string
		wantCaret  int
		wantIndent string
	}{
		{"no indent", "abc", 3, 3, "abc\n", 4, ""},
		{"copies four spaces", "    abc", 7, 7, "    abc\n", 8, "    "},
		{"tab indent", "\tabc", 4, 4, "\tabc\n", 5, "\t"},
		{"mid line", "  ab", 3, 3, "  a\nb", 4, "  "},
		{"second line indent", "x\n  y", 5, 5, "x\n  y\n", 6, "  "},
		{"selection replaced", "  abcd", 3, 5, "  a\nd", 4, "  "},
		{"indent before caret only", "  ab", 1, 1, " \n ab", 2, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotCaret, gotIndent := BreakLine(tt.text, tt.selStart, tt.selEnd)
			if gotText != tt.wantText {
				t.Errorf("text = %q, want %q", gotText, tt.wantText)
			}
			if gotCaret != tt.wantCaret {
				t.Errorf("caret = %d, want %d", gotCaret, tt.wantCaret)
			}
			if gotIndent != tt.wantIndent {
				t.Errorf("indent = %q, want %q", gotIndent, tt.wantIndent)
			}
		})
	}
}

func TestInsertAt(t *testing.T) {
	gotText, gotCaret := InsertAt("ab\n", 3, "  ")
	if gotText != "ab\n  " || gotCaret != 5 {
		t.Errorf("InsertAt = (%q, %d), want (%q, %d)", gotText, gotCaret, "ab\n  ", 5)
	}
}

func TestCurrentLineIndent(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   string
	}{
		{"first line", "  abc", 5, "  "},
		{"second line", "x\n    y", 7, "    "},
		{"offset inside indent", "    y", 2, "  "},
		{"empty", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentLineIndent(tt.text, tt.offset); got != tt.want {
				t.Errorf("CurrentLineIndent(%q, %d) = %q, want %q", tt.text, tt.offset, got, tt.want)
			}
		})
	}
}
