package highlight

import "regexp"

// jsKeywords is the fixed keyword list, word-boundary matched.
const jsKeywords = `const|let|var|function|return|if|else|for|while|switch|case|break|new|class|extends|import|from|export|default|try|catch`

// JS rules. Priority: comments, strings, numbers, keywords. A line comment
// inside a string literal still wins — accepted lexer flaw.
var jsRules = []rule{
	{re: regexp.MustCompile(`(?s)/\*.*?\*/`), class: "comment"},
	{re: regexp.MustCompile(`//[^\n]*`), class: "comment"},
	{re: regexp.MustCompile(`"(?:[^"\\\n]|\\.)*"`), class: "string"},
	{re: regexp.MustCompile(`'(?:[^'\\\n]|\\.)*'`), class: "string"},
	{re: regexp.MustCompile("(?s)`(?:[^`\\\\]|\\\\.)*`"), class: "string"},
	{re: regexp.MustCompile(`\b\d+(?:\.\d+)?\b`), class: "number"},
	{re: regexp.MustCompile(`\b(?:` + jsKeywords + `)\b`), class: "keyword"},
}
