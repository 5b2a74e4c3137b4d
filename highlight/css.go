package highlight

import "regexp"

// cssUnitNumber wraps the digits of a unit-suffixed numeric literal, leaving
// the unit bare. Applied both at top level and inside value spans.
var cssUnitNumber = rule{
	re:    regexp.MustCompile(`(\d+(?:\.\d+)?)(?:px|em|rem|%)`),
	class: "number",
	group: 1,
}

// CSS rules. The upstream comment pattern carried a malformed terminator
// (a literal "*/g"); the terminator here is the intended one.
var cssRules = []rule{
	{re: regexp.MustCompile(`(?s)/\*.*?\*/`), class: "comment"},
	{
		// Value run after a colon, up to ';', '}', '{' or end of line.
		// Leading whitespace stays inside the span.
		re:    regexp.MustCompile(`:([^;{}\n]+)`),
		class: "string",
		group: 1,
		inner: []rule{cssUnitNumber},
	},
	cssUnitNumber,
	{
		// Selector or tag token directly before an opening brace.
		re:    regexp.MustCompile(`([.#]?[a-zA-Z][\w-]*)\s*\{`),
		class: "tag",
		group: 1,
	},
	{
		// Property name before a colon.
		re:    regexp.MustCompile(`([a-zA-Z-]+)\s*:`),
		class: "attribute",
		group: 1,
	},
}
