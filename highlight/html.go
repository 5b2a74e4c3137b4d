package highlight

import "regexp"

// HTML rules run against escaped text, so tag delimiters appear as &lt; and
// &gt;. Script bodies are claimed wholesale before the tag and attribute
// rules can see them; no recursive JS highlighting.
var htmlRules = []rule{
	{re: regexp.MustCompile(`(?s)&lt;!--.*?--&gt;`), class: "comment"},
	{
		re:    regexp.MustCompile(`(?s)&lt;script.*?&gt;(.*?)&lt;/script&gt;`),
		class: "string",
		group: 1,
	},
	{
		// Element name in a start or end tag.
		re:    regexp.MustCompile(`&lt;/?([a-zA-Z][\w-]*)`),
		class: "tag",
		group: 1,
	},
	{
		// Attribute name; the value is left unstyled.
		re:    regexp.MustCompile(`\s([a-zA-Z-]+)=`),
		class: "attribute",
		group: 1,
	},
}
