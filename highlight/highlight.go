// Package highlight turns raw source text into HTML-escaped markup with
// <span class="token-KIND"> wrappers, one regex rule set per language.
//
// This is a best-effort lexer, not a parser. Rules run in a fixed priority
// order and match against the escaped source text only; the first rule to
// claim a region wins and later overlapping matches are skipped, so inserted
// markup is never re-matched. Overlap false positives (a keyword-looking word
// inside an unterminated string, say) are accepted behavior.
package highlight

import (
	"regexp"
	"sort"
	"strings"
)

// rule is one regex substitution in a language's rule set.
type rule struct {
	re    *regexp.Regexp
	class string // token class suffix: "token-" + class
	group int    // submatch to wrap; 0 wraps the whole match
	inner []rule // rules re-applied to the wrapped text, for nested tokens
}

type claim struct {
	start, end int
	class      string
	inner      []rule
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape HTML-escapes &, < and > so source text never parses as structure.
// Quotes are left alone; the string-literal rules still need to see them.
func Escape(src string) string {
	return escaper.Replace(src)
}

// Highlight renders src as markup for the given language tag. Unknown tags
// and "plaintext" degrade to escape-only output. It always returns a string.
func Highlight(src, language string) string {
	escaped := Escape(src)
	rules, ok := ruleSets[language]
	if !ok {
		return escaped
	}
	return render(escaped, rules)
}

// Languages returns the tags with a registered rule set, sorted.
func Languages() []string {
	tags := make([]string, 0, len(ruleSets))
	for tag := range ruleSets {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

var ruleSets = map[string][]rule{
	"js":   jsRules,
	"css":  cssRules,
	"html": htmlRules,
}

// render applies rules in priority order over escaped text. Matches are
// collected as claims against the pristine text first, then emitted in one
// pass, so a later rule can never match inside an earlier rule's span tags.
func render(escaped string, rules []rule) string {
	var claims []claim
	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatchIndex(escaped, -1) {
			start, end := m[0], m[1]
			if r.group > 0 && len(m) > r.group*2+1 {
				start, end = m[r.group*2], m[r.group*2+1]
			}
			if start < 0 || end <= start {
				continue
			}
			if overlaps(claims, start, end) {
				continue
			}
			claims = append(claims, claim{start: start, end: end, class: r.class, inner: r.inner})
		}
	}

	if len(claims) == 0 {
		return escaped
	}

	sort.Slice(claims, func(i, j int) bool { return claims[i].start < claims[j].start })

	var b strings.Builder
	b.Grow(len(escaped) + len(claims)*32)
	pos := 0
	for _, c := range claims {
		b.WriteString(escaped[pos:c.start])
		b.WriteString(`<span class="token-`)
		b.WriteString(c.class)
		b.WriteString(`">`)
		body := escaped[c.start:c.end]
		if c.inner != nil {
			body = render(body, c.inner)
		}
		b.WriteString(body)
		b.WriteString(`</span>`)
		pos = c.end
	}
	b.WriteString(escaped[pos:])
	return b.String()
}

func overlaps(claims []claim, start, end int) bool {
	for _, c := range claims {
		if start < c.end && end > c.start {
			return true
		}
	}
	return false
}
