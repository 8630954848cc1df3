// Package naming turns free-form user input into route and component path
// segments accepted by the Qwik generator.
package naming

import (
	"regexp"
	"strings"
)

// groupPattern matches a layout group segment such as (admin).
var groupPattern = regexp.MustCompile(`\([a-zA-Z]+\)`)

// reservedTokens are removed wherever they appear. Longer extensions come
// before their prefixes so ".jsx" is not reduced to "x".
var reservedTokens = []string{".mdx", ".md", ".tsx", ".ts", ".jsx", ".js", "index"}

// Normalize trims and lower-cases raw, replaces spaces with hyphens, strips
// file extensions and the word "index", and wraps each layout group in
// double quotes so a shell passes it through as one literal argument:
//
//	Normalize("(admin)/profile") == `"(admin)"/profile`
//
// Group detection runs on raw, while quoting searches the transformed
// string for the token as written. A group typed with upper-case letters
// therefore has no exact copy left and stays unquoted.
func Normalize(raw string) string {
	out := strip(raw)

	groups := groupPattern.FindAllString(raw, -1)
	if len(groups) == 0 {
		return out
	}

	from := 0
	for _, group := range groups {
		idx := strings.Index(out[from:], group)
		if idx < 0 {
			continue
		}
		idx += from
		quoted := `"` + group + `"`
		out = out[:idx] + quoted + out[idx+len(group):]
		from = idx + len(quoted)
	}
	return out
}

// strip applies the text rules until the value stops changing, so removing
// one token never leaves another one (or edge whitespace) behind.
func strip(value string) string {
	for {
		next := strings.TrimSpace(value)
		next = strings.ToLower(next)
		next = strings.ReplaceAll(next, " ", "-")
		for _, token := range reservedTokens {
			next = strings.ReplaceAll(next, token, "")
		}
		if next == value {
			return next
		}
		value = next
	}
}
