package templates

import (
	"strings"

	"github.com/iancoleman/strcase"

	"qwikshortcuts/internal/project"
)

const (
	placeholderName      = "name"
	placeholderComponent = "component"
)

var placeholders = []string{placeholderName, placeholderComponent}

type tokenKind int

const (
	literalToken tokenKind = iota
	placeholderToken
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits content into literals and [placeholder] tokens. Unknown
// bracketed text such as [id] stays literal.
func tokenize(content string) []token {
	var (
		tokens  []token
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, token{kind: literalToken, text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(content); {
		if content[i] == '[' {
			if key, ok := placeholderAt(content[i:]); ok {
				flush()
				tokens = append(tokens, token{kind: placeholderToken, text: key})
				i += len(key) + 2
				continue
			}
		}
		literal.WriteByte(content[i])
		i++
	}
	flush()
	return tokens
}

func placeholderAt(s string) (string, bool) {
	for _, key := range placeholders {
		if strings.HasPrefix(s, "["+key+"]") {
			return key, true
		}
	}
	return "", false
}

// spacePropsInterface repairs "interface[name]Props" written without a
// space between the keyword and the placeholder.
func spacePropsInterface(tokens []token) {
	for i := 1; i+1 < len(tokens); i++ {
		if tokens[i].kind != placeholderToken || tokens[i].text != placeholderName {
			continue
		}
		prev, next := &tokens[i-1], tokens[i+1]
		if prev.kind == literalToken && next.kind == literalToken &&
			strings.HasSuffix(prev.text, "interface") && strings.HasPrefix(next.text, "Props") {
			prev.text += " "
		}
	}
}

func substitute(tokens []token, values map[string]string) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.kind == placeholderToken {
			b.WriteString(values[t.text])
			continue
		}
		b.WriteString(t.text)
	}
	return b.String()
}

// Render fills a template for componentName. [name] becomes the name as
// typed and [component] its PascalCase identifier. For V1 projects the
// import statements are pointed at the legacy core package.
func Render(content, componentName string, version project.Version) string {
	tokens := tokenize(content)
	spacePropsInterface(tokens)
	out := substitute(tokens, placeholderValues(componentName))
	if version == project.VersionV1 {
		out = RewriteImports(out, project.PackageCore, project.PackageLegacyCore)
	}
	return out
}

func placeholderValues(componentName string) map[string]string {
	return map[string]string{
		placeholderName:      componentName,
		placeholderComponent: strcase.ToCamel(componentName),
	}
}

// RewriteImports replaces the module specifier from with to in import and
// export-from statements, including multi-line import lists. Subpaths
// (from + "/...") are rewritten too; the string elsewhere is left alone.
func RewriteImports(text, from, to string) string {
	lines := strings.SplitAfter(text, "\n")
	inStatement := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		starts := isModuleStatementStart(trimmed)
		if !starts && !inStatement {
			continue
		}
		lines[i] = rewriteSpecifier(line, from, to)

		switch {
		case starts && strings.Contains(trimmed, "{") && !strings.Contains(trimmed, "}"):
			inStatement = true
		case inStatement && strings.Contains(trimmed, "}"):
			inStatement = false
		}
	}
	return strings.Join(lines, "")
}

func isModuleStatementStart(line string) bool {
	switch {
	case strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "import{") || strings.HasPrefix(line, `import "`) || strings.HasPrefix(line, "import '"):
		return true
	case strings.HasPrefix(line, "export {") || strings.HasPrefix(line, "export *") || strings.HasPrefix(line, "export type {"):
		return true
	}
	return false
}

func rewriteSpecifier(line, from, to string) string {
	for _, q := range []string{`"`, `'`} {
		line = strings.ReplaceAll(line, q+from+q, q+to+q)
		line = strings.ReplaceAll(line, q+from+"/", q+to+"/")
	}
	return line
}
