package naming

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Product/[id]", "product/[id]"},
		{"  About Us  ", "about-us"},
		{"(admin)/profile", `"(admin)"/profile`},
		{"(auth)/(admin)/Settings Page", `"(auth)"/"(admin)"/settings-page`},
		{"blog/index.mdx", "blog/"},
		{"docs/intro.md", "docs/intro"},
		{"Button.jsx", "button"},
		{"widget.js", "widget"},
		{"card.ts", "card"},
		{"already-normal", "already-normal"},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeStripsTSX(t *testing.T) {
	got := Normalize("My Component.tsx")
	if strings.Contains(got, ".tsx") {
		t.Fatalf("expected .tsx stripped, got %q", got)
	}
	if got != "my-component" {
		t.Fatalf("got %q, want my-component", got)
	}
}

func TestNormalizeGroupKeepsProfileSuffix(t *testing.T) {
	got := Normalize("(admin)/profile")
	idx := strings.Index(got, `"(admin)"`)
	if idx < 0 {
		t.Fatalf("expected quoted group in %q", got)
	}
	if !strings.HasPrefix(got[idx+len(`"(admin)"`):], "/profile") {
		t.Fatalf("expected /profile after group, got %q", got)
	}
}

func TestNormalizeRepeatedGroupQuotesEachOccurrence(t *testing.T) {
	got := Normalize("(shop)/a/(shop)/b")
	want := `"(shop)"/a/"(shop)"/b`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Upper-case groups are detected on the raw input but no longer exist
// verbatim after lower-casing, so they are left unquoted.
func TestNormalizeUppercaseGroupIsNotQuoted(t *testing.T) {
	got := Normalize("(Admin)/profile")
	if got != "(admin)/profile" {
		t.Fatalf("got %q, want (admin)/profile", got)
	}
}

func TestNormalizeIdempotentWithoutGroups(t *testing.T) {
	inputs := []string{
		"Product/[id]",
		"  My Page  ",
		"blog/index.mdx",
		"in.mddex",
		".mindexd",
		"index\tfoo",
		"A B C.tsx",
		"x.jsx.js",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestNormalizeRemovesSpaces(t *testing.T) {
	inputs := []string{"a b", " lead and trail ", "many   spaces here", "(group) x"}
	for _, input := range inputs {
		if got := Normalize(input); strings.Contains(got, " ") {
			t.Errorf("Normalize(%q) = %q still contains a space", input, got)
		}
	}
}

// .jsx is removed before .js, and removal repeats until nothing changes, so
// neither a stray "x" nor a re-formed "index" survives.
func TestNormalizeReservedTokenOrder(t *testing.T) {
	tests := map[string]string{
		"Button.jsx": "button",
		"inindexdex": "",
		"a.jsx.js":   "a",
		"mod.mdx":    "mod",
	}
	for input, want := range tests {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}
