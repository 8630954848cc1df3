package tools

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// versionPattern finds the first dotted number in output such as
	// "v20.11.1" or "10.2.4 (corepack)".
	versionPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+){0,2}`)
	digitRuns      = regexp.MustCompile(`[0-9]+`)
)

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

func normalizeVersion(line string) string {
	if match := versionPattern.FindString(line); match != "" {
		return match
	}
	return line
}

// meetsMinimum compares numeric components, padding the shorter side with
// zeros. An empty minimum is always met.
func meetsMinimum(version, minimum string) bool {
	if minimum == "" {
		return true
	}
	if version == "" {
		return false
	}
	have, want := numericParts(version), numericParts(minimum)
	for len(have) < len(want) {
		have = append(have, 0)
	}
	for len(want) < len(have) {
		want = append(want, 0)
	}
	return slices.Compare(have, want) >= 0
}

func numericParts(version string) []int {
	runs := digitRuns.FindAllString(version, -1)
	parts := make([]int, 0, len(runs))
	for _, run := range runs {
		n, err := strconv.Atoi(run)
		if err != nil {
			n = 0
		}
		parts = append(parts, n)
	}
	return parts
}
