package naming

import (
	"errors"
	"strings"
)

// Messages shown by the prompt when input is rejected.
var (
	ErrEmptyRouteName     = errors.New("Route name cannot be empty")
	ErrEmptyComponentName = errors.New("Component name cannot be empty")
	ErrComponentSlash     = errors.New("Component name cannot contain '/'")
	ErrComponentDots      = errors.New("Component name cannot be '.' or '..'")
)

// ValidateRouteName accepts any non-empty route name; nested paths and
// dynamic segments like product/[id] are allowed.
func ValidateRouteName(value string) error {
	if value == "" {
		return ErrEmptyRouteName
	}
	return nil
}

// ValidateComponentName rejects empty names, "." and "..", and names
// containing '/'.
func ValidateComponentName(value string) error {
	if value == "" {
		return ErrEmptyComponentName
	}
	if trimmed := strings.TrimSpace(value); trimmed == "." || trimmed == ".." {
		return ErrComponentDots
	}
	if strings.Contains(value, "/") {
		return ErrComponentSlash
	}
	return nil
}
