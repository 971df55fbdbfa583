package errors

import (
	"strings"
	"unicode"
)

// ValidateElementID checks that id can be used verbatim as an SVG element id
// and as the prefix of derived clip-path ids ("{id}-v{index}").
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "element id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element id %q contains whitespace or control characters", id)
		}
	}
	if i := strings.IndexAny(id, `"'<>&#()`); i >= 0 {
		return New(ErrCodeInvalidInput, "element id %q contains invalid character %q", id, id[i])
	}
	return nil
}

// ValidateColor checks that a color override cannot escape the inline style
// declaration it is written into. Empty means "use the default".
func ValidateColor(name, value string) error {
	if value == "" {
		return nil
	}
	if strings.ContainsAny(value, `;:"'<>{}`) {
		return New(ErrCodeInvalidSettings, "%s color %q contains invalid characters", name, value)
	}
	return nil
}
