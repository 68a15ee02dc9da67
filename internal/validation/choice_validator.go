package validation

import (
	"sort"
	"strings"
)

// ChoiceValidator checks menu input against a fixed set of keys,
// ignoring case and surrounding whitespace.
type ChoiceValidator struct {
	allowed map[string]struct{}
}

// NewChoiceValidator creates a validator accepting the given keys
func NewChoiceValidator(choices ...string) *ChoiceValidator {
	allowed := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		allowed[Normalize(c)] = struct{}{}
	}
	return &ChoiceValidator{allowed: allowed}
}

// Normalize trims and lower-cases menu input
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Choices returns the accepted keys in sorted order
func (cv *ChoiceValidator) Choices() []string {
	keys := make([]string, 0, len(cv.allowed))
	for k := range cv.allowed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateChoice returns the normalized key, or a ValidationError when the
// input is not an accepted key.
func (cv *ChoiceValidator) ValidateChoice(input string) (string, error) {
	key := Normalize(input)
	if _, ok := cv.allowed[key]; ok {
		return key, nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidChoiceError(FieldChoice, input, cv.Choices())
	return "", validationError
}
