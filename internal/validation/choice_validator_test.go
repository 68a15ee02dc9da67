package validation

import (
	"reflect"
	"testing"
)

func TestChoiceValidator_ValidateChoice(t *testing.T) {
	validator := NewChoiceValidator("a", "c", "d", "e")

	tests := []struct {
		input       string
		expected    string
		expectError bool
	}{
		{"a", "a", false},
		{"C", "c", false},
		{" d ", "d", false},
		{"E\n", "e", false},
		{"", "", true},
		{"x", "", true},
		{"add", "", true},
		{"ae", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := validator.ValidateChoice(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatalf("ValidateChoice(%q) expected error", tt.input)
				}
				ve, ok := err.(*ValidationError)
				if !ok || ve.Errors[0].Type != ErrorTypeInvalidChoice {
					t.Errorf("ValidateChoice(%q) error = %v, expected invalid choice", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateChoice(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ValidateChoice(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestChoiceValidator_Choices(t *testing.T) {
	validator := NewChoiceValidator("e", "A", "d", "c")
	expected := []string{"a", "c", "d", "e"}
	if got := validator.Choices(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Choices() = %v, expected %v", got, expected)
	}
}
