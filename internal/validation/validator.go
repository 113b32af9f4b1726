package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"todo-list/internal/config"
	"todo-list/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks the rune length of a trimmed name against the
// configured maximum. A maximum of zero means unlimited.
func (v *Validator) IsValidTaskNameLength(name string) bool {
	maxLen := v.getTaskNameMaxLength()
	if maxLen == 0 {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(name)) <= maxLen
}

// HasNoControlCharacters rejects names containing newlines, tabs and other
// control characters, which cannot round-trip through line based input.
func (v *Validator) HasNoControlCharacters(name string) bool {
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidStatus checks if s is the wire form of a known status
func (v *Validator) IsValidStatus(s string) bool {
	_, err := domain.ParseStatus(s)
	return err == nil
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getTaskNameMaxLength returns configured maximum task name length or default
func (v *Validator) getTaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 255
}
