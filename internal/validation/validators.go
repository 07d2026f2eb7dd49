package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate

	// usernamePattern matches valid Reddit usernames: 3-20 word characters
	// or hyphens. Reddit itself enforces this charset at signup.
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)
)

func init() {
	Validate = validator.New()

	// Register custom validators for domain values
	// These should never fail in normal operation, but log if they do
	if err := Validate.RegisterValidation("reddit_username", validateRedditUsername); err != nil {
		panic(fmt.Sprintf("failed to register reddit_username validator: %v", err))
	}
}

// validateRedditUsername validates that a string is a well-formed Reddit username
func validateRedditUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// ValidateUsername validates a Reddit username string value
func ValidateUsername(value string) error {
	if !usernamePattern.MatchString(value) {
		return fmt.Errorf("invalid username: %q (must be 3-20 letters, digits, underscores or hyphens)", value)
	}
	return nil
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	// Trim whitespace
	text = strings.TrimSpace(text)

	// Remove control characters except newline and tab
	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}
