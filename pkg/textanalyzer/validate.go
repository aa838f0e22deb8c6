package textanalyzer

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidInput is returned for non-string, empty or whitespace-only input.
var ErrInvalidInput = errors.New("input text must be a non-empty string")

// ProcessingError wraps a failure of the external pipeline or stemmer on
// input that already passed validation.
type ProcessingError struct {
	Op  string
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Op, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// ValidateText checks that v is a string with at least one non-space rune and
// returns it unchanged.
func ValidateText(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w (got %T)", ErrInvalidInput, v)
	}
	if strings.TrimSpace(s) == "" {
		return "", ErrInvalidInput
	}
	return s, nil
}

// Normalize drops invalid UTF-8 bytes and puts text in Unicode NFC so that
// composed and decomposed accents tokenize identically.
func Normalize(text string) string {
	return norm.NFC.String(strings.ToValidUTF8(text, ""))
}
