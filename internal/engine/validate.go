package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate checks that text is something the rules can read: valid UTF-8
// without NUL bytes. Binary files are the usual offenders.
func Validate(text string) error {
	if i := strings.IndexByte(text, 0); i >= 0 {
		return fmt.Errorf("%w: NUL byte at offset %d", ErrInvalidInput, i)
	}
	if !utf8.ValidString(text) {
		for i, r := range text {
			if r == utf8.RuneError {
				if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
					return fmt.Errorf("%w: invalid UTF-8 at offset %d", ErrInvalidInput, i)
				}
			}
		}
		return fmt.Errorf("%w: invalid UTF-8", ErrInvalidInput)
	}
	return nil
}
