package rules

import (
	"strings"

	"codelint/internal/sanitize"
	"codelint/internal/source"
)

// Unit is the read-only input shared by every checker of one analysis.
type Unit struct {
	Text           string
	Lines          []string
	Sanitized      string
	SanitizedLines []string
	Index          *source.Index
}

// NewUnit sanitizes and indexes text once.
func NewUnit(text string) *Unit {
	clean := sanitize.Sanitize(text)
	return &Unit{
		Text:           text,
		Lines:          strings.Split(text, "\n"),
		Sanitized:      clean,
		SanitizedLines: strings.Split(clean, "\n"),
		Index:          source.NewIndex(text),
	}
}
