package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput rejects text that is not valid UTF-8 or contains NUL bytes.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBudgetExceeded is returned when the wall-clock budget of one call
	// elapses. Only that call fails.
	ErrBudgetExceeded = errors.New("analysis budget exceeded")
)

// RuleFailure records a rule that panicked. The rule contributes no
// diagnostics; the analysis itself still succeeds.
type RuleFailure struct {
	RuleID string
	Err    error
}

func (f RuleFailure) Error() string {
	return fmt.Sprintf("rule %s failed: %v", f.RuleID, f.Err)
}

func (f RuleFailure) Unwrap() error { return f.Err }

// MarshalText lets failures appear in JSON output as plain strings.
func (f RuleFailure) MarshalText() ([]byte, error) {
	return []byte(f.Error()), nil
}
