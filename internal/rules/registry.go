package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"codelint/internal/diag"
)

var (
	ErrEmptyID     = errors.New("rule has empty id")
	ErrDuplicateID = errors.New("duplicate rule id")
	ErrNilCheck    = errors.New("rule has no check function")
	ErrUnknownRule = errors.New("unknown rule")
)

// Registry is an immutable, ordered table of rules.
type Registry struct {
	rules []Rule
	byID  map[string]int
}

// NewRegistry validates rules and freezes them in the given order.
func NewRegistry(rs ...Rule) (*Registry, error) {
	reg := &Registry{
		rules: make([]Rule, 0, len(rs)),
		byID:  make(map[string]int, len(rs)),
	}
	for _, r := range rs {
		switch {
		case r.ID == "":
			return nil, ErrEmptyID
		case r.Check == nil:
			return nil, fmt.Errorf("%w: %s", ErrNilCheck, r.ID)
		case !r.Severity.Valid():
			return nil, fmt.Errorf("rule %s: invalid severity %d", r.ID, r.Severity)
		}
		if _, dup := reg.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		reg.byID[r.ID] = len(reg.rules)
		reg.rules = append(reg.rules, r)
	}
	return reg, nil
}

// Len returns the number of rules.
func (reg *Registry) Len() int {
	return len(reg.rules)
}

// Lookup returns a copy of the rule with id.
func (reg *Registry) Lookup(id string) (Rule, bool) {
	i, ok := reg.byID[id]
	if !ok {
		return Rule{}, false
	}
	return reg.rules[i], true
}

// Severity resolves the registered severity of a rule. It satisfies
// diag.SeverityResolver.
func (reg *Registry) Severity(id string) (diag.Severity, bool) {
	i, ok := reg.byID[id]
	if !ok {
		return diag.SevInfo, false
	}
	return reg.rules[i].Severity, true
}

// All returns the rules in registry order. The slice is a copy.
func (reg *Registry) All() []Rule {
	out := make([]Rule, len(reg.rules))
	copy(out, reg.rules)
	return out
}

// IDs returns rule ids in registry order.
func (reg *Registry) IDs() []string {
	ids := make([]string, len(reg.rules))
	for i := range reg.rules {
		ids[i] = reg.rules[i].ID
	}
	return ids
}

// Without returns a new registry lacking the given rules. Unknown ids are an error.
func (reg *Registry) Without(ids ...string) (*Registry, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := reg.byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, id)
		}
		drop[id] = struct{}{}
	}
	kept := make([]Rule, 0, len(reg.rules))
	for _, r := range reg.rules {
		if _, skip := drop[r.ID]; !skip {
			kept = append(kept, r)
		}
	}
	return NewRegistry(kept...)
}

// Fingerprint identifies the rule set (ids and severities) for cache keys.
func (reg *Registry) Fingerprint() string {
	keys := make([]string, 0, len(reg.rules))
	for _, r := range reg.rules {
		keys = append(keys, r.ID+"="+r.Severity.String())
	}
	sort.Strings(keys)
	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
