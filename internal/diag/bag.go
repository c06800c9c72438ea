package diag

import "sort"

// Bag accumulates diagnostics from all checkers.
// Not safe for concurrent use; the engine merges per-rule slices after the
// workers are done.
type Bag struct {
	items []Diagnostic
	seen  map[key]struct{}
}

func NewBag(capacity int) *Bag {
	if capacity < 0 {
		capacity = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, capacity),
		seen:  make(map[key]struct{}, capacity),
	}
}

// Add добавляет диагностику, если (line, column, rule) ещё не встречался.
// Возвращает false для дубликата: первая запись побеждает.
func (b *Bag) Add(d Diagnostic) bool {
	k := d.key()
	if _, dup := b.seen[k]; dup {
		return false
	}
	b.seen[k] = struct{}{}
	b.items = append(b.items, d)
	return true
}

// Merge adds every diagnostic of ds in order and returns how many were kept.
func (b *Bag) Merge(ds []Diagnostic) int {
	kept := 0
	for _, d := range ds {
		if b.Add(d) {
			kept++
		}
	}
	return kept
}

// Sort orders diagnostics by (line, column). The sort is stable, so entries
// at the same position stay in insertion order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Snapshot returns a copy of the diagnostics that callers may keep.
func (b *Bag) Snapshot() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Aggregate merges groups in order, drops duplicates and sorts.
func Aggregate(groups ...[]Diagnostic) []Diagnostic {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	bag := NewBag(total)
	for _, g := range groups {
		bag.Merge(g)
	}
	bag.Sort()
	return bag.Items()
}
