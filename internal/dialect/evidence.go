package dialect

// Hint is one piece of evidence for a language.
type Hint struct {
	Dialect Kind
	Score   int
	Reason  string
	Offset  int // byte offset of the signal in the text
}

// Evidence aggregates hints for one text.
type Evidence struct {
	hints []Hint
}

func NewEvidence() *Evidence {
	return &Evidence{hints: make([]Hint, 0, 16)}
}

// Add appends a hint. Safe on nil.
func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}
