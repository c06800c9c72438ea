package dialect

// Classification is the result of scoring evidence for a text.
type Classification struct {
	Kind            Kind
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        Kind
	RunnerUpScore   int
	ObservedSignals int
}

// minScore is the evidence needed before a language is named at all.
const minScore = 4

// Classifier scores evidence and chooses a dominant language.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown}
	}

	var scores [kindCount]int
	total := 0
	for _, h := range e.hints {
		if h.Score <= 0 || h.Dialect <= Unknown || h.Dialect >= kindCount {
			continue
		}
		scores[h.Dialect] += h.Score
		total += h.Score
	}

	// ties keep the earlier kind, so the result is deterministic
	best, runner := Unknown, Unknown
	bestScore, runnerScore := 0, 0
	for k := C; k < kindCount; k++ {
		score := scores[k]
		if score > bestScore {
			runner, runnerScore = best, bestScore
			best, bestScore = k, score
			continue
		}
		if score > runnerScore {
			runner, runnerScore = k, score
		}
	}
	if bestScore < minScore {
		best = Unknown
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}
	return Classification{
		Kind:            best,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		RunnerUp:        runner,
		RunnerUpScore:   runnerScore,
		ObservedSignals: len(e.hints),
	}
}

// Classify collects keyword and pattern evidence from sanitized text.
func Classify(sanitized string) Classification {
	e := NewEvidence()
	RecordKeywords(e, sanitized)
	RecordPatterns(e, sanitized)
	return Classifier{}.Classify(e)
}
