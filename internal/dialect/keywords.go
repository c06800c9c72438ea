package dialect

import "regexp"

type keywordSignal struct {
	Dialect Kind
	Score   int
}

// Identifiers shared by several languages score low for each of them.
var keywordSignals = map[string][]keywordSignal{
	// C
	"printf": {{C, 2}, {CPP, 1}},
	"scanf":  {{C, 3}},
	"malloc": {{C, 4}},
	"free":   {{C, 2}},
	"struct": {{C, 2}, {CPP, 1}, {Go, 1}},

	// C++
	"cout":      {{CPP, 5}},
	"cin":       {{CPP, 4}},
	"endl":      {{CPP, 4}},
	"std":       {{CPP, 3}},
	"namespace": {{CPP, 3}, {TypeScript, 1}},
	"template":  {{CPP, 4}},
	"nullptr":   {{CPP, 5}},
	"vector":    {{CPP, 2}},

	// Java
	"System":     {{Java, 4}},
	"extends":    {{Java, 2}, {TypeScript, 2}, {JavaScript, 1}},
	"implements": {{Java, 3}, {TypeScript, 2}},
	"boolean":    {{Java, 3}, {TypeScript, 1}},
	"String":     {{Java, 3}},
	"throws":     {{Java, 5}},
	"package":    {{Java, 2}, {Go, 2}},

	// JavaScript / TypeScript
	"console":   {{JavaScript, 3}, {TypeScript, 2}},
	"function":  {{JavaScript, 3}, {TypeScript, 2}},
	"let":       {{JavaScript, 3}, {TypeScript, 2}},
	"undefined": {{JavaScript, 3}, {TypeScript, 2}},
	"readonly":  {{TypeScript, 4}},
	"interface": {{TypeScript, 2}, {Java, 2}, {Go, 1}},
	"unknown":   {{TypeScript, 3}},
	"never":     {{TypeScript, 2}},

	// Python
	"def":    {{Python, 4}},
	"elif":   {{Python, 5}},
	"None":   {{Python, 4}},
	"self":   {{Python, 2}},
	"lambda": {{Python, 2}},

	// Go
	"func":  {{Go, 4}},
	"defer": {{Go, 5}},
	"chan":  {{Go, 5}},
	"range": {{Go, 2}, {Python, 1}},
}

var reWord = regexp.MustCompile(`[A-Za-z_]\w*`)

// RecordKeywords adds keyword evidence for every identifier of text.
// text should be sanitized so literals and comments do not vote.
func RecordKeywords(e *Evidence, text string) {
	for _, m := range reWord.FindAllStringIndex(text, -1) {
		for _, sig := range keywordSignals[text[m[0]:m[1]]] {
			e.Add(Hint{
				Dialect: sig.Dialect,
				Score:   sig.Score,
				Reason:  "keyword `" + text[m[0]:m[1]] + "`",
				Offset:  m[0],
			})
		}
	}
}
