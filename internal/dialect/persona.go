package dialect

import "strings"

// Persona holds presentation text for a detected language. It never affects
// detection or rule behavior.
type Persona struct {
	Name    string // display name
	Caveats []string
}

var personas = map[Kind]Persona{
	C:          {Name: "C"},
	CPP:        {Name: "C++"},
	Java:       {Name: "Java"},
	JavaScript: {Name: "JavaScript", Caveats: []string{"semicolons are optional in JavaScript, so missing-semicolon findings may be style only"}},
	TypeScript: {Name: "TypeScript", Caveats: []string{"semicolons are optional in TypeScript, so missing-semicolon findings may be style only"}},
	Python: {Name: "Python", Caveats: []string{
		"Python has no statement semicolons; expect missing-semicolon noise",
		"indentation blocks are invisible to the brace-based rules",
	}},
	Go: {Name: "Go", Caveats: []string{"gofmt drops semicolons, so missing-semicolon findings do not apply"}},
}

// PersonaFor returns display data for k.
func PersonaFor(k Kind) Persona {
	if p, ok := personas[k]; ok {
		return p
	}
	return Persona{Name: "unknown"}
}

// Note renders a one-line note for pretty output, or "" for C-family
// languages without caveats.
func Note(c Classification) string {
	p := PersonaFor(c.Kind)
	if len(p.Caveats) == 0 {
		return ""
	}
	return "looks like " + p.Name + ": " + strings.Join(p.Caveats, "; ")
}
