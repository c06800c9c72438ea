package dialect

import "fmt"

// Kind is the source language a text most resembles.
type Kind uint8

const (
	Unknown Kind = iota
	C
	CPP
	Java
	JavaScript
	TypeScript
	Python
	Go

	kindCount
)

func (k Kind) String() string {
	switch k {
	case C:
		return "c"
	case CPP:
		return "cpp"
	case Java:
		return "java"
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case Python:
		return "python"
	case Go:
		return "go"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// CFamily reports languages whose statements end in ';' and whose blocks use
// braces. Most rules are tuned for them.
func (k Kind) CFamily() bool {
	switch k {
	case C, CPP, Java, JavaScript, TypeScript:
		return true
	default:
		return false
	}
}

// ParseKind is the inverse of String. Unrecognized names map to Unknown.
func ParseKind(s string) Kind {
	for k := C; k < kindCount; k++ {
		if k.String() == s {
			return k
		}
	}
	return Unknown
}
