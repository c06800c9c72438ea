package diagfmt

import "fmt"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths as given on the command line.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// ParsePathMode accepts the names returned by String.
func ParsePathMode(s string) (PathMode, error) {
	for m := PathModeAuto; m <= PathModeBasename; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return PathModeAuto, fmt.Errorf("unknown path mode %q (expected auto|absolute|relative|basename)", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	Width     int  // максимальная ширина строки исходника, 0 - не ограничено
	ShowScore bool // per-file score footer
	ShowNotes bool // language notes
	Quiet     bool // only the run summary
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	PathMode PathMode
	Indent   bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	PathMode       PathMode
}
