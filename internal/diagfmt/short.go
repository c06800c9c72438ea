package diagfmt

import (
	"fmt"
	"io"

	"codelint/internal/diag"
	"codelint/internal/driver"
)

// Short writes one stable line per diagnostic, grep and editor friendly:
//
//	<path>:<line>:<col>: <severity> <rule>: <message>
//
// Unreadable files produce "<path>: error: <err>".
func Short(w io.Writer, rep *driver.Report, mode PathMode) error {
	base := baseDirOf(rep.FileSet)
	for i := range rep.Files {
		fr := &rep.Files[i]
		path := displayPath(fr, mode, base)
		if fr.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: error: %v\n", path, fr.Err); err != nil {
				return err
			}
			continue
		}
		if len(fr.Result.Diagnostics) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, diag.FormatShortDiagnostics(path, fr.Result.Diagnostics)); err != nil {
			return err
		}
	}
	return nil
}
