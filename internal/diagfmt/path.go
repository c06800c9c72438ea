package diagfmt

import (
	"path/filepath"

	"codelint/internal/driver"
	"codelint/internal/source"
)

func displayPath(fr *driver.FileResult, mode PathMode, baseDir string) string {
	if fr.File == nil {
		return filepath.ToSlash(fr.Path)
	}
	return fr.File.FormatPath(mode.String(), baseDir)
}

func baseDirOf(fs *source.FileSet) string {
	if fs == nil {
		return ""
	}
	return fs.BaseDir()
}
