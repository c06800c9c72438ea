package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		want  string
		flags FileFlags
	}{
		{"plain", []byte("a\nb"), "a\nb", 0},
		{"utf8 bom", []byte("\xEF\xBB\xBFx;"), "x;", FileHadBOM},
		{"crlf", []byte("a\r\nb\r\n"), "a\nb\n", FileNormalizedCRLF},
		{"lone cr kept", []byte("a\rb"), "a\rb", 0},
		{"utf16le", []byte{0xFF, 0xFE, 'a', 0, '\r', 0, '\n', 0, 'b', 0}, "a\nb", FileHadBOM | FileDecodedUTF16 | FileNormalizedCRLF},
		{"utf16be", []byte{0xFE, 0xFF, 0, 'o', 0, 'k'}, "ok", FileHadBOM | FileDecodedUTF16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flags, err := Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if flags != tt.flags {
				t.Errorf("flags = %b, want %b", flags, tt.flags)
			}
		})
	}
}

func TestFileSetLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	if err := os.WriteFile(path, []byte("int x;\r\nx = 1;\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Content != "int x;\nx = 1;\n" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected CRLF flag")
	}
	if got := f.Line(2); got != "x = 1;" {
		t.Errorf("Line(2) = %q", got)
	}
	if got := f.Line(3); got != "" {
		t.Errorf("Line(3) = %q, want empty", got)
	}
	if got := f.FormatPath("relative", dir); got != "main.cpp" {
		t.Errorf("relative path = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "main.cpp" {
		t.Errorf("basename = %q", got)
	}
	if same, ok := fs.GetByPath(path); !ok || same != f {
		t.Errorf("GetByPath did not find loaded file")
	}
}

func TestFileSetLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.c")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()
	id1 := fs.AddVirtual("<stdin>", []byte("a"))
	id2 := fs.AddVirtual("<stdin>", []byte("b"))
	if id1 == id2 {
		t.Fatalf("expected distinct ids")
	}
	latest, ok := fs.GetByPath("<stdin>")
	if !ok || latest.ID != id2 {
		t.Fatalf("GetByPath should return the latest version")
	}
	if fs.Get(id1).Content != "a" || fs.Len() != 2 {
		t.Fatalf("older version must stay available")
	}
	if fs.Get(42) != nil {
		t.Fatalf("Get out of range should be nil")
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	target := filepath.Join(tmp, "other", "file.c")

	got := RelativePath(target, base)
	if got != normalizePath(target) {
		t.Fatalf("expected absolute fallback %q, got %q", normalizePath(target), got)
	}
}
