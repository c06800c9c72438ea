package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Position is a human-readable location in a text. Col counts bytes from the
// line start, not runes: "é" occupies columns 1 and 2. Renderers convert to
// display width themselves.
type Position struct {
	Line int // 1-based
	Col  int // 1-based, in bytes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Less сравнивает позиции сначала по строке, потом по колонке.
func (p Position) Less(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Index maps byte offsets to positions. It is built once per text and is
// read-only afterwards, so it can be shared between goroutines.
type Index struct {
	newlines []uint32 // offsets of every '\n', ascending
	size     uint32
}

// NewIndex precomputes newline offsets of text.
func NewIndex(text string) *Index {
	size, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}
	return &Index{newlines: buildLineIndex(text), size: size}
}

// Len returns the length of the indexed text in bytes.
func (ix *Index) Len() int {
	return int(ix.size)
}

// LineCount returns the number of lines; a text without newlines has one line.
func (ix *Index) LineCount() int {
	return len(ix.newlines) + 1
}

// Position converts an offset into a 1-based line/column pair.
// Offsets outside [0, Len()] are clamped.
func (ix *Index) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > int(ix.size) {
		offset = int(ix.size)
	}
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return toPosition(ix.newlines, off)
}

// LineStart returns the offset of the first byte of a 1-based line.
func (ix *Index) LineStart(line int) (int, bool) {
	switch {
	case line < 1 || line > ix.LineCount():
		return 0, false
	case line == 1:
		return 0, true
	default:
		return int(ix.newlines[line-2]) + 1, true
	}
}

// Offset is the inverse of Position for positions inside the text.
func (ix *Index) Offset(pos Position) (int, bool) {
	start, ok := ix.LineStart(pos.Line)
	if !ok || pos.Col < 1 {
		return 0, false
	}
	end := int(ix.size)
	if pos.Line <= len(ix.newlines) {
		end = int(ix.newlines[pos.Line-1])
	}
	off := start + pos.Col - 1
	if off > end {
		return 0, false
	}
	return off, true
}

// OffsetToPosition maps a single offset without keeping an index around.
// Callers resolving many offsets should build an Index once instead.
func OffsetToPosition(text string, offset int) Position {
	return NewIndex(text).Position(offset)
}

func buildLineIndex(text string) []uint32 {
	out := make([]uint32, 0, len(text)/32+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, uint32(i)) //nolint:gosec // bounded by NewIndex
		}
	}
	return out
}

func toPosition(newlines []uint32, off uint32) Position {
	// бинпоиск: количество '\n' строго до off
	lo, hi := 0, len(newlines)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if newlines[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo // 0-based

	var start uint32
	if line > 0 {
		start = newlines[line-1] + 1
	}
	return Position{Line: line + 1, Col: int(off-start) + 1}
}
