package sanitize

// cursor walks the source byte by byte and mirrors every byte into out,
// either verbatim (keep) or as filler (blank).
type cursor struct {
	src string
	out []byte
	off int
}

func newCursor(src string) *cursor {
	return &cursor{src: src, out: make([]byte, 0, len(src))}
}

// EOF проверяет, достигнут ли конец текста
func (c *cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Peek2 читает текущий и следующий байт
func (c *cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= len(c.src) {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// keep copies the current byte unchanged.
func (c *cursor) keep() {
	c.out = append(c.out, c.src[c.off])
	c.off++
}

// blank replaces the current byte with filler; line breaks survive so that
// line numbers computed on the output stay valid.
func (c *cursor) blank() {
	b := c.src[c.off]
	if b != '\n' {
		b = filler
	}
	c.out = append(c.out, b)
	c.off++
}

func (c *cursor) blankN(n int) {
	for i := 0; i < n && !c.EOF(); i++ {
		c.blank()
	}
}
