// Package sanitize neutralizes string literals and comments in source text
// without moving any byte: the result always has the length of the input and
// keeps every '\n' where it was, so offsets, lines and columns computed on the
// sanitized copy are valid for the original text.
package sanitize

const filler = ' '

// Sanitize returns a copy of text in which the contents of "..." and '...'
// literals, `...` template literals and // and /* */ comments are replaced by
// spaces. Quote characters themselves are kept. Double and single quoted
// literals must close on the same line; an unmatched quote (an apostrophe in
// prose, for example) is left as an ordinary character.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	c := newCursor(text)
	for !c.EOF() {
		switch b := c.Peek(); b {
		case '/':
			if _, b1, ok := c.Peek2(); ok && b1 == '/' {
				skipLineComment(c)
				continue
			} else if ok && b1 == '*' {
				skipBlockComment(c)
				continue
			}
			c.keep()
		case '"', '\'':
			if end, ok := closingQuote(text, c.off, b); ok {
				c.keep() // открывающая кавычка
				c.blankN(end - c.off)
				c.keep() // закрывающая
				continue
			}
			c.keep()
		case '`':
			skipTemplate(c)
		default:
			c.keep()
		}
	}
	return string(c.out)
}

// skipLineComment blanks from "//" up to, not including, the next newline.
func skipLineComment(c *cursor) {
	for !c.EOF() && c.Peek() != '\n' {
		c.blank()
	}
}

// skipBlockComment blanks "/* ... */" inclusive; an unterminated comment runs
// to the end of the text.
func skipBlockComment(c *cursor) {
	c.blankN(2)
	for !c.EOF() {
		if b0, b1, ok := c.Peek2(); ok && b0 == '*' && b1 == '/' {
			c.blankN(2)
			return
		}
		c.blank()
	}
}

// closingQuote finds the quote closing the literal opened at start. Escapes
// are skipped; reaching a newline or the end of text means there is no literal.
func closingQuote(src string, start int, quote byte) (int, bool) {
	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\n':
			return 0, false
		case '\\':
			if i+1 < len(src) && src[i+1] != '\n' {
				i++
			}
		case quote:
			return i, true
		}
	}
	return 0, false
}

// skipTemplate handles `...` literals, which may span lines. Without a
// closing backtick the rest of the text is treated as literal content.
func skipTemplate(c *cursor) {
	c.keep()
	for !c.EOF() {
		switch c.Peek() {
		case '`':
			c.keep()
			return
		case '\\':
			c.blankN(2)
		default:
			c.blank()
		}
	}
}
