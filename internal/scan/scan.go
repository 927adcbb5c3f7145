// Package scan provides the low-level scanning and emission primitives used
// by the rule codec: a zero-copy cursor over KEY=VALUE;... input and manual
// integer conversion that never allocates.
package scan

// Terminator reports whether b ends a rule embedded in a larger document.
// A rule stops at the first whitespace or line-break byte.
func Terminator(b byte) bool {
	return b == '\r' || b == '\n' || b == ' ' || b == '\t'
}

// Cursor walks a rule string left to right. Key and value results are
// substrings of the original input; the cursor never copies.
type Cursor struct {
	src      string
	pos      int
	dangling bool
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Done reports whether the cursor has reached the end of the rule, either
// the end of input or a terminator byte.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.src) || Terminator(c.src[c.pos])
}

// Dangling reports whether the last consumed segment ended with a ';' that
// was not followed by another segment.
func (c *Cursor) Dangling() bool {
	return c.dangling
}

// Pair consumes one KEY=VALUE segment, advancing past a trailing ';' when
// present. ok is false when the segment has no '=' before its end.
func (c *Cursor) Pair() (key, value string, ok bool) {
	start := c.pos
	eq := -1
	i := c.pos
	for i < len(c.src) {
		b := c.src[i]
		if b == '=' && eq < 0 {
			eq = i
		}
		if b == ';' || Terminator(b) {
			break
		}
		i++
	}
	if eq < 0 {
		c.pos = i
		return "", c.src[start:i], false
	}
	key = c.src[start:eq]
	value = c.src[eq+1 : i]
	c.pos = i
	if i < len(c.src) && c.src[i] == ';' {
		c.pos = i + 1
		if c.Done() {
			c.dangling = true
		}
	}
	return key, value, true
}

// Int converts s to an integer by manual digit accumulation. An optional
// leading '-' is accepted; any other non-digit byte fails. The empty string
// and a bare "-" fail.
func Int(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
		if i == len(s) {
			return 0, false
		}
	}
	n := 0
	for ; i < len(s); i++ {
		b := s[i]
		if b < '0' || b > '9' {
			return 0, false
		}
		n = n*10 + int(b-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

// Uint converts an all-digit string to a non-negative integer.
func Uint(s string) (int, bool) {
	if s == "" || s[0] == '-' {
		return 0, false
	}
	return Int(s)
}

// Digits reports whether s is non-empty and consists solely of ASCII digits.
func Digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// EachElement calls fn for every ','-separated element of value, without
// allocating the element slice. It stops and reports false on the first
// element fn rejects; an empty element (including an empty value) is
// rejected outright.
func EachElement(value string, fn func(elem string) bool) bool {
	start := 0
	for i := 0; i <= len(value); i++ {
		if i == len(value) || value[i] == ',' {
			if i == start {
				return false
			}
			if !fn(value[start:i]) {
				return false
			}
			start = i + 1
		}
	}
	return true
}
