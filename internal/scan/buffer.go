package scan

// Buffer is a growable byte buffer for codec output. It starts from a fixed
// estimate and doubles its capacity when exceeded, so typical short rules
// are emitted with a single allocation.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

func (b *Buffer) grow(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) * 2
	if newCap == 0 {
		newCap = 16
	}
	for newCap < len(b.buf)+n {
		newCap *= 2
	}
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

// Byte appends a single byte.
func (b *Buffer) Byte(c byte) {
	b.grow(1)
	b.buf = append(b.buf, c)
}

// Text appends a string verbatim.
func (b *Buffer) Text(s string) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
}

// Int appends v as sign-then-digits without padding.
func (b *Buffer) Int(v int) {
	if v < 0 {
		b.Byte('-')
		v = -v
	}
	b.uint(v)
}

func (b *Buffer) uint(v int) {
	if v >= 10 {
		b.uint(v / 10)
	}
	b.Byte(byte('0' + v%10))
}

// Pad appends v zero-padded to the given width. v must be non-negative.
func (b *Buffer) Pad(v, width int) {
	div := 1
	for i := 1; i < width; i++ {
		div *= 10
	}
	for ; div > 0; div /= 10 {
		b.Byte(byte('0' + (v/div)%10))
	}
}

// Len returns the number of bytes emitted so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// String returns the accumulated output.
func (b *Buffer) String() string {
	return string(b.buf)
}
