// Package scratch builds short per-frame strings (status lines, debug
// text) in a reused byte buffer.
package scratch

import (
	"strconv"
	"unsafe"
)

// Buffer is a reusable append buffer. It is not safe for concurrent use.
type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 256
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the contents and keeps the memory. Call once per frame.
func (b *Buffer) Reset() *Buffer {
	b.buf = b.buf[:0]
	return b
}

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// U appends an unsigned base-10 integer.
func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F64 appends v with prec digits after the decimal point.
func (b *Buffer) F64(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// String copies the contents.
func (b *Buffer) String() string { return string(b.buf) }

// View returns the contents without copying. The string is only valid until
// the next Reset or append.
func (b *Buffer) View() string {
	if len(b.buf) == 0 {
		return ""
	}
	return unsafe.String(&b.buf[0], len(b.buf))
}
