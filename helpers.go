package pads

import (
	"io"
	"strings"
)

// emitter writes a sequence of pieces to w and remembers the first error.
// Once an error is recorded every later call is a no-op, so callers can
// chain writes and check err once at the end.
type emitter struct {
	w   io.Writer
	err error
}

// text writes s as-is.
func (e *emitter) text(s string) {
	if e.err != nil || s == "" {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// repeat writes block n times. The run is streamed block by block rather
// than built with strings.Repeat.
func (e *emitter) repeat(block string, n int) {
	if block == "" {
		return
	}
	for ; n > 0 && e.err == nil; n-- {
		_, e.err = io.WriteString(e.w, block)
	}
}

// countingWriter forwards to w and counts the bytes it accepted. Errors
// from w are returned untouched.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countingWriter) WriteString(s string) (int, error) {
	n, err := io.WriteString(c.w, s)
	c.n += int64(n)
	return n, err
}

// byteSink appends everything written to it onto buf. It never fails.
type byteSink struct {
	buf []byte
}

func (s *byteSink) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *byteSink) WriteString(str string) (int, error) {
	s.buf = append(s.buf, str...)
	return len(str), nil
}

// dashes returns a run of n '-' characters, used for header underlines.
func dashes(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("-", n)
}
