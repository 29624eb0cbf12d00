package pads

import (
	"io"
	"strings"
)

// PaddedValue pads a single value.
//
// A PaddedValue holds no rendered state. Every write measures Value again
// and streams the result, so the same PaddedValue can be written any number
// of times, from any number of goroutines.
//
// A nil Pad behaves like Left and a nil HandleExcess like IgnoreExcess.
type PaddedValue[V Value] struct {
	// Value to be padded.
	Value V
	// Block is the filler, expected to be one column wide.
	Block string
	// TotalWidth is the width to fill.
	TotalWidth int
	// Pad decides where the blocks go.
	Pad Pad
	// HandleExcess decides what to write when Value is wider than
	// TotalWidth.
	HandleExcess ExcessHandler
}

// WriteTo writes the padded value to w. Errors returned by w are passed
// back unchanged.
func (p PaddedValue[V]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := p.render(cw)
	return cw.n, err
}

// AppendTo appends the padded value to dst and returns the extended
// buffer. On error the partially rendered bytes are kept.
func (p PaddedValue[V]) AppendTo(dst []byte) ([]byte, error) {
	sink := &byteSink{buf: dst}
	err := p.render(sink)
	return sink.buf, err
}

// Render returns the padded value as a new string.
func (p PaddedValue[V]) Render() (string, error) {
	var sb strings.Builder
	if err := p.render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String returns the padded value. It panics if the excess handler fails,
// which can only happen with a handler such as ErrorOnExcess. Use Render or
// WriteTo to get the error instead.
func (p PaddedValue[V]) String() string {
	s, err := p.Render()
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the width of the rendered value, assuming the excess
// handler writes the value as-is when it does not fit. This makes a
// PaddedValue a Value in its own right.
func (p PaddedValue[V]) Width() int {
	return max(p.TotalWidth, p.Value.Width())
}

func (p PaddedValue[V]) render(w io.Writer) error {
	valueWidth := p.Value.Width()
	if p.TotalWidth >= valueWidth {
		return p.pad().Pad(w, p.Value, p.Block, p.TotalWidth-valueWidth)
	}
	return p.excessHandler().HandleExcess(w, Excess{
		Value:      p.Value,
		Block:      p.Block,
		ValueWidth: valueWidth,
		TotalWidth: p.TotalWidth,
	})
}

func (p PaddedValue[V]) pad() Pad {
	if p.Pad == nil {
		return Left
	}
	return p.Pad
}

func (p PaddedValue[V]) excessHandler() ExcessHandler {
	if p.HandleExcess == nil {
		return IgnoreExcess
	}
	return p.HandleExcess
}
