package pads

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Excess describes a value that is wider than the width it was given.
type Excess struct {
	// Value is the value that caused the excess.
	Value Value
	// Block is the filler block that would have been used.
	Block string
	// ValueWidth is the measured width of Value.
	ValueWidth int
	// TotalWidth is the width that Value exceeds.
	TotalWidth int
}

// ExcessHandler decides what to write when a value does not fit.
//
// HandleExcess is only called when ValueWidth > TotalWidth. Like Pad, a
// handler must be safe to share between values.
type ExcessHandler interface {
	HandleExcess(w io.Writer, excess Excess) error
}

// ExcessHandlerFunc adapts an ordinary function to the ExcessHandler
// interface.
type ExcessHandlerFunc func(w io.Writer, excess Excess) error

func (f ExcessHandlerFunc) HandleExcess(w io.Writer, excess Excess) error {
	return f(w, excess)
}

// ExcessError reports a value that is wider than its total width.
type ExcessError struct {
	ValueWidth int
	TotalWidth int
}

func (err *ExcessError) Error() string {
	return fmt.Sprintf("value's width (%d) is greater than total_width (%d)", err.ValueWidth, err.TotalWidth)
}

// ExcessPolicy is one of the built-in excess handlers. The zero value is
// IgnoreExcess.
type ExcessPolicy int

const (
	// IgnoreExcess writes the value as-is, without any padding.
	IgnoreExcess ExcessPolicy = iota
	// ErrorOnExcess writes nothing and returns an *ExcessError.
	ErrorOnExcess
	// PanicOnExcess panics with an *ExcessError.
	PanicOnExcess
	// TruncateExcess cuts the value down to the total width using the
	// value's own metric (see Truncator), then fills any remaining gap with
	// blocks so that exactly TotalWidth columns are written. A wide
	// character that straddles the limit leaves such a gap. Values that do
	// not implement Truncator are written as-is.
	TruncateExcess
)

// HandleExcess implements ExcessHandler.
func (p ExcessPolicy) HandleExcess(w io.Writer, excess Excess) error {
	switch p {
	case IgnoreExcess:
		_, err := io.WriteString(w, excess.Value.String())
		return err
	case ErrorOnExcess:
		return errors.WithStack(&ExcessError{
			ValueWidth: excess.ValueWidth,
			TotalWidth: excess.TotalWidth,
		})
	case PanicOnExcess:
		panic(&ExcessError{
			ValueWidth: excess.ValueWidth,
			TotalWidth: excess.TotalWidth,
		})
	case TruncateExcess:
		t, ok := excess.Value.(Truncator)
		if !ok {
			_, err := io.WriteString(w, excess.Value.String())
			return err
		}
		cut, width := t.Truncate(excess.TotalWidth)
		e := emitter{w: w}
		e.text(cut)
		e.repeat(excess.Block, excess.TotalWidth-width)
		return e.err
	default:
		return errors.Errorf("unknown excess policy %d", int(p))
	}
}

func (p ExcessPolicy) String() string {
	switch p {
	case IgnoreExcess:
		return "ignore"
	case ErrorOnExcess:
		return "error"
	case PanicOnExcess:
		return "panic"
	case TruncateExcess:
		return "truncate"
	default:
		return "unknown"
	}
}
