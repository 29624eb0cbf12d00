package pads

import (
	"io"

	"github.com/pkg/errors"
)

// Pad places filler blocks around a value that fits its total width.
//
// padWidth is the number of blocks to write in total and is never negative
// when called by PaddedValue. Implementations must not keep state between
// calls: one Pad is shared by every value of a column.
type Pad interface {
	Pad(w io.Writer, value Value, block string, padWidth int) error
}

// PadFunc adapts an ordinary function to the Pad interface.
type PadFunc func(w io.Writer, value Value, block string, padWidth int) error

func (f PadFunc) Pad(w io.Writer, value Value, block string, padWidth int) error {
	return f(w, value, block, padWidth)
}

// Alignment is one of the four built-in ways to place the pad.
type Alignment int

const (
	// Left puts the value first and all blocks after it.
	//
	//	abcdef---
	Left Alignment = iota
	// Right puts all blocks first and the value after them.
	//
	//	---abcdef
	Right
	// CenterLeft splits the blocks evenly around the value. An odd block
	// goes to the right, so the value leans left.
	//
	//	--abc---
	CenterLeft
	// CenterRight splits the blocks evenly around the value. An odd block
	// goes to the left, so the value leans right.
	//
	//	---abc--
	CenterRight
)

// Pad implements Pad.
func (a Alignment) Pad(w io.Writer, value Value, block string, padWidth int) error {
	e := emitter{w: w}
	half, rem := padWidth>>1, padWidth&1
	switch a {
	case Left:
		e.text(value.String())
		e.repeat(block, padWidth)
	case Right:
		e.repeat(block, padWidth)
		e.text(value.String())
	case CenterLeft:
		e.repeat(block, half)
		e.text(value.String())
		e.repeat(block, half)
		e.repeat(block, rem)
	case CenterRight:
		e.repeat(block, rem)
		e.repeat(block, half)
		e.text(value.String())
		e.repeat(block, half)
	default:
		return errors.Errorf("unknown alignment %d", int(a))
	}
	return e.err
}

func (a Alignment) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case CenterLeft:
		return "center-left"
	case CenterRight:
		return "center-right"
	default:
		return "unknown"
	}
}

// ParseAlignment maps the field-spec markers used by Compile to an Alignment:
// '<' left, '>' right, '^' center-left and '=' center-right.
func ParseAlignment(marker byte) (Alignment, bool) {
	switch marker {
	case '<':
		return Left, true
	case '>':
		return Right, true
	case '^':
		return CenterLeft, true
	case '=':
		return CenterRight, true
	}
	return Left, false
}

// unpadded writes the value and ignores the pad budget entirely.
var unpadded = PadFunc(func(w io.Writer, value Value, _ string, _ int) error {
	_, err := io.WriteString(w, value.String())
	return err
})
