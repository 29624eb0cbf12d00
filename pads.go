// Package pads aligns text to a target display width without building the
// padded string up front.
//
// # Overview
//
// A PaddedValue describes a value, a filler block, a total width, where the
// filler goes (a Pad) and what to do when the value is too wide (an
// ExcessHandler). Nothing is rendered until the value is written: WriteTo
// streams the filler and the value straight into an io.Writer, and AppendTo
// writes into a caller-owned byte slice.
//
// A PaddedColumn pads a sequence of values to a shared width. It reads its
// input once, remembers every value and the widest one, and then hands out
// PaddedValue units in input order.
//
// # Width
//
// Width is a property of the wrapper, not of the text. The same string can
// be measured in bytes (Len), runes (CharCount), terminal cells (UnicodeWidth,
// UnicodeWidthCJK, GraphemeWidth) or grapheme clusters (GraphemeCount). Pick
// the wrapper whose metric matches how the output will be displayed:
//
//	pads.AlignRight(pads.UnicodeWidth("中文"), 6).String() // "  中文"
//
// Any type with Width and String methods can be padded. A value's String
// must occupy exactly Width columns, otherwise the output will not line up.
//
// # Basic Usage
//
//	value := pads.PaddedValue[pads.UnicodeWidth]{
//	    Value:      "abcdef",
//	    Block:      "-",
//	    TotalWidth: 9,
//	    Pad:        pads.Right,
//	}
//	value.WriteTo(os.Stdout) // ---abcdef
//
//	langs := pads.Texts[pads.UnicodeWidth]("Rust", "C", "JavaScript")
//	column := pads.AlignColumnRight(langs)
//	column.WriteTo(os.Stdout)
//
// # Tables
//
// Registry, Compile and Program build aligned multi-column tables for
// rows of any Go type on top of the same padding engine. See Registry.
package pads

// Value is anything that has a display width and a textual form.
//
// Width must be deterministic: a PaddedColumn measures every value once to
// find the shared width, and each value is measured again when it is
// rendered.
type Value interface {
	// Width returns the number of columns String occupies.
	Width() int
	// String returns the text to be written.
	String() string
}
