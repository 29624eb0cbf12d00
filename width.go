package pads

import (
	"iter"
	"unicode/utf8"

	"github.com/clipperhouse/displaywidth"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// The package-level runewidth functions read the locale from the
// environment. These conditions pin the East Asian Width interpretation so
// a metric means the same thing on every machine.
var (
	narrowCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}
	wideCond   = &runewidth.Condition{EastAsianWidth: true, StrictEmojiNeutral: true}
)

// Truncator is implemented by values that can cut themselves down to a
// width using their own metric. TruncateExcess relies on it.
type Truncator interface {
	// Truncate returns the longest prefix whose width does not exceed
	// width, together with the width of that prefix.
	Truncate(width int) (string, int)
}

// Len measures text by its length in bytes.
type Len string

func (s Len) Width() int     { return len(s) }
func (s Len) String() string { return string(s) }

func (s Len) Truncate(width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	if len(s) <= width {
		return string(s), len(s)
	}
	return string(s[:width]), width
}

// CharCount measures text by its number of runes.
type CharCount string

func (s CharCount) Width() int     { return utf8.RuneCountInString(string(s)) }
func (s CharCount) String() string { return string(s) }

func (s CharCount) Truncate(width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	n := 0
	for i := range string(s) {
		if n == width {
			return string(s[:i]), n
		}
		n++
	}
	return string(s), n
}

// UnicodeWidth measures text in terminal cells, treating East Asian
// ambiguous characters as narrow.
type UnicodeWidth string

func (s UnicodeWidth) Width() int     { return narrowCond.StringWidth(string(s)) }
func (s UnicodeWidth) String() string { return string(s) }

func (s UnicodeWidth) Truncate(width int) (string, int) {
	return truncateCells(narrowCond, string(s), width)
}

// UnicodeWidthCJK measures text in terminal cells, treating East Asian
// ambiguous characters as wide, as CJK terminals do.
type UnicodeWidthCJK string

func (s UnicodeWidthCJK) Width() int     { return wideCond.StringWidth(string(s)) }
func (s UnicodeWidthCJK) String() string { return string(s) }

func (s UnicodeWidthCJK) Truncate(width int) (string, int) {
	return truncateCells(wideCond, string(s), width)
}

func truncateCells(cond *runewidth.Condition, s string, width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	cut := cond.Truncate(s, width, "")
	return cut, cond.StringWidth(cut)
}

// GraphemeWidth measures text in terminal cells one grapheme cluster at a
// time, so emoji sequences and combining marks count as a single glyph.
type GraphemeWidth string

func (s GraphemeWidth) Width() int     { return displaywidth.String(string(s)) }
func (s GraphemeWidth) String() string { return string(s) }

func (s GraphemeWidth) Truncate(width int) (string, int) {
	end, used := 0, 0
	g := uniseg.NewGraphemes(string(s))
	for g.Next() {
		w := displaywidth.String(g.Str())
		if used+w > width {
			break
		}
		used += w
		_, end = g.Positions()
	}
	return string(s[:end]), used
}

// GraphemeCount measures text by its number of user-perceived characters.
type GraphemeCount string

func (s GraphemeCount) Width() int     { return uniseg.GraphemeClusterCount(string(s)) }
func (s GraphemeCount) String() string { return string(s) }

func (s GraphemeCount) Truncate(width int) (string, int) {
	end, n := 0, 0
	g := uniseg.NewGraphemes(string(s))
	for n < width && g.Next() {
		_, end = g.Positions()
		n++
	}
	return string(s[:end]), n
}

// Measured pairs text with an arbitrary measuring function.
type Measured struct {
	Text    string
	Measure func(string) int
}

func (m Measured) Width() int     { return m.Measure(m.Text) }
func (m Measured) String() string { return m.Text }

// Texts lifts plain strings into the metric W.
//
//	pads.Texts[pads.CharCount]("a", "bc", "déf")
func Texts[W interface {
	~string
	Value
}](texts ...string) iter.Seq[W] {
	return func(yield func(W) bool) {
		for _, s := range texts {
			if !yield(W(s)) {
				return
			}
		}
	}
}

// Metric names one of the text wrappers in this package. It lets callers
// choose a measurement at run time, as the table layer does.
type Metric int

const (
	// MetricUnicode selects UnicodeWidth (default).
	MetricUnicode Metric = iota
	// MetricUnicodeCJK selects UnicodeWidthCJK.
	MetricUnicodeCJK
	// MetricGraphemeWidth selects GraphemeWidth.
	MetricGraphemeWidth
	// MetricGraphemeCount selects GraphemeCount.
	MetricGraphemeCount
	// MetricChars selects CharCount.
	MetricChars
	// MetricBytes selects Len.
	MetricBytes
)

// Text wraps s in the type selected by m. An unknown Metric falls back to
// UnicodeWidth; CompileWithOptions rejects one up front.
func (m Metric) Text(s string) Value {
	switch m {
	case MetricUnicodeCJK:
		return UnicodeWidthCJK(s)
	case MetricGraphemeWidth:
		return GraphemeWidth(s)
	case MetricGraphemeCount:
		return GraphemeCount(s)
	case MetricChars:
		return CharCount(s)
	case MetricBytes:
		return Len(s)
	default:
		return UnicodeWidth(s)
	}
}

func (m Metric) valid() bool {
	return m >= MetricUnicode && m <= MetricBytes
}

func (m Metric) String() string {
	switch m {
	case MetricUnicode:
		return "unicode"
	case MetricUnicodeCJK:
		return "unicode-cjk"
	case MetricGraphemeWidth:
		return "grapheme-width"
	case MetricGraphemeCount:
		return "grapheme-count"
	case MetricChars:
		return "chars"
	case MetricBytes:
		return "bytes"
	default:
		return "unknown"
	}
}
