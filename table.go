package pads

import (
	"io"
	"iter"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Kind represents the data type of a field.
type Kind int

const (
	// KindString indicates a string field.
	KindString Kind = iota + 1
	// KindInt indicates an integer field.
	KindInt
	// KindFloat indicates a floating-point field.
	KindFloat
	// KindCustom indicates a custom formatter function.
	KindCustom
)

// Field describes how to extract and format a field from type T.
//
// Fields are created using the Registry.Field() builder pattern, not
// by constructing this struct directly.
type Field[T any] struct {
	// Name is the unique identifier for this field
	Name string

	// Display is the text shown in the column header
	Display string

	// Description provides help text for this field
	Description string

	// Category groups fields in PrintHelp output
	Category string

	// Width is the column width in display columns. Zero sizes the
	// column to its widest cell (see Program.WriteTable).
	Width int

	// Align places the cell text within the column
	Align Alignment

	// Kind indicates the data type (String, Int, Float, Custom)
	Kind Kind

	// Precision specifies decimal places for Float fields
	Precision int

	// Value extractors - only one should be set based on Kind
	GetString func(*T) string
	GetInt    func(*T) int
	GetFloat  func(*T) float64
	GetCustom func(dst []byte, v *T) []byte
}

// Options configures program compilation.
type Options struct {
	// Separator is inserted between columns (Compile uses "  ")
	Separator string

	// NoPadding disables all column padding (useful for CSV)
	NoPadding bool

	// PadLastColumn pads the last column to its width (default: false)
	// Setting to false avoids trailing filler
	PadLastColumn bool

	// NoHeader skips header line generation
	NoHeader bool

	// NoUnderline skips underline generation
	NoUnderline bool

	// Metric measures cell text (default: MetricUnicode)
	Metric Metric

	// Excess handles cells wider than a fixed column width
	// (default: TruncateExcess)
	Excess ExcessHandler

	// Filler is the block used for padding (default: " ")
	Filler string

	// Logger receives debug output about compiled and sized columns
	// (default: discarded)
	Logger logrus.FieldLogger
}

// compiledCol is a resolved column of a Program.
type compiledCol[T any] struct {
	name    string
	display string
	// width is the fixed width, or the header width when auto is set.
	width int
	auto  bool
	pad   Pad
	text  func(v *T) string
}

// Program is a compiled formatting plan for type T.
//
// Programs are created by Compile() and can be reused for any number of
// rows. A Program is read-only after compilation and safe for concurrent
// use.
type Program[T any] struct {
	header    []byte
	underline []byte
	separator string
	filler    string
	metric    Metric
	excess    ExcessHandler
	noHeader  bool
	columns   []compiledCol[T]
	log       logrus.FieldLogger
}

// WriteHeader writes the column headers to w.
//
// The line buffer is used for temporary storage and reused across calls.
// Nothing is written when the program was compiled with NoHeader.
func (p *Program[T]) WriteHeader(w io.Writer, line *[]byte) error {
	if p.noHeader {
		return nil
	}
	return p.writeLine(w, line, p.header)
}

// WriteUnderline writes the header underline to w.
//
// The underline has a dash under every header character and filler
// elsewhere.
func (p *Program[T]) WriteUnderline(w io.Writer, line *[]byte) error {
	if p.underline == nil {
		return nil
	}
	return p.writeLine(w, line, p.underline)
}

func (p *Program[T]) writeLine(w io.Writer, line *[]byte, content []byte) error {
	*line = append((*line)[:0], content...)
	*line = append(*line, '\n')
	_, err := w.Write(*line)
	return err
}

// WriteRow formats and writes a single row to w.
//
// Columns are padded to their fixed widths; a column compiled with
// width 0 uses the width of its header. Use WriteTable to size such
// columns to their content. The line buffer accumulates the complete row
// before the single write to w.
func (p *Program[T]) WriteRow(w io.Writer, v *T, line *[]byte) error {
	var err error
	if *line, err = p.appendRow((*line)[:0], v); err != nil {
		return err
	}
	*line = append(*line, '\n')
	_, err = w.Write(*line)
	return err
}

// HeaderString returns the header as a string.
func (p *Program[T]) HeaderString() string {
	return string(p.header)
}

// FormatRow formats a row and returns it as a string.
//
// This is less efficient than WriteRow as it allocates a string.
// Prefer WriteRow for high-volume output.
func (p *Program[T]) FormatRow(v *T, line *[]byte) (string, error) {
	var err error
	if *line, err = p.appendRow((*line)[:0], v); err != nil {
		return "", err
	}
	return string(*line), nil
}

func (p *Program[T]) appendRow(dst []byte, v *T) ([]byte, error) {
	var err error
	for i := range p.columns {
		if i > 0 {
			dst = append(dst, p.separator...)
		}
		c := &p.columns[i]
		value := p.metric.Text(c.text(v))
		if c.auto && value.Width() > c.width {
			p.log.WithFields(logrus.Fields{
				"column": c.name,
				"width":  c.width,
				"cell":   value.Width(),
			}).Debug("auto-width cell exceeds header width")
		}
		if dst, err = p.cell(c, value, c.width).AppendTo(dst); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// WriteTable writes the header, the underline and every row to w.
//
// Columns compiled with width 0 are sized to their widest cell, header
// included. This needs every row before the first line can be written, so
// rows is read once and its cells are buffered.
func (p *Program[T]) WriteTable(w io.Writer, rows iter.Seq[T]) error {
	cells := make([][]Value, len(p.columns))
	if !p.noHeader {
		for i := range p.columns {
			cells[i] = append(cells[i], p.metric.Text(p.columns[i].display))
		}
	}
	for row := range rows {
		for i := range p.columns {
			cells[i] = append(cells[i], p.metric.Text(p.columns[i].text(&row)))
		}
	}

	widths := make([]int, len(p.columns))
	sized := make([]*PaddedColumnIter[Value], len(p.columns))
	for i := range p.columns {
		c := &p.columns[i]
		if !c.auto {
			widths[i] = c.width
			continue
		}
		sized[i] = PaddedColumn[Value]{
			Values: slices.Values(cells[i]),
			Block:  p.filler,
			Pad:    c.pad,
		}.Iter()
		widths[i] = sized[i].TotalWidth()
		p.log.WithFields(logrus.Fields{
			"column": c.name,
			"width":  widths[i],
			"cells":  sized[i].Len(),
		}).Debug("sized column")
	}

	var (
		line []byte
		err  error
	)
	lines := 0
	if len(cells) > 0 {
		lines = len(cells[0])
	}
	for r := 0; r < lines; r++ {
		line = line[:0]
		for i := range p.columns {
			if i > 0 {
				line = append(line, p.separator...)
			}
			var cell PaddedValue[Value]
			if sized[i] != nil {
				// Every sized column buffered exactly lines cells.
				if cell, err = nextCell(sized[i], p.columns[i].name); err != nil {
					return err
				}
			} else {
				cell = p.cell(&p.columns[i], cells[i][r], widths[i])
			}
			if line, err = cell.AppendTo(line); err != nil {
				return err
			}
		}
		line = append(line, '\n')
		if r == 0 && !p.noHeader && p.underline != nil {
			if line, err = p.appendUnderline(line, widths); err != nil {
				return err
			}
			line = append(line, '\n')
		}
		if _, err = w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func nextCell(it *PaddedColumnIter[Value], column string) (PaddedValue[Value], error) {
	cell, ok := it.Next()
	if !ok {
		return cell, errors.Errorf("column %q ran out of cells", column)
	}
	return cell, nil
}

func (p *Program[T]) cell(c *compiledCol[T], value Value, width int) PaddedValue[Value] {
	return PaddedValue[Value]{
		Value:        value,
		Block:        p.filler,
		TotalWidth:   width,
		Pad:          c.pad,
		HandleExcess: p.excess,
	}
}

// appendHeader appends the header cells, each padded to widths[i].
func (p *Program[T]) appendHeader(dst []byte, widths []int) ([]byte, error) {
	var err error
	for i := range p.columns {
		if i > 0 {
			dst = append(dst, p.separator...)
		}
		c := &p.columns[i]
		if dst, err = p.cell(c, p.metric.Text(c.display), widths[i]).AppendTo(dst); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// appendUnderline appends dashes as wide as each visible header.
func (p *Program[T]) appendUnderline(dst []byte, widths []int) ([]byte, error) {
	var err error
	for i := range p.columns {
		if i > 0 {
			dst = append(dst, p.separator...)
		}
		c := &p.columns[i]
		n := min(p.metric.Text(c.display).Width(), widths[i])
		if dst, err = p.cell(c, p.metric.Text(dashes(n)), widths[i]).AppendTo(dst); err != nil {
			return dst, err
		}
	}
	return dst, nil
}
