package pads

import (
	"io"
	"iter"
)

// PaddedColumn pads every value of a sequence to the width of the widest
// one.
//
// Values may be a single-use sequence. Iter reads it exactly once.
type PaddedColumn[V Value] struct {
	// Values to be padded.
	Values iter.Seq[V]
	// Block is the filler, expected to be one column wide.
	Block string
	// Pad decides where the blocks go. A nil Pad behaves like Left.
	Pad Pad
}

// Iter reads every value, remembering each one and the largest width, and
// returns an iterator over the padded values. The widest value must be
// known before the first one can be padded, so the whole input is buffered.
func (c PaddedColumn[V]) Iter() *PaddedColumnIter[V] {
	var (
		values     []V
		totalWidth int
	)
	if c.Values != nil {
		for v := range c.Values {
			totalWidth = max(totalWidth, v.Width())
			values = append(values, v)
		}
	}
	pad := c.Pad
	if pad == nil {
		pad = Left
	}
	return &PaddedColumnIter[V]{
		values:     values,
		block:      c.Block,
		pad:        pad,
		totalWidth: totalWidth,
	}
}

// WriteTo realises the column and writes every padded value to w, with sep
// between consecutive values. Nothing is written for an empty column.
func (c PaddedColumn[V]) WriteTo(w io.Writer, sep string) (int64, error) {
	cw := &countingWriter{w: w}
	it := c.Iter()
	for i := 0; ; i++ {
		p, ok := it.Next()
		if !ok {
			return cw.n, nil
		}
		if i > 0 {
			if _, err := io.WriteString(cw, sep); err != nil {
				return cw.n, err
			}
		}
		if err := p.render(cw); err != nil {
			return cw.n, err
		}
	}
}

// PaddedColumnIter yields the padded values of a PaddedColumn in input
// order. It is created by PaddedColumn.Iter.
//
// Every yielded PaddedValue uses PanicOnExcess: no value can be wider than
// the column, unless its Width is not deterministic.
type PaddedColumnIter[V Value] struct {
	values     []V
	next       int
	block      string
	pad        Pad
	totalWidth int
}

// Next returns the next padded value, or false when the column is
// exhausted.
func (it *PaddedColumnIter[V]) Next() (PaddedValue[V], bool) {
	if it.next >= len(it.values) {
		return PaddedValue[V]{}, false
	}
	v := it.values[it.next]
	it.next++
	return it.wrap(v), true
}

// Len returns the exact number of values not yet returned by Next.
func (it *PaddedColumnIter[V]) Len() int {
	return len(it.values) - it.next
}

// TotalWidth returns the shared width, which is the width of the widest
// value or 0 for an empty column.
func (it *PaddedColumnIter[V]) TotalWidth() int {
	return it.totalWidth
}

// Block returns the filler block.
func (it *PaddedColumnIter[V]) Block() string {
	return it.block
}

// Pad returns the pad placement in use.
func (it *PaddedColumnIter[V]) Pad() Pad {
	return it.pad
}

// All returns a sequence over the remaining padded values. Ranging over
// it advances the iterator.
func (it *PaddedColumnIter[V]) All() iter.Seq[PaddedValue[V]] {
	return func(yield func(PaddedValue[V]) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Clone returns an independent iterator at the same position. The
// buffered values are shared, not copied.
func (it *PaddedColumnIter[V]) Clone() *PaddedColumnIter[V] {
	c := *it
	return &c
}

// WriteTo writes each remaining padded value to w on its own line and
// advances the iterator past them. Use PaddedColumn.WriteTo for another
// separator.
func (it *PaddedColumnIter[V]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	for p := range it.All() {
		if err := p.render(cw); err != nil {
			return cw.n, err
		}
		if _, err := io.WriteString(cw, "\n"); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

func (it *PaddedColumnIter[V]) wrap(v V) PaddedValue[V] {
	return PaddedValue[V]{
		Value:        v,
		Block:        it.block,
		TotalWidth:   it.totalWidth,
		Pad:          it.pad,
		HandleExcess: PanicOnExcess,
	}
}
