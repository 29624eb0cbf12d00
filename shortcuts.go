package pads

import "iter"

func spaced[V Value](value V, totalWidth int, pad Pad) PaddedValue[V] {
	return PaddedValue[V]{
		Value:        value,
		Block:        " ",
		TotalWidth:   totalWidth,
		Pad:          pad,
		HandleExcess: IgnoreExcess,
	}
}

// AlignLeft pads value with spaces on the right. A value wider than
// totalWidth is written as-is.
//
//	pads.AlignLeft(pads.UnicodeWidth("abc"), 5) // "abc  "
func AlignLeft[V Value](value V, totalWidth int) PaddedValue[V] {
	return spaced(value, totalWidth, Left)
}

// AlignRight pads value with spaces on the left. A value wider than
// totalWidth is written as-is.
//
//	pads.AlignRight(pads.UnicodeWidth("abc"), 5) // "  abc"
func AlignRight[V Value](value V, totalWidth int) PaddedValue[V] {
	return spaced(value, totalWidth, Right)
}

// AlignCenterLeft pads value with spaces on both sides, the odd space
// going to the right.
//
//	pads.AlignCenterLeft(pads.UnicodeWidth("abc"), 8) // "  abc   "
func AlignCenterLeft[V Value](value V, totalWidth int) PaddedValue[V] {
	return spaced(value, totalWidth, CenterLeft)
}

// AlignCenterRight pads value with spaces on both sides, the odd space
// going to the left.
//
//	pads.AlignCenterRight(pads.UnicodeWidth("abc"), 8) // "   abc  "
func AlignCenterRight[V Value](value V, totalWidth int) PaddedValue[V] {
	return spaced(value, totalWidth, CenterRight)
}

func spacedColumn[V Value](values iter.Seq[V], pad Pad) *PaddedColumnIter[V] {
	return PaddedColumn[V]{Values: values, Block: " ", Pad: pad}.Iter()
}

// AlignColumnLeft pads every value with spaces on the right so that they
// all share the same width.
func AlignColumnLeft[V Value](values iter.Seq[V]) *PaddedColumnIter[V] {
	return spacedColumn(values, Left)
}

// AlignColumnRight pads every value with spaces on the left so that they
// all share the same width.
func AlignColumnRight[V Value](values iter.Seq[V]) *PaddedColumnIter[V] {
	return spacedColumn(values, Right)
}

// AlignColumnCenterLeft centers every value in the shared width, odd
// spaces going to the right.
func AlignColumnCenterLeft[V Value](values iter.Seq[V]) *PaddedColumnIter[V] {
	return spacedColumn(values, CenterLeft)
}

// AlignColumnCenterRight centers every value in the shared width, odd
// spaces going to the left.
func AlignColumnCenterRight[V Value](values iter.Seq[V]) *PaddedColumnIter[V] {
	return spacedColumn(values, CenterRight)
}
