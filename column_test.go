package pads

import (
	"bytes"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var languages = []string{
	"Rust", "C", "C++", "C#", "JavaScript",
	"TypeScript", "Java", "Kotlin", "Go",
}

var columnExpectations = map[Alignment][]string{
	Left: {
		"Rust------", "C---------", "C++-------",
		"C#--------", "JavaScript", "TypeScript",
		"Java------", "Kotlin----", "Go--------",
	},
	Right: {
		"------Rust", "---------C", "-------C++",
		"--------C#", "JavaScript", "TypeScript",
		"------Java", "----Kotlin", "--------Go",
	},
	CenterLeft: {
		"---Rust---", "----C-----", "---C++----",
		"----C#----", "JavaScript", "TypeScript",
		"---Java---", "--Kotlin--", "----Go----",
	},
	CenterRight: {
		"---Rust---", "-----C----", "----C++---",
		"----C#----", "JavaScript", "TypeScript",
		"---Java---", "--Kotlin--", "----Go----",
	},
}

func collectStrings[V Value](it *PaddedColumnIter[V]) []string {
	var out []string
	for p := range it.All() {
		out = append(out, p.String())
	}
	return out
}

// once returns a sequence that fails the test if it is ranged over twice.
func once[V any](t *testing.T, values []V) iter.Seq[V] {
	used := false
	return func(yield func(V) bool) {
		require.False(t, used, "sequence consumed twice")
		used = true
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func TestPaddedColumn(t *testing.T) {
	for alignment, expected := range columnExpectations {
		t.Run(alignment.String(), func(t *testing.T) {
			t.Run("texts", func(t *testing.T) {
				column := PaddedColumn[UnicodeWidth]{
					Values: Texts[UnicodeWidth](languages...),
					Block:  "-",
					Pad:    alignment,
				}
				assert.Equal(t, expected, collectStrings(column.Iter()))
			})

			t.Run("slice of bytes metric", func(t *testing.T) {
				values := make([]Len, len(languages))
				for i, s := range languages {
					values[i] = Len(s)
				}
				column := PaddedColumn[Len]{Values: slices.Values(values), Block: "-", Pad: alignment}
				assert.Equal(t, expected, collectStrings(column.Iter()))
			})

			t.Run("single pass input", func(t *testing.T) {
				values := slices.Collect(Texts[CharCount](languages...))
				column := PaddedColumn[CharCount]{Values: once(t, values), Block: "-", Pad: alignment}
				it := column.Iter()
				assert.Equal(t, len(languages), it.Len())
				assert.Equal(t, expected, collectStrings(it))
			})

			t.Run("total output width", func(t *testing.T) {
				column := PaddedColumn[UnicodeWidth]{
					Values: Texts[UnicodeWidth](languages...),
					Block:  "-",
					Pad:    alignment,
				}
				total := 0
				for p := range column.Iter().All() {
					total += UnicodeWidth(p.String()).Width()
				}
				assert.Equal(t, 10*len(languages), total)
			})
		})
	}
}

func TestPaddedColumnMetadata(t *testing.T) {
	it := PaddedColumn[UnicodeWidth]{
		Values: Texts[UnicodeWidth](languages...),
		Block:  " ",
		Pad:    Right,
	}.Iter()
	assert.Equal(t, 10, it.TotalWidth())
	assert.Equal(t, " ", it.Block())
	assert.Equal(t, Right, it.Pad())

	p, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, UnicodeWidth("Rust"), p.Value)
	assert.Equal(t, 10, p.TotalWidth)
	assert.Equal(t, Right, p.Pad)
	assert.Equal(t, PanicOnExcess, p.HandleExcess)
}

func TestPaddedColumnLen(t *testing.T) {
	it := AlignColumnLeft(Texts[UnicodeWidth]("", "a", "bc", "def"))
	type step struct {
		remaining int
		text      string
	}
	var actual []step
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		actual = append(actual, step{it.Len(), p.String()})
	}
	expected := []step{
		{3, "   "},
		{2, "a  "},
		{1, "bc "},
		{0, "def"},
	}
	assert.Equal(t, expected, actual)

	_, ok := it.Next()
	assert.False(t, ok)
	assert.Zero(t, it.Len())
}

func TestPaddedColumnEmpty(t *testing.T) {
	for name, values := range map[string]iter.Seq[UnicodeWidth]{
		"empty": Texts[UnicodeWidth](),
		"nil":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			it := PaddedColumn[UnicodeWidth]{Values: values, Block: "-"}.Iter()
			assert.Zero(t, it.TotalWidth())
			assert.Zero(t, it.Len())
			_, ok := it.Next()
			assert.False(t, ok)
			assert.Equal(t, Left, it.Pad())
		})
	}
}

func TestPaddedColumnClone(t *testing.T) {
	it := AlignColumnRight(Texts[UnicodeWidth]("a", "bb", "ccc"))
	_, _ = it.Next()

	clone := it.Clone()
	assert.Equal(t, []string{" bb", "ccc"}, collectStrings(clone))
	assert.Equal(t, 2, it.Len())
	assert.Equal(t, []string{" bb", "ccc"}, collectStrings(it))
}

func TestPaddedColumnAllStopsEarly(t *testing.T) {
	it := AlignColumnLeft(Texts[UnicodeWidth]("a", "bb", "ccc"))
	for range it.All() {
		break
	}
	assert.Equal(t, 2, it.Len())
}

func TestPaddedColumnWriteTo(t *testing.T) {
	var buf bytes.Buffer
	it := AlignColumnRight(Texts[UnicodeWidth]("1", "22", "333"))
	n, err := it.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "  1\n 22\n333\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
	assert.Zero(t, it.Len())
}

func TestPaddedColumnWriteToError(t *testing.T) {
	boom := errors.New("boom")
	it := AlignColumnRight(Texts[UnicodeWidth]("1", "22", "333"))
	n, err := it.WriteTo(&limitWriter{limit: 5, err: boom})
	assert.Same(t, boom, err)
	assert.Equal(t, int64(5), n)
}

func TestPaddedColumnWriteToSeparator(t *testing.T) {
	column := PaddedColumn[UnicodeWidth]{
		Values: Texts[UnicodeWidth]("a", "bbb", "cc"),
		Block:  "-",
		Pad:    CenterRight,
	}
	var sb strings.Builder
	n, err := column.WriteTo(&sb, ", ")
	require.NoError(t, err)
	assert.Equal(t, "-a-, bbb, -cc", sb.String())
	assert.Equal(t, int64(sb.Len()), n)

	sb.Reset()
	n, err = PaddedColumn[UnicodeWidth]{Values: Texts[UnicodeWidth]("x"), Block: "-"}.WriteTo(&sb, ", ")
	require.NoError(t, err)
	assert.Equal(t, "x", sb.String())
	assert.Equal(t, int64(1), n)
}

func TestPaddedColumnWriteToSeparatorEmpty(t *testing.T) {
	for name, values := range map[string]iter.Seq[UnicodeWidth]{
		"empty": Texts[UnicodeWidth](),
		"nil":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			var sb strings.Builder
			n, err := PaddedColumn[UnicodeWidth]{Values: values, Block: "-"}.WriteTo(&sb, ", ")
			require.NoError(t, err)
			assert.Zero(t, n)
			assert.Empty(t, sb.String())
		})
	}
}

func TestPaddedColumnWriteToSeparatorError(t *testing.T) {
	boom := errors.New("boom")
	column := PaddedColumn[Len]{Values: Texts[Len]("ab", "c"), Block: "-"}
	n, err := column.WriteTo(&limitWriter{limit: 3, err: boom}, "|")
	assert.Same(t, boom, err)
	assert.Equal(t, int64(3), n)
}

func TestPaddedColumnNonDeterministicWidth(t *testing.T) {
	calls := 0
	flaky := Measured{Text: "x", Measure: func(string) int {
		calls++
		return calls - 1
	}}
	it := PaddedColumn[Measured]{Values: slices.Values([]Measured{flaky}), Block: "-"}.Iter()
	assert.Zero(t, it.TotalWidth())

	p, ok := it.Next()
	require.True(t, ok)
	assert.PanicsWithError(t, "value's width (1) is greater than total_width (0)", func() {
		_, _ = p.Render()
	})
}

func TestColumnShortcuts(t *testing.T) {
	tests := map[string]struct {
		column   func(iter.Seq[UnicodeWidth]) *PaddedColumnIter[UnicodeWidth]
		expected []string
	}{
		"left":         {AlignColumnLeft[UnicodeWidth], columnExpectations[Left]},
		"right":        {AlignColumnRight[UnicodeWidth], columnExpectations[Right]},
		"center left":  {AlignColumnCenterLeft[UnicodeWidth], columnExpectations[CenterLeft]},
		"center right": {AlignColumnCenterRight[UnicodeWidth], columnExpectations[CenterRight]},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			it := tc.column(Texts[UnicodeWidth](languages...))
			assert.Equal(t, " ", it.Block())
			expected := make([]string, len(tc.expected))
			for i, s := range tc.expected {
				expected[i] = strings.ReplaceAll(s, "-", " ")
			}
			assert.Equal(t, expected, collectStrings(it))
		})
	}
}
