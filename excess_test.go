package pads

import (
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func excessCase(handler ExcessHandler, value string, totalWidth int) PaddedValue[Len] {
	return PaddedValue[Len]{
		Value:        Len(value),
		Block:        "-",
		TotalWidth:   totalWidth,
		Pad:          Right,
		HandleExcess: handler,
	}
}

func TestPanicOnExcess(t *testing.T) {
	assert.Equal(t, "---abcdef", excessCase(PanicOnExcess, "abcdef", 9).String())
	assert.PanicsWithError(t, "value's width (9) is greater than total_width (6)", func() {
		_, _ = excessCase(PanicOnExcess, "abcdefghi", 6).Render()
	})
}

func TestErrorOnExcess(t *testing.T) {
	assert.Equal(t, "---abcdef", excessCase(ErrorOnExcess, "abcdef", 9).String())

	var sb strings.Builder
	n, err := excessCase(ErrorOnExcess, "abcdefghi", 6).WriteTo(&sb)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Empty(t, sb.String())
	assert.Equal(t, "value's width (9) is greater than total_width (6)", err.Error())

	var excessErr *ExcessError
	require.ErrorAs(t, err, &excessErr)
	assert.Equal(t, 9, excessErr.ValueWidth)
	assert.Equal(t, 6, excessErr.TotalWidth)
}

func TestErrorOnExcessStringPanics(t *testing.T) {
	assert.PanicsWithError(t, "value's width (9) is greater than total_width (6)", func() {
		_ = excessCase(ErrorOnExcess, "abcdefghi", 6).String()
	})
}

func TestIgnoreExcess(t *testing.T) {
	assert.Equal(t, "---abcdef", excessCase(IgnoreExcess, "abcdef", 9).String())
	assert.Equal(t, "abcdefghi", excessCase(IgnoreExcess, "abcdefghi", 6).String())
	assert.Equal(t, "abcdefghijkl", excessCase(IgnoreExcess, "abcdefghijkl", 9).String())
}

func TestDefaultExcessHandlerIgnores(t *testing.T) {
	padded := PaddedValue[Len]{Value: "abcdefghi", Block: "-", TotalWidth: 6}
	assert.Equal(t, "abcdefghi", padded.String())
}

func TestTruncateExcess(t *testing.T) {
	assert.Equal(t, "---abcdef", excessCase(TruncateExcess, "abcdef", 9).String())
	assert.Equal(t, "abcdef", excessCase(TruncateExcess, "abcdefghi", 6).String())

	wide := PaddedValue[UnicodeWidth]{
		Value:        "中文字",
		Block:        ".",
		TotalWidth:   5,
		HandleExcess: TruncateExcess,
	}
	s := wide.String()
	assert.Equal(t, "中文.", s)
	assert.Equal(t, 5, UnicodeWidth(s).Width())
}

func TestTruncateExcessWithoutTruncator(t *testing.T) {
	padded := PaddedValue[Measured]{
		Value:        Measured{Text: "abc", Measure: func(string) int { return 10 }},
		TotalWidth:   4,
		HandleExcess: TruncateExcess,
	}
	assert.Equal(t, "abc", padded.String())
}

func TestExcessHandlerFunc(t *testing.T) {
	var seen Excess
	marker := ExcessHandlerFunc(func(w io.Writer, excess Excess) error {
		seen = excess
		_, err := io.WriteString(w, strings.Repeat("#", excess.TotalWidth))
		return err
	})
	assert.Equal(t, "####", excessCase(marker, "abcdefg", 4).String())
	assert.Equal(t, Len("abcdefg"), seen.Value)
	assert.Equal(t, "-", seen.Block)
	assert.Equal(t, 7, seen.ValueWidth)
	assert.Equal(t, 4, seen.TotalWidth)
}

func TestExcessHandlerNotCalledWhenEqual(t *testing.T) {
	called := false
	handler := ExcessHandlerFunc(func(io.Writer, Excess) error {
		called = true
		return nil
	})
	assert.Equal(t, "abc", excessCase(handler, "abc", 3).String())
	assert.False(t, called)
}

func TestExcessWriteError(t *testing.T) {
	boom := errors.New("boom")
	_, err := excessCase(IgnoreExcess, "abcdefghi", 6).WriteTo(&limitWriter{err: boom})
	assert.Same(t, boom, err)
}

func TestUnknownExcessPolicy(t *testing.T) {
	_, err := excessCase(ExcessPolicy(42), "abcdefghi", 6).Render()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown excess policy 42")
	assert.Equal(t, "unknown", ExcessPolicy(42).String())
	assert.Equal(t, "truncate", TruncateExcess.String())
}
