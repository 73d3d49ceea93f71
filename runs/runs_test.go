package runs

import (
	"image/color"
	"testing"

	"github.com/tdewolff/reflow"
	"github.com/tdewolff/test"
)

func TestFace(t *testing.T) {
	face, err := DefaultFace(12.0)
	test.Error(t, err)
	test.String(t, face.String(), "Go Regular 12u")
	test.That(t, 0.0 < face.Advance('a', 1.0))
	test.That(t, 0.0 < face.Ascent(1.0))
	test.That(t, 0.0 < face.Descent(1.0))
	test.Float(t, face.Advance('a', 2.0), 2.0*face.Advance('a', 1.0))
	test.Float(t, face.WithSize(24.0).Advance('a', 1.0), face.Advance('a', 2.0))
	test.Float(t, face.TextWidth([]rune("ab"), 1.0), face.Advance('a', 1.0)+face.Kerning('a', 'b', 1.0)+face.Advance('b', 1.0))

	mono, err := MonoFace(12.0)
	test.Error(t, err)
	test.Float(t, mono.Advance('i', 1.0), mono.Advance('W', 1.0))

	_, err = LoadFace("garbage", []byte("not a font"), 0, 12.0)
	test.That(t, err != nil)
}

func TestTextRun(t *testing.T) {
	face, err := DefaultFace(12.0)
	test.Error(t, err)

	text, runs := NewTextLine("hello world", face, color.RGBA{0, 0, 0, 255})
	test.T(t, len(runs), 1)
	run := runs[0].(*TextRun)
	test.T(t, run.TextRange(), reflow.TextRange{BeginIndex: 0, EndIndex: 11})
	test.String(t, run.Text(), "hello world")
	test.T(t, text.Len(), 11)

	size := run.Measure(0, 5, 1.0)
	test.Float(t, size.W, face.TextWidth([]rune("hello"), 1.0))
	test.Float(t, size.H, float64(run.BaselineAbove(1.0))+float64(run.BaselineBelow(1.0)))
	test.Float(t, run.Measure(0, 0, 1.0).W, 0.0)
	test.Float(t, run.Kerning(0, 1.0), 0.0)
	test.Float(t, run.Kerning(11, 1.0), 0.0)

	// cached advances must follow scale changes
	run.BeginLayout()
	w1 := run.Measure(0, 5, 1.0).W
	w2 := run.Measure(0, 5, 2.0).W
	run.EndLayout()
	test.Float(t, w2, 2.0*w1)

	clone := run.Clone().(*TextRun)
	test.That(t, run.CanMergeWith(clone))
	clone.Color = color.RGBA{255, 0, 0, 255}
	test.That(t, !run.CanMergeWith(clone))

	clone.Move(text, reflow.TextRange{BeginIndex: 6, EndIndex: 11})
	test.String(t, clone.Text(), "world")
	test.String(t, run.Text(), "hello world")
}

func TestTextRunTextIndexAt(t *testing.T) {
	face, err := MonoFace(10.0)
	test.Error(t, err)

	text, runs := NewTextLine("abc", face, color.RGBA{0, 0, 0, 255})
	run := runs[0].(*TextRun)
	w := face.Advance('a', 1.0)
	block := run.CreateBlock(reflow.BlockDefinition{ActualRange: reflow.TextRange{BeginIndex: 0, EndIndex: text.Len()}}, run.Measure(0, 3, 1.0), 1.0)

	var tests = []struct {
		x        float64
		index    int
		hitPoint reflow.TextHitPoint
	}{
		{-1.0, 0, reflow.LeftGutter},
		{0.2 * w, 0, reflow.WithinText},
		{0.8 * w, 1, reflow.WithinText},
		{1.4 * w, 1, reflow.WithinText},
		{2.9 * w, 3, reflow.WithinText},
		{3.5 * w, 3, reflow.RightGutter},
	}
	for _, tt := range tests {
		t.Run(reflow.Point{X: tt.x}.String(), func(t *testing.T) {
			index, hitPoint := run.TextIndexAt(run, block, tt.x, 1.0)
			test.T(t, index, tt.index)
			test.T(t, hitPoint, tt.hitPoint)
		})
	}
}

func TestMonoRun(t *testing.T) {
	text := reflow.NewLineText("a\u4e16\tb\u0301")
	run := NewMonoRun(text, reflow.TextRange{BeginIndex: 0, EndIndex: text.Len()}, 8.0, 16.0, "")

	test.T(t, run.Cells(0, 1), 1)
	test.T(t, run.Cells(1, 2), 2)
	test.T(t, run.Cells(2, 3), TabCells)
	test.T(t, run.Cells(3, 5), 1)
	test.Float(t, run.Measure(0, 5, 1.0).W, float64(1+2+TabCells+1)*8.0)
	test.Float(t, run.Measure(0, 2, 0.5).W, 12.0)
	test.Float(t, run.Kerning(1, 1.0), 0.0)
	test.T(t, run.BaselineAbove(1.0), int16(13))
	test.T(t, run.BaselineBelow(1.0), int16(3))

	other := NewMonoRun(text, reflow.TextRange{BeginIndex: 5, EndIndex: 5}, 8.0, 16.0, "")
	test.That(t, run.CanMergeWith(other))
	other.Style = "\x1b[1m"
	test.That(t, !run.CanMergeWith(other))
	test.That(t, !run.CanMergeWith(&ObjectRun{}))
}

func TestObjectRun(t *testing.T) {
	face, err := DefaultFace(10.0)
	test.Error(t, err)
	ascent, descent := face.Ascent(1.0), face.Descent(1.0)

	text := reflow.NewLineText(string(ObjectReplacementChar))
	var tests = []struct {
		valign      VerticalAlign
		top, bottom float64
	}{
		{Baseline, 4.0, 0.0},
		{FontTop, ascent, ascent - 4.0},
		{FontMiddle, (ascent - descent + 4.0) / 2.0, (ascent - descent - 4.0) / 2.0},
		{FontBottom, -descent + 4.0, -descent},
	}
	for _, tt := range tests {
		t.Run(tt.valign.String(), func(t *testing.T) {
			run := NewObjectRun(text, reflow.TextRange{BeginIndex: 0, EndIndex: 1}, 6.0, 4.0, tt.valign, face, nil)
			top, bottom := run.Heights(1.0)
			test.Float(t, top, tt.top)
			test.Float(t, bottom, tt.bottom)
			test.Float(t, run.Measure(0, 1, 1.0).W, 6.0)
			test.Float(t, run.Measure(0, 0, 1.0).W, 0.0)
			test.That(t, 0 <= run.BaselineAbove(1.0))
			test.That(t, 0 <= run.BaselineBelow(1.0))
		})
	}
	test.String(t, VerticalAlign(9).String(), "Invalid(9)")

	run := NewObjectRun(text, reflow.TextRange{BeginIndex: 0, EndIndex: 1}, 6.0, 4.0, Baseline, nil, "image")
	block := run.CreateBlock(reflow.BlockDefinition{ActualRange: run.TextRange()}, run.Measure(0, 1, 1.0), 1.0)
	index, hitPoint := run.TextIndexAt(run, block, 2.0, 1.0)
	test.T(t, index, 0)
	test.T(t, hitPoint, reflow.WithinText)
	index, hitPoint = run.TextIndexAt(run, block, 4.0, 1.0)
	test.T(t, index, 1)
	test.T(t, hitPoint, reflow.WithinText)
	index, hitPoint = run.TextIndexAt(run, block, 7.0, 1.0)
	test.T(t, index, 1)
	test.T(t, hitPoint, reflow.RightGutter)
	test.T(t, run.Clone().(*ObjectRun).Object, interface{}("image"))
}
