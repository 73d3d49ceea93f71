package reflow

import (
	"testing"

	"github.com/tdewolff/test"
)

func viewRanges(l *TextLayout) []TextRange {
	rs := []TextRange{}
	for _, view := range l.LineViews() {
		rs = append(rs, view.Range)
	}
	return rs
}

func TestBreakCandidates(t *testing.T) {
	l := NewTextLayout()
	l.SetDebug(true)
	text, runs := newTestLine("The quick fox")
	test.Error(t, l.AddLine(text, runs))
	l.UpdateIfNeeded()

	line := l.LineModels()[0]
	test.That(t, line.HasWrappingInformation)
	test.T(t, len(line.BreakCandidates), 3)

	c := line.BreakCandidates[0]
	test.T(t, c.ActualRange, TextRange{0, 4})
	test.T(t, c.TrimmedRange, TextRange{0, 3})
	test.Float(t, c.ActualSize.W, 33.0)
	test.Float(t, c.TrimmedSize.W, 27.0)
	test.Float(t, c.ActualSize.H, 10.0)
	test.T(t, c.MaxAboveBaseline, int16(8))
	test.T(t, c.MaxBelowBaseline, int16(2))
	test.String(t, c.DebugSlice, "The ")

	c = line.BreakCandidates[2]
	test.T(t, c.ActualRange, TextRange{10, 13})
	test.T(t, c.TrimmedRange, TextRange{10, 13})
	test.Float(t, c.ActualSize.W, 20.0)
	test.String(t, c.DebugSlice, "fox")

	l.SetDebug(false)
	test.That(t, !line.HasWrappingInformation)
	l.UpdateIfNeeded()
	test.String(t, line.BreakCandidates[0].DebugSlice, "")
}

func TestFlowLayout(t *testing.T) {
	var tests = []struct {
		name          string
		wrappingWidth float64
		ranges        []TextRange
		widths        []float64
	}{
		{"no wrap", 0.0, []TextRange{{0, 13}}, []float64{104.0}},
		{"wide", 200.0, []TextRange{{0, 13}}, []float64{104.0}},
		{"wrap", 80.0, []TextRange{{0, 10}, {10, 13}}, []float64{84.0, 20.0}},
		{"trailing space fits", 78.0, []TextRange{{0, 10}, {10, 13}}, []float64{84.0, 20.0}},
		{"narrow", 77.0, []TextRange{{0, 4}, {4, 13}}, []float64{33.0, 71.0}},
		{"too narrow", 10.0, []TextRange{{0, 4}, {4, 10}, {10, 13}}, []float64{33.0, 51.0, 20.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout(tt.wrappingWidth, "The quick fox")
			test.T(t, viewRanges(l), tt.ranges)
			for i, view := range l.LineViews() {
				test.Float(t, view.Size.W, tt.widths[i])
				test.Float(t, view.Offset.Y, 10.0*float64(i))
			}
		})
	}
}

func TestLineView(t *testing.T) {
	l := newTestLayout(80.0, "The quick fox", "", "ab")
	views := l.LineViews()
	test.T(t, len(views), 4)

	view := views[0]
	test.T(t, view.ModelIndex, 0)
	test.T(t, view.Range, TextRange{0, 10})
	test.T(t, view.TrimmedRange, TextRange{0, 9})
	test.T(t, view.Size, Size{84.0, 10.0})
	test.T(t, view.TextSize, Size{78.0, 10.0})
	test.Float(t, view.Baseline, 8.0)
	test.T(t, len(view.Blocks), 1)
	test.T(t, view.Blocks[0].TextRange(), TextRange{0, 10})
	test.T(t, view.Blocks[0].LocationOffset(), Point{0.0, 0.0})

	view = views[1]
	test.T(t, view.ModelIndex, 0)
	test.T(t, view.Range, TextRange{10, 13})
	test.T(t, view.Offset, Point{0.0, 10.0})

	view = views[2]
	test.T(t, view.ModelIndex, 1)
	test.T(t, view.Range, TextRange{0, 0})
	test.T(t, view.Size, Size{0.0, 10.0})
	test.T(t, len(view.Blocks), 1)
	test.T(t, view.Blocks[0].TextRange(), TextRange{0, 0})

	view = views[3]
	test.T(t, view.ModelIndex, 2)
	test.T(t, view.Offset, Point{0.0, 30.0})
	test.String(t, view.String(), "LineView{model=2 [0,2) offset=(0,30) size=18x10 blocks=1}")
	test.T(t, view.Bounds(), Rect{0.0, 30.0, 18.0, 10.0})

	test.T(t, l.DrawSize(), Size{84.0, 40.0})
	test.T(t, l.Size(), Size{84.0, 40.0})
}

func TestLineViewBaseline(t *testing.T) {
	l := NewTextLayout()
	text, runs := newTestLine("ab", "cd")
	runs[1].(*testRun).tall = true
	test.Error(t, l.AddLine(text, runs))
	l.UpdateIfNeeded()

	view := l.LineViews()[0]
	test.Float(t, view.Baseline, 12.0)
	test.Float(t, view.Size.H, 14.0)
	test.T(t, len(view.Blocks), 2)
	test.T(t, view.Blocks[0].LocationOffset(), Point{0.0, 4.0})
	test.T(t, view.Blocks[1].LocationOffset(), Point{18.0, 0.0})
	test.T(t, view.Blocks[1].TextRange(), TextRange{2, 4})
}

func TestLayoutScale(t *testing.T) {
	l := NewTextLayout()
	l.SetScale(2.0)
	l.SetWrappingWidth(80.0)
	text, runs := newTestLine("The quick fox")
	test.Error(t, l.AddLine(text, runs))
	l.UpdateIfNeeded()

	test.T(t, viewRanges(l), []TextRange{{0, 10}, {10, 13}})
	test.T(t, l.LineViews()[0].Size, Size{168.0, 20.0})
	test.T(t, l.LineViews()[1].Offset, Point{0.0, 20.0})
	test.T(t, l.DrawSize(), Size{168.0, 40.0})
	test.T(t, l.Size(), Size{84.0, 20.0})
}

func TestLayoutMargin(t *testing.T) {
	l := newTestLayout(80.0, "The quick fox")
	l.SetMargin(Margin{1.0, 2.0, 3.0, 4.0})
	test.That(t, l.Dirty().Has(DirtyLayout))
	l.UpdateIfNeeded()

	test.T(t, l.LineViews()[0].Offset, Point{1.0, 2.0})
	test.T(t, l.LineViews()[1].Offset, Point{1.0, 12.0})
	test.T(t, l.LineViews()[0].Blocks[0].LocationOffset(), Point{1.0, 2.0})
	test.T(t, l.DrawSize(), Size{88.0, 26.0})

	l.ClearLines()
	l.UpdateIfNeeded()
	test.T(t, len(l.LineViews()), 0)
	test.T(t, l.DrawSize(), Size{4.0, 6.0})
}

func TestLayoutLineHeight(t *testing.T) {
	l := newTestLayout(80.0, "The quick fox")
	l.SetLineHeightPercentage(1.5)
	l.UpdateIfNeeded()

	view := l.LineViews()[0]
	test.Float(t, view.Size.H, 15.0)
	test.Float(t, view.TextSize.H, 10.0)
	test.Float(t, l.LineViews()[1].Offset.Y, 15.0)
	test.Float(t, l.DrawSize().H, 30.0)
}

func TestJustification(t *testing.T) {
	var tests = []struct {
		justification Justification
		xs            []float64
	}{
		{Left, []float64{0.0, 0.0}},
		{Center, []float64{11.0, 40.0}},
		{Right, []float64{22.0, 80.0}},
	}
	for _, tt := range tests {
		t.Run(tt.justification.String(), func(t *testing.T) {
			l := newTestLayout(100.0, "The quick fox")
			l.SetJustification(tt.justification)
			l.UpdateIfNeeded()
			for i, view := range l.LineViews() {
				test.Float(t, view.Offset.X, tt.xs[i])
				test.Float(t, view.Blocks[0].LocationOffset().X, tt.xs[i])
			}
		})
	}

	// without wrapping the widest line sets the content width
	l := newTestLayout(0.0, "ab", "abcd")
	l.SetJustification(Right)
	l.UpdateIfNeeded()
	test.Float(t, l.LineViews()[0].Offset.X, 18.0)
	test.Float(t, l.LineViews()[1].Offset.X, 0.0)
	test.T(t, l.DrawSize(), Size{36.0, 20.0})

	test.String(t, Justification(5).String(), "Invalid(5)")
}

func TestDirtyState(t *testing.T) {
	test.String(t, DirtyNone.String(), "None")
	test.String(t, (DirtyLayout | DirtyHighlights).String(), "Layout|Highlights")
	test.String(t, DirtyState(4).String(), "Invalid(4)")
	test.That(t, !DirtyLayout.Has(DirtyNone))

	l := NewTextLayout()
	test.T(t, l.Dirty(), DirtyNone)
	test.That(t, l.IsEmpty())
	text, runs := newTestLine("ab")
	test.Error(t, l.AddLine(text, runs))
	test.T(t, l.Dirty(), DirtyLayout)
	test.That(t, !l.IsEmpty())
	l.UpdateIfNeeded()
	test.T(t, l.Dirty(), DirtyNone)
}

func TestSetters(t *testing.T) {
	l := newTestLayout(80.0, "The quick fox")
	line := l.LineModels()[0]

	l.SetWrappingWidth(80.0)
	l.SetScale(1.0)
	l.SetScale(0.0)
	l.SetScale(-2.0)
	l.SetMargin(Margin{})
	l.SetJustification(Left)
	l.SetLineHeightPercentage(1.0)
	l.SetDebug(false)
	test.T(t, l.Dirty(), DirtyNone)
	test.Float(t, l.Scale(), 1.0)

	l.SetWrappingWidth(50.0)
	test.T(t, l.Dirty(), DirtyLayout)
	test.That(t, line.HasWrappingInformation)
	l.UpdateIfNeeded()

	l.SetScale(2.0)
	test.T(t, l.Dirty(), DirtyLayout)
	test.That(t, !line.HasWrappingInformation)
	l.UpdateIfNeeded()

	l = newTestLayout(0.0, "ab")
	l.SetWrappingWidth(-5.0)
	test.T(t, l.Dirty(), DirtyNone)
	test.Float(t, l.WrappingWidth(), 0.0)
}

func TestLayoutCaching(t *testing.T) {
	l := newTestLayout(80.0, "The quick fox")
	run := l.LineModels()[0].Runs[0].Run().(*testRun)

	run.measures = 0
	l.SetWrappingWidth(60.0)
	l.UpdateIfNeeded()
	test.T(t, viewRanges(l), []TextRange{{0, 4}, {4, 10}, {10, 13}})
	n := run.measures

	// rewrapping reuses break candidates and measures blocks only
	l.SetWrappingWidth(80.0)
	l.UpdateIfNeeded()
	test.T(t, run.measures, n+2)
}

func TestLayoutKerning(t *testing.T) {
	l := NewTextLayout()
	text, runs := newTestLine("ab cd", "ef")
	runs[0].(*testRun).kern = 1.0
	test.Error(t, l.AddLine(text, runs))
	l.UpdateIfNeeded()

	line := l.LineModels()[0]
	test.Float(t, line.BreakCandidates[0].ActualSize.W, 26.0)
	test.Float(t, line.BreakCandidates[1].Kerning, 1.0)
	test.Float(t, line.BreakCandidates[1].TrimmedSize.W, 37.0)

	// blocks measure kerning within their run, which matches the kerning of and between candidates
	view := l.LineViews()[0]
	test.Float(t, view.Size.W, 64.0)
	test.T(t, len(view.Blocks), 2)
	test.Float(t, view.Blocks[0].Size().W, 46.0)
	last := view.Blocks[1]
	test.Float(t, last.LocationOffset().X+last.Size().W, view.Offset.X+view.Size.W)

	// a kerned pair that straddles the wrap point is not counted
	l.SetWrappingWidth(40.0)
	l.UpdateIfNeeded()
	test.T(t, viewRanges(l), []TextRange{{0, 3}, {3, 7}})
	test.Float(t, l.LineViews()[1].Size.W, 37.0)
}
