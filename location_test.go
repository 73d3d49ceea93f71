package reflow

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTextRange(t *testing.T) {
	r := TextRange{2, 5}
	test.T(t, r.Len(), 3)
	test.That(t, !r.IsEmpty())
	test.That(t, TextRange{3, 3}.IsEmpty())
	test.That(t, r.Contains(2))
	test.That(t, !r.Contains(5))
	test.That(t, r.InclusiveContains(5))
	test.That(t, !r.InclusiveContains(6))
	test.T(t, r.Offset(3), TextRange{5, 8})
	test.String(t, r.String(), "[2,5)")

	var tests = []struct {
		a, b TextRange
		r    TextRange
	}{
		{TextRange{0, 4}, TextRange{2, 6}, TextRange{2, 4}},
		{TextRange{2, 6}, TextRange{0, 4}, TextRange{2, 4}},
		{TextRange{0, 4}, TextRange{1, 2}, TextRange{1, 2}},
		{TextRange{0, 4}, TextRange{4, 6}, TextRange{4, 4}},
		{TextRange{0, 2}, TextRange{4, 6}, TextRange{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+tt.b.String(), func(t *testing.T) {
			test.T(t, tt.a.Intersect(tt.b), tt.r)
		})
	}
}

func TestTextLocation(t *testing.T) {
	a := TextLocation{1, 4}
	test.That(t, a.IsValid())
	test.That(t, !InvalidLocation.IsValid())
	test.String(t, a.String(), "1:4")
	test.String(t, InvalidLocation.String(), "Invalid")

	test.T(t, a.Compare(TextLocation{1, 4}), 0)
	test.T(t, a.Compare(TextLocation{2, 0}), -1)
	test.T(t, a.Compare(TextLocation{1, 2}), 1)
	test.T(t, a.Compare(TextLocation{0, 9}), 1)
	test.That(t, TextLocation{0, 9}.Less(a))

	test.T(t, a.Move(2), TextLocation{1, 6})
	test.T(t, a.Move(-9), TextLocation{1, 0})
}

func TestTextSelection(t *testing.T) {
	sel := TextSelection{TextLocation{2, 1}, TextLocation{0, 3}}
	test.T(t, sel.Beginning(), TextLocation{0, 3})
	test.T(t, sel.End(), TextLocation{2, 1})
	test.That(t, !sel.IsEmpty())
	test.That(t, sel.IsValid())

	sel = Locate(TextLocation{1, 1})
	test.That(t, sel.IsEmpty())
	test.T(t, sel.Beginning(), sel.End())

	sel = SelectRange(3, TextRange{2, 7})
	test.T(t, sel.Anchor, TextLocation{3, 2})
	test.T(t, sel.Active, TextLocation{3, 7})
	test.That(t, !Locate(InvalidLocation).IsValid())
}

func TestGeometry(t *testing.T) {
	test.That(t, Point{1.0, 2.0}.Add(Point{0.5, 0.5}).Equals(Point{1.5, 2.5}))
	test.That(t, Point{1.0, 2.0}.Sub(Point{1.0, 2.0}).IsZero())
	test.T(t, Point{1.0, 2.0}.Mul(2.0), Point{2.0, 4.0})
	test.String(t, Point{1.0, 2.5}.String(), "(1,2.5)")
	test.That(t, Size{3.0, 4.0}.Mul(0.5).Equals(Size{1.5, 2.0}))
	test.String(t, Size{3.0, 4.0}.String(), "3x4")

	rect := Rect{1.0, 2.0, 3.0, 4.0}
	test.Float(t, rect.Right(), 4.0)
	test.Float(t, rect.Bottom(), 6.0)
	test.That(t, rect.Contains(Point{1.0, 2.0}))
	test.That(t, !rect.Contains(Point{4.0, 2.0}))

	margin := UniformMargin(2.0)
	test.Float(t, margin.Horizontal(), 4.0)
	test.Float(t, margin.Vertical(), 4.0)
	test.T(t, margin.Mul(2.0), Margin{4.0, 4.0, 4.0, 4.0})
}
