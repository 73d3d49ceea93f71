package reflow

import (
	reflowText "github.com/tdewolff/reflow/text"
)

// LineViewIndexForTextLocation returns the index of the LineView holding loc, or -1. An offset at the boundary between two LineViews of the same line belongs to the second, unless inclusive is set. The end of the line always belongs to its last LineView.
func (l *TextLayout) LineViewIndexForTextLocation(loc TextLocation, inclusive bool) int {
	for i, view := range l.lineViews {
		if view.ModelIndex != loc.LineIndex || loc.Offset < view.Range.BeginIndex {
			continue
		}
		if loc.Offset < view.Range.EndIndex || loc.Offset == view.Range.EndIndex && (inclusive || l.isLastLineViewOfModel(i)) {
			return i
		}
	}
	return -1
}

func (l *TextLayout) isLastLineViewOfModel(index int) bool {
	return index+1 == len(l.lineViews) || l.lineViews[index+1].ModelIndex != l.lineViews[index].ModelIndex
}

// lineViewIndexAt returns the index of the LineView whose vertical band holds y. A point above all lines selects the first and below all lines the last. A point on the boundary between two LineViews belongs to the lower one, unless inclusive is set.
func (l *TextLayout) lineViewIndexAt(y float64, inclusive bool) int {
	for i, view := range l.lineViews {
		bottom := view.Offset.Y + view.Size.H
		if y < bottom || inclusive && y == bottom {
			return i
		}
	}
	return len(l.lineViews) - 1
}

// TextLocationAt returns the location of the caret nearest to p in layout space and where p lies relative to the text. A point on the boundary between two blocks resolves to the second block. The caret never lands past the trailing whitespace of a soft-wrapped LineView.
func (l *TextLayout) TextLocationAt(p Point, inclusive bool) (TextLocation, TextHitPoint) {
	if len(l.lineViews) == 0 {
		return InvalidLocation, WithinText
	}

	index := l.lineViewIndexAt(p.Y, inclusive)
	view := &l.lineViews[index]
	if len(view.Blocks) == 0 || p.X < view.Blocks[0].LocationOffset().X {
		hitPoint := LeftGutter
		if len(view.Blocks) == 0 && view.Offset.X <= p.X {
			hitPoint = RightGutter
		}
		return TextLocation{view.ModelIndex, view.Range.BeginIndex}, hitPoint
	}
	for _, block := range view.Blocks {
		left := block.LocationOffset().X
		if left <= p.X && p.X < left+block.Size().W {
			offset, hitPoint := l.lineModels[view.ModelIndex].textIndexAt(block, p.X-left, l.scale)
			return TextLocation{view.ModelIndex, min(offset, l.lineViewEndOffset(index))}, hitPoint
		}
	}
	return TextLocation{view.ModelIndex, l.lineViewEndOffset(index)}, RightGutter
}

// lineViewEndOffset returns the offset of the caret at the end of a LineView. For a soft-wrapped LineView that ends in whitespace this is before the last character, so that the caret stays on the same visual line.
func (l *TextLayout) lineViewEndOffset(index int) int {
	view := &l.lineViews[index]
	end := view.Range.EndIndex
	if !l.isLastLineViewOfModel(index) && view.Range.BeginIndex < end {
		if text := l.lineModels[view.ModelIndex].Text; reflowText.IsWhitespace(text.At(end - 1)) {
			end--
		}
	}
	return end
}

// textIndexAt hit tests a block of the line, measuring through the cache of the run model that created it.
func (line *LineModel) textIndexAt(block Block, x, scale float64) (int, TextHitPoint) {
	if run := line.BlockRun(block); run != nil {
		return run.TextIndexAt(block, x, scale)
	}
	return block.Run().TextIndexAt(block.Run(), block, x, scale)
}

// LocationAt returns the top-left position in layout space of the caret at loc. It returns false if loc does not exist.
func (l *TextLayout) LocationAt(loc TextLocation, inclusive bool) (Point, bool) {
	index := l.LineViewIndexForTextLocation(loc, inclusive)
	if index < 0 {
		return Point{}, false
	}
	view := &l.lineViews[index]
	x := l.offsetXAt(view, l.lineModels[view.ModelIndex], loc.Offset)
	return Point{x, view.Offset.Y}, true
}
