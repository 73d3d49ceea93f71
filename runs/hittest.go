package runs

import (
	"github.com/tdewolff/reflow"
	"github.com/tdewolff/reflow/text"
)

// textIndexAt returns the grapheme boundary within the block nearest to x, which is relative to the left of the block. Each grapheme is measured once, with the kerning before it.
func textIndexAt(run reflow.Run, m reflow.Measurer, lineText *reflow.LineText, block reflow.Block, x, scale float64) (int, reflow.TextHitPoint) {
	r := block.TextRange()
	if x < 0.0 {
		return r.BeginIndex, reflow.LeftGutter
	} else if r.IsEmpty() {
		return r.BeginIndex, reflow.RightGutter
	}

	bounds := text.GraphemeBoundaries(lineText.Runes()[r.BeginIndex:r.EndIndex])
	pos := 0.0
	for i := 1; i < len(bounds); i++ {
		begin, end := r.BeginIndex+bounds[i-1], r.BeginIndex+bounds[i]
		w := m.Measure(begin, end, scale).W
		if 1 < i {
			w += run.Kerning(begin, scale)
		}
		if x < pos+w/2.0 {
			return begin, reflow.WithinText
		}
		pos += w
	}
	if x < block.Size().W {
		return r.EndIndex, reflow.WithinText
	}
	return r.EndIndex, reflow.RightGutter
}
