package runs

import (
	"image/color"

	"github.com/tdewolff/reflow"
)

// TextRun is proportional text in a single face and color.
type TextRun struct {
	Face  *Face
	Color color.RGBA

	text *reflow.LineText
	rng  reflow.TextRange

	// advances caches glyph advances during a layout pass
	advances map[rune]float64
	scale    float64
}

// NewTextRun returns a run over the given range of a line.
func NewTextRun(text *reflow.LineText, r reflow.TextRange, face *Face, col color.RGBA) *TextRun {
	return &TextRun{
		Face:  face,
		Color: col,
		text:  text,
		rng:   r,
	}
}

// NewTextLine returns the text and a single run covering it, ready for TextLayout.AddLine.
func NewTextLine(s string, face *Face, col color.RGBA) (*reflow.LineText, []reflow.Run) {
	text := reflow.NewLineText(s)
	return text, []reflow.Run{NewTextRun(text, reflow.TextRange{BeginIndex: 0, EndIndex: text.Len()}, face, col)}
}

func (run *TextRun) TextRange() reflow.TextRange {
	return run.rng
}

// Text returns the characters of the run.
func (run *TextRun) Text() string {
	return run.text.Slice(run.rng)
}

func (run *TextRun) advance(r rune, scale float64) float64 {
	if run.advances == nil {
		return run.Face.Advance(r, scale)
	} else if run.scale != scale {
		clear(run.advances)
		run.scale = scale
	}
	adv, ok := run.advances[r]
	if !ok {
		adv = run.Face.Advance(r, scale)
		run.advances[r] = adv
	}
	return adv
}

func (run *TextRun) Measure(begin, end int, scale float64) reflow.Size {
	rs := run.text.Runes()
	w := 0.0
	for i := begin; i < end; i++ {
		if begin < i {
			w += run.Face.Kerning(rs[i-1], rs[i], scale)
		}
		w += run.advance(rs[i], scale)
	}
	return reflow.Size{W: w, H: float64(run.BaselineAbove(scale)) + float64(run.BaselineBelow(scale))}
}

func (run *TextRun) Kerning(index int, scale float64) float64 {
	if index <= run.rng.BeginIndex || run.rng.EndIndex <= index {
		return 0.0
	}
	rs := run.text.Runes()
	return run.Face.Kerning(rs[index-1], rs[index], scale)
}

func (run *TextRun) BaselineAbove(scale float64) int16 {
	return toInt16(run.Face.Ascent(scale))
}

func (run *TextRun) BaselineBelow(scale float64) int16 {
	return toInt16(run.Face.Descent(scale))
}

func (run *TextRun) CreateBlock(def reflow.BlockDefinition, size reflow.Size, scale float64) reflow.Block {
	return reflow.NewDefaultBlock(run, def, size)
}

func (run *TextRun) TextIndexAt(m reflow.Measurer, block reflow.Block, x, scale float64) (int, reflow.TextHitPoint) {
	return textIndexAt(run, m, run.text, block, x, scale)
}

// BeginLayout starts caching glyph advances, which is valid as long as the scale does not change.
func (run *TextRun) BeginLayout() {
	run.advances = map[rune]float64{}
	run.scale = 0.0
}

func (run *TextRun) EndLayout() {
	run.advances = nil
}

func (run *TextRun) Move(text *reflow.LineText, r reflow.TextRange) {
	run.text = text
	run.rng = r
}

func (run *TextRun) Clone() reflow.Run {
	clone := *run
	clone.advances = nil
	return &clone
}

// CanMergeWith returns true if other is a TextRun with the same face and color.
func (run *TextRun) CanMergeWith(other reflow.Run) bool {
	o, ok := other.(*TextRun)
	return ok && o.Face == run.Face && o.Color == run.Color
}
