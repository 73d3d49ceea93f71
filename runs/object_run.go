package runs

import (
	"strconv"

	"github.com/tdewolff/reflow"
)

// ObjectReplacementChar is the character an ObjectRun occupies in the line text.
const ObjectReplacementChar = '\uFFFC'

// VerticalAlign is the alignment of an inline object relative to the text around it.
type VerticalAlign int

// see VerticalAlign
const (
	Baseline VerticalAlign = iota
	FontTop
	FontMiddle
	FontBottom
)

func (valign VerticalAlign) String() string {
	switch valign {
	case Baseline:
		return "Baseline"
	case FontTop:
		return "FontTop"
	case FontMiddle:
		return "FontMiddle"
	case FontBottom:
		return "FontBottom"
	}
	return "Invalid(" + strconv.Itoa(int(valign)) + ")"
}

// ObjectRun is an inline object of fixed size, such as an image, that occupies a single ObjectReplacementChar. Face is the face of the surrounding text and is used for vertical alignment.
type ObjectRun struct {
	Width, Height float64
	VAlign        VerticalAlign
	Face          *Face
	Object        interface{}

	text *reflow.LineText
	rng  reflow.TextRange
}

// NewObjectRun returns a run over the given range of a line, which must hold one ObjectReplacementChar.
func NewObjectRun(text *reflow.LineText, r reflow.TextRange, width, height float64, valign VerticalAlign, face *Face, obj interface{}) *ObjectRun {
	return &ObjectRun{
		Width:  width,
		Height: height,
		VAlign: valign,
		Face:   face,
		Object: obj,
		text:   text,
		rng:    r,
	}
}

// Heights returns the top and bottom of the object relative to the baseline, where up is positive.
func (run *ObjectRun) Heights(scale float64) (float64, float64) {
	height := run.Height * scale
	if run.Face == nil {
		return height, 0.0
	}
	switch run.VAlign {
	case FontTop:
		ascent := run.Face.Ascent(scale)
		return ascent, ascent - height
	case FontMiddle:
		ascent, descent := run.Face.Ascent(scale), run.Face.Descent(scale)
		return (ascent - descent + height) / 2.0, (ascent - descent - height) / 2.0
	case FontBottom:
		descent := run.Face.Descent(scale)
		return -descent + height, -descent
	}
	return height, 0.0
}

func (run *ObjectRun) TextRange() reflow.TextRange {
	return run.rng
}

func (run *ObjectRun) Measure(begin, end int, scale float64) reflow.Size {
	top, bottom := run.Heights(scale)
	size := reflow.Size{H: top - bottom}
	if begin < end {
		size.W = run.Width * scale
	}
	return size
}

func (run *ObjectRun) Kerning(index int, scale float64) float64 {
	return 0.0
}

func (run *ObjectRun) BaselineAbove(scale float64) int16 {
	top, _ := run.Heights(scale)
	return toInt16(max(top, 0.0))
}

func (run *ObjectRun) BaselineBelow(scale float64) int16 {
	_, bottom := run.Heights(scale)
	return toInt16(max(-bottom, 0.0))
}

func (run *ObjectRun) CreateBlock(def reflow.BlockDefinition, size reflow.Size, scale float64) reflow.Block {
	return reflow.NewDefaultBlock(run, def, size)
}

// TextIndexAt returns the offset before the object for the left half and after it for the right half.
func (run *ObjectRun) TextIndexAt(m reflow.Measurer, block reflow.Block, x, scale float64) (int, reflow.TextHitPoint) {
	r := block.TextRange()
	if x < 0.0 {
		return r.BeginIndex, reflow.LeftGutter
	} else if x < block.Size().W/2.0 {
		return r.BeginIndex, reflow.WithinText
	} else if x < block.Size().W {
		return r.EndIndex, reflow.WithinText
	}
	return r.EndIndex, reflow.RightGutter
}

func (run *ObjectRun) BeginLayout() {}

func (run *ObjectRun) EndLayout() {}

func (run *ObjectRun) Move(text *reflow.LineText, r reflow.TextRange) {
	run.text = text
	run.rng = r
}

func (run *ObjectRun) Clone() reflow.Run {
	clone := *run
	return &clone
}
