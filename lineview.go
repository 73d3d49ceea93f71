package reflow

import "fmt"

// LineViewHighlight is a highlight or run renderer flowed onto a LineView. OffsetX is relative to the left of the LineView.
type LineViewHighlight struct {
	OffsetX, Width float64
	Range          TextRange

	// Exactly one of Highlighter and Renderer is set.
	Highlighter LineHighlighter
	Renderer    RunRenderer
}

// LineView is a visual line produced by flowing the break candidates of a LineModel. Multiple LineViews may originate from one LineModel.
type LineView struct {
	Blocks             []Block
	UnderlayHighlights []LineViewHighlight
	OverlayHighlights  []LineViewHighlight

	// Offset is the top-left of the line in layout space.
	Offset Point

	// Size includes trailing whitespace and the line height percentage, TextSize holds neither.
	Size     Size
	TextSize Size

	// Baseline is the distance from the top of the line to its baseline.
	Baseline float64

	Range        TextRange
	TrimmedRange TextRange
	ModelIndex   int
}

// Bounds returns the rectangle the line occupies in layout space.
func (v *LineView) Bounds() Rect {
	return Rect{v.Offset.X, v.Offset.Y, v.Size.W, v.Size.H}
}

func (v *LineView) String() string {
	return fmt.Sprintf("LineView{model=%d %v offset=%v size=%v blocks=%d}", v.ModelIndex, v.Range, v.Offset, v.Size, len(v.Blocks))
}
