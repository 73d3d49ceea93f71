package reflow

import "strconv"

// TextHitPoint reports where a hit landed relative to the text of a line.
type TextHitPoint int

// see TextHitPoint
const (
	WithinText TextHitPoint = iota
	LeftGutter
	RightGutter
)

func (hp TextHitPoint) String() string {
	switch hp {
	case WithinText:
		return "WithinText"
	case LeftGutter:
		return "LeftGutter"
	case RightGutter:
		return "RightGutter"
	}
	return "Invalid(" + strconv.Itoa(int(hp)) + ")"
}

// RunRenderer is a style tag attached to a range of a line that paints the text of that range. The layout only carries it through to blocks and highlights.
type RunRenderer interface{}

// LineHighlighter is a style tag attached to a range of a line that paints behind or in front of the text. The layout only carries it through to highlights.
type LineHighlighter interface{}

// TextRunRenderer attaches a RunRenderer to a range of a line.
type TextRunRenderer struct {
	LineIndex int
	Range     TextRange
	Renderer  RunRenderer
}

// TextLineHighlight attaches a LineHighlighter to a range of a line. A negative ZOrder paints below the text, otherwise it paints above.
type TextLineHighlight struct {
	LineIndex   int
	Range       TextRange
	ZOrder      int
	Highlighter LineHighlighter
}

// BlockDefinition is the range a block covers and the renderer assigned to it. The renderer is reassigned whenever the highlights are flowed.
type BlockDefinition struct {
	ActualRange TextRange
	Renderer    RunRenderer
}

////////////////////////////////////////////////////////////////

// Measurer measures the characters in [begin,end) of a run. Both Run and RunModel are measurers, where the latter caches.
type Measurer interface {
	Measure(begin, end int, scale float64) Size
}

// Run is a contiguous span of uniformly styled text within a line. It reads its characters from the line's shared LineText and measures them in layout units at the given scale.
type Run interface {
	TextRange() TextRange

	// Measure returns the size of the characters in [begin,end), ignoring kerning with the character before begin.
	Measure(begin, end int, scale float64) Size

	// Kerning returns the adjustment between the characters at index-1 and index.
	Kerning(index int, scale float64) float64

	// BaselineAbove and BaselineBelow return the extent of the run above and below the baseline.
	BaselineAbove(scale float64) int16
	BaselineBelow(scale float64) int16

	CreateBlock(def BlockDefinition, size Size, scale float64) Block

	// TextIndexAt returns the caret index nearest to x, which is relative to the left of the block. Measurements go through m.
	TextIndexAt(m Measurer, block Block, x, scale float64) (int, TextHitPoint)

	BeginLayout()
	EndLayout()

	// Move repoints the run to a range of a (possibly different) line text.
	Move(text *LineText, r TextRange)
	Clone() Run
}

// MergeableRun is a Run that can absorb an adjacent run of the same style, which is used when joining lines.
type MergeableRun interface {
	Run
	CanMergeWith(Run) bool
}

////////////////////////////////////////////////////////////////

// Block is a positioned piece of a run within a LineView, ready for painting.
type Block interface {
	Run() Run
	TextRange() TextRange
	Size() Size
	Renderer() RunRenderer
	SetRenderer(RunRenderer)

	// LocationOffset is the top-left of the block in layout space.
	LocationOffset() Point
	SetLocationOffset(Point)
}

// DefaultBlock is a Block implementation that runs may return from CreateBlock.
type DefaultBlock struct {
	run    Run
	def    BlockDefinition
	size   Size
	offset Point
}

// NewDefaultBlock returns a block for the given run and definition.
func NewDefaultBlock(run Run, def BlockDefinition, size Size) *DefaultBlock {
	return &DefaultBlock{
		run:  run,
		def:  def,
		size: size,
	}
}

func (b *DefaultBlock) Run() Run {
	return b.run
}

func (b *DefaultBlock) TextRange() TextRange {
	return b.def.ActualRange
}

func (b *DefaultBlock) Size() Size {
	return b.size
}

func (b *DefaultBlock) Renderer() RunRenderer {
	return b.def.Renderer
}

func (b *DefaultBlock) SetRenderer(renderer RunRenderer) {
	b.def.Renderer = renderer
}

func (b *DefaultBlock) LocationOffset() Point {
	return b.offset
}

func (b *DefaultBlock) SetLocationOffset(offset Point) {
	b.offset = offset
}

// Bounds returns the rectangle the block occupies in layout space.
func (b *DefaultBlock) Bounds() Rect {
	return Rect{b.offset.X, b.offset.Y, b.size.W, b.size.H}
}
