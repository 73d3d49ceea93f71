package reflow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrRunPartition is returned when the runs of a line do not cover its text in order without gaps or overlaps.
var ErrRunPartition = errors.New("runs do not partition the line text")

// Justification is the horizontal alignment of each LineView.
type Justification int

// see Justification
const (
	Left Justification = iota
	Center
	Right
)

func (j Justification) String() string {
	switch j {
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Right:
		return "Right"
	}
	return "Invalid(" + strconv.Itoa(int(j)) + ")"
}

// DirtyState records which derived data of a TextLayout is out of date.
type DirtyState uint8

// see DirtyState
const (
	DirtyNone       DirtyState = 0
	DirtyLayout     DirtyState = 1 << 0
	DirtyHighlights DirtyState = 1 << 1
)

// Has returns true if all flags of f are set.
func (d DirtyState) Has(f DirtyState) bool {
	return d&f == f && f != DirtyNone
}

func (d DirtyState) String() string {
	if d == DirtyNone {
		return "None"
	}
	var names []string
	if d.Has(DirtyLayout) {
		names = append(names, "Layout")
	}
	if d.Has(DirtyHighlights) {
		names = append(names, "Highlights")
	}
	if rest := d &^ (DirtyLayout | DirtyHighlights); rest != 0 {
		names = append(names, "Invalid("+strconv.Itoa(int(rest))+")")
	}
	return strings.Join(names, "|")
}

////////////////////////////////////////////////////////////////

// TextLayout lays out lines of styled runs into wrapped LineViews. Mutations mark the layout dirty and UpdateIfNeeded brings the views up to date. A TextLayout is not safe for concurrent use.
type TextLayout struct {
	lineModels []*LineModel
	lineViews  []LineView

	dirty    DirtyState
	drawSize Size

	wrappingWidth        float64
	scale                float64
	margin               Margin
	justification        Justification
	lineHeightPercentage float64
	debug                bool
}

// NewTextLayout returns an empty layout with a scale and line height percentage of one and wrapping disabled.
func NewTextLayout() *TextLayout {
	return &TextLayout{
		scale:                1.0,
		lineHeightPercentage: 1.0,
	}
}

// LineModels returns the lines of the document, which must not be modified directly.
func (l *TextLayout) LineModels() []*LineModel {
	return l.lineModels
}

// LineViews returns the visual lines of the last layout pass, which must not be modified directly.
func (l *TextLayout) LineViews() []LineView {
	return l.lineViews
}

// Dirty returns the out of date state.
func (l *TextLayout) Dirty() DirtyState {
	return l.dirty
}

// DrawSize returns the size of the layout including margins, in scaled units.
func (l *TextLayout) DrawSize() Size {
	return l.drawSize
}

// Size returns the size of the layout including margins, in unscaled units.
func (l *TextLayout) Size() Size {
	return l.drawSize.Mul(1.0 / l.scale)
}

func (l *TextLayout) WrappingWidth() float64 {
	return l.wrappingWidth
}

// SetWrappingWidth sets the width at which lines wrap in unscaled units. A width of zero or less disables wrapping.
func (l *TextLayout) SetWrappingWidth(width float64) {
	if width == l.wrappingWidth || width <= 0.0 && l.wrappingWidth <= 0.0 {
		return
	}
	l.wrappingWidth = width
	l.dirty |= DirtyLayout
}

func (l *TextLayout) Scale() float64 {
	return l.scale
}

// SetScale sets the factor from unscaled units to the units that runs measure in. A non-positive scale is ignored.
func (l *TextLayout) SetScale(scale float64) {
	if scale == l.scale || scale <= 0.0 {
		return
	}
	l.scale = scale
	l.ClearWrappingCache()
}

func (l *TextLayout) Margin() Margin {
	return l.margin
}

// SetMargin sets the margin around the layout in unscaled units.
func (l *TextLayout) SetMargin(margin Margin) {
	if margin == l.margin {
		return
	}
	l.margin = margin
	l.dirty |= DirtyLayout
}

func (l *TextLayout) Justification() Justification {
	return l.justification
}

func (l *TextLayout) SetJustification(justification Justification) {
	if justification == l.justification {
		return
	}
	l.justification = justification
	l.dirty |= DirtyLayout
}

func (l *TextLayout) LineHeightPercentage() float64 {
	return l.lineHeightPercentage
}

// SetLineHeightPercentage sets the factor applied to the height of every LineView, where 1 is the natural height.
func (l *TextLayout) SetLineHeightPercentage(percentage float64) {
	if percentage == l.lineHeightPercentage {
		return
	}
	l.lineHeightPercentage = percentage
	l.dirty |= DirtyLayout
}

func (l *TextLayout) Debug() bool {
	return l.debug
}

// SetDebug enables capturing the text of every break candidate in BreakCandidate.DebugSlice.
func (l *TextLayout) SetDebug(debug bool) {
	if debug == l.debug {
		return
	}
	l.debug = debug
	l.ClearWrappingCache()
}

////////////////////////////////////////////////////////////////

// AddLine appends a line of the given text and runs. The runs must read from text and cover it in order.
func (l *TextLayout) AddLine(text *LineText, runs []Run) error {
	return l.InsertLine(len(l.lineModels), text, runs)
}

// InsertLine inserts a line of the given text and runs before the line at index, or appends it if index equals the number of lines.
func (l *TextLayout) InsertLine(index int, text *LineText, runs []Run) error {
	if index < 0 || len(l.lineModels) < index {
		return fmt.Errorf("line index %d out of range [0,%d]", index, len(l.lineModels))
	}
	line, err := NewLineModel(text, runs)
	if err != nil {
		return err
	}
	l.insertLineModel(index, line)
	return nil
}

func (l *TextLayout) insertLineModel(index int, line *LineModel) {
	l.lineModels = append(l.lineModels, nil)
	copy(l.lineModels[index+1:], l.lineModels[index:])
	l.lineModels[index] = line
	l.dirty |= DirtyLayout
}

// IsEmpty returns true if the document has no lines or a single empty line.
func (l *TextLayout) IsEmpty() bool {
	return len(l.lineModels) == 0 || len(l.lineModels) == 1 && l.lineModels[0].Text.Len() == 0
}

func (l *TextLayout) validLineIndex(index int) bool {
	return 0 <= index && index < len(l.lineModels)
}

////////////////////////////////////////////////////////////////

// ClearRunRenderers removes the run renderers of all lines.
func (l *TextLayout) ClearRunRenderers() {
	for _, line := range l.lineModels {
		if 0 < len(line.RunRenderers) {
			line.RunRenderers = line.RunRenderers[:0]
			l.dirty |= DirtyHighlights
		}
	}
}

// SetRunRenderers replaces the run renderers of all lines. Renderers addressing a non-existent line are skipped.
func (l *TextLayout) SetRunRenderers(renderers []TextRunRenderer) {
	l.ClearRunRenderers()
	for _, renderer := range renderers {
		l.AddRunRenderer(renderer)
	}
}

// AddRunRenderer attaches a run renderer to its line. It returns false if the line does not exist.
func (l *TextLayout) AddRunRenderer(renderer TextRunRenderer) bool {
	if !l.validLineIndex(renderer.LineIndex) {
		return false
	}
	line := l.lineModels[renderer.LineIndex]
	line.RunRenderers = append(line.RunRenderers, renderer)
	l.dirty |= DirtyHighlights
	return true
}

// ClearLineHighlights removes the highlights of all lines.
func (l *TextLayout) ClearLineHighlights() {
	for _, line := range l.lineModels {
		if 0 < len(line.LineHighlights) {
			line.LineHighlights = line.LineHighlights[:0]
			l.dirty |= DirtyHighlights
		}
	}
}

// SetLineHighlights replaces the highlights of all lines. Highlights addressing a non-existent line are skipped.
func (l *TextLayout) SetLineHighlights(highlights []TextLineHighlight) {
	l.ClearLineHighlights()
	for _, highlight := range highlights {
		l.AddLineHighlight(highlight)
	}
}

// AddLineHighlight attaches a highlight to its line. It returns false if the line does not exist.
func (l *TextLayout) AddLineHighlight(highlight TextLineHighlight) bool {
	if !l.validLineIndex(highlight.LineIndex) {
		return false
	}
	line := l.lineModels[highlight.LineIndex]
	line.LineHighlights = append(line.LineHighlights, highlight)
	l.dirty |= DirtyHighlights
	return true
}

////////////////////////////////////////////////////////////////

// UpdateIfNeeded recomputes the layout if it is dirty, or only the highlights if only those changed.
func (l *TextLayout) UpdateIfNeeded() {
	if l.dirty.Has(DirtyLayout) {
		l.UpdateLayout()
	} else if l.dirty.Has(DirtyHighlights) {
		l.UpdateHighlights()
	}
}

// UpdateLayout regenerates all LineViews and their highlights.
func (l *TextLayout) UpdateLayout() {
	l.ClearView()
	l.beginLayout()
	l.createWrappingCache()
	l.flowLayout()
	l.justifyLayout()
	l.endLayout()
	l.dirty &^= DirtyLayout
	l.UpdateHighlights()
}

// UpdateHighlights reflows the highlights onto the current LineViews without touching their geometry.
func (l *TextLayout) UpdateHighlights() {
	l.flowHighlights()
	l.dirty &^= DirtyHighlights
}

// ClearView drops all LineViews.
func (l *TextLayout) ClearView() {
	l.lineViews = l.lineViews[:0]
	l.drawSize = Size{}
	l.dirty |= DirtyLayout
}

// ClearWrappingCache drops the break candidates of all lines.
func (l *TextLayout) ClearWrappingCache() {
	for _, line := range l.lineModels {
		line.ClearWrappingCache()
	}
	l.dirty |= DirtyLayout
}

func (l *TextLayout) beginLayout() {
	for _, line := range l.lineModels {
		for _, run := range line.Runs {
			run.BeginLayout()
		}
	}
}

func (l *TextLayout) endLayout() {
	for _, line := range l.lineModels {
		for _, run := range line.Runs {
			run.EndLayout()
		}
	}
}
