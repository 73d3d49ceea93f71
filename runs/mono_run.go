package runs

import (
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/tdewolff/reflow"
)

// TabCells is the number of cells a tab occupies in a MonoRun.
var TabCells = 4

// MonoRun is text on a fixed cell grid such as a terminal, where wide characters take two cells and combining characters none.
type MonoRun struct {
	CellWidth  float64
	CellHeight float64

	// Style distinguishes runs for merging, such as an SGR escape sequence.
	Style string

	text *reflow.LineText
	rng  reflow.TextRange
}

// NewMonoRun returns a run over the given range of a line with cells of the given size in unscaled layout units.
func NewMonoRun(text *reflow.LineText, r reflow.TextRange, cellWidth, cellHeight float64, style string) *MonoRun {
	return &MonoRun{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Style:      style,
		text:       text,
		rng:        r,
	}
}

// Cells returns the number of cells of [begin,end).
func (run *MonoRun) Cells(begin, end int) int {
	n := 0
	for _, r := range run.text.Runes()[begin:end] {
		if r == '\t' {
			n += TabCells
		} else {
			n += runewidth.RuneWidth(r)
		}
	}
	return n
}

func (run *MonoRun) TextRange() reflow.TextRange {
	return run.rng
}

func (run *MonoRun) Measure(begin, end int, scale float64) reflow.Size {
	return reflow.Size{
		W: float64(run.Cells(begin, end)) * run.CellWidth * scale,
		H: float64(run.BaselineAbove(scale)) + float64(run.BaselineBelow(scale)),
	}
}

func (run *MonoRun) Kerning(index int, scale float64) float64 {
	return 0.0
}

// BaselineAbove puts the baseline at four fifths of the cell.
func (run *MonoRun) BaselineAbove(scale float64) int16 {
	return toInt16(0.8 * run.CellHeight * scale)
}

func (run *MonoRun) BaselineBelow(scale float64) int16 {
	return toInt16(math.Ceil(run.CellHeight*scale) - float64(run.BaselineAbove(scale)))
}

func (run *MonoRun) CreateBlock(def reflow.BlockDefinition, size reflow.Size, scale float64) reflow.Block {
	return reflow.NewDefaultBlock(run, def, size)
}

func (run *MonoRun) TextIndexAt(m reflow.Measurer, block reflow.Block, x, scale float64) (int, reflow.TextHitPoint) {
	return textIndexAt(run, m, run.text, block, x, scale)
}

func (run *MonoRun) BeginLayout() {}

func (run *MonoRun) EndLayout() {}

func (run *MonoRun) Move(text *reflow.LineText, r reflow.TextRange) {
	run.text = text
	run.rng = r
}

func (run *MonoRun) Clone() reflow.Run {
	clone := *run
	return &clone
}

// CanMergeWith returns true if other is a MonoRun with the same cell size and style.
func (run *MonoRun) CanMergeWith(other reflow.Run) bool {
	o, ok := other.(*MonoRun)
	return ok && o.CellWidth == run.CellWidth && o.CellHeight == run.CellHeight && o.Style == run.Style
}
