package reflow

import (
	"fmt"
	"slices"
	"strings"
)

// LineText is the character buffer of a line, shared by the line and all of its runs. Offsets count runes.
type LineText struct {
	r []rune
}

// NewLineText returns a buffer holding s.
func NewLineText(s string) *LineText {
	return &LineText{[]rune(s)}
}

// Len returns the number of characters.
func (t *LineText) Len() int {
	return len(t.r)
}

// At returns the character at index i.
func (t *LineText) At(i int) rune {
	return t.r[i]
}

// Runes returns the characters, which must not be modified.
func (t *LineText) Runes() []rune {
	return t.r
}

// Slice returns the characters in the given range, clamped to the buffer.
func (t *LineText) Slice(r TextRange) string {
	begin := clampInt(r.BeginIndex, 0, len(t.r))
	end := clampInt(r.EndIndex, begin, len(t.r))
	return string(t.r[begin:end])
}

func (t *LineText) String() string {
	return string(t.r)
}

func (t *LineText) insert(i int, rs []rune) {
	t.r = slices.Insert(t.r, i, rs...)
}

func (t *LineText) remove(i, n int) {
	t.r = slices.Delete(t.r, i, i+n)
}

func (t *LineText) truncate(n int) {
	t.r = t.r[:n]
}

func (t *LineText) append(rs []rune) {
	t.r = append(t.r, rs...)
}

////////////////////////////////////////////////////////////////

// BreakCandidate is a potential wrap point. The actual range includes trailing whitespace and is used for selection and caret placement. The trimmed range excludes it and is used to decide whether the candidate fits.
type BreakCandidate struct {
	ActualRange  TextRange
	TrimmedRange TextRange
	ActualSize   Size
	TrimmedSize  Size

	MaxAboveBaseline int16
	MaxBelowBaseline int16

	// Kerning between the last character before the candidate and its first character, applied only if both end up on the same line.
	Kerning float64

	// DebugSlice holds the text of the actual range when debugging is enabled.
	DebugSlice string
}

func (c BreakCandidate) String() string {
	return fmt.Sprintf("BreakCandidate{%v %v %v %v}", c.ActualRange, c.TrimmedRange, c.ActualSize, c.TrimmedSize)
}

////////////////////////////////////////////////////////////////

// LineModel is a line of the document without manual line breaks.
type LineModel struct {
	Text            *LineText
	Runs            []*RunModel
	BreakCandidates []BreakCandidate
	RunRenderers    []TextRunRenderer
	LineHighlights  []TextLineHighlight

	HasWrappingInformation bool
}

// NewLineModel returns a line model of the given text and runs, which must cover the text in order without gaps or overlaps.
func NewLineModel(text *LineText, runs []Run) (*LineModel, error) {
	line := &LineModel{
		Text: text,
		Runs: make([]*RunModel, 0, len(runs)),
	}
	for _, run := range runs {
		line.Runs = append(line.Runs, NewRunModel(run))
	}
	if err := line.checkPartition(); err != nil {
		return nil, err
	}
	return line, nil
}

// checkPartition verifies that the run ranges cover the text in order without gaps or overlaps.
func (line *LineModel) checkPartition() error {
	pos := 0
	for i, run := range line.Runs {
		r := run.TextRange()
		if r.BeginIndex != pos || r.EndIndex < r.BeginIndex {
			return fmt.Errorf("%w: run %d has range %v, expected to begin at %d", ErrRunPartition, i, r, pos)
		}
		pos = r.EndIndex
	}
	if pos != line.Text.Len() {
		return fmt.Errorf("%w: runs end at %d but text has length %d", ErrRunPartition, pos, line.Text.Len())
	}
	return nil
}

// RunIndexAt returns the index of the run containing offset. An offset at a run boundary belongs to the run that ends there, so that the end of the line maps to the last run.
func (line *LineModel) RunIndexAt(offset int) int {
	for i, run := range line.Runs {
		if run.TextRange().InclusiveContains(offset) {
			return i
		}
	}
	return -1
}

// BlockRun returns the run model whose run created block, or nil if the block does not belong to the line.
func (line *LineModel) BlockRun(block Block) *RunModel {
	for _, run := range line.Runs {
		if run.Run() == block.Run() {
			return run
		}
	}
	return nil
}

// AppendText writes the characters of the given range to sb.
func (line *LineModel) AppendText(sb *strings.Builder, r TextRange) {
	sb.WriteString(line.Text.Slice(r))
}

// ClearWrappingCache drops the break candidates.
func (line *LineModel) ClearWrappingCache() {
	line.BreakCandidates = line.BreakCandidates[:0]
	line.HasWrappingInformation = false
}

func (line *LineModel) clearRunCaches() {
	for _, run := range line.Runs {
		run.ClearCache()
	}
}
