package reflow

import "sort"

// RunModel wraps a Run with a measurement cache. Cached ranges are unique and sorted by their begin index and then their end index, so a repeated measurement is a pair of binary searches.
type RunModel struct {
	run Run

	measuredRanges     []TextRange
	measuredRangeSizes []Size
}

// NewRunModel returns a run model for the given run with an empty cache.
func NewRunModel(run Run) *RunModel {
	return &RunModel{
		run: run,
	}
}

// Run returns the wrapped run.
func (m *RunModel) Run() Run {
	return m.run
}

// TextRange returns the range of the wrapped run.
func (m *RunModel) TextRange() TextRange {
	return m.run.TextRange()
}

// Move repoints the wrapped run and drops the cache.
func (m *RunModel) Move(text *LineText, r TextRange) {
	m.run.Move(text, r)
	m.ClearCache()
}

// Measure returns the size of [begin,end), from the cache if it was measured before.
func (m *RunModel) Measure(begin, end int, scale float64) Size {
	i, ok := m.lookup(begin, end)
	if ok {
		return m.measuredRangeSizes[i]
	}

	size := m.run.Measure(begin, end, scale)
	m.measuredRanges = append(m.measuredRanges, TextRange{})
	copy(m.measuredRanges[i+1:], m.measuredRanges[i:])
	m.measuredRanges[i] = TextRange{begin, end}
	m.measuredRangeSizes = append(m.measuredRangeSizes, Size{})
	copy(m.measuredRangeSizes[i+1:], m.measuredRangeSizes[i:])
	m.measuredRangeSizes[i] = size
	return size
}

// lookup returns the index of the cache entry for [begin,end), or the position at which it must be inserted.
func (m *RunModel) lookup(begin, end int) (int, bool) {
	i := binarySearchForBeginIndex(m.measuredRanges, begin)
	if i == len(m.measuredRanges) || m.measuredRanges[i].BeginIndex != begin {
		return i, false
	}
	j := binarySearchForEndIndex(m.measuredRanges, i, end)
	return j, j < len(m.measuredRanges) && m.measuredRanges[j] == TextRange{begin, end}
}

// CacheLen returns the number of cached measurements.
func (m *RunModel) CacheLen() int {
	return len(m.measuredRanges)
}

// ClearCache drops all cached measurements.
func (m *RunModel) ClearCache() {
	m.measuredRanges = m.measuredRanges[:0]
	m.measuredRangeSizes = m.measuredRangeSizes[:0]
}

func (m *RunModel) Kerning(index int, scale float64) float64 {
	return m.run.Kerning(index, scale)
}

func (m *RunModel) BaselineAbove(scale float64) int16 {
	return m.run.BaselineAbove(scale)
}

func (m *RunModel) BaselineBelow(scale float64) int16 {
	return m.run.BaselineBelow(scale)
}

// CreateBlock creates a block for the definition, measuring its range through the cache.
func (m *RunModel) CreateBlock(def BlockDefinition, scale float64) Block {
	size := m.Measure(def.ActualRange.BeginIndex, def.ActualRange.EndIndex, scale)
	return m.run.CreateBlock(def, size, scale)
}

// TextIndexAt hit tests a block of the run, measuring through the cache.
func (m *RunModel) TextIndexAt(block Block, x, scale float64) (int, TextHitPoint) {
	return m.run.TextIndexAt(m, block, x, scale)
}

// BeginLayout starts a layout pass.
func (m *RunModel) BeginLayout() {
	m.ClearCache()
	m.run.BeginLayout()
}

// EndLayout ends a layout pass.
func (m *RunModel) EndLayout() {
	m.run.EndLayout()
	m.ClearCache()
}

////////////////////////////////////////////////////////////////

// binarySearchForBeginIndex returns the index of the first range that begins at or after begin.
func binarySearchForBeginIndex(ranges []TextRange, begin int) int {
	return sort.Search(len(ranges), func(i int) bool {
		return begin <= ranges[i].BeginIndex
	})
}

// binarySearchForEndIndex returns the index of the first range at or after start that shares its begin index and ends at or after end. It returns the index past that group when no such range exists.
func binarySearchForEndIndex(ranges []TextRange, start, end int) int {
	begin := ranges[start].BeginIndex
	n := sort.Search(len(ranges)-start, func(i int) bool {
		r := ranges[start+i]
		return begin < r.BeginIndex || end <= r.EndIndex
	})
	return start + n
}
