package reflow

import (
	reflowText "github.com/tdewolff/reflow/text"
)

func (l *TextLayout) createWrappingCache() {
	for _, line := range l.lineModels {
		if !line.HasWrappingInformation {
			l.createLineWrappingCache(line)
		}
	}
}

// createLineWrappingCache computes the break candidates of a line from its line break opportunities. An empty line gets a single empty candidate so that it has a height.
func (l *TextLayout) createLineWrappingCache(line *LineModel) {
	line.BreakCandidates = line.BreakCandidates[:0]
	if line.Text.Len() == 0 {
		line.BreakCandidates = append(line.BreakCandidates, l.createBreakCandidate(line, 0, 0))
	} else {
		begin := 0
		for _, end := range reflowText.LineBreaks(line.Text.Runes()) {
			line.BreakCandidates = append(line.BreakCandidates, l.createBreakCandidate(line, begin, end))
			begin = end
		}
	}
	line.HasWrappingInformation = true
}

// createBreakCandidate measures [begin,end) run by run, separately for the trimmed text and its trailing whitespace.
func (l *TextLayout) createBreakCandidate(line *LineModel, begin, end int) BreakCandidate {
	runes := line.Text.Runes()
	trimmedEnd := end
	for begin < trimmedEnd && reflowText.IsWhitespace(runes[trimmedEnd-1]) {
		trimmedEnd--
	}

	c := BreakCandidate{
		ActualRange:  TextRange{begin, end},
		TrimmedRange: TextRange{begin, trimmedEnd},
	}
	whitespaceWidth := 0.0
	first := true
	for _, run := range line.Runs {
		r := run.TextRange()
		span := r.Intersect(c.ActualRange)
		if span.IsEmpty() && (begin != end || !r.InclusiveContains(begin)) {
			continue
		}

		c.MaxAboveBaseline = max(c.MaxAboveBaseline, run.BaselineAbove(l.scale))
		c.MaxBelowBaseline = max(c.MaxBelowBaseline, run.BaselineBelow(l.scale))
		if trimmed := span.Intersect(c.TrimmedRange); !trimmed.IsEmpty() {
			c.TrimmedSize.W += run.Measure(trimmed.BeginIndex, trimmed.EndIndex, l.scale).W
		}
		if whitespace := (TextRange{max(span.BeginIndex, trimmedEnd), span.EndIndex}); !whitespace.IsEmpty() {
			whitespaceWidth += run.Measure(whitespace.BeginIndex, whitespace.EndIndex, l.scale).W
			if span.BeginIndex < whitespace.BeginIndex {
				// kerning between the trimmed text and its whitespace within the same run
				whitespaceWidth += run.Kerning(whitespace.BeginIndex, l.scale)
			}
		}
		if first && r.BeginIndex < span.BeginIndex {
			c.Kerning = run.Kerning(span.BeginIndex, l.scale)
		}
		first = false
		if begin == end {
			break
		}
	}
	height := float64(c.MaxAboveBaseline) + float64(c.MaxBelowBaseline)
	c.TrimmedSize.H = height
	c.ActualSize = Size{c.TrimmedSize.W + whitespaceWidth, height}
	if l.debug {
		c.DebugSlice = line.Text.Slice(c.ActualRange)
	}
	return c
}

// flowLayout greedily packs the break candidates of every line into LineViews. A candidate is added to the current LineView if the trimmed width stays within the wrapping width, a candidate that does not fit on an empty LineView is placed on its own.
func (l *TextLayout) flowLayout() {
	wrappingWidth := l.wrappingWidth * l.scale
	margin := l.margin.Mul(l.scale)
	y := margin.Top
	for modelIndex, line := range l.lineModels {
		candidates := line.BreakCandidates
		for start := 0; start < len(candidates); {
			end := start + 1
			if wrappingWidth <= 0.0 {
				end = len(candidates)
			} else {
				width := candidates[start].ActualSize.W
				for ; end < len(candidates); end++ {
					c := candidates[end]
					if wrappingWidth+Epsilon < width+c.Kerning+c.TrimmedSize.W {
						break
					}
					width += c.Kerning + c.ActualSize.W
				}
			}

			view := l.createLineView(modelIndex, line, candidates[start:end], Point{margin.Left, y})
			y += view.Size.H
			l.lineViews = append(l.lineViews, view)
			start = end
		}
	}
	l.updateDrawSize()
}

// createLineView builds a LineView at the given offset from consecutive candidates, creating one block per run that overlaps it. Blocks are aligned on the baseline of the LineView.
func (l *TextLayout) createLineView(modelIndex int, line *LineModel, candidates []BreakCandidate, offset Point) LineView {
	first, last := candidates[0], candidates[len(candidates)-1]
	view := LineView{
		Offset:       offset,
		Range:        TextRange{first.ActualRange.BeginIndex, last.ActualRange.EndIndex},
		TrimmedRange: TextRange{first.ActualRange.BeginIndex, last.TrimmedRange.EndIndex},
		ModelIndex:   modelIndex,
	}

	var above, below int16
	width, textWidth := 0.0, 0.0
	for i, c := range candidates {
		above = max(above, c.MaxAboveBaseline)
		below = max(below, c.MaxBelowBaseline)
		if 0 < i {
			width += c.Kerning
		}
		textWidth = width + c.TrimmedSize.W
		width += c.ActualSize.W
	}
	height := float64(above) + float64(below)
	view.TextSize = Size{textWidth, height}
	view.Size = Size{width, height * l.lineHeightPercentage}
	view.Baseline = float64(above)

	x := offset.X
	for _, run := range line.Runs {
		r := run.TextRange()
		span := r.Intersect(view.Range)
		if span.IsEmpty() && (!view.Range.IsEmpty() || !r.InclusiveContains(view.Range.BeginIndex)) {
			continue
		}

		block := run.CreateBlock(BlockDefinition{ActualRange: span}, l.scale)
		block.SetLocationOffset(Point{x, offset.Y + view.Baseline - float64(run.BaselineAbove(l.scale))})
		x += block.Size().W
		view.Blocks = append(view.Blocks, block)
		if view.Range.IsEmpty() {
			break
		}
	}
	return view
}

// justifyLayout offsets every LineView horizontally within the content width, which is the widest LineView or the wrapping width, whichever is larger.
func (l *TextLayout) justifyLayout() {
	if l.justification == Left {
		return
	}

	contentWidth := l.wrappingWidth * l.scale
	for _, view := range l.lineViews {
		contentWidth = max(contentWidth, view.Size.W)
	}
	for i := range l.lineViews {
		view := &l.lineViews[i]
		dx := contentWidth - view.TextSize.W
		if l.justification == Center {
			dx /= 2.0
		}
		if dx <= 0.0 {
			continue
		}
		view.Offset.X += dx
		for _, block := range view.Blocks {
			block.SetLocationOffset(block.LocationOffset().Add(Point{dx, 0.0}))
		}
	}
	l.updateDrawSize()
}

// updateDrawSize sets the draw size to the union of all LineViews plus margins.
func (l *TextLayout) updateDrawSize() {
	margin := l.margin.Mul(l.scale)
	right, bottom := margin.Left, margin.Top
	for _, view := range l.lineViews {
		right = max(right, view.Offset.X+view.Size.W)
		bottom = max(bottom, view.Offset.Y+view.Size.H)
	}
	l.drawSize = Size{right + margin.Right, bottom + margin.Bottom}
}
