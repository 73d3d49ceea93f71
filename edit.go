package reflow

import "slices"

// lineAt returns the line addressed by loc if the offset lies within [0,len].
func (l *TextLayout) lineAt(loc TextLocation) (*LineModel, bool) {
	if !l.validLineIndex(loc.LineIndex) || loc.Offset < 0 {
		return nil, false
	}
	line := l.lineModels[loc.LineIndex]
	if line.Text.Len() < loc.Offset {
		return nil, false
	}
	return line, true
}

// textChanged invalidates everything derived from the text of a line.
func (l *TextLayout) textChanged(line *LineModel) {
	line.clearRunCaches()
	line.ClearWrappingCache()
	l.dirty |= DirtyLayout
}

// InsertAt inserts s at loc. The run that holds loc grows and the runs after it shift. It returns false if loc does not exist.
func (l *TextLayout) InsertAt(loc TextLocation, s string) bool {
	return l.insertRunes(loc, []rune(s))
}

// InsertRuneAt inserts r at loc. It returns false if loc does not exist.
func (l *TextLayout) InsertRuneAt(loc TextLocation, r rune) bool {
	return l.insertRunes(loc, []rune{r})
}

func (l *TextLayout) insertRunes(loc TextLocation, rs []rune) bool {
	line, ok := l.lineAt(loc)
	if !ok || len(line.Runs) == 0 {
		return false
	} else if len(rs) == 0 {
		return true
	}

	offset, n := loc.Offset, len(rs)
	line.Text.insert(offset, rs)
	index := line.RunIndexAt(offset)
	for i, run := range line.Runs {
		r := run.TextRange()
		if i == index {
			run.Move(line.Text, TextRange{r.BeginIndex, r.EndIndex + n})
		} else if index < i {
			run.Move(line.Text, r.Offset(n))
		}
	}
	line.eachDecoration(func(r *TextRange) {
		if offset <= r.BeginIndex {
			*r = r.Offset(n)
		} else if offset < r.EndIndex {
			r.EndIndex += n
		}
	})
	l.textChanged(line)
	return true
}

// InsertRunAt inserts a new run holding s at loc. A run that straddles loc is split in two, where the right part is a clone. It returns false if loc does not exist.
func (l *TextLayout) InsertRunAt(loc TextLocation, run Run, s string) bool {
	line, ok := l.lineAt(loc)
	if !ok || len(line.Runs) == 0 && line.Text.Len() != 0 {
		return false
	}

	rs := []rune(s)
	offset, n := loc.Offset, len(rs)
	line.Text.insert(offset, rs)
	run.Move(line.Text, TextRange{offset, offset + n})
	inserted := NewRunModel(run)

	index := line.RunIndexAt(offset)
	runs := make([]*RunModel, 0, len(line.Runs)+2)
	if index < 0 {
		runs = append(runs, inserted)
	}
	for i, rm := range line.Runs {
		r := rm.TextRange()
		if i < index {
			runs = append(runs, rm)
		} else if index < i {
			rm.Move(line.Text, r.Offset(n))
			runs = append(runs, rm)
		} else if r.IsEmpty() {
			runs = append(runs, inserted)
		} else if offset == r.EndIndex {
			runs = append(runs, rm, inserted)
		} else if offset == r.BeginIndex {
			rm.Move(line.Text, r.Offset(n))
			runs = append(runs, inserted, rm)
		} else {
			right := rm.Run().Clone()
			right.Move(line.Text, TextRange{offset + n, r.EndIndex + n})
			rm.Move(line.Text, TextRange{r.BeginIndex, offset})
			runs = append(runs, rm, inserted, NewRunModel(right))
		}
	}
	line.Runs = runs
	line.eachDecoration(func(r *TextRange) {
		if offset <= r.BeginIndex {
			*r = r.Offset(n)
		} else if offset < r.EndIndex {
			r.EndIndex += n
		}
	})
	l.textChanged(line)
	return true
}

// RemoveAt removes count characters starting at loc. Runs that become empty are removed, but a line always keeps at least one run. It returns false if the range does not exist.
func (l *TextLayout) RemoveAt(loc TextLocation, count int) bool {
	line, ok := l.lineAt(loc)
	if !ok || count < 0 || line.Text.Len()-loc.Offset < count {
		return false
	} else if count == 0 {
		return true
	}

	begin, end := loc.Offset, loc.Offset+count
	shift := func(i int) int {
		if i <= begin {
			return i
		} else if end <= i {
			return i - count
		}
		return begin
	}

	line.Text.remove(begin, count)
	runs := make([]*RunModel, 0, len(line.Runs))
	var dropped *RunModel
	for _, run := range line.Runs {
		r := run.TextRange()
		r = TextRange{shift(r.BeginIndex), shift(r.EndIndex)}
		if r.IsEmpty() {
			if dropped == nil {
				dropped = run
			}
			continue
		}
		run.Move(line.Text, r)
		runs = append(runs, run)
	}
	if len(runs) == 0 && dropped != nil {
		dropped.Move(line.Text, TextRange{0, 0})
		runs = append(runs, dropped)
	}
	line.Runs = runs
	line.eachDecoration(func(r *TextRange) {
		*r = TextRange{shift(r.BeginIndex), shift(r.EndIndex)}
	})
	line.dropEmptyDecorations()
	l.textChanged(line)
	return true
}

// SplitLineAt moves everything at and after loc to a new line inserted after it. A run that straddles loc is split in two, where the right part is a clone. It returns false if loc does not exist.
func (l *TextLayout) SplitLineAt(loc TextLocation) bool {
	line, ok := l.lineAt(loc)
	if !ok {
		return false
	}

	offset := loc.Offset
	next := &LineModel{
		Text: NewLineText(line.Text.Slice(TextRange{offset, line.Text.Len()})),
	}
	line.Text.truncate(offset)

	runs := make([]*RunModel, 0, len(line.Runs))
	for _, run := range line.Runs {
		r := run.TextRange()
		if r.EndIndex <= offset {
			runs = append(runs, run)
		} else if offset <= r.BeginIndex {
			run.Move(next.Text, r.Offset(-offset))
			next.Runs = append(next.Runs, run)
		} else {
			right := run.Run().Clone()
			right.Move(next.Text, TextRange{0, r.EndIndex - offset})
			run.Move(line.Text, TextRange{r.BeginIndex, offset})
			runs = append(runs, run)
			next.Runs = append(next.Runs, NewRunModel(right))
		}
	}
	if len(runs) == 0 && 0 < len(next.Runs) {
		empty := next.Runs[0].Run().Clone()
		empty.Move(line.Text, TextRange{0, 0})
		runs = append(runs, NewRunModel(empty))
	} else if len(next.Runs) == 0 && 0 < len(runs) {
		empty := runs[len(runs)-1].Run().Clone()
		empty.Move(next.Text, TextRange{0, 0})
		next.Runs = append(next.Runs, NewRunModel(empty))
	}
	line.Runs = runs

	line.RunRenderers, next.RunRenderers = splitDecorations(line.RunRenderers, func(d *TextRunRenderer) *TextRange { return &d.Range }, offset)
	line.LineHighlights, next.LineHighlights = splitDecorations(line.LineHighlights, func(d *TextLineHighlight) *TextRange { return &d.Range }, offset)

	l.textChanged(line)
	l.insertLineModel(loc.LineIndex+1, next)
	l.renumberDecorations()
	return true
}

// JoinLineWithNextLine appends the next line to the line at index and removes the next line. Empty runs are dropped and the runs at the seam are merged if they allow it. It returns false if there is no next line.
func (l *TextLayout) JoinLineWithNextLine(index int) bool {
	if !l.validLineIndex(index) || !l.validLineIndex(index+1) {
		return false
	}

	line, next := l.lineModels[index], l.lineModels[index+1]
	n := line.Text.Len()
	line.Text.append(next.Text.Runes())

	runs := make([]*RunModel, 0, len(line.Runs)+len(next.Runs))
	for _, run := range line.Runs {
		if !run.TextRange().IsEmpty() {
			runs = append(runs, run)
		}
	}
	seam := len(runs)
	for _, run := range next.Runs {
		if r := run.TextRange(); !r.IsEmpty() {
			run.Move(line.Text, r.Offset(n))
			runs = append(runs, run)
		}
	}
	if len(runs) == 0 {
		if 0 < len(line.Runs) {
			runs = append(runs, line.Runs[0])
		} else if 0 < len(next.Runs) {
			runs = append(runs, next.Runs[0])
		}
		for _, run := range runs {
			run.Move(line.Text, TextRange{0, 0})
		}
	} else if 0 < seam && seam < len(runs) {
		left, right := runs[seam-1], runs[seam]
		if m, ok := left.Run().(MergeableRun); ok && m.CanMergeWith(right.Run()) {
			left.Move(line.Text, TextRange{left.TextRange().BeginIndex, right.TextRange().EndIndex})
			runs = slices.Delete(runs, seam, seam+1)
		}
	}
	line.Runs = runs

	for _, renderer := range next.RunRenderers {
		renderer.Range = renderer.Range.Offset(n)
		line.RunRenderers = append(line.RunRenderers, renderer)
	}
	for _, highlight := range next.LineHighlights {
		highlight.Range = highlight.Range.Offset(n)
		line.LineHighlights = append(line.LineHighlights, highlight)
	}

	l.lineModels = slices.Delete(l.lineModels, index+1, index+2)
	l.textChanged(line)
	l.renumberDecorations()
	return true
}

// RemoveLine removes the line at index. It returns false if the line does not exist.
func (l *TextLayout) RemoveLine(index int) bool {
	if !l.validLineIndex(index) {
		return false
	}
	l.lineModels = slices.Delete(l.lineModels, index, index+1)
	l.renumberDecorations()
	l.dirty |= DirtyLayout
	return true
}

// ClearLines removes all lines.
func (l *TextLayout) ClearLines() {
	clear(l.lineModels)
	l.lineModels = l.lineModels[:0]
	l.dirty |= DirtyLayout
}

////////////////////////////////////////////////////////////////

func (line *LineModel) eachDecoration(f func(r *TextRange)) {
	for i := range line.RunRenderers {
		f(&line.RunRenderers[i].Range)
	}
	for i := range line.LineHighlights {
		f(&line.LineHighlights[i].Range)
	}
}

func (line *LineModel) dropEmptyDecorations() {
	line.RunRenderers = slices.DeleteFunc(line.RunRenderers, func(d TextRunRenderer) bool {
		return d.Range.IsEmpty()
	})
	line.LineHighlights = slices.DeleteFunc(line.LineHighlights, func(d TextLineHighlight) bool {
		return d.Range.IsEmpty()
	})
}

// renumberDecorations sets the line index of every highlight and run renderer to that of the line holding it.
func (l *TextLayout) renumberDecorations() {
	for i, line := range l.lineModels {
		for j := range line.RunRenderers {
			line.RunRenderers[j].LineIndex = i
		}
		for j := range line.LineHighlights {
			line.LineHighlights[j].LineIndex = i
		}
	}
}

// splitDecorations divides decorations at offset, where the ones after offset are shifted to the start of a new line and the ones straddling offset are clipped into both.
func splitDecorations[T any](ds []T, rangeOf func(*T) *TextRange, offset int) ([]T, []T) {
	var left, right []T
	for _, d := range ds {
		r := *rangeOf(&d)
		if r.EndIndex <= offset {
			left = append(left, d)
		} else if offset <= r.BeginIndex {
			*rangeOf(&d) = r.Offset(-offset)
			right = append(right, d)
		} else {
			*rangeOf(&d) = TextRange{r.BeginIndex, offset}
			left = append(left, d)
			*rangeOf(&d) = TextRange{0, r.EndIndex - offset}
			right = append(right, d)
		}
	}
	return left, right
}
