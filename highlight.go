package reflow

// flowHighlights intersects the highlights and run renderers of every line with its LineViews and reassigns the renderers of the blocks. Line highlights with a negative z-order go below the text, everything else above.
func (l *TextLayout) flowHighlights() {
	for i := range l.lineViews {
		view := &l.lineViews[i]
		view.UnderlayHighlights = view.UnderlayHighlights[:0]
		view.OverlayHighlights = view.OverlayHighlights[:0]

		line := l.lineModels[view.ModelIndex]
		for _, block := range view.Blocks {
			block.SetRenderer(rendererFor(line, block.TextRange()))
		}
		for _, highlight := range line.LineHighlights {
			h, ok := l.flowHighlight(view, line, highlight.Range)
			if !ok {
				continue
			}
			h.Highlighter = highlight.Highlighter
			if highlight.ZOrder < 0 {
				view.UnderlayHighlights = append(view.UnderlayHighlights, h)
			} else {
				view.OverlayHighlights = append(view.OverlayHighlights, h)
			}
		}
		for _, renderer := range line.RunRenderers {
			h, ok := l.flowHighlight(view, line, renderer.Range)
			if !ok {
				continue
			}
			h.Renderer = renderer.Renderer
			view.OverlayHighlights = append(view.OverlayHighlights, h)
		}
	}
}

// rendererFor returns the renderer of the first run renderer that covers r.
func rendererFor(line *LineModel, r TextRange) RunRenderer {
	for _, renderer := range line.RunRenderers {
		if renderer.Range.BeginIndex <= r.BeginIndex && r.EndIndex <= renderer.Range.EndIndex {
			return renderer.Renderer
		}
	}
	return nil
}

// flowHighlight returns the part of r that lies on the LineView. An empty LineView inside r gets a zero-width highlight so that selections spanning empty lines stay visible.
func (l *TextLayout) flowHighlight(view *LineView, line *LineModel, r TextRange) (LineViewHighlight, bool) {
	span := r.Intersect(view.Range)
	if span.IsEmpty() {
		if !view.Range.IsEmpty() || !r.InclusiveContains(view.Range.BeginIndex) {
			return LineViewHighlight{}, false
		}
		span = view.Range
	}

	x0 := l.offsetXAt(view, line, span.BeginIndex)
	x1 := l.offsetXAt(view, line, span.EndIndex)
	return LineViewHighlight{
		OffsetX: x0 - view.Offset.X,
		Width:   x1 - x0,
		Range:   span,
	}, true
}

// offsetXAt returns the X coordinate in layout space of the caret before the character at offset.
func (l *TextLayout) offsetXAt(view *LineView, line *LineModel, offset int) float64 {
	for _, block := range view.Blocks {
		r := block.TextRange()
		if !r.InclusiveContains(offset) {
			continue
		}
		x := block.LocationOffset().X
		if r.BeginIndex < offset {
			if run := line.BlockRun(block); run != nil {
				x += run.Measure(r.BeginIndex, offset, l.scale).W
			}
		}
		return x
	}
	if 0 < len(view.Blocks) && view.Range.EndIndex <= offset {
		block := view.Blocks[len(view.Blocks)-1]
		return block.LocationOffset().X + block.Size().W
	}
	return view.Offset.X
}
