package main

import "github.com/tdewolff/reflow"

type layoutDump struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Lines  []lineDump `json:"lines"`
}

type lineDump struct {
	Line     int         `json:"line"`
	Begin    int         `json:"begin"`
	End      int         `json:"end"`
	Text     string      `json:"text"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Baseline float64     `json:"baseline"`
	Blocks   []blockDump `json:"blocks"`
}

type blockDump struct {
	Begin  int     `json:"begin"`
	End    int     `json:"end"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func dump(l *reflow.TextLayout) layoutDump {
	d := layoutDump{
		Width:  l.DrawSize().W,
		Height: l.DrawSize().H,
		Lines:  []lineDump{},
	}
	for _, view := range l.LineViews() {
		line := l.LineModels()[view.ModelIndex]
		ld := lineDump{
			Line:     view.ModelIndex,
			Begin:    view.Range.BeginIndex,
			End:      view.Range.EndIndex,
			Text:     line.Text.Slice(view.Range),
			X:        view.Offset.X,
			Y:        view.Offset.Y,
			Width:    view.Size.W,
			Height:   view.Size.H,
			Baseline: view.Baseline,
		}
		for _, block := range view.Blocks {
			offset, size := block.LocationOffset(), block.Size()
			ld.Blocks = append(ld.Blocks, blockDump{
				Begin:  block.TextRange().BeginIndex,
				End:    block.TextRange().EndIndex,
				X:      offset.X,
				Y:      offset.Y,
				Width:  size.W,
				Height: size.H,
			})
		}
		d.Lines = append(d.Lines, ld)
	}
	return d
}
