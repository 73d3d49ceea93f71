package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/reflow"
	"github.com/tdewolff/reflow/render"
	"github.com/tdewolff/reflow/runs"
	"github.com/tdewolff/reflow/text"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
)

type Reflow struct {
	Width         float64 `short:"w" default:"80" desc:"Wrapping width in millimeters, zero or less disables wrapping"`
	Scale         float64 `short:"s" default:"1" desc:"Layout scale"`
	Margin        float64 `short:"m" default:"0" desc:"Margin in millimeters"`
	Justification string  `short:"j" default:"left" desc:"Justification: left, center, or right"`
	LineHeight    float64 `default:"1" desc:"Line height percentage"`
	FontSize      float64 `default:"4.2" desc:"Font size in millimeters"`
	Serif         bool    `desc:"Use Latin Modern Roman instead of Go Regular"`
	Mono          bool    `desc:"Lay out on a monospace cell grid"`
	Charset       string  `short:"c" default:"utf-8" desc:"Input character encoding"`
	Highlight     string  `desc:"Highlight every occurrence of this text"`
	Format        string  `short:"f" default:"text" desc:"Output format: text, json, svg, or pdf"`
	Minify        bool    `desc:"Minify SVG output"`
	Verbose       bool    `short:"v" desc:"Verbose logging"`
	Output        string  `short:"o" desc:"Output file"`
	Input         string  `index:"0" desc:"Input file, or stdin when empty"`
}

func main() {
	root := argp.NewCmd(&Reflow{}, "Reflow text into wrapped lines and render it")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Reflow) Run() error {
	log := zap.NewNop()
	if cmd.Verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer log.Sync()

	s, err := cmd.read()
	if err != nil {
		return err
	}

	l, err := cmd.layout(s)
	if err != nil {
		return err
	}
	if cmd.Highlight != "" {
		n := highlight(l, cmd.Highlight)
		log.Info("highlighted", zap.String("term", cmd.Highlight), zap.Int("matches", n))
	}
	l.UpdateIfNeeded()
	log.Info("layout updated",
		zap.Int("lines", len(l.LineModels())),
		zap.Int("views", len(l.LineViews())),
		zap.Float64("width", l.DrawSize().W),
		zap.Float64("height", l.DrawSize().H),
	)

	w := io.Writer(os.Stdout)
	if cmd.Output != "" && cmd.Output != "-" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := cmd.write(w, l); err != nil {
		log.Error("write failed", zap.String("format", cmd.Format), zap.Error(err))
		return err
	}
	return nil
}

func (cmd *Reflow) read() (string, error) {
	r := io.Reader(os.Stdin)
	if cmd.Input != "" && cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	enc, err := htmlindex.Get(cmd.Charset)
	if err != nil {
		return "", fmt.Errorf("charset %s: %w", cmd.Charset, err)
	}
	b, err := io.ReadAll(enc.NewDecoder().Reader(r))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func (cmd *Reflow) layout(s string) (*reflow.TextLayout, error) {
	justification, err := parseJustification(cmd.Justification)
	if err != nil {
		return nil, err
	}

	l := reflow.NewTextLayout()
	l.SetWrappingWidth(cmd.Width)
	l.SetScale(cmd.Scale)
	l.SetMargin(reflow.UniformMargin(cmd.Margin))
	l.SetJustification(justification)
	l.SetLineHeightPercentage(cmd.LineHeight)

	var face *runs.Face
	if !cmd.Mono {
		if cmd.Serif {
			face, err = runs.LoadFace("Latin Modern Roman", lmroman10regular.TTF, 0, cmd.FontSize)
		} else {
			face, err = runs.DefaultFace(cmd.FontSize)
		}
		if err != nil {
			return nil, err
		}
	}

	black := color.RGBA{0, 0, 0, 255}
	for _, line := range text.SplitLines(s) {
		var lineText *reflow.LineText
		var lineRuns []reflow.Run
		if cmd.Mono {
			lineText = reflow.NewLineText(line)
			lineRuns = []reflow.Run{runs.NewMonoRun(lineText, reflow.TextRange{BeginIndex: 0, EndIndex: lineText.Len()}, 0.6*cmd.FontSize, cmd.FontSize, "")}
		} else {
			lineText, lineRuns = runs.NewTextLine(line, face, black)
		}
		if err := l.AddLine(lineText, lineRuns); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func parseJustification(s string) (reflow.Justification, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return reflow.Left, nil
	case "center":
		return reflow.Center, nil
	case "right":
		return reflow.Right, nil
	}
	return reflow.Left, fmt.Errorf("unknown justification %q", s)
}

// highlight adds a highlight below every occurrence of term and returns the number of occurrences.
func highlight(l *reflow.TextLayout, term string) int {
	n := 0
	needle := []rune(term)
	for i, line := range l.LineModels() {
		rs := line.Text.Runes()
		for j := 0; j+len(needle) <= len(rs); j++ {
			if string(rs[j:j+len(needle)]) == term {
				l.AddLineHighlight(reflow.TextLineHighlight{
					LineIndex:   i,
					Range:       reflow.TextRange{BeginIndex: j, EndIndex: j + len(needle)},
					ZOrder:      -1,
					Highlighter: render.Fill{Color: color.RGBA{255, 235, 59, 255}},
				})
				n++
				j += len(needle) - 1
			}
		}
	}
	return n
}

func (cmd *Reflow) write(w io.Writer, l *reflow.TextLayout) error {
	switch strings.ToLower(cmd.Format) {
	case "text":
		return writeText(w, l)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dump(l))
	case "svg":
		if !cmd.Minify {
			return render.New().WriteSVG(w, l)
		}
		var buf bytes.Buffer
		if err := render.New().WriteSVG(&buf, l); err != nil {
			return err
		}
		m := minify.New()
		m.AddFunc("image/svg+xml", svg.Minify)
		return m.Minify("image/svg+xml", w, &buf)
	case "pdf":
		return render.New().WritePDF(w, l)
	}
	return fmt.Errorf("unknown format %q", cmd.Format)
}

func writeText(w io.Writer, l *reflow.TextLayout) error {
	for _, view := range l.LineViews() {
		line := l.LineModels()[view.ModelIndex]
		if _, err := fmt.Fprintln(w, line.Text.Slice(view.TrimmedRange)); err != nil {
			return err
		}
	}
	return nil
}
