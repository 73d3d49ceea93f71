// Package render paints a TextLayout using tdewolff/canvas and writes it as SVG or PDF.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"github.com/tdewolff/reflow"
	"github.com/tdewolff/reflow/runs"
)

// layout units are millimeters, font sizes are points
const ptPerMm = 72.0 / 25.4

// Fill is a LineHighlighter that fills the highlighted range over the full line height.
type Fill struct {
	Color color.RGBA
}

// Underline is a LineHighlighter that draws a line of the given width just below the baseline.
type Underline struct {
	Color color.RGBA
	Width float64
}

// Color is a RunRenderer that paints the text of its range in another color.
type Color struct {
	Color color.RGBA
}

// Renderer paints the LineViews of a TextLayout. Fonts are loaded once per face.
type Renderer struct {
	Background color.RGBA

	// Caret is drawn as a vertical bar when valid.
	Caret      reflow.TextLocation
	CaretColor color.RGBA

	// DebugBlocks outlines every block.
	DebugBlocks bool

	families map[*runs.Face]*canvas.FontFamily
	mono     *runs.Face
}

// New returns a renderer with a white background and no caret.
func New() *Renderer {
	return &Renderer{
		Background: color.RGBA{255, 255, 255, 255},
		Caret:      reflow.InvalidLocation,
		CaretColor: color.RGBA{0, 0, 0, 255},
		families:   map[*runs.Face]*canvas.FontFamily{},
	}
}

// Canvas updates the layout and returns a canvas of its draw size with the layout painted on it.
func (r *Renderer) Canvas(l *reflow.TextLayout) (*canvas.Canvas, error) {
	l.UpdateIfNeeded()
	size := l.DrawSize()
	c := canvas.New(max(size.W, 1.0), max(size.H, 1.0))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	if err := r.Draw(ctx, l); err != nil {
		return nil, err
	}
	return c, nil
}

// WriteSVG writes the layout as an SVG image.
func (r *Renderer) WriteSVG(w io.Writer, l *reflow.TextLayout) error {
	c, err := r.Canvas(l)
	if err != nil {
		return err
	}
	width, height := c.Size()
	svgWriter := svg.New(w, width, height, nil)
	c.RenderTo(svgWriter)
	return svgWriter.Close()
}

// WritePDF writes the layout as a single page PDF document.
func (r *Renderer) WritePDF(w io.Writer, l *reflow.TextLayout) error {
	c, err := r.Canvas(l)
	if err != nil {
		return err
	}
	width, height := c.Size()
	pdfWriter := pdf.New(w, width, height, nil)
	c.RenderTo(pdfWriter)
	return pdfWriter.Close()
}

// Draw paints the current LineViews of the layout onto ctx, which must use a coordinate system with Y pointing down. The layout is not updated.
func (r *Renderer) Draw(ctx *canvas.Context, l *reflow.TextLayout) error {
	size := l.DrawSize()
	if r.Background.A != 0 {
		ctx.SetFillColor(r.Background)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(0.0, 0.0, canvas.Rectangle(size.W, size.H))
	}

	views := l.LineViews()
	for i := range views {
		view := &views[i]
		r.drawHighlights(ctx, view, view.UnderlayHighlights)
		for _, block := range view.Blocks {
			if err := r.drawBlock(ctx, l, view, block, block.TextRange(), r.blockColor(block)); err != nil {
				return err
			}
		}
		r.drawHighlights(ctx, view, view.OverlayHighlights)
		if err := r.drawRunRenderers(ctx, l, view); err != nil {
			return err
		}
		if r.DebugBlocks {
			r.drawDebug(ctx, view)
		}
	}
	r.drawCaret(ctx, l)
	return nil
}

func (r *Renderer) drawHighlights(ctx *canvas.Context, view *reflow.LineView, highlights []reflow.LineViewHighlight) {
	for _, h := range highlights {
		x := view.Offset.X + h.OffsetX
		switch highlighter := h.Highlighter.(type) {
		case Fill:
			if h.Width <= 0.0 {
				continue
			}
			ctx.SetFillColor(highlighter.Color)
			ctx.SetStrokeColor(canvas.Transparent)
			ctx.DrawPath(x, view.Offset.Y, canvas.Rectangle(h.Width, view.Size.H))
		case Underline:
			if h.Width <= 0.0 {
				continue
			}
			width := highlighter.Width
			if width <= 0.0 {
				width = 0.1
			}
			y := view.Offset.Y + view.Baseline + width
			p := &canvas.Path{}
			p.MoveTo(0.0, 0.0)
			p.LineTo(h.Width, 0.0)
			ctx.SetFillColor(canvas.Transparent)
			ctx.SetStrokeColor(highlighter.Color)
			ctx.SetStrokeWidth(width)
			ctx.DrawPath(x, y, p)
		}
	}
}

// drawRunRenderers repaints the text of every Color run renderer, which covers partial blocks.
func (r *Renderer) drawRunRenderers(ctx *canvas.Context, l *reflow.TextLayout, view *reflow.LineView) error {
	for _, h := range view.OverlayHighlights {
		c, ok := h.Renderer.(Color)
		if !ok {
			continue
		}
		for _, block := range view.Blocks {
			if _, ok := block.Renderer().(Color); ok {
				continue
			}
			span := block.TextRange().Intersect(h.Range)
			if span.IsEmpty() {
				continue
			}
			if err := r.drawBlock(ctx, l, view, block, span, c.Color); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) blockColor(block reflow.Block) color.RGBA {
	if c, ok := block.Renderer().(Color); ok {
		return c.Color
	}
	if run, ok := block.Run().(*runs.TextRun); ok {
		return run.Color
	}
	return color.RGBA{0, 0, 0, 255}
}

// drawBlock paints the text of span, which must lie within the block.
func (r *Renderer) drawBlock(ctx *canvas.Context, l *reflow.TextLayout, view *reflow.LineView, block reflow.Block, span reflow.TextRange, col color.RGBA) error {
	scale := l.Scale()
	line := l.LineModels()[view.ModelIndex]
	var m reflow.Measurer = block.Run()
	if run := line.BlockRun(block); run != nil {
		m = run
	}

	x := block.LocationOffset().X
	if begin := block.TextRange().BeginIndex; begin < span.BeginIndex {
		x += m.Measure(begin, span.BeginIndex, scale).W
	}
	baseline := view.Offset.Y + view.Baseline
	text := line.Text.Slice(span)

	switch run := block.Run().(type) {
	case *runs.TextRun:
		face, err := r.fontFace(run.Face, run.Face.Size*scale, col)
		if err != nil {
			return err
		}
		if text != "" {
			ctx.DrawText(x, baseline, canvas.NewTextLine(face, text, canvas.Left))
		}
	case *runs.MonoRun:
		if r.mono == nil {
			mono, err := runs.MonoFace(1.0)
			if err != nil {
				return err
			}
			r.mono = mono
		}
		size := run.CellWidth * scale / r.mono.Advance('0', 1.0)
		face, err := r.fontFace(r.mono, size, col)
		if err != nil {
			return err
		}
		// draw per character so that wide characters stay on the cell grid
		cx := x
		for i, c := range []rune(text) {
			if c != '\t' && c != ' ' {
				ctx.DrawText(cx, baseline, canvas.NewTextLine(face, string(c), canvas.Left))
			}
			cx += float64(run.Cells(span.BeginIndex+i, span.BeginIndex+i+1)) * run.CellWidth * scale
		}
	case *runs.ObjectRun:
		if span.IsEmpty() {
			return nil
		}
		top, bottom := run.Heights(scale)
		width := block.Size().W
		if img, ok := run.Object.(image.Image); ok && 0.0 < width {
			ctx.DrawImage(x, baseline-top, img, canvas.DPMM(float64(img.Bounds().Dx())/width))
		} else {
			ctx.SetFillColor(color.RGBA{192, 192, 192, 255})
			ctx.SetStrokeColor(canvas.Transparent)
			ctx.DrawPath(x, baseline-top, canvas.Rectangle(width, top-bottom))
		}
	default:
		return fmt.Errorf("render: unsupported run type %T", block.Run())
	}
	return nil
}

func (r *Renderer) fontFace(face *runs.Face, size float64, col color.RGBA) (*canvas.FontFace, error) {
	family, ok := r.families[face]
	if !ok {
		family = canvas.NewFontFamily(face.Name)
		if err := family.LoadFont(face.Data, face.Index, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("render: load font %s: %w", face.Name, err)
		}
		r.families[face] = family
	}
	return family.Face(size*ptPerMm, col, canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) drawCaret(ctx *canvas.Context, l *reflow.TextLayout) {
	if !r.Caret.IsValid() {
		return
	}
	p, ok := l.LocationAt(r.Caret, false)
	if !ok {
		return
	}
	view := l.LineViews()[l.LineViewIndexForTextLocation(r.Caret, false)]
	caret := &canvas.Path{}
	caret.MoveTo(0.0, 0.0)
	caret.LineTo(0.0, view.TextSize.H)
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeColor(r.CaretColor)
	ctx.SetStrokeWidth(0.2 * l.Scale())
	ctx.DrawPath(p.X, p.Y, caret)
}

func (r *Renderer) drawDebug(ctx *canvas.Context, view *reflow.LineView) {
	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeWidth(0.1)
	for _, block := range view.Blocks {
		offset, size := block.LocationOffset(), block.Size()
		ctx.SetStrokeColor(color.RGBA{255, 0, 0, 255})
		ctx.DrawPath(offset.X, offset.Y, canvas.Rectangle(size.W, size.H))
	}
	ctx.SetStrokeColor(color.RGBA{0, 0, 255, 255})
	ctx.DrawPath(view.Offset.X, view.Offset.Y, canvas.Rectangle(view.Size.W, view.Size.H))
}
