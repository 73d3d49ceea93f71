package runs

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoGlyphs is returned when a font does not map any of the characters of a probe string.
var ErrNoGlyphs = errors.New("font has no glyphs for the probe text")

// Face is a font at a size, where the size is the em size in unscaled layout units.
type Face struct {
	Name  string
	Data  []byte
	Index int
	Size  float64

	sfnt *font.SFNT
}

// LoadFace parses an SFNT font (TTF or OTF) and returns a face of the given size. The data is kept so that renderers can load the same font.
func LoadFace(name string, b []byte, index int, size float64) (*Face, error) {
	sfnt, err := font.ParseSFNT(b, index)
	if err != nil {
		return nil, fmt.Errorf("load face %s: %w", name, err)
	}
	if sfnt.GlyphIndex('a') == 0 && sfnt.GlyphIndex('0') == 0 {
		return nil, fmt.Errorf("load face %s: %w", name, ErrNoGlyphs)
	}
	return &Face{
		Name:  name,
		Data:  b,
		Index: index,
		Size:  size,
		sfnt:  sfnt,
	}, nil
}

// DefaultFace returns the Go Regular font at the given size.
func DefaultFace(size float64) (*Face, error) {
	return LoadFace("Go Regular", goregular.TTF, 0, size)
}

// MonoFace returns the Go Mono font at the given size.
func MonoFace(size float64) (*Face, error) {
	return LoadFace("Go Mono", gomono.TTF, 0, size)
}

// WithSize returns a face of the same font at another size.
func (f *Face) WithSize(size float64) *Face {
	g := *f
	g.Size = size
	return &g
}

// fx returns the factor from font units to layout units.
func (f *Face) fx(scale float64) float64 {
	return f.Size * scale / float64(f.sfnt.Head.UnitsPerEm)
}

// Advance returns the advance width of r.
func (f *Face) Advance(r rune, scale float64) float64 {
	return f.fx(scale) * float64(f.sfnt.GlyphAdvance(f.sfnt.GlyphIndex(r)))
}

// Kerning returns the kerning adjustment between left and right.
func (f *Face) Kerning(left, right rune, scale float64) float64 {
	return f.fx(scale) * float64(f.sfnt.Kerning(f.sfnt.GlyphIndex(left), f.sfnt.GlyphIndex(right)))
}

// Ascent returns the distance from the baseline to the top of the line.
func (f *Face) Ascent(scale float64) float64 {
	return f.fx(scale) * float64(f.sfnt.Hhea.Ascender)
}

// Descent returns the distance from the baseline to the bottom of the line, including the line gap.
func (f *Face) Descent(scale float64) float64 {
	return f.fx(scale) * float64(-f.sfnt.Hhea.Descender+f.sfnt.Hhea.LineGap)
}

// TextWidth returns the width of rs including kerning.
func (f *Face) TextWidth(rs []rune, scale float64) float64 {
	w := 0.0
	for i, r := range rs {
		if 0 < i {
			w += f.Kerning(rs[i-1], r, scale)
		}
		w += f.Advance(r, scale)
	}
	return w
}

func (f *Face) String() string {
	return fmt.Sprintf("%s %gu", f.Name, f.Size)
}

// toInt16 rounds a metric up to whole layout units.
func toInt16(f float64) int16 {
	return int16(min(math.Ceil(f), math.MaxInt16))
}
