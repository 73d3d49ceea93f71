package reflow

import (
	"sort"
	"strings"

	reflowText "github.com/tdewolff/reflow/text"
)

// LineSeparator is written between lines when the document is flattened.
const LineSeparator = "\n"

// OffsetEntry is the position of a line within the flattened document.
type OffsetEntry struct {
	FlatStringIndex    int
	DocumentLineLength int
}

// TextOffsetLocations maps between offsets in the flattened document and locations. It is a snapshot and goes stale as soon as the layout is edited.
type TextOffsetLocations struct {
	entries []OffsetEntry
}

// Entries returns one entry per line.
func (o *TextOffsetLocations) Entries() []OffsetEntry {
	return o.entries
}

// TextLocationToOffset returns the offset in the flattened document of loc, clamping the offset to the line length. It returns -1 if the line does not exist.
func (o *TextOffsetLocations) TextLocationToOffset(loc TextLocation) int {
	if loc.LineIndex < 0 || len(o.entries) <= loc.LineIndex {
		return -1
	}
	entry := o.entries[loc.LineIndex]
	return entry.FlatStringIndex + clampInt(loc.Offset, 0, entry.DocumentLineLength)
}

// OffsetToTextLocation returns the location of an offset in the flattened document. An offset on a line separator maps to the end of the line before it and an offset past the end maps to the end of the last line.
func (o *TextOffsetLocations) OffsetToTextLocation(offset int) TextLocation {
	if offset < 0 || len(o.entries) == 0 {
		return InvalidLocation
	}
	i := sort.Search(len(o.entries), func(i int) bool {
		return offset < o.entries[i].FlatStringIndex
	}) - 1
	entry := o.entries[i]
	return TextLocation{i, clampInt(offset-entry.FlatStringIndex, 0, entry.DocumentLineLength)}
}

// TextLength returns the length of the flattened document.
func (o *TextOffsetLocations) TextLength() int {
	if len(o.entries) == 0 {
		return 0
	}
	last := o.entries[len(o.entries)-1]
	return last.FlatStringIndex + last.DocumentLineLength
}

////////////////////////////////////////////////////////////////

// AsText returns the document with lines joined by LineSeparator.
func (l *TextLayout) AsText() string {
	s, _ := l.asText(false)
	return s
}

// AsTextWithOffsets returns the document with lines joined by LineSeparator and the position of every line in it.
func (l *TextLayout) AsTextWithOffsets() (string, *TextOffsetLocations) {
	return l.asText(true)
}

// TextOffsetLocations returns the position of every line in the flattened document.
func (l *TextLayout) TextOffsetLocations() *TextOffsetLocations {
	offsets := &TextOffsetLocations{make([]OffsetEntry, 0, len(l.lineModels))}
	pos := 0
	for i, line := range l.lineModels {
		if 0 < i {
			pos += len(LineSeparator)
		}
		offsets.entries = append(offsets.entries, OffsetEntry{pos, line.Text.Len()})
		pos += line.Text.Len()
	}
	return offsets
}

func (l *TextLayout) asText(withOffsets bool) (string, *TextOffsetLocations) {
	var offsets *TextOffsetLocations
	if withOffsets {
		offsets = &TextOffsetLocations{make([]OffsetEntry, 0, len(l.lineModels))}
	}

	sb := strings.Builder{}
	pos := 0
	for i, line := range l.lineModels {
		if 0 < i {
			sb.WriteString(LineSeparator)
			pos += len(LineSeparator)
		}
		line.AppendText(&sb, TextRange{0, line.Text.Len()})
		if offsets != nil {
			offsets.entries = append(offsets.entries, OffsetEntry{pos, line.Text.Len()})
		}
		pos += line.Text.Len()
	}
	return sb.String(), offsets
}

// SelectionAsText returns the text between both ends of the selection, with lines joined by LineSeparator. Locations are clamped to the document.
func (l *TextLayout) SelectionAsText(sel TextSelection) string {
	begin, end := sel.Beginning(), sel.End()
	if len(l.lineModels) == 0 || !begin.IsValid() || !end.IsValid() {
		return ""
	}
	begin.LineIndex = min(begin.LineIndex, len(l.lineModels)-1)
	end.LineIndex = min(end.LineIndex, len(l.lineModels)-1)

	sb := strings.Builder{}
	for i := begin.LineIndex; i <= end.LineIndex; i++ {
		line := l.lineModels[i]
		r := TextRange{0, line.Text.Len()}
		if i == begin.LineIndex {
			r.BeginIndex = min(begin.Offset, r.EndIndex)
		}
		if i == end.LineIndex {
			r.EndIndex = min(end.Offset, r.EndIndex)
		}
		if i != begin.LineIndex {
			sb.WriteString(LineSeparator)
		}
		line.AppendText(&sb, r)
	}
	return sb.String()
}

// WordAt returns the selection of the word at loc, or of the word ending at loc. It returns an empty selection at loc if there is no word, or an invalid selection if loc does not exist.
func (l *TextLayout) WordAt(loc TextLocation) TextSelection {
	line, ok := l.lineAt(loc)
	if !ok {
		return Locate(InvalidLocation)
	}
	begin, end, ok := reflowText.WordAt(line.Text.Runes(), loc.Offset)
	if !ok {
		return Locate(loc)
	}
	return SelectRange(loc.LineIndex, TextRange{begin, end})
}
