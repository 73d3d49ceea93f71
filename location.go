package reflow

import "strconv"

// TextRange is a half-open range [BeginIndex,EndIndex) of characters within a line.
type TextRange struct {
	BeginIndex, EndIndex int
}

// Len returns the number of characters in the range.
func (r TextRange) Len() int {
	return r.EndIndex - r.BeginIndex
}

// IsEmpty returns true if the range holds no characters.
func (r TextRange) IsEmpty() bool {
	return r.EndIndex <= r.BeginIndex
}

// Contains returns true if i lies in [BeginIndex,EndIndex).
func (r TextRange) Contains(i int) bool {
	return r.BeginIndex <= i && i < r.EndIndex
}

// InclusiveContains returns true if i lies in [BeginIndex,EndIndex].
func (r TextRange) InclusiveContains(i int) bool {
	return r.BeginIndex <= i && i <= r.EndIndex
}

// Intersect returns the overlap of both ranges, which is empty if they do not overlap.
func (r TextRange) Intersect(q TextRange) TextRange {
	begin := max(r.BeginIndex, q.BeginIndex)
	end := min(r.EndIndex, q.EndIndex)
	if end < begin {
		return TextRange{begin, begin}
	}
	return TextRange{begin, end}
}

// Offset shifts the range by n characters.
func (r TextRange) Offset(n int) TextRange {
	return TextRange{r.BeginIndex + n, r.EndIndex + n}
}

func (r TextRange) String() string {
	return "[" + strconv.Itoa(r.BeginIndex) + "," + strconv.Itoa(r.EndIndex) + ")"
}

////////////////////////////////////////////////////////////////

// TextLocation is a character position within a line of the document.
type TextLocation struct {
	LineIndex, Offset int
}

// InvalidLocation is returned by queries that cannot resolve a location.
var InvalidLocation = TextLocation{-1, -1}

// IsValid returns true if the location is not InvalidLocation and has no negative components.
func (l TextLocation) IsValid() bool {
	return 0 <= l.LineIndex && 0 <= l.Offset
}

// Compare returns -1, 0, or +1 when L is before, equal to, or after M, comparing line indices first.
func (l TextLocation) Compare(m TextLocation) int {
	if l.LineIndex != m.LineIndex {
		if l.LineIndex < m.LineIndex {
			return -1
		}
		return 1
	} else if l.Offset != m.Offset {
		if l.Offset < m.Offset {
			return -1
		}
		return 1
	}
	return 0
}

// Less returns true if L comes before M.
func (l TextLocation) Less(m TextLocation) bool {
	return l.Compare(m) < 0
}

// Move returns the location shifted by n characters on the same line, clamped at the line start.
func (l TextLocation) Move(n int) TextLocation {
	return TextLocation{l.LineIndex, max(0, l.Offset+n)}
}

func (l TextLocation) String() string {
	if !l.IsValid() {
		return "Invalid"
	}
	return strconv.Itoa(l.LineIndex) + ":" + strconv.Itoa(l.Offset)
}

////////////////////////////////////////////////////////////////

// TextSelection is a pair of locations where Anchor stays put and Active follows the caret. Either may come first.
type TextSelection struct {
	Anchor, Active TextLocation
}

// Locate returns an empty selection at the given location.
func Locate(loc TextLocation) TextSelection {
	return TextSelection{loc, loc}
}

// SelectRange returns a selection of the given range on a single line.
func SelectRange(lineIndex int, r TextRange) TextSelection {
	return TextSelection{TextLocation{lineIndex, r.BeginIndex}, TextLocation{lineIndex, r.EndIndex}}
}

// Beginning returns the earliest of both locations.
func (s TextSelection) Beginning() TextLocation {
	if s.Active.Less(s.Anchor) {
		return s.Active
	}
	return s.Anchor
}

// End returns the latest of both locations.
func (s TextSelection) End() TextLocation {
	if s.Active.Less(s.Anchor) {
		return s.Anchor
	}
	return s.Active
}

// IsEmpty returns true if both ends of the selection coincide.
func (s TextSelection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// IsValid returns true if both ends are valid locations.
func (s TextSelection) IsValid() bool {
	return s.Anchor.IsValid() && s.Active.IsValid()
}
