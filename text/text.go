package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// IsParagraphSeparator returns true for characters that separate paragraphs.
func IsParagraphSeparator(r rune) bool {
	// line feed, vertical tab, form feed, carriage return, next line, line separator, paragraph separator
	return 0x0A <= r && r <= 0x0D || r == 0x85 || r == '\u2028' || r == '\u2029'
}

// GraphemeBoundaries returns the offsets between grapheme clusters in rs, including 0 and len(rs).
func GraphemeBoundaries(rs []rune) []int {
	bounds := []int{0}
	if len(rs) == 0 {
		return bounds
	}

	pos := 0
	g := uniseg.NewGraphemes(string(rs))
	for g.Next() {
		pos += len(g.Runes())
		bounds = append(bounds, pos)
	}
	return bounds
}

// WordAt returns the range [begin,end) of the word following UAX#29 that contains offset or, failing that, that ends at offset. A word contains at least one letter or digit.
func WordAt(rs []rune, offset int) (int, int, bool) {
	if offset < 0 || len(rs) < offset {
		return 0, 0, false
	}

	s := string(rs)
	state := -1
	prevBegin, prevEnd, prevWord := 0, 0, false
	for pos := 0; 0 < len(s); {
		var word string
		word, s, state = uniseg.FirstWordInString(s, state)
		begin, end := pos, pos+utf8.RuneCountInString(word)
		pos = end

		isWord := hasLetterOrDigit(word)
		if begin <= offset && offset < end {
			if isWord {
				return begin, end, true
			} else if prevWord && prevEnd == offset {
				return prevBegin, prevEnd, true
			}
			return 0, 0, false
		}
		prevBegin, prevEnd, prevWord = begin, end, isWord
	}
	if prevWord && prevEnd == offset {
		return prevBegin, prevEnd, true
	}
	return 0, 0, false
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
