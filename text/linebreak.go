package text

import (
	"github.com/go-text/typesetting/segmenter"
)

// IsSpace returns true for breaking spaces.
func IsSpace(r rune) bool {
	// no-break spaces such as U+00A0, U+180E, U+202F, and U+FEFF are not spaces
	spaces := []rune(" \t\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200A\u205F\u3000")
	for _, space := range spaces {
		if r == space {
			return true
		}
	}
	return false
}

// IsNewline returns true for characters that end a line.
func IsNewline(r rune) bool {
	newlines := []rune("\r\n\f\v\u0085\u2028\u2029")
	for _, newline := range newlines {
		if r == newline {
			return true
		}
	}
	return false
}

// IsWhitespace returns true for characters that are trimmed from the end of a line when measuring whether it fits.
func IsWhitespace(r rune) bool {
	return IsSpace(r) || IsNewline(r)
}

// LineBreaks returns the offsets at which a line may be broken following UAX#14, which is after each word and its trailing spaces for most scripts. The offsets are increasing and the last offset equals len(rs).
func LineBreaks(rs []rune) []int {
	if len(rs) == 0 {
		return nil
	}

	var seg segmenter.Segmenter
	seg.Init(rs)
	iter := seg.LineIterator()
	breaks := []int{}
	for iter.Next() {
		line := iter.Line()
		if end := line.Offset + len(line.Text); len(breaks) == 0 || breaks[len(breaks)-1] < end {
			breaks = append(breaks, end)
		}
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] != len(rs) {
		breaks = append(breaks, len(rs))
	}
	return breaks
}

// SplitLines splits s at newline characters, where CR+LF counts as one. The newline characters are dropped and a trailing newline yields a final empty line.
func SplitLines(s string) []string {
	lines := []string{}
	rs := []rune(s)
	start := 0
	for i := 0; i < len(rs); i++ {
		if IsParagraphSeparator(rs[i]) {
			lines = append(lines, string(rs[start:i]))
			if rs[i] == '\r' && i+1 < len(rs) && rs[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, string(rs[start:]))
}
