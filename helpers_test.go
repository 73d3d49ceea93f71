package reflow

// testWidths holds the advance of characters that are not 9 units wide.
var testWidths = map[rune]float64{' ': 6.0, 'f': 6.0, 'o': 7.0, 'x': 7.0}

func testWidth(r rune) float64 {
	if w, ok := testWidths[r]; ok {
		return w
	}
	return 9.0
}

// testRun is a run of fixed-width characters that is 8 units above and 2 units below the baseline, or 12 above if tall. Every pair of characters is kerned by kern.
type testRun struct {
	text  *LineText
	rng   TextRange
	style int
	tall  bool
	kern  float64

	measures int
}

func (run *testRun) TextRange() TextRange {
	return run.rng
}

func (run *testRun) Measure(begin, end int, scale float64) Size {
	run.measures++
	w := 0.0
	for i, r := range run.text.Runes()[begin:end] {
		if 0 < i {
			w += run.kern
		}
		w += testWidth(r)
	}
	return Size{w * scale, float64(run.BaselineAbove(scale)) + float64(run.BaselineBelow(scale))}
}

func (run *testRun) Kerning(index int, scale float64) float64 {
	if index <= run.rng.BeginIndex || run.rng.EndIndex <= index {
		return 0.0
	}
	return run.kern * scale
}

func (run *testRun) BaselineAbove(scale float64) int16 {
	if run.tall {
		return int16(12.0 * scale)
	}
	return int16(8.0 * scale)
}

func (run *testRun) BaselineBelow(scale float64) int16 {
	return int16(2.0 * scale)
}

func (run *testRun) CreateBlock(def BlockDefinition, size Size, scale float64) Block {
	return NewDefaultBlock(run, def, size)
}

func (run *testRun) TextIndexAt(m Measurer, block Block, x, scale float64) (int, TextHitPoint) {
	r := block.TextRange()
	if x < 0.0 {
		return r.BeginIndex, LeftGutter
	}
	pos := 0.0
	for i := r.BeginIndex; i < r.EndIndex; i++ {
		w := m.Measure(i, i+1, scale).W
		if x < pos+w/2.0 {
			return i, WithinText
		}
		pos += w
	}
	if x < block.Size().W {
		return r.EndIndex, WithinText
	}
	return r.EndIndex, RightGutter
}

func (run *testRun) BeginLayout() {}

func (run *testRun) EndLayout() {}

func (run *testRun) Move(text *LineText, r TextRange) {
	run.text = text
	run.rng = r
}

func (run *testRun) Clone() Run {
	clone := *run
	clone.measures = 0
	return &clone
}

func (run *testRun) CanMergeWith(other Run) bool {
	o, ok := other.(*testRun)
	return ok && o.style == run.style && o.tall == run.tall
}

////////////////////////////////////////////////////////////////

// newTestLine returns a line with one run per part, where the style of each run is its index.
func newTestLine(parts ...string) (*LineText, []Run) {
	s := ""
	for _, part := range parts {
		s += part
	}
	text := NewLineText(s)
	runs := []Run{}
	pos := 0
	for i, part := range parts {
		n := len([]rune(part))
		runs = append(runs, &testRun{text: text, rng: TextRange{pos, pos + n}, style: i})
		pos += n
	}
	if len(runs) == 0 {
		runs = append(runs, &testRun{text: text})
	}
	return text, runs
}

// newTestLayout returns an updated layout with a single run per line.
func newTestLayout(wrappingWidth float64, lines ...string) *TextLayout {
	l := NewTextLayout()
	l.SetWrappingWidth(wrappingWidth)
	for _, s := range lines {
		text, runs := newTestLine(s)
		if err := l.AddLine(text, runs); err != nil {
			panic(err)
		}
	}
	l.UpdateIfNeeded()
	return l
}

func lineTexts(l *TextLayout) []string {
	ss := []string{}
	for _, line := range l.LineModels() {
		ss = append(ss, line.Text.String())
	}
	return ss
}

func runRanges(line *LineModel) []TextRange {
	rs := []TextRange{}
	for _, run := range line.Runs {
		rs = append(rs, run.TextRange())
	}
	return rs
}
