// SPDX-License-Identifier: MIT

package kmp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// LPS returns the longest-proper-prefix-which-is-also-suffix table of
// pattern, indexed by rune.
func LPS(pattern string) []int {
	pat := []rune(pattern)
	lps := make([]int, len(pat))
	for i, n := 1, 0; i < len(pat); {
		switch {
		case pat[i] == pat[n]:
			n++
			lps[i] = n
			i++
		case n != 0:
			n = lps[n-1]
		default:
			lps[i] = 0
			i++
		}
	}
	return lps
}

// matcher holds the mutable state shared by both phases.
type matcher struct {
	ctx     context.Context
	rec     *step.Recorder[Snapshot]
	text    []rune
	pat     []rune
	base    Snapshot
	lps     []int
	border  int
	matches []int
}

// Search records a KMP search for pattern in text.
func Search(text, pattern string, opts ...Option) (*Run, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pat := []rune(pattern)
	if len(pat) == 0 {
		return nil, ErrEmptyPattern
	}

	txt := []rune(text)
	m := &matcher{
		ctx:     o.Ctx,
		rec:     step.NewRecorder[Snapshot](Name, 2*len(pat)+2*len(txt)+1),
		text:    txt,
		pat:     pat,
		base:    Snapshot{Text: text, Pattern: pattern},
		lps:     make([]int, len(pat)),
		matches: []int{},
	}

	if err := m.buildTable(); err != nil {
		return nil, err
	}
	if err := m.scan(); err != nil {
		return nil, err
	}

	s := m.snap(PhaseMatch, len(txt), 0)
	return m.rec.Finish(step.KindDone, step.None, s,
		fmt.Sprintf("Search complete: %d match(es) at %v", len(m.matches), m.matches))
}

// buildTable fills lps with the two-pointer scan, one step per comparison.
func (m *matcher) buildTable() error {
	for i := 1; i < len(m.pat); {
		if err := step.Canceled(m.ctx); err != nil {
			return err
		}
		n := m.border
		switch {
		case m.pat[i] == m.pat[n]:
			m.border++
			m.lps[i] = m.border
			m.rec.Record(step.KindLPS, step.At(n, i), m.snap(PhaseTable, -1, i),
				fmt.Sprintf("pattern[%d] = pattern[%d] = %q: lps[%d] = %d", i, n, m.pat[i], i, m.border))
			i++
		case n != 0:
			m.border = m.lps[n-1]
			m.rec.Record(step.KindLPS, step.At(n, i), m.snap(PhaseTable, -1, i),
				fmt.Sprintf("pattern[%d] ≠ pattern[%d]: border falls back to lps[%d] = %d", i, n, n-1, m.border))
		default:
			m.lps[i] = 0
			m.rec.Record(step.KindLPS, step.At(n, i), m.snap(PhaseTable, -1, i),
				fmt.Sprintf("pattern[%d] ≠ pattern[0]: lps[%d] = 0", i, i))
			i++
		}
	}
	return nil
}

// scan walks the text once, never moving i backwards.
func (m *matcher) scan() error {
	n, k := len(m.text), len(m.pat)
	i, j := 0, 0
	for i < n {
		if err := step.Canceled(m.ctx); err != nil {
			return err
		}
		if m.text[i] == m.pat[j] {
			m.rec.Record(step.KindMatch, step.OnChars(i, j), m.snap(PhaseMatch, i, j),
				fmt.Sprintf("text[%d] = pattern[%d] = %q", i, j, m.text[i]))
			i++
			j++
			if j == k {
				start := i - j
				m.matches = append(m.matches, start)
				j = m.lps[j-1]
				m.rec.Record(step.KindFound, step.At(start), m.snap(PhaseMatch, i, j),
					fmt.Sprintf("Pattern found at index %d; continue from pattern index %d", start, j))
			}
			continue
		}

		m.rec.Record(step.KindMismatch, step.OnChars(i, j), m.snap(PhaseMatch, i, j),
			fmt.Sprintf("text[%d] = %q ≠ pattern[%d] = %q", i, m.text[i], j, m.pat[j]))
		if j != 0 {
			prev := j
			j = m.lps[j-1]
			m.rec.Record(step.KindFallback, step.OnChars(i, j), m.snap(PhaseMatch, i, j),
				fmt.Sprintf("Fall back: pattern index %d → lps[%d] = %d", prev, prev-1, j))
		} else {
			i++
		}
	}
	return nil
}

func (m *matcher) snap(phase Phase, i, j int) Snapshot {
	s := m.base
	s.Phase = phase
	s.LPS = step.CloneInts(m.lps)
	s.Border = m.border
	s.TextIndex = i
	s.PatternIndex = j
	s.Matches = step.CloneInts(m.matches)
	return s
}
