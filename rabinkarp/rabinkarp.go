// SPDX-License-Identifier: MIT

package rabinkarp

import (
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Hash returns the polynomial hash of s over its rune code points.
func Hash(s string) int {
	return hashRunes([]rune(s))
}

func hashRunes(rs []rune) int {
	h := 0
	for _, r := range rs {
		h = (h*Base + int(r)%Modulus) % Modulus
	}
	return h
}

// roll removes out (weighted by power = Base^(m-1) mod Modulus) from h and
// appends in.
func roll(h int, out, in rune, power int) int {
	h = (h - (int(out)%Modulus)*power%Modulus + Modulus) % Modulus
	return (h*Base + int(in)%Modulus) % Modulus
}

// Search records a Rabin-Karp search for pattern in text.
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
	n, m := len(txt), len(pat)

	base := Snapshot{
		Text:        text,
		Pattern:     pattern,
		WindowStart: -1,
		WindowEnd:   -1,
		PatternHash: hashRunes(pat),
		Matches:     []int{},
		Collisions:  []int{},
	}

	if m > n {
		rec := step.NewRecorder[Snapshot](Name, 1)
		return rec.Finish(step.KindDone, step.None, base,
			fmt.Sprintf("Pattern (%d runes) is longer than text (%d runes): no window fits", m, n))
	}

	rec := step.NewRecorder[Snapshot](Name, 3*(n-m+1)+2)
	power := 1
	for i := 0; i < m-1; i++ {
		power = (power * Base) % Modulus
	}

	var matches, collisions []int
	window := hashRunes(txt[:m])
	snap := func(s, verified int) Snapshot {
		out := base
		out.WindowStart, out.WindowEnd = s, s+m-1
		out.WindowHash = window
		out.Verified = verified
		out.Matches = append([]int{}, matches...)
		out.Collisions = append([]int{}, collisions...)
		return out
	}

	rec.Record(step.KindHash, step.At(span(0, m)...), snap(0, 0),
		fmt.Sprintf("Pattern hash = %d, first window hash = %d", base.PatternHash, window))

	for s := 0; s <= n-m; s++ {
		if err := step.Canceled(o.Ctx); err != nil {
			return nil, err
		}

		if window != base.PatternHash {
			rec.Record(step.KindCompareHash, step.At(span(s, m)...), snap(s, 0),
				fmt.Sprintf("Window %d: hash %d ≠ pattern hash %d", s, window, base.PatternHash))
		} else {
			rec.Record(step.KindCompareHash, step.At(span(s, m)...), snap(s, 0),
				fmt.Sprintf("Window %d: hash %d = pattern hash; verify runes", s, window))

			j := 0
			for ; j < m; j++ {
				same := txt[s+j] == pat[j]
				verified := j
				if same {
					verified = j + 1
				}
				rec.Record(step.KindVerify, step.OnChars(s+j, j), snap(s, verified),
					fmt.Sprintf("text[%d] = %q vs pattern[%d] = %q", s+j, txt[s+j], j, pat[j]))
				if !same {
					break
				}
			}

			if j == m {
				matches = append(matches, s)
				rec.Record(step.KindMatch, step.At(span(s, m)...), snap(s, m),
					fmt.Sprintf("Pattern found at index %d", s))
			} else {
				collisions = append(collisions, s)
				rec.Record(step.KindCollision, step.At(span(s, m)...), snap(s, j),
					fmt.Sprintf("Spurious hit at index %d: hashes equal, runes differ at offset %d", s, j))
			}
		}

		if s < n-m {
			window = roll(window, txt[s], txt[s+m], power)
			rec.Record(step.KindSlide, step.At(span(s+1, m)...), snap(s+1, 0),
				fmt.Sprintf("Slide: drop %q, add %q, new hash = %d", txt[s], txt[s+m], window))
		}
	}

	return rec.Finish(step.KindDone, step.None, snap(n-m, 0),
		fmt.Sprintf("Search complete: %d match(es), %d collision(s)", len(matches), len(collisions)))
}

// span returns [s, s+1, ..., s+m-1].
func span(s, m int) []int {
	out := make([]int, m)
	for i := range out {
		out[i] = s + i
	}
	return out
}
