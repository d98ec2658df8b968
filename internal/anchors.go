package internal

// Package internal: anchor extraction.
//
// Anchors are the password-derived markers the whole scheme hangs on. The
// password is read as overlapping 2-rune windows; a window survives as an
// anchor only when it is unambiguous on paper:
//   - it occurs exactly once among the windows,
//   - its two runes differ (no length-2 palindromes),
//   - its reversal does not also occur as a window.
//
// Surviving anchors keep the order of their first occurrence. The parity of
// an anchor's index assigns its direction: even → Before, odd → After. The
// direction tells the decoder which neighboring grid slot carries the
// message token the anchor governs.
//
// Extraction is a pure function of the password string. Random selection
// helpers take an explicit *rand.Rand so callers control reproducibility.

import (
	"math/rand"
)

// Direction tells which neighbor slot an anchor governs during decoding.
type Direction int

const (
	// Before anchors read the slot immediately to their left.
	Before Direction = iota
	// After anchors read the slot immediately to their right.
	After
)

// String returns the lowercase name used in CLI output.
func (d Direction) String() string {
	if d == Before {
		return "before"
	}
	return "after"
}

// AnchorSet is the ordered list of valid anchors for one password, with a
// lookup index. It is immutable once built.
type AnchorSet struct {
	tokens []string
	index  map[string]int
}

// ExtractAnchors derives the valid anchors from password.
//
// Behavior:
//  1. Slide a 2-rune window over the password (len-1 raw windows).
//  2. Drop windows that repeat, are palindromes, or whose reversal also
//     occurs as a raw window.
//  3. Keep the survivors in first-occurrence order.
//
// A password shorter than 2 runes, or one where every window fails, yields
// an empty set; consumers that need an anchor fail with ErrNoAnchorAvailable.
func ExtractAnchors(password string) *AnchorSet {
	runes := []rune(password)
	s := &AnchorSet{index: make(map[string]int)}
	if len(runes) < 2 {
		return s
	}

	raw := make([]string, 0, len(runes)-1)
	counts := make(map[string]int, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		w := string(runes[i : i+2])
		raw = append(raw, w)
		counts[w]++
	}

	for _, w := range raw {
		if counts[w] > 1 {
			continue
		}
		r := []rune(w)
		if r[0] == r[1] {
			continue
		}
		if _, ok := counts[Reverse(w)]; ok {
			continue
		}
		s.index[w] = len(s.tokens)
		s.tokens = append(s.tokens, w)
	}
	return s
}

// Len returns the number of valid anchors.
func (s *AnchorSet) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the anchors in order.
func (s *AnchorSet) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Contains reports whether tok is a valid anchor.
func (s *AnchorSet) Contains(tok string) bool {
	_, ok := s.index[tok]
	return ok
}

// Direction returns the direction of tok, or ok=false when tok is not an
// anchor. Direction is the parity of the anchor's index in the set.
func (s *AnchorSet) Direction(tok string) (Direction, bool) {
	idx, ok := s.index[tok]
	if !ok {
		return Before, false
	}
	if idx%2 == 0 {
		return Before, true
	}
	return After, true
}

// Pick returns a uniformly random anchor, or ErrNoAnchorAvailable when the
// set is empty.
func (s *AnchorSet) Pick(r *rand.Rand) (string, error) {
	if len(s.tokens) == 0 {
		return "", ErrNoAnchorAvailable
	}
	return s.tokens[r.Intn(len(s.tokens))], nil
}

// PickDirection returns a uniformly random anchor with direction d, or
// ErrNoAnchorAvailable when no anchor has that direction.
func (s *AnchorSet) PickDirection(r *rand.Rand, d Direction) (string, error) {
	candidates := make([]string, 0, (len(s.tokens)+1)/2)
	for i, tok := range s.tokens {
		if (i%2 == 0) == (d == Before) {
			candidates = append(candidates, tok)
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoAnchorAvailable
	}
	return candidates[r.Intn(len(candidates))], nil
}
