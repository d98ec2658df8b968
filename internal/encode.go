package internal

import (
	"fmt"
	"math/rand"
)

// Encode hides text inside a lineMax×(totalMax/lineMax) token grid keyed by
// password.
//
// Behavior:
//  1. Extract anchors from the password; none at all is fatal.
//  2. Tokenize the text, padding one random rune when its length is odd.
//  3. Encode each message token into a chunk.
//  4. Allocate the empty grid (last row possibly short).
//  5. When padded, plant one lone anchor at the first (Before) or last
//     (After) slot of a random row; its missing neighbor tells the decoder
//     to trim the synthetic rune.
//  6. Place the chunks, spread first, tight fit as fallback.
//  7. Fill every remaining slot with noise.
//
// The grid is immutable once returned; decoding it with the same password
// recovers text exactly.
//
// Returns ErrNoAnchorAvailable or ErrPlacementCapacityExceeded (wrapped)
// on the two fatal conditions; no grid is returned alongside an error.
func Encode(text, password string, lineMax, totalMax int, r *rand.Rand) (*Grid, error) {
	anchors := ExtractAnchors(password)
	if anchors.Len() == 0 {
		return nil, fmt.Errorf("password %d runes long yields no valid anchors: %w", len([]rune(password)), ErrNoAnchorAvailable)
	}

	tokens, padded := SplitMessage(text, r)
	chunks, err := BuildChunks(tokens, anchors, r)
	if err != nil {
		return nil, err
	}

	needed := 0
	for _, c := range chunks {
		needed += len(c)
	}
	if padded {
		needed++
	}
	if needed > totalMax {
		return nil, fmt.Errorf("message needs %d slots but the grid holds %d: %w", needed, totalMax, ErrPlacementCapacityExceeded)
	}

	g, err := NewGrid(lineMax, totalMax)
	if err != nil {
		return nil, err
	}

	if padded {
		if err := placePadMarker(g, anchors, r); err != nil {
			return nil, err
		}
	}

	if err := PlaceChunks(g, chunks, r); err != nil {
		return nil, err
	}

	message := TokenSet(tokens)
	for _, row := range g.rows {
		for j, tok := range row {
			if tok == "" {
				row[j] = NoiseToken(r, anchors, message)
			}
		}
	}
	return g, nil
}

// placePadMarker puts one random anchor alone at the row boundary its
// direction cannot read past: first slot for Before, last slot for After.
func placePadMarker(g *Grid, anchors *AnchorSet, r *rand.Rand) error {
	a, err := anchors.Pick(r)
	if err != nil {
		return err
	}
	row := g.rows[r.Intn(len(g.rows))]
	if d, _ := anchors.Direction(a); d == Before {
		row[0] = a
	} else {
		row[len(row)-1] = a
	}
	return nil
}
