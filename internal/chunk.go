package internal

import (
	"fmt"
	"math/rand"
)

// Chunk is the 2–3 token unit encoding one message token plus its governing
// anchor(s). A chunk must land in contiguous slots of a single grid row.
type Chunk []string

// BuildChunks encodes each message token, in order, into one chunk.
//
// Three cases cover every token; in each, the anchor that governs decoding
// ends up adjacent to the message token on the side matching its direction:
//
//  1. The token is itself an anchor. It is bracketed by its own reversal
//     (a sentinel the decoder skips) and a random same-direction anchor, so
//     a decoder can tell this occurrence carries message content rather
//     than acting as an anchor.
//  2. The token's reversal is an anchor. A random After anchor is put in
//     front; if the draw collides with the reversal itself, the token is
//     instead followed by a random Before anchor.
//  3. Plain token. A random anchor is attached on the side its direction
//     dictates.
//
// Returns ErrNoAnchorAvailable (wrapped) when a branch needs a direction
// the password cannot provide.
func BuildChunks(tokens []string, anchors *AnchorSet, r *rand.Rand) ([]Chunk, error) {
	chunks := make([]Chunk, 0, len(tokens))
	for _, m := range tokens {
		chunk, err := buildChunk(m, anchors, r)
		if err != nil {
			return nil, fmt.Errorf("encoding token %q: %w", m, err)
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

func buildChunk(m string, anchors *AnchorSet, r *rand.Rand) (Chunk, error) {
	if d, ok := anchors.Direction(m); ok {
		a, err := anchors.PickDirection(r, d)
		if err != nil {
			return nil, err
		}
		if d == Before {
			return Chunk{Reverse(m), m, a}, nil
		}
		return Chunk{a, m, Reverse(m)}, nil
	}

	if anchors.Contains(Reverse(m)) {
		a, err := anchors.PickDirection(r, After)
		if err != nil {
			return nil, err
		}
		if a != Reverse(m) {
			return Chunk{a, m}, nil
		}
		b, err := anchors.PickDirection(r, Before)
		if err != nil {
			return nil, err
		}
		return Chunk{m, b}, nil
	}

	a, err := anchors.Pick(r)
	if err != nil {
		return nil, err
	}
	if d, _ := anchors.Direction(a); d == Before {
		return Chunk{m, a}, nil
	}
	return Chunk{a, m}, nil
}
