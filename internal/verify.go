package internal

import (
	"fmt"
	"math/rand"
)

// EncodeVerified encodes text and immediately verifies a full round-trip by
// decoding the resulting grid with the same password. The comparison is
// exact. If verification fails for any reason, an error is returned and no
// grid is produced.
//
// Since decode(encode(x)) == x holds by construction, a mismatch here means
// a bug, not bad input; surfacing it before the grid is emitted keeps a
// corrupted grid off anyone's paper.
func EncodeVerified(text, password string, lineMax, totalMax int, r *rand.Rand) (*Grid, error) {
	g, err := Encode(text, password, lineMax, totalMax, r)
	if err != nil {
		return nil, err
	}

	decoded := Decode(g, password)
	if decoded != text {
		return nil, fmt.Errorf("round-trip mismatch: decoded %d runes, encoded %d", len([]rune(decoded)), len([]rune(text)))
	}
	return g, nil
}

// VerifyRoundTrip checks that encoding and then decoding text under the
// given password yields the exact same string. It returns nil on success.
//
// This is equivalent to calling EncodeVerified and discarding the grid.
func VerifyRoundTrip(text, password string, lineMax, totalMax int, r *rand.Rand) error {
	_, err := EncodeVerified(text, password, lineMax, totalMax, r)
	return err
}
