package internal

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"hi",
		"abc",
		"meet at noon",
		"The quick brown fox jumps over the lazy dog",
		"odd length message!",
	}
	passwords := []string{
		"hello",
		"correct horse battery staple",
		"abcdefgh",
	}

	for _, password := range passwords {
		for _, text := range texts {
			for seed := int64(1); seed <= 5; seed++ {
				name := fmt.Sprintf("%s/%d runes/seed %d", password, len(text), seed)
				t.Run(name, func(t *testing.T) {
					r := rand.New(rand.NewSource(seed))
					g, err := Encode(text, password, 8, 120, r)
					require.NoError(t, err)
					assert.Equal(t, text, Decode(g, password))
				})
			}
		}
	}
}

// The concrete scenario pinned by the scheme: password "hello" yields
// anchors he/el/lo, text "hi" becomes one 2-token chunk, the remaining six
// slots are noise, and decoding the 2-row grid returns exactly "hi".
func TestRoundTripConcreteScenario(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	g, err := Encode("hi", "hello", 4, 8, r)
	require.NoError(t, err)

	require.Equal(t, 2, g.NumRows())
	require.Equal(t, 8, g.Capacity())

	anchors := ExtractAnchors("hello")
	flat := g.flatten()
	hiAt := -1
	anchorCount := 0
	for i, tok := range flat {
		assert.NotEqual(t, "", tok, "finished grid has an empty slot")
		if tok == "hi" {
			hiAt = i
		}
		if anchors.Contains(tok) {
			anchorCount++
		}
	}
	require.GreaterOrEqual(t, hiAt, 0, "message token missing from grid")
	require.Equal(t, 1, anchorCount)

	// The governing anchor sits adjacent to "hi" on the side matching its
	// direction.
	adjacentAnchor := false
	if hiAt > 0 {
		if d, ok := anchors.Direction(flat[hiAt-1]); ok && d == After {
			adjacentAnchor = true
		}
	}
	if hiAt+1 < len(flat) {
		if d, ok := anchors.Direction(flat[hiAt+1]); ok && d == Before {
			adjacentAnchor = true
		}
	}
	assert.True(t, adjacentAnchor)

	assert.Equal(t, "hi", Decode(g, "hello"))
}

func TestRoundTripThroughSerialization(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		text := "paper beats rock"
		g, err := Encode(text, "correct horse battery staple", 6, 60, r)
		require.NoError(t, err)

		parsed, err := ParseRowStrings(g.RowStrings())
		require.NoError(t, err)
		assert.Equal(t, text, Decode(parsed, "correct horse battery staple"))
	}
}

func TestRoundTripOddLengthTrimsPad(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		g, err := Encode("abc", "hello", 5, 20, r)
		require.NoError(t, err)
		assert.Equal(t, "abc", Decode(g, "hello"))
	}
}

func TestEncodeNoAnchors(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	_, err := Encode("hi", "aaaa", 4, 20, r)
	assert.ErrorIs(t, err, ErrNoAnchorAvailable)
}

func TestEncodeCapacityExceeded(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	// Two 2-token chunks need at least 4 slots.
	_, err := Encode("hihi", "hello", 4, 3, r)
	assert.ErrorIs(t, err, ErrPlacementCapacityExceeded)
}

func TestEncodeInvalidWidth(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	_, err := Encode("hi", "hello", 0, 20, r)
	assert.Error(t, err)
}

func TestDecodeGridWithoutAnchors(t *testing.T) {
	g, err := ParseRowStrings([]string{"abcd", "wxyz"})
	require.NoError(t, err)
	assert.Equal(t, "", Decode(g, "hello"))

	// A password with no anchors decodes any grid to the empty string.
	assert.Equal(t, "", Decode(g, "aaaa"))
}

func TestEncodeDeterministicWithSeed(t *testing.T) {
	text := "same seed same grid"
	first := func(seed int64) []string {
		r := rand.New(rand.NewSource(seed))
		g, err := Encode(text, "correct horse battery staple", 8, 80, r)
		require.NoError(t, err)
		return g.RowStrings()
	}
	assert.Equal(t, first(99), first(99))
}

func TestEncodeVerifiedMatchesDecode(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	g, err := EncodeVerified("trust but verify", "correct horse battery staple", 8, 80, r)
	require.NoError(t, err)
	assert.Equal(t, "trust but verify", Decode(g, "correct horse battery staple"))

	require.NoError(t, VerifyRoundTrip("trust but verify", "correct horse battery staple", 8, 80, r))
}

func TestEncodeFillsEverySlot(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	g, err := Encode("hi", "hello", 5, 23, r)
	require.NoError(t, err)
	for _, line := range g.RowStrings() {
		assert.NotContains(t, line, " ")
	}
	for i := 0; i < g.NumRows(); i++ {
		for _, tok := range g.Row(i) {
			assert.Len(t, tok, 2)
		}
	}
}

func TestNoiseNeverDecodes(t *testing.T) {
	// A grid holding only noise for this password must decode to nothing,
	// even across many layouts.
	anchors := ExtractAnchors("hello")
	message := TokenSet(nil)
	for seed := int64(0); seed < 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		rows := make([]string, 3)
		for i := range rows {
			var b strings.Builder
			for j := 0; j < 5; j++ {
				b.WriteString(NoiseToken(r, anchors, message))
			}
			rows[i] = b.String()
		}
		g, err := ParseRowStrings(rows)
		require.NoError(t, err)
		assert.Equal(t, "", Decode(g, "hello"))
	}
}
