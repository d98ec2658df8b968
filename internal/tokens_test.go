package internal

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	assert.Equal(t, "ba", Reverse("ab"))
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "x", Reverse("x"))
	assert.Equal(t, "ßä", Reverse("äß"))
}

func TestSplitMessageEven(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tokens, padded := SplitMessage("meet", r)
	assert.False(t, padded)
	assert.Equal(t, []string{"me", "et"}, tokens)
}

func TestSplitMessageOdd(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tokens, padded := SplitMessage("abc", r)
	assert.True(t, padded)
	require.Len(t, tokens, 2)
	assert.Equal(t, "ab", tokens[0])
	assert.Equal(t, "c", tokens[1][:1])
	assert.Contains(t, charset, tokens[1][1:])
}

func TestSplitMessageEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	tokens, padded := SplitMessage("", r)
	assert.False(t, padded)
	assert.Empty(t, tokens)
}

func TestNoiseTokenExclusions(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	anchors := ExtractAnchors("hello")
	message := TokenSet([]string{"hi", "ab"})

	for i := 0; i < 500; i++ {
		tok := NoiseToken(r, anchors, message)
		require.Len(t, tok, 2)
		assert.False(t, anchors.Contains(tok), "noise %q collides with an anchor", tok)
		assert.False(t, anchors.Contains(Reverse(tok)), "noise %q mirrors an anchor", tok)
		_, inMessage := message[tok]
		assert.False(t, inMessage, "noise %q collides with a message token", tok)
		for _, c := range tok {
			assert.True(t, strings.ContainsRune(charset, c))
		}
	}
}
