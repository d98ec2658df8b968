package internal

import (
	"math/rand"
	"strings"
)

// charset matches ASCII letters (lowercase then uppercase) followed by
// digits; padding runes and noise tokens are drawn from it.
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// SplitMessage splits text into non-overlapping 2-rune message tokens,
// left to right. When text has odd rune length, one random alphanumeric
// rune is appended first and padded=true is returned; the encoder must then
// plant a padding marker so the decoder can trim the synthetic rune.
func SplitMessage(text string, r *rand.Rand) (tokens []string, padded bool) {
	runes := []rune(text)
	if len(runes)%2 != 0 {
		runes = append(runes, rune(charset[r.Intn(len(charset))]))
		padded = true
	}
	tokens = make([]string, 0, len(runes)/2)
	for i := 0; i+1 < len(runes); i += 2 {
		tokens = append(tokens, string(runes[i:i+2]))
	}
	return tokens, padded
}

// TokenSet builds a membership set from a token slice.
func TokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// NoiseToken generates a 2-character decoy from letters+digits. Candidates
// are rejected until the token is neither an anchor, nor the reversal of an
// anchor, nor any message token. Reversed message tokens are deliberately
// not rejected; changing that would change the observable noise
// distribution without affecting decode correctness.
func NoiseToken(r *rand.Rand, anchors *AnchorSet, message map[string]struct{}) string {
	var b strings.Builder
	for {
		b.Reset()
		b.WriteByte(charset[r.Intn(len(charset))])
		b.WriteByte(charset[r.Intn(len(charset))])
		tok := b.String()
		if anchors.Contains(tok) {
			continue
		}
		if anchors.Contains(Reverse(tok)) {
			continue
		}
		if _, ok := message[tok]; ok {
			continue
		}
		return tok
	}
}
