package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRespectsColorToggle(t *testing.T) {
	defer SetColorEnabled(ColorEnabled())

	SetColorEnabled(false)
	assert.Equal(t, "hello", Style("hello", Bold, Blue))

	SetColorEnabled(true)
	styled := Style("hello", Bold)
	assert.True(t, strings.HasPrefix(styled, Bold))
	assert.True(t, strings.HasSuffix(styled, Reset))
}

func TestFormatGrid(t *testing.T) {
	g, err := NewGrid(3, 5)
	require.NoError(t, err)
	g.rows[0][0], g.rows[0][1], g.rows[0][2] = "ab", " c", "de"
	g.rows[1][0], g.rows[1][1] = "fg", "hi"

	out := FormatGrid(g)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ab | (spc)c | de", lines[0])
	assert.Equal(t, "fg | hi    ", lines[1])
}

func TestStripSpaces(t *testing.T) {
	assert.Equal(t, "abcd", StripSpaces("ab cd"))
	assert.Equal(t, "abcd", StripSpaces(" a b\tc d\n"))
	assert.Equal(t, "", StripSpaces("   "))
}

func TestRenderQR(t *testing.T) {
	art, err := RenderQR("abcd\nefgh")
	require.NoError(t, err)
	assert.NotEmpty(t, art)
	// Every line spans the code plus the quiet zone on both sides.
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}
