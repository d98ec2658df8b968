package internal

import (
	"strings"

	"rsc.io/qr"
)

// RenderQR renders text as a terminal QR code using half-block glyphs, two
// module rows per text line, with a two-module quiet zone. Light modules
// are drawn as filled blocks so the code reads correctly on dark
// terminals.
func RenderQR(text string) (string, error) {
	code, err := qr.Encode(text, qr.L)
	if err != nil {
		return "", err
	}

	const quiet = 2
	var b strings.Builder
	glyphs := [4]string{"█", "▀", "▄", " "}
	for y := -quiet; y < code.Size+quiet; y += 2 {
		for x := -quiet; x < code.Size+quiet; x++ {
			n := 0
			if code.Black(x, y) {
				n |= 2
			}
			if code.Black(x, y+1) {
				n |= 1
			}
			b.WriteString(glyphs[n])
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
