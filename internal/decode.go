package internal

import "strings"

// Decode scans a filled grid and reconstructs the hidden text using only
// the password.
//
// Rows are scanned top to bottom, slots left to right. Every slot holding a
// valid anchor is asked for its neighbor on the side its direction
// dictates, within the same row:
//   - neighbor missing (anchor at the row boundary): this is the padding
//     marker, so the final character is trimmed once the scan completes;
//   - neighbor reversed equals the anchor: disambiguation sentinel, skipped;
//   - otherwise the neighbor is the next piece of the message.
//
// Decoding never fails: malformed grids degrade to omitted or extra
// characters rather than errors. Callers wanting validation must reject
// odd-length rows at parse time (ParseRowStrings does).
func Decode(g *Grid, password string) string {
	anchors := ExtractAnchors(password)
	trimLast := false
	var out []string

	for _, row := range g.rows {
		for i, tok := range row {
			d, ok := anchors.Direction(tok)
			if !ok {
				continue
			}
			var candidate string
			if d == Before {
				if i == 0 {
					trimLast = true
					continue
				}
				candidate = row[i-1]
			} else {
				if i+1 >= len(row) {
					trimLast = true
					continue
				}
				candidate = row[i+1]
			}
			if Reverse(candidate) != tok {
				out = append(out, candidate)
			}
		}
	}

	res := strings.Join(out, "")
	if trimLast {
		runes := []rune(res)
		if len(runes) > 0 {
			res = string(runes[:len(runes)-1])
		}
	}
	return res
}
