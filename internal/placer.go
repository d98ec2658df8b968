package internal

import (
	"math/rand"
)

// placementAttempts is the budget for the randomized spread pass before the
// deterministic tight-fit fallback takes over.
const placementAttempts = 100

// PlaceChunks places chunks, in order, into the grid's empty slots. Each
// chunk occupies contiguous slots within a single row and no two chunks
// overlap.
//
// The spread pass assigns the i-th of n chunks a preferred window
// [i*S/n, (i+1)*S/n) over the S flattened slots and searches it in random
// order, then widens to any free position after the previous chunk. The
// whole pass restarts on a fresh empty layout up to placementAttempts
// times; this buys a cosmetically even distribution that helps disguise
// chunk boundaries. When every attempt fails, a left-to-right tight fit
// guarantees placement whenever capacity allows, and only that failing
// returns ErrPlacementCapacityExceeded.
func PlaceChunks(g *Grid, chunks []Chunk, r *rand.Rand) error {
	if len(chunks) == 0 {
		return nil
	}

	for attempt := 0; attempt < placementAttempts; attempt++ {
		flat := g.flatten()
		if trySpread(flat, chunks, g.width, r) {
			g.writeBack(flat)
			return nil
		}
	}
	return tightFit(g, chunks)
}

// trySpread attempts one spread placement over the flattened slots,
// mutating flat on success. Returns false as soon as any chunk cannot be
// placed.
func trySpread(flat []string, chunks []Chunk, width int, r *rand.Rand) bool {
	total := len(flat)
	n := len(chunks)
	prevEnd := -1

	for i, chunk := range chunks {
		length := len(chunk)
		startBin := i * total / n
		endBin := (i + 1) * total / n

		lo := prevEnd + 1
		if startBin > lo {
			lo = startBin
		}
		pos, ok := findFit(flat, width, lo, endBin-length, length, r)
		if !ok {
			pos, ok = findFit(flat, width, prevEnd+1, total-length, length, r)
		}
		if !ok {
			return false
		}
		copy(flat[pos:pos+length], chunk)
		prevEnd = pos + length - 1
	}
	return true
}

// findFit searches positions [lo, hi] in random order for a start where the
// chunk fits without crossing a row boundary and all covered slots are
// empty.
func findFit(flat []string, width, lo, hi, length int, r *rand.Rand) (int, bool) {
	if hi < lo {
		return 0, false
	}
	positions := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		positions = append(positions, p)
	}
	r.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	for _, pos := range positions {
		if fits(flat, width, pos, length) {
			return pos, true
		}
	}
	return 0, false
}

// fits reports whether a run of the given length starting at pos stays
// inside one row and covers only empty slots.
func fits(flat []string, width, pos, length int) bool {
	if pos < 0 || pos+length > len(flat) {
		return false
	}
	if pos%width+length > width {
		return false
	}
	for k := 0; k < length; k++ {
		if flat[pos+k] != "" {
			return false
		}
	}
	return true
}

// tightFit scans slots left to right, placing each chunk at the first
// row-fitting empty run at or after the scan cursor. This is the
// deterministic fallback: correctness over stealth when capacity is tight.
func tightFit(g *Grid, chunks []Chunk) error {
	flat := g.flatten()
	total := len(flat)
	pos := 0

	for _, chunk := range chunks {
		length := len(chunk)
		placed := false
		for ; pos <= total-length; pos++ {
			if fits(flat, g.width, pos, length) {
				copy(flat[pos:pos+length], chunk)
				pos += length
				placed = true
				break
			}
		}
		if !placed {
			return ErrPlacementCapacityExceeded
		}
	}
	g.writeBack(flat)
	return nil
}
