package internal

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"
)

// RunSelfTest generates randomized round-trip sets, prints each set (text,
// grid rows, result), and returns the number of failed sets.
//
// Parameters:
// - password: the password used for every set
// - lineMax:  row width for the generated grids
// - totalMax: total slot capacity for the generated grids
// - lengths:  rune lengths of the random texts to exercise (odd lengths
//   exercise the padding marker)
// - title:    heading to print once at the top (empty to skip)
func RunSelfTest(password string, lineMax, totalMax int, lengths []int, title string) int {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	failed := 0

	if title != "" {
		fmt.Println(Style(title, Bold, Blue))
	}

	for si, n := range lengths {
		// Random alphanumeric text of the requested rune length
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = charset[r.Intn(len(charset))]
		}
		text := string(buf)

		g, err := EncodeVerified(text, password, lineMax, totalMax, r)
		ok := err == nil
		if ok {
			ok = Decode(g, password) == text
		}

		if len(lengths) > 1 {
			fmt.Println(Style(fmt.Sprintf("Set %d:", si+1), Bold, Purple))
		}
		fmt.Printf("  Text:   %s\n", text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "self-test encode error: %v\n", err)
		} else {
			fmt.Printf("  Grid:   %s\n", strings.Join(g.RowStrings(), " "))
		}

		result := "PASSED"
		if !ok {
			result = "FAILED"
			failed++
		}
		fmt.Println(Style(fmt.Sprintf("  Result: %s — %d characters", result, n), Bold))
	}

	if len(lengths) > 1 {
		fmt.Printf("%s %d, %s %d\n",
			Style("Total sets:", Bold), len(lengths),
			Style("Failed:", Bold), failed)
	}

	return failed
}
