// PaperCoder — hide a short message inside a grid of 2-character tokens,
// keyed by a shared password.
//
// Scheme:
// - The password is split into overlapping 2-character windows; windows that
//   are unique, non-palindromic, and not mirrored elsewhere become "anchors".
//   The parity of an anchor's position assigns it a direction (before/after).
// - The message is split into 2-character tokens; each token is paired with
//   an anchor into a 2–3 token chunk so the anchor sits on the side its
//   direction dictates.
// - Chunks are spread over a fixed-capacity grid (dense fallback when tight)
//   and every unused slot is filled with decoy noise.
// - Decoding scans the grid for anchors and reads their neighbors; without
//   the password the grid is indistinguishable from noise. This is
//   steganography keyed by a shared secret, not encryption.
//
// Notes:
// - Odd-length messages get one throwaway character; a lone anchor at a row
//   boundary tells the decoder to trim it.
// - --deterministic derives the random seed from the password (Argon2id),
//   making output reproducible; the default seed is time-based.

package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"papercoder/internal"

	"golang.org/x/term"
)

var version = "dev"

func usage() {
	prog := filepath.Base(os.Args[0])

	// Headline
	fmt.Println(internal.Banner(version))
	fmt.Println()

	// Usage
	fmt.Println(internal.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Printf("  %s %s\n", prog, internal.Style("--encode TEXT --password PASS [options]", internal.Cyan))
	fmt.Printf("  %s %s\n", prog, internal.Style("--decode --password PASS ROW [ROW ...]", internal.Cyan))
	fmt.Println()

	// Flags
	fmt.Println(internal.Style("Flags:", internal.Bold, internal.Blue))
	fmt.Println(internal.Style("  --encode  --decode  --password|--prompt  --line-max  --total-max", internal.Cyan))
	fmt.Println(internal.Style("  --print  --qr  --seed  --deterministic  --allow-weak-password", internal.Cyan))
	fmt.Println(internal.Style("  --self-test  --no-color  --version", internal.Cyan))
	fmt.Println()

	// Examples
	fmt.Println(internal.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Printf("  %s --encode 'meet at noon' --password 'correct horse battery' --print\n", prog)
	fmt.Printf("  %s --decode --password 'correct horse battery' 'hiQxelZu' 'loP2aQxx'\n", prog)
	fmt.Printf("  %s --self-test\n", prog)
}

func main() {
	cfg, cfgErr := internal.LoadConfig("")

	encodeText := flag.String("encode", "", "Text message to hide in a token grid")
	decodeMode := flag.Bool("decode", false, "Decode from row strings passed as arguments")
	password := flag.String("password", "", "Shared password used to derive anchor tokens")
	prompt := flag.Bool("prompt", false, "Securely prompt for the password (no echo); overrides --password")
	mask := flag.Bool("mask", true, "With --prompt, show * while typing (use --mask=false to disable)")
	lineMax := flag.Int("line-max", cfg.LineMax, "Tokens per grid row")
	totalMax := flag.Int("total-max", cfg.TotalMax, "Total token slots in the grid")
	printGrid := flag.Bool("print", false, "Pretty print the token grid as an aligned table")
	qrFlag := flag.Bool("qr", false, "Render the encoded grid as a terminal QR code")
	seed := flag.Int64("seed", 0, "Explicit random seed (0 = time-based)")
	deterministic := flag.Bool("deterministic", false, "Derive the random seed from the password; output becomes reproducible")
	allowWeak := flag.Bool("allow-weak-password", false, "Bypass password strength enforcement")
	selfTest := flag.Bool("self-test", false, "Run built-in round-trip test sets")
	noColor := flag.Bool("no-color", false, "Disable colored output (TTY-safe)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	// Color enablement: default on for TTY unless --no-color or config
	internal.SetColorEnabled(!*noColor && !cfg.NoColor && term.IsTerminal(int(syscall.Stdout)))

	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using defaults\n", cfgErr)
	}

	// Self-test
	if *selfTest {
		pass := *password
		if strings.TrimSpace(pass) == "" {
			pass = "correct horse battery staple"
		}
		fmt.Println(internal.Style("== Self-test: round trips ==", internal.Bold))
		failed := internal.RunSelfTest(pass, 10, 80, []int{2, 7, 12, 24}, "Self-test (random texts)")
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	if (*encodeText == "" && !*decodeMode) || (*encodeText != "" && *decodeMode) {
		usage()
		os.Exit(2)
	}

	// Resolve password
	passStr := *password
	if *prompt {
		ps, err := internal.PromptForPassword(*mask, *encodeText != "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		passStr = ps
	}
	if passStr == "" {
		fmt.Fprintln(os.Stderr, "error: a password is required (--password or --prompt)")
		os.Exit(2)
	}

	if *decodeMode {
		rows := flag.Args()
		if len(rows) == 0 {
			fmt.Fprintln(os.Stderr, "error: --decode needs the grid rows as arguments (each row as one string)")
			os.Exit(2)
		}
		for i := range rows {
			rows[i] = internal.StripSpaces(rows[i])
		}
		g, err := internal.ParseRowStrings(rows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		fmt.Println(internal.Decode(g, passStr))
		return
	}

	// Encode
	policy := internal.DefaultPassPolicy()
	policy.AllowWeak = *allowWeak
	if err := internal.ValidatePassword(passStr, policy); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	rngSeed := *seed
	if *deterministic {
		s, err := internal.DeterministicSeed(passStr, policy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		rngSeed = s
	} else if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(rngSeed))

	g, err := internal.EncodeVerified(*encodeText, passStr, *lineMax, *totalMax, r)
	if err != nil {
		switch {
		case errors.Is(err, internal.ErrPlacementCapacityExceeded):
			fmt.Fprintf(os.Stderr, "error: %v (raise --total-max)\n", err)
		case errors.Is(err, internal.ErrNoAnchorAvailable):
			fmt.Fprintf(os.Stderr, "error: %v (use a longer, more varied password)\n", err)
		default:
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}

	if *printGrid {
		fmt.Println(internal.FormatGrid(g))
		fmt.Println()
	}
	// Row strings for copy/paste
	fmt.Println(strings.Join(g.RowStrings(), "\n"))

	if *qrFlag {
		art, err := internal.RenderQR(strings.Join(g.RowStrings(), "\n"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: QR rendering failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(art)
	}
}
