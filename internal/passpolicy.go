package internal

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// PassPolicy defines how the password is validated and how deterministic
// seed material is derived from it.
//   - If KDF == "argon2id" (default), deterministic seeds go through
//     Argon2id to slow down brute force of reproducible grids.
//   - If KDF == "none", the seed is a plain SHA-256 fold of the password.
type PassPolicy struct {
	KDF         string // "argon2id" (default) or "none"
	KDFMemMB    uint32 // memory in MB (e.g., 64)
	KDFTime     uint32 // iterations (e.g., 3)
	KDFParallel uint8  // parallelism (e.g., 1)
	AllowWeak   bool   // bypass length/coverage enforcement
}

// DefaultPassPolicy returns the recommended default. The parameters make
// each deterministic-seed derivation expensive enough to matter without
// stalling an interactive CLI.
func DefaultPassPolicy() PassPolicy {
	return PassPolicy{
		KDF:         "argon2id",
		KDFMemMB:    64,
		KDFTime:     3,
		KDFParallel: 1,
		AllowWeak:   false,
	}
}

// minPasswordRunes is the enforced minimum password length. Short passwords
// yield few anchors and trivially searchable grids.
const minPasswordRunes = 8

// ValidatePassword enforces that the password is usable for encoding.
//
// Always fatal, policy or not: a password with zero valid anchors cannot
// encode anything (ErrNoAnchorAvailable).
//
// Enforced unless policy.AllowWeak:
//   - at least minPasswordRunes runes,
//   - at least one anchor per direction, so every chunk branch can draw the
//     anchor it needs regardless of message content.
func ValidatePassword(password string, policy PassPolicy) error {
	anchors := ExtractAnchors(password)
	if anchors.Len() == 0 {
		return fmt.Errorf("password yields no valid anchors: %w", ErrNoAnchorAvailable)
	}
	if policy.AllowWeak {
		return nil
	}
	if utf8.RuneCountInString(password) < minPasswordRunes {
		return fmt.Errorf("password shorter than %d characters (use --allow-weak-password to bypass): %w", minPasswordRunes, ErrWeakPassword)
	}
	if anchors.Len() < 2 {
		return fmt.Errorf("password yields only %d anchor; texts containing anchor-like tokens would fail to encode (use --allow-weak-password to bypass): %w", anchors.Len(), ErrWeakPassword)
	}
	return nil
}

// DeterministicSeed derives a reproducible RNG seed from the password
// according to the policy KDF. Two encodes seeded this way with the same
// password and input produce identical grids.
func DeterministicSeed(password string, policy PassPolicy) (int64, error) {
	var sum [32]byte

	switch strings.ToLower(strings.TrimSpace(policy.KDF)) {
	case "", "argon2id":
		// Domain-separated salt so the same passphrase doesn't collide
		// across tools.
		salt := []byte("PaperCoder/v1/argon2id/domain-sep")
		mem := policy.KDFMemMB
		if mem == 0 {
			mem = 64
		}
		time := policy.KDFTime
		if time == 0 {
			time = 3
		}
		par := policy.KDFParallel
		if par == 0 {
			par = 1
		}
		derived := argon2.IDKey([]byte(password), salt, time, mem*1024, par, 32)
		sum = sha256.Sum256(derived)

	case "none":
		sum = sha256.Sum256([]byte(password))

	default:
		return 0, fmt.Errorf("unknown KDF %q (supported: argon2id, none)", policy.KDF)
	}

	// Mix 4x uint64 chunks via XOR into a single int64 seed.
	seed := int64(binary.BigEndian.Uint64(sum[0:8])) ^
		int64(binary.BigEndian.Uint64(sum[8:16])) ^
		int64(binary.BigEndian.Uint64(sum[16:24])) ^
		int64(binary.BigEndian.Uint64(sum[24:32]))
	return seed, nil
}
