// SPDX-License-Identifier: MIT
// Package: mazegrid/carve
//
// errors.go — sentinel errors for the carve package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` with the carver's method
//     name as prefix (see wrapf).
//   • Carvers MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//   • State mismatches surface the grid package's ErrWrongState through
//     the wrap chain, so one errors.Is check covers every carver.

package carve

import (
	"errors"
	"fmt"
)

// ErrGridNil indicates that a carver was invoked with a nil grid.
// Classification: Validation error (presence).
// Usage: if errors.Is(err, ErrGridNil) { /* construct the grid first */ }.
var ErrGridNil = errors.New("carve: grid is nil")

// ErrNilRand indicates that a carver was invoked without a random source.
// Every carver draws exclusively from the injected *rand.Rand; there is no
// global fallback, so the source is mandatory.
// Classification: Validation error (RNG presence).
// Usage: if errors.Is(err, ErrNilRand) { /* supply rand.New(rand.NewSource(seed)) */ }.
var ErrNilRand = errors.New("carve: rng is required")

// ErrUnknownMethod indicates that the dispatcher received a Method string
// naming no registered carver.
// Classification: Validation error (selection).
// Usage: if errors.Is(err, ErrUnknownMethod) { /* check the Method constant */ }.
var ErrUnknownMethod = errors.New("carve: unknown method")

// ErrInvalidProbability indicates a probability outside the closed interval
// [0,1]. It covers the Braid field P when set directly, bypassing the
// panicking option constructor.
// Classification: Validation error (parameters).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("carve: probability out of range")

// wrapf prefixes err with the carver's method name, preserving the sentinel
// for errors.Is.
//
// Complexity: O(1), one allocation for the wrapping error.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return nil, wrapf(MethodWilson, ErrNilRand)
//    yields "wilson: carve: rng is required" while keeping the sentinel
//    intact for errors.Is.
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrGridNil            — presence checks first.
//    • ErrInvalidProbability — then parameter ranges (Braid.P).
//    • ErrNilRand            — then RNG presence.
//    • grid.ErrWrongState    — state compatibility last, via BeginCarve.
//
// 3) Testing guidance:
//    Table tests asserting errors.Is(err, ErrX); never match error strings.
//    Edge cases: nil grid, nil rng, P = -0.1 and 1.1, every carver against
//    both wrong initial states and against an already carved grid.
