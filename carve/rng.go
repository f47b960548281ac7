// SPDX-License-Identifier: MIT
// Package: mazegrid/carve
//
// rng.go — randomness helpers shared by the carvers.
//
// Policy: helpers receive the caller's *rand.Rand and never touch the
// global source. Determinism across runs is part of the package contract,
// not an optional extra.

package carve

import "math/rand"

// coin reports a fair yes/no draw from rng.
func coin(rng *rand.Rand) bool {
	return rng.Intn(2) == 0
}

// shuffleEdges permutes edges uniformly in place (Fisher-Yates).
//
// Complexity: O(len(edges)), zero allocations.
func shuffleEdges(edges []edge, rng *rand.Rand) {
	var j int
	for i := len(edges) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}
