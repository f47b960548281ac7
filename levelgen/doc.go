// Package levelgen assembles the lower-level pieces into playable floors:
// carve a maze, optionally braid it, stretch the route between entrance
// and stairs, and drop features into the leftover dead ends.
//
// One Config in, one Level out, one seed behind everything. Generate
// never touches global randomness, so a stored seed replays its floor
// exactly.
package levelgen
