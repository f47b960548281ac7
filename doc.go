// Package mazegrid is an in-memory toolkit for generating, measuring and
// dressing up rectangular mazes, from raw lattice primitives to finished
// dungeon floors.
//
// 🚀 What is mazegrid?
//
//	A small, deterministic maze-generation library that brings together:
//		• Core primitives: cells, fixed adjacency, symmetric passages
//		• A grid state machine: closed or open in, carved out, no double-carving
//		• Seven carvers: BinaryTree, AldousBroder, Backtracker, Division,
//		  Wilson, Kruskal and the loop-making Braid post-pass
//		• Measurement: BFS distance fields, shortest paths, longest paths
//		• Level assembly: entrance, stairs and dead-end features on one seed
//
// ✨ Why choose mazegrid?
//
//   - Reproducible - every random draw comes from an injected *rand.Rand
//   - Honest errors - sentinel values, errors.Is all the way down
//   - Pure structure - tiles are opaque markers, rendering stays outside
//   - Uniform contract - one Carver interface over every strategy
//
// Everything is organized under four subpackages:
//
//	grid/      - Cell and Grid lattice types, states and adjacency
//	carve/     - the carving strategies behind one dispatcher
//	distances/ - BFS fields, path reconstruction, longest path
//	levelgen/  - config-in, level-out floor assembly
//
// Quick ASCII example:
//
//	+---+---+---+
//	|       |   |
//	+   +   +   +
//	|   |       |
//	+---+---+---+
//
//	a carved 2x3 grid: six cells, five passages, one route between
//	any two cells.
//
//	go get github.com/daedalia/mazegrid
package mazegrid
