// Package navgrid walks a single unit across a rectangular terrain grid from
// its start marker to its target marker.
//
// 🚀 What is navgrid?
//
//	A small, deterministic route finder for game and simulation maps:
//		• Grid model: terrain codes → Open, Blocked, Start, Target cells
//		• Search: greedy depth-first walk with backtracking and fixed tie-breaks
//		• Analysis: walkable regions and a breadth-first reference path
//		• Maps: JSON world layers, optionally lz4-compressed, plus generators
//		• Output: glyph text, PNG images and an interactive terminal view
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/ — Grid, Cell, Coord, terrain codes, regions, ShortestPath
//	route/     — Find with hooks and step limits; tie-break rules
//	tilemap/   — load/save map documents and build a populated Grid
//	mapgen/    — seeded random and maze map generators
//	render/    — text glyphs, PNG rendering, tcell screen viewer
//	cmd/navgrid — command-line driver
//
// Quick ASCII example (@ start and route, 8 blocked, * target):
//
//	@ @ @
//	8 8 @
//	- - *
//
//	go install github.com/katalvlaran/navgrid/cmd/navgrid@latest
package navgrid
