// SPDX-License-Identifier: MIT
// Package: navgrid/mapgen
//
// Package mapgen generates deterministic terrain maps in the flat, row-major
// terrain-code format consumed by gridgraph.(*Grid).InsertNodes.
//
// Generators:
//   • Random(cfg) — independent Bernoulli obstacles with probability Density.
//   • Maze(cfg)   — randomized depth-first "perfect" maze carved on even
//                   coordinates; Density is reused as the braiding ratio
//                   (fraction of remaining inner walls knocked out).
//
// Determinism:
//   • Same Config (including Seed) ⇒ identical Terrain on every platform.
//   • Seed==0 selects a fixed default seed; no time-based sources are used.
//
// Errors (sentinels; use errors.Is):
//   • ErrInvalidSize    — Rows or Cols < 1, or fewer than two cells.
//   • ErrInvalidDensity — Density outside [0,1].
//   • ErrSameCell       — Start and Target coincide.
//   • gridgraph.ErrOutOfBounds — Start or Target outside the grid.
package mapgen
