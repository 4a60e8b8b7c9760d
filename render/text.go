// Package render presents a gridgraph.Grid outside the search core: as a
// glyph stream, as a PNG image, or on a terminal screen.
//
// Glyphs:
//
//	-  open cell, not on the route
//	@  start, or an open cell on the route
//	8  blocked cell
//	*  target
//
// Rendering never mutates the grid.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/navgrid/gridgraph"
)

// Fixed glyphs, one per cell.
const (
	GlyphOpen    = '-'
	GlyphPath    = '@'
	GlyphBlocked = '8'
	GlyphTarget  = '*'
)

// ErrGridNil is returned when a nil grid is passed to a renderer.
var ErrGridNil = errors.New("render: grid is nil")

// Glyph returns the glyph for c. Path marks are shown only when withPath
// is set; the start always renders as GlyphPath.
func Glyph(c gridgraph.Cell, withPath bool) rune {
	switch c.Kind {
	case gridgraph.Blocked:
		return GlyphBlocked
	case gridgraph.Start:
		return GlyphPath
	case gridgraph.Target:
		return GlyphTarget
	}
	if withPath && c.OnPath {
		return GlyphPath
	}
	return GlyphOpen
}

// Map writes g without path marks, one row per line, glyphs separated by
// a single space.
func Map(w io.Writer, g *gridgraph.Grid) error {
	return writeGlyphs(w, g, false)
}

// Path writes g like Map but marks on-path cells with '@'.
func Path(w io.Writer, g *gridgraph.Grid) error {
	return writeGlyphs(w, g, true)
}

// FormatRoute joins route coordinates as "(0,0) -> (0,1) -> ...".
func FormatRoute(route []gridgraph.Coord) string {
	parts := make([]string, len(route))
	for i, c := range route {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

func writeGlyphs(w io.Writer, g *gridgraph.Grid, withPath bool) error {
	if err := check(g); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	xMax, yMax := g.Dims()
	cells := g.Cells()
	for x := 0; x < xMax; x++ {
		for y := 0; y < yMax; y++ {
			if y > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteRune(Glyph(cells[x*yMax+y], withPath))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// check rejects nil and unpopulated grids.
func check(g *gridgraph.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	if !g.Populated() {
		return fmt.Errorf("render: %w", gridgraph.ErrNotPopulated)
	}
	return nil
}
