package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/navgrid/gridgraph"
)

// Theme holds one screen style per cell role.
type Theme struct {
	Open    tcell.Style
	Path    tcell.Style
	Start   tcell.Style
	Blocked tcell.Style
	Target  tcell.Style
	Status  tcell.Style
}

// DefaultTheme returns the stock terminal colours.
func DefaultTheme() Theme {
	return Theme{
		Open:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Path:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Start:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		Blocked: tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
		Target:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		Status:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

// statusLine is drawn one row below the grid.
const statusLine = "q/Esc: quit"

// style picks the theme entry matching Glyph's choice for c.
func (th Theme) style(c gridgraph.Cell, withPath bool) tcell.Style {
	switch c.Kind {
	case gridgraph.Blocked:
		return th.Blocked
	case gridgraph.Start:
		return th.Start
	case gridgraph.Target:
		return th.Target
	}
	if withPath && c.OnPath {
		return th.Path
	}
	return th.Open
}

// Draw paints g onto s and shows it. Cell (x,y) lands on screen column 2*y,
// row x, matching the spacing of the text renderer. Cells beyond the screen
// are clipped by tcell.
func Draw(s tcell.Screen, g *gridgraph.Grid, withPath bool, th Theme) error {
	if err := check(g); err != nil {
		return err
	}
	s.Clear()
	xMax, _ := g.Dims()
	for _, c := range g.Cells() {
		s.SetContent(2*c.Y, c.X, Glyph(c, withPath), nil, th.style(c, withPath))
	}
	for i, r := range statusLine {
		s.SetContent(i, xMax+1, r, nil, th.Status)
	}
	s.Show()
	return nil
}

// Show draws g with its route on an initialised screen and blocks until the
// user quits with q, Esc or Ctrl-C, or the screen is finalised. Resize events
// redraw. The caller owns Init and Fini.
func Show(s tcell.Screen, g *gridgraph.Grid, th Theme) error {
	if err := Draw(s, g, true, th); err != nil {
		return err
	}
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
			if err := Draw(s, g, true, th); err != nil {
				return err
			}
		case *tcell.EventKey:
			if isQuit(ev) {
				return nil
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
