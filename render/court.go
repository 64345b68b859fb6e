package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slime-arena/core"
	"github.com/lixenwraith/slime-arena/parameter"
)

// Glyphs
const (
	glyphBall  = '●'
	glyphSlime = '◉'
	glyphNet   = '┃'
	glyphFloor = '─'
	glyphWall  = '│'
	glyphShade = '·'
)

var (
	styleCourt = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleNet   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBall  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleShade = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleScore = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	slimeStyles = map[core.SlimeID]tcell.Style{
		core.SlimeRight: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		core.SlimeLeft:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}
)

// sideViewMaxY is the tallest height shown in the side view
const sideViewMaxY = float32(6)

// Viewport maps court coordinates onto a character rectangle
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether a cell lies inside the viewport
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Width && row >= v.Y && row < v.Y+v.Height
}

// column maps a court x onto a viewport column
func (v Viewport) column(x float32) int {
	u := (x + parameter.CourtHalfX) / (2 * parameter.CourtHalfX)
	return v.X + clampInt(int(u*float32(v.Width-1)+0.5), 0, v.Width-1)
}

// row maps a value in [lo, hi] onto a viewport row, hi at the top
func (v Viewport) row(val, lo, hi float32) int {
	u := (hi - val) / (hi - lo)
	return v.Y + clampInt(int(u*float32(v.Height-1)+0.5), 0, v.Height-1)
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Score tracks points across rallies for the HUD
type Score struct {
	Right, Left int
}

// Add credits the scoring side
func (s *Score) Add(side core.Side) {
	switch side {
	case core.SideRight:
		s.Right++
	case core.SideLeft:
		s.Left++
	}
}

// CourtRenderer draws a GameState as a top view, a side view and a status line
type CourtRenderer struct {
	screen tcell.Screen
}

// NewCourtRenderer draws onto screen
func NewCourtRenderer(screen tcell.Screen) *CourtRenderer {
	return &CourtRenderer{screen: screen}
}

// Layout splits the screen: HUD on row 0, top view, then side view
func (r *CourtRenderer) Layout() (top, side Viewport) {
	w, h := r.screen.Size()
	avail := h - 2
	if avail < 2 {
		avail = 2
	}
	topH := avail / 2
	top = Viewport{X: 0, Y: 1, Width: w, Height: topH}
	side = Viewport{X: 0, Y: 1 + topH + 1, Width: w, Height: avail - topH - 1}
	return top, side
}

// Draw renders one frame; it does not call Show
func (r *CourtRenderer) Draw(g *core.GameState, score Score, status string) {
	r.screen.Clear()
	top, side := r.Layout()

	r.drawHUD(g, score, status)
	r.drawTop(top, g)
	r.drawSide(side, g)
}

func (r *CourtRenderer) drawText(col, row int, style tcell.Style, text string) {
	w, _ := r.screen.Size()
	for _, ch := range text {
		if col >= w {
			return
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func (r *CourtRenderer) drawHUD(g *core.GameState, score Score, status string) {
	left, right := g.Slimes[core.SlimeLeft], g.Slimes[core.SlimeRight]
	line := fmt.Sprintf("L %d  touches %d │ R %d  touches %d │ lvl %d │ tick %d",
		score.Left, left.TouchesRemaining, score.Right, right.TouchesRemaining, g.Difficulty, g.Steps)
	r.drawText(0, 0, styleHUD, line)

	if g.PointScored {
		r.drawText(len([]rune(line))+2, 0, styleScore, fmt.Sprintf("POINT %s", g.ScoringSide))
	} else if status != "" {
		r.drawText(len([]rune(line))+2, 0, styleHUD, status)
	}
}

// drawTop is the bird's-eye view: x across, z down
func (r *CourtRenderer) drawTop(v Viewport, g *core.GameState) {
	if v.Height < 1 || v.Width < 3 {
		return
	}
	for row := v.Y; row < v.Y+v.Height; row++ {
		r.screen.SetContent(v.X, row, glyphWall, nil, styleCourt)
		r.screen.SetContent(v.X+v.Width-1, row, glyphWall, nil, styleCourt)
		r.screen.SetContent(v.column(parameter.NetPlaneX), row, glyphNet, nil, styleNet)
	}

	hz := parameter.CourtHalfZ
	// ball shadow
	r.screen.SetContent(v.column(g.BallPosition.X), v.row(g.BallPosition.Z, -hz, hz), glyphShade, nil, styleShade)
	for _, id := range core.SlimeIDs {
		s := g.Slimes[id]
		r.screen.SetContent(v.column(s.Position.X), v.row(s.Position.Z, -hz, hz), glyphSlime, nil, slimeStyles[id])
	}
	r.screen.SetContent(v.column(g.BallPosition.X), v.row(g.BallPosition.Z, -hz, hz), glyphBall, nil, styleBall)
}

// drawSide is the view along z: x across, height up
func (r *CourtRenderer) drawSide(v Viewport, g *core.GameState) {
	if v.Height < 1 || v.Width < 3 {
		return
	}
	floor := v.Y + v.Height - 1
	for col := v.X; col < v.X+v.Width; col++ {
		r.screen.SetContent(col, floor, glyphFloor, nil, styleCourt)
	}
	netCol := v.column(parameter.NetPlaneX)
	for row := v.row(parameter.NetHeight, 0, sideViewMaxY); row < floor; row++ {
		r.screen.SetContent(netCol, row, glyphNet, nil, styleNet)
	}

	for _, id := range core.SlimeIDs {
		s := g.Slimes[id]
		// crown of the dome
		crown := s.Position.Y + parameter.SlimeRadius
		r.screen.SetContent(v.column(s.Position.X), v.row(crown, 0, sideViewMaxY), glyphSlime, nil, slimeStyles[id])
	}
	r.screen.SetContent(v.column(g.BallPosition.X), v.row(g.BallPosition.Y, 0, sideViewMaxY), glyphBall, nil, styleBall)
}
