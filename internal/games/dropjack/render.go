package dropjack

import (
	"fmt"
	"strings"

	platformcore "github.com/sdeming/dropjack-sub000/internal/core"
	"github.com/sdeming/dropjack-sub000/internal/games/dropjack/core"
)

// Layout in terminal cells.
const (
	cellW      = 4
	panelW     = 22
	panelGap   = 2
	headerRows = 2
)

var controlsHelp = []string{
	"←/→  move",
	"↓    soft drop",
	"spc  hard drop",
	"p    pause",
}

// Render draws the current session into dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	snap := g.session.Snapshot()

	boardW := snap.Width*cellW + 2
	boardH := snap.Height + 2
	totalW := boardW + panelGap + panelW
	totalH := boardH + headerRows

	screen := platformcore.NewRect(0, 0, dst.Width(), dst.Height())
	layout := screen.Centered(totalW, totalH)
	if !screen.Fits(layout) {
		renderTooSmall(dst, totalW, totalH)
		return
	}
	ox, oy := layout.X, layout.Y

	renderHeader(dst, ox, oy, totalW, snap)
	board := platformcore.NewRect(ox, oy+headerRows, boardW, boardH)
	renderBoard(dst, board, snap)
	renderPanel(dst, board.Right()+panelGap, board.Y, snap)

	switch snap.State {
	case core.StateStart:
		renderStart(dst, snap)
	case core.StatePaused:
		renderOverlay(dst, platformcore.ColorBrightYellow,
			"PAUSED",
			"",
			"p / esc  resume",
			"y        forfeit game",
		)
	case core.StateGameOver:
		renderOverlay(dst, platformcore.ColorBrightRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score  %d", snap.Score),
			"",
			"Initials  "+initialsField(snap.Initials),
			"",
			"type letters, enter to save",
		)
	case core.StateQuitConfirm:
		renderOverlay(dst, platformcore.ColorBrightYellow,
			"Quit DropJack?",
			"",
			"y  yes      n  no",
		)
	}
}

func renderTooSmall(dst *platformcore.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCenteredWithColor(y-1, "Terminal too small", platformcore.ColorBrightRed)
	dst.DrawTextCenteredWithColor(y, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), platformcore.ColorGray)
}

func renderHeader(dst *platformcore.Screen, x, y, w int, snap core.Snapshot) {
	dst.DrawTextWithColor(x, y, " DropJack ", platformcore.ColorBrightCyan)
	mode := "Mode: " + snap.Difficulty.String()
	dst.DrawTextWithColor(x+w-platformcore.TextWidth(mode)-1, y, mode, platformcore.ColorGray)
	dst.DrawHLine(x, y+1, w, '─', platformcore.ColorGray)
}

func renderBoard(dst *platformcore.Screen, r platformcore.Rect, snap core.Snapshot) {
	dst.DrawBox(r, platformcore.ColorGray)
	inner := r.Inset(1)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			sx, sy := inner.X+x*cellW, inner.Y+y
			cell := snap.Cell(x, y)
			if !cell.Filled {
				dst.SetWithColor(sx+2, sy, '·', platformcore.ColorGray)
				continue
			}
			color := cardColor(cell.Card)
			if cell.Marked {
				color = platformcore.ColorBrightYellow
			}
			dst.DrawTextWithColor(sx, sy, cardLabel(cell.Card), color)
		}
	}

	// Trails behind cards that fell this tick; cards that came to rest on a
	// still stack get a brighter trail.
	for _, m := range snap.Motions {
		color := platformcore.ColorGray
		if m.Settled {
			color = platformcore.ColorCyan
		}
		for y := m.FromY; y < m.ToY; y++ {
			if snap.Cell(m.X, y).Filled {
				continue
			}
			dst.SetWithColor(inner.X+m.X*cellW+2, inner.Y+y, '╎', color)
		}
	}

	for _, p := range snap.InFlight {
		drawPiece(dst, inner, p, platformcore.ColorCyan)
	}
	if snap.Active != nil {
		drawPiece(dst, inner, *snap.Active, cardColor(snap.Active.Card))
		if !snap.Active.AtTarget() {
			arrow := '›'
			if snap.Active.Target.X < snap.Active.Pos.X {
				arrow = '‹'
			}
			ax := inner.X + snap.Active.Target.X*cellW + 2
			dst.SetWithColor(ax, inner.Y+snap.Active.Pos.Y, arrow, platformcore.ColorGray)
		}
	}
}

func drawPiece(dst *platformcore.Screen, inner platformcore.Rect, p core.Piece, color platformcore.Color) {
	x, y := inner.X+p.Pos.X*cellW, inner.Y+p.Pos.Y
	dst.DrawTextWithColor(x, y, cardLabel(p.Card), color)
}

func renderPanel(dst *platformcore.Screen, x, y int, snap core.Snapshot) {
	line := func(text string, c platformcore.Color) {
		dst.DrawTextWithColor(x, y, text, c)
		y++
	}

	line(fmt.Sprintf("Score  %d", snap.Score), platformcore.ColorBrightWhite)
	line(fmt.Sprintf("Speed  %.2fs", snap.FallInterval.Seconds()), platformcore.ColorWhite)
	if snap.Chain > 0 {
		line(fmt.Sprintf("Chain  x%d", snap.Chain), platformcore.ColorBrightYellow)
	} else {
		line("", platformcore.ColorDefault)
	}
	y++

	line("Next", platformcore.ColorGray)
	next := platformcore.NewRect(x, y, 6, 3)
	dst.DrawBox(next, platformcore.ColorGray)
	dst.DrawTextWithColor(x+1, y+1, cardLabel(snap.Next), cardColor(snap.Next))
	y += next.H + 1

	line("Goal: make 21", platformcore.ColorGray)
	if snap.Difficulty.RequiresSameSuit() {
		line("      same suit", platformcore.ColorGray)
	} else {
		line("      any suits", platformcore.ColorGray)
	}
	y++
	for _, h := range controlsHelp {
		line(h, platformcore.ColorGray)
	}
}

func renderStart(dst *platformcore.Screen, snap core.Snapshot) {
	lines := []string{
		"D R O P J A C K",
		"",
		"Stack cards into runs that total 21",
		"",
		difficultySelector(snap.Difficulty),
		"",
		"enter  start      q  quit",
	}
	room := dst.Height() - len(lines) - 4
	if len(snap.HighScores) > 0 && room > 0 {
		lines = append(lines, "", "High Scores")
		for i, hs := range snap.HighScores[:min(room, len(snap.HighScores))] {
			lines = append(lines, fmt.Sprintf("%2d. %-3s %7d  %s", i+1, hs.Initials, hs.Score, hs.Difficulty))
		}
	}
	renderOverlay(dst, platformcore.ColorBrightCyan, lines...)
}

func difficultySelector(d core.Difficulty) string {
	if d == core.Hard {
		return "  Easy   [ Hard ]"
	}
	return "[ Easy ]   Hard  "
}

// renderOverlay draws a centered framed box. The first line is the title.
func renderOverlay(dst *platformcore.Screen, titleColor platformcore.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, platformcore.TextWidth(l))
	}
	screen := platformcore.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(w+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, titleColor)
	for i, l := range lines {
		color := platformcore.ColorWhite
		if i == 0 {
			color = titleColor
		}
		x := box.X + (box.W-platformcore.TextWidth(l))/2
		dst.DrawTextWithColor(x, box.Y+1+i, l, color)
	}
}

// cardLabel renders a card in a cell-wide field, rank right-aligned.
func cardLabel(c core.Card) string {
	if c.Rank == 0 {
		return strings.Repeat(" ", cellW)
	}
	s := c.String()
	return strings.Repeat(" ", 3-platformcore.TextWidth(s)) + s + " "
}

func cardColor(c core.Card) platformcore.Color {
	if c.Suit.IsRed() {
		return platformcore.ColorBrightRed
	}
	return platformcore.ColorBrightWhite
}

func initialsField(initials string) string {
	return initials + strings.Repeat("_", core.MaxInitials-len(initials))
}
