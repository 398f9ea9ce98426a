package battle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/games/battle/sim"
)

// Terminal layout. One tile is two columns wide and one row high, so a
// pixel maps to a cell with x/8 and y/16.
const (
	fieldCols = sim.GridSize * 2
	fieldRows = sim.GridSize
	fieldX    = 1
	fieldY    = 1
	sidebarX  = fieldCols + 4

	MinWidth  = 80
	MinHeight = fieldRows + 2
)

var tankSprites = [4][2]string{
	sim.DirUp:    {"▐▲▲▌", "▐██▌"},
	sim.DirRight: {"███▶", "███▶"},
	sim.DirDown:  {"▐██▌", "▐▼▼▌"},
	sim.DirLeft:  {"◀███", "◀███"},
}

var (
	castleStanding  = [2]string{"╔╦╦╗", "╚██╝"}
	castleDestroyed = [2]string{"▖▗▘▝", "▚▞▚▞"}
	explosionFrames = []rune{'░', '▒', '▓'}
)

var bonusLetters = map[sim.BonusKind]rune{
	sim.BonusGrenade: 'G',
	sim.BonusHelmet:  'H',
	sim.BonusShovel:  'S',
	sim.BonusStar:    '*',
	sim.BonusTank:    'T',
	sim.BonusClock:   'C',
}

var enemyColors = [sim.EnemyKindCount]core.Color{
	sim.EnemyBasic: core.ColorGray,
	sim.EnemyFast:  core.ColorWhite,
	sim.EnemyPower: core.ColorBrightCyan,
	sim.EnemyArmor: core.ColorMagenta,
}

var playerColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorYellow,
	core.Player2: core.ColorGreen,
}

// Render draws the current screen of the session.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCenteredColored(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight), core.ColorRed)
		return
	}

	switch g.phase {
	case PhaseError:
		g.renderError(dst)
	case PhaseTally:
		g.renderTally(dst)
	case PhaseGameOver:
		g.renderGameOver(dst)
	default:
		g.renderPlaying(dst)
	}
}

func (g *Game) renderPlaying(dst *core.Screen) {
	dst.DrawBox(core.NewRect(fieldX-1, fieldY-1, fieldCols+2, fieldRows+2), core.ColorGray)
	f := fieldPainter{dst: dst, blink: g.ticks/8%2 == 0}
	f.world(g.world)
	g.renderSidebar(dst)

	if g.paused {
		dst.DrawTextColored(fieldX+fieldCols/2-3, fieldY+fieldRows/2, "PAUSED", core.ColorBrightYellow)
	}
}

// fieldPainter draws world objects clipped to the play field.
type fieldPainter struct {
	dst   *core.Screen
	blink bool
}

func (f fieldPainter) set(col, row int, r rune, c core.Color) {
	if col < 0 || col >= fieldCols || row < 0 || row >= fieldRows {
		return
	}
	f.dst.SetColored(fieldX+col, fieldY+row, r, c)
}

// sprite draws rows of glyphs with the top-left corner at pixel p.
// Spaces are transparent.
func (f fieldPainter) sprite(p core.Point, rows []string, c core.Color) {
	col, row := p.X/8, p.Y/16
	for dy, line := range rows {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				f.set(col+dx, row+dy, r, c)
			}
			dx++
		}
	}
}

func (f fieldPainter) tile(t sim.Tile, waterFrame int) {
	var r rune
	var c core.Color
	switch t.Kind {
	case sim.TileBrick:
		r, c = '▓', core.ColorRed
	case sim.TileSteel:
		r, c = '█', core.ColorWhite
	case sim.TileWater:
		r, c = '≈', core.ColorBlue
		if waterFrame == 1 {
			r = '∼'
		}
	case sim.TileIce:
		r, c = '░', core.ColorBrightCyan
	case sim.TileGrass:
		r, c = '♣', core.ColorGreen
	default:
		return
	}
	f.set(t.Col*2, t.Row, r, c)
	f.set(t.Col*2+1, t.Row, r, c)
}

func (f fieldPainter) world(w *sim.World) {
	if w == nil {
		return
	}
	tiles := w.Tiles().Tiles()
	for _, t := range tiles {
		if t.Kind != sim.TileGrass {
			f.tile(t, w.WaterFrame())
		}
	}

	castle := w.Castle()
	if castle.State == sim.CastleDestroyed {
		f.sprite(castle.Rect.TopLeft(), castleDestroyed[:], core.ColorGray)
	} else {
		f.sprite(castle.Rect.TopLeft(), castleStanding[:], core.ColorBrightWhite)
	}

	for _, b := range w.Bonuses() {
		if !b.Active || !b.Visible {
			continue
		}
		letter := string(bonusLetters[b.Kind])
		f.sprite(b.Rect.TopLeft(), []string{"▛▀▀▜", "▙" + letter + " ▟"}, core.ColorBrightMagenta)
	}

	for _, p := range w.Players() {
		f.tank(&p.Tank, f.playerColor(p))
	}
	for _, e := range w.Enemies() {
		c := enemyColors[e.Kind]
		if e.Carrier && f.blink {
			c = core.ColorBrightRed
		}
		f.tank(&e.Tank, c)
	}

	for _, b := range w.Bullets() {
		if b.State == sim.BulletActive {
			f.sprite(b.Rect.TopLeft(), []string{"•"}, core.ColorBrightWhite)
		}
	}

	for _, t := range tiles {
		if t.Kind == sim.TileGrass {
			f.tile(t, 0)
		}
	}

	for _, e := range w.Explosions() {
		if !e.Active {
			continue
		}
		r := explosionFrames[min(e.Frame, len(explosionFrames)-1)]
		line := strings.Repeat(string(r), 4)
		f.sprite(e.Pos, []string{line, line}, core.ColorOrange)
	}

	for _, l := range w.Labels() {
		if l.Active {
			f.sprite(l.Pos, []string{l.Text}, core.ColorBrightWhite)
		}
	}

	if w.GameOver() {
		row := w.GameOverY() / 16
		if row >= 0 && row < fieldRows {
			f.dst.DrawTextColored(fieldX+fieldCols/2-4, fieldY+row, "GAME OVER", core.ColorBrightRed)
		}
	}
}

func (f fieldPainter) playerColor(p *sim.Player) core.Color {
	switch {
	case p.Tank.Shielded && f.blink:
		return core.ColorBrightCyan
	case p.Tank.Paralysed && f.blink:
		return core.ColorGray
	}
	return playerColors[p.Seat]
}

func (f fieldPainter) tank(t *sim.TankState, c core.Color) {
	switch t.Status {
	case sim.StatusAlive:
		rows := tankSprites[t.Dir]
		f.sprite(t.Rect.TopLeft(), rows[:], c)
	case sim.StatusSpawning:
		star := "✦"
		if f.blink {
			star = "✧"
		}
		f.sprite(t.Rect.TopLeft(), []string{" " + star + star, " " + star + star}, core.ColorBrightWhite)
	}
}

func (g *Game) renderSidebar(dst *core.Screen) {
	x, y := sidebarX, fieldY
	w := g.world

	dst.DrawTextColored(x, y, "HI-SCORE", core.ColorRed)
	dst.DrawText(x, y+1, fmt.Sprintf("%8d", g.hiScore))
	y += 3

	for _, p := range w.Players() {
		c := playerColors[p.Seat]
		dst.DrawTextColored(x, y, fmt.Sprintf("%dP SCORE", p.Seat), c)
		dst.DrawText(x, y+1, fmt.Sprintf("%8d", p.Score))
		lives := fmt.Sprintf("%dP ▲ %d", p.Seat, p.Lives)
		if p.Out {
			lives = fmt.Sprintf("%dP OUT", p.Seat)
		}
		dst.DrawTextColored(x, y+2, lives, c)
		y += 4
	}

	dst.DrawTextColored(x, y, "ENEMIES", core.ColorGray)
	left := w.EnemiesLeft()
	for row := 0; left > 0; row++ {
		n := min(left, 5)
		dst.DrawTextColored(x, y+1+row, strings.Repeat("◆", n), core.ColorGray)
		left -= n
	}
	y += 6

	dst.DrawTextColored(x, y, fmt.Sprintf("STAGE %d", g.stage), core.ColorBrightWhite)
	if w.Frozen() {
		dst.DrawTextColored(x, y+1, "FROZEN", core.ColorBrightCyan)
	}

	dst.DrawTextColored(x, fieldY+fieldRows-1, "P pause  Q quit", core.ColorGray)
}

func (g *Game) renderTally(dst *core.Screen) {
	t := g.tally
	dst.DrawTextCenteredColored(1, fmt.Sprintf("HI-SCORE %d", t.HiScore), core.ColorRed)
	dst.DrawTextCenteredColored(3, fmt.Sprintf("STAGE %d", t.Stage), core.ColorBrightWhite)

	shown := g.TallyRevealed()
	for i, row := range t.Rows {
		x := 8 + i*38
		c := playerColors[row.Seat]
		dst.DrawTextColored(x, 5, fmt.Sprintf("%d-PLAYER", row.Seat), c)
		dst.DrawTextColored(x, 6, fmt.Sprintf("%8d", row.Score), c)

		total := 0
		for k := sim.EnemyKind(0); k < sim.EnemyKindCount; k++ {
			n := row.Kills[k]
			total += n
			if int(k) >= shown {
				continue
			}
			line := fmt.Sprintf("%4d PTS %2d ◆ %s", n*k.Points(), n, k)
			dst.DrawTextColored(x, 8+2*int(k), line, enemyColors[k])
		}
		if shown > int(sim.EnemyKindCount) {
			dst.DrawText(x, 8+2*int(sim.EnemyKindCount), strings.Repeat("─", 16))
			dst.DrawText(x, 9+2*int(sim.EnemyKindCount), fmt.Sprintf("TOTAL %2d", total))
			if row.Bonus > 0 {
				dst.DrawText(x, 10+2*int(sim.EnemyKindCount), fmt.Sprintf("BONUS %2d", row.Bonus))
			}
		}
	}

	dst.DrawTextCenteredColored(dst.Height()-2, "Enter to continue", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	top := (dst.Height() - 2*BrickHeight - 1) / 2
	for i, word := range []string{"GAME", "OVER"} {
		for r, line := range BrickText(word, '▓') {
			dst.DrawTextCenteredColored(top+i*(BrickHeight+1)+r, line, core.ColorRed)
		}
	}
	dst.DrawTextCenteredColored(dst.Height()-3, fmt.Sprintf("SCORE %d   HI-SCORE %d", g.State().Score, g.hiScore), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(dst.Height()-2, "R restart   B menu   Q quit", core.ColorGray)
}

func (g *Game) renderError(dst *core.Screen) {
	dst.DrawTextCenteredColored(dst.Height()/2-2, "Cannot start the battle", core.ColorRed)
	msg := "unknown error"
	if g.err != nil {
		msg = g.err.Error()
	}
	width := dst.Width() - 4
	for i := 0; len(msg) > 0 && i < 4; i++ {
		n := min(len(msg), width)
		dst.DrawTextCentered(dst.Height()/2+i, msg[:n])
		msg = msg[n:]
	}
	dst.DrawTextCenteredColored(dst.Height()-2, "R retry   Q quit", core.ColorGray)
}
