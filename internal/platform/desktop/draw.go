package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tank-arcade/internal/core"
	"github.com/vovakirdan/tank-arcade/internal/games/battle"
	"github.com/vovakirdan/tank-arcade/internal/games/battle/sim"
)

// Window layout in logical pixels: a 16px frame around the field and a
// sidebar on the right.
const (
	fieldOffset = 16
	sidebarW    = 128
	screenW     = fieldOffset*2 + sim.FieldSize + sidebarW
	screenH     = fieldOffset*2 + sim.FieldSize
	lineH       = 16
)

var (
	backdrop = color.RGBA{99, 99, 99, 255}
	fieldBg  = color.RGBA{0, 0, 0, 255}
	mortar   = color.RGBA{120, 40, 0, 255}
	grass    = color.RGBA{40, 140, 40, 200}
	face     = basicfont.Face7x13
)

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 255}
}

var tileColors = map[sim.TileKind]color.RGBA{
	sim.TileBrick: {170, 85, 0, 255},
	sim.TileSteel: {190, 190, 190, 255},
	sim.TileWater: {40, 60, 220, 255},
	sim.TileIce:   {200, 230, 255, 255},
}

var enemyColors = [sim.EnemyKindCount]core.Color{
	sim.EnemyBasic: core.ColorWhite,
	sim.EnemyFast:  core.ColorBrightWhite,
	sim.EnemyPower: core.ColorBrightCyan,
	sim.EnemyArmor: core.ColorBrightGreen,
}

var playerColors = map[core.PlayerID]core.Color{
	core.Player1: core.ColorYellow,
	core.Player2: core.ColorGreen,
}

func fill(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X+fieldOffset), float32(r.Y+fieldOffset), float32(r.W), float32(r.H), c, false)
}

// Draw renders the current session screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	switch a.game.Phase() {
	case battle.PhaseTally:
		a.drawTally(screen)
	case battle.PhaseGameOver:
		a.drawGameOver(screen)
	case battle.PhaseError:
		screen.Fill(fieldBg)
		text.Draw(screen, "Cannot start the battle", face, 24, 40, rgba(core.ColorBrightRed))
		if err := a.game.Err(); err != nil {
			text.Draw(screen, err.Error(), face, 24, 64, color.White)
		}
	default:
		a.drawField(screen)
		a.drawSidebar(screen)
	}
}

func (a *App) drawField(dst *ebiten.Image) {
	w := a.game.World()
	blink := a.game.Ticks()/8%2 == 0
	fill(dst, core.NewRect(0, 0, sim.FieldSize, sim.FieldSize), fieldBg)

	tiles := w.Tiles().Tiles()
	for _, t := range tiles {
		c, ok := tileColors[t.Kind]
		if !ok {
			continue
		}
		r := t.Rect()
		fill(dst, r, c)
		switch t.Kind {
		case sim.TileBrick:
			fill(dst, core.NewRect(r.X, r.Y+7, r.W, 2), mortar)
			fill(dst, core.NewRect(r.X+7, r.Y, 2, 7), mortar)
		case sim.TileWater:
			fill(dst, core.NewRect(r.X+2+4*w.WaterFrame(), r.Y+6, 8, 2), color.White)
		}
	}

	castle := w.Castle()
	if castle.State == sim.CastleDestroyed {
		fill(dst, castle.Rect, rgba(core.ColorGray))
	} else {
		fill(dst, core.NewRect(castle.Rect.X+4, castle.Rect.Y+4, castle.Rect.W-8, castle.Rect.H-8), rgba(core.ColorBrightWhite))
		fill(dst, core.NewRect(castle.Rect.X+12, castle.Rect.Y+8, 8, 16), fieldBg)
	}

	for _, b := range w.Bonuses() {
		if b.Active && b.Visible {
			fill(dst, b.Rect, rgba(core.ColorBrightMagenta))
			text.Draw(dst, b.Kind.String()[:1], face, b.Rect.X+fieldOffset+12, b.Rect.Y+fieldOffset+20, color.White)
		}
	}

	for _, p := range w.Players() {
		c := rgba(playerColors[p.Seat])
		if p.Tank.Shielded && blink {
			c = rgba(core.ColorBrightCyan)
		}
		drawTank(dst, &p.Tank, c, blink)
	}
	for _, e := range w.Enemies() {
		c := rgba(enemyColors[e.Kind])
		if e.Carrier && blink {
			c = rgba(core.ColorBrightRed)
		}
		drawTank(dst, &e.Tank, c, blink)
	}

	for _, b := range w.Bullets() {
		if b.State == sim.BulletActive {
			fill(dst, b.Rect, color.White)
		}
	}

	for _, t := range tiles {
		if t.Kind == sim.TileGrass {
			fill(dst, t.Rect(), grass)
		}
	}

	for _, e := range w.Explosions() {
		if e.Active {
			cx, cy := float32(e.Pos.X+16+fieldOffset), float32(e.Pos.Y+16+fieldOffset)
			vector.DrawFilledCircle(dst, cx, cy, float32(6+5*e.Frame), rgba(core.ColorOrange), true)
		}
	}
	for _, l := range w.Labels() {
		if l.Active {
			text.Draw(dst, l.Text, face, l.Pos.X+fieldOffset, l.Pos.Y+fieldOffset+12, color.White)
		}
	}

	if w.GameOver() {
		text.Draw(dst, "GAME OVER", face, fieldOffset+sim.FieldSize/2-32, fieldOffset+w.GameOverY(), rgba(core.ColorBrightRed))
	}
	if a.game.State().Paused {
		text.Draw(dst, "PAUSE", face, fieldOffset+sim.FieldSize/2-18, fieldOffset+sim.FieldSize/2, rgba(core.ColorBrightRed))
	}
}

// drawTank draws a body with a barrel pointing in the tank's direction.
func drawTank(dst *ebiten.Image, t *sim.TankState, c color.RGBA, blink bool) {
	r := t.Rect
	switch t.Status {
	case sim.StatusSpawning:
		if blink {
			fill(dst, core.NewRect(r.X+9, r.Y+9, 8, 8), color.White)
		}
		return
	case sim.StatusAlive:
	default:
		return
	}

	fill(dst, core.NewRect(r.X+3, r.Y+3, r.W-6, r.H-6), c)
	const barrel = 4
	cx, cy := r.X+r.W/2-barrel/2, r.Y+r.H/2-barrel/2
	switch t.Dir {
	case sim.DirUp:
		fill(dst, core.NewRect(cx, r.Y, barrel, r.H/2), c)
	case sim.DirDown:
		fill(dst, core.NewRect(cx, cy, barrel, r.H/2), c)
	case sim.DirLeft:
		fill(dst, core.NewRect(r.X, cy, r.W/2, barrel), c)
	case sim.DirRight:
		fill(dst, core.NewRect(cx, cy, r.W/2, barrel), c)
	}
}

func (a *App) drawSidebar(dst *ebiten.Image) {
	w := a.game.World()
	x := fieldOffset*2 + sim.FieldSize
	y := fieldOffset + lineH

	line := func(s string, c color.Color) {
		text.Draw(dst, s, face, x, y, c)
		y += lineH
	}

	line("HI-SCORE", rgba(core.ColorBrightRed))
	line(fmt.Sprintf("%8d", a.game.HiScore()), color.White)
	y += lineH
	for _, p := range w.Players() {
		c := rgba(playerColors[p.Seat])
		line(fmt.Sprintf("%dP %7d", p.Seat, p.Score), c)
		line(fmt.Sprintf("   lives %d", p.Lives), c)
	}
	y += lineH

	left := w.EnemiesLeft()
	for i := range left {
		fill(dst, core.NewRect(x-fieldOffset+(i%5)*12, y-fieldOffset+(i/5)*12, 8, 8), color.Black)
	}
	y += 4*12 + lineH

	line(fmt.Sprintf("STAGE %d", w.Stage()), color.Black)
}

func (a *App) drawTally(dst *ebiten.Image) {
	dst.Fill(fieldBg)
	t := a.game.Tally()
	text.Draw(dst, fmt.Sprintf("HI-SCORE %d", t.HiScore), face, screenW/2-50, 32, rgba(core.ColorBrightRed))
	text.Draw(dst, fmt.Sprintf("STAGE %d", t.Stage), face, screenW/2-28, 56, color.White)

	shown := a.game.TallyRevealed()
	for i, row := range t.Rows {
		x := 48 + i*260
		text.Draw(dst, fmt.Sprintf("%d-PLAYER  %d", row.Seat, row.Score), face, x, 96, rgba(playerColors[row.Seat]))
		total := 0
		for k := sim.EnemyKind(0); k < sim.EnemyKindCount; k++ {
			total += row.Kills[k]
			if int(k) < shown {
				s := fmt.Sprintf("%4d PTS %2d x %s", row.Kills[k]*k.Points(), row.Kills[k], k)
				text.Draw(dst, s, face, x, 128+32*int(k), color.White)
			}
		}
		if shown > int(sim.EnemyKindCount) {
			text.Draw(dst, fmt.Sprintf("TOTAL %d", total), face, x, 128+32*int(sim.EnemyKindCount), color.White)
		}
	}
}

func (a *App) drawGameOver(dst *ebiten.Image) {
	dst.Fill(fieldBg)
	const cell = 6
	top := 96
	for i, word := range []string{"GAME", "OVER"} {
		rows := battle.BrickText(word, '#')
		width := len([]rune(rows[0])) * cell
		for r, row := range rows {
			for c, ch := range []rune(row) {
				if ch != '#' {
					continue
				}
				x := screenW/2 - width/2 + c*cell
				y := top + (i*(battle.BrickHeight+2)+r)*cell
				vector.DrawFilledRect(dst, float32(x), float32(y), cell-1, cell-1, rgba(core.ColorRed), false)
			}
		}
	}
	text.Draw(dst, "R restart   Esc quit", face, screenW/2-70, screenH-40, color.White)
}
