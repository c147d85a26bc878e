package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
)

// Layout, in terminal cells. Two field rows share one terminal row.
const (
	fieldCols = int(engine.FieldWidth)
	fieldRows = int(engine.FieldHeight+1) / 2
	hudRows   = 1
)

// Half-block glyphs
const (
	glyphFull  = '█'
	glyphUpper = '▀'
	glyphLower = '▄'
)

// Alien sprites, two animation frames per type. Each sprite covers the
// alien's full bounding box; '#' marks a lit pixel.
var alienSprites = map[engine.AlienType][2][engine.AlienHeight]string{
	engine.Hard: {
		{".##.", "####", "#..#", ".##."},
		{".##.", "####", ".##.", "#..#"},
	},
	engine.Medium: {
		{"#..#", "####", "#.##", "#..#"},
		{".##.", "####", "##.#", ".##."},
	},
	engine.Easy: {
		{"####", "#..#", "####", ".#.#"},
		{"####", "#..#", "####", "#.#."},
	},
	engine.Mystery: {
		{".##.", "####", "#.#.", "...."},
		{".##.", "####", ".#.#", "...."},
	},
}

var cannonSprite = [engine.CannonHeight]string{
	"...#...",
	"#######",
}

var alienColors = map[engine.AlienType]core.Color{
	engine.Hard:    core.ColorMagenta,
	engine.Medium:  core.ColorCyan,
	engine.Easy:    core.ColorBrightGreen,
	engine.Mystery: core.ColorBrightRed,
}

// pixels is the field rasterized at one pixel per field unit.
// ColorDefault marks an empty pixel.
type pixels [engine.FieldHeight][engine.FieldWidth]core.Color

func (p *pixels) set(x, y engine.Unit, c core.Color) {
	if x < engine.FieldWidth && y < engine.FieldHeight {
		p[y][x] = c
	}
}

func (p *pixels) fill(b engine.Box, c core.Color) {
	for dy := range b.H {
		for dx := range b.W {
			p.set(b.Pos.X+dx, b.Pos.Y+dy, c)
		}
	}
}

func (p *pixels) sprite(pos engine.Position, rows []string, c core.Color) {
	for dy, row := range rows {
		for dx, ch := range row {
			if ch == '#' {
				p.set(pos.X+engine.Unit(dx), pos.Y+engine.Unit(dy), c)
			}
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}
	if g.field == nil {
		return
	}

	// Border box around the field, centered.
	frame := core.NewRect(
		(dst.Width()-fieldCols-2)/2,
		(dst.Height()-g.minScreenH)/2+hudRows,
		fieldCols+2,
		fieldRows+2,
	)

	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderField(dst, frame.Inset(1))
	g.renderFooter(dst, frame)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives, wave and accuracy above the field.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	y := frame.Y - 1

	scoreText := fmt.Sprintf("Score: %d", g.field.Score())
	dst.DrawTextColor(frame.X+1, y, scoreText, core.ColorWhite)

	lives := int(g.field.Lives()) //#nosec G115 -- lives is small
	livesText := "Lives: " + strings.Repeat("♥", lives)
	dst.DrawTextColor(frame.X+(frame.W-len([]rune(livesText)))/2, y, livesText, core.ColorRed)

	stats := g.field.Stats()
	rightText := fmt.Sprintf("Wave: %d  Acc: %d%%", g.field.Wave(), int(stats.Accuracy()*100))
	dst.DrawTextColor(frame.Right()-len(rightText)-1, y, rightText, core.ColorCyan)
}

// renderFooter draws the key hints below the field.
func (g *Game) renderFooter(dst *core.Screen, frame core.Rect) {
	hint := "←/→ move  SPACE fire  P pause  Q quit"
	if g.field.Speed() > 1 {
		hint = fmt.Sprintf("%s  x%d", hint, g.field.Speed())
	}
	dst.DrawTextColor(frame.X+1, frame.Bottom(), hint, core.ColorGray)
}

// rasterize paints every entity into a pixel grid.
func (g *Game) rasterize() *pixels {
	var px pixels
	frame := (g.tickCount / 15) % 2

	bunkers := g.field.Bunkers()
	for i := range engine.BunkerCount {
		b, ok := bunkers.Slot(i)
		if !ok {
			continue
		}
		for row := range engine.BunkerCells {
			for col := range engine.BunkerCells {
				d := b.Durability[row][col]
				if d == 0 {
					continue
				}
				c := core.ColorGreen
				if d == 1 {
					c = core.ColorOrange
				}
				px.fill(engine.NewBox(engine.Position{
					X: b.Pos.X + engine.Unit(col)*engine.BunkerCellWidth,
					Y: b.Pos.Y + engine.Unit(row)*engine.BunkerCellHeight,
				}, engine.BunkerCellWidth, engine.BunkerCellHeight), c)
			}
		}
	}

	aliens := g.field.Aliens()
	for row := range engine.AlienRows {
		for col := range engine.AlienColumns {
			a, ok := aliens.At(col, row)
			if !ok {
				continue
			}
			sprite := alienSprites[a.Type][frame]
			px.sprite(a.Pos, sprite[:], alienColors[a.Type])
		}
	}

	cannonColor := core.ColorBrightGreen
	if g.hitTick > 0 && g.tickCount-g.hitTick < hitFlashTicks && g.tickCount%4 < 2 {
		cannonColor = core.ColorRed
	}
	cannon := g.field.Cannon()
	px.sprite(cannon.Position(), cannonSprite[:], cannonColor)

	for _, b := range g.field.Bullets() {
		c := core.ColorWhite
		if b.FromAlien {
			c = core.ColorYellow
		}
		px.fill(b.Box(), c)
	}

	return &px
}

// renderField draws the pixel grid into area using half blocks. When the
// two halves of a cell disagree on color the upper one wins.
func (g *Game) renderField(dst *core.Screen, area core.Rect) {
	px := g.rasterize()

	for row := range fieldRows {
		top := 2 * row
		for x := range fieldCols {
			upper := px[top][x]
			lower := core.ColorDefault
			if top+1 < int(engine.FieldHeight) {
				lower = px[top+1][x]
			}

			switch {
			case upper != core.ColorDefault && lower != core.ColorDefault:
				dst.SetColor(area.X+x, area.Y+row, glyphFull, upper)
			case upper != core.ColorDefault:
				dst.SetColor(area.X+x, area.Y+row, glyphUpper, upper)
			case lower != core.ColorDefault:
				dst.SetColor(area.X+x, area.Y+row, glyphLower, lower)
			}
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  Wave: %d  |  Press R to restart", g.field.Score(), g.field.Wave())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.field.Score())
		g.drawCenteredBox(dst, "EARTH IS SAFE!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	box := core.CenteredRect(dst.Width(), dst.Height(), max(len(title), len(subtitle))+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextColor(box.X+(box.W-len(title))/2, box.Y+1, title, core.ColorBrightGreen)
	dst.DrawTextColor(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle, core.ColorWhite)
}
