//go:build ebiten

package app

import (
	"time"

	"gridclip/internal/clipboard"
	"gridclip/internal/core"
	"gridclip/internal/render"
	"gridclip/internal/tile"
	"gridclip/internal/ui"
	"gridclip/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts the world and clipboard interaction loop to the ebiten.Game
// interface.
type Game struct {
	cfg *Config
	gen worldgen.Generator

	world   *tile.Map
	painter *render.GridPainter
	hud     *ui.HUD
	display []uint8
	blink   *core.Pulse

	cursor    core.Point
	selAnchor *core.Point
	bufIndex  int
	transform core.Transform
	seed      int64
}

// New constructs a Game running the provided generator.
func New(cfg *Config, gen worldgen.Generator) *Game {
	g := &Game{
		cfg:   cfg,
		gen:   gen,
		hud:   ui.NewHUD(hudWidth),
		blink: core.NewPulse(800 * time.Millisecond),
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset regenerates the world with the provided seed, keeping the clipboard
// buffers intact.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world = g.gen(g.cfg.Width, g.cfg.Height, seed)
	g.painter = render.NewGridPainter(g.world.SizeX(), g.world.SizeY())
	g.display = make([]uint8, g.world.Len())
	g.selAnchor = nil
	g.clampCursor()
}

// buffer returns the active clipboard slot.
func (g *Game) buffer() *tile.Map {
	return clipboard.GetBuffer(g.bufIndex)
}

func (g *Game) clampCursor() {
	maxX, maxY := g.world.SizeX()-2, g.world.SizeY()-2
	if g.cursor.X < 0 {
		g.cursor.X = 0
	}
	if g.cursor.Y < 0 {
		g.cursor.Y = 0
	}
	if g.cursor.X > maxX {
		g.cursor.X = maxX
	}
	if g.cursor.Y > maxY {
		g.cursor.Y = maxY
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor.X += dx
	g.cursor.Y += dy
	g.clampCursor()
	g.blink.Reset()
}

// selection returns the area between the anchor and the cursor, or a single
// tile at the cursor when no anchor is set.
func (g *Game) selection() tile.OrthogonalArea {
	cursorTile := g.world.Tile(g.cursor.X, g.cursor.Y)
	if g.selAnchor == nil {
		return tile.NewOrthogonalArea(cursorTile, cursorTile)
	}
	return tile.NewOrthogonalArea(g.world.Tile(g.selAnchor.X, g.selAnchor.Y), cursorTile)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.handleCursorKeys()
	g.handleBufferKeys()

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if g.selAnchor == nil {
			anchor := g.cursor
			g.selAnchor = &anchor
		} else {
			g.selAnchor = nil
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		clipboard.Copy(g.selection(), g.buffer())
		g.selAnchor = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !clipboard.IsBufferEmpty(g.buffer()) {
		clipboard.Paste(g.buffer(), g.world.Tile(g.cursor.X, g.cursor.Y), g.transform)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		clipboard.EmptyBuffer(g.buffer())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		step := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			step = -1
		}
		g.transform = g.transform.Rotate(step)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.transform = g.transform.ToggleMirror()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	return nil
}

func (g *Game) handleCursorKeys() {
	type binding struct {
		key    ebiten.Key
		dx, dy int
	}
	bindings := []binding{
		{ebiten.KeyArrowLeft, -1, 0}, {ebiten.KeyH, -1, 0},
		{ebiten.KeyArrowRight, 1, 0}, {ebiten.KeyL, 1, 0},
		{ebiten.KeyArrowUp, 0, -1}, {ebiten.KeyK, 0, -1},
		{ebiten.KeyArrowDown, 0, 1}, {ebiten.KeyJ, 0, 1},
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.moveCursor(b.dx, b.dy)
		}
	}
}

func (g *Game) handleBufferKeys() {
	digits := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5,
	}
	for i, key := range digits {
		if inpututil.IsKeyJustPressed(key) {
			g.bufIndex = i
		}
	}
}

// rebuildDisplay re-encodes the world cells and paints the interaction
// overlays on top.
func (g *Game) rebuildDisplay() {
	cells := g.world.Cells()
	for i := range cells {
		g.display[i] = render.EncodeCell(&cells[i])
	}

	if !clipboard.IsBufferEmpty(g.buffer()) {
		ghost := clipboard.PasteArea(g.buffer(), g.world.Tile(g.cursor.X, g.cursor.Y), g.transform)
		g.markArea(ghost, render.DisplayPasteGhost)
	}
	if g.selAnchor != nil {
		g.markArea(g.selection(), render.DisplaySelection)
	}
	if g.blink.On() {
		g.display[g.cursor.Y*g.world.SizeX()+g.cursor.X] = render.DisplayCursor
	}
}

func (g *Game) markArea(a tile.OrthogonalArea, value uint8) {
	for it := tile.NewOrthoIter(a); it.Next(); {
		t := it.Tile()
		g.display[t.Y*g.world.SizeX()+t.X] = value
	}
}

// Draw renders the world and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.rebuildDisplay()
	g.painter.Blit(screen, g.display, render.Palette(), g.cfg.Scale)

	s := status{
		BufferIndex: g.bufIndex,
		BufferEmpty: clipboard.IsBufferEmpty(g.buffer()),
		Transform:   g.transform,
		Cursor:      g.cursor,
		SelAnchor:   g.selAnchor,
	}
	if !s.BufferEmpty {
		content := clipboard.ContentArea(g.buffer())
		s.BufferW, s.BufferH = content.W, content.H
		s.Stations = clipboard.StationCount(g.buffer())
	}
	g.hud.Draw(screen, g.world.SizeX()*g.cfg.Scale, g.world.SizeY()*g.cfg.Scale, s.lines())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.SizeX()*g.cfg.Scale + g.hud.Width(), g.world.SizeY() * g.cfg.Scale
}
