package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/engine"
	"github.com/lixenwraith/tilestream/event"
	"github.com/lixenwraith/tilestream/parameter"
	"github.com/lixenwraith/tilestream/status"
	"github.com/lixenwraith/tilestream/vmath"
)

var (
	styleGrass = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSand  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleTree  = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Bold(true)
	styleEdge  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

type cell struct {
	r     rune
	style tcell.Style
	set   bool
}

// view renders resident tiles around the viewpoint, one terminal cell per tile
// World Y grows upward, screen rows grow downward
type view struct {
	screen tcell.Screen
	world  *engine.World
	center vmath.Vec2
	cells  []cell

	ticks    func() int64
	resident func() int64
	pending  func() int64
}

func newView(screen tcell.Screen, world *engine.World) *view {
	reg := world.Resource.Status
	v := &view{
		screen:   screen,
		world:    world,
		ticks:    reg.Ints.Get(status.KeyTicks).Load,
		resident: reg.Ints.Get(status.KeyResident).Load,
		pending:  reg.Ints.Get(status.KeyPending).Load,
	}
	world.RunSafe(func() {
		for _, e := range engine.Tilemaps(world) {
			if tm, ok := world.Components.Tilemap.Get(e); ok {
				v.center = tm.Center
				return
			}
		}
	})
	return v
}

// project maps a global tile onto the screen, cam is the global tile under the screen center
func project(global, cam vmath.IVec2, width, height int) (int, int, bool) {
	col := width/2 + (global.X - cam.X)
	row := height/2 - (global.Y - cam.Y)
	if col < 0 || row < 0 || col >= width || row >= height {
		return 0, 0, false
	}
	return col, row, true
}

// cameraTile returns the global tile containing a world position
func cameraTile(center vmath.Vec2, tileSize vmath.Vec2) vmath.IVec2 {
	return vmath.IVec2{
		X: int(math.Round(center.X / tileSize.X)),
		Y: int(math.Round(center.Y / tileSize.Y)),
	}
}

func glyphFor(role component.TilemapRole, d component.TileDescriptor) (rune, tcell.Style) {
	switch role {
	case component.RoleGround:
		if d.Texture == parameter.SandTexture {
			return '~', styleSand
		}
		return ',', styleGrass
	case component.RoleTrees:
		return '♣', styleTree
	default:
		return '#', styleEdge
	}
}

func (v *view) draw() {
	width, height := v.screen.Size()
	if width <= 0 || height <= 1 {
		return
	}
	mapHeight := height - 1
	if len(v.cells) != width*mapHeight {
		v.cells = make([]cell, width*mapHeight)
	}
	for i := range v.cells {
		v.cells[i] = cell{}
	}

	var layers, currentX, currentY, radius int
	v.world.RunSafe(func() {
		for _, e := range engine.Tilemaps(v.world) {
			tm, ok := v.world.Components.Tilemap.Get(e)
			if !ok {
				continue
			}
			if layers == 0 {
				currentX, currentY, radius = tm.CurrentChunk.X, tm.CurrentChunk.Y, tm.Range
			}
			layers++
			cam := cameraTile(v.center, tm.TileSize)
			for _, chunk := range engine.Children(v.world, e) {
				v.drawChunk(tm.Role, chunk, cam, width, mapHeight)
			}
		}
	})

	v.screen.Clear()
	for i, c := range v.cells {
		if c.set {
			v.screen.SetContent(i%width, i/width+1, c.r, nil, c.style)
		}
	}

	hud := fmt.Sprintf(" center (%.0f,%.0f) chunk (%d,%d) range %d | layers %d resident %d pending %d tick %d | arrows/hjkl move, HJKL chunk, +/- range, q quit ",
		v.center.X, v.center.Y, currentX, currentY, radius, layers, v.resident(), v.pending(), v.ticks())
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(hud) {
			r = rune(hud[x])
		}
		v.screen.SetContent(x, 0, r, nil, styleHUD)
	}
	v.screen.Show()
}

// drawChunk runs under the world lock
func (v *view) drawChunk(role component.TilemapRole, chunk core.Entity, cam vmath.IVec2, width, height int) {
	for _, tile := range engine.Children(v.world, chunk) {
		t, ok := v.world.Components.Tile.Get(tile)
		if !ok || !t.Descriptor.Visible {
			continue
		}
		col, row, ok := project(t.Global, cam, width, height)
		if !ok {
			continue
		}
		r, style := glyphFor(role, t.Descriptor)
		v.cells[row*width+col] = cell{r: r, style: style, set: true}
	}
}

// step returns the tile and chunk spans of the first tilemap
func (v *view) step() (vmath.Vec2, vmath.Vec2) {
	tile := vmath.Vec2{X: parameter.DefaultTileSize, Y: parameter.DefaultTileSize}
	chunk := vmath.ChunkSpan(vmath.IVec2{X: parameter.DefaultChunkSize, Y: parameter.DefaultChunkSize}, tile)
	v.world.RunSafe(func() {
		for _, e := range engine.Tilemaps(v.world) {
			if tm, ok := v.world.Components.Tilemap.Get(e); ok {
				tile, chunk = tm.TileSize, vmath.ChunkSpan(tm.ChunkSize, tm.TileSize)
				return
			}
		}
	})
	return tile, chunk
}

// move shifts the viewpoint and broadcasts it to every tilemap
func (v *view) move(dx, dy float64) {
	v.center = v.center.Add(vmath.Vec2{X: dx, Y: dy})
	v.world.PushEvent(event.EventCenterUpdate, &event.CenterUpdatePayload{
		Tilemap:  core.NoEntity,
		Position: v.center,
	})
}

func (v *view) changeRange(delta int) {
	v.world.RunSafe(func() {
		for _, e := range engine.Tilemaps(v.world) {
			tm, ok := v.world.Components.Tilemap.Get(e)
			if !ok || tm.Range+delta < 0 {
				continue
			}
			if err := engine.SetRange(v.world, e, tm.Range+delta); err != nil {
				v.world.Logger().WithError(err).Warn("range change rejected")
			}
		}
	})
}

// handleKey returns false when the sandbox should exit
func (v *view) handleKey(ev *tcell.EventKey) bool {
	tile, chunk := v.step()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		v.move(-tile.X, 0)
	case tcell.KeyRight:
		v.move(tile.X, 0)
	case tcell.KeyUp:
		v.move(0, tile.Y)
	case tcell.KeyDown:
		v.move(0, -tile.Y)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			v.move(-tile.X, 0)
		case 'l':
			v.move(tile.X, 0)
		case 'k':
			v.move(0, tile.Y)
		case 'j':
			v.move(0, -tile.Y)
		case 'H':
			v.move(-chunk.X, 0)
		case 'L':
			v.move(chunk.X, 0)
		case 'K':
			v.move(0, chunk.Y)
		case 'J':
			v.move(0, -chunk.Y)
		case '+', '=':
			v.changeRange(1)
		case '-':
			v.changeRange(-1)
		}
	}
	return true
}
