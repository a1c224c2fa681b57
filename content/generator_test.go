package content

import (
	"testing"

	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/parameter"
	"github.com/lixenwraith/tilestream/vmath"
)

func TestNoiseGeneratorDeterministic(t *testing.T) {
	a := NewNoiseGenerator(42)
	b := NewNoiseGenerator(42)
	size := vmath.IVec2{8, 8}

	for _, role := range []component.TilemapRole{component.RoleGround, component.RoleTrees} {
		ga := a.Generate(role, vmath.IVec2{3, -2}, size)
		gb := b.Generate(role, vmath.IVec2{3, -2}, size)
		for i := range ga.Cells {
			ca, cb := ga.Cells[i], gb.Cells[i]
			if (ca == nil) != (cb == nil) || (ca != nil && *ca != *cb) {
				t.Fatalf("%s: Expected identical cell %d, got %v vs %v", role, i, ca, cb)
			}
		}
	}
}

func TestNoiseGeneratorGroundFillsEverySlot(t *testing.T) {
	g := NewNoiseGenerator(7)
	size := vmath.IVec2{6, 4}
	grid := g.Generate(component.RoleGround, vmath.IVec2{}, size)

	if !grid.Matches(size) {
		t.Fatalf("Expected grid sized %v, got %v", size, grid.Size)
	}
	if grid.Occupied() != size.Area() {
		t.Errorf("Expected every ground slot filled, got %d of %d", grid.Occupied(), size.Area())
	}

	valid := map[uint32]bool{parameter.SandTexture: true}
	for _, tex := range parameter.DarkGrassTextures {
		valid[tex] = true
	}
	for i, c := range grid.Cells {
		if !valid[c.Texture] {
			t.Errorf("Expected ground texture at cell %d, got %d", i, c.Texture)
		}
	}
}

func TestNoiseGeneratorTreesAreSparse(t *testing.T) {
	g := NewNoiseGenerator(7)
	size := vmath.IVec2{16, 16}

	total := 0
	for cx := -3; cx <= 3; cx++ {
		grid := g.Generate(component.RoleTrees, vmath.IVec2{cx, 0}, size)
		total += grid.Occupied()
		for _, c := range grid.Cells {
			if c != nil && c.Texture >= parameter.TreeTextures {
				t.Errorf("Expected tree texture below %d, got %d", parameter.TreeTextures, c.Texture)
			}
		}
	}
	if total == 7*size.Area() {
		t.Error("Expected some empty tree slots")
	}
}

// Test samples align across the shared edge of neighbouring chunks
func TestNoiseGeneratorSeamless(t *testing.T) {
	g := NewNoiseGenerator(3)
	size := vmath.IVec2{4, 4}

	left := g.Generate(component.RoleGround, vmath.IVec2{0, 0}, size)
	right := g.Generate(component.RoleGround, vmath.IVec2{1, 0}, size)

	// Global tile of left's last column + 1 equals right's first column
	for y := 0; y < size.Y; y++ {
		lg := vmath.LocalTileToGlobal(vmath.IVec2{0, 0}, size, vmath.IVec2{size.X - 1, y})
		rg := vmath.LocalTileToGlobal(vmath.IVec2{1, 0}, size, vmath.IVec2{0, y})
		if rg.X != lg.X+1 || rg.Y != lg.Y {
			t.Fatalf("Expected adjacent globals, got %v and %v", lg, rg)
		}
	}
	if left.Occupied() != size.Area() || right.Occupied() != size.Area() {
		t.Error("Expected full ground chunks")
	}
}

func TestNoiseGeneratorCustomRoleEmpty(t *testing.T) {
	g := NewNoiseGenerator(1)
	grid := g.Generate(component.RoleCustom, vmath.IVec2{}, vmath.IVec2{3, 3})
	if grid.Occupied() != 0 {
		t.Errorf("Expected empty grid for custom role, got %d", grid.Occupied())
	}
}
