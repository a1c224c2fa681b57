package component

import (
	"testing"

	"github.com/lixenwraith/tilestream/core"
	"github.com/lixenwraith/tilestream/vmath"
)

func TestRegistryPendingToResident(t *testing.T) {
	r := NewChunkRegistry()
	idx := vmath.IVec2{1, -1}

	if r.Known(idx) {
		t.Fatal("Expected fresh registry to know nothing")
	}

	r.MarkPending(idx)
	if !r.Known(idx) || r.Has(idx) {
		t.Error("Expected pending index to be known but not resident")
	}
	if r.PendingLen() != 1 {
		t.Errorf("Expected 1 pending, got %d", r.PendingLen())
	}

	r.Insert(idx, 42)
	if !r.Has(idx) || r.IsPending(idx) {
		t.Error("Expected insert to move index from pending to resident")
	}
	if e, ok := r.Get(idx); !ok || e != 42 {
		t.Errorf("Expected entity 42, got %d", e)
	}

	if e, ok := r.Remove(idx); !ok || e != 42 {
		t.Errorf("Expected removal of entity 42, got %d", e)
	}
	if _, ok := r.Remove(idx); ok {
		t.Error("Expected second removal to report absent")
	}
	if r.Known(idx) {
		t.Error("Expected removed index to be unknown")
	}
}

func TestRegistryIndicesOrder(t *testing.T) {
	r := NewChunkRegistry()
	for i, idx := range []vmath.IVec2{{1, -1}, {-1, 1}, {0, 0}, {0, 1}, {-1, -1}} {
		r.Insert(idx, core.Entity(i+1))
	}

	got := r.Indices()
	want := []vmath.IVec2{{-1, 1}, {0, 1}, {0, 0}, {-1, -1}, {1, -1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}

	r.Reset()
	if r.Len() != 0 || r.PendingLen() != 0 {
		t.Error("Expected reset to clear registry")
	}
}

func TestTileGridMatches(t *testing.T) {
	g := NewTileGrid(vmath.IVec2{3, 2})
	if !g.Matches(vmath.IVec2{3, 2}) {
		t.Error("Expected grid to match its own size")
	}
	if g.Matches(vmath.IVec2{2, 3}) {
		t.Error("Expected transposed size to mismatch")
	}

	g.Set(vmath.IVec2{2, 1}, TileDescriptor{Texture: 7, Visible: true})
	g.Set(vmath.IVec2{3, 1}, TileDescriptor{Texture: 9})
	if g.Occupied() != 1 {
		t.Errorf("Expected 1 occupied cell, got %d", g.Occupied())
	}
	if d, ok := g.At(vmath.IVec2{2, 1}); !ok || d == nil || d.Texture != 7 {
		t.Errorf("Expected texture 7 at (2,1), got %v", d)
	}

	bad := TileGrid{Size: vmath.IVec2{3, 2}, Cells: make([]*TileDescriptor, 5)}
	if bad.Matches(vmath.IVec2{3, 2}) {
		t.Error("Expected short cell slice to mismatch")
	}
}

func TestParseTilemapRole(t *testing.T) {
	if ParseTilemapRole(" Ground ") != RoleGround {
		t.Error("Expected ground role")
	}
	if ParseTilemapRole("trees") != RoleTrees {
		t.Error("Expected trees role")
	}
	if ParseTilemapRole("water") != RoleCustom {
		t.Error("Expected custom role for unknown name")
	}
	if RoleTrees.String() != "trees" {
		t.Errorf("Expected trees, got %s", RoleTrees.String())
	}
}
