package engine

import (
	"github.com/lixenwraith/tilestream/component"
	"github.com/lixenwraith/tilestream/core"
)

// AttachChild makes child owned by parent, detaching it from any previous parent
func AttachChild(w *World, parent, child core.Entity) {
	if old, ok := w.Components.Parent.Get(child); ok {
		if old.Parent == parent {
			return
		}
		detach(w, old.Parent, child)
	}

	w.Components.Parent.Set(child, component.ParentComponent{Parent: parent})
	kids, _ := w.Components.Children.Get(parent)
	kids.Children = append(kids.Children, child)
	w.Components.Children.Set(parent, kids)
}

// Children returns a copy of the entities owned by parent in attach order
func Children(w *World, parent core.Entity) []core.Entity {
	kids, ok := w.Components.Children.Get(parent)
	if !ok {
		return nil
	}
	out := make([]core.Entity, len(kids.Children))
	copy(out, kids.Children)
	return out
}

// ParentOf returns the owner of child
func ParentOf(w *World, child core.Entity) (core.Entity, bool) {
	p, ok := w.Components.Parent.Get(child)
	return p.Parent, ok
}

// DestroyRecursive destroys e and everything it owns, deepest first
// Returns the number of entities destroyed
func DestroyRecursive(w *World, e core.Entity) int {
	if p, ok := w.Components.Parent.Get(e); ok {
		detach(w, p.Parent, e)
	}
	return destroyTree(w, e)
}

func destroyTree(w *World, e core.Entity) int {
	n := 0
	if kids, ok := w.Components.Children.Get(e); ok {
		for _, child := range kids.Children {
			n += destroyTree(w, child)
		}
	}
	w.DestroyEntity(e)
	return n + 1
}

func detach(w *World, parent, child core.Entity) {
	kids, ok := w.Components.Children.Get(parent)
	if !ok {
		return
	}
	for i, c := range kids.Children {
		if c == child {
			kids.Children = append(kids.Children[:i], kids.Children[i+1:]...)
			break
		}
	}
	w.Components.Children.Set(parent, kids)
	w.Components.Parent.Remove(child)
}
