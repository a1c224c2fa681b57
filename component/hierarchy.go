package component

import "github.com/lixenwraith/tilestream/core"

// ParentComponent provides O(1) owner resolution from a child entity
type ParentComponent struct {
	Parent core.Entity
}

// ChildrenComponent lists owned entities in attach order
type ChildrenComponent struct {
	Children []core.Entity
}
