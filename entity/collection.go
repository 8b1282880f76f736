package entity

import (
	"cmp"
	"slices"
)

// DefaultCapacity is the entity cap of a world.
const DefaultCapacity = 50

// Collection owns the live entities of a world. It is bounded: adds past
// capacity are dropped. Deletion is deferred to Prune so iteration never
// sees the slice change underneath it.
type Collection struct {
	items    []Entity
	capacity int
	owner    Owner
}

func NewCollection(capacity int, owner Owner) *Collection {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Collection{
		items:    make([]Entity, 0, capacity),
		capacity: capacity,
		owner:    owner,
	}
}

// Add inserts e and binds it to the collection's owner. It reports false
// when the collection is full or e belongs to another owner.
func (c *Collection) Add(e Entity) bool {
	if c == nil || e == nil || len(c.items) >= c.capacity {
		return false
	}
	if c.owner != nil && !e.Bind(c.owner) {
		return false
	}
	c.items = append(c.items, e)
	return true
}

// Prune removes every entity flagged deleted, keeping survivor order, and
// returns how many were removed.
func (c *Collection) Prune() int {
	if c == nil {
		return 0
	}
	kept := c.items[:0]
	for _, e := range c.items {
		if !e.Deleted() {
			kept = append(kept, e)
		}
	}
	removed := len(c.items) - len(kept)
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

// SortByDepth orders entities by ascending Y so lower entities draw on top.
func (c *Collection) SortByDepth() {
	if c == nil {
		return
	}
	slices.SortStableFunc(c.items, func(a, b Entity) int {
		return cmp.Compare(a.Position().Y, b.Position().Y)
	})
}

func (c *Collection) UpdateAll() {
	if c == nil {
		return
	}
	for _, e := range c.items {
		e.Update()
	}
}

func (c *Collection) RenderAll(p Painter) {
	if c == nil {
		return
	}
	for _, e := range c.items {
		e.Render(p)
	}
}

func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Collection) Cap() int {
	if c == nil {
		return 0
	}
	return c.capacity
}

// Full reports whether further adds would be dropped.
func (c *Collection) Full() bool {
	return c.Len() >= c.Cap()
}

// All returns a copy of the entities in current order.
func (c *Collection) All() []Entity {
	if c == nil {
		return nil
	}
	out := make([]Entity, 0, len(c.items))
	return append(out, c.items...)
}
