package game

import (
	"github.com/michelv/squish/internal/core"
)

// Kind is the tagged variant of an entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindRock
	KindRegular
	KindEgg
	KindPusher
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRock:
		return "rock"
	case KindRegular:
		return "regular"
	case KindEgg:
		return "egg"
	case KindPusher:
		return "pusher"
	default:
		return "unknown"
	}
}

// Enemy returns true for the three hostile kinds.
func (k Kind) Enemy() bool {
	return k == KindRegular || k == KindEgg || k == KindPusher
}

// Entity is a live actor on the field. At most one entity occupies a given
// cell at any time; walls are terrain, not entities.
type Entity struct {
	ID   int
	Kind Kind
	Pos  core.Coord

	// Hatch is the remaining hatch countdown; meaningful for eggs only.
	Hatch int

	// LastDir is the direction of the entity's most recent successful
	// move; meaningful for pushers, which prefer to keep leaning on the
	// same rock chain.
	LastDir    core.Dir
	HasLastDir bool
}

// Registry owns every live entity and is the single source of truth for
// positions. Ids are assigned in spawn order and stay stable for the life
// of the entity; enemy iteration follows spawn order.
type Registry struct {
	grid   *Grid
	byID   map[int]*Entity
	byPos  map[core.Coord]int
	order  []int
	nextID int
}

// NewRegistry creates an empty registry over the given terrain.
func NewRegistry(g *Grid) *Registry {
	return &Registry{
		grid:  g,
		byID:  make(map[int]*Entity),
		byPos: make(map[core.Coord]int),
	}
}

// At returns the entity occupying the cell, or nil.
func (r *Registry) At(pos core.Coord) *Entity {
	id, ok := r.byPos[pos]
	if !ok {
		return nil
	}
	return r.byID[id]
}

// Get returns the entity with the given id, or nil.
func (r *Registry) Get(id int) *Entity {
	return r.byID[id]
}

// checkCell validates that a cell is legal terrain for an entity.
func (r *Registry) checkCell(pos core.Coord) error {
	if !r.grid.InBounds(pos) {
		return ErrOutOfBounds
	}
	if r.grid.IsWall(pos) {
		return ErrIntoWall
	}
	return nil
}

// Spawn creates a new entity of the given kind. Fails with ErrOccupiedCell
// if the cell is taken, or ErrOutOfBounds/ErrIntoWall for illegal terrain.
func (r *Registry) Spawn(kind Kind, pos core.Coord) (*Entity, error) {
	if err := r.checkCell(pos); err != nil {
		return nil, err
	}
	if _, taken := r.byPos[pos]; taken {
		return nil, ErrOccupiedCell
	}

	e := &Entity{ID: r.nextID, Kind: kind, Pos: pos}
	r.nextID++
	r.byID[e.ID] = e
	r.byPos[pos] = e.ID
	r.order = append(r.order, e.ID)
	return e, nil
}

// Move relocates an entity. Fails with ErrOccupiedCell if the target holds
// a different entity, or ErrOutOfBounds/ErrIntoWall for illegal terrain.
// The position index is updated atomically: on failure nothing changes.
func (r *Registry) Move(id int, pos core.Coord) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrUnknownEntity
	}
	if err := r.checkCell(pos); err != nil {
		return err
	}
	if other, taken := r.byPos[pos]; taken && other != id {
		return ErrOccupiedCell
	}

	delete(r.byPos, e.Pos)
	e.Pos = pos
	r.byPos[pos] = id
	return nil
}

// Remove deletes an entity, clearing its position index entry.
func (r *Registry) Remove(id int) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrUnknownEntity
	}

	delete(r.byPos, e.Pos)
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Replace swaps the kind of an existing entity in place, preserving id and
// position and discarding kind-specific state. Used for the egg to pusher
// hatch transition.
func (r *Registry) Replace(id int, kind Kind) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrUnknownEntity
	}
	e.Kind = kind
	e.Hatch = 0
	e.HasLastDir = false
	return nil
}

// IDs returns the live entity ids in spawn order.
// The returned slice is a copy and safe to hold across mutations.
func (r *Registry) IDs() []int {
	ids := make([]int, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.byID)
}

// EnemyCount returns the number of live hostile entities.
func (r *Registry) EnemyCount() int {
	n := 0
	for _, e := range r.byID {
		if e.Kind.Enemy() {
			n++
		}
	}
	return n
}

// Count returns the number of live entities of the given kind.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, e := range r.byID {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
