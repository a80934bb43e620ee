package engine

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// Detached is the ID of an entity that was never added
const Detached int64 = -1

var (
	// ErrAlreadyAttached is returned when adding an entity that already has an ID
	ErrAlreadyAttached = errors.New("entity already attached")
)

// Registry tracks live entities ordered by ID
// Iteration goes through snapshots, so entities may be added or removed mid-iteration
type Registry struct {
	mu       sync.Mutex
	nextID   int64
	entities []Entity
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add assigns the next ID and makes e live
func (r *Registry) Add(e Entity) (int64, error) {
	return r.attach(e, nil)
}

// attach claims e for this registry and, when s is set, its scene
// The claim is a compare-and-swap so an entity joins at most one registry
func (r *Registry) attach(e Entity, s *Scene) (int64, error) {
	c := e.Base()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !c.attached.CompareAndSwap(false, true) {
		return c.ID(), ErrAlreadyAttached
	}

	id := r.nextID
	r.nextID++
	c.id.Store(id)
	c.owner = r
	c.scene = s
	c.self = e

	// IDs only grow, so appending keeps the slice sorted
	r.entities = append(r.entities, e)
	return id, nil
}

// Remove drops e; it reports false when e was not live
func (r *Registry) Remove(e Entity) bool {
	c := e.Base()

	r.mu.Lock()
	defer r.mu.Unlock()

	if !c.attached.Load() || c.removed.Load() || c.owner != r {
		return false
	}
	i, ok := r.find(c.ID())
	if !ok || r.entities[i] != e {
		return false
	}
	c.removed.Store(true)
	r.entities = slices.Delete(r.entities, i, i+1)
	return true
}

// Contains reports whether the entity with id is live
func (r *Registry) Contains(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.find(id)
	return ok
}

// Snapshot returns the live entities in ID order
func (r *Registry) Snapshot() []Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entities)
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entities)
}

func (r *Registry) find(id int64) (int, bool) {
	return slices.BinarySearchFunc(r.entities, id, func(e Entity, id int64) int {
		return cmp.Compare(e.Base().ID(), id)
	})
}
