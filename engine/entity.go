package engine

import (
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/asscii/console"
)

// Entity is anything the scene updates and draws each tick
// Implementations embed Component and override the hooks they need
type Entity interface {
	Base() *Component
	Created()
	Removed()
	Update(dt float64)
	Draw()
}

// Component carries scene membership; the zero value is detached
type Component struct {
	id       atomic.Int64
	attached atomic.Bool
	removed  atomic.Bool
	owner    *Registry
	scene    *Scene
	self     Entity
}

// Base returns the component itself
func (c *Component) Base() *Component {
	return c
}

// ID returns the assigned ID, or Detached before the first Add
func (c *Component) ID() int64 {
	if !c.attached.Load() {
		return Detached
	}
	return c.id.Load()
}

// Alive reports whether the entity is in a scene and not yet removed
func (c *Component) Alive() bool {
	return c.attached.Load() && !c.removed.Load()
}

// Scene returns the owning scene, nil while detached
func (c *Component) Scene() *Scene {
	return c.scene
}

// Console returns the scene's draw target, nil while detached
func (c *Component) Console() *console.Console {
	if c.scene == nil {
		return nil
	}
	return c.scene.Console()
}

// Rand returns the scene's shared random source, nil while detached
func (c *Component) Rand() *rand.Rand {
	if c.scene == nil {
		return nil
	}
	return c.scene.Rand()
}

// Remove takes the entity out of its scene
func (c *Component) Remove() {
	if c.scene != nil && c.self != nil {
		c.scene.Remove(c.self)
	}
}

// Created, Removed, Update and Draw are no-op hooks for embedders to override
func (c *Component) Created()          {}
func (c *Component) Removed()          {}
func (c *Component) Update(dt float64) {}
func (c *Component) Draw()             {}
