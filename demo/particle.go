package demo

import (
	"github.com/lixenwraith/asscii/engine"
)

const (
	// ParticleLifetime is the playhead at which a particle disappears
	ParticleLifetime = 10
	particleSpeed    = 10
	particleDepth    = 1
)

// RocketParticle is one puff of exhaust drifting down and sideways
type RocketParticle struct {
	engine.Object
	game *Game
}

// NewRocketParticle creates a particle at (x, y)
func NewRocketParticle(game *Game, x, y float64) *RocketParticle {
	rp := &RocketParticle{game: game}
	rp.X, rp.Y = x, y
	return rp
}

func (rp *RocketParticle) Created() {
	rp.Animation = rp.game.Assets.Particle
	rp.Speed = particleSpeed
	rp.Depth = particleDepth
}

func (rp *RocketParticle) Update(dt float64) {
	rp.Object.Update(dt)

	if rp.Playhead >= ParticleLifetime {
		rp.Remove()
		return
	}

	rng := rp.Rand()
	rp.X += (rng.Float64() - 0.5) * 3 * dt
	rp.Y += rng.Float64() * 15 * dt
}
