package demo

import (
	"log"

	"github.com/lixenwraith/asscii/engine"
	"github.com/lixenwraith/asscii/input"
)

const (
	// Acceleration is cells per second squared while a direction is held
	Acceleration = 50
	// Gravity is the constant downward pull
	Gravity = 15
	// ParticleRate bounds particles spawned per second of thrust
	ParticleRate = 150
	// Exhaust spawns this many rows below the player's pivot
	ExhaustOffset = 4
)

// Player is the rocket steered with the arrow keys
type Player struct {
	engine.Object
	game *Game

	SpeedX, SpeedY float64
}

// NewPlayer creates a player at (x, y)
func NewPlayer(game *Game, x, y float64) *Player {
	p := &Player{game: game}
	p.X, p.Y = x, y
	p.Speed = 1
	return p
}

func (p *Player) Created() {
	p.Animation = p.game.Assets.Player
	p.SpeedX, p.SpeedY = 0, 0
}

func (p *Player) Removed() {
	p.game.Sounds.SetThrust(false)
}

func (p *Player) Update(dt float64) {
	accel := Acceleration * dt
	thrusting := false

	if p.game.Keys.IsPressed(input.KeyUp) {
		p.SpeedY -= accel
		thrusting = true
	}
	if p.game.Keys.IsPressed(input.KeyRight) {
		p.SpeedX += accel
		thrusting = true
	}
	if p.game.Keys.IsPressed(input.KeyLeft) {
		p.SpeedX -= accel
		thrusting = true
	}
	if p.game.Keys.IsPressed(input.KeyDown) {
		p.SpeedY += accel
		thrusting = true
	}

	p.SpeedY += Gravity * dt
	p.game.Sounds.SetThrust(thrusting)

	if thrusting {
		p.exhaust(dt)
	}

	p.X += p.SpeedX * dt
	p.Y += p.SpeedY * dt
	p.confine()
}

// exhaust spawns a random burst of particles under the rocket
func (p *Player) exhaust(dt float64) {
	limit := int(ParticleRate * dt)
	if limit <= 0 {
		return
	}
	rng := p.Rand()
	for n := rng.Intn(limit); n > 0; n-- {
		particle := NewRocketParticle(p.game, p.X+float64(rng.Intn(3)-1), p.Y+ExhaustOffset)
		if err := p.Scene().Add(particle); err != nil {
			log.Printf("demo: particle rejected: %v", err)
			return
		}
	}
}

// confine keeps the pivot inside the field, killing velocity into the walls
func (p *Player) confine() {
	con := p.Console()
	if con == nil {
		return
	}
	maxX, maxY := float64(con.Width()-1), float64(con.Height()-1)

	if p.X < 0 {
		p.X, p.SpeedX = 0, 0
	} else if p.X > maxX {
		p.X, p.SpeedX = maxX, 0
	}
	if p.Y < 0 {
		p.Y, p.SpeedY = 0, 0
	} else if p.Y > maxY {
		p.Y, p.SpeedY = maxY, 0
	}
}
