// Package demo is a small rocket game exercising the runtime: thrust, gravity and particle trails
package demo

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/lixenwraith/asscii/asset"
	"github.com/lixenwraith/asscii/audio"
	"github.com/lixenwraith/asscii/engine"
	"github.com/lixenwraith/asscii/input"
)

// Asset file names inside the asset directory
const (
	PlayerFile      = "player.ans"
	ParticlePattern = "circle_particle*.ans"
)

// Keys is the held-key view the game polls each tick
type Keys interface {
	IsPressed(key input.Key) bool
}

// Sounds receives audio cues; implementations must tolerate being uninitialized
type Sounds interface {
	SetThrust(on bool)
	Play(sound audio.SoundType)
}

type silence struct{}

func (silence) SetThrust(bool)        {}
func (silence) Play(audio.SoundType) {}

// Assets are the animations the game draws
type Assets struct {
	Player   *asset.Animation
	Particle *asset.Animation
}

// LoadAssets reads the player sprite and the numbered particle frames from dir
func LoadAssets(dir string) (*Assets, error) {
	player, err := asset.Load(filepath.Join(dir, PlayerFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	particle, err := asset.LoadAnimation(dir, ParticlePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load particles: %w", err)
	}
	log.Printf("demo: loaded player %dx%d and %d particle frames", player.Width(), player.Height(), particle.Len())
	return &Assets{
		Player:   asset.FromSprite(player),
		Particle: particle,
	}, nil
}

// Game bundles what the entities share
type Game struct {
	Assets *Assets
	Keys   Keys
	Sounds Sounds
}

// Populate adds the status bar and a player centred in the field
func Populate(scene *engine.Scene, game *Game) (*Player, error) {
	if game.Sounds == nil {
		game.Sounds = silence{}
	}

	if err := scene.Add(NewStatusBar(game)); err != nil {
		return nil, fmt.Errorf("failed to add status bar: %w", err)
	}

	con := scene.Console()
	player := NewPlayer(game, float64(con.Width()/2), float64(con.Height()/2))
	if err := scene.Add(player); err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}
	return player, nil
}
