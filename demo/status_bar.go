package demo

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/asscii/audio"
	"github.com/lixenwraith/asscii/engine"
	"github.com/lixenwraith/asscii/input"
	"github.com/lixenwraith/asscii/render"
)

// hudDepth puts the bar in front of everything the game draws
const hudDepth = -1

// StatusBar shows frame timing on the left and the entity count on the right
// X and Z raise and lower the frame rate
type StatusBar struct {
	engine.Component
	game  *Game
	delta float64
}

// NewStatusBar creates the HUD
func NewStatusBar(game *Game) *StatusBar {
	return &StatusBar{game: game}
}

func (sb *StatusBar) Update(dt float64) {
	sb.delta = dt

	scene := sb.Scene()
	switch {
	case sb.game.Keys.IsPressed(input.KeyX):
		scene.SetFPS(scene.FPS() + 1)
		sb.game.Sounds.Play(audio.SoundRateUp)
	case sb.game.Keys.IsPressed(input.KeyZ):
		if scene.FPS() > 1 {
			scene.SetFPS(scene.FPS() - 1)
			sb.game.Sounds.Play(audio.SoundRateDown)
		}
	}
}

func (sb *StatusBar) Draw() {
	con := sb.Console()
	con.Write(0, 0, hudDepth, sb.Timing())

	right := sb.Counters()
	con.WriteColored(con.Width()-runewidth.StringWidth(right), 0, hudDepth, right, render.DarkGray, render.Black)
}

// Timing formats the last delta in milliseconds and the frame rate it implies
func (sb *StatusBar) Timing() string {
	fps := 0.0
	if sb.delta > 0 {
		fps = math.Round(1 / sb.delta)
	}
	return fmt.Sprintf("Delta time: %4d FPS: %3.0f", int(sb.delta*1000), fps)
}

// Counters formats the target rate and live entity count
func (sb *StatusBar) Counters() string {
	m := sb.Scene().Metrics()
	var b strings.Builder
	fmt.Fprintf(&b, "target %d fps", m.Ints.Get(engine.MetricFPS).Load())
	fmt.Fprintf(&b, " · %d objects", m.Ints.Get(engine.MetricEntities).Load())
	return b.String()
}
