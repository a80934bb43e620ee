package demo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/asscii/asset"
	"github.com/lixenwraith/asscii/audio"
	"github.com/lixenwraith/asscii/console"
	"github.com/lixenwraith/asscii/engine"
	"github.com/lixenwraith/asscii/input"
)

type heldKeys map[input.Key]bool

func (h heldKeys) IsPressed(k input.Key) bool { return h[k] }

type recordedSounds struct {
	thrust []bool
	cues   []audio.SoundType
}

func (r *recordedSounds) SetThrust(on bool)          { r.thrust = append(r.thrust, on) }
func (r *recordedSounds) Play(sound audio.SoundType) { r.cues = append(r.cues, sound) }

func testAssets() *Assets {
	return &Assets{
		Player:   asset.FromSprite(asset.Parse(" ^ \n/#\\\n| |\n/ \\")),
		Particle: asset.NewAnimation(asset.Parse("O"), asset.Parse("o"), asset.Parse(".")),
	}
}

func newTestGame(t *testing.T, w, h int) (*engine.Scene, *Game, heldKeys, *recordedSounds, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	scene := engine.NewScene(console.New(screen, w, h, console.Options{}), engine.Options{
		FPS:   60,
		Clock: engine.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Seed:  42,
	})
	keys := heldKeys{}
	sounds := &recordedSounds{}
	game := &Game{Assets: testAssets(), Keys: keys, Sounds: sounds}
	return scene, game, keys, sounds, screen
}

func TestPopulateCentresPlayer(t *testing.T) {
	scene, game, _, _, _ := newTestGame(t, 40, 20)

	player, err := Populate(scene, game)
	require.NoError(t, err)

	assert.Equal(t, 2, scene.Len())
	assert.Equal(t, 20.0, player.X)
	assert.Equal(t, 10.0, player.Y)
	assert.Same(t, game.Assets.Player, player.Animation)
}

func TestPopulateDefaultsToSilence(t *testing.T) {
	scene, game, _, _, _ := newTestGame(t, 40, 20)
	game.Sounds = nil

	_, err := Populate(scene, game)
	require.NoError(t, err)
	scene.Update(0.1)
}

func TestPlayerFallsUnderGravity(t *testing.T) {
	scene, game, _, sounds, _ := newTestGame(t, 40, 20)
	player, err := Populate(scene, game)
	require.NoError(t, err)

	scene.Update(0.1)

	assert.InDelta(t, Gravity*0.1, player.SpeedY, 1e-9)
	assert.Greater(t, player.Y, 10.0)
	assert.Equal(t, []bool{false}, sounds.thrust)
	assert.Equal(t, 2, scene.Len())
}

func TestPlayerThrustSpawnsExhaust(t *testing.T) {
	scene, game, keys, sounds, _ := newTestGame(t, 40, 20)
	player, err := Populate(scene, game)
	require.NoError(t, err)

	keys[input.KeyUp] = true
	keys[input.KeyRight] = true
	for i := 0; i < 5; i++ {
		scene.Update(0.1)
	}

	assert.Less(t, player.SpeedY, 0.0)
	assert.Greater(t, player.SpeedX, 0.0)
	assert.True(t, sounds.thrust[len(sounds.thrust)-1])

	var particles int
	for _, e := range scene.Entities() {
		if p, ok := e.(*RocketParticle); ok {
			particles++
			assert.Same(t, game.Assets.Particle, p.Animation)
			assert.Equal(t, 1, p.Depth)
		}
	}
	assert.Greater(t, particles, 0)
}

func TestPlayerConfinedToField(t *testing.T) {
	scene, game, keys, _, _ := newTestGame(t, 10, 10)
	player, err := Populate(scene, game)
	require.NoError(t, err)

	keys[input.KeyLeft] = true
	for i := 0; i < 50; i++ {
		scene.Update(0.1)
	}

	assert.Equal(t, 0.0, player.X)
	assert.Equal(t, 9.0, player.Y)
	assert.Zero(t, player.SpeedX)
}

func TestRocketParticleExpires(t *testing.T) {
	scene, game, _, _, _ := newTestGame(t, 20, 20)

	rp := NewRocketParticle(game, 5, 5)
	require.NoError(t, scene.Add(rp))
	assert.Equal(t, float64(particleSpeed), rp.Speed)

	scene.Update(0.5)
	assert.True(t, rp.Alive())
	assert.GreaterOrEqual(t, rp.Y, 5.0)

	scene.Update(0.5)
	assert.False(t, rp.Alive())
	assert.Zero(t, scene.Len())
}

func TestStatusBarAdjustsRate(t *testing.T) {
	scene, game, keys, sounds, _ := newTestGame(t, 60, 5)
	require.NoError(t, scene.Add(NewStatusBar(game)))

	keys[input.KeyX] = true
	scene.Update(0.016)
	scene.Update(0.016)
	assert.Equal(t, 62, scene.FPS())

	keys[input.KeyX] = false
	keys[input.KeyZ] = true
	scene.Update(0.016)
	assert.Equal(t, 61, scene.FPS())
	assert.Equal(t, []audio.SoundType{audio.SoundRateUp, audio.SoundRateUp, audio.SoundRateDown}, sounds.cues)

	scene.SetFPS(1)
	scene.Update(0.016)
	assert.Equal(t, 1, scene.FPS())
}

func TestStatusBarDraws(t *testing.T) {
	scene, game, _, _, screen := newTestGame(t, 60, 3)
	sb := NewStatusBar(game)
	require.NoError(t, scene.Add(sb))

	scene.Update(0.02)
	assert.Equal(t, "Delta time:   20 FPS:  50", sb.Timing())

	scene.Render()

	var row strings.Builder
	for x := 0; x < 60; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		row.WriteRune(r)
	}
	line := row.String()
	assert.True(t, strings.HasPrefix(line, "Delta time:   20 FPS:  50"), line)
	assert.True(t, strings.HasSuffix(line, "target 60 fps · 1 objects"), line)
}

func TestStatusBarZeroDelta(t *testing.T) {
	sb := NewStatusBar(&Game{})
	assert.Equal(t, "Delta time:    0 FPS:   0", sb.Timing())
}

func TestLoadAssetsFromDisk(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write(PlayerFile, "\x1b[1;33m/\\\n\x1b[31m||")
	write("circle_particle0.ans", "O")
	write("circle_particle1.ans", "o")
	write("circle_particle10.ans", ".")

	assets, err := LoadAssets(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, assets.Player.Len())
	assert.Equal(t, 2, assets.Player.Width())
	assert.Equal(t, 3, assets.Particle.Len())

	_, err = LoadAssets(t.TempDir())
	assert.Error(t, err)
}

func TestLoadShippedAssets(t *testing.T) {
	assets, err := LoadAssets(filepath.Join("..", "assets"))
	require.NoError(t, err)
	assert.Greater(t, assets.Particle.Len(), 1)
	assert.Greater(t, assets.Player.Height(), ExhaustOffset-1)
}
