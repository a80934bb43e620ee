package engine

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/asscii/console"
	"github.com/lixenwraith/asscii/core"
	"github.com/lixenwraith/asscii/status"
)

// ErrRunning is returned by Run on a scene that has already been started
var ErrRunning = errors.New("scene already started")

// Metric keys published by the scene
const (
	MetricTicks    = "scene.ticks"
	MetricEntities = "scene.entities"
	MetricFPS      = "scene.fps"
	MetricDeltaMs  = "scene.delta_ms"
)

// Options configures a scene
type Options struct {
	FPS       int
	CarryOver bool
	// Clock defaults to the system clock
	Clock Clock
	// Metrics defaults to a private registry
	Metrics *status.Registry
	// Seed for the shared random source; zero picks one from the clock
	Seed int64
}

// Scene owns the console and the live entities, and runs the tick loop
type Scene struct {
	console  *console.Console
	registry *Registry
	pacer    *Pacer
	rng      *rand.Rand

	metrics      *status.Registry
	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statFPS      *atomic.Int64
	statDelta    *status.AtomicFloat

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  atomic.Bool
}

// NewScene creates a scene drawing into con
func NewScene(con *console.Console, opts Options) *Scene {
	clock := opts.Clock
	if clock == nil {
		clock = NewSystemClock()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}

	s := &Scene{
		console:      con,
		registry:     NewRegistry(),
		pacer:        NewPacer(clock, opts.FPS, opts.CarryOver),
		rng:          rand.New(rand.NewSource(seed)),
		metrics:      metrics,
		statTicks:    metrics.Ints.Get(MetricTicks),
		statEntities: metrics.Ints.Get(MetricEntities),
		statFPS:      metrics.Ints.Get(MetricFPS),
		statDelta:    metrics.Floats.Get(MetricDeltaMs),
		stopChan:     make(chan struct{}),
	}
	s.statFPS.Store(int64(s.pacer.FPS()))
	return s
}

// Console returns the draw target
func (s *Scene) Console() *console.Console {
	return s.console
}

// Rand returns the shared random source; only the ticker may use it once running
func (s *Scene) Rand() *rand.Rand {
	return s.rng
}

// Metrics returns the registry the scene publishes into
func (s *Scene) Metrics() *status.Registry {
	return s.metrics
}

// Len returns the number of live entities
func (s *Scene) Len() int {
	return s.registry.Len()
}

// Entities returns the live entities in ID order
func (s *Scene) Entities() []Entity {
	return s.registry.Snapshot()
}

// FPS returns the target tick rate
func (s *Scene) FPS() int {
	return s.pacer.FPS()
}

// SetFPS changes the tick rate from the next tick on, clamped to at least 1
func (s *Scene) SetFPS(fps int) {
	s.pacer.SetFPS(fps)
	s.statFPS.Store(int64(s.pacer.FPS()))
}

// Add attaches e, assigns its ID and runs its Created hook
// Entities added during Update are first updated on the next tick
func (s *Scene) Add(e Entity) error {
	if _, err := s.registry.attach(e, s); err != nil {
		return err
	}
	e.Created()
	s.statEntities.Store(int64(s.registry.Len()))
	return nil
}

// Remove detaches e and runs its Removed hook; removing a non-live entity does nothing
func (s *Scene) Remove(e Entity) {
	if !s.registry.Remove(e) {
		return
	}
	e.Removed()
	s.statEntities.Store(int64(s.registry.Len()))
}

// Update runs one update phase over the entities live at its start
func (s *Scene) Update(dt float64) {
	for _, e := range s.registry.Snapshot() {
		if !e.Base().Alive() {
			continue
		}
		e.Update(dt)
	}
}

// Render draws every live entity and flushes the console
func (s *Scene) Render() {
	for _, e := range s.registry.Snapshot() {
		if !e.Base().Alive() {
			continue
		}
		e.Draw()
	}
	s.console.Render()
}

// Step runs one update and render with an explicit delta
func (s *Scene) Step(delta time.Duration) {
	s.Update(delta.Seconds())
	s.Render()

	s.statTicks.Add(1)
	s.statDelta.Store(float64(delta) / float64(time.Millisecond))
}

// Run starts the ticker and blocks until Stop or ctx cancellation
// It returns after the ticker has finished its current tick
func (s *Scene) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrRunning
	}

	s.pacer.Reset()
	s.wg.Add(1)
	core.Go(s.tickerLoop)
	log.Printf("scene: running at %d fps with %d entities", s.FPS(), s.Len())

	select {
	case <-ctx.Done():
		s.Stop()
	case <-s.stopChan:
	}
	s.wg.Wait()

	log.Printf("scene: stopped after %d ticks", s.statTicks.Load())
	return nil
}

// Stop ends the loop; it is safe to call more than once and from any goroutine
func (s *Scene) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

// Done is closed once Stop has been requested
func (s *Scene) Done() <-chan struct{} {
	return s.stopChan
}

func (s *Scene) tickerLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		delta := s.pacer.Wait()

		select {
		case <-s.stopChan:
			return
		default:
		}

		s.Step(delta)
	}
}
