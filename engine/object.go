package engine

import (
	"math"

	"github.com/lixenwraith/asscii/asset"
)

// Object is a positioned, animated entity
type Object struct {
	Component

	X, Y      float64
	Depth     int
	Animation *asset.Animation
	Playhead  float64
	Speed     float64
}

// NewObject creates an object at (x, y) playing anim at one frame per second
func NewObject(x, y float64, anim *asset.Animation) *Object {
	return &Object{X: x, Y: y, Animation: anim, Speed: 1}
}

// Update advances the playhead
func (o *Object) Update(dt float64) {
	o.Playhead += o.Speed * dt
}

// Draw composites the current frame at the object's cell
func (o *Object) Draw() {
	con := o.Console()
	if o.Animation == nil || con == nil {
		return
	}
	x, y := o.Cell()
	o.Animation.Draw(con.Frame(), x, y, o.Depth, o.Playhead)
}

// Cell returns the grid position, rounding toward negative infinity
func (o *Object) Cell() (int, int) {
	return int(math.Floor(o.X)), int(math.Floor(o.Y))
}
