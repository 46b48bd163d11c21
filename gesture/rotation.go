package gesture

import "math"

// Mod returns src modulo divider using truncated division, so the result
// carries the sign of src: Mod(-1, 360) == -1.
func Mod(src, divider float32) float32 {
	return src - divider*float32(int(src/divider))
}

// RotationListener receives rotation gestures in degrees.
type RotationListener interface {
	RotateBegan()
	Rotation(deg float32)
	RotateFinished()
}

// Rotation recognizes a two-pointer twist. Angle contributed by a pair of
// pointers is kept when one of them lifts, so a rotation may be continued
// with a new pair until every pointer is up.
type Rotation struct {
	Listener RotationListener

	start    float32
	rotated  float32
	rotating bool
}

// Rotating reports whether a rotation is in progress.
func (r *Rotation) Rotating() bool { return r.rotating }

// Handle advances the recognizer.
func (r *Rotation) Handle(e Event) {
	switch e.Action {
	case ActionPointerDown:
		if len(e.Pointers) >= 2 {
			r.start = angle(e.Pointers)
		}
	case ActionMove:
		if len(e.Pointers) != 2 {
			return
		}
		if !r.rotating {
			r.rotating = true
			if r.Listener != nil {
				r.Listener.RotateBegan()
			}
		}
		if r.Listener != nil {
			r.Listener.Rotation(Mod(angle(e.Pointers)-r.start+r.rotated, 360))
		}
	case ActionPointerUp:
		if len(e.Pointers) == 2 {
			r.rotated += angle(e.Pointers) - r.start
		}
	case ActionUp:
		r.start, r.rotated = 0, 0
		if r.rotating {
			r.rotating = false
			if r.Listener != nil {
				r.Listener.RotateFinished()
			}
		}
	}
}

// Reset discards any rotation in progress without notifying Listener.
func (r *Rotation) Reset() {
	r.start, r.rotated, r.rotating = 0, 0, false
}

// angle between first two pointers in degrees.
func angle(ps []Pointer) float32 {
	dx := float64(ps[0].X - ps[1].X)
	dy := float64(ps[0].Y - ps[1].Y)
	return float32(math.Atan2(dy, dx) * 180 / math.Pi)
}
