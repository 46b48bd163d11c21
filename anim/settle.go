package anim

// Rotation settle defaults.
const (
	MaxDegrees  = 90
	StepDegrees = 3

	// TurnDegrees is the rotation at or past which a released rotation snaps
	// to a quarter turn instead of back to zero.
	TurnDegrees = 45
)

// ClampDegrees limits a live rotation to +-MaxDegrees.
func ClampDegrees(deg float32) float32 {
	if deg < 0 {
		if deg < -MaxDegrees {
			return -MaxDegrees
		}
		return deg
	}
	if deg > MaxDegrees {
		return MaxDegrees
	}
	return deg
}

// Settle steps a released rotation one frame toward rest: toward zero below
// TurnDegrees, otherwise toward +-MaxDegrees. It reports done when rotation
// is at zero or a full quarter turn, in which case the returned angle is
// zero.
func Settle(deg float32) (next float32, done bool) {
	abs := deg
	if abs < 0 {
		abs = -abs
	}
	if abs == 0 || abs >= MaxDegrees {
		return 0, true
	}
	if abs < TurnDegrees {
		if deg < 0 {
			return min(deg+StepDegrees, 0), false
		}
		return max(deg-StepDegrees, 0), false
	}
	if deg < 0 {
		return max(deg-StepDegrees, -MaxDegrees), false
	}
	return min(deg+StepDegrees, MaxDegrees), false
}
