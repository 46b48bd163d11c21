package layout

import "fmt"

// Orientation of page content relative to the device. Values are in
// clockwise cyclic order so a quarter turn is a step along the cycle.
type Orientation uint8

const (
	Portrait Orientation = iota
	LandscapeRight
	PortraitUpsideDown
	LandscapeLeft

	norientations = 4
)

func (o Orientation) Landscape() bool { return o == LandscapeLeft || o == LandscapeRight }

// Turn returns the orientation one quarter turn away, counter-clockwise if ccw.
func (o Orientation) Turn(ccw bool) Orientation {
	d := 1
	if ccw {
		d = -1
	}
	return Orientation(pmod(int(o)+d, norientations))
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "Portrait"
	case LandscapeRight:
		return "LandscapeRight"
	case PortraitUpsideDown:
		return "PortraitUpsideDown"
	case LandscapeLeft:
		return "LandscapeLeft"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Degrees returns the clockwise rotation content must be drawn with.
func (o Orientation) Degrees() float64 {
	switch o {
	case LandscapeRight:
		return 90
	case PortraitUpsideDown:
		return 180
	case LandscapeLeft:
		return 270
	}
	return 0
}

// pmod returns positive modulo for inputs.
func pmod(x, n int) int { return (x%n + n) % n }
