// Package anim drives release transitions of a curled page. Nothing here owns
// a timer or goroutine; callers step animations from their render tick with
// the current wall clock.
package anim

import (
	"fmt"
	"time"

	"golang.org/x/image/math/f32"

	"dasa.cc/curl/geom"
)

// DefaultDuration of a release transition.
const DefaultDuration = 500 * time.Millisecond

// Smoothstep eases u in [0,1] out to rest: fast start, zero slope at u=1.
func Smoothstep(u float32) float32 {
	t := 1 - geom.Clamp(u, 0, 1)
	return 1 - t*t*t*(3-2*t)
}

// Lift returns the vertical distance a committed page slides on a tick at
// progress u in [0,1]; it decays from 1/16 to 0.
func Lift(u float32) float32 {
	u = geom.Clamp(u, 0, 1)
	return (1 - u*u*u*u) / 16
}

// Event is the terminal state a release transition animates toward.
type Event uint8

const (
	None Event = iota

	// CurlToBottom retracts the curl; the page stays unflipped.
	CurlToBottom

	// CurlToTop commits the curl; the page flips over.
	CurlToTop
)

func (e Event) String() string {
	switch e {
	case None:
		return "None"
	case CurlToBottom:
		return "CurlToBottom"
	case CurlToTop:
		return "CurlToTop"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

// Phase of an animation at a given time.
type Phase uint8

const (
	// Ease moves the virtual pointer from Source to Target.
	Ease Phase = iota

	// Lifting lays a committed page flat and slides it into place.
	Lifting

	// Done means the animation reached its terminal state.
	Done
)

// Animation simulates a pointer moving from Source to Target after release.
type Animation struct {
	Source, Target f32.Vec2
	Epoch          time.Time
	Dur            time.Duration
	Event          Event

	// Interp defaults to Smoothstep.
	Interp func(float32) float32
}

// Active reports whether a is a transition in flight.
func (a Animation) Active() bool { return a.Event != None }

// Elapsed returns time since Epoch, never negative.
func (a Animation) Elapsed(now time.Time) time.Duration {
	if d := now.Sub(a.Epoch); d > 0 {
		return d
	}
	return 0
}

// Phase returns the phase at now. CurlToBottom completes after Dur, CurlToTop
// spends a second Dur settling before completing.
func (a Animation) Phase(now time.Time) Phase {
	since := a.Elapsed(now)
	switch {
	case since < a.Dur:
		return Ease
	case a.Event == CurlToTop && since < 2*a.Dur:
		return Lifting
	}
	return Done
}

// Pointer returns the eased pointer position at now.
func (a Animation) Pointer(now time.Time) f32.Vec2 {
	if a.Dur <= 0 {
		return a.Target
	}
	interp := a.Interp
	if interp == nil {
		interp = Smoothstep
	}
	u := float32(a.Elapsed(now)) / float32(a.Dur)
	return geom.Lerp(a.Source, a.Target, interp(u))
}

// Lift returns the slide distance for the settle phase at now.
func (a Animation) Lift(now time.Time) float32 {
	if a.Dur <= 0 {
		return 0
	}
	return Lift(float32(a.Elapsed(now)) / float32(2*a.Dur))
}
