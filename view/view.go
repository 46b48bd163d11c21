// Package view is the interaction core of a page curl surface. A View turns
// pointer input and render ticks into page geometry for a renderer: which of
// three page slots are visible, where they are and how the curling one folds.
//
// All entry points are safe for concurrent use. Typically input arrives from
// the host event loop while Tick runs on the render thread.
package view

import (
	"fmt"
	"image"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/event/touch"

	"dasa.cc/curl/anim"
	"dasa.cc/curl/curl"
	"dasa.cc/curl/geom"
	"dasa.cc/curl/gesture"
	"dasa.cc/curl/layout"
	"dasa.cc/curl/mesh"
)

var logger = log.New(os.Stderr, "view: ", 0)

// PageRequest asks for page content at a pixel size.
type PageRequest struct {
	Role          mesh.Role
	Width, Height int
	Orientation   layout.Orientation
}

// PageProvider supplies page content and receives page events.
//
// UpdatePage is called with the View locked and must not call back into it.
// CurlCompleted and RotateBegan are delivered after the lock is released.
type PageProvider interface {
	// UpdatePage returns front and back images for a page; either may be nil.
	UpdatePage(req PageRequest) (front, back image.Image)

	// CurlCompleted is called once a page has flipped over.
	CurlCompleted()

	// RotateBegan is called when a rotation turns the view to orientation o.
	RotateBegan(o layout.Orientation)
}

// SizeObserver receives layout changes. Calls are delivered with the View
// unlocked.
type SizeObserver interface {
	// PageSizeChanged reports the pixel size page content is rendered at.
	PageSizeChanged(width, height int)

	// ViewSizeChanged is called on resize and after a rotation settles.
	ViewSizeChanged()
}

// State of curl interaction.
type State uint8

const (
	Idle State = iota
	Dragging
	Curling
	Animating
	Curled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Curling:
		return "Curling"
	case Animating:
		return "Animating"
	case Curled:
		return "Curled"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Frame is a snapshot of everything needed to draw a View.
type Frame struct {
	Viewport    layout.Viewport
	View        geom.Rect
	Rotation    float32 // degrees of rotation gesture, clockwise on screen
	Orientation layout.Orientation

	// Meshes are visible slots in draw order. Their textures report Changed
	// once; the View considers them uploaded after the Frame is taken.
	Meshes []mesh.Mesh

	// Animating reports whether further ticks will change the frame.
	Animating bool
}

// View holds page curl state.
type View struct {
	mu sync.Mutex

	dur      time.Duration
	radius   float32
	now      func() time.Time
	logger   *log.Logger
	observer SizeObserver
	provider PageProvider
	request  func()

	layout      layout.Layout
	orientation layout.Orientation
	meshes      *mesh.Set
	pageW       int
	pageH       int

	tracker   gesture.Tracker
	rotation  gesture.Rotation
	primary   touch.Sequence
	held      bool // primary pointer is down
	absorbing bool

	dragging  bool
	curling   bool
	curled    bool
	dragStart f32.Vec2
	pointer   f32.Vec2
	anim      anim.Animation
	lift      geom.Rect

	settling bool
	degrees  float32

	pending []func()
	dirty   bool
}

// Duration sets the length of release transitions.
func Duration(d time.Duration) func(*View) { return func(v *View) { v.dur = d } }

// Radius sets the fold radius in normalized units.
func Radius(r float32) func(*View) { return func(v *View) { v.radius = r } }

// Clock replaces time.Now for animation timing.
func Clock(fn func() time.Time) func(*View) { return func(v *View) { v.now = fn } }

// Logger replaces the package logger.
func Logger(l *log.Logger) func(*View) { return func(v *View) { v.logger = l } }

// Observer sets the SizeObserver.
func Observer(o SizeObserver) func(*View) { return func(v *View) { v.observer = o } }

// Provider sets the PageProvider.
func Provider(p PageProvider) func(*View) { return func(v *View) { v.provider = p } }

// RequestRender sets a func called, unlocked, whenever a new Frame should be
// drawn. Hosts usually send themselves a paint event.
func RequestRender(fn func()) func(*View) { return func(v *View) { v.request = fn } }

// New returns a View with no surface; call Resize or OnSize before input.
func New(options ...func(*View)) *View {
	v := &View{
		dur:    anim.DefaultDuration,
		radius: curl.DefaultRadius,
		now:    time.Now,
		logger: logger,
		meshes: mesh.NewSet(),
	}
	for _, opt := range options {
		opt(v)
	}
	v.rotation.Listener = (*rotationListener)(v)
	v.layout.OnPageSize = v.pageSizeChanged
	return v
}

// unlock releases v and delivers queued callbacks.
func (v *View) unlock() {
	calls := v.pending
	v.pending = nil
	if v.dirty && v.request != nil {
		calls = append(calls, v.request)
	}
	v.dirty = false
	v.mu.Unlock()
	for _, fn := range calls {
		fn()
	}
}

// later queues fn to run once v is unlocked.
func (v *View) later(fn func()) { v.pending = append(v.pending, fn) }

func (v *View) render() { v.dirty = true }

// Tick advances any release transition and rotation settle by wall-clock
// time and returns the frame to draw.
func (v *View) Tick() Frame {
	v.mu.Lock()
	defer v.unlock()

	now := v.now()
	if v.anim.Active() {
		v.advance(now)
	}
	if v.settling {
		v.settle()
	}

	f := Frame{
		Viewport:    v.layout.Viewport,
		View:        v.layout.View,
		Rotation:    v.degrees,
		Orientation: v.orientation,
		Meshes:      v.meshes.Visible(),
		Animating:   v.anim.Active() || v.settling,
	}
	for _, m := range f.Meshes {
		s := v.meshes.Slot(m.Slot)
		for _, side := range sides {
			s.Page.MarkUploaded(side)
		}
	}
	return f
}

// State reports the curl interaction state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case v.curled:
		return Curled
	case v.anim.Active():
		return Animating
	case v.curling:
		return Curling
	case v.dragging:
		return Dragging
	}
	return Idle
}

// Curled reports whether the page has flipped over; new curls are refused
// until Reset.
func (v *View) Curled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.curled
}

// Rotating reports whether a rotation gesture or its settle is in progress.
func (v *View) Rotating() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rotation.Rotating() || v.settling
}

// Rotation returns the current surface rotation in degrees.
func (v *View) Rotation() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.degrees
}

// Orientation returns the orientation pages are laid out for.
func (v *View) Orientation() layout.Orientation {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.orientation
}

// Layout returns a copy of the current page layout.
func (v *View) Layout() layout.Layout {
	v.mu.Lock()
	defer v.mu.Unlock()
	l := v.layout
	l.OnPageSize = nil
	return l
}

// PageSize returns the pixel size pages are requested at.
func (v *View) PageSize() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageW, v.pageH
}

// DragStart returns where the current drag is held, in normalized units.
func (v *View) DragStart() f32.Vec2 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dragStart
}

// Mesh returns a copy of the slot playing role r.
func (v *View) Mesh(r mesh.Role) mesh.Mesh {
	v.mu.Lock()
	defer v.mu.Unlock()
	return *v.meshes.Get(r)
}
