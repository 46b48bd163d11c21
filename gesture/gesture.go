// Package gesture turns x/mobile touch and mouse events into multi-pointer
// events and recognizes two-finger rotation.
package gesture

import (
	"fmt"
	"time"

	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

type Type uint8

const (
	TypeBegin Type = 1 << iota
	TypeMove
	TypeEnd

	TypeInvalid Type = 0
)

func (t Type) String() string {
	switch t {
	case TypeBegin:
		return "Begin"
	case TypeMove:
		return "Move"
	case TypeEnd:
		return "End"
	case TypeInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// typeFor maps touch types and mouse directions. Scroll steps have no
// pointer semantics and map to TypeInvalid.
func typeFor(t interface{}) Type {
	switch t {
	case touch.TypeBegin, mouse.DirPress:
		return TypeBegin
	case touch.TypeEnd, mouse.DirRelease:
		return TypeEnd
	case touch.TypeMove, mouse.DirNone:
		return TypeMove
	default:
		return TypeInvalid
	}
}

// Action classifies an Event relative to the set of active pointers.
type Action uint8

const (
	// ActionDown is the first pointer going down.
	ActionDown Action = iota
	// ActionPointerDown is an additional pointer going down.
	ActionPointerDown
	ActionMove
	// ActionPointerUp is a pointer going up while others remain.
	ActionPointerUp
	// ActionUp is the last pointer going up.
	ActionUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionPointerDown:
		return "PointerDown"
	case ActionMove:
		return "Move"
	case ActionPointerUp:
		return "PointerUp"
	case ActionUp:
		return "Up"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Pointer is an active pointer in pixels.
type Pointer struct {
	ID   touch.Sequence
	X, Y float32
}

// Event is a snapshot of all active pointers when one of them changed.
// For up actions, Pointers still holds the pointer going up.
type Event struct {
	Action   Action
	Index    int // index into Pointers of the pointer that changed
	Pointers []Pointer
	Time     time.Time
}

// Pointer returns the pointer that changed.
func (e Event) Pointer() Pointer { return e.Pointers[e.Index] }

func (e Event) GoString() string {
	return fmt.Sprintf("%T{Action:%v Index:%v Pointers:%v Time:%s}", e, e.Action, e.Index, e.Pointers, e.Time.Format("15:04:05.000"))
}

var now = time.Now

// Tracker follows active pointers across events. The zero value is ready
// for use. Mouse input is reported as pointer 0 while the left button is
// held.
type Tracker struct {
	pointers []Pointer
	mouse    bool
}

// Len returns number of active pointers.
func (t *Tracker) Len() int { return len(t.pointers) }

// Filter consumes a touch.Event or mouse.Event and reports the resulting
// Event. Other values, stale moves, and unmatched ends report false.
func (t *Tracker) Filter(e interface{}) (Event, bool) {
	var (
		p   Pointer
		typ Type
	)
	switch e := e.(type) {
	case touch.Event:
		p, typ = Pointer{ID: e.Sequence, X: e.X, Y: e.Y}, typeFor(e.Type)
	case mouse.Event:
		typ = typeFor(e.Direction)
		switch {
		case typ == TypeBegin && e.Button == mouse.ButtonLeft:
			t.mouse = true
		case typ == TypeBegin:
			return Event{}, false
		case !t.mouse, typ == TypeEnd && e.Button != mouse.ButtonLeft:
			return Event{}, false
		case typ == TypeEnd:
			t.mouse = false
		}
		p = Pointer{ID: 0, X: e.X, Y: e.Y}
	default:
		return Event{}, false
	}

	i := t.index(p.ID)
	switch typ {
	case TypeBegin:
		if i != -1 {
			// duplicate begin; treat as a move of the tracked pointer
			t.pointers[i] = p
			return t.event(ActionMove, i), true
		}
		action := ActionPointerDown
		if len(t.pointers) == 0 {
			action = ActionDown
		}
		t.pointers = append(t.pointers, p)
		return t.event(action, len(t.pointers)-1), true
	case TypeMove:
		if i == -1 {
			return Event{}, false
		}
		t.pointers[i] = p
		return t.event(ActionMove, i), true
	case TypeEnd:
		if i == -1 {
			return Event{}, false
		}
		t.pointers[i] = p
		action := ActionPointerUp
		if len(t.pointers) == 1 {
			action = ActionUp
		}
		ev := t.event(action, i)
		t.pointers = append(t.pointers[:i], t.pointers[i+1:]...)
		return ev, true
	}
	return Event{}, false
}

// Reset forgets all active pointers.
func (t *Tracker) Reset() {
	t.pointers = t.pointers[:0]
	t.mouse = false
}

func (t *Tracker) index(id touch.Sequence) int {
	for i, p := range t.pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) event(a Action, i int) Event {
	ps := make([]Pointer, len(t.pointers))
	copy(ps, t.pointers)
	return Event{Action: a, Index: i, Pointers: ps, Time: now()}
}
