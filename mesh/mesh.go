// Package mesh holds the three page slots of a curl view and the roles they
// currently play.
package mesh

import (
	"fmt"

	"dasa.cc/curl/curl"
	"dasa.cc/curl/geom"
	"dasa.cc/curl/texture"
)

// Role a slot plays in the view.
type Role int

const (
	// Top is the page above, drawn with its texture flipped.
	Top Role = iota
	// Bottom is the static page below.
	Bottom
	// Curl is the page being dragged or animated.
	Curl

	nroles
)

func (r Role) String() string {
	switch r {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Curl:
		return "Curl"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Mesh is a page slot.
type Mesh struct {
	Slot    int
	Rect    geom.Rect
	Flip    bool // show back texture mirrored
	Fold    curl.Fold
	Curled  bool // Fold is in effect
	Visible bool
	Page    texture.Page
}

// Reset lays m flat.
func (m *Mesh) Reset() {
	m.Fold = curl.Fold{}
	m.Curled = false
}

// Curl folds m.
func (m *Mesh) Curl(f curl.Fold) {
	m.Fold = f
	m.Curled = true
}

func (m Mesh) String() string {
	s := fmt.Sprintf("slot %v %s flip=%v visible=%v", m.Slot, m.Rect, m.Flip, m.Visible)
	if m.Curled {
		s += " " + m.Fold.String()
	}
	return s
}

// Set is a fixed arena of three slots addressed by role. Changing roles swaps
// indices; slots are never reallocated.
type Set struct {
	slots [nroles]Mesh
	roles [nroles]int
}

// NewSet returns slots in their initial roles: top flipped, bottom not.
func NewSet() *Set {
	s := new(Set)
	for i := range s.slots {
		s.slots[i].Slot = i
		s.roles[i] = i
	}
	s.Get(Top).Flip = true
	return s
}

// Get returns the slot playing role r.
func (s *Set) Get(r Role) *Mesh { return &s.slots[s.roles[r]] }

// Slot returns slot i regardless of role.
func (s *Set) Slot(i int) *Mesh { return &s.slots[i] }

// Swap exchanges the slots playing roles a and b.
func (s *Set) Swap(a, b Role) { s.roles[a], s.roles[b] = s.roles[b], s.roles[a] }

// RoleOf returns the role slot i plays.
func (s *Set) RoleOf(i int) Role {
	for r, j := range s.roles {
		if i == j {
			return Role(r)
		}
	}
	panic(fmt.Errorf("slot %v has no role", i))
}

// Reset lays every slot flat with default flips. Roles are kept.
func (s *Set) Reset() {
	for i := range s.slots {
		s.slots[i].Reset()
	}
	s.Get(Top).Flip = true
	s.Get(Bottom).Flip = false
}

// HideAll hides every slot.
func (s *Set) HideAll() {
	for i := range s.slots {
		s.slots[i].Visible = false
	}
}

// Visible returns copies of visible slots in draw order.
func (s *Set) Visible() []Mesh {
	var ms []Mesh
	for r := Top; r < nroles; r++ {
		if m := s.Get(r); m.Visible {
			ms = append(ms, *m)
		}
	}
	return ms
}

// Invalidate marks every slot's textures changed.
func (s *Set) Invalidate() {
	for i := range s.slots {
		s.slots[i].Page.Invalidate()
	}
}
