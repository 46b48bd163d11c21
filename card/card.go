// Package card draws playing card pages for a curl view. The front is a
// patterned cover, optionally filled with cover art; the back shows the card
// value.
package card

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/exp/shiny/materialdesign/colornames"

	"dasa.cc/curl/layout"
	"dasa.cc/curl/view"
)

var logger = log.New(os.Stderr, "card: ", 0)

// Value of a card, 1 (ace) through 13 (king).
type Value int

const (
	Ace  Value = 1
	King Value = 13
)

func (v Value) String() string {
	switch v {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	}
	return fmt.Sprint(int(v))
}

// Next returns the value after v, wrapping king to ace.
func (v Value) Next() Value {
	if v >= King || v < Ace {
		return Ace
	}
	return v + 1
}

// Palette colors card sides.
type Palette struct {
	Front, FrontAccent color.Color
	Back, BackAccent   color.Color
}

var DefaultPalette = Palette{
	Front:       colornames.Blue700,
	FrontAccent: colornames.Blue200,
	Back:        colornames.Red700,
	BackAccent:  colornames.Grey50,
}

type key struct {
	w, h  int
	o     layout.Orientation
	value Value
}

// Deck is a view.PageProvider dealing one card at a time.
type Deck struct {
	mu sync.Mutex

	value   Value
	cover   image.Image
	palette Palette
	interp  resize.InterpolationFunction
	hint    string

	orientation layout.Orientation
	completed   int

	cached key
	front  image.Image
	back   image.Image
}

func WithValue(v Value) func(*Deck) { return func(d *Deck) { d.value = v } }

// Cover sets art drawn inside the front border, scaled to fit.
func Cover(img image.Image) func(*Deck) { return func(d *Deck) { d.cover = img } }

func WithPalette(p Palette) func(*Deck) { return func(d *Deck) { d.palette = p } }

// Interp sets the interpolation cover art is scaled with.
func Interp(fn resize.InterpolationFunction) func(*Deck) { return func(d *Deck) { d.interp = fn } }

// Hint sets the text drawn at the center of the front; empty draws none.
func Hint(s string) func(*Deck) { return func(d *Deck) { d.hint = s } }

func New(options ...func(*Deck)) *Deck {
	d := &Deck{
		value:   Ace,
		palette: DefaultPalette,
		interp:  resize.Bilinear,
		hint:    "pinch to rotate",
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// UpdatePage draws the current card at the requested size and orientation.
// Pages are cached until size, orientation or value change.
func (d *Deck) UpdatePage(req view.PageRequest) (front, back image.Image) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if req.Width <= 0 || req.Height <= 0 {
		return nil, nil
	}
	k := key{req.Width, req.Height, req.Orientation, d.value}
	if d.front != nil && d.cached == k {
		return d.front, d.back
	}

	// art is drawn upright then turned into the page
	w, h := req.Width, req.Height
	if req.Orientation.Landscape() {
		w, h = h, w
	}
	d.front = Rotate(d.drawFront(w, h), req.Orientation)
	d.back = Rotate(d.drawBack(w, h), req.Orientation)
	d.cached = k
	return d.front, d.back
}

// CurlCompleted counts the flip; the next card is dealt by Next.
func (d *Deck) CurlCompleted() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.completed++
	logger.Printf("card %v flipped (%v total)", d.value, d.completed)
}

func (d *Deck) RotateBegan(o layout.Orientation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.orientation = o
}

// Next deals the following card and returns its value. Callers reset the
// view to show it.
func (d *Deck) Next() Value {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = d.value.Next()
	return d.value
}

func (d *Deck) Value() Value {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Completed returns the number of flips seen.
func (d *Deck) Completed() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.completed
}

// Orientation returns the orientation last reported by RotateBegan.
func (d *Deck) Orientation() layout.Orientation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.orientation
}
