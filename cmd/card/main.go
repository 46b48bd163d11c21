// Command card shows a playing card that can be curled over with a drag from
// its bottom edge and turned with a two finger rotation.
//
// Once the card has flipped, a tap deals the next card. On desktop, r resets,
// space rotates and escape quits.
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"dasa.cc/curl/anim"
	"dasa.cc/curl/card"
	"dasa.cc/curl/curl"
	"dasa.cc/curl/glw"
	"dasa.cc/curl/view"
)

var (
	flagDur    = flag.Duration("dur", anim.DefaultDuration, "length of release transitions.")
	flagRadius = flag.Float64("radius", curl.DefaultRadius, "fold radius in normalized units.")
	flagValue  = flag.Int("value", int(card.Ace), "first card value, 1 through 13.")
	flagFront  = flag.String("front", "", "asset drawn on the card front.")
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("card: ")
}

// observer repaints the view on layout changes.
type observer struct{ a app.App }

func (o observer) PageSizeChanged(w, h int) { log.Printf("page size %vx%v", w, h) }
func (o observer) ViewSizeChanged()         { o.a.Send(paint.Event{}) }

func loadFront(name string) image.Image {
	if name == "" {
		return nil
	}
	f, err := glw.ReadAsset(name)
	if err != nil {
		log.Printf("front: %v", err)
		return nil
	}
	m, err := decode(f)
	if err != nil {
		log.Printf("front %s: %v", name, err)
		return nil
	}
	return m
}

func main() {
	flag.Parse()

	app.Main(func(a app.App) {
		opts := []func(*card.Deck){card.WithValue(card.Value(*flagValue))}
		if m := loadFront(*flagFront); m != nil {
			opts = append(opts, card.Cover(m))
		}
		deck := card.New(opts...)

		v := view.New(
			view.Duration(*flagDur),
			view.Radius(float32(*flagRadius)),
			view.Provider(deck),
			view.Observer(observer{a}),
			view.RequestRender(func() { a.Send(paint.Event{}) }),
		)

		var (
			r     renderer
			tap   taps
			glctx gl.Context
		)
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					r.create(glctx)
					v.OnSurfaceCreated()
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					r.destroy()
					glctx = nil
				}
				if e.Crosses(lifecycle.StageAlive) == lifecycle.CrossOff {
					return
				}
			case size.Event:
				v.OnSize(e)
			case paint.Event:
				if glctx == nil || e.External {
					continue
				}
				start := time.Now()
				f := v.Tick()
				r.draw(f)
				a.Publish()
				if f.Animating {
					a.Send(paint.Event{})
				} else if d := time.Since(start); d > 16*time.Millisecond {
					log.Printf("slow frame %v", d)
				}
			case touch.Event:
				v.OnTouch(e)
				if tap.filter(e) && dealable(v) {
					deal(v, deck)
				}
			case mouse.Event:
				v.OnMouse(e)
				if tap.filter(e) && dealable(v) {
					deal(v, deck)
				}
			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch e.Code {
				case key.CodeEscape:
					os.Exit(0)
				case key.CodeR:
					v.Reset()
				case key.CodeSpacebar:
					v.Rotate()
				}
			}
		}
	})
}

// dealable reports whether the card has flipped and is at rest.
func dealable(v *view.View) bool { return v.Curled() && !v.Rotating() }

// deal shows the next card.
func deal(v *view.View, deck *card.Deck) {
	log.Printf("dealt %v", deck.Next())
	v.Reset()
}
