package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"dasa.cc/curl/card"
	"dasa.cc/curl/layout"
	"dasa.cc/curl/mesh"
	"dasa.cc/curl/texture"
	"dasa.cc/curl/view"
)

// frameTime is the clock step of tick and run.
const frameTime = 16 * time.Millisecond

// maxFrames bounds run.
const maxFrames = 1000

var roles = map[string]mesh.Role{"Top": mesh.Top, "Bottom": mesh.Bottom, "Curl": mesh.Curl}

var sideNames = map[string]texture.Side{"Front": texture.Front, "Back": texture.Back}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("size"),
	readline.PcItem("down"),
	readline.PcItem("move"),
	readline.PcItem("up"),
	readline.PcItem("tick"),
	readline.PcItem("run"),
	readline.PcItem("rotate"),
	readline.PcItem("reset"),
	readline.PcItem("state"),
	readline.PcItem("load"),
	readline.PcItem("deal"),
	readline.PcItem("save", sideCompleters()...),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

// sideCompleters completes save's role then side.
func sideCompleters() []readline.PrefixCompleterInterface {
	var names []string
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name, readline.PcItem("Front"), readline.PcItem("Back"))
	}
	return items
}

// shell drives a View, reporting callbacks as they happen.
type shell struct {
	out    io.Writer
	logger *log.Logger
	now    time.Time
	v      *view.View
	deck   *card.Deck
}

// reporter prints provider and observer callbacks.
type reporter struct {
	view.PageProvider
	out io.Writer
}

func (r reporter) CurlCompleted() {
	fmt.Fprintln(r.out, "< curl completed")
	r.PageProvider.CurlCompleted()
}

func (r reporter) RotateBegan(o layout.Orientation) {
	fmt.Fprintf(r.out, "< rotate began %v\n", o)
	r.PageProvider.RotateBegan(o)
}

func (r reporter) PageSizeChanged(w, h int) { fmt.Fprintf(r.out, "< page size %vx%v\n", w, h) }
func (r reporter) ViewSizeChanged()         { fmt.Fprintln(r.out, "< view size changed") }

func newShell(out io.Writer, radius float32, dur time.Duration) *shell {
	sh := &shell{
		out:    out,
		logger: log.New(out, "view: ", 0),
		now:    time.Unix(0, 0),
		deck:   card.New(),
	}
	sh.v = view.New(
		view.Duration(dur),
		view.Radius(radius),
		view.Clock(func() time.Time { return sh.now }),
		view.Logger(sh.logger),
		view.Observer(reporter{out: out}),
		view.Provider(reporter{sh.deck, out}),
	)
	return sh
}

var errUsage = errors.New("bad arguments, see help")

func floats(args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, errUsage
	}
	xs := make([]float32, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		xs[i] = float32(x)
	}
	return xs, nil
}

func itoa(n int) string     { return strconv.Itoa(n) }
func ftoa(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

const usage = `size W H [PPT]     resize surface in pixels
down X Y [ID]      pointer down at normalized X Y
move X Y [ID]      pointer move
up X Y [ID]        pointer up
tick [DUR]         advance clock by DUR (16ms) and draw a frame
run                tick until nothing animates
rotate             turn orientation a quarter
reset              reset view to its initial state
state              print view state
load [FRONT [BACK]] use page images; no arguments deals cards
deal               deal the next card
save ROLE SIDE F   encode packed page texture as webp
quit`

func (sh *shell) exec(cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprintln(sh.out, usage)
	case "size":
		xs, err := floats(args, 2)
		if err != nil {
			return err
		}
		ppt := float32(160.0 / 72)
		if len(xs) > 2 {
			ppt = xs[2]
		}
		sh.v.OnSize(size.Event{WidthPx: int(xs[0]), HeightPx: int(xs[1]), PixelsPerPt: ppt})
	case "down":
		return sh.touch(touch.TypeBegin, args)
	case "move":
		return sh.touch(touch.TypeMove, args)
	case "up":
		return sh.touch(touch.TypeEnd, args)
	case "tick":
		d := frameTime
		if len(args) > 0 {
			var err error
			if d, err = time.ParseDuration(args[0]); err != nil {
				return err
			}
		}
		sh.now = sh.now.Add(d)
		sh.printFrame(sh.v.Tick())
	case "run":
		n := 0
		for n < maxFrames {
			n++
			sh.now = sh.now.Add(frameTime)
			if !sh.v.Tick().Animating {
				break
			}
		}
		fmt.Fprintf(sh.out, "%v frames\n", n)
		sh.printState()
	case "rotate":
		sh.v.Rotate()
	case "reset":
		sh.v.Reset()
	case "state":
		sh.printState()
	case "deal":
		fmt.Fprintf(sh.out, "dealt %v\n", sh.deck.Next())
		sh.v.SetProvider(reporter{sh.deck, sh.out})
		sh.v.Reset()
	case "load":
		return sh.load(args)
	case "save":
		if len(args) != 3 {
			return errUsage
		}
		role, ok := roles[args[0]]
		if !ok {
			return fmt.Errorf("unknown role %q", args[0])
		}
		side, ok := sideNames[args[1]]
		if !ok {
			return fmt.Errorf("unknown side %q", args[1])
		}
		m := sh.v.Mesh(role)
		pix, uv := m.Page.Texture(side)
		if pix == nil {
			return fmt.Errorf("%v %v has no texture", role, side)
		}
		if err := save(args[2], pix); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "saved %v %v %v\n", args[2], pix.Bounds().Size(), uv)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (sh *shell) load(args []string) error {
	if len(args) == 0 {
		sh.v.SetProvider(reporter{sh.deck, sh.out})
		return nil
	}
	var (
		f   files
		err error
	)
	if f.front, err = open(args[0]); err != nil {
		return err
	}
	if len(args) > 1 {
		if f.back, err = open(args[1]); err != nil {
			return err
		}
	}
	sh.v.SetProvider(reporter{&f, sh.out})
	return nil
}

func (sh *shell) touch(typ touch.Type, args []string) error {
	xs, err := floats(args, 2)
	if err != nil {
		return err
	}
	var seq touch.Sequence
	if len(xs) > 2 {
		seq = touch.Sequence(xs[2])
	}
	px, py := sh.v.Layout().Viewport.ToPixels(f32.Vec2{xs[0], xs[1]})
	sh.v.OnTouch(touch.Event{X: px, Y: py, Sequence: seq, Type: typ})
	return nil
}

func (sh *shell) printFrame(f view.Frame) {
	fmt.Fprintf(sh.out, "%v rotation=%.1f animating=%v\n", f.Orientation, f.Rotation, f.Animating)
	for _, m := range f.Meshes {
		fmt.Fprintf(sh.out, "  %v %s\n", sh.roleOf(m), m)
	}
}

func (sh *shell) roleOf(m mesh.Mesh) mesh.Role {
	for _, r := range []mesh.Role{mesh.Top, mesh.Bottom, mesh.Curl} {
		if sh.v.Mesh(r).Slot == m.Slot {
			return r
		}
	}
	return -1
}

func (sh *shell) printState() {
	l := sh.v.Layout()
	w, h := sh.v.PageSize()
	var b strings.Builder
	fmt.Fprintf(&b, "state %v, %v, rotation %.1f\n", sh.v.State(), sh.v.Orientation(), sh.v.Rotation())
	fmt.Fprintf(&b, "viewport %vx%v density %.2f, page %vx%v\n", l.Viewport.WidthPx, l.Viewport.HeightPx, l.Viewport.Density, w, h)
	fmt.Fprintf(&b, "top %v\nbottom %v\n", l.Top, l.Bottom)
	for _, r := range []mesh.Role{mesh.Top, mesh.Bottom, mesh.Curl} {
		fmt.Fprintf(&b, "  %v %s\n", r, sh.v.Mesh(r))
	}
	io.WriteString(sh.out, b.String())
}
