package main

import (
	"testing"

	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/touch"
)

func tev(seq touch.Sequence, x, y float32, typ touch.Type) touch.Event {
	return touch.Event{X: x, Y: y, Sequence: seq, Type: typ}
}

func TestTaps(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []interface{}
		want []bool
	}{
		{
			name: "tap",
			in:   []interface{}{tev(0, 10, 10, touch.TypeBegin), tev(0, 12, 11, touch.TypeMove), tev(0, 12, 11, touch.TypeEnd)},
			want: []bool{false, false, true},
		},
		{
			name: "drag",
			in:   []interface{}{tev(0, 10, 10, touch.TypeBegin), tev(0, 10, 200, touch.TypeMove), tev(0, 10, 200, touch.TypeEnd)},
			want: []bool{false, false, false},
		},
		{
			name: "rotation lifting one finger at a time",
			in: []interface{}{
				tev(0, 10, 10, touch.TypeBegin),
				tev(1, 100, 10, touch.TypeBegin),
				tev(1, 100, 10, touch.TypeEnd),
				tev(0, 10, 10, touch.TypeEnd),
			},
			want: []bool{false, false, false, false},
		},
		{
			name: "tap after rotation",
			in: []interface{}{
				tev(0, 10, 10, touch.TypeBegin),
				tev(1, 100, 10, touch.TypeBegin),
				tev(0, 10, 10, touch.TypeEnd),
				tev(1, 100, 10, touch.TypeEnd),
				tev(2, 50, 50, touch.TypeBegin),
				tev(2, 50, 50, touch.TypeEnd),
			},
			want: []bool{false, false, false, false, false, true},
		},
		{
			name: "mouse",
			in: []interface{}{
				mouse.Event{X: 5, Y: 5, Button: mouse.ButtonLeft, Direction: mouse.DirPress},
				mouse.Event{X: 5, Y: 5, Button: mouse.ButtonRight, Direction: mouse.DirRelease},
				mouse.Event{X: 6, Y: 5, Button: mouse.ButtonLeft, Direction: mouse.DirRelease},
			},
			want: []bool{false, false, true},
		},
		{
			name: "right click",
			in: []interface{}{
				mouse.Event{X: 5, Y: 5, Button: mouse.ButtonRight, Direction: mouse.DirPress},
				mouse.Event{X: 5, Y: 5, Button: mouse.ButtonRight, Direction: mouse.DirRelease},
			},
			want: []bool{false, false},
		},
	} {
		var tap taps
		for i, e := range tc.in {
			if have := tap.filter(e); have != tc.want[i] {
				t.Errorf("%s: event %d: have %v, want %v", tc.name, i, have, tc.want[i])
			}
		}
	}
}
