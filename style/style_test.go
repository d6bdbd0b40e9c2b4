// seehuhn.de/go/plot - a library for drawing scientific plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package style

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tableSource is a minimal Source for tests.
type tableSource map[string]map[string]Value

func (s tableSource) Value(typeName, attr string) (Value, bool) {
	v, ok := s[typeName][attr]
	return v, ok
}

func (s tableSource) Options(typeName string) map[string]Value {
	return s[typeName]
}

func TestDefaultChain(t *testing.T) {
	src := tableSource{
		"component": {
			"linecolor": String("black"),
			"linewidth": Number(1),
		},
		"curve": {
			"linecolor": String("blue"),
		},
	}
	a := NewAttributeSet(src, []string{"component", "curve"}, LineRename)

	// the more specific tag wins
	v, err := a.Get("color")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(String("blue"), v); d != "" {
		t.Error(d)
	}

	// attributes only configured for the general tag are inherited
	v, err = a.Get("width")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Number(1), v); d != "" {
		t.Error(d)
	}

	// overrides win over configured defaults
	a.Set("color", String("red"))
	v, _ = a.Get("color")
	if d := cmp.Diff(String("red"), v); d != "" {
		t.Error(d)
	}
}

func TestNotFound(t *testing.T) {
	a := NewAttributeSet(nil, nil, nil)
	_, err := a.Get("linetype")
	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestRename(t *testing.T) {
	a := NewAttributeSet(nil, nil, TextRename)
	a.Set("size", Number(2.5))
	if _, ok := a.All()[FontSize]; !ok {
		t.Error(`"size" was not renamed to fontsize`)
	}
}

// recordingDevice records Set calls and tracks state nesting.
type recordingDevice struct {
	stack []map[string]Value
	attrs map[string]Value
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{attrs: map[string]Value{}}
}

func (d *recordingDevice) SaveState() {
	saved := make(map[string]Value, len(d.attrs))
	for k, v := range d.attrs {
		saved[k] = v
	}
	d.stack = append(d.stack, saved)
}

func (d *recordingDevice) RestoreState() {
	n := len(d.stack) - 1
	d.attrs = d.stack[n]
	d.stack = d.stack[:n]
}

func (d *recordingDevice) Set(name string, v Value) {
	d.attrs[name] = v
}

func TestStackBalance(t *testing.T) {
	dev := newRecordingDevice()
	dev.Set("linecolor", String("black"))
	s := NewStack(dev, 400, 300)

	s.Push(Dict{LineColor: String("red")})
	s.Push(Dict{LineColor: String("green"), LineType: String("dotted")})
	if d := cmp.Diff(String("green"), dev.attrs["linecolor"]); d != "" {
		t.Error(d)
	}
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(String("red"), dev.attrs["linecolor"]); d != "" {
		t.Error(d)
	}
	if _, ok := dev.attrs["linetype"]; ok {
		t.Error("linetype survived Pop")
	}
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(String("black"), dev.attrs["linecolor"]); d != "" {
		t.Error(d)
	}
	if s.Depth() != 0 {
		t.Errorf("depth = %d after balanced sequence", s.Depth())
	}
	if err := s.Pop(); err == nil {
		t.Error("unbalanced Pop did not fail")
	}
}

func TestStackSizeConversion(t *testing.T) {
	dev := newRecordingDevice()
	s := NewStack(dev, 400, 300)
	s.Push(Dict{
		FontSize:  Number(5),
		LineColor: String("black"),
	})
	want := 5.0 / 100 * math.Sqrt(8) * 400 * 300 / 700
	got, ok := dev.attrs["fontsize"].(Number)
	if !ok || math.Abs(float64(got)-want) > 1e-9 {
		t.Errorf("fontsize = %v, want %g", dev.attrs["fontsize"], want)
	}
	// non-size keys pass through unmodified
	if d := cmp.Diff(String("black"), dev.attrs["linecolor"]); d != "" {
		t.Error(d)
	}
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
}

func TestYardstick(t *testing.T) {
	got := Yardstick(400, 300)
	want := math.Sqrt(8) * 400 * 300 / 700
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("got %g, want %g", got, want)
	}
}
