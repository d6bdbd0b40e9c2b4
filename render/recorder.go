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

package render

import (
	stdimage "image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/style"
)

// Op identifies a recorded renderer call.
type Op int

const (
	OpOpen Op = iota
	OpClose
	OpSave
	OpRestore
	OpSet
	OpLine
	OpCurve
	OpPolygon
	OpText
	OpSymbol
	OpSymbols
	OpImage
	OpMove
	OpRelLineTo
	OpStroke
	OpClip
)

// A Cmd is one recorded renderer call together with its arguments.
type Cmd struct {
	Op   Op
	Args []any
}

// A Recorder implements [Renderer] by recording all calls.  Text
// metrics are taken from a fixed-width bitmap font, scaled by the
// current font size, so that layout code can be exercised without a
// real output backend.
type Recorder struct {
	Cmds []Cmd

	bbox  bounds.Box
	attrs map[string]style.Value
	saved []map[string]style.Value
}

// NewRecorder returns a recorder with the given device size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		bbox:  bounds.New(0, 0, width, height),
		attrs: map[string]style.Value{},
	}
}

// Count returns the number of recorded calls with the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) record(op Op, args ...any) {
	r.Cmds = append(r.Cmds, Cmd{Op: op, Args: args})
}

// Open implements the [Renderer] interface.
func (r *Recorder) Open() error {
	r.record(OpOpen)
	return nil
}

// Close implements the [Renderer] interface.
func (r *Recorder) Close() error {
	r.record(OpClose)
	return nil
}

// BBox implements the [Renderer] interface.
func (r *Recorder) BBox() bounds.Box {
	return r.bbox
}

// SaveState implements the [Renderer] interface.
func (r *Recorder) SaveState() {
	saved := make(map[string]style.Value, len(r.attrs))
	for k, v := range r.attrs {
		saved[k] = v
	}
	r.saved = append(r.saved, saved)
	r.record(OpSave)
}

// RestoreState implements the [Renderer] interface.
func (r *Recorder) RestoreState() {
	n := len(r.saved) - 1
	r.attrs = r.saved[n]
	r.saved = r.saved[:n]
	r.record(OpRestore)
}

// Set implements the [Renderer] interface.
func (r *Recorder) Set(name string, v style.Value) {
	r.attrs[name] = v
	r.record(OpSet, name, v)
}

// Get implements the [Renderer] interface.
func (r *Recorder) Get(name string) (style.Value, bool) {
	v, ok := r.attrs[name]
	return v, ok
}

// StateDepth returns the current nesting depth of saved states.
func (r *Recorder) StateDepth() int {
	return len(r.saved)
}

// Line implements the [Renderer] interface.
func (r *Recorder) Line(p0, p1 vec.Vec2) {
	r.record(OpLine, p0, p1)
}

// Curve implements the [Renderer] interface.
func (r *Recorder) Curve(points []vec.Vec2) {
	r.record(OpCurve, points)
}

// Polygon implements the [Renderer] interface.
func (r *Recorder) Polygon(points []vec.Vec2) {
	r.record(OpPolygon, points)
}

// Text implements the [Renderer] interface.
func (r *Recorder) Text(pos vec.Vec2, s string, angle float64) {
	r.record(OpText, pos, s, angle)
}

func (r *Recorder) fontScale() float64 {
	if n, ok := r.attrs["fontsize"].(style.Number); ok {
		return float64(n) / 13
	}
	return 1
}

// TextWidth implements the [Renderer] interface.
func (r *Recorder) TextWidth(s string) float64 {
	w := font.MeasureString(basicfont.Face7x13, s)
	return float64(w.Ceil()) * r.fontScale()
}

// TextHeight implements the [Renderer] interface.
func (r *Recorder) TextHeight(s string) float64 {
	m := basicfont.Face7x13.Metrics()
	return float64((m.Ascent + m.Descent).Ceil()) * r.fontScale()
}

// Symbol implements the [Renderer] interface.
func (r *Recorder) Symbol(pos vec.Vec2) {
	r.record(OpSymbol, pos)
}

// Symbols implements the [Renderer] interface.
func (r *Recorder) Symbols(points []vec.Vec2) {
	r.record(OpSymbols, points)
}

// Image implements the [Renderer] interface.
func (r *Recorder) Image(img stdimage.Image, region bounds.Box) {
	r.record(OpImage, img, region)
}

// Move implements the [Renderer] interface.
func (r *Recorder) Move(pos vec.Vec2) {
	r.record(OpMove, pos)
}

// RelLineTo implements the [Renderer] interface.
func (r *Recorder) RelLineTo(d vec.Vec2) {
	r.record(OpRelLineTo, d)
}

// Stroke implements the [Renderer] interface.
func (r *Recorder) Stroke() {
	r.record(OpStroke)
}

// SetClip implements the [Renderer] interface.
func (r *Recorder) SetClip(region bounds.Box) {
	r.record(OpClip, region)
}
