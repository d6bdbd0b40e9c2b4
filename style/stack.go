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

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Yardstick returns the size unit used for percentage-based style
// values on a device of the given dimensions.
func Yardstick(width, height float64) float64 {
	return math.Sqrt(8) * width * height / (width + height)
}

// RelativeSize converts a percentage-based size value to device units.
func RelativeSize(v, width, height float64) float64 {
	return v / 100 * Yardstick(width, height)
}

// Device is the part of the renderer contract used by the style stack.
type Device interface {
	SaveState()
	RestoreState()
	Set(name string, v Value)
}

// sizeKeys are specified in percent of the device yardstick and are
// converted to absolute units before reaching the device.
var sizeKeys = map[Key]bool{
	FontSize:   true,
	LineWidth:  true,
	SymbolSize: true,
}

// A Stack applies style attributes to a drawing device, saving and
// restoring the device state.  Every Push must be matched by exactly
// one Pop.
type Stack struct {
	dev           Device
	width, height float64
	depth         int
}

// NewStack returns a style stack for the given device dimensions.
func NewStack(dev Device, width, height float64) *Stack {
	return &Stack{dev: dev, width: width, height: height}
}

// Push saves the device state and applies the given attributes.  Font
// size, line width and symbol size are converted from percent of the
// device yardstick to absolute units; all other values pass through
// unmodified.
func (s *Stack) Push(attrs Dict) {
	s.dev.SaveState()
	s.depth++
	keys := maps.Keys(attrs)
	slices.Sort(keys)
	for _, k := range keys {
		v := attrs[k]
		if sizeKeys[k] {
			if n, ok := v.(Number); ok {
				v = Number(RelativeSize(float64(n), s.width, s.height))
			}
		}
		s.dev.Set(string(k), v)
	}
}

// Pop restores the device state saved by the matching Push.
func (s *Stack) Pop() error {
	if s.depth == 0 {
		return errors.New("style: Pop without matching Push")
	}
	s.depth--
	s.dev.RestoreState()
	return nil
}

// Depth returns the number of unmatched Push calls.
func (s *Stack) Depth() int {
	return s.depth
}
