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

// Package style implements hierarchical style attributes for plot
// components, together with the drawing-state stack used during
// rendering.
package style

// Value is a style attribute value.  The concrete types are [Number],
// [Bool], [String], [Dict] and [None].
type Value interface {
	isValue()
}

// Number is a numeric attribute value.
type Number float64

// Bool is a boolean attribute value.
type Bool bool

// String is a string attribute value.
type String string

// Dict is a nested attribute mapping.
type Dict map[Key]Value

// None is the explicit "no value" sentinel.  It differs from an absent
// attribute: None disables a feature which a default would otherwise
// enable.
type None struct{}

func (Number) isValue() {}
func (Bool) isValue()   {}
func (String) isValue() {}
func (Dict) isValue()   {}
func (None) isValue()   {}
