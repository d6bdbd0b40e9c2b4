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

// Package config supplies default style attribute values, either
// built-in or loaded from a YAML file.
package config

import (
	"seehuhn.de/go/plot/style"
)

// A Table maps type names to default attribute values.  Table
// implements [style.Source].
type Table map[string]map[string]style.Value

// Value implements the [style.Source] interface.
func (t Table) Value(typeName, attr string) (style.Value, bool) {
	v, ok := t[typeName][attr]
	return v, ok
}

// Options implements the [style.Source] interface.
func (t Table) Options(typeName string) map[string]style.Value {
	return t[typeName]
}

// Merge returns a table with the entries of overlay applied on top of
// base.  Neither argument is modified.
func Merge(base, overlay Table) Table {
	res := make(Table, len(base)+len(overlay))
	for name, opts := range base {
		m := make(map[string]style.Value, len(opts))
		for k, v := range opts {
			m[k] = v
		}
		res[name] = m
	}
	for name, opts := range overlay {
		m := res[name]
		if m == nil {
			m = make(map[string]style.Value, len(opts))
			res[name] = m
		}
		for k, v := range opts {
			m[k] = v
		}
	}
	return res
}

// Builtin returns the built-in default style table.
func Builtin() Table {
	return Table{
		"component": {
			"linecolor":  style.String("black"),
			"linetype":   style.String("solid"),
			"linewidth":  style.Number(0.2),
			"fontface":   style.String("HersheySans"),
			"fontsize":   style.Number(2.5),
			"textcolor":  style.String("black"),
			"symboltype": style.String("diamond"),
			"symbolsize": style.Number(1.5),
		},
		"axis": {
			"ticksize":       style.Number(1.5),
			"subticksize":    style.Number(0.75),
			"labelpad":       style.Number(1.5),
			"labeloffset":    style.Number(5),
			"fontsize":       style.Number(2.5),
			"ticklabel_size": style.Number(2),
		},
		"frame": {
			"linewidth": style.Number(0.2),
		},
		"title": {
			"fontsize": style.Number(3),
		},
		"errorbars": {
			"barsize": style.Number(1),
		},
		"key": {
			"samplelength": style.Number(5),
			"fontsize":     style.Number(2),
		},
		"plot": {
			"margin": style.Number(0.05),
			"gutter": style.Number(0.05),
		},
		"table": {
			"cellpadding": style.Number(0.05),
		},
	}
}
