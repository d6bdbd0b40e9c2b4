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

package plot

import (
	"seehuhn.de/go/plot/bounds"
	"seehuhn.de/go/plot/render"
)

// A Table arranges containers in a rectangular grid of equally sized
// cells.  Cell (0, 0) is in the upper left corner.
type Table struct {
	component
	rows, cols int
	cells      []Container
}

// NewTable returns an empty table with the given number of rows and
// columns.
func NewTable(rows, cols int) *Table {
	return &Table{
		component: newComponent([]string{"plot", "table"}, nil),
		rows:      rows,
		cols:      cols,
		cells:     make([]Container, rows*cols),
	}
}

// Set places a container in the given cell.
func (t *Table) Set(row, col int, c Container) {
	t.cells[row*t.cols+col] = c
}

// Get returns the container in the given cell, or nil.
func (t *Table) Get(row, col int) Container {
	return t.cells[row*t.cols+col]
}

// Compose implements the [Container] interface.
func (t *Table) Compose(rc *render.Context, region bounds.Box) error {
	empty := true
	for _, c := range t.cells {
		if c != nil {
			empty = false
			break
		}
	}
	if empty {
		return &EmptyContainerError{Kind: "table"}
	}

	pad, err := t.attr.Number("cellpadding")
	if err != nil {
		return err
	}
	cellW := region.Width() / float64(t.cols)
	cellH := region.Height() / float64(t.rows)
	ll := region.LowerLeft()
	top := region.UpperRight().Y

	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			c := t.cells[row*t.cols+col]
			if c == nil {
				continue
			}
			x0 := ll.X + float64(col)*cellW
			y1 := top - float64(row)*cellH
			sub := bounds.New(x0, y1-cellH, x0+cellW, y1).Scale(1 - 2*pad)
			if err := c.Compose(rc, sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw renders the table onto a device.
func (t *Table) Draw(dev render.Renderer) error {
	margin, err := t.attr.Number("margin")
	if err != nil {
		return err
	}
	return drawInto(dev, margin, t)
}
