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
	"seehuhn.de/go/plot/style"
)

// A Component is a piece of plot content in data space: a curve, a set
// of error bars, one half of an axis.
type Component interface {
	// Limits returns the data coordinate range the component wants to
	// be visible, or the empty box if the component adapts to any
	// range.
	Limits() bounds.Box

	// Make materializes the component into render objects for the
	// given context, using [Context.Add].
	Make(ctx *Context) error

	// Attributes returns the component's style attributes.
	Attributes() *style.AttributeSet
}

// component is the common base of all components.
type component struct {
	attr *style.AttributeSet
}

func newComponent(chain []string, rename map[string]style.Key) component {
	return component{
		attr: style.NewAttributeSet(Config, chain, rename),
	}
}

func (c *component) Attributes() *style.AttributeSet {
	return c.attr
}

func (c *component) Limits() bounds.Box {
	return bounds.Box{}
}

// SetStyle stores a style override, using the component's public
// attribute names.
func (c *component) SetStyle(name string, v style.Value) {
	c.attr.Set(name, v)
}

// A Composite is an ordered sequence of components which is itself a
// component.  Limits are aggregated by union; children are rendered in
// the order they were added.
type Composite struct {
	component
	children []Component
}

// NewComposite returns an empty composite.
func NewComposite() *Composite {
	return &Composite{
		component: newComponent([]string{"component"}, nil),
	}
}

// Add appends components to the composite.
func (c *Composite) Add(children ...Component) {
	c.children = append(c.children, children...)
}

// Len returns the number of direct children.
func (c *Composite) Len() int {
	return len(c.children)
}

// Limits implements the [Component] interface.
func (c *Composite) Limits() bounds.Box {
	var b bounds.Box
	for _, child := range c.children {
		b = b.Union(child.Limits())
	}
	return b
}

// Make implements the [Component] interface.
func (c *Composite) Make(ctx *Context) error {
	for _, child := range c.children {
		if err := child.Make(ctx); err != nil {
			return err
		}
	}
	return nil
}

// render renders all children in sequence, each with its own style.
func (c *Composite) render(ctx *Context) error {
	for _, child := range c.children {
		if err := renderComponent(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

// SetAll applies a style override to a list of components.  This is
// used to change an attribute on several components at once, e.g. on
// all four halves of a plot frame.
func SetAll(components []Component, name string, v style.Value) {
	for _, c := range components {
		c.Attributes().Set(name, v)
	}
}
