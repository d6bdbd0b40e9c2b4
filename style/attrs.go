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

// Source supplies configured default attribute values per type name.
// Implementations are provided by the config package.
type Source interface {
	// Value returns the configured default for a single attribute, or
	// false if none is configured.
	Value(typeName, attr string) (Value, bool)

	// Options returns all configured defaults for the given type name.
	Options(typeName string) map[string]Value
}

// NotFoundError indicates an attribute lookup for which neither an
// override nor a configured default exists.
type NotFoundError struct {
	Name string
}

func (err *NotFoundError) Error() string {
	return "style attribute " + err.Name + " not found"
}

// An AttributeSet holds the resolved style attributes of one plot
// component.  It is created with the component and mutated only through
// [AttributeSet.Set].
type AttributeSet struct {
	rename map[string]Key
	attrs  Dict
}

// NewAttributeSet resolves the default attributes for a component.
//
// The chain lists the component's capability tags from most general to
// most specific, e.g. ["component", "line", "curve"].  The defaults
// configured in src are applied in chain order, so that more specific
// defaults override more general ones.  The rename table translates
// public attribute names to keys; it may be nil.
func NewAttributeSet(src Source, chain []string, rename map[string]Key) *AttributeSet {
	a := &AttributeSet{
		rename: rename,
		attrs:  Dict{},
	}
	if src != nil {
		for _, tag := range chain {
			for name, val := range src.Options(tag) {
				a.attrs[a.Key(name)] = val
			}
		}
	}
	return a
}

// Key translates a public attribute name to its key.
func (a *AttributeSet) Key(name string) Key {
	if k, ok := a.rename[name]; ok {
		return k
	}
	return Key(name)
}

// Get returns the value of the named attribute.  If the attribute has
// neither an override nor a configured default, a [NotFoundError] is
// returned.
func (a *AttributeSet) Get(name string) (Value, error) {
	if v, ok := a.attrs[a.Key(name)]; ok {
		return v, nil
	}
	return nil, &NotFoundError{Name: name}
}

// Number returns the named attribute as a float64.  A missing attribute
// or an attribute of a different type yields a [NotFoundError].
func (a *AttributeSet) Number(name string) (float64, error) {
	v, err := a.Get(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.(Number)
	if !ok {
		return 0, &NotFoundError{Name: name}
	}
	return float64(n), nil
}

// Set stores an override for the named attribute.
func (a *AttributeSet) Set(name string, v Value) {
	a.attrs[a.Key(name)] = v
}

// Update applies all entries of kv as overrides.
func (a *AttributeSet) Update(kv Dict) {
	for k, v := range kv {
		a.attrs[k] = v
	}
}

// All returns the current attribute mapping.  The returned map is the
// set's own storage and must not be modified by the caller.
func (a *AttributeSet) All() Dict {
	return a.attrs
}
