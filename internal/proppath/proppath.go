// Package proppath implements property paths: a property name, or a chain
// of names reaching a leaf property on a nested sub-entity.
//
// Paths are the engine's only way of touching entity state. Type questions
// are answered statically through the kind's type registry chain; reads and
// writes happen at runtime through each entity's dynamic accessor table.
package proppath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// ErrNoSubEntity is returned by Set when an interior step of the chain
// yields no sub-entity to descend into.
var ErrNoSubEntity = errors.New("proppath: interior step has no sub-entity")

// Path is an ordered chain of property names. The zero Path is the reserved
// "no binding" sentinel: schema fields carrying it are parsed and discarded.
type Path struct {
	names []string
}

// New builds a path from one or more property names.
func New(names ...string) Path {
	if len(names) == 0 {
		panic("proppath: path needs at least one name")
	}
	for _, n := range names {
		if n == "" {
			panic("proppath: empty property name in path")
		}
	}
	return Path{names: names}
}

// Null returns the "parse and discard" sentinel.
func Null() Path { return Path{} }

// IsNull reports whether this is the no-binding sentinel.
func (p Path) IsNull() bool { return len(p.names) == 0 }

// AsExternalPath joins the chain for diagnostics and export grouping tags.
func (p Path) AsExternalPath() string { return strings.Join(p.names, "/") }

// Terminal returns the last name of the chain.
func (p Path) Terminal() string {
	if p.IsNull() {
		panic("proppath: terminal of null path")
	}
	return p.names[len(p.names)-1]
}

// TypeInfo walks the chain through the registry tree rooted at root: every
// interior name must resolve to a record-valued property whose sub-registry
// carries the next step. It returns the terminal entry. Any unresolvable
// step is a configuration defect and panics.
func (p Path) TypeInfo(root *typereg.Registry) typereg.Entry {
	if p.IsNull() {
		panic("proppath: type info of null path")
	}
	reg := root
	for i, name := range p.names {
		e := reg.Lookup(name)
		if i == len(p.names)-1 {
			return e
		}
		if e.Type != typereg.TypeRecord || e.Sub == nil {
			panic(fmt.Sprintf("proppath: interior step %q of %q is not record-valued on kind %q",
				name, p.AsExternalPath(), reg.Kind()))
		}
		reg = e.Sub
	}
	panic("unreachable")
}

// Resolves reports whether every step of the chain resolves, without
// panicking. Registry validation uses it to collect all defects at once.
func (p Path) Resolves(root *typereg.Registry) bool {
	if p.IsNull() {
		return false
	}
	reg := root
	for i, name := range p.names {
		if !reg.Contains(name) {
			return false
		}
		e := reg.Lookup(name)
		if i == len(p.names)-1 {
			return true
		}
		if e.Type != typereg.TypeRecord || e.Sub == nil {
			return false
		}
		reg = e.Sub
	}
	return false
}

// step descends one interior link, returning nil when the sub-entity is
// absent.
func step(e entity.Entity, name string) entity.Entity {
	v := e.Get(name)
	if v.Kind() != value.KindRecord {
		panic(fmt.Sprintf("proppath: interior property %q of kind %q is not record-valued", name, e.Kind()))
	}
	ref := v.RecordRef()
	if ref == nil {
		return nil
	}
	sub, ok := ref.(entity.Entity)
	if !ok {
		panic(fmt.Sprintf("proppath: record property %q of kind %q holds a non-entity", name, e.Kind()))
	}
	return sub
}

// Get reads the terminal property, walking interior steps through each
// entity's accessor table. If any interior step yields no sub-entity the
// result is a null record placeholder, never a crash.
func (p Path) Get(e entity.Entity) value.Value {
	if p.IsNull() {
		panic("proppath: get through null path")
	}
	cur := e
	for _, name := range p.names[:len(p.names)-1] {
		cur = step(cur, name)
		if cur == nil {
			return value.Null(value.KindRecord)
		}
	}
	return cur.Get(p.Terminal())
}

// Set writes the terminal property. An absent interior sub-entity is a
// runtime condition and returns ErrNoSubEntity; an unknown or read-only
// terminal is a configuration defect and panics (inside Entity.Set).
func (p Path) Set(e entity.Entity, v value.Value) error {
	if p.IsNull() {
		panic("proppath: set through null path")
	}
	cur := e
	for _, name := range p.names[:len(p.names)-1] {
		cur = step(cur, name)
		if cur == nil {
			return fmt.Errorf("%w: %q while setting %q on kind %q",
				ErrNoSubEntity, name, p.AsExternalPath(), e.Kind())
		}
	}
	cur.Set(p.Terminal(), v)
	return nil
}
