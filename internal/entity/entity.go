// Package entity defines the contract every domain entity kind implements so
// the serialization engine can construct, inspect, and link instances
// without knowing their concrete types.
//
// There is no reflection here. Each kind declares an explicit table of named
// accessor pairs; property paths walk those tables at runtime.
package entity

import (
	"fmt"
	"sort"

	"github.com/vk/brewdoc/internal/value"
)

// Entity is the dynamic surface of one domain object.
type Entity interface {
	// Kind returns the entity kind name, e.g. "Hop".
	Kind() string

	// ID returns the persistent-store identity, or 0 before the first
	// successful insert.
	ID() int64
	SetID(id int64)

	// Name returns the display name used for duplicate suffixing.
	Name() string
	SetName(name string)

	// Get reads a property by name. An unregistered name is a
	// configuration defect and panics.
	Get(prop string) value.Value

	// Set writes a property by name. An unregistered or read-only
	// property is a configuration defect and panics.
	Set(prop string, v value.Value)

	// Properties lists every accessible property name, sorted.
	Properties() []string
}

// Containable is implemented by kinds that are intrinsically owned by a
// parent entity (a mash step only exists inside its mash). The processor
// calls SetContaining at store time, before the owner links its children.
type Containable interface {
	SetContaining(parent Entity)
}

// Policy carries the static per-kind flags the normalize-and-store path
// consults.
type Policy struct {
	// CheckDuplicates enables the stored-entity equivalence scan. Kinds
	// where duplicates are expected (steps, log-like records) disable it.
	CheckDuplicates bool

	// NormalizeNames enables "Foo" -> "Foo (1)" suffixing on collision.
	NormalizeNames bool

	// OwnedByParent marks kinds that register with their containing
	// entity at store time.
	OwnedByParent bool

	// LateDuplicateCheck re-runs the equivalence scan after child records
	// are attached, for kinds whose equality depends on their children.
	LateDuplicateCheck bool
}

// Accessor is one get/set pair over a concrete entity type. A nil Set marks
// the property read-only (export-only calculated values).
type Accessor[T Entity] struct {
	Get func(T) value.Value
	Set func(T, value.Value)
}

// Accessors is the per-kind table property paths walk.
type Accessors[T Entity] map[string]Accessor[T]

// GetFrom reads prop from e through the table, panicking on an unknown name.
func GetFrom[T Entity](e T, table Accessors[T], prop string) value.Value {
	acc, ok := table[prop]
	if !ok {
		panic(fmt.Sprintf("entity: kind %q has no property %q", e.Kind(), prop))
	}
	return acc.Get(e)
}

// SetOn writes prop on e through the table. Unknown or read-only properties
// are configuration defects.
func SetOn[T Entity](e T, table Accessors[T], prop string, v value.Value) {
	acc, ok := table[prop]
	if !ok {
		panic(fmt.Sprintf("entity: kind %q has no property %q", e.Kind(), prop))
	}
	if acc.Set == nil {
		panic(fmt.Sprintf("entity: property %q of kind %q is not writable", prop, e.Kind()))
	}
	acc.Set(e, v)
}

// Names returns the sorted property names of a table.
func Names[T Entity](table Accessors[T]) []string {
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
