package registry

import (
	"fmt"
	"sort"

	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/typereg"
)

// Kind bundles everything the engine needs to process one entity kind.
type Kind struct {
	// Name is the entity kind name, e.g. "Hop".
	Name string

	// Tag is the external element name a record of this kind lives under,
	// e.g. "HOP".
	Tag string

	// Schema is the ordered field list driving parse and export.
	Schema schema.Record

	// Types is the kind's property type registry (possibly chained to a
	// parent kind's registry).
	Types *typereg.Registry

	// New constructs an entity from a parsed bundle.
	New func(b *entity.Bundle) entity.Entity

	// Equal is the domain equivalence test behind duplicate detection.
	// Both the early and the late duplicate check call exactly this
	// function.
	Equal func(a, b entity.Entity) bool

	// Policy carries the static normalize-and-store flags.
	Policy entity.Policy
}

// Registry maps kind names to their definitions for one application
// instance.
type Registry struct {
	kinds map[string]*Kind
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// Register adds a kind. Registering the same name twice is a programmer
// error.
func (r *Registry) Register(k *Kind) {
	if _, exists := r.kinds[k.Name]; exists {
		panic(fmt.Sprintf("registry: kind %q already registered", k.Name))
	}
	if k.New == nil {
		panic(fmt.Sprintf("registry: kind %q has no constructor", k.Name))
	}
	if k.Types == nil {
		panic(fmt.Sprintf("registry: kind %q has no type registry", k.Name))
	}
	r.kinds[k.Name] = k
}

// Lookup returns the kind definition. An unknown kind name is a
// configuration defect.
func (r *Registry) Lookup(name string) *Kind {
	k, ok := r.kinds[name]
	if !ok {
		panic(fmt.Sprintf("registry: kind %q not registered", name))
	}
	return k
}

// Names returns the registered kind names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
