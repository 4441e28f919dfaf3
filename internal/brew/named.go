package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Named is the embedded base of every entity kind: a store identity and a
// display name.
type Named struct {
	id   int64
	name string
}

// ID returns the persistent-store identity, 0 before the first insert.
func (n *Named) ID() int64 { return n.id }

// SetID records the identity assigned by the store.
func (n *Named) SetID(id int64) { n.id = id }

// Name returns the display name.
func (n *Named) Name() string { return n.name }

// SetName replaces the display name (duplicate suffixing uses this).
func (n *Named) SetName(name string) { n.name = name }

// NamedTypes is the parent type registry every kind chains to: the
// properties shared by all named entities.
var NamedTypes = func() *typereg.Registry {
	r := typereg.New("NamedEntity", nil)
	r.Register("name", typereg.Entry{Type: typereg.TypeString})
	return r
}()

// nameAccessor builds the shared name accessor pair for a concrete kind.
func nameAccessor[T entity.Entity]() entity.Accessor[T] {
	return entity.Accessor[T]{
		Get: func(e T) value.Value { return value.String(e.Name()) },
		Set: func(e T, v value.Value) { e.SetName(v.String()) },
	}
}
