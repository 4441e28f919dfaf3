package entity

import "github.com/vk/brewdoc/internal/value"

// Bundle is the transient map of decoded values built while parsing one
// external record. It is keyed by the bound property path's external form,
// consumed exactly once by the kind's constructor, and then discarded.
// Constructors pull only the keys they need; leftover keys (export-only
// calculated fields) are simply never taken.
type Bundle struct {
	values map[string]value.Value
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{values: make(map[string]value.Value)}
}

// Put stores a decoded value under the path key. The parser calls Put at
// most once per key: each schema binds a path once, and a repeated leaf tag
// decodes only its first match.
func (b *Bundle) Put(key string, v value.Value) {
	b.values[key] = v
}

// Len reports how many values the bundle holds.
func (b *Bundle) Len() int { return len(b.values) }

// Take removes and returns the value for key. The second result is false if
// the key was never decoded (an omitted field).
func (b *Bundle) Take(key string) (value.Value, bool) {
	v, ok := b.values[key]
	if ok {
		delete(b.values, key)
	}
	return v, ok
}

// TakeOr removes and returns the value for key, or def if absent or null.
func (b *Bundle) TakeOr(key string, def value.Value) value.Value {
	v, ok := b.Take(key)
	if !ok || v.IsNull() {
		return def
	}
	return v
}

// TakeOptional removes and unwraps an optional slot: absent key or a null
// marker both report present=false.
func (b *Bundle) TakeOptional(key string) (value.Value, bool) {
	v, ok := b.Take(key)
	if !ok || v.IsNull() {
		return v, false
	}
	return v, true
}
