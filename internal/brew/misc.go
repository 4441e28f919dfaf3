package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Misc is one miscellaneous addition: finings, spices, water agents.
type Misc struct {
	Named
	mtype    int
	use      int
	timeMin  float64
	amountKg value.Value // optional double
	useFor   value.Value // optional string
	notes    value.Value // optional string
}

// NewMisc constructs a misc from a parsed bundle.
func NewMisc(b *entity.Bundle) entity.Entity {
	m := &Misc{
		amountKg: value.Null(value.KindDouble),
		useFor:   value.Null(value.KindString),
		notes:    value.Null(value.KindString),
	}
	m.SetName(b.TakeOr("name", value.String("")).String())
	if v, ok := b.Take("type"); ok {
		m.mtype = v.Enum()
	}
	if v, ok := b.Take("use"); ok {
		m.use = v.Enum()
	}
	m.timeMin = b.TakeOr("timeMin", value.Double(0)).Double()
	m.amountKg = b.TakeOr("amountKg", m.amountKg)
	m.useFor = b.TakeOr("useFor", m.useFor)
	m.notes = b.TakeOr("notes", m.notes)
	return m
}

// MiscTypes is the misc property type registry.
var MiscTypes = func() *typereg.Registry {
	r := typereg.New("Misc", NamedTypes)
	r.Register("type", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("use", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("timeMin", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("amountKg", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("useFor", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	return r
}()

var miscAccessors = entity.Accessors[*Misc]{
	"name": nameAccessor[*Misc](),
	"type": {
		Get: func(m *Misc) value.Value { return value.Enum(m.mtype) },
		Set: func(m *Misc, v value.Value) { m.mtype = v.Enum() },
	},
	"use": {
		Get: func(m *Misc) value.Value { return value.Enum(m.use) },
		Set: func(m *Misc, v value.Value) { m.use = v.Enum() },
	},
	"timeMin": {
		Get: func(m *Misc) value.Value { return value.Double(m.timeMin) },
		Set: func(m *Misc, v value.Value) { m.timeMin = v.Double() },
	},
	"amountKg": {
		Get: func(m *Misc) value.Value { return m.amountKg },
		Set: func(m *Misc, v value.Value) { m.amountKg = v },
	},
	"useFor": {
		Get: func(m *Misc) value.Value { return m.useFor },
		Set: func(m *Misc, v value.Value) { m.useFor = v },
	},
	"notes": {
		Get: func(m *Misc) value.Value { return m.notes },
		Set: func(m *Misc, v value.Value) { m.notes = v },
	},
}

// Kind implements entity.Entity.
func (m *Misc) Kind() string { return "Misc" }

// Get implements entity.Entity.
func (m *Misc) Get(prop string) value.Value { return entity.GetFrom(m, miscAccessors, prop) }

// Set implements entity.Entity.
func (m *Misc) Set(prop string, v value.Value) { entity.SetOn(m, miscAccessors, prop, v) }

// Properties implements entity.Entity.
func (m *Misc) Properties() []string { return entity.Names(miscAccessors) }

// MiscEqual is the misc equivalence test.
func MiscEqual(a, b entity.Entity) bool {
	x, ok := a.(*Misc)
	if !ok {
		return false
	}
	y, ok := b.(*Misc)
	if !ok {
		return false
	}
	return x.Name() == y.Name() && x.mtype == y.mtype && x.use == y.use
}
