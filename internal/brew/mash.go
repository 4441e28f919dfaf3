package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Mash is a mash profile: grain and sparge conditions plus an ordered list
// of steps. Equality depends on the steps, so duplicate detection re-runs
// after children are attached.
type Mash struct {
	Named
	grainTempC  float64
	spargeTempC value.Value // optional double
	ph          value.Value // optional double
	notes       value.Value // optional string
	steps       []entity.Entity
}

// NewMash constructs a mash from a parsed bundle.
func NewMash(b *entity.Bundle) entity.Entity {
	m := &Mash{
		spargeTempC: value.Null(value.KindDouble),
		ph:          value.Null(value.KindDouble),
		notes:       value.Null(value.KindString),
	}
	m.SetName(b.TakeOr("name", value.String("")).String())
	m.grainTempC = b.TakeOr("grainTempC", value.Double(0)).Double()
	m.spargeTempC = b.TakeOr("spargeTempC", m.spargeTempC)
	m.ph = b.TakeOr("ph", m.ph)
	m.notes = b.TakeOr("notes", m.notes)
	return m
}

// Steps returns the mash steps in document order.
func (m *Mash) Steps() []entity.Entity { return m.steps }

// MashTypes is the mash property type registry.
var MashTypes = func() *typereg.Registry {
	r := typereg.New("Mash", NamedTypes)
	r.Register("grainTempC", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("spargeTempC", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("ph", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("steps", typereg.Entry{Type: typereg.TypeRecordList, Sub: MashStepTypes})
	return r
}()

var mashAccessors = entity.Accessors[*Mash]{
	"name": nameAccessor[*Mash](),
	"grainTempC": {
		Get: func(m *Mash) value.Value { return value.Double(m.grainTempC) },
		Set: func(m *Mash, v value.Value) { m.grainTempC = v.Double() },
	},
	"spargeTempC": {
		Get: func(m *Mash) value.Value { return m.spargeTempC },
		Set: func(m *Mash, v value.Value) { m.spargeTempC = v },
	},
	"ph": {
		Get: func(m *Mash) value.Value { return m.ph },
		Set: func(m *Mash, v value.Value) { m.ph = v },
	},
	"notes": {
		Get: func(m *Mash) value.Value { return m.notes },
		Set: func(m *Mash, v value.Value) { m.notes = v },
	},
	"steps": {
		Get: func(m *Mash) value.Value {
			refs := make([]any, len(m.steps))
			for i, s := range m.steps {
				refs[i] = s
			}
			return value.RecordList(refs)
		},
		Set: func(m *Mash, v value.Value) {
			m.steps = m.steps[:0]
			for _, ref := range v.RecordRefs() {
				if s, ok := ref.(entity.Entity); ok {
					m.steps = append(m.steps, s)
				}
			}
		},
	},
}

// Kind implements entity.Entity.
func (m *Mash) Kind() string { return "Mash" }

// Get implements entity.Entity.
func (m *Mash) Get(prop string) value.Value { return entity.GetFrom(m, mashAccessors, prop) }

// Set implements entity.Entity.
func (m *Mash) Set(prop string, v value.Value) { entity.SetOn(m, mashAccessors, prop, v) }

// Properties implements entity.Entity.
func (m *Mash) Properties() []string { return entity.Names(mashAccessors) }

// MashEqual is the mash equivalence test: head fields plus the full step
// list, so it only settles once children are attached.
func MashEqual(a, b entity.Entity) bool {
	x, ok := a.(*Mash)
	if !ok {
		return false
	}
	y, ok := b.(*Mash)
	if !ok {
		return false
	}
	if x.Name() != y.Name() || x.grainTempC != y.grainTempC {
		return false
	}
	if len(x.steps) != len(y.steps) {
		return false
	}
	for i := range x.steps {
		if !MashStepEqual(x.steps[i], y.steps[i]) {
			return false
		}
	}
	return true
}
