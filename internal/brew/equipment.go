package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Equipment is a brewing equipment profile.
type Equipment struct {
	Named
	boilSizeL   float64
	batchSizeL  float64
	tunVolumeL  value.Value // optional double
	boilTimeMin value.Value // optional double
	evapRatePct value.Value // optional double
	notes       value.Value // optional string
}

// NewEquipment constructs an equipment profile from a parsed bundle.
func NewEquipment(b *entity.Bundle) entity.Entity {
	e := &Equipment{
		tunVolumeL:  value.Null(value.KindDouble),
		boilTimeMin: value.Null(value.KindDouble),
		evapRatePct: value.Null(value.KindDouble),
		notes:       value.Null(value.KindString),
	}
	e.SetName(b.TakeOr("name", value.String("")).String())
	e.boilSizeL = b.TakeOr("boilSizeL", value.Double(0)).Double()
	e.batchSizeL = b.TakeOr("batchSizeL", value.Double(0)).Double()
	e.tunVolumeL = b.TakeOr("tunVolumeL", e.tunVolumeL)
	e.boilTimeMin = b.TakeOr("boilTimeMin", e.boilTimeMin)
	e.evapRatePct = b.TakeOr("evapRatePct", e.evapRatePct)
	e.notes = b.TakeOr("notes", e.notes)
	return e
}

// EquipmentTypes is the equipment property type registry.
var EquipmentTypes = func() *typereg.Registry {
	r := typereg.New("Equipment", NamedTypes)
	r.Register("boilSizeL", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("batchSizeL", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("tunVolumeL", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("boilTimeMin", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("evapRatePct", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	return r
}()

var equipmentAccessors = entity.Accessors[*Equipment]{
	"name": nameAccessor[*Equipment](),
	"boilSizeL": {
		Get: func(e *Equipment) value.Value { return value.Double(e.boilSizeL) },
		Set: func(e *Equipment, v value.Value) { e.boilSizeL = v.Double() },
	},
	"batchSizeL": {
		Get: func(e *Equipment) value.Value { return value.Double(e.batchSizeL) },
		Set: func(e *Equipment, v value.Value) { e.batchSizeL = v.Double() },
	},
	"tunVolumeL": {
		Get: func(e *Equipment) value.Value { return e.tunVolumeL },
		Set: func(e *Equipment, v value.Value) { e.tunVolumeL = v },
	},
	"boilTimeMin": {
		Get: func(e *Equipment) value.Value { return e.boilTimeMin },
		Set: func(e *Equipment, v value.Value) { e.boilTimeMin = v },
	},
	"evapRatePct": {
		Get: func(e *Equipment) value.Value { return e.evapRatePct },
		Set: func(e *Equipment, v value.Value) { e.evapRatePct = v },
	},
	"notes": {
		Get: func(e *Equipment) value.Value { return e.notes },
		Set: func(e *Equipment, v value.Value) { e.notes = v },
	},
}

// Kind implements entity.Entity.
func (e *Equipment) Kind() string { return "Equipment" }

// Get implements entity.Entity.
func (e *Equipment) Get(prop string) value.Value { return entity.GetFrom(e, equipmentAccessors, prop) }

// Set implements entity.Entity.
func (e *Equipment) Set(prop string, v value.Value) { entity.SetOn(e, equipmentAccessors, prop, v) }

// Properties implements entity.Entity.
func (e *Equipment) Properties() []string { return entity.Names(equipmentAccessors) }

// EquipmentEqual is the equipment equivalence test.
func EquipmentEqual(a, b entity.Entity) bool {
	x, ok := a.(*Equipment)
	if !ok {
		return false
	}
	y, ok := b.(*Equipment)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.boilSizeL == y.boilSizeL &&
		x.batchSizeL == y.batchSizeL
}
