package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Water is one water profile. Ion concentrations are in ppm.
type Water struct {
	Named
	amountL     float64
	calcium     float64
	bicarbonate float64
	sulfate     float64
	chloride    float64
	sodium      float64
	magnesium   float64
	ph          value.Value // optional double
	notes       value.Value // optional string
}

// NewWater constructs a water profile from a parsed bundle.
func NewWater(b *entity.Bundle) entity.Entity {
	w := &Water{
		ph:    value.Null(value.KindDouble),
		notes: value.Null(value.KindString),
	}
	w.SetName(b.TakeOr("name", value.String("")).String())
	w.amountL = b.TakeOr("amountL", value.Double(0)).Double()
	w.calcium = b.TakeOr("calcium", value.Double(0)).Double()
	w.bicarbonate = b.TakeOr("bicarbonate", value.Double(0)).Double()
	w.sulfate = b.TakeOr("sulfate", value.Double(0)).Double()
	w.chloride = b.TakeOr("chloride", value.Double(0)).Double()
	w.sodium = b.TakeOr("sodium", value.Double(0)).Double()
	w.magnesium = b.TakeOr("magnesium", value.Double(0)).Double()
	w.ph = b.TakeOr("ph", w.ph)
	w.notes = b.TakeOr("notes", w.notes)
	return w
}

// WaterTypes is the water property type registry.
var WaterTypes = func() *typereg.Registry {
	r := typereg.New("Water", NamedTypes)
	r.Register("amountL", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("calcium", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("bicarbonate", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("sulfate", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("chloride", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("sodium", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("magnesium", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("ph", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	return r
}()

var waterAccessors = entity.Accessors[*Water]{
	"name": nameAccessor[*Water](),
	"amountL": {
		Get: func(w *Water) value.Value { return value.Double(w.amountL) },
		Set: func(w *Water, v value.Value) { w.amountL = v.Double() },
	},
	"calcium": {
		Get: func(w *Water) value.Value { return value.Double(w.calcium) },
		Set: func(w *Water, v value.Value) { w.calcium = v.Double() },
	},
	"bicarbonate": {
		Get: func(w *Water) value.Value { return value.Double(w.bicarbonate) },
		Set: func(w *Water, v value.Value) { w.bicarbonate = v.Double() },
	},
	"sulfate": {
		Get: func(w *Water) value.Value { return value.Double(w.sulfate) },
		Set: func(w *Water, v value.Value) { w.sulfate = v.Double() },
	},
	"chloride": {
		Get: func(w *Water) value.Value { return value.Double(w.chloride) },
		Set: func(w *Water, v value.Value) { w.chloride = v.Double() },
	},
	"sodium": {
		Get: func(w *Water) value.Value { return value.Double(w.sodium) },
		Set: func(w *Water, v value.Value) { w.sodium = v.Double() },
	},
	"magnesium": {
		Get: func(w *Water) value.Value { return value.Double(w.magnesium) },
		Set: func(w *Water, v value.Value) { w.magnesium = v.Double() },
	},
	"ph": {
		Get: func(w *Water) value.Value { return w.ph },
		Set: func(w *Water, v value.Value) { w.ph = v },
	},
	"notes": {
		Get: func(w *Water) value.Value { return w.notes },
		Set: func(w *Water, v value.Value) { w.notes = v },
	},
}

// Kind implements entity.Entity.
func (w *Water) Kind() string { return "Water" }

// Get implements entity.Entity.
func (w *Water) Get(prop string) value.Value { return entity.GetFrom(w, waterAccessors, prop) }

// Set implements entity.Entity.
func (w *Water) Set(prop string, v value.Value) { entity.SetOn(w, waterAccessors, prop, v) }

// Properties implements entity.Entity.
func (w *Water) Properties() []string { return entity.Names(waterAccessors) }

// WaterEqual is the water equivalence test: same name and ion profile.
func WaterEqual(a, b entity.Entity) bool {
	x, ok := a.(*Water)
	if !ok {
		return false
	}
	y, ok := b.(*Water)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.calcium == y.calcium &&
		x.bicarbonate == y.bicarbonate &&
		x.sulfate == y.sulfate &&
		x.chloride == y.chloride &&
		x.sodium == y.sodium &&
		x.magnesium == y.magnesium
}
