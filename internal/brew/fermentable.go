package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Fermentable is one fermentable ingredient: grain, sugar, extract.
type Fermentable struct {
	Named
	ftype        int
	amountKg     float64
	yieldPct     float64
	colorSRM     float64
	addAfterBoil bool
	origin       value.Value // optional string
	notes        value.Value // optional string
}

// NewFermentable constructs a fermentable from a parsed bundle.
func NewFermentable(b *entity.Bundle) entity.Entity {
	f := &Fermentable{
		origin: value.Null(value.KindString),
		notes:  value.Null(value.KindString),
	}
	f.SetName(b.TakeOr("name", value.String("")).String())
	if v, ok := b.Take("type"); ok {
		f.ftype = v.Enum()
	}
	f.amountKg = b.TakeOr("amountKg", value.Double(0)).Double()
	f.yieldPct = b.TakeOr("yieldPct", value.Double(0)).Double()
	f.colorSRM = b.TakeOr("colorSRM", value.Double(0)).Double()
	f.addAfterBoil = b.TakeOr("addAfterBoil", value.Bool(false)).Bool()
	f.origin = b.TakeOr("origin", f.origin)
	f.notes = b.TakeOr("notes", f.notes)
	return f
}

// FermentableTypes is the fermentable property type registry.
var FermentableTypes = func() *typereg.Registry {
	r := typereg.New("Fermentable", NamedTypes)
	r.Register("type", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("amountKg", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("yieldPct", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("colorSRM", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("addAfterBoil", typereg.Entry{Type: typereg.TypeBool})
	r.Register("origin", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	return r
}()

var fermentableAccessors = entity.Accessors[*Fermentable]{
	"name": nameAccessor[*Fermentable](),
	"type": {
		Get: func(f *Fermentable) value.Value { return value.Enum(f.ftype) },
		Set: func(f *Fermentable, v value.Value) { f.ftype = v.Enum() },
	},
	"amountKg": {
		Get: func(f *Fermentable) value.Value { return value.Double(f.amountKg) },
		Set: func(f *Fermentable, v value.Value) { f.amountKg = v.Double() },
	},
	"yieldPct": {
		Get: func(f *Fermentable) value.Value { return value.Double(f.yieldPct) },
		Set: func(f *Fermentable, v value.Value) { f.yieldPct = v.Double() },
	},
	"colorSRM": {
		Get: func(f *Fermentable) value.Value { return value.Double(f.colorSRM) },
		Set: func(f *Fermentable, v value.Value) { f.colorSRM = v.Double() },
	},
	"addAfterBoil": {
		Get: func(f *Fermentable) value.Value { return value.Bool(f.addAfterBoil) },
		Set: func(f *Fermentable, v value.Value) { f.addAfterBoil = v.Bool() },
	},
	"origin": {
		Get: func(f *Fermentable) value.Value { return f.origin },
		Set: func(f *Fermentable, v value.Value) { f.origin = v },
	},
	"notes": {
		Get: func(f *Fermentable) value.Value { return f.notes },
		Set: func(f *Fermentable, v value.Value) { f.notes = v },
	},
}

// Kind implements entity.Entity.
func (f *Fermentable) Kind() string { return "Fermentable" }

// Get implements entity.Entity.
func (f *Fermentable) Get(prop string) value.Value {
	return entity.GetFrom(f, fermentableAccessors, prop)
}

// Set implements entity.Entity.
func (f *Fermentable) Set(prop string, v value.Value) { entity.SetOn(f, fermentableAccessors, prop, v) }

// Properties implements entity.Entity.
func (f *Fermentable) Properties() []string { return entity.Names(fermentableAccessors) }

// FermentableEqual is the fermentable equivalence test.
func FermentableEqual(a, b entity.Entity) bool {
	x, ok := a.(*Fermentable)
	if !ok {
		return false
	}
	y, ok := b.(*Fermentable)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.ftype == y.ftype &&
		x.yieldPct == y.yieldPct &&
		x.colorSRM == y.colorSRM
}
