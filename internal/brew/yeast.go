package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Yeast is one yeast addition.
type Yeast struct {
	Named
	ytype          int
	form           int
	flocculation   int
	amount         value.Value // amount in liters (or kg when dry)
	timesCultured  uint64
	attenuationPct value.Value // optional double
	lab            value.Value // optional string
	productID      value.Value // optional string
}

// NewYeast constructs a yeast from a parsed bundle.
func NewYeast(b *entity.Bundle) entity.Entity {
	y := &Yeast{
		amount:         value.AmountOf(0, "l"),
		attenuationPct: value.Null(value.KindDouble),
		lab:            value.Null(value.KindString),
		productID:      value.Null(value.KindString),
	}
	y.SetName(b.TakeOr("name", value.String("")).String())
	if v, ok := b.Take("type"); ok {
		y.ytype = v.Enum()
	}
	if v, ok := b.Take("form"); ok {
		y.form = v.Enum()
	}
	if v, ok := b.Take("flocculation"); ok {
		y.flocculation = v.Enum()
	}
	y.amount = b.TakeOr("amount", y.amount)
	y.timesCultured = b.TakeOr("timesCultured", value.UInt(0)).UInt()
	y.attenuationPct = b.TakeOr("attenuationPct", y.attenuationPct)
	y.lab = b.TakeOr("lab", y.lab)
	y.productID = b.TakeOr("productId", y.productID)
	return y
}

// YeastTypes is the yeast property type registry.
var YeastTypes = func() *typereg.Registry {
	r := typereg.New("Yeast", NamedTypes)
	r.Register("type", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("form", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("flocculation", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("amount", typereg.Entry{Type: typereg.TypeAmount})
	r.Register("timesCultured", typereg.Entry{Type: typereg.TypeUInt})
	r.Register("attenuationPct", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("lab", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("productId", typereg.Entry{Type: typereg.TypeOptString})
	return r
}()

var yeastAccessors = entity.Accessors[*Yeast]{
	"name": nameAccessor[*Yeast](),
	"type": {
		Get: func(y *Yeast) value.Value { return value.Enum(y.ytype) },
		Set: func(y *Yeast, v value.Value) { y.ytype = v.Enum() },
	},
	"form": {
		Get: func(y *Yeast) value.Value { return value.Enum(y.form) },
		Set: func(y *Yeast, v value.Value) { y.form = v.Enum() },
	},
	"flocculation": {
		Get: func(y *Yeast) value.Value { return value.Enum(y.flocculation) },
		Set: func(y *Yeast, v value.Value) { y.flocculation = v.Enum() },
	},
	"amount": {
		Get: func(y *Yeast) value.Value { return y.amount },
		Set: func(y *Yeast, v value.Value) { y.amount = v },
	},
	"timesCultured": {
		Get: func(y *Yeast) value.Value { return value.UInt(y.timesCultured) },
		Set: func(y *Yeast, v value.Value) { y.timesCultured = v.UInt() },
	},
	"attenuationPct": {
		Get: func(y *Yeast) value.Value { return y.attenuationPct },
		Set: func(y *Yeast, v value.Value) { y.attenuationPct = v },
	},
	"lab": {
		Get: func(y *Yeast) value.Value { return y.lab },
		Set: func(y *Yeast, v value.Value) { y.lab = v },
	},
	"productId": {
		Get: func(y *Yeast) value.Value { return y.productID },
		Set: func(y *Yeast, v value.Value) { y.productID = v },
	},
}

// Kind implements entity.Entity.
func (y *Yeast) Kind() string { return "Yeast" }

// Get implements entity.Entity.
func (y *Yeast) Get(prop string) value.Value { return entity.GetFrom(y, yeastAccessors, prop) }

// Set implements entity.Entity.
func (y *Yeast) Set(prop string, v value.Value) { entity.SetOn(y, yeastAccessors, prop, v) }

// Properties implements entity.Entity.
func (y *Yeast) Properties() []string { return entity.Names(yeastAccessors) }

// YeastEqual is the yeast equivalence test. Lab and product id pin down the
// strain when present.
func YeastEqual(a, b entity.Entity) bool {
	x, ok := a.(*Yeast)
	if !ok {
		return false
	}
	y, ok := b.(*Yeast)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.ytype == y.ytype &&
		x.form == y.form &&
		x.lab.Equal(y.lab) &&
		x.productID.Equal(y.productID)
}
