package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Hop is one hop addition.
type Hop struct {
	Named
	use      int
	form     int
	alphaPct float64
	amountKg float64
	timeMin  float64
	betaPct  value.Value // optional double
	origin   value.Value // optional string
	notes    value.Value // optional string
}

// NewHop constructs a hop from a parsed bundle.
func NewHop(b *entity.Bundle) entity.Entity {
	h := &Hop{
		betaPct: value.Null(value.KindDouble),
		origin:  value.Null(value.KindString),
		notes:   value.Null(value.KindString),
	}
	h.SetName(b.TakeOr("name", value.String("")).String())
	if v, ok := b.Take("use"); ok {
		h.use = v.Enum()
	}
	if v, ok := b.Take("form"); ok {
		h.form = v.Enum()
	}
	h.alphaPct = b.TakeOr("alphaPct", value.Double(0)).Double()
	h.amountKg = b.TakeOr("amountKg", value.Double(0)).Double()
	h.timeMin = b.TakeOr("timeMin", value.Double(0)).Double()
	h.betaPct = b.TakeOr("betaPct", h.betaPct)
	h.origin = b.TakeOr("origin", h.origin)
	h.notes = b.TakeOr("notes", h.notes)
	return h
}

// HopTypes is the hop property type registry.
var HopTypes = func() *typereg.Registry {
	r := typereg.New("Hop", NamedTypes)
	r.Register("use", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("form", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("alphaPct", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("amountKg", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("timeMin", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("betaPct", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("origin", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	return r
}()

var hopAccessors = entity.Accessors[*Hop]{
	"name": nameAccessor[*Hop](),
	"use": {
		Get: func(h *Hop) value.Value { return value.Enum(h.use) },
		Set: func(h *Hop, v value.Value) { h.use = v.Enum() },
	},
	"form": {
		Get: func(h *Hop) value.Value { return value.Enum(h.form) },
		Set: func(h *Hop, v value.Value) { h.form = v.Enum() },
	},
	"alphaPct": {
		Get: func(h *Hop) value.Value { return value.Double(h.alphaPct) },
		Set: func(h *Hop, v value.Value) { h.alphaPct = v.Double() },
	},
	"amountKg": {
		Get: func(h *Hop) value.Value { return value.Double(h.amountKg) },
		Set: func(h *Hop, v value.Value) { h.amountKg = v.Double() },
	},
	"timeMin": {
		Get: func(h *Hop) value.Value { return value.Double(h.timeMin) },
		Set: func(h *Hop, v value.Value) { h.timeMin = v.Double() },
	},
	"betaPct": {
		Get: func(h *Hop) value.Value { return h.betaPct },
		Set: func(h *Hop, v value.Value) { h.betaPct = v },
	},
	"origin": {
		Get: func(h *Hop) value.Value { return h.origin },
		Set: func(h *Hop, v value.Value) { h.origin = v },
	},
	"notes": {
		Get: func(h *Hop) value.Value { return h.notes },
		Set: func(h *Hop, v value.Value) { h.notes = v },
	},
}

// Kind implements entity.Entity.
func (h *Hop) Kind() string { return "Hop" }

// Get implements entity.Entity.
func (h *Hop) Get(prop string) value.Value { return entity.GetFrom(h, hopAccessors, prop) }

// Set implements entity.Entity.
func (h *Hop) Set(prop string, v value.Value) { entity.SetOn(h, hopAccessors, prop, v) }

// Properties implements entity.Entity.
func (h *Hop) Properties() []string { return entity.Names(hopAccessors) }

// HopEqual is the domain equivalence test behind hop duplicate detection.
// Identity fields only; notes and origin do not make two hops different
// ingredients.
func HopEqual(a, b entity.Entity) bool {
	x, ok := a.(*Hop)
	if !ok {
		return false
	}
	y, ok := b.(*Hop)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.use == y.use &&
		x.form == y.form &&
		x.alphaPct == y.alphaPct
}
