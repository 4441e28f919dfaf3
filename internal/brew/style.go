package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Style is a beer style with its vital-statistics ranges.
type Style struct {
	Named
	category string
	stype    int
	ogMin    float64
	ogMax    float64
	fgMin    float64
	fgMax    float64
	ibuMin   float64
	ibuMax   float64
	notes    value.Value // optional string
}

// NewStyle constructs a style from a parsed bundle.
func NewStyle(b *entity.Bundle) entity.Entity {
	s := &Style{notes: value.Null(value.KindString)}
	s.SetName(b.TakeOr("name", value.String("")).String())
	s.category = b.TakeOr("category", value.String("")).String()
	if v, ok := b.Take("type"); ok {
		s.stype = v.Enum()
	}
	s.ogMin = b.TakeOr("ogMin", value.Double(0)).Double()
	s.ogMax = b.TakeOr("ogMax", value.Double(0)).Double()
	s.fgMin = b.TakeOr("fgMin", value.Double(0)).Double()
	s.fgMax = b.TakeOr("fgMax", value.Double(0)).Double()
	s.ibuMin = b.TakeOr("ibuMin", value.Double(0)).Double()
	s.ibuMax = b.TakeOr("ibuMax", value.Double(0)).Double()
	s.notes = b.TakeOr("notes", s.notes)
	return s
}

// StyleTypes is the style property type registry.
var StyleTypes = func() *typereg.Registry {
	r := typereg.New("Style", NamedTypes)
	r.Register("category", typereg.Entry{Type: typereg.TypeString})
	r.Register("type", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("ogMin", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("ogMax", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("fgMin", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("fgMax", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("ibuMin", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("ibuMax", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	return r
}()

var styleAccessors = entity.Accessors[*Style]{
	"name": nameAccessor[*Style](),
	"category": {
		Get: func(s *Style) value.Value { return value.String(s.category) },
		Set: func(s *Style, v value.Value) { s.category = v.String() },
	},
	"type": {
		Get: func(s *Style) value.Value { return value.Enum(s.stype) },
		Set: func(s *Style, v value.Value) { s.stype = v.Enum() },
	},
	"ogMin": {
		Get: func(s *Style) value.Value { return value.Double(s.ogMin) },
		Set: func(s *Style, v value.Value) { s.ogMin = v.Double() },
	},
	"ogMax": {
		Get: func(s *Style) value.Value { return value.Double(s.ogMax) },
		Set: func(s *Style, v value.Value) { s.ogMax = v.Double() },
	},
	"fgMin": {
		Get: func(s *Style) value.Value { return value.Double(s.fgMin) },
		Set: func(s *Style, v value.Value) { s.fgMin = v.Double() },
	},
	"fgMax": {
		Get: func(s *Style) value.Value { return value.Double(s.fgMax) },
		Set: func(s *Style, v value.Value) { s.fgMax = v.Double() },
	},
	"ibuMin": {
		Get: func(s *Style) value.Value { return value.Double(s.ibuMin) },
		Set: func(s *Style, v value.Value) { s.ibuMin = v.Double() },
	},
	"ibuMax": {
		Get: func(s *Style) value.Value { return value.Double(s.ibuMax) },
		Set: func(s *Style, v value.Value) { s.ibuMax = v.Double() },
	},
	"notes": {
		Get: func(s *Style) value.Value { return s.notes },
		Set: func(s *Style, v value.Value) { s.notes = v },
	},
}

// Kind implements entity.Entity.
func (s *Style) Kind() string { return "Style" }

// Get implements entity.Entity.
func (s *Style) Get(prop string) value.Value { return entity.GetFrom(s, styleAccessors, prop) }

// Set implements entity.Entity.
func (s *Style) Set(prop string, v value.Value) { entity.SetOn(s, styleAccessors, prop, v) }

// Properties implements entity.Entity.
func (s *Style) Properties() []string { return entity.Names(styleAccessors) }

// StyleEqual is the style equivalence test.
func StyleEqual(a, b entity.Entity) bool {
	x, ok := a.(*Style)
	if !ok {
		return false
	}
	y, ok := b.(*Style)
	if !ok {
		return false
	}
	return x.Name() == y.Name() && x.category == y.category && x.stype == y.stype
}
