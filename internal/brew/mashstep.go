package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// MashStep is one step of a mash profile. Steps only exist within their
// owning mash; duplicates across mashes are expected and names are never
// normalized.
type MashStep struct {
	Named
	mtype        int
	infuseAmount value.Value // amount in liters
	stepTempC    float64
	stepTimeMin  float64
	rampTimeMin  value.Value // optional double
	endTempC     value.Value // optional double

	mash entity.Entity
}

// NewMashStep constructs a mash step from a parsed bundle.
func NewMashStep(b *entity.Bundle) entity.Entity {
	s := &MashStep{
		infuseAmount: value.AmountOf(0, "l"),
		rampTimeMin:  value.Null(value.KindDouble),
		endTempC:     value.Null(value.KindDouble),
	}
	s.SetName(b.TakeOr("name", value.String("")).String())
	if v, ok := b.Take("type"); ok {
		s.mtype = v.Enum()
	}
	s.infuseAmount = b.TakeOr("infuseAmount", s.infuseAmount)
	s.stepTempC = b.TakeOr("stepTempC", value.Double(0)).Double()
	s.stepTimeMin = b.TakeOr("stepTimeMin", value.Double(0)).Double()
	s.rampTimeMin = b.TakeOr("rampTimeMin", s.rampTimeMin)
	s.endTempC = b.TakeOr("endTempC", s.endTempC)
	return s
}

// SetContaining implements entity.Containable: a step registers with its
// owning mash at store time.
func (s *MashStep) SetContaining(parent entity.Entity) { s.mash = parent }

// Mash returns the owning mash, nil before store time.
func (s *MashStep) Mash() entity.Entity { return s.mash }

// MashStepTypes is the mash step property type registry.
var MashStepTypes = func() *typereg.Registry {
	r := typereg.New("MashStep", NamedTypes)
	r.Register("type", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("infuseAmount", typereg.Entry{Type: typereg.TypeAmount})
	r.Register("stepTempC", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("stepTimeMin", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("rampTimeMin", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("endTempC", typereg.Entry{Type: typereg.TypeOptDouble})
	return r
}()

var mashStepAccessors = entity.Accessors[*MashStep]{
	"name": nameAccessor[*MashStep](),
	"type": {
		Get: func(s *MashStep) value.Value { return value.Enum(s.mtype) },
		Set: func(s *MashStep, v value.Value) { s.mtype = v.Enum() },
	},
	"infuseAmount": {
		Get: func(s *MashStep) value.Value { return s.infuseAmount },
		Set: func(s *MashStep, v value.Value) { s.infuseAmount = v },
	},
	"stepTempC": {
		Get: func(s *MashStep) value.Value { return value.Double(s.stepTempC) },
		Set: func(s *MashStep, v value.Value) { s.stepTempC = v.Double() },
	},
	"stepTimeMin": {
		Get: func(s *MashStep) value.Value { return value.Double(s.stepTimeMin) },
		Set: func(s *MashStep, v value.Value) { s.stepTimeMin = v.Double() },
	},
	"rampTimeMin": {
		Get: func(s *MashStep) value.Value { return s.rampTimeMin },
		Set: func(s *MashStep, v value.Value) { s.rampTimeMin = v },
	},
	"endTempC": {
		Get: func(s *MashStep) value.Value { return s.endTempC },
		Set: func(s *MashStep, v value.Value) { s.endTempC = v },
	},
}

// Kind implements entity.Entity.
func (s *MashStep) Kind() string { return "MashStep" }

// Get implements entity.Entity.
func (s *MashStep) Get(prop string) value.Value { return entity.GetFrom(s, mashStepAccessors, prop) }

// Set implements entity.Entity.
func (s *MashStep) Set(prop string, v value.Value) { entity.SetOn(s, mashStepAccessors, prop, v) }

// Properties implements entity.Entity.
func (s *MashStep) Properties() []string { return entity.Names(mashStepAccessors) }

// MashStepEqual compares two steps field by field. It backs the mash's
// composite equality, not a store-level duplicate check (steps opt out of
// that).
func MashStepEqual(a, b entity.Entity) bool {
	x, ok := a.(*MashStep)
	if !ok {
		return false
	}
	y, ok := b.(*MashStep)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.mtype == y.mtype &&
		x.infuseAmount.Equal(y.infuseAmount) &&
		x.stepTempC == y.stepTempC &&
		x.stepTimeMin == y.stepTimeMin
}
