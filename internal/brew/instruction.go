package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Instruction is one brew-day direction. Instructions are order-significant,
// owned by their recipe, and never deduplicated or renamed: "Add hops" can
// legitimately appear in every recipe.
type Instruction struct {
	Named
	directions  string
	completed   bool
	timerValue  value.Value // optional string
	intervalMin value.Value // optional double

	recipe entity.Entity
}

// NewInstruction constructs an instruction from a parsed bundle.
func NewInstruction(b *entity.Bundle) entity.Entity {
	i := &Instruction{
		timerValue:  value.Null(value.KindString),
		intervalMin: value.Null(value.KindDouble),
	}
	i.SetName(b.TakeOr("name", value.String("")).String())
	i.directions = b.TakeOr("directions", value.String("")).String()
	i.completed = b.TakeOr("completed", value.Bool(false)).Bool()
	i.timerValue = b.TakeOr("timerValue", i.timerValue)
	i.intervalMin = b.TakeOr("intervalMin", i.intervalMin)
	return i
}

// SetContaining implements entity.Containable.
func (i *Instruction) SetContaining(parent entity.Entity) { i.recipe = parent }

// Recipe returns the owning recipe, nil before store time.
func (i *Instruction) Recipe() entity.Entity { return i.recipe }

// InstructionTypes is the instruction property type registry.
var InstructionTypes = func() *typereg.Registry {
	r := typereg.New("Instruction", NamedTypes)
	r.Register("directions", typereg.Entry{Type: typereg.TypeString})
	r.Register("completed", typereg.Entry{Type: typereg.TypeBool})
	r.Register("timerValue", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("intervalMin", typereg.Entry{Type: typereg.TypeOptDouble})
	return r
}()

var instructionAccessors = entity.Accessors[*Instruction]{
	"name": nameAccessor[*Instruction](),
	"directions": {
		Get: func(i *Instruction) value.Value { return value.String(i.directions) },
		Set: func(i *Instruction, v value.Value) { i.directions = v.String() },
	},
	"completed": {
		Get: func(i *Instruction) value.Value { return value.Bool(i.completed) },
		Set: func(i *Instruction, v value.Value) { i.completed = v.Bool() },
	},
	"timerValue": {
		Get: func(i *Instruction) value.Value { return i.timerValue },
		Set: func(i *Instruction, v value.Value) { i.timerValue = v },
	},
	"intervalMin": {
		Get: func(i *Instruction) value.Value { return i.intervalMin },
		Set: func(i *Instruction, v value.Value) { i.intervalMin = v },
	},
}

// Kind implements entity.Entity.
func (i *Instruction) Kind() string { return "Instruction" }

// Get implements entity.Entity.
func (i *Instruction) Get(prop string) value.Value {
	return entity.GetFrom(i, instructionAccessors, prop)
}

// Set implements entity.Entity.
func (i *Instruction) Set(prop string, v value.Value) { entity.SetOn(i, instructionAccessors, prop, v) }

// Properties implements entity.Entity.
func (i *Instruction) Properties() []string { return entity.Names(instructionAccessors) }

// InstructionEqual compares two directions field by field. Instructions opt
// out of store-level duplicate checks, so this only backs explicit
// comparisons.
func InstructionEqual(a, b entity.Entity) bool {
	x, ok := a.(*Instruction)
	if !ok {
		return false
	}
	y, ok := b.(*Instruction)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.directions == y.directions &&
		x.completed == y.completed
}
