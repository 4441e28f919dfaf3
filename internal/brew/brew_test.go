package brew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/brew"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/value"
)

func TestNewRecipeDefaults(t *testing.T) {
	t.Parallel()

	r := brew.NewRecipe(entity.NewBundle()).(*brew.Recipe)
	assert.Equal(t, "", r.Name())
	assert.Equal(t, 0.0, r.Get("batchSizeL").Double())
	assert.True(t, r.Get("brewer").IsNull())
	assert.True(t, r.Get("abv").IsNull())
	assert.True(t, r.Get("date").IsNull())

	// Absent sub-records read as null record references.
	mash := r.Get("mash")
	assert.Equal(t, value.KindRecord, mash.Kind())
	assert.True(t, mash.IsNull())
	assert.Nil(t, r.Mash())
}

func TestNewRecipeFromBundle(t *testing.T) {
	t.Parallel()

	b := entity.NewBundle()
	b.Put("name", value.String("Porter"))
	b.Put("type", value.Enum(brew.RecipePartialMash))
	b.Put("brewer", value.String("VK"))
	b.Put("batchSizeL", value.Double(19))
	b.Put("forcedCarb", value.Bool(true))

	r := brew.NewRecipe(b).(*brew.Recipe)
	assert.Equal(t, "Porter", r.Name())
	assert.Equal(t, brew.RecipePartialMash, r.Get("type").Enum())
	assert.Equal(t, "VK", r.Get("brewer").String())
	assert.Equal(t, 19.0, r.Get("batchSizeL").Double())
	assert.True(t, r.Get("forcedCarb").Bool())
}

func TestRecipeRecordAndListProperties(t *testing.T) {
	t.Parallel()

	r := brew.NewRecipe(entity.NewBundle()).(*brew.Recipe)

	styleBundle := entity.NewBundle()
	styleBundle.Put("name", value.String("Robust Porter"))
	style := brew.NewStyle(styleBundle)
	r.Set("style", value.Record(style))
	assert.Same(t, style, r.Get("style").RecordRef())

	h1 := brew.NewHop(entity.NewBundle())
	h2 := brew.NewHop(entity.NewBundle())
	h1.SetName("Fuggle")
	h2.SetName("EKG")
	r.Set("hops", value.RecordList([]any{h1, h2}))

	require.Len(t, r.Hops(), 2)
	assert.Equal(t, "Fuggle", r.Hops()[0].Name())
	assert.Equal(t, "EKG", r.Hops()[1].Name())

	// Clearing a record property drops the reference.
	r.Set("style", value.Null(value.KindRecord))
	assert.True(t, r.Get("style").IsNull())
}

func newStep(t *testing.T, name string, temp float64) entity.Entity {
	t.Helper()
	b := entity.NewBundle()
	b.Put("name", value.String(name))
	b.Put("type", value.Enum(brew.StepInfusion))
	b.Put("stepTempC", value.Double(temp))
	b.Put("stepTimeMin", value.Double(60))
	return brew.NewMashStep(b)
}

func newMash(t *testing.T, name string, steps ...entity.Entity) entity.Entity {
	t.Helper()
	b := entity.NewBundle()
	b.Put("name", value.String(name))
	b.Put("grainTempC", value.Double(22))
	m := brew.NewMash(b)
	refs := make([]any, len(steps))
	for i, s := range steps {
		refs[i] = s
	}
	m.Set("steps", value.RecordList(refs))
	return m
}

func TestMashEqualDependsOnSteps(t *testing.T) {
	t.Parallel()

	a := newMash(t, "Single", newStep(t, "Conversion", 67))
	b := newMash(t, "Single", newStep(t, "Conversion", 67))
	assert.True(t, brew.MashEqual(a, b))

	// Same head, different step detail.
	c := newMash(t, "Single", newStep(t, "Conversion", 68))
	assert.False(t, brew.MashEqual(a, c))

	// Same head, before any steps attach.
	d := newMash(t, "Single")
	assert.False(t, brew.MashEqual(a, d))

	// Step order is part of the profile.
	e := newMash(t, "Single", newStep(t, "A", 67), newStep(t, "B", 76))
	f := newMash(t, "Single", newStep(t, "B", 76), newStep(t, "A", 67))
	assert.False(t, brew.MashEqual(e, f))

	assert.False(t, brew.MashEqual(a, brew.NewHop(entity.NewBundle())))
}

func TestMashStepContaining(t *testing.T) {
	t.Parallel()

	step := newStep(t, "Conversion", 67).(*brew.MashStep)
	require.Nil(t, step.Mash())

	mash := newMash(t, "Single")
	var c entity.Containable = step
	c.SetContaining(mash)
	assert.Same(t, mash, step.Mash())
}

func TestMashStepInfuseAmountDefault(t *testing.T) {
	t.Parallel()

	step := newStep(t, "Conversion", 67)
	amt := step.Get("infuseAmount").Amount()
	assert.Equal(t, 0.0, amt.Quantity)
	assert.Equal(t, "l", amt.Unit)
}

func TestInstructionEqual(t *testing.T) {
	t.Parallel()

	mk := func(name, directions string) entity.Entity {
		b := entity.NewBundle()
		b.Put("name", value.String(name))
		b.Put("directions", value.String(directions))
		return brew.NewInstruction(b)
	}

	assert.True(t, brew.InstructionEqual(mk("Boil", "Boil 60 min"), mk("Boil", "Boil 60 min")))
	assert.False(t, brew.InstructionEqual(mk("Boil", "Boil 60 min"), mk("Boil", "Boil 90 min")))
	assert.False(t, brew.InstructionEqual(mk("Boil", "x"), mk("Mash", "x")))
}

func TestHopEqual(t *testing.T) {
	t.Parallel()

	mk := func(name string, alpha float64) entity.Entity {
		b := entity.NewBundle()
		b.Put("name", value.String(name))
		b.Put("alphaPct", value.Double(alpha))
		b.Put("use", value.Enum(brew.HopUseBoil))
		return brew.NewHop(b)
	}

	assert.True(t, brew.HopEqual(mk("Cascade", 5.5), mk("Cascade", 5.5)))
	assert.False(t, brew.HopEqual(mk("Cascade", 5.5), mk("Cascade", 7.0)))
}
