package brew

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Recipe is the composite root of the model: head fields plus nested
// style, equipment, and mash records and ordered ingredient lists.
type Recipe struct {
	Named
	rtype         int
	brewer        value.Value // optional string
	batchSizeL    float64
	boilSizeL     float64
	boilTimeMin   float64
	efficiencyPct float64
	forcedCarb    bool
	abv           value.Value // optional double, calculated upstream
	carbonation   value.Value // optional double
	date          value.Value // optional date
	notes         value.Value // optional string

	style     entity.Entity
	equipment entity.Entity
	mash      entity.Entity

	hops         []entity.Entity
	fermentables []entity.Entity
	yeasts       []entity.Entity
	miscs        []entity.Entity
	waters       []entity.Entity
	instructions []entity.Entity
}

// NewRecipe constructs a recipe from a parsed bundle.
func NewRecipe(b *entity.Bundle) entity.Entity {
	r := &Recipe{
		brewer:      value.Null(value.KindString),
		abv:         value.Null(value.KindDouble),
		carbonation: value.Null(value.KindDouble),
		date:        value.Null(value.KindDate),
		notes:       value.Null(value.KindString),
	}
	r.SetName(b.TakeOr("name", value.String("")).String())
	if v, ok := b.Take("type"); ok {
		r.rtype = v.Enum()
	}
	r.brewer = b.TakeOr("brewer", r.brewer)
	r.batchSizeL = b.TakeOr("batchSizeL", value.Double(0)).Double()
	r.boilSizeL = b.TakeOr("boilSizeL", value.Double(0)).Double()
	r.boilTimeMin = b.TakeOr("boilTimeMin", value.Double(0)).Double()
	r.efficiencyPct = b.TakeOr("efficiencyPct", value.Double(0)).Double()
	r.forcedCarb = b.TakeOr("forcedCarb", value.Bool(false)).Bool()
	r.abv = b.TakeOr("abv", r.abv)
	r.carbonation = b.TakeOr("carbonation", r.carbonation)
	r.date = b.TakeOr("date", r.date)
	r.notes = b.TakeOr("notes", r.notes)
	return r
}

// Mash returns the recipe's mash profile, nil when absent.
func (r *Recipe) Mash() entity.Entity { return r.mash }

// Instructions returns the brew-day directions in document order.
func (r *Recipe) Instructions() []entity.Entity { return r.instructions }

// Hops returns the hop additions in document order.
func (r *Recipe) Hops() []entity.Entity { return r.hops }

// RecipeTypes is the recipe property type registry.
var RecipeTypes = func() *typereg.Registry {
	r := typereg.New("Recipe", NamedTypes)
	r.Register("type", typereg.Entry{Type: typereg.TypeInt, IsEnum: true})
	r.Register("brewer", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("batchSizeL", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("boilSizeL", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("boilTimeMin", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("efficiencyPct", typereg.Entry{Type: typereg.TypeDouble})
	r.Register("forcedCarb", typereg.Entry{Type: typereg.TypeBool})
	r.Register("abv", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("carbonation", typereg.Entry{Type: typereg.TypeOptDouble})
	r.Register("date", typereg.Entry{Type: typereg.TypeOptDate})
	r.Register("notes", typereg.Entry{Type: typereg.TypeOptString})
	r.Register("style", typereg.Entry{Type: typereg.TypeRecord, Sub: StyleTypes})
	r.Register("equipment", typereg.Entry{Type: typereg.TypeRecord, Sub: EquipmentTypes})
	r.Register("mash", typereg.Entry{Type: typereg.TypeRecord, Sub: MashTypes})
	r.Register("hops", typereg.Entry{Type: typereg.TypeRecordList, Sub: HopTypes})
	r.Register("fermentables", typereg.Entry{Type: typereg.TypeRecordList, Sub: FermentableTypes})
	r.Register("yeasts", typereg.Entry{Type: typereg.TypeRecordList, Sub: YeastTypes})
	r.Register("miscs", typereg.Entry{Type: typereg.TypeRecordList, Sub: MiscTypes})
	r.Register("waters", typereg.Entry{Type: typereg.TypeRecordList, Sub: WaterTypes})
	r.Register("instructions", typereg.Entry{Type: typereg.TypeRecordList, Sub: InstructionTypes})
	return r
}()

func listGet(list []entity.Entity) value.Value {
	refs := make([]any, len(list))
	for i, e := range list {
		refs[i] = e
	}
	return value.RecordList(refs)
}

func listSet(dst *[]entity.Entity, v value.Value) {
	*dst = (*dst)[:0]
	for _, ref := range v.RecordRefs() {
		if e, ok := ref.(entity.Entity); ok {
			*dst = append(*dst, e)
		}
	}
}

func recordGet(e entity.Entity) value.Value {
	if e == nil {
		return value.Null(value.KindRecord)
	}
	return value.Record(e)
}

func recordSet(dst *entity.Entity, v value.Value) {
	if ref, ok := v.RecordRef().(entity.Entity); ok {
		*dst = ref
	} else {
		*dst = nil
	}
}

var recipeAccessors = entity.Accessors[*Recipe]{
	"name": nameAccessor[*Recipe](),
	"type": {
		Get: func(r *Recipe) value.Value { return value.Enum(r.rtype) },
		Set: func(r *Recipe, v value.Value) { r.rtype = v.Enum() },
	},
	"brewer": {
		Get: func(r *Recipe) value.Value { return r.brewer },
		Set: func(r *Recipe, v value.Value) { r.brewer = v },
	},
	"batchSizeL": {
		Get: func(r *Recipe) value.Value { return value.Double(r.batchSizeL) },
		Set: func(r *Recipe, v value.Value) { r.batchSizeL = v.Double() },
	},
	"boilSizeL": {
		Get: func(r *Recipe) value.Value { return value.Double(r.boilSizeL) },
		Set: func(r *Recipe, v value.Value) { r.boilSizeL = v.Double() },
	},
	"boilTimeMin": {
		Get: func(r *Recipe) value.Value { return value.Double(r.boilTimeMin) },
		Set: func(r *Recipe, v value.Value) { r.boilTimeMin = v.Double() },
	},
	"efficiencyPct": {
		Get: func(r *Recipe) value.Value { return value.Double(r.efficiencyPct) },
		Set: func(r *Recipe, v value.Value) { r.efficiencyPct = v.Double() },
	},
	"forcedCarb": {
		Get: func(r *Recipe) value.Value { return value.Bool(r.forcedCarb) },
		Set: func(r *Recipe, v value.Value) { r.forcedCarb = v.Bool() },
	},
	"abv": {
		Get: func(r *Recipe) value.Value { return r.abv },
		Set: func(r *Recipe, v value.Value) { r.abv = v },
	},
	"carbonation": {
		Get: func(r *Recipe) value.Value { return r.carbonation },
		Set: func(r *Recipe, v value.Value) { r.carbonation = v },
	},
	"date": {
		Get: func(r *Recipe) value.Value { return r.date },
		Set: func(r *Recipe, v value.Value) { r.date = v },
	},
	"notes": {
		Get: func(r *Recipe) value.Value { return r.notes },
		Set: func(r *Recipe, v value.Value) { r.notes = v },
	},
	"style": {
		Get: func(r *Recipe) value.Value { return recordGet(r.style) },
		Set: func(r *Recipe, v value.Value) { recordSet(&r.style, v) },
	},
	"equipment": {
		Get: func(r *Recipe) value.Value { return recordGet(r.equipment) },
		Set: func(r *Recipe, v value.Value) { recordSet(&r.equipment, v) },
	},
	"mash": {
		Get: func(r *Recipe) value.Value { return recordGet(r.mash) },
		Set: func(r *Recipe, v value.Value) { recordSet(&r.mash, v) },
	},
	"hops": {
		Get: func(r *Recipe) value.Value { return listGet(r.hops) },
		Set: func(r *Recipe, v value.Value) { listSet(&r.hops, v) },
	},
	"fermentables": {
		Get: func(r *Recipe) value.Value { return listGet(r.fermentables) },
		Set: func(r *Recipe, v value.Value) { listSet(&r.fermentables, v) },
	},
	"yeasts": {
		Get: func(r *Recipe) value.Value { return listGet(r.yeasts) },
		Set: func(r *Recipe, v value.Value) { listSet(&r.yeasts, v) },
	},
	"miscs": {
		Get: func(r *Recipe) value.Value { return listGet(r.miscs) },
		Set: func(r *Recipe, v value.Value) { listSet(&r.miscs, v) },
	},
	"waters": {
		Get: func(r *Recipe) value.Value { return listGet(r.waters) },
		Set: func(r *Recipe, v value.Value) { listSet(&r.waters, v) },
	},
	"instructions": {
		Get: func(r *Recipe) value.Value { return listGet(r.instructions) },
		Set: func(r *Recipe, v value.Value) { listSet(&r.instructions, v) },
	},
}

// Kind implements entity.Entity.
func (r *Recipe) Kind() string { return "Recipe" }

// Get implements entity.Entity.
func (r *Recipe) Get(prop string) value.Value { return entity.GetFrom(r, recipeAccessors, prop) }

// Set implements entity.Entity.
func (r *Recipe) Set(prop string, v value.Value) { entity.SetOn(r, recipeAccessors, prop, v) }

// Properties implements entity.Entity.
func (r *Recipe) Properties() []string { return entity.Names(recipeAccessors) }

// RecipeEqual is the recipe equivalence test. Recipes opt out of duplicate
// checking (brewers keep iterations of the same beer), so this only backs
// explicit comparisons.
func RecipeEqual(a, b entity.Entity) bool {
	x, ok := a.(*Recipe)
	if !ok {
		return false
	}
	y, ok := b.(*Recipe)
	if !ok {
		return false
	}
	return x.Name() == y.Name() &&
		x.rtype == y.rtype &&
		x.batchSizeL == y.batchSizeL &&
		x.boilSizeL == y.boilSizeL
}
