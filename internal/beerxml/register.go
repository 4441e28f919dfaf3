package beerxml

import (
	"github.com/vk/brewdoc/internal/brew"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/registry"
)

// Register wires the full BeerXML binding into reg: one Kind per record
// type, pairing its schema table with the domain constructors, equality
// tests, and store policies. Call registry.Validate afterwards.
func Register(reg *registry.Registry) {
	// Shared catalog ingredients are deduplicated and renamed on clash.
	catalog := entity.Policy{CheckDuplicates: true, NormalizeNames: true}

	reg.Register(&registry.Kind{
		Name:   "Hop",
		Tag:    "HOP",
		Schema: hopSchema,
		Types:  brew.HopTypes,
		New:    brew.NewHop,
		Equal:  brew.HopEqual,
		Policy: catalog,
	})
	reg.Register(&registry.Kind{
		Name:   "Fermentable",
		Tag:    "FERMENTABLE",
		Schema: fermentableSchema,
		Types:  brew.FermentableTypes,
		New:    brew.NewFermentable,
		Equal:  brew.FermentableEqual,
		Policy: catalog,
	})
	reg.Register(&registry.Kind{
		Name:   "Yeast",
		Tag:    "YEAST",
		Schema: yeastSchema,
		Types:  brew.YeastTypes,
		New:    brew.NewYeast,
		Equal:  brew.YeastEqual,
		Policy: catalog,
	})
	reg.Register(&registry.Kind{
		Name:   "Misc",
		Tag:    "MISC",
		Schema: miscSchema,
		Types:  brew.MiscTypes,
		New:    brew.NewMisc,
		Equal:  brew.MiscEqual,
		Policy: catalog,
	})
	reg.Register(&registry.Kind{
		Name:   "Water",
		Tag:    "WATER",
		Schema: waterSchema,
		Types:  brew.WaterTypes,
		New:    brew.NewWater,
		Equal:  brew.WaterEqual,
		Policy: catalog,
	})
	reg.Register(&registry.Kind{
		Name:   "Style",
		Tag:    "STYLE",
		Schema: styleSchema,
		Types:  brew.StyleTypes,
		New:    brew.NewStyle,
		Equal:  brew.StyleEqual,
		Policy: catalog,
	})
	reg.Register(&registry.Kind{
		Name:   "Equipment",
		Tag:    "EQUIPMENT",
		Schema: equipmentSchema,
		Types:  brew.EquipmentTypes,
		New:    brew.NewEquipment,
		Equal:  brew.EquipmentEqual,
		Policy: catalog,
	})

	// Mash equality depends on its steps, so the duplicate check re-runs
	// after children are attached.
	reg.Register(&registry.Kind{
		Name:   "Mash",
		Tag:    "MASH",
		Schema: mashSchema,
		Types:  brew.MashTypes,
		New:    brew.NewMash,
		Equal:  brew.MashEqual,
		Policy: entity.Policy{CheckDuplicates: true, NormalizeNames: true, LateDuplicateCheck: true},
	})

	// Steps and instructions only exist inside their parent: no dedupe, no
	// rename, but the parent link is set at store time.
	reg.Register(&registry.Kind{
		Name:   "MashStep",
		Tag:    "MASH_STEP",
		Schema: mashStepSchema,
		Types:  brew.MashStepTypes,
		New:    brew.NewMashStep,
		Equal:  brew.MashStepEqual,
		Policy: entity.Policy{OwnedByParent: true},
	})
	reg.Register(&registry.Kind{
		Name:   "Instruction",
		Tag:    "INSTRUCTION",
		Schema: instructionSchema,
		Types:  brew.InstructionTypes,
		New:    brew.NewInstruction,
		Equal:  brew.InstructionEqual,
		Policy: entity.Policy{OwnedByParent: true},
	})

	// Recipes are never deduplicated; brewers keep iterations of the same
	// beer under slightly different names.
	reg.Register(&registry.Kind{
		Name:   "Recipe",
		Tag:    "RECIPE",
		Schema: recipeSchema,
		Types:  brew.RecipeTypes,
		New:    brew.NewRecipe,
		Equal:  brew.RecipeEqual,
		Policy: entity.Policy{NormalizeNames: true},
	})
}
