package brew

// Domain enums are plain ordinals. External tokens live with the format's
// schema data, not here; codecs convert between the two at the schema
// boundary only.

// HopUse says where in the process a hop addition happens.
const (
	HopUseBoil int = iota
	HopUseDryHop
	HopUseMash
	HopUseFirstWort
	HopUseAroma
)

// HopForm is the physical form of the hop product.
const (
	HopFormPellet int = iota
	HopFormPlug
	HopFormLeaf
)

// FermentableType classifies a fermentable ingredient.
const (
	FermentableGrain int = iota
	FermentableSugar
	FermentableExtract
	FermentableDryExtract
	FermentableAdjunct
)

// YeastType is the broad yeast family.
const (
	YeastAle int = iota
	YeastLager
	YeastWheat
	YeastWine
	YeastChampagne
)

// YeastForm is the packaging form of the yeast.
const (
	YeastFormLiquid int = iota
	YeastFormDry
	YeastFormSlant
	YeastFormCulture
)

// YeastFlocculation describes how readily the yeast settles.
const (
	FlocLow int = iota
	FlocMedium
	FlocHigh
	FlocVeryHigh
)

// MiscType classifies a miscellaneous ingredient.
const (
	MiscSpice int = iota
	MiscFining
	MiscWaterAgent
	MiscHerb
	MiscFlavor
	MiscOther
)

// MiscUse says where a misc addition happens.
const (
	MiscUseBoil int = iota
	MiscUseMash
	MiscUsePrimary
	MiscUseSecondary
	MiscUseBottling
)

// StyleType is the top-level style family.
const (
	StyleLager int = iota
	StyleAle
	StyleMead
	StyleWheat
	StyleMixed
	StyleCider
)

// MashStepType distinguishes how heat is added during a step.
const (
	StepInfusion int = iota
	StepTemperature
	StepDecoction
)

// RecipeType is the production method.
const (
	RecipeExtract int = iota
	RecipePartialMash
	RecipeAllGrain
)
