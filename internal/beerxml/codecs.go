package beerxml

import "github.com/vk/brewdoc/internal/codec"

// Enum token tables. Ordinals match the domain constants in internal/brew;
// the first token per ordinal is the canonical export spelling, later ones
// are decode-only aliases for files in the wild.

var hopUseCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Boil"},
	codec.EnumPair{Ordinal: 1, Token: "Dry Hop"},
	codec.EnumPair{Ordinal: 2, Token: "Mash"},
	codec.EnumPair{Ordinal: 3, Token: "First Wort"},
	codec.EnumPair{Ordinal: 4, Token: "Aroma"},
)

var hopFormCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Pellet"},
	codec.EnumPair{Ordinal: 1, Token: "Plug"},
	codec.EnumPair{Ordinal: 2, Token: "Leaf"},
)

var fermentableTypeCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Grain"},
	codec.EnumPair{Ordinal: 1, Token: "Sugar"},
	codec.EnumPair{Ordinal: 2, Token: "Extract"},
	codec.EnumPair{Ordinal: 3, Token: "Dry Extract"},
	codec.EnumPair{Ordinal: 4, Token: "Adjunct"},
)

var yeastTypeCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Ale"},
	codec.EnumPair{Ordinal: 1, Token: "Lager"},
	codec.EnumPair{Ordinal: 2, Token: "Wheat"},
	codec.EnumPair{Ordinal: 3, Token: "Wine"},
	codec.EnumPair{Ordinal: 4, Token: "Champagne"},
)

var yeastFormCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Liquid"},
	codec.EnumPair{Ordinal: 1, Token: "Dry"},
	codec.EnumPair{Ordinal: 2, Token: "Slant"},
	codec.EnumPair{Ordinal: 3, Token: "Culture"},
)

var flocculationCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Low"},
	codec.EnumPair{Ordinal: 1, Token: "Medium"},
	codec.EnumPair{Ordinal: 2, Token: "High"},
	codec.EnumPair{Ordinal: 3, Token: "Very High"},
)

var miscTypeCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Spice"},
	codec.EnumPair{Ordinal: 1, Token: "Fining"},
	codec.EnumPair{Ordinal: 2, Token: "Water Agent"},
	codec.EnumPair{Ordinal: 3, Token: "Herb"},
	codec.EnumPair{Ordinal: 4, Token: "Flavor"},
	codec.EnumPair{Ordinal: 4, Token: "Flavour"},
	codec.EnumPair{Ordinal: 5, Token: "Other"},
)

var miscUseCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Boil"},
	codec.EnumPair{Ordinal: 1, Token: "Mash"},
	codec.EnumPair{Ordinal: 2, Token: "Primary"},
	codec.EnumPair{Ordinal: 3, Token: "Secondary"},
	codec.EnumPair{Ordinal: 4, Token: "Bottling"},
)

var styleTypeCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Lager"},
	codec.EnumPair{Ordinal: 1, Token: "Ale"},
	codec.EnumPair{Ordinal: 2, Token: "Mead"},
	codec.EnumPair{Ordinal: 3, Token: "Wheat"},
	codec.EnumPair{Ordinal: 4, Token: "Mixed"},
	codec.EnumPair{Ordinal: 5, Token: "Cider"},
)

var mashStepTypeCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Infusion"},
	codec.EnumPair{Ordinal: 1, Token: "Temperature"},
	codec.EnumPair{Ordinal: 2, Token: "Decoction"},
)

var recipeTypeCodec = codec.NewEnumCodec(
	codec.EnumPair{Ordinal: 0, Token: "Extract"},
	codec.EnumPair{Ordinal: 1, Token: "Partial Mash"},
	codec.EnumPair{Ordinal: 2, Token: "All Grain"},
)

// Volume amounts are canonically liters. Some writers emit quart-suffixed
// infusion amounts; accept them and convert.
var litersCodec = codec.NewUnitCodec("l").
	Alias("liters", 1).
	Alias("litres", 1).
	Alias("qt", 0.946353)
