package beerxml

import (
	"github.com/vk/brewdoc/internal/proppath"
	"github.com/vk/brewdoc/internal/schema"
)

// beerXMLVersion is the record version every BeerXML 1.0 writer must emit.
const beerXMLVersion = "1"

// RootTag is the document root element used when exporting a mixed set of
// records.
const RootTag = "BREW_DATA"

func version() schema.Field {
	return schema.Field{Kind: schema.FieldRequiredConstant, XPath: "VERSION", Constant: beerXMLVersion}
}

func name() schema.Field {
	return schema.Field{Kind: schema.FieldString, XPath: "NAME", Path: proppath.New("name")}
}

// discard marks a tag we recognize but do not model. Parsing consumes it
// silently; export never emits it.
func discard(kind schema.FieldKind, tag string) schema.Field {
	return schema.Field{Kind: kind, XPath: tag, Path: proppath.Null()}
}

var hopSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldDouble, XPath: "ALPHA", Path: proppath.New("alphaPct")},
	{Kind: schema.FieldDouble, XPath: "AMOUNT", Path: proppath.New("amountKg")},
	{Kind: schema.FieldEnum, XPath: "USE", Path: proppath.New("use"), Enum: hopUseCodec},
	{Kind: schema.FieldDouble, XPath: "TIME", Path: proppath.New("timeMin")},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	discard(schema.FieldString, "TYPE"),
	{Kind: schema.FieldEnum, XPath: "FORM", Path: proppath.New("form"), Enum: hopFormCodec},
	{Kind: schema.FieldDouble, XPath: "BETA", Path: proppath.New("betaPct")},
	{Kind: schema.FieldString, XPath: "ORIGIN", Path: proppath.New("origin")},
	discard(schema.FieldString, "DISPLAY_AMOUNT"),
	discard(schema.FieldString, "DISPLAY_TIME"),
	discard(schema.FieldString, "INVENTORY"),
}

var fermentableSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldEnum, XPath: "TYPE", Path: proppath.New("type"), Enum: fermentableTypeCodec},
	{Kind: schema.FieldDouble, XPath: "AMOUNT", Path: proppath.New("amountKg")},
	{Kind: schema.FieldDouble, XPath: "YIELD", Path: proppath.New("yieldPct")},
	{Kind: schema.FieldDouble, XPath: "COLOR", Path: proppath.New("colorSRM")},
	{Kind: schema.FieldBool, XPath: "ADD_AFTER_BOIL", Path: proppath.New("addAfterBoil")},
	{Kind: schema.FieldString, XPath: "ORIGIN", Path: proppath.New("origin")},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	discard(schema.FieldString, "DISPLAY_AMOUNT"),
	discard(schema.FieldString, "DISPLAY_COLOR"),
	discard(schema.FieldString, "INVENTORY"),
	discard(schema.FieldString, "POTENTIAL"),
}

var yeastSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldEnum, XPath: "TYPE", Path: proppath.New("type"), Enum: yeastTypeCodec},
	{Kind: schema.FieldEnum, XPath: "FORM", Path: proppath.New("form"), Enum: yeastFormCodec},
	{Kind: schema.FieldUnit, XPath: "AMOUNT", Path: proppath.New("amount"), Unit: litersCodec},
	{Kind: schema.FieldString, XPath: "LABORATORY", Path: proppath.New("lab")},
	{Kind: schema.FieldString, XPath: "PRODUCT_ID", Path: proppath.New("productId")},
	{Kind: schema.FieldEnum, XPath: "FLOCCULATION", Path: proppath.New("flocculation"), Enum: flocculationCodec},
	{Kind: schema.FieldDouble, XPath: "ATTENUATION", Path: proppath.New("attenuationPct")},
	{Kind: schema.FieldUInt, XPath: "TIMES_CULTURED", Path: proppath.New("timesCultured")},
	discard(schema.FieldString, "AMOUNT_IS_WEIGHT"),
	discard(schema.FieldString, "DISPLAY_AMOUNT"),
	discard(schema.FieldString, "BEST_FOR"),
}

var miscSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldEnum, XPath: "TYPE", Path: proppath.New("type"), Enum: miscTypeCodec},
	{Kind: schema.FieldEnum, XPath: "USE", Path: proppath.New("use"), Enum: miscUseCodec},
	{Kind: schema.FieldDouble, XPath: "TIME", Path: proppath.New("timeMin")},
	{Kind: schema.FieldDouble, XPath: "AMOUNT", Path: proppath.New("amountKg")},
	{Kind: schema.FieldString, XPath: "USE_FOR", Path: proppath.New("useFor")},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	discard(schema.FieldString, "AMOUNT_IS_WEIGHT"),
	discard(schema.FieldString, "DISPLAY_AMOUNT"),
	discard(schema.FieldString, "DISPLAY_TIME"),
}

var waterSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldDouble, XPath: "AMOUNT", Path: proppath.New("amountL")},
	{Kind: schema.FieldDouble, XPath: "CALCIUM", Path: proppath.New("calcium")},
	{Kind: schema.FieldDouble, XPath: "BICARBONATE", Path: proppath.New("bicarbonate")},
	{Kind: schema.FieldDouble, XPath: "SULFATE", Path: proppath.New("sulfate")},
	{Kind: schema.FieldDouble, XPath: "CHLORIDE", Path: proppath.New("chloride")},
	{Kind: schema.FieldDouble, XPath: "SODIUM", Path: proppath.New("sodium")},
	{Kind: schema.FieldDouble, XPath: "MAGNESIUM", Path: proppath.New("magnesium")},
	{Kind: schema.FieldDouble, XPath: "PH", Path: proppath.New("ph")},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	discard(schema.FieldString, "DISPLAY_AMOUNT"),
}

var styleSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldString, XPath: "CATEGORY", Path: proppath.New("category")},
	{Kind: schema.FieldEnum, XPath: "TYPE", Path: proppath.New("type"), Enum: styleTypeCodec},
	{Kind: schema.FieldDouble, XPath: "OG_MIN", Path: proppath.New("ogMin")},
	{Kind: schema.FieldDouble, XPath: "OG_MAX", Path: proppath.New("ogMax")},
	{Kind: schema.FieldDouble, XPath: "FG_MIN", Path: proppath.New("fgMin")},
	{Kind: schema.FieldDouble, XPath: "FG_MAX", Path: proppath.New("fgMax")},
	{Kind: schema.FieldDouble, XPath: "IBU_MIN", Path: proppath.New("ibuMin")},
	{Kind: schema.FieldDouble, XPath: "IBU_MAX", Path: proppath.New("ibuMax")},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	discard(schema.FieldString, "CATEGORY_NUMBER"),
	discard(schema.FieldString, "STYLE_LETTER"),
	discard(schema.FieldString, "STYLE_GUIDE"),
	discard(schema.FieldDouble, "COLOR_MIN"),
	discard(schema.FieldDouble, "COLOR_MAX"),
}

var equipmentSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldDouble, XPath: "BOIL_SIZE", Path: proppath.New("boilSizeL")},
	{Kind: schema.FieldDouble, XPath: "BATCH_SIZE", Path: proppath.New("batchSizeL")},
	{Kind: schema.FieldDouble, XPath: "TUN_VOLUME", Path: proppath.New("tunVolumeL")},
	{Kind: schema.FieldDouble, XPath: "BOIL_TIME", Path: proppath.New("boilTimeMin")},
	{Kind: schema.FieldDouble, XPath: "EVAP_RATE", Path: proppath.New("evapRatePct")},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	discard(schema.FieldString, "CALC_BOIL_VOLUME"),
	discard(schema.FieldString, "DISPLAY_BOIL_SIZE"),
	discard(schema.FieldString, "DISPLAY_BATCH_SIZE"),
}

var mashStepSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldEnum, XPath: "TYPE", Path: proppath.New("type"), Enum: mashStepTypeCodec},
	{Kind: schema.FieldUnit, XPath: "INFUSE_AMOUNT", Path: proppath.New("infuseAmount"), Unit: litersCodec},
	{Kind: schema.FieldDouble, XPath: "STEP_TEMP", Path: proppath.New("stepTempC")},
	{Kind: schema.FieldDouble, XPath: "STEP_TIME", Path: proppath.New("stepTimeMin")},
	{Kind: schema.FieldDouble, XPath: "RAMP_TIME", Path: proppath.New("rampTimeMin")},
	{Kind: schema.FieldDouble, XPath: "END_TEMP", Path: proppath.New("endTempC")},
	discard(schema.FieldString, "DESCRIPTION"),
	discard(schema.FieldString, "DISPLAY_STEP_TEMP"),
	discard(schema.FieldString, "DISPLAY_INFUSE_AMT"),
}

var mashSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldDouble, XPath: "GRAIN_TEMP", Path: proppath.New("grainTempC")},
	{Kind: schema.FieldListOfRecords, XPath: "MASH_STEPS/MASH_STEP", Path: proppath.New("steps"), ChildKind: "MashStep"},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	{Kind: schema.FieldDouble, XPath: "SPARGE_TEMP", Path: proppath.New("spargeTempC")},
	{Kind: schema.FieldDouble, XPath: "PH", Path: proppath.New("ph")},
	discard(schema.FieldString, "TUN_TEMP"),
	discard(schema.FieldString, "DISPLAY_GRAIN_TEMP"),
	discard(schema.FieldString, "DISPLAY_SPARGE_TEMP"),
}

// Instructions are an application extension to plain BeerXML.
var instructionSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldString, XPath: "DIRECTIONS", Path: proppath.New("directions")},
	{Kind: schema.FieldString, XPath: "TIMER_VALUE", Path: proppath.New("timerValue")},
	{Kind: schema.FieldBool, XPath: "COMPLETED", Path: proppath.New("completed")},
	{Kind: schema.FieldDouble, XPath: "INTERVAL", Path: proppath.New("intervalMin")},
}

var recipeSchema = schema.Record{
	name(),
	version(),
	{Kind: schema.FieldEnum, XPath: "TYPE", Path: proppath.New("type"), Enum: recipeTypeCodec},
	{Kind: schema.FieldRecord, XPath: "STYLE", Path: proppath.New("style"), ChildKind: "Style"},
	{Kind: schema.FieldRecord, XPath: "EQUIPMENT", Path: proppath.New("equipment"), ChildKind: "Equipment"},
	{Kind: schema.FieldString, XPath: "BREWER", Path: proppath.New("brewer")},
	{Kind: schema.FieldDouble, XPath: "BATCH_SIZE", Path: proppath.New("batchSizeL")},
	{Kind: schema.FieldDouble, XPath: "BOIL_SIZE", Path: proppath.New("boilSizeL")},
	{Kind: schema.FieldDouble, XPath: "BOIL_TIME", Path: proppath.New("boilTimeMin")},
	{Kind: schema.FieldDouble, XPath: "EFFICIENCY", Path: proppath.New("efficiencyPct")},
	{Kind: schema.FieldListOfRecords, XPath: "HOPS/HOP", Path: proppath.New("hops"), ChildKind: "Hop"},
	{Kind: schema.FieldListOfRecords, XPath: "FERMENTABLES/FERMENTABLE", Path: proppath.New("fermentables"), ChildKind: "Fermentable"},
	{Kind: schema.FieldListOfRecords, XPath: "MISCS/MISC", Path: proppath.New("miscs"), ChildKind: "Misc"},
	{Kind: schema.FieldListOfRecords, XPath: "YEASTS/YEAST", Path: proppath.New("yeasts"), ChildKind: "Yeast"},
	{Kind: schema.FieldListOfRecords, XPath: "WATERS/WATER", Path: proppath.New("waters"), ChildKind: "Water"},
	{Kind: schema.FieldRecord, XPath: "MASH", Path: proppath.New("mash"), ChildKind: "Mash"},
	{Kind: schema.FieldListOfRecords, XPath: "INSTRUCTIONS/INSTRUCTION", Path: proppath.New("instructions"), ChildKind: "Instruction"},
	{Kind: schema.FieldString, XPath: "NOTES", Path: proppath.New("notes")},
	{Kind: schema.FieldBool, XPath: "FORCED_CARBONATION", Path: proppath.New("forcedCarb")},
	{Kind: schema.FieldDouble, XPath: "CARBONATION", Path: proppath.New("carbonation")},
	{Kind: schema.FieldDouble, XPath: "ABV", Path: proppath.New("abv")},
	{Kind: schema.FieldDate, XPath: "DATE", Path: proppath.New("date")},
	discard(schema.FieldString, "ASST_BREWER"),
	discard(schema.FieldDouble, "OG"),
	discard(schema.FieldDouble, "FG"),
	discard(schema.FieldString, "TASTE_NOTES"),
	discard(schema.FieldString, "TASTE_RATING"),
	discard(schema.FieldString, "FERMENTATION_STAGES"),
	discard(schema.FieldString, "PRIMARY_AGE"),
	discard(schema.FieldString, "PRIMARY_TEMP"),
	discard(schema.FieldString, "CARBONATION_USED"),
	discard(schema.FieldString, "ESTIMATED_OG"),
	discard(schema.FieldString, "ESTIMATED_FG"),
	discard(schema.FieldString, "IBU"),
	discard(schema.FieldString, "EST_COLOR"),
}
