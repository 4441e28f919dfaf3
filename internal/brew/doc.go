// Package brew holds the concrete domain entity kinds the engine moves in
// and out of interchange documents: recipes and their ingredients, styles,
// equipment, mash profiles, and steps.
//
// Everything here is deliberately dumb data with explicit accessor tables.
// Brewing math (ABV, IBU, color) belongs to the surrounding application,
// not to this module.
package brew
