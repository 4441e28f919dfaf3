// Package beerxml holds the BeerXML 1.0 format binding: external tag
// names, enum token tables, unit spellings, and the per-kind record
// schemas that drive the serialization engine. Everything specific to the
// wire format lives here as static data; the engine and the domain model
// know nothing about BeerXML.
package beerxml
