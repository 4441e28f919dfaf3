package codec

import (
	"fmt"
	"strings"

	"github.com/vk/brewdoc/internal/value"
)

// UnitCodec decodes amount leaves of the form "12.5" or "12.5 qt" into a
// quantity in the field's canonical unit, and encodes the canonical form
// back out. Alias spellings map to a scale factor relative to the canonical
// unit.
type UnitCodec struct {
	canonical string
	// scale maps a folded unit spelling to the multiplier that converts a
	// quantity in that spelling into the canonical unit.
	scale map[string]float64
}

// NewUnitCodec builds a codec with the canonical unit (scale 1). Aliases
// are added with Alias.
func NewUnitCodec(canonical string) *UnitCodec {
	c := &UnitCodec{
		canonical: canonical,
		scale:     make(map[string]float64),
	}
	c.scale[strings.ToLower(canonical)] = 1
	return c
}

// Alias registers an alternative spelling with its conversion factor into
// the canonical unit. Duplicate spellings are a configuration defect.
func (c *UnitCodec) Alias(spelling string, factor float64) *UnitCodec {
	folded := strings.ToLower(spelling)
	if _, dup := c.scale[folded]; dup {
		panic(fmt.Sprintf("codec: unit spelling %q declared twice", spelling))
	}
	c.scale[folded] = factor
	return c
}

// Canonical returns the canonical unit name.
func (c *UnitCodec) Canonical() string { return c.canonical }

// Decode parses "qty" or "qty unit" text. A bare number is taken to be in
// the canonical unit already.
func (c *UnitCodec) Decode(text string) (value.Value, error) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 1:
		qty, err := ParseDouble(fields[0])
		if err != nil {
			return value.Value{}, err
		}
		return value.AmountOf(qty, c.canonical), nil
	case 2:
		qty, err := ParseDouble(fields[0])
		if err != nil {
			return value.Value{}, err
		}
		factor, ok := c.scale[strings.ToLower(fields[1])]
		if !ok {
			return value.Value{}, fmt.Errorf("codec: unknown unit %q (canonical %q)", fields[1], c.canonical)
		}
		return value.AmountOf(qty*factor, c.canonical), nil
	default:
		return value.Value{}, fmt.Errorf("codec: malformed amount %q", text)
	}
}

// Encode renders the amount in its canonical unit.
func (c *UnitCodec) Encode(v value.Value) string {
	amt := v.Amount()
	return EncodeDouble(amt.Quantity) + " " + c.canonical
}
