package codec

import (
	"fmt"
	"strings"
)

// EnumPair binds one external token to an enum ordinal. Declaring several
// tokens for the same ordinal makes the later ones decode-only aliases.
type EnumPair struct {
	Ordinal int
	Token   string
}

// EnumCodec translates between enum ordinals and external tokens. It is
// built once, in declaration order, and never mutated afterwards.
type EnumCodec struct {
	// byOrdinal[i] is the first-registered token for ordinal i, so
	// encoding is plain indexing.
	byOrdinal []string
	byToken   map[string]int
	byFolded  map[string]int
}

// NewEnumCodec builds a codec from ordered pairs. The first occurrence of
// each ordinal must count up from 0 with no gaps; anything else is a defect
// in static schema data and panics.
func NewEnumCodec(pairs ...EnumPair) *EnumCodec {
	c := &EnumCodec{
		byToken:  make(map[string]int, len(pairs)),
		byFolded: make(map[string]int, len(pairs)),
	}
	for _, p := range pairs {
		switch {
		case p.Ordinal == len(c.byOrdinal):
			c.byOrdinal = append(c.byOrdinal, p.Token)
		case p.Ordinal == len(c.byOrdinal)-1:
			// Alias for the ordinal currently being declared.
		default:
			panic(fmt.Sprintf("codec: enum ordinals must rise from 0 without gaps, got %d after %d entries",
				p.Ordinal, len(c.byOrdinal)))
		}
		if _, dup := c.byToken[p.Token]; dup {
			panic(fmt.Sprintf("codec: enum token %q declared twice", p.Token))
		}
		c.byToken[p.Token] = p.Ordinal
		folded := strings.ToLower(p.Token)
		if _, ok := c.byFolded[folded]; !ok {
			c.byFolded[folded] = p.Ordinal
		}
	}
	if len(c.byOrdinal) == 0 {
		panic("codec: enum codec needs at least one pair")
	}
	return c
}

// Decode maps a token to its ordinal: exact match first, then, if
// caseInsensitive is set, a folded match. ok is false for unknown tokens.
func (c *EnumCodec) Decode(token string, caseInsensitive bool) (ordinal int, ok bool) {
	if ord, hit := c.byToken[token]; hit {
		return ord, true
	}
	if caseInsensitive {
		if ord, hit := c.byFolded[strings.ToLower(token)]; hit {
			return ord, true
		}
	}
	return 0, false
}

// Encode maps an ordinal to its first-registered token. ok is false out of
// range.
func (c *EnumCodec) Encode(ordinal int) (token string, ok bool) {
	if ordinal < 0 || ordinal >= len(c.byOrdinal) {
		return "", false
	}
	return c.byOrdinal[ordinal], true
}
