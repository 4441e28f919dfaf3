// Package codec implements the value-level encoders and decoders of the
// engine: optional boxing, enum ordinal/token tables, unit amounts, and the
// lexical rules for leaf text in the external format.
package codec

import (
	"fmt"

	"github.com/vk/brewdoc/internal/value"
)

// optionalKinds is the closed set of value kinds the optional layer knows
// how to box. Dispatch is by runtime kind tag; anything else aborts.
var optionalKinds = map[value.Kind]bool{
	value.KindBool:   true,
	value.KindInt:    true,
	value.KindUInt:   true,
	value.KindDouble: true,
	value.KindString: true,
	value.KindDate:   true,
	value.KindAmount: true,
}

func checkOptionalKind(k value.Kind) {
	if !optionalKinds[k] {
		panic(fmt.Sprintf("codec: kind %s has no optional form", k))
	}
}

// WrapOptional boxes a decoded value according to the property's optionality
// classification. Non-optional properties pass through untouched; optional
// ones keep their payload but are guaranteed to carry a boxable kind.
func WrapOptional(v value.Value, optional bool) value.Value {
	if !optional {
		return v
	}
	checkOptionalKind(v.Kind())
	return v
}

// AbsentOptional returns the absent marker for an optional slot of the
// given kind.
func AbsentOptional(k value.Kind) value.Value {
	checkOptionalKind(k)
	return value.Null(k)
}

// UnwrapOptional undoes WrapOptional. For an absent optional it reports
// present=false and an empty value of the slot's kind that callers must
// never treat as real data.
func UnwrapOptional(boxed value.Value, optional bool) (v value.Value, present bool) {
	if !optional {
		return boxed, true
	}
	checkOptionalKind(boxed.Kind())
	if boxed.IsNull() {
		return value.Null(boxed.Kind()), false
	}
	return boxed, true
}
