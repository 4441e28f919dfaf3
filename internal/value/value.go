// Package value defines the closed tagged-union value type the serialization
// engine moves between the external document format and the domain entities.
//
// Every decoded leaf, every property read or written through a property
// path, and every slot of a Bundle is a Value. The kind set is closed on
// purpose: codecs and the optional-boxing layer dispatch on it, and an
// unknown kind is always a programmer error, never data.
package value

import (
	"fmt"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUInt
	KindDouble
	KindString
	KindDate
	KindEnum
	KindAmount
	KindRecord
	KindRecordList

	// KindTotal is the number of kinds defined, for table sizing.
	KindTotal = int(iota)
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUInt:
		return "uint"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindEnum:
		return "enum"
	case KindAmount:
		return "amount"
	case KindRecord:
		return "record"
	case KindRecordList:
		return "record list"
	default:
		return "invalid"
	}
}

// Amount is a quantity expressed in a named canonical unit.
type Amount struct {
	Quantity float64
	Unit     string
}

// Value is one immutable datum of a closed kind set. The zero Value is
// invalid; a null Value carries a kind but no payload (an absent optional).
type Value struct {
	kind Kind
	null bool

	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	t    time.Time
	e    int
	amt  Amount
	rec  any
	recs []any
}

// Bool wraps a bool.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps a signed integer.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// UInt wraps an unsigned integer.
func UInt(v uint64) Value { return Value{kind: KindUInt, u: v} }

// Double wraps a float.
func Double(v float64) Value { return Value{kind: KindDouble, f: v} }

// String wraps a string.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Date wraps a timestamp.
func Date(v time.Time) Value { return Value{kind: KindDate, t: v} }

// Enum wraps an enum ordinal. Domain enums are converted to and from this
// variant only at the codec boundary.
func Enum(ordinal int) Value { return Value{kind: KindEnum, e: ordinal} }

// AmountOf wraps a quantity with its canonical unit.
func AmountOf(qty float64, unit string) Value {
	return Value{kind: KindAmount, amt: Amount{Quantity: qty, Unit: unit}}
}

// Record wraps a reference to a domain entity. The engine stores it as an
// opaque reference; the property-path layer knows the concrete contract.
func Record(entity any) Value { return Value{kind: KindRecord, rec: entity} }

// RecordList wraps an ordered list of entity references.
func RecordList(entities []any) Value { return Value{kind: KindRecordList, recs: entities} }

// Null returns the absent marker for the given kind.
func Null(k Kind) Value { return Value{kind: k, null: true} }

// Kind reports the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether this value is the absent marker.
func (v Value) IsNull() bool { return v.null }

// IsValid reports whether the value holds any kind at all.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) expect(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("value: %s accessed as %s", v.kind, k))
	}
	if v.null {
		panic(fmt.Sprintf("value: null %s accessed as concrete", v.kind))
	}
}

// Bool returns the bool payload. Panics on kind mismatch or null.
func (v Value) Bool() bool { v.expect(KindBool); return v.b }

// Int returns the signed integer payload.
func (v Value) Int() int64 { v.expect(KindInt); return v.i }

// UInt returns the unsigned integer payload.
func (v Value) UInt() uint64 { v.expect(KindUInt); return v.u }

// Double returns the float payload.
func (v Value) Double() float64 { v.expect(KindDouble); return v.f }

// String returns the string payload.
func (v Value) String() string { v.expect(KindString); return v.s }

// Date returns the timestamp payload.
func (v Value) Date() time.Time { v.expect(KindDate); return v.t }

// Enum returns the enum ordinal payload.
func (v Value) Enum() int { v.expect(KindEnum); return v.e }

// Amount returns the amount payload.
func (v Value) Amount() Amount { v.expect(KindAmount); return v.amt }

// RecordRef returns the entity reference, or nil for a null record.
func (v Value) RecordRef() any {
	if v.kind != KindRecord {
		panic(fmt.Sprintf("value: %s accessed as record", v.kind))
	}
	if v.null {
		return nil
	}
	return v.rec
}

// RecordRefs returns the entity references of a record list, nil when null.
func (v Value) RecordRefs() []any {
	if v.kind != KindRecordList {
		panic(fmt.Sprintf("value: %s accessed as record list", v.kind))
	}
	return v.recs
}

// Equal reports payload equality. Two nulls of the same kind are equal.
// Record values compare by reference identity.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.null || o.null {
		return v.null == o.null
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindUInt:
		return v.u == o.u
	case KindDouble:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindDate:
		return v.t.Equal(o.t)
	case KindEnum:
		return v.e == o.e
	case KindAmount:
		return v.amt == o.amt
	case KindRecord:
		return v.rec == o.rec
	case KindRecordList:
		if len(v.recs) != len(o.recs) {
			return false
		}
		for i := range v.recs {
			if v.recs[i] != o.recs[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
