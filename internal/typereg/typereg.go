// Package typereg holds the per-entity-kind property type tables.
//
// Every property a record schema binds to must be registered here, either on
// the kind's own registry or somewhere up its parent chain. The tables are
// static configuration built at startup; a lookup miss or an unknown type id
// is a defect in that configuration and panics rather than returning an
// error.
package typereg

import (
	"fmt"

	"github.com/vk/brewdoc/internal/value"
)

// TypeID names the declared type of a property, including whether the
// property store treats it as optional.
type TypeID int

const (
	TypeInvalid TypeID = iota
	TypeBool
	TypeOptBool
	TypeInt
	TypeOptInt
	TypeUInt
	TypeOptUInt
	TypeDouble
	TypeOptDouble
	TypeString
	TypeOptString
	TypeDate
	TypeOptDate
	TypeAmount
	TypeOptAmount
	TypeRecord
	TypeRecordList
)

// String returns the type id's name for diagnostics.
func (t TypeID) String() string {
	names := map[TypeID]string{
		TypeBool:       "bool",
		TypeOptBool:    "optional bool",
		TypeInt:        "int",
		TypeOptInt:     "optional int",
		TypeUInt:       "uint",
		TypeOptUInt:    "optional uint",
		TypeDouble:     "double",
		TypeOptDouble:  "optional double",
		TypeString:     "string",
		TypeOptString:  "optional string",
		TypeDate:       "date",
		TypeOptDate:    "optional date",
		TypeAmount:     "amount",
		TypeOptAmount:  "optional amount",
		TypeRecord:     "record",
		TypeRecordList: "record list",
	}
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("invalid(%d)", int(t))
}

// ValueKind maps the type id to the value-union kind a decoded property of
// this type carries.
func (t TypeID) ValueKind() value.Kind {
	switch t {
	case TypeBool, TypeOptBool:
		return value.KindBool
	case TypeInt, TypeOptInt:
		return value.KindInt
	case TypeUInt, TypeOptUInt:
		return value.KindUInt
	case TypeDouble, TypeOptDouble:
		return value.KindDouble
	case TypeString, TypeOptString:
		return value.KindString
	case TypeDate, TypeOptDate:
		return value.KindDate
	case TypeAmount, TypeOptAmount:
		return value.KindAmount
	case TypeRecord:
		return value.KindRecord
	case TypeRecordList:
		return value.KindRecordList
	default:
		panic(fmt.Sprintf("typereg: no value kind for type id %s", t))
	}
}

// Entry is the registered type information for one property name.
type Entry struct {
	Type   TypeID
	IsEnum bool
	// Sub is the registry of the sub-entity's kind for record-valued
	// properties, so multi-segment property paths can keep resolving.
	Sub *Registry
}

// Registry maps property names to type entries for one entity kind,
// optionally chaining to the registry of a parent kind.
type Registry struct {
	kind    string
	parent  *Registry
	entries map[string]Entry
}

// New creates an empty registry for the named kind. A nil parent means the
// chain ends here.
func New(kind string, parent *Registry) *Registry {
	return &Registry{
		kind:    kind,
		parent:  parent,
		entries: make(map[string]Entry),
	}
}

// Kind returns the entity kind this registry describes.
func (r *Registry) Kind() string { return r.kind }

// Register adds a property entry. Registering the same name twice on the
// same registry is a configuration defect.
func (r *Registry) Register(name string, e Entry) {
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("typereg: property %q already registered on kind %q", name, r.kind))
	}
	if (e.Type == TypeRecord || e.Type == TypeRecordList) && e.Sub == nil {
		panic(fmt.Sprintf("typereg: record property %q on kind %q has no sub-registry", name, r.kind))
	}
	r.entries[name] = e
}

// Lookup resolves a property name, walking the local table first and then
// the parent chain. A name that resolves nowhere is a configuration defect.
func (r *Registry) Lookup(name string) Entry {
	for reg := r; reg != nil; reg = reg.parent {
		if e, ok := reg.entries[name]; ok {
			return e
		}
	}
	panic(fmt.Sprintf("typereg: property %q not registered on kind %q or any parent", name, r.kind))
}

// Contains reports whether the name resolves anywhere in the chain, without
// treating a miss as fatal. Startup validation uses this to report all
// defects at once instead of stopping at the first panic.
func (r *Registry) Contains(name string) bool {
	for reg := r; reg != nil; reg = reg.parent {
		if _, ok := reg.entries[name]; ok {
			return true
		}
	}
	return false
}

// IsOptional classifies the named property's type id. Enum-typed properties
// are always stored as plain ints and classify as non-optional. An
// unrecognized type id panics.
func (r *Registry) IsOptional(name string) bool {
	return r.Lookup(name).Optional()
}

// Optional classifies the entry's type id over the closed kind set. An
// unrecognized type id panics.
func (e Entry) Optional() bool {
	if e.IsEnum {
		return false
	}
	switch e.Type {
	case TypeBool, TypeInt, TypeUInt, TypeDouble, TypeString, TypeDate, TypeAmount, TypeRecord, TypeRecordList:
		return false
	case TypeOptBool, TypeOptInt, TypeOptUInt, TypeOptDouble, TypeOptString, TypeOptDate, TypeOptAmount:
		return true
	default:
		panic(fmt.Sprintf("typereg: cannot classify optionality of type id %s", e.Type))
	}
}
