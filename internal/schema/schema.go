// Package schema defines the declarative record schemas that drive the
// serialization engine. A schema is pure data: an ordered list of field
// definitions naming where a value lives in the external tree, what kind it
// is, which codec translates it, and which property path it binds to. The
// engine never hard-codes a tag name; everything concrete lives in schema
// tables.
package schema

import (
	"github.com/vk/brewdoc/internal/codec"
	"github.com/vk/brewdoc/internal/proppath"
)

// FieldKind classifies a field definition.
type FieldKind int

const (
	FieldInvalid FieldKind = iota
	FieldBool
	FieldInt
	FieldUInt
	FieldDouble
	FieldString
	FieldDate
	FieldEnum
	FieldUnit
	FieldRequiredConstant
	FieldRecord
	FieldListOfRecords

	// FieldKindTotal is the number of kinds defined.
	FieldKindTotal = int(iota)
)

// String returns the kind's name for diagnostics.
func (k FieldKind) String() string {
	switch k {
	case FieldBool:
		return "bool"
	case FieldInt:
		return "int"
	case FieldUInt:
		return "uint"
	case FieldDouble:
		return "double"
	case FieldString:
		return "string"
	case FieldDate:
		return "date"
	case FieldEnum:
		return "enum"
	case FieldUnit:
		return "unit"
	case FieldRequiredConstant:
		return "required constant"
	case FieldRecord:
		return "record"
	case FieldListOfRecords:
		return "list of records"
	default:
		return "invalid"
	}
}

// IsLeaf reports whether the field decodes leaf text rather than recursing.
func (k FieldKind) IsLeaf() bool {
	switch k {
	case FieldRecord, FieldListOfRecords:
		return false
	default:
		return true
	}
}

// Field is one row of a record schema.
type Field struct {
	// Kind selects the decode/encode rule.
	Kind FieldKind

	// XPath locates the field under the record's node: a tag name, a
	// slash-separated chain for synthetic wrapper levels, or "" on nested
	// records to reuse the record's own node (flattening).
	XPath string

	// Path binds the decoded value to entity state. The null sentinel
	// means parse-and-discard (forward compatibility for fields the
	// object model does not need).
	Path proppath.Path

	// Enum translates tokens for FieldEnum rows.
	Enum *codec.EnumCodec

	// Unit translates amount text for FieldUnit rows.
	Unit *codec.UnitCodec

	// Constant is the fixed literal a FieldRequiredConstant row emits on
	// export. Such rows are skipped entirely on parse.
	Constant string

	// ChildKind names the nested entity kind for record fields.
	ChildKind string
}

// Record is the ordered, immutable-by-convention field list for one
// concrete entity kind.
type Record []Field
