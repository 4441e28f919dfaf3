package registry

import (
	"fmt"
	"strings"

	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// fieldValueKind maps leaf field kinds to the value kind their decoded
// payload carries.
var fieldValueKind = map[schema.FieldKind]value.Kind{
	schema.FieldBool:   value.KindBool,
	schema.FieldInt:    value.KindInt,
	schema.FieldUInt:   value.KindUInt,
	schema.FieldDouble: value.KindDouble,
	schema.FieldString: value.KindString,
	schema.FieldDate:   value.KindDate,
	schema.FieldUnit:   value.KindAmount,
}

// Validate performs the startup parity check between schema data and type
// registries: every bound path must resolve, its terminal type must match
// the field kind, enum and unit fields must carry codecs, and nested record
// fields must name registered child kinds. All defects are collected and
// reported in one panic.
func (r *Registry) Validate() {
	var errs []string
	for _, name := range r.Names() {
		k := r.kinds[name]
		for i, f := range k.Schema {
			where := fmt.Sprintf("kind %q field %d (%s %q)", name, i, f.Kind, f.XPath)
			switch f.Kind {
			case schema.FieldRequiredConstant:
				if f.Constant == "" {
					errs = append(errs, where+": required constant with no literal")
				}
			case schema.FieldRecord, schema.FieldListOfRecords:
				if f.ChildKind == "" {
					errs = append(errs, where+": nested record with no child kind")
					continue
				}
				if _, ok := r.kinds[f.ChildKind]; !ok {
					errs = append(errs, fmt.Sprintf("%s: child kind %q not registered", where, f.ChildKind))
				}
				if f.Path.IsNull() {
					continue // linked through SetContaining instead
				}
				if !f.Path.Resolves(k.Types) {
					errs = append(errs, fmt.Sprintf("%s: path %q does not resolve", where, f.Path.AsExternalPath()))
					continue
				}
				entry := f.Path.TypeInfo(k.Types)
				want := typereg.TypeRecord
				if f.Kind == schema.FieldListOfRecords {
					want = typereg.TypeRecordList
				}
				if entry.Type != want {
					errs = append(errs, fmt.Sprintf("%s: path %q is %s, want %s",
						where, f.Path.AsExternalPath(), entry.Type, want))
				} else if entry.Sub != nil && entry.Sub.Kind() != f.ChildKind {
					errs = append(errs, fmt.Sprintf("%s: path %q reaches kind %q, field nests %q",
						where, f.Path.AsExternalPath(), entry.Sub.Kind(), f.ChildKind))
				}
			case schema.FieldEnum:
				if f.Enum == nil {
					errs = append(errs, where+": enum field with no codec")
				}
				if f.Path.IsNull() {
					continue
				}
				if !f.Path.Resolves(k.Types) {
					errs = append(errs, fmt.Sprintf("%s: path %q does not resolve", where, f.Path.AsExternalPath()))
					continue
				}
				entry := f.Path.TypeInfo(k.Types)
				if !entry.IsEnum {
					errs = append(errs, fmt.Sprintf("%s: path %q is not enum-typed", where, f.Path.AsExternalPath()))
				} else if entry.Type != typereg.TypeInt {
					errs = append(errs, fmt.Sprintf("%s: enum path %q must classify as int, got %s",
						where, f.Path.AsExternalPath(), entry.Type))
				}
			default:
				if f.Kind == schema.FieldUnit && f.Unit == nil {
					errs = append(errs, where+": unit field with no codec")
				}
				if f.Path.IsNull() {
					continue // parse-and-discard
				}
				if !f.Path.Resolves(k.Types) {
					errs = append(errs, fmt.Sprintf("%s: path %q does not resolve", where, f.Path.AsExternalPath()))
					continue
				}
				entry := f.Path.TypeInfo(k.Types)
				want, known := fieldValueKind[f.Kind]
				if !known {
					errs = append(errs, where+": unclassifiable field kind")
					continue
				}
				if got := entry.Type.ValueKind(); got != want {
					errs = append(errs, fmt.Sprintf("%s: path %q is %s, field decodes %s",
						where, f.Path.AsExternalPath(), got, want))
				}
			}
		}
	}
	if len(errs) > 0 {
		panic("registry validation failed:\n- " + strings.Join(errs, "\n- "))
	}
}
