package processor

import (
	"fmt"
	"strings"

	"github.com/vk/brewdoc/internal/codec"
	"github.com/vk/brewdoc/internal/emit"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/registry"
	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/value"
)

// Export serializes one entity under its kind's tag. It is a pure function
// of (entity, schema): no store interaction, no mutation. Parse and export
// are symmetric; for every bound field decode(encode(x)) == x, except the
// documented lossy rule that a lone "-" decodes a double to 0.0.
func Export(reg *registry.Registry, kindName string, e entity.Entity, w *emit.Writer) {
	k := reg.Lookup(kindName)
	w.OpenTag(k.Tag)
	for _, f := range k.Schema {
		exportField(reg, k, f, e, w)
	}
	w.CloseTag(k.Tag)
}

func exportField(reg *registry.Registry, k *registry.Kind, f schema.Field, e entity.Entity, w *emit.Writer) {
	switch f.Kind {
	case schema.FieldRequiredConstant:
		w.Leaf(f.XPath, f.Constant)
	case schema.FieldRecord:
		exportRecord(reg, f, e, w)
	case schema.FieldListOfRecords:
		exportList(reg, f, e, w)
	default:
		exportLeaf(k, f, e, w)
	}
}

// openWrappers opens the synthetic wrapper levels implied by a
// multi-segment external path and returns the innermost tag plus the opened
// wrappers (outermost first).
func openWrappers(xpath string, w *emit.Writer) (inner string, wrappers []string) {
	segs := strings.Split(xpath, "/")
	for _, seg := range segs[:len(segs)-1] {
		w.OpenTag(seg)
		wrappers = append(wrappers, seg)
	}
	return segs[len(segs)-1], wrappers
}

func closeWrappers(wrappers []string, w *emit.Writer) {
	for i := len(wrappers) - 1; i >= 0; i-- {
		w.CloseTag(wrappers[i])
	}
}

func exportRecord(reg *registry.Registry, f schema.Field, e entity.Entity, w *emit.Writer) {
	if f.Path.IsNull() {
		// Unbound nested records cannot be read back generically.
		return
	}
	v := f.Path.Get(e)
	sub, _ := v.RecordRef().(entity.Entity)
	if f.XPath == "" {
		// Flattened: the sub-record's fields live on this same node.
		if sub != nil {
			k := reg.Lookup(f.ChildKind)
			for _, cf := range k.Schema {
				exportField(reg, k, cf, sub, w)
			}
		}
		return
	}
	segs := strings.Split(f.XPath, "/")
	if sub == nil {
		w.Comment("no " + segs[len(segs)-1] + " in this record")
		return
	}
	wrappers := segs[:len(segs)-1]
	for _, seg := range wrappers {
		w.OpenTag(seg)
	}
	Export(reg, f.ChildKind, sub, w)
	closeWrappers(wrappers, w)
}

func exportList(reg *registry.Registry, f schema.Field, e entity.Entity, w *emit.Writer) {
	if f.Path.IsNull() {
		return
	}
	v := f.Path.Get(e)
	if v.IsNull() {
		return
	}
	refs := v.RecordRefs()
	segs := strings.Split(f.XPath, "/")
	wrappers := segs[:len(segs)-1]
	for _, seg := range wrappers {
		w.OpenTag(seg)
	}
	for _, ref := range refs {
		if sub, ok := ref.(entity.Entity); ok {
			Export(reg, f.ChildKind, sub, w)
		}
	}
	closeWrappers(wrappers, w)
}

func exportLeaf(k *registry.Kind, f schema.Field, e entity.Entity, w *emit.Writer) {
	if f.Path.IsNull() {
		return
	}
	entry := f.Path.TypeInfo(k.Types)
	boxed := f.Path.Get(e)
	if boxed.Kind() == value.KindRecord && boxed.IsNull() {
		// An interior sub-entity is absent; nothing to read.
		return
	}
	v, present := codec.UnwrapOptional(boxed, entry.Optional())
	if !present {
		// Optional and absent: the tag is skipped entirely.
		return
	}
	inner, wrappers := openWrappers(f.XPath, w)
	w.Leaf(inner, encodeLeaf(f, v))
	closeWrappers(wrappers, w)
}

func encodeLeaf(f schema.Field, v value.Value) string {
	switch f.Kind {
	case schema.FieldBool:
		return codec.EncodeBool(v.Bool())
	case schema.FieldInt:
		return fmt.Sprintf("%d", v.Int())
	case schema.FieldUInt:
		return fmt.Sprintf("%d", v.UInt())
	case schema.FieldDouble:
		return codec.EncodeDouble(v.Double())
	case schema.FieldString:
		return codec.EscapeText(v.String())
	case schema.FieldDate:
		return codec.EncodeDate(v.Date())
	case schema.FieldEnum:
		token, ok := f.Enum.Encode(v.Enum())
		if !ok {
			panic(fmt.Sprintf("processor: enum ordinal %d of field %q out of range", v.Enum(), f.XPath))
		}
		return token
	case schema.FieldUnit:
		return f.Unit.Encode(v)
	default:
		panic(fmt.Sprintf("processor: field kind %s is not a leaf", f.Kind))
	}
}
