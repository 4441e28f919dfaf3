package store

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/value"
)

// snapshot renders an entity's scalar properties as a JSON-ready map for
// the durable payload column; absent optionals are omitted. Record links
// never appear here: children attach to their parent only after the
// parent's row is inserted, so hierarchy lives in memory and in exported
// documents, not in row payloads.
func snapshot(e entity.Entity) map[string]any {
	out := make(map[string]any)
	for _, prop := range e.Properties() {
		v := e.Get(prop)
		if v.IsNull() {
			continue
		}
		switch v.Kind() {
		case value.KindBool:
			out[prop] = v.Bool()
		case value.KindInt:
			out[prop] = v.Int()
		case value.KindUInt:
			out[prop] = v.UInt()
		case value.KindDouble:
			out[prop] = v.Double()
		case value.KindString:
			out[prop] = v.String()
		case value.KindDate:
			out[prop] = v.Date().Format("2006-01-02T15:04:05Z07:00")
		case value.KindEnum:
			out[prop] = v.Enum()
		case value.KindAmount:
			amt := v.Amount()
			out[prop] = map[string]any{"quantity": amt.Quantity, "unit": amt.Unit}
		}
	}
	return out
}
