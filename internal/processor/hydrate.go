package processor

import (
	"fmt"
	"time"

	"github.com/vk/brewdoc/internal/codec"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/registry"
	"github.com/vk/brewdoc/internal/store"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Rehydrate returns the hydrator a SQLite store uses to replay rows written
// by earlier runs: each durable payload is decoded into a bundle against the
// kind's type table and handed to the kind's constructor. Payloads carry
// scalar fields only; record links are re-created by imports, never by
// replay.
func Rehydrate(reg *registry.Registry) store.Hydrator {
	kinds := make(map[string]*registry.Kind)
	for _, name := range reg.Names() {
		kinds[name] = reg.Lookup(name)
	}
	return func(kindName, name string, props map[string]any) (entity.Entity, error) {
		k, ok := kinds[kindName]
		if !ok {
			return nil, fmt.Errorf("processor: stored kind %q is not registered", kindName)
		}
		b := entity.NewBundle()
		for prop, raw := range props {
			if !k.Types.Contains(prop) {
				// Payload field this build's model no longer carries.
				continue
			}
			entry := k.Types.Lookup(prop)
			v, err := decodeStored(entry, raw)
			if err != nil {
				return nil, fmt.Errorf("processor: %s property %q: %w", kindName, prop, err)
			}
			if !v.IsValid() {
				continue
			}
			b.Put(prop, codec.WrapOptional(v, entry.Optional()))
		}
		e := k.New(b)
		e.SetName(name)
		return e, nil
	}
}

// decodeStored converts one JSON-decoded payload value back into the typed
// value the property declares. Record-valued entries return an invalid
// value: payloads never hold them.
func decodeStored(entry typereg.Entry, raw any) (value.Value, error) {
	if entry.IsEnum {
		f, ok := raw.(float64)
		if !ok {
			return value.Value{}, fmt.Errorf("enum payload is %T, want number", raw)
		}
		return value.Enum(int(f)), nil
	}
	switch kind := entry.Type.ValueKind(); kind {
	case value.KindBool:
		b, ok := raw.(bool)
		if !ok {
			return value.Value{}, fmt.Errorf("payload is %T, want bool", raw)
		}
		return value.Bool(b), nil
	case value.KindInt:
		f, ok := raw.(float64)
		if !ok {
			return value.Value{}, fmt.Errorf("payload is %T, want number", raw)
		}
		return value.Int(int64(f)), nil
	case value.KindUInt:
		f, ok := raw.(float64)
		if !ok {
			return value.Value{}, fmt.Errorf("payload is %T, want number", raw)
		}
		return value.UInt(uint64(f)), nil
	case value.KindDouble:
		f, ok := raw.(float64)
		if !ok {
			return value.Value{}, fmt.Errorf("payload is %T, want number", raw)
		}
		return value.Double(f), nil
	case value.KindString:
		s, ok := raw.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("payload is %T, want string", raw)
		}
		return value.String(s), nil
	case value.KindDate:
		s, ok := raw.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("payload is %T, want string", raw)
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return value.Value{}, err
		}
		return value.Date(t), nil
	case value.KindAmount:
		m, ok := raw.(map[string]any)
		if !ok {
			return value.Value{}, fmt.Errorf("payload is %T, want object", raw)
		}
		qty, qok := m["quantity"].(float64)
		unit, uok := m["unit"].(string)
		if !qok || !uok {
			return value.Value{}, fmt.Errorf("malformed amount payload %v", m)
		}
		return value.AmountOf(qty, unit), nil
	case value.KindRecord, value.KindRecordList:
		return value.Value{}, nil
	default:
		return value.Value{}, fmt.Errorf("unclassifiable payload kind %s", kind)
	}
}
