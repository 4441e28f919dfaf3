// Package testutil provides fixture entity kinds and store doubles for
// exercising the engine without dragging in the full format binding.
package testutil

import (
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/proppath"
	"github.com/vk/brewdoc/internal/registry"
	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/typereg"
	"github.com/vk/brewdoc/internal/value"
)

// Batch is a minimal two-field fixture: a required bool and an optional
// double. Its schema tag layout matches the smallest interesting record.
type Batch struct {
	name   string
	id     int64
	forced bool
	abv    value.Value // optional double
}

// NewBatch constructs a batch from a parsed bundle.
func NewBatch(b *entity.Bundle) entity.Entity {
	e := &Batch{abv: value.Null(value.KindDouble)}
	e.forced = b.TakeOr("forced", value.Bool(false)).Bool()
	e.abv = b.TakeOr("abv", e.abv)
	return e
}

// BatchTypes is the batch property type registry.
var BatchTypes = func() *typereg.Registry {
	r := typereg.New("Batch", nil)
	r.Register("forced", typereg.Entry{Type: typereg.TypeBool})
	r.Register("abv", typereg.Entry{Type: typereg.TypeOptDouble})
	return r
}()

var batchAccessors = entity.Accessors[*Batch]{
	"forced": {
		Get: func(e *Batch) value.Value { return value.Bool(e.forced) },
		Set: func(e *Batch, v value.Value) { e.forced = v.Bool() },
	},
	"abv": {
		Get: func(e *Batch) value.Value { return e.abv },
		Set: func(e *Batch, v value.Value) { e.abv = v },
	},
}

func (e *Batch) Kind() string                   { return "Batch" }
func (e *Batch) ID() int64                      { return e.id }
func (e *Batch) SetID(id int64)                 { e.id = id }
func (e *Batch) Name() string                   { return e.name }
func (e *Batch) SetName(name string)            { e.name = name }
func (e *Batch) Get(prop string) value.Value    { return entity.GetFrom(e, batchAccessors, prop) }
func (e *Batch) Set(prop string, v value.Value) { entity.SetOn(e, batchAccessors, prop, v) }
func (e *Batch) Properties() []string           { return entity.Names(batchAccessors) }

// BatchEqual compares both fields.
func BatchEqual(a, b entity.Entity) bool {
	x, ok := a.(*Batch)
	if !ok {
		return false
	}
	y, ok := b.(*Batch)
	if !ok {
		return false
	}
	return x.forced == y.forced && x.abv.Equal(y.abv)
}

// BatchSchema binds FORCED and ABV under a ROOT record tag.
var BatchSchema = schema.Record{
	{Kind: schema.FieldBool, XPath: "FORCED", Path: proppath.New("forced")},
	{Kind: schema.FieldDouble, XPath: "ABV", Path: proppath.New("abv")},
}

// Widget is a named fixture kind used by duplicate-check and rename tests.
type Widget struct {
	name  string
	id    int64
	count int64
}

// NewWidget constructs a widget from a parsed bundle.
func NewWidget(b *entity.Bundle) entity.Entity {
	e := &Widget{}
	e.name = b.TakeOr("name", value.String("")).String()
	e.count = b.TakeOr("count", value.Int(0)).Int()
	return e
}

// WidgetTypes is the widget property type registry.
var WidgetTypes = func() *typereg.Registry {
	r := typereg.New("Widget", nil)
	r.Register("name", typereg.Entry{Type: typereg.TypeString})
	r.Register("count", typereg.Entry{Type: typereg.TypeInt})
	return r
}()

var widgetAccessors = entity.Accessors[*Widget]{
	"name": {
		Get: func(e *Widget) value.Value { return value.String(e.name) },
		Set: func(e *Widget, v value.Value) { e.name = v.String() },
	},
	"count": {
		Get: func(e *Widget) value.Value { return value.Int(e.count) },
		Set: func(e *Widget, v value.Value) { e.count = v.Int() },
	},
}

func (e *Widget) Kind() string                   { return "Widget" }
func (e *Widget) ID() int64                      { return e.id }
func (e *Widget) SetID(id int64)                 { e.id = id }
func (e *Widget) Name() string                   { return e.name }
func (e *Widget) SetName(name string)            { e.name = name }
func (e *Widget) Get(prop string) value.Value    { return entity.GetFrom(e, widgetAccessors, prop) }
func (e *Widget) Set(prop string, v value.Value) { entity.SetOn(e, widgetAccessors, prop, v) }
func (e *Widget) Properties() []string           { return entity.Names(widgetAccessors) }

// WidgetEqual compares name and count, the way a real catalog kind would.
func WidgetEqual(a, b entity.Entity) bool {
	x, ok := a.(*Widget)
	if !ok {
		return false
	}
	y, ok := b.(*Widget)
	if !ok {
		return false
	}
	return x.name == y.name && x.count == y.count
}

// WidgetSchema binds NAME and COUNT under a WIDGET record tag.
var WidgetSchema = schema.Record{
	{Kind: schema.FieldString, XPath: "NAME", Path: proppath.New("name")},
	{Kind: schema.FieldInt, XPath: "COUNT", Path: proppath.New("count")},
}

// GadgetTypes is the gadget property type registry.
var GadgetTypes = func() *typereg.Registry {
	r := typereg.New("Gadget", nil)
	r.Register("name", typereg.Entry{Type: typereg.TypeString})
	r.Register("count", typereg.Entry{Type: typereg.TypeInt})
	return r
}()

// Gadget matches Widget field for field but opts out of every policy, so
// duplicates store twice and names never change.
type Gadget struct {
	name  string
	id    int64
	count int64
}

// NewGadget constructs a gadget from a parsed bundle.
func NewGadget(b *entity.Bundle) entity.Entity {
	e := &Gadget{}
	e.name = b.TakeOr("name", value.String("")).String()
	e.count = b.TakeOr("count", value.Int(0)).Int()
	return e
}

var gadgetAccessors = entity.Accessors[*Gadget]{
	"name": {
		Get: func(e *Gadget) value.Value { return value.String(e.name) },
		Set: func(e *Gadget, v value.Value) { e.name = v.String() },
	},
	"count": {
		Get: func(e *Gadget) value.Value { return value.Int(e.count) },
		Set: func(e *Gadget, v value.Value) { e.count = v.Int() },
	},
}

func (e *Gadget) Kind() string                   { return "Gadget" }
func (e *Gadget) ID() int64                      { return e.id }
func (e *Gadget) SetID(id int64)                 { e.id = id }
func (e *Gadget) Name() string                   { return e.name }
func (e *Gadget) SetName(name string)            { e.name = name }
func (e *Gadget) Get(prop string) value.Value    { return entity.GetFrom(e, gadgetAccessors, prop) }
func (e *Gadget) Set(prop string, v value.Value) { entity.SetOn(e, gadgetAccessors, prop, v) }
func (e *Gadget) Properties() []string           { return entity.Names(gadgetAccessors) }

// GadgetEqual compares name and count.
func GadgetEqual(a, b entity.Entity) bool {
	x, ok := a.(*Gadget)
	if !ok {
		return false
	}
	y, ok := b.(*Gadget)
	if !ok {
		return false
	}
	return x.name == y.name && x.count == y.count
}

// NewFixtureRegistry builds a validated registry with three fixture kinds:
// Batch (no policies), Widget (dedupe + rename), and Gadget (every policy
// off, so duplicates store twice).
func NewFixtureRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register(&registry.Kind{
		Name:   "Batch",
		Tag:    "ROOT",
		Schema: BatchSchema,
		Types:  BatchTypes,
		New:    NewBatch,
		Equal:  BatchEqual,
	})
	reg.Register(&registry.Kind{
		Name:   "Widget",
		Tag:    "WIDGET",
		Schema: WidgetSchema,
		Types:  WidgetTypes,
		New:    NewWidget,
		Equal:  WidgetEqual,
		Policy: entity.Policy{CheckDuplicates: true, NormalizeNames: true},
	})
	reg.Register(&registry.Kind{
		Name:   "Gadget",
		Tag:    "GADGET",
		Schema: WidgetSchema,
		Types:  GadgetTypes,
		New:    NewGadget,
		Equal:  GadgetEqual,
	})
	reg.Validate()
	return reg
}
