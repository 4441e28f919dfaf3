package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/value"
)

// probe is a minimal entity for exercising the accessor helpers.
type probe struct {
	name string
	id   int64
	temp float64
}

var probeAccessors = Accessors[*probe]{
	"temp": {
		Get: func(p *probe) value.Value { return value.Double(p.temp) },
		Set: func(p *probe, v value.Value) { p.temp = v.Double() },
	},
	"calculated": {
		Get: func(p *probe) value.Value { return value.Double(p.temp * 2) },
	},
}

func (p *probe) Kind() string                   { return "Probe" }
func (p *probe) ID() int64                      { return p.id }
func (p *probe) SetID(id int64)                 { p.id = id }
func (p *probe) Name() string                   { return p.name }
func (p *probe) SetName(name string)            { p.name = name }
func (p *probe) Get(prop string) value.Value    { return GetFrom(p, probeAccessors, prop) }
func (p *probe) Set(prop string, v value.Value) { SetOn(p, probeAccessors, prop, v) }
func (p *probe) Properties() []string           { return Names(probeAccessors) }

func TestAccessors(t *testing.T) {
	t.Parallel()

	p := &probe{}
	p.Set("temp", value.Double(68))
	assert.Equal(t, 68.0, p.Get("temp").Double())
	assert.Equal(t, 136.0, p.Get("calculated").Double())
	assert.Equal(t, []string{"calculated", "temp"}, p.Properties())
}

func TestAccessorDefectsPanic(t *testing.T) {
	t.Parallel()

	p := &probe{}
	require.Panics(t, func() { p.Get("unknown") })
	require.Panics(t, func() { p.Set("unknown", value.Double(0)) })
	require.Panics(t, func() { p.Set("calculated", value.Double(0)) },
		"a nil Set marks the property read-only")
}

func TestBundleTake(t *testing.T) {
	t.Parallel()

	b := NewBundle()
	b.Put("forced", value.Bool(true))
	assert.Equal(t, 1, b.Len())

	v, ok := b.Take("forced")
	require.True(t, ok)
	assert.True(t, v.Bool())

	_, ok = b.Take("forced")
	assert.False(t, ok, "a bundle slot is consumed exactly once")
}

func TestBundleTakeOr(t *testing.T) {
	t.Parallel()

	b := NewBundle()
	b.Put("abv", value.Null(value.KindDouble))

	got := b.TakeOr("abv", value.Double(4.5))
	assert.Equal(t, 4.5, got.Double(), "a null slot falls back to the default")

	got = b.TakeOr("missing", value.String("x"))
	assert.Equal(t, "x", got.String())
}

func TestBundleTakeOptional(t *testing.T) {
	t.Parallel()

	b := NewBundle()
	b.Put("abv", value.Double(4.5))
	b.Put("notes", value.Null(value.KindString))

	v, present := b.TakeOptional("abv")
	require.True(t, present)
	assert.Equal(t, 4.5, v.Double())

	_, present = b.TakeOptional("notes")
	assert.False(t, present, "a null marker reads as absent")

	_, present = b.TakeOptional("missing")
	assert.False(t, present)
}

func TestBundleOverwrite(t *testing.T) {
	t.Parallel()

	b := NewBundle()
	b.Put("temp", value.Double(60))
	b.Put("temp", value.Double(68))

	v, ok := b.Take("temp")
	require.True(t, ok)
	assert.Equal(t, 68.0, v.Double(), "a repeated Put overwrites")
}
