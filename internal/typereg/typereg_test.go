package typereg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/value"
)

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New("Hop", nil)
	r.Register("alphaPct", Entry{Type: TypeDouble})
	r.Register("notes", Entry{Type: TypeOptString})

	assert.Equal(t, TypeDouble, r.Lookup("alphaPct").Type)
	assert.True(t, r.Contains("notes"))
	assert.False(t, r.Contains("unknown"))
	require.Panics(t, func() { r.Lookup("unknown") })
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	r := New("Hop", nil)
	r.Register("alphaPct", Entry{Type: TypeDouble})
	require.Panics(t, func() { r.Register("alphaPct", Entry{Type: TypeDouble}) })
}

func TestRecordEntryNeedsSubRegistry(t *testing.T) {
	t.Parallel()

	r := New("Recipe", nil)
	require.Panics(t, func() { r.Register("mash", Entry{Type: TypeRecord}) })
	require.Panics(t, func() { r.Register("hops", Entry{Type: TypeRecordList}) })
}

func TestParentChain(t *testing.T) {
	t.Parallel()

	base := New("Named", nil)
	base.Register("name", Entry{Type: TypeString})

	child := New("Hop", base)
	child.Register("alphaPct", Entry{Type: TypeDouble})

	// Resolution walks the chain; local names shadow nothing here.
	assert.Equal(t, TypeString, child.Lookup("name").Type)
	assert.True(t, child.Contains("name"))
	assert.False(t, base.Contains("alphaPct"), "the chain only goes upward")
}

func TestOptionality(t *testing.T) {
	t.Parallel()

	r := New("Hop", nil)
	r.Register("alphaPct", Entry{Type: TypeDouble})
	r.Register("betaPct", Entry{Type: TypeOptDouble})
	r.Register("use", Entry{Type: TypeInt, IsEnum: true})

	assert.False(t, r.IsOptional("alphaPct"))
	assert.True(t, r.IsOptional("betaPct"))
	assert.False(t, r.IsOptional("use"), "enums always classify as non-optional")
}

func TestValueKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, value.KindDouble, TypeOptDouble.ValueKind())
	assert.Equal(t, value.KindRecord, TypeRecord.ValueKind())
	assert.Equal(t, value.KindRecordList, TypeRecordList.ValueKind())
	require.Panics(t, func() { TypeInvalid.ValueKind() })
}
