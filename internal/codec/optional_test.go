package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/value"
)

func TestWrapUnwrapOptional(t *testing.T) {
	t.Parallel()

	t.Run("non-optional passes through", func(t *testing.T) {
		v := WrapOptional(value.Double(5.5), false)
		got, present := UnwrapOptional(v, false)
		assert.True(t, present)
		assert.Equal(t, 5.5, got.Double())
	})

	t.Run("optional present", func(t *testing.T) {
		v := WrapOptional(value.String("x"), true)
		got, present := UnwrapOptional(v, true)
		assert.True(t, present)
		assert.Equal(t, "x", got.String())
	})

	t.Run("optional absent", func(t *testing.T) {
		v := AbsentOptional(value.KindDouble)
		assert.True(t, v.IsNull())
		_, present := UnwrapOptional(v, true)
		assert.False(t, present)
	})
}

func TestOptionalRejectsRecordKinds(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { AbsentOptional(value.KindRecord) })
	require.Panics(t, func() { WrapOptional(value.Record(nil), true) })
}
