package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsAndAccessors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, true, Bool(true).Bool())
	assert.Equal(t, int64(-7), Int(-7).Int())
	assert.Equal(t, uint64(7), UInt(7).UInt())
	assert.Equal(t, 5.5, Double(5.5).Double())
	assert.Equal(t, "x", String("x").String())
	assert.Equal(t, 2, Enum(2).Enum())

	d := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	assert.True(t, Date(d).Date().Equal(d))

	amt := AmountOf(12.5, "l")
	assert.Equal(t, Amount{Quantity: 12.5, Unit: "l"}, amt.Amount())
}

func TestKindMismatchPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { Bool(true).Int() })
	require.Panics(t, func() { _ = Double(1).String() })
	require.Panics(t, func() { String("x").RecordRef() })
}

func TestNull(t *testing.T) {
	t.Parallel()

	n := Null(KindDouble)
	assert.True(t, n.IsNull())
	assert.Equal(t, KindDouble, n.Kind())
	require.Panics(t, func() { n.Double() }, "a null payload must never be read")

	assert.Nil(t, Null(KindRecord).RecordRef())
	assert.Nil(t, Null(KindRecordList).RecordRefs())
}

func TestZeroValueIsInvalid(t *testing.T) {
	t.Parallel()

	var v Value
	assert.False(t, v.IsValid())
	assert.True(t, Bool(false).IsValid())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("payload equality", func(t *testing.T) {
		assert.True(t, Double(5.5).Equal(Double(5.5)))
		assert.False(t, Double(5.5).Equal(Double(5.6)))
		assert.False(t, Double(5.5).Equal(Int(5)), "kinds differ")
		assert.True(t, AmountOf(1, "l").Equal(AmountOf(1, "l")))
		assert.False(t, AmountOf(1, "l").Equal(AmountOf(1, "kg")))
	})

	t.Run("nulls of the same kind are equal", func(t *testing.T) {
		assert.True(t, Null(KindDouble).Equal(Null(KindDouble)))
		assert.False(t, Null(KindDouble).Equal(Null(KindString)))
		assert.False(t, Null(KindDouble).Equal(Double(0)))
	})

	t.Run("records compare by identity", func(t *testing.T) {
		a, b := &struct{ n int }{1}, &struct{ n int }{1}
		assert.True(t, Record(a).Equal(Record(a)))
		assert.False(t, Record(a).Equal(Record(b)))

		assert.True(t, RecordList([]any{a, b}).Equal(RecordList([]any{a, b})))
		assert.False(t, RecordList([]any{a}).Equal(RecordList([]any{b})))
		assert.False(t, RecordList([]any{a}).Equal(RecordList([]any{a, b})))
	})
}
