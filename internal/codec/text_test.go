package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want bool
	}{
		{"TRUE", true},
		{"true", true},
		{"True", true},
		{"1", true},
		{"FALSE", false},
		{"false", false},
		{"0", false},
		{" true ", true},
	}
	for _, tc := range cases {
		got, err := ParseBool(tc.text)
		require.NoError(t, err, "token %q", tc.text)
		assert.Equal(t, tc.want, got, "token %q", tc.text)
	}

	_, err := ParseBool("yes")
	require.Error(t, err)
}

func TestEncodeBool(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TRUE", EncodeBool(true))
	assert.Equal(t, "FALSE", EncodeBool(false))
}

func TestParseDouble(t *testing.T) {
	t.Parallel()

	t.Run("plain numbers", func(t *testing.T) {
		got, err := ParseDouble("5.5")
		require.NoError(t, err)
		assert.Equal(t, 5.5, got)

		got, err = ParseDouble("-3.25")
		require.NoError(t, err)
		assert.Equal(t, -3.25, got)
	})

	t.Run("lone dash is a blank placeholder", func(t *testing.T) {
		got, err := ParseDouble("-")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)

		got, err = ParseDouble("  -  ")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := ParseDouble("abc")
		require.Error(t, err)
	})
}

func TestEncodeDouble(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5.5", EncodeDouble(5.5))
	assert.Equal(t, "0", EncodeDouble(0))
	// Shortest round-trip form, never scientific notation.
	assert.Equal(t, "0.0000001", EncodeDouble(1e-7))
	assert.NotContains(t, EncodeDouble(1e21), "e")
}

func TestDoubleRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, 5.5, -3.25, 0.3333333333333333, 1e-7, 12345.678} {
		got, err := ParseDouble(EncodeDouble(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text string
		want string
	}{
		{"2024-05-17", "2024-05-17"},
		{"2024-05-17T10:30:00Z", "2024-05-17"},
		{"Fri, 17 May 2024 10:30:00 +0000", "2024-05-17"},
		{"05/17/2024", "2024-05-17"},
		{"17 May 24", "2024-05-17"},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.text)
		require.NoError(t, err, "text %q", tc.text)
		assert.Equal(t, tc.want, EncodeDate(got), "text %q", tc.text)
	}

	_, err := ParseDate("not a date")
	require.Error(t, err)
}

func TestEncodeDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 5, 17, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-17", EncodeDate(d))
}

func TestParseIntAndUInt(t *testing.T) {
	t.Parallel()

	i, err := ParseInt("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i)

	_, err = ParseInt("4.2")
	require.Error(t, err)

	u, err := ParseUInt("7")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), u)

	_, err = ParseUInt("-7")
	require.Error(t, err)
}

func TestEscapeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Maris Otter &amp; Crystal &lt;60L&gt;", EscapeText("Maris Otter & Crystal <60L>"))
	assert.Equal(t, "plain", EscapeText("plain"))
}
