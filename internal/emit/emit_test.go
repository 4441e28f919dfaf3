package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNestedDocument(t *testing.T) {
	t.Parallel()

	w := NewWriter("")
	w.Prolog()
	w.OpenTag("MASH")
	w.Leaf("NAME", "Single Infusion")
	w.OpenTag("MASH_STEPS")
	w.Leaf("NAME", "Conversion")
	w.CloseTag("MASH_STEPS")
	w.CloseTag("MASH")

	want := `<?xml version="1.0" encoding="UTF-8"?>
<MASH>
  <NAME>Single Infusion</NAME>
  <MASH_STEPS>
    <NAME>Conversion</NAME>
  </MASH_STEPS>
</MASH>
`
	assert.Equal(t, want, w.String())
}

func TestCustomIndent(t *testing.T) {
	t.Parallel()

	w := NewWriter("\t")
	w.OpenTag("A")
	w.Leaf("B", "x")
	w.CloseTag("A")

	assert.Equal(t, "<A>\n\t<B>x</B>\n</A>\n", w.String())
}

func TestComment(t *testing.T) {
	t.Parallel()

	w := NewWriter("")
	w.OpenTag("RECIPE")
	w.Comment("no MASH in this record")
	w.CloseTag("RECIPE")

	assert.Contains(t, w.String(), "  <!-- no MASH in this record -->\n")
}

func TestMismatchedClosePanics(t *testing.T) {
	t.Parallel()

	w := NewWriter("")
	w.OpenTag("A")
	w.OpenTag("B")
	require.Panics(t, func() { w.CloseTag("A") })
}

func TestUnclosedDocumentPanics(t *testing.T) {
	t.Parallel()

	w := NewWriter("")
	w.OpenTag("A")
	require.Panics(t, func() { _ = w.String() })
}
