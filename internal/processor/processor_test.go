package processor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/emit"
	"github.com/vk/brewdoc/internal/processor"
	"github.com/vk/brewdoc/internal/store"
	"github.com/vk/brewdoc/internal/testutil"
	"github.com/vk/brewdoc/internal/xmltree"
)

func mustParse(t *testing.T, doc string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.Parse([]byte(doc))
	require.NoError(t, err)
	return root
}

func TestParseConstructAndExportRoundTrip(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()

	node := mustParse(t, `<ROOT><FORCED>TRUE</FORCED></ROOT>`)
	proc := processor.New(reg, "Batch", node, processor.Options{})

	require.NoError(t, proc.Parse(ctx))
	assert.Equal(t, processor.StateEntityConstructed, proc.State())

	ent := proc.Entity()
	require.NotNil(t, ent)
	assert.True(t, ent.Get("forced").Bool())
	assert.True(t, ent.Get("abv").IsNull(), "the omitted optional stays absent")

	// Export re-emits exactly the input: canonical bool token, no ABV tag.
	w := emit.NewWriter("")
	processor.Export(reg, "Batch", ent, w)
	assert.Equal(t, "<ROOT>\n  <FORCED>TRUE</FORCED>\n</ROOT>\n", w.String())
}

func TestParseDashDecodesDoubleToZero(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()

	node := mustParse(t, `<ROOT><ABV>-</ABV></ROOT>`)
	proc := processor.New(reg, "Batch", node, processor.Options{})

	require.NoError(t, proc.Parse(ctx))
	ent := proc.Entity()
	require.NotNil(t, ent)

	abv := ent.Get("abv")
	require.False(t, abv.IsNull(), "the dash placeholder is a present zero, not an absent value")
	assert.Equal(t, 0.0, abv.Double())
}

func TestParseBoundDecodeFailureIsFatal(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()

	node := mustParse(t, `<ROOT><FORCED>maybe</FORCED></ROOT>`)
	proc := processor.New(reg, "Batch", node, processor.Options{})

	err := proc.Parse(ctx)
	require.Error(t, err)
	assert.Equal(t, processor.StateFailed, proc.State())
}

func TestParseRepeatedLeafUsesFirstMatch(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()

	node := mustParse(t, `<ROOT><ABV>1.5</ABV><ABV>9.9</ABV></ROOT>`)
	proc := processor.New(reg, "Batch", node, processor.Options{})

	require.NoError(t, proc.Parse(ctx))
	ent := proc.Entity()
	require.NotNil(t, ent)
	assert.Equal(t, 1.5, ent.Get("abv").Double(), "a repeated leaf tag decodes only its first occurrence")
}

func TestParseEmptyRecordConstructsNothing(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()

	node := mustParse(t, `<ROOT></ROOT>`)
	proc := processor.New(reg, "Batch", node, processor.Options{})

	require.NoError(t, proc.Parse(ctx))
	assert.Equal(t, processor.StateFieldsParsed, proc.State())
	assert.Nil(t, proc.Entity())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Created", processor.StateCreated.String())
	assert.Equal(t, "Stored", processor.StateStored.String())
	assert.False(t, processor.StateCreated.Terminal())
	assert.True(t, processor.StateDuplicate.Terminal())
	assert.True(t, processor.StateFailed.Terminal())
}

func widgetDoc(names ...string) string {
	doc := `<CATALOG>`
	for _, n := range names {
		doc += `<WIDGET><NAME>` + n + `</NAME><COUNT>1</COUNT></WIDGET>`
	}
	return doc + `</CATALOG>`
}

func TestImportSkipsEmptyRecordsInCounts(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()
	st := store.NewMemStore()

	// The empty record constructs no entity and must not count as stored.
	doc := `<CATALOG>` +
		`<WIDGET></WIDGET>` +
		`<WIDGET><NAME>Foo</NAME><COUNT>1</COUNT></WIDGET>` +
		`</CATALOG>`

	imp := processor.NewImporter(reg, st, processor.Options{})
	res, err := imp.ImportDocument(ctx, mustParse(t, doc))
	require.NoError(t, err)

	assert.Equal(t, 1, res.PerKind["Widget"].Stored)
	assert.Equal(t, 0, res.PerKind["Widget"].Skipped)
	assert.Len(t, st.All("Widget"), 1)
}

func TestNameNormalization(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()
	st := store.NewMemStore()

	// Three distinct widgets all claiming the same name.
	doc := `<CATALOG>` +
		`<WIDGET><NAME>Foo</NAME><COUNT>1</COUNT></WIDGET>` +
		`<WIDGET><NAME>Foo</NAME><COUNT>2</COUNT></WIDGET>` +
		`<WIDGET><NAME>Foo</NAME><COUNT>3</COUNT></WIDGET>` +
		`</CATALOG>`

	imp := processor.NewImporter(reg, st, processor.Options{})
	res, err := imp.ImportDocument(ctx, mustParse(t, doc))
	require.NoError(t, err)
	assert.Equal(t, 3, res.PerKind["Widget"].Stored)

	var names []string
	for _, e := range st.All("Widget") {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"Foo", "Foo (1)", "Foo (2)"}, names)
}

func TestDuplicateCheckAdoptsStoredEntity(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()
	st := store.NewMemStore()

	imp := processor.NewImporter(reg, st, processor.Options{})
	res, err := imp.ImportDocument(ctx, mustParse(t, widgetDoc("Foo", "Foo")))
	require.NoError(t, err)

	assert.Equal(t, 1, res.PerKind["Widget"].Stored)
	assert.Equal(t, 1, res.PerKind["Widget"].Skipped)
	require.Len(t, st.All("Widget"), 1, "the second import adopts the first's identity")
}

func TestDisabledDuplicateCheckStoresTwice(t *testing.T) {
	t.Parallel()
	reg := testutil.NewFixtureRegistry()
	ctx := context.Background()
	st := store.NewMemStore()

	doc := `<CATALOG>` +
		`<GADGET><NAME>Foo</NAME><COUNT>1</COUNT></GADGET>` +
		`<GADGET><NAME>Foo</NAME><COUNT>1</COUNT></GADGET>` +
		`</CATALOG>`

	imp := processor.NewImporter(reg, st, processor.Options{})
	res, err := imp.ImportDocument(ctx, mustParse(t, doc))
	require.NoError(t, err)

	assert.Equal(t, 2, res.PerKind["Gadget"].Stored)
	assert.Equal(t, 0, res.PerKind["Gadget"].Skipped)
	assert.Len(t, st.All("Gadget"), 2)
}
