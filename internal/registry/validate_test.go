package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/proppath"
	"github.com/vk/brewdoc/internal/registry"
	"github.com/vk/brewdoc/internal/schema"
	"github.com/vk/brewdoc/internal/testutil"
)

func TestFixtureRegistryValidates(t *testing.T) {
	t.Parallel()

	// NewFixtureRegistry calls Validate itself; reaching here means the
	// static data is coherent.
	reg := testutil.NewFixtureRegistry()
	assert.Equal(t, []string{"Batch", "Gadget", "Widget"}, reg.Names())
}

func TestRegisterDefects(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	kind := &registry.Kind{
		Name:   "Batch",
		Tag:    "ROOT",
		Schema: testutil.BatchSchema,
		Types:  testutil.BatchTypes,
		New:    testutil.NewBatch,
		Equal:  testutil.BatchEqual,
	}
	reg.Register(kind)

	require.Panics(t, func() { reg.Register(kind) }, "duplicate name")
	require.Panics(t, func() { reg.Lookup("Nope") }, "unknown kind")
	require.Panics(t, func() {
		reg.Register(&registry.Kind{Name: "X", Types: testutil.BatchTypes})
	}, "missing constructor")
	require.Panics(t, func() {
		reg.Register(&registry.Kind{Name: "Y", New: testutil.NewBatch})
	}, "missing type registry")
}

func TestValidateCollectsDefects(t *testing.T) {
	t.Parallel()

	broken := schema.Record{
		// Path does not resolve on BatchTypes.
		{Kind: schema.FieldDouble, XPath: "OG", Path: proppath.New("og")},
		// Enum field without a codec.
		{Kind: schema.FieldEnum, XPath: "USE", Path: proppath.Null()},
		// Constant without a literal.
		{Kind: schema.FieldRequiredConstant, XPath: "VERSION"},
		// Nested record naming an unregistered child kind.
		{Kind: schema.FieldRecord, XPath: "SUB", Path: proppath.Null(), ChildKind: "Ghost"},
	}

	reg := registry.New()
	reg.Register(&registry.Kind{
		Name:   "Broken",
		Tag:    "BROKEN",
		Schema: broken,
		Types:  testutil.BatchTypes,
		New:    testutil.NewBatch,
		Equal:  testutil.BatchEqual,
	})

	defer func() {
		r := recover()
		require.NotNil(t, r, "validation must panic")
		msg, ok := r.(string)
		require.True(t, ok)
		// Every defect is reported, not just the first.
		assert.Contains(t, msg, `path "og" does not resolve`)
		assert.Contains(t, msg, "enum field with no codec")
		assert.Contains(t, msg, "required constant with no literal")
		assert.Contains(t, msg, `child kind "Ghost" not registered`)
	}()
	reg.Validate()
}

func TestValidateTypeMismatch(t *testing.T) {
	t.Parallel()

	// FORCED is a bool property but the field decodes a double.
	mismatched := schema.Record{
		{Kind: schema.FieldDouble, XPath: "FORCED", Path: proppath.New("forced")},
	}
	reg := registry.New()
	reg.Register(&registry.Kind{
		Name:   "Batch",
		Tag:    "ROOT",
		Schema: mismatched,
		Types:  testutil.BatchTypes,
		New:    testutil.NewBatch,
		Equal:  testutil.BatchEqual,
	})

	require.Panics(t, func() { reg.Validate() })
}
