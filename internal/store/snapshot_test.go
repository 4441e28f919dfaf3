package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/brewdoc/internal/brew"
	"github.com/vk/brewdoc/internal/entity"
	"github.com/vk/brewdoc/internal/value"
)

func TestSnapshotCarriesScalarsOnly(t *testing.T) {
	t.Parallel()

	style := brew.NewStyle(entity.NewBundle())
	style.SetName("Bohemian Pilsner")

	hop := brew.NewHop(entity.NewBundle())
	hop.SetName("Saaz")

	recipe := brew.NewRecipe(entity.NewBundle())
	recipe.SetName("House Pils")
	recipe.Set("batchSizeL", value.Double(20))
	recipe.Set("forcedCarb", value.Bool(true))
	recipe.Set("style", value.Record(style))
	recipe.Set("hops", value.RecordList([]any{hop}))

	payload := snapshot(recipe)

	assert.Equal(t, "House Pils", payload["name"])
	assert.Equal(t, 20.0, payload["batchSizeL"])
	assert.Equal(t, true, payload["forcedCarb"])

	// Linked records stay out of the payload: hierarchy is rebuilt by
	// imports, not replayed from rows.
	require.NotContains(t, payload, "style")
	require.NotContains(t, payload, "hops")

	// Absent optionals are omitted rather than stored as nulls.
	assert.NotContains(t, payload, "notes")
}
