//go:build unit

package cabin_test

import (
	"testing"

	"manuara-reservas/internal/domain/cabin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrder(t *testing.T) {
	infos := cabin.All()
	require.Len(t, infos, 4)

	order := []cabin.ID{cabin.Small, cabin.Medium1, cabin.Medium2, cabin.Large}
	for i, info := range infos {
		assert.Equal(t, order[i], info.ID)
	}
}

func TestCapacities(t *testing.T) {
	assert.Equal(t, 3, cabin.Small.MaxCapacity())
	assert.Equal(t, 4, cabin.Medium1.MaxCapacity())
	assert.Equal(t, 4, cabin.Medium2.MaxCapacity())
	assert.Equal(t, 6, cabin.Large.MaxCapacity())
}

func TestParseID(t *testing.T) {
	id, err := cabin.ParseID("medium-2")
	require.NoError(t, err)
	assert.Equal(t, cabin.Medium2, id)

	_, err = cabin.ParseID("chalet")
	assert.ErrorIs(t, err, cabin.ErrUnknownCabin)

	// display labels must never resolve as identifiers
	_, err = cabin.ParseID("Cabaña Grande (Max 6p)")
	assert.ErrorIs(t, err, cabin.ErrUnknownCabin)
}

func TestExternalCodeMapping(t *testing.T) {
	for _, info := range cabin.All() {
		id, err := cabin.FromExternalCode(info.ExternalCode)
		require.NoError(t, err)
		assert.Equal(t, info.ID, id)
	}

	_, err := cabin.FromExternalCode("small")
	assert.ErrorIs(t, err, cabin.ErrUnknownCabin, "internal IDs are not external codes")
}
