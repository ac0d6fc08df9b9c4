package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_GetByID(t *testing.T) {
	d := New()

	f, err := d.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "King Faisal Hospital", f.Name)
	assert.Equal(t, "Gasabo", f.District)

	_, err = d.GetByID(99)
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestDirectory_GetAll(t *testing.T) {
	d := New()

	all := d.GetAll()
	require.Len(t, all, 11)

	// Catalog insertion order is the contract.
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(11), all[10].ID)
}

func TestDirectory_GetBySector(t *testing.T) {
	d := New()

	t.Run("exact sector matches come first", func(t *testing.T) {
		matches := d.GetBySector("Gasabo", "Kacyiru")
		require.Len(t, matches, 3)

		// King Faisal and CHUK are in Kacyiru, Kibagabaga is district-only.
		assert.True(t, matches[0].IsInSector)
		assert.True(t, matches[1].IsInSector)
		assert.False(t, matches[2].IsInSector)
		assert.Equal(t, ProximityInSector, matches[0].Proximity)
		assert.Equal(t, ProximitySameDistrict, matches[2].Proximity)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		matches := d.GetBySector("gasabo", "KACYIRU")
		require.Len(t, matches, 3)
		assert.True(t, matches[0].IsInSector)
	})

	t.Run("unknown district yields nothing", func(t *testing.T) {
		assert.Empty(t, d.GetBySector("Atlantis", "Downtown"))
	})

	t.Run("results are capped at five", func(t *testing.T) {
		facilities := make([]Facility, 8)
		for i := range facilities {
			facilities[i] = Facility{ID: int64(i + 1), District: "Gasabo", Sector: "Kacyiru"}
		}
		small := NewWithFacilities(facilities)
		assert.Len(t, small.GetBySector("Gasabo", "Kacyiru"), 5)
	})
}

func TestDirectory_Search(t *testing.T) {
	d := New()

	t.Run("by name substring", func(t *testing.T) {
		results := d.Search("faisal")
		require.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0].ID)
	})

	t.Run("by district", func(t *testing.T) {
		results := d.Search("nyarugenge")
		assert.Len(t, results, 2) // CHK and Muhima
	})

	t.Run("by location label", func(t *testing.T) {
		results := d.Search("southern province")
		require.Len(t, results, 1)
		assert.Equal(t, "Butare University Teaching Hospital (CHUB)", results[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, d.Search("zzz"))
	})
}

func TestFacility_HasService(t *testing.T) {
	d := New()

	f, err := d.GetByID(3)
	require.NoError(t, err)
	assert.True(t, f.HasService(ServiceEmergency))
	assert.True(t, f.HasService("ICU"))
	assert.False(t, f.HasService("Dentistry"))
}
