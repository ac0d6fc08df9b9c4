package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umurava/maternalcare-booking/internal/directory"
)

func TestDistance(t *testing.T) {
	t.Run("coincident points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(-1.9536, 30.0906, -1.9536, 30.0906))
	})

	t.Run("kacyiru to nyarugenge golden value", func(t *testing.T) {
		// King Faisal Hospital to CHK, roughly 3.5 km apart.
		d := Distance(-1.9536, 30.0906, -1.9536, 30.0588)
		assert.InDelta(t, 3.5, d, 0.5)
	})

	t.Run("symmetry", func(t *testing.T) {
		a := Distance(-1.95, 30.09, -2.59, 29.74)
		b := Distance(-2.59, 29.74, -1.95, 30.09)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 3.5, RoundKm(3.54))
	assert.Equal(t, 3.6, RoundKm(3.55))
	assert.Equal(t, 0.0, RoundKm(0.04))
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateCoordinates(-1.95, 30.09))
	assert.NoError(t, ValidateCoordinates(90, 180))
	assert.NoError(t, ValidateCoordinates(-90, -180))
	assert.ErrorIs(t, ValidateCoordinates(90.1, 0), ErrInvalidCoordinate)
	assert.ErrorIs(t, ValidateCoordinates(0, -180.1), ErrInvalidCoordinate)
}

func TestRanker_Nearest(t *testing.T) {
	ranker := NewRanker(directory.New())

	t.Run("rejects bad coordinates", func(t *testing.T) {
		_, err := ranker.Nearest(100, 30, 5)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})

	t.Run("sorted ascending and recomputable", func(t *testing.T) {
		results, err := ranker.Nearest(-1.95, 30.09, 11)
		require.NoError(t, err)
		require.Len(t, results, 11)

		prev := -1.0
		for _, r := range results {
			exact := Distance(-1.95, 30.09, r.Facility.Coordinates.Lat, r.Facility.Coordinates.Lng)
			assert.InDelta(t, RoundKm(exact), r.DistanceKm, 1e-6)
			assert.GreaterOrEqual(t, exact, prev)
			prev = exact
		}
	})

	t.Run("kigali query ranks kigali hospitals first", func(t *testing.T) {
		results, err := ranker.Nearest(-1.95, 30.09, 3)
		require.NoError(t, err)
		require.Len(t, results, 3)

		names := []string{results[0].Facility.Name, results[1].Facility.Name, results[2].Facility.Name}
		assert.Contains(t, names, "King Faisal Hospital")
		assert.Contains(t, names, "Kigali University Teaching Hospital (CHUK)")
		for _, r := range results {
			assert.NotContains(t, []string{"Huye", "Rubavu", "Musanze", "Rwamagana"}, r.Facility.District)
		}
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		// King Faisal (id 1) and CHUK (id 3) share coordinates.
		results, err := ranker.Nearest(-1.9536, 30.0906, 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, int64(1), results[0].Facility.ID)
		assert.Equal(t, int64(3), results[1].Facility.ID)
	})

	t.Run("default and max limits", func(t *testing.T) {
		results, err := ranker.Nearest(-1.95, 30.09, 0)
		require.NoError(t, err)
		assert.Len(t, results, 10) // default limit

		results, err = ranker.Nearest(-1.95, 30.09, 50)
		require.NoError(t, err)
		assert.Len(t, results, 11) // whole catalog, under the hard cap
	})

	t.Run("empty directory yields empty result", func(t *testing.T) {
		empty := NewRanker(directory.NewWithFacilities(nil))
		results, err := empty.Nearest(-1.95, 30.09, 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestRanker_NearestEmergency(t *testing.T) {
	ranker := NewRanker(directory.New())

	t.Run("filters to emergency capable facilities", func(t *testing.T) {
		results, err := ranker.NearestEmergency(-1.95, 30.09, 4, true)
		require.NoError(t, err)
		require.Len(t, results, 4)
		for _, r := range results {
			assert.True(t, r.Facility.HasService(directory.ServiceEmergency))
		}
	})

	t.Run("no location falls back to catalog order", func(t *testing.T) {
		results, err := ranker.NearestEmergency(0, 0, 3, false)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, int64(1), results[0].Facility.ID)
		assert.Equal(t, int64(2), results[1].Facility.ID)
		assert.Equal(t, int64(3), results[2].Facility.ID)
		for _, r := range results {
			assert.Zero(t, r.DistanceKm)
		}
	})

	t.Run("invalid coordinates rejected when location is set", func(t *testing.T) {
		_, err := ranker.NearestEmergency(-91, 0, 3, true)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}
