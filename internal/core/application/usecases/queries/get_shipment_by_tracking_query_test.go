package queries_test

import (
	"testing"

	"opsboard/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentByTrackingQuery(t *testing.T) {
	t.Run("valid tracking number", func(t *testing.T) {
		query, err := queries.NewGetShipmentByTrackingQuery("QCS12345678901")

		require.NoError(t, err)
		assert.Equal(t, "QCS12345678901", query.TrackingNumber())
		assert.NoError(t, query.Validate())
	})

	t.Run("empty tracking number", func(t *testing.T) {
		_, err := queries.NewGetShipmentByTrackingQuery("")

		assert.ErrorIs(t, err, queries.ErrTrackingNumberIsRequired)
	})
}

func TestGetShipmentByTrackingQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetShipmentByTrackingQuery

	assert.ErrorIs(t, query.Validate(), queries.ErrGetShipmentByTrackingQueryIsNotConstructed)
}
