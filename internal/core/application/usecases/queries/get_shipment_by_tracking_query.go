package queries

import (
	"errors"

	"opsboard/internal/pkg/guard"
)

var (
	ErrGetShipmentByTrackingQueryIsNotConstructed = errors.New(
		"GetShipmentByTrackingQuery must be created via NewGetShipmentByTrackingQuery constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")

	// ErrShipmentNotFound is returned when no shipment carries the requested
	// tracking number.
	ErrShipmentNotFound = errors.New("no shipment found")
)

// GetShipmentByTrackingQuery retrieves one shipment by its tracking number.
// Tracking numbers are not guaranteed unique; the most recently created match
// wins.
//
// Example:
//
//	query, err := NewGetShipmentByTrackingQuery("QCS12345678042")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentByTrackingQueryHandler(db)
//	s, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrShipmentNotFound) {
//	    // 404
//	}
type GetShipmentByTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingQuery creates a query for one shipment by tracking number.
// Validates that the tracking number is non-empty; legacy formats are accepted.
func NewGetShipmentByTrackingQuery(trackingNumber string) (GetShipmentByTrackingQuery, error) {
	query := GetShipmentByTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingNumber(trackingNumber); err != nil {
		return GetShipmentByTrackingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByTrackingQueryIsNotConstructed if validation fails.
func (q GetShipmentByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the requested tracking number.
func (q GetShipmentByTrackingQuery) TrackingNumber() string {
	return q.trackingNumber
}

func (q *GetShipmentByTrackingQuery) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	q.trackingNumber = trackingNumber
	return nil
}
