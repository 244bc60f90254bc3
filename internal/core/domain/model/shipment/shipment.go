package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrPickupAddressIsRequired is returned when a shipment is created without a pickup address.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickupAddress")

	// ErrDeliveryAddressIsRequired is returned when a shipment is created without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
)

// Shipment is the aggregate root for the shipment lifecycle, from creation in
// Processing through the status workflow to Delivered (or Delayed).
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier and tracking number
//   - Status is always a member of the closed six-status set
//   - Status changes only happen through ApplyTransition, which consults the
//     transition table and records a history entry
//   - History log entries are newest first and match the encoding grammar
//   - Can only be created through NewShipment or RestoreShipment
//
// The Shipment and its history log are owned by the store: the aggregate is
// rebuilt from the value just fetched and written back whole, never cached
// across operations, so concurrent subscribers cannot observe this instance
// going stale.
type Shipment struct {
	id               kernel.UUID
	trackingNumber   kernel.TrackingNumber
	serviceType      ServiceType
	pickupAddress    string
	deliveryAddress  string
	packageWeight    *float64
	eventID          *kernel.UUID
	inventoryItemIDs []kernel.UUID
	status           Status
	historyLog       string

	isConstructed bool
}

// NewShipment creates a new Shipment in Processing status with an empty
// history log. A tracking number is generated; callers that received one from
// an external carrier can restore it via RestoreShipment instead.
//
// Example:
//
//	id := kernel.NewUUID()
//	s, err := shipment.NewShipment(id, shipment.ServiceExpress, "12 Dock Rd", "88 Venue Ave")
//	if err != nil {
//	    // Handle validation error
//	}
func NewShipment(id kernel.UUID, serviceType ServiceType, pickupAddress, deliveryAddress string) (*Shipment, error) {
	s := &Shipment{
		trackingNumber: kernel.NewTrackingNumber(),
		status:         Processing,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setServiceType(serviceType),
		s.setPickupAddress(pickupAddress),
		s.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence. All invariants are
// re-validated so rows written by other writers cannot smuggle in an invalid
// status or empty address.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	serviceType ServiceType,
	pickupAddress, deliveryAddress string,
	packageWeight *float64,
	eventID *kernel.UUID,
	inventoryItemIDs []kernel.UUID,
	status Status,
	historyLog string,
) (*Shipment, error) {
	if err := errors.Join(
		trackingNumber.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	s := &Shipment{
		trackingNumber: trackingNumber,
		status:         status,
		historyLog:     historyLog,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setServiceType(serviceType),
		s.setPickupAddress(pickupAddress),
		s.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	s.packageWeight = packageWeight
	s.inventoryItemIDs = inventoryItemIDs
	if eventID != nil {
		if err := eventID.Validate(); err != nil {
			return nil, err
		}
		s.eventID = eventID
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// Returns ErrShipmentIsNotConstructed otherwise.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the shipment's tracking number.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber {
	return s.trackingNumber
}

// ServiceType returns the booked service level.
func (s *Shipment) ServiceType() ServiceType {
	return s.serviceType
}

// PickupAddress returns the pickup address.
func (s *Shipment) PickupAddress() string {
	return s.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (s *Shipment) DeliveryAddress() string {
	return s.deliveryAddress
}

// PackageWeight returns the package weight in kilograms, or nil when not recorded.
func (s *Shipment) PackageWeight() *float64 {
	return s.packageWeight
}

// Event returns the linked event's ID, or nil when the shipment is not tied to an event.
func (s *Shipment) Event() *kernel.UUID {
	return s.eventID
}

// InventoryItems returns the IDs of inventory items carried by the shipment.
func (s *Shipment) InventoryItems() []kernel.UUID {
	return s.inventoryItemIDs
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// HistoryLog returns the raw encoded history log, newest entry first.
func (s *Shipment) HistoryLog() string {
	return s.historyLog
}

// History decodes the history log into structured entries, newest first.
// Malformed lines are dropped, never surfaced as errors.
func (s *Shipment) History() []HistoryEntry {
	return DecodeLog(s.historyLog)
}

// AvailableTransitions returns the transitions currently offered for this
// shipment, in table declaration order.
func (s *Shipment) AvailableTransitions() []TransitionRule {
	return AvailableTransitions(s.status)
}

// SetPackageWeight records the package weight in kilograms.
func (s *Shipment) SetPackageWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageWeight", fmt.Errorf("%v is not greater than 0", weight))
	}
	s.packageWeight = &weight
	return nil
}

// AttachEvent links the shipment to an event.
func (s *Shipment) AttachEvent(eventID kernel.UUID) error {
	if err := eventID.Validate(); err != nil {
		return err
	}
	s.eventID = &eventID
	return nil
}

// SetInventoryItems records the inventory items carried by the shipment.
// Each ID must be valid; the list may be empty.
func (s *Shipment) SetInventoryItems(itemIDs []kernel.UUID) error {
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	s.inventoryItemIDs = itemIDs
	return nil
}

// ApplyTransition moves the shipment to the target status and prepends a
// history entry timestamped at the given time.
//
// Enforced rules, both checked before any mutation:
//   - The target must be reachable from the current status via the transition
//     table (ErrIllegalTransition otherwise)
//   - When the matched rule requires a note, the note must be non-empty after
//     trimming (ErrNoteIsRequired otherwise)
//
// Example:
//
//	err := s.ApplyTransition(shipment.PickedUp, "left with front desk", time.Now())
//	if errors.Is(err, shipment.ErrIllegalTransition) {
//	    // target not reachable from current status
//	}
func (s *Shipment) ApplyTransition(target Status, note string, at time.Time) error {
	rule, err := FindTransition(s.status, target)
	if err != nil {
		return err
	}

	if rule.RequiresNote() && strings.TrimSpace(note) == "" {
		return ErrNoteIsRequired
	}

	s.historyLog = AppendEntry(s.historyLog, EncodeEntry(at, target, note))
	s.status = target
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	s.serviceType = serviceType
	return nil
}

func (s *Shipment) setPickupAddress(address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}
	s.pickupAddress = address
	return nil
}

func (s *Shipment) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	s.deliveryAddress = address
	return nil
}
