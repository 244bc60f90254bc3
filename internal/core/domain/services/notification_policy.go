package services

import (
	"fmt"

	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/inventory"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
	"opsboard/internal/core/domain/model/shipment"
)

// NotificationDraft is the output of the notification policy: everything a
// notification needs except its identity and timestamp, which are assigned by
// the command handler that persists it.
type NotificationDraft struct {
	Title   string
	Message string
	Kind    notification.Kind
}

// NotificationPolicy maps domain events to the notification that should be
// emitted for them. It is a pure function over its inputs: no side effects,
// no I/O, no clock. Emission itself is the caller's concern and is always
// best-effort: a failed emit never rolls back the triggering write.
//
// Example:
//
//	policy := services.NewNotificationPolicy()
//	draft := policy.ShipmentStatusChanged(s.TrackingNumber(), shipment.Delayed)
//	// draft.Kind == notification.KindWarning
type NotificationPolicy struct{}

// NewNotificationPolicy creates a new NotificationPolicy instance.
func NewNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{}
}

// shipmentStatusMessages is the fixed per-status phrase table for shipment
// status-change notifications.
var shipmentStatusMessages = map[shipment.Status]string{
	shipment.Processing:     "Shipment is being processed",
	shipment.PickedUp:       "Shipment has been picked up",
	shipment.InTransit:      "Shipment is in transit",
	shipment.OutForDelivery: "Shipment is out for delivery",
	shipment.Delivered:      "Shipment has been delivered",
	shipment.Delayed:        "Shipment has been delayed",
}

// ShipmentStatusChanged derives the notification for a shipment moving to
// newStatus. Kind is warning when the new status is Delayed, info otherwise.
func (NotificationPolicy) ShipmentStatusChanged(
	trackingNumber kernel.TrackingNumber,
	newStatus shipment.Status,
) NotificationDraft {
	kind := notification.KindInfo
	if newStatus == shipment.Delayed {
		kind = notification.KindWarning
	}

	return NotificationDraft{
		Title:   fmt.Sprintf("Shipment %s Update", trackingNumber),
		Message: shipmentStatusMessages[newStatus],
		Kind:    kind,
	}
}

// EventCreated derives the notification for a newly created event.
func (NotificationPolicy) EventCreated(e *event.Event) NotificationDraft {
	return NotificationDraft{
		Title:   "Event created",
		Message: fmt.Sprintf("New event %q has been created", e.Title()),
		Kind:    notification.KindInfo,
	}
}

// EventUpdated derives the notification for an updated event. An update that
// carries the Cancelled status is reported as a cancellation warning, whether
// or not the event was cancelled before; every other update is informational.
func (NotificationPolicy) EventUpdated(e *event.Event, cancelled bool) NotificationDraft {
	if cancelled {
		return NotificationDraft{
			Title:   "Event cancelled",
			Message: fmt.Sprintf("Event %q has been cancelled", e.Title()),
			Kind:    notification.KindWarning,
		}
	}

	return NotificationDraft{
		Title:   "Event updated",
		Message: fmt.Sprintf("Event %q has been updated", e.Title()),
		Kind:    notification.KindInfo,
	}
}

// LowStock derives the low-stock warning for an inventory item, returning
// false when the item is not at or below its threshold (or has none). The
// check runs once per create or update call, never continuously.
func (NotificationPolicy) LowStock(item *inventory.Item) (NotificationDraft, bool) {
	if !item.IsLowStock() {
		return NotificationDraft{}, false
	}

	return NotificationDraft{
		Title:   "Low Stock Alert",
		Message: fmt.Sprintf("%s is running low on stock (%d remaining)", item.Name(), item.StockLevel()),
		Kind:    notification.KindWarning,
	}, true
}
