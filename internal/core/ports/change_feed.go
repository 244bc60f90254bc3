package ports

import "encoding/json"

// Collection names published on the change feed. They match the store tables.
const (
	ShipmentsCollection     = "shipments"
	EventsCollection        = "events"
	InventoryCollection     = "inventory"
	NotificationsCollection = "notifications"
	ActivitiesCollection    = "activities"
)

// ChangeEvent is one record change delivered by the store's realtime feed.
// Payload carries the changed record as the store serialized it; consumers
// that only need to know "something changed" can ignore it.
type ChangeEvent struct {
	Collection string          `json:"collection"`
	Action     string          `json:"action"`
	RecordID   string          `json:"record_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Subscription is a handle on an active change-feed subscription.
type Subscription interface {
	// Unsubscribe stops delivery to this subscriber. Safe to call more than once.
	Unsubscribe()
}

// ChangeFeed is the realtime surface of the store collaborator. Delivery is
// push-based, asynchronous, and eventually consistent: the feed never blocks
// a write waiting on subscriber delivery, and ordering across changes is
// whatever the store provides, so subscribers must not assume resequencing.
type ChangeFeed interface {
	// Subscribe registers onChange for every change in the named collection.
	// The callback runs on the feed's delivery goroutine and must not block.
	Subscribe(collection string, onChange func(ChangeEvent)) (Subscription, error)
}

// ChangePublisher is the write side of the feed, used by the persistence
// layer after a successful commit.
type ChangePublisher interface {
	// Publish delivers a change event to all current subscribers of its
	// collection. Best-effort: a failed publish is logged, never propagated.
	Publish(event ChangeEvent)
}
