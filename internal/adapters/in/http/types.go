package http

import "time"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by creation endpoints so callers can address the new
// resource without refetching the whole collection.
type Created struct {
	ID string `json:"id"`
}

// NewShipment is the request body for POST /api/v1/shipments.
type NewShipment struct {
	ServiceType      string   `json:"serviceType"`
	PickupAddress    string   `json:"pickupAddress"`
	DeliveryAddress  string   `json:"deliveryAddress"`
	PackageWeight    *float64 `json:"packageWeight,omitempty"`
	EventID          *string  `json:"eventId,omitempty"`
	InventoryItemIDs []string `json:"inventoryItemIds,omitempty"`
}

// ShipmentUpdate is the request body for PUT /api/v1/shipments/:id.
// Addresses, service type, and tracking number are fixed at creation; only
// the linkage fields can change. Nil fields keep the stored values.
type ShipmentUpdate struct {
	PackageWeight    *float64 `json:"packageWeight,omitempty"`
	EventID          *string  `json:"eventId,omitempty"`
	InventoryItemIDs []string `json:"inventoryItemIds,omitempty"`
}

// StatusUpdate is the request body for POST /api/v1/shipments/:id/status.
type StatusUpdate struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// HistoryEntry is one decoded line of a shipment's transition history.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
}

// Shipment is the read model returned by the shipment endpoints.
type Shipment struct {
	ID               string         `json:"id"`
	TrackingNumber   string         `json:"trackingNumber"`
	ServiceType      string         `json:"serviceType"`
	PickupAddress    string         `json:"pickupAddress"`
	DeliveryAddress  string         `json:"deliveryAddress"`
	PackageWeight    *float64       `json:"packageWeight,omitempty"`
	EventID          *string        `json:"eventId,omitempty"`
	InventoryItemIDs []string       `json:"inventoryItemIds"`
	Status           string         `json:"status"`
	History          []HistoryEntry `json:"history"`
	CreatedAt        time.Time      `json:"createdAt"`
}

// Contact holds the point-of-contact details carried on event payloads.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// NewEvent is the request body for POST /api/v1/events.
type NewEvent struct {
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Venue       string    `json:"venue"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Contact     Contact   `json:"contact"`
	Description string    `json:"description,omitempty"`
}

// EventUpdate is the request body for PUT /api/v1/events/:id.
type EventUpdate struct {
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Venue       string    `json:"venue"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Contact     Contact   `json:"contact"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
}

// Event is the read model returned by the event endpoints.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Client      string    `json:"client"`
	Venue       string    `json:"venue"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Contact     Contact   `json:"contact"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
}

// NewInventoryItem is the request body for POST /api/v1/inventory.
type NewInventoryItem struct {
	SKU               string   `json:"sku"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Category          string   `json:"category,omitempty"`
	StockLevel        int      `json:"stockLevel"`
	UnitPrice         *float64 `json:"unitPrice,omitempty"`
	IsPIItem          bool     `json:"isPiItem"`
	LowStockThreshold *int     `json:"lowStockThreshold,omitempty"`
}

// InventoryItemUpdate is the request body for PUT /api/v1/inventory/:id.
// The SKU is fixed at creation. A nil threshold clears the stored one.
type InventoryItemUpdate struct {
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Category          string   `json:"category,omitempty"`
	StockLevel        int      `json:"stockLevel"`
	UnitPrice         *float64 `json:"unitPrice,omitempty"`
	IsPIItem          bool     `json:"isPiItem"`
	LowStockThreshold *int     `json:"lowStockThreshold,omitempty"`
}

// InventoryItem is the read model returned by the inventory endpoints.
type InventoryItem struct {
	ID                string   `json:"id"`
	SKU               string   `json:"sku"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Category          string   `json:"category,omitempty"`
	StockLevel        int      `json:"stockLevel"`
	UnitPrice         *float64 `json:"unitPrice,omitempty"`
	IsPIItem          bool     `json:"isPiItem"`
	LowStockThreshold *int     `json:"lowStockThreshold,omitempty"`
	IsLowStock        bool     `json:"isLowStock"`
}

// Notification is one inbox entry in the read model.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationList carries the inbox together with its unread count.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int64          `json:"unreadCount"`
}

// Activity is one activity feed entry in the read model.
type Activity struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	ActivityType string    `json:"activityType"`
	CreatedAt    time.Time `json:"createdAt"`
}
