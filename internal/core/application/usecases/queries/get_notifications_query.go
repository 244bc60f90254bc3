package queries

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the notification inbox, newest first,
// together with the unread count the dashboard badge shows.
type GetNotificationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query to retrieve the notification inbox.
func NewGetNotificationsQuery() GetNotificationsQuery {
	return GetNotificationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// NotificationView represents one notification in the read model.
type NotificationView struct {
	ID        kernel.UUID
	Title     string
	Message   string
	Kind      string
	IsRead    bool
	CreatedAt time.Time
}

// GetNotificationsQueryResponse carries the inbox and its unread count.
type GetNotificationsQueryResponse struct {
	Notifications []NotificationView
	UnreadCount   int64
}
