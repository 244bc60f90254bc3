package queries

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves the notification inbox from the database.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification retrieval queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all notifications, newest first, and
// counts the unread ones in the same pass.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	response := GetNotificationsQueryResponse{
		Notifications: make([]NotificationView, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			message,
			kind,
			is_read,
			created_at
		FROM notifications
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return GetNotificationsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var view NotificationView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&view.Title,
			&view.Message,
			&view.Kind,
			&view.IsRead,
			&view.CreatedAt,
		)
		if err != nil {
			return GetNotificationsQueryResponse{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetNotificationsQueryResponse{}, idErr
		}
		view.ID = notificationID

		if !view.IsRead {
			response.UnreadCount++
		}
		response.Notifications = append(response.Notifications, view)
	}

	if err = rows.Err(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	return response, nil
}
