// Package http exposes the application's use cases over a REST surface plus
// an SSE stream of change-feed events. Handlers translate between JSON wire
// types and commands/queries; authorization is enforced here and nowhere
// deeper in the stack.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"
	"opsboard/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateShipment           commands.CreateShipmentCommandHandler
	UpdateShipment           commands.UpdateShipmentCommandHandler
	UpdateShipmentStatus     commands.UpdateShipmentStatusCommandHandler
	CreateEvent              commands.CreateEventCommandHandler
	UpdateEvent              commands.UpdateEventCommandHandler
	CreateInventoryItem      commands.CreateInventoryItemCommandHandler
	UpdateInventoryItem      commands.UpdateInventoryItemCommandHandler
	MarkNotificationRead     commands.MarkNotificationReadCommandHandler
	MarkAllNotificationsRead commands.MarkAllNotificationsReadCommandHandler
	DeleteNotification       commands.DeleteNotificationCommandHandler

	// Query handlers
	GetShipments          queries.GetShipmentsQueryHandler
	GetShipmentByTracking queries.GetShipmentByTrackingQueryHandler
	GetEvents             queries.GetEventsQueryHandler
	GetInventoryItems     queries.GetInventoryItemsQueryHandler
	GetNotifications      queries.GetNotificationsQueryHandler
	GetActivities         queries.GetActivitiesQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	feed     ports.ChangeFeed
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The feed backs the SSE stream endpoint.
func NewServer(handlers Handlers, feed ports.ChangeFeed, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		feed:     feed,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. The auth
// middleware gates everything under /api/v1; /health stays open.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	if auth != nil {
		api.Use(auth)
	}

	api.GET("/shipments", s.ListShipments)
	api.POST("/shipments", s.CreateShipment)
	api.PUT("/shipments/:id", s.UpdateShipment)
	api.POST("/shipments/:id/status", s.UpdateShipmentStatus)
	api.GET("/shipments/tracking/:trackingNumber", s.GetShipmentByTracking)

	api.GET("/events", s.ListEvents)
	api.POST("/events", s.CreateEvent)
	api.PUT("/events/:id", s.UpdateEvent)

	api.GET("/inventory", s.ListInventoryItems)
	api.POST("/inventory", s.CreateInventoryItem)
	api.PUT("/inventory/:id", s.UpdateInventoryItem)

	api.GET("/notifications", s.ListNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	api.DELETE("/notifications/:id", s.DeleteNotification)

	api.GET("/activities", s.ListActivities)
	api.GET("/stream", s.Stream)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListShipments handles GET /api/v1/shipments - retrieves all shipments,
// newest first.
func (s *Server) ListShipments(ctx echo.Context) error {
	query := queries.NewGetShipmentsQuery()

	shipments, err := s.handlers.GetShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipments",
		})
	}

	response := make([]Shipment, len(shipments))
	for i, row := range shipments {
		response[i] = shipmentFromReadModel(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var newShipment NewShipment
	if err := ctx.Bind(&newShipment); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	serviceType, err := shipment.ServiceTypeFromString(newShipment.ServiceType)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service type: " + newShipment.ServiceType,
		})
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID,
		serviceType,
		newShipment.PickupAddress,
		newShipment.DeliveryAddress,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	if newShipment.PackageWeight != nil {
		cmd = cmd.WithPackageWeight(*newShipment.PackageWeight)
	}
	if newShipment.EventID != nil {
		eventID, idErr := kernel.UUIDFromString(*newShipment.EventID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid event ID: " + *newShipment.EventID,
			})
		}
		cmd = cmd.WithEvent(eventID)
	}
	if len(newShipment.InventoryItemIDs) > 0 {
		itemIDs, idErr := parseUUIDs(newShipment.InventoryItemIDs)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid inventory item ID: " + idErr.Error(),
			})
		}
		cmd = cmd.WithInventoryItems(itemIDs)
	}

	if handleErr := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create shipment",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: shipmentID.String()})
}

// UpdateShipment handles PUT /api/v1/shipments/:id - updates a shipment's
// linkage fields.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment ID",
		})
	}

	var update ShipmentUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var eventID *kernel.UUID
	if update.EventID != nil {
		parsed, idErr := kernel.UUIDFromString(*update.EventID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid event ID: " + *update.EventID,
			})
		}
		eventID = &parsed
	}

	var itemIDs []kernel.UUID
	if update.InventoryItemIDs != nil {
		itemIDs, err = parseUUIDs(update.InventoryItemIDs)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid inventory item ID: " + err.Error(),
			})
		}
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, update.PackageWeight, eventID, itemIDs)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	if handleErr := s.handlers.UpdateShipment.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrShipmentNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Shipment not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update shipment",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentStatus handles POST /api/v1/shipments/:id/status - applies a
// status transition. Unreachable targets are rejected with 409 and a missing
// note on a note-requiring edge with 400; neither writes anything.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment ID",
		})
	}

	var update StatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	targetStatus, err := shipment.StatusFromString(update.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + update.Status,
		})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, targetStatus, update.Note)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	handleErr := s.handlers.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd)
	switch {
	case handleErr == nil:
		return ctx.NoContent(http.StatusNoContent)
	case errors.Is(handleErr, commands.ErrShipmentNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Shipment not found",
		})
	case errors.Is(handleErr, shipment.ErrIllegalTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Status is not reachable from the current status",
		})
	case errors.Is(handleErr, shipment.ErrNoteIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "A note is required for this transition",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update shipment status",
		})
	}
}

// GetShipmentByTracking handles GET /api/v1/shipments/tracking/:trackingNumber.
func (s *Server) GetShipmentByTracking(ctx echo.Context) error {
	query, err := queries.NewGetShipmentByTrackingQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking number",
		})
	}

	row, err := s.handlers.GetShipmentByTracking.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrShipmentNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Shipment not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipment",
		})
	}

	return ctx.JSON(http.StatusOK, shipmentFromReadModel(row))
}

// ListEvents handles GET /api/v1/events - retrieves all events ordered by
// start date.
func (s *Server) ListEvents(ctx echo.Context) error {
	query := queries.NewGetEventsQuery()

	events, err := s.handlers.GetEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve events",
		})
	}

	response := make([]Event, len(events))
	for i, row := range events {
		response[i] = Event{
			ID:        row.ID.String(),
			Title:     row.Title,
			Client:    row.Client,
			Venue:     row.Venue,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Contact: Contact{
				Name:  row.ContactName,
				Email: row.ContactEmail,
				Phone: row.ContactPhone,
			},
			Description: row.Description,
			Status:      row.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateEvent handles POST /api/v1/events - registers a new event.
func (s *Server) CreateEvent(ctx echo.Context) error {
	var newEvent NewEvent
	if err := ctx.Bind(&newEvent); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	eventID := kernel.NewUUID()
	cmd, err := commands.NewCreateEventCommand(
		eventID,
		newEvent.Title, newEvent.Client, newEvent.Venue,
		newEvent.StartDate, newEvent.EndDate,
		event.Contact{
			Name:  newEvent.Contact.Name,
			Email: newEvent.Contact.Email,
			Phone: newEvent.Contact.Phone,
		},
		newEvent.Description,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid event data: " + err.Error(),
		})
	}

	if handleErr := s.handlers.CreateEvent.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create event",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: eventID.String()})
}

// UpdateEvent handles PUT /api/v1/events/:id - replaces an event's details
// and status.
func (s *Server) UpdateEvent(ctx echo.Context) error {
	eventID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	var update EventUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := event.StatusFromString(update.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + update.Status,
		})
	}

	cmd, err := commands.NewUpdateEventCommand(
		eventID,
		update.Title, update.Client, update.Venue,
		update.StartDate, update.EndDate,
		event.Contact{
			Name:  update.Contact.Name,
			Email: update.Contact.Email,
			Phone: update.Contact.Phone,
		},
		update.Description,
		status,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid event data: " + err.Error(),
		})
	}

	if handleErr := s.handlers.UpdateEvent.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrEventNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Event not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update event",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListInventoryItems handles GET /api/v1/inventory - retrieves all inventory
// items ordered by name.
func (s *Server) ListInventoryItems(ctx echo.Context) error {
	query := queries.NewGetInventoryItemsQuery()

	items, err := s.handlers.GetInventoryItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve inventory items",
		})
	}

	response := make([]InventoryItem, len(items))
	for i, row := range items {
		response[i] = InventoryItem{
			ID:                row.ID.String(),
			SKU:               row.SKU,
			Name:              row.Name,
			Description:       row.Description,
			Category:          row.Category,
			StockLevel:        row.StockLevel,
			UnitPrice:         row.UnitPrice,
			IsPIItem:          row.IsPIItem,
			LowStockThreshold: row.LowStockThreshold,
			IsLowStock:        row.IsLowStock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateInventoryItem handles POST /api/v1/inventory - registers a new
// inventory item.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	var newItem NewInventoryItem
	if err := ctx.Bind(&newItem); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryItemCommand(itemID, newItem.SKU, newItem.Name, newItem.StockLevel)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid inventory item data: " + err.Error(),
		})
	}

	cmd = cmd.WithDescription(newItem.Description).
		WithCategory(newItem.Category).
		WithPIFlag(newItem.IsPIItem)
	if newItem.UnitPrice != nil {
		cmd = cmd.WithUnitPrice(*newItem.UnitPrice)
	}
	if newItem.LowStockThreshold != nil {
		cmd = cmd.WithLowStockThreshold(*newItem.LowStockThreshold)
	}

	if handleErr := s.handlers.CreateInventoryItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create inventory item",
		})
	}

	return ctx.JSON(http.StatusCreated, Created{ID: itemID.String()})
}

// UpdateInventoryItem handles PUT /api/v1/inventory/:id - updates an
// inventory item. The SKU stays as registered.
func (s *Server) UpdateInventoryItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid inventory item ID",
		})
	}

	var update InventoryItemUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateInventoryItemCommand(
		itemID,
		update.Name,
		update.Description, update.Category,
		update.StockLevel,
		update.UnitPrice,
		update.IsPIItem,
		update.LowStockThreshold,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid inventory item data: " + err.Error(),
		})
	}

	if handleErr := s.handlers.UpdateInventoryItem.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrInventoryItemNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Inventory item not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update inventory item",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListNotifications handles GET /api/v1/notifications - retrieves the inbox,
// newest first, with the unread count.
func (s *Server) ListNotifications(ctx echo.Context) error {
	query := queries.NewGetNotificationsQuery()

	inbox, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve notifications",
		})
	}

	response := NotificationList{
		Notifications: make([]Notification, len(inbox.Notifications)),
		UnreadCount:   inbox.UnreadCount,
	}
	for i, row := range inbox.Notifications {
		response.Notifications[i] = Notification{
			ID:        row.ID.String(),
			Title:     row.Title,
			Message:   row.Message,
			Kind:      row.Kind,
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification ID",
		})
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification ID",
		})
	}

	if handleErr := s.handlers.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNotificationNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Notification not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to mark notification read",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	cmd := commands.NewMarkAllNotificationsReadCommand()

	if handleErr := s.handlers.MarkAllNotificationsRead.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to mark notifications read",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/v1/notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification ID",
		})
	}

	cmd, err := commands.NewDeleteNotificationCommand(notificationID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid notification ID",
		})
	}

	if handleErr := s.handlers.DeleteNotification.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNotificationNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Notification not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete notification",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListActivities handles GET /api/v1/activities - retrieves the newest feed
// entries. An optional limit query parameter caps the page size.
func (s *Server) ListActivities(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := parsePositiveInt(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit: " + raw,
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetActivitiesQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit",
		})
	}

	activities, err := s.handlers.GetActivities.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve activities",
		})
	}

	response := make([]Activity, len(activities))
	for i, row := range activities {
		response[i] = Activity{
			ID:           row.ID.String(),
			Description:  row.Description,
			ActivityType: row.ActivityType,
			CreatedAt:    row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func shipmentFromReadModel(row queries.GetShipmentsQueryResponse) Shipment {
	var eventID *string
	if row.EventID != nil {
		s := row.EventID.String()
		eventID = &s
	}

	itemIDs := make([]string, len(row.InventoryItemIDs))
	for i, id := range row.InventoryItemIDs {
		itemIDs[i] = id.String()
	}

	history := make([]HistoryEntry, len(row.History))
	for i, entry := range row.History {
		history[i] = HistoryEntry{
			Timestamp: entry.Timestamp,
			Status:    entry.Status,
			Note:      entry.Note,
		}
	}

	return Shipment{
		ID:               row.ID.String(),
		TrackingNumber:   row.TrackingNumber,
		ServiceType:      row.ServiceType,
		PickupAddress:    row.PickupAddress,
		DeliveryAddress:  row.DeliveryAddress,
		PackageWeight:    row.PackageWeight,
		EventID:          eventID,
		InventoryItemIDs: itemIDs,
		Status:           row.Status,
		History:          history,
		CreatedAt:        row.CreatedAt,
	}
}

func parsePositiveInt(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New("limit must not be negative")
	}
	return v, nil
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, len(raw))
	for i, r := range raw {
		id, err := kernel.UUIDFromString(r)
		if err != nil {
			return nil, errors.New(r)
		}
		ids[i] = id
	}
	return ids, nil
}
