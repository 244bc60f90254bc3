package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"opsboard/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// streamBufferSize bounds the per-client event queue. A client that cannot
// keep up loses events rather than stalling the feed's delivery goroutine;
// the browser refetches on reconnect anyway.
const streamBufferSize = 64

const heartbeatInterval = 25 * time.Second

// Stream handles GET /api/v1/stream - fans change-feed events out to the
// client as server-sent events. An optional comma-separated "collections"
// query parameter narrows the subscription; the default is every collection.
func (s *Server) Stream(ctx echo.Context) error {
	collections := []string{
		ports.ShipmentsCollection,
		ports.EventsCollection,
		ports.InventoryCollection,
		ports.NotificationsCollection,
		ports.ActivitiesCollection,
	}
	if raw := ctx.QueryParam("collections"); raw != "" {
		collections = strings.Split(raw, ",")
	}

	events := make(chan ports.ChangeEvent, streamBufferSize)
	subscriptions := make([]ports.Subscription, 0, len(collections))
	defer func() {
		for _, sub := range subscriptions {
			sub.Unsubscribe()
		}
	}()

	for _, collection := range collections {
		sub, err := s.feed.Subscribe(collection, func(event ports.ChangeEvent) {
			select {
			case events <- event:
			default:
				// Slow client, drop.
			}
		})
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to subscribe to change feed",
			})
		}
		subscriptions = append(subscriptions, sub)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case event := <-events:
			payload, err := json.Marshal(event)
			if err != nil {
				s.logger.WarnContext(ctx.Request().Context(),
					"Failed to encode change event for stream",
					"collection", event.Collection,
					"error", err,
				)
				continue
			}
			fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Collection, payload)
			res.Flush()
		case <-heartbeat.C:
			// Comment line keeps intermediaries from closing an idle stream.
			fmt.Fprint(res, ": keep-alive\n\n")
			res.Flush()
		}
	}
}
