// Package changefeed implements the store's realtime surface on PostgreSQL
// LISTEN/NOTIFY. The publisher raises one NOTIFY per change event on the
// collection's channel; the listener fans incoming notifications out to
// subscribers.
//
// The feed is best-effort and eventually consistent. NOTIFY payloads are
// capped by PostgreSQL at 8000 bytes; oversized payloads are resent with the
// record body stripped so subscribers still learn that the record changed.
package changefeed

import (
	"encoding/json"
	"log/slog"

	"opsboard/internal/core/ports"

	"gorm.io/gorm"
)

// NOTIFY payloads above this size are rejected by PostgreSQL.
const maxNotifyPayload = 8000

// Publisher raises change events as pg_notify notifications. Implements
// ports.ChangePublisher.
type Publisher struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPublisher creates a change-feed publisher on the given connection.
func NewPublisher(db *gorm.DB, logger *slog.Logger) *Publisher {
	return &Publisher{
		db:     db,
		logger: logger,
	}
}

// Publish delivers a change event to the collection's channel. Best-effort:
// failures are logged and swallowed, never returned to the committing writer.
func (p *Publisher) Publish(event ports.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("change event marshal failed",
			slog.String("collection", event.Collection),
			slog.Any("error", err))
		return
	}

	if len(payload) > maxNotifyPayload {
		event.Payload = nil
		payload, err = json.Marshal(event)
		if err != nil {
			return
		}
	}

	err = p.db.Exec("SELECT pg_notify(?, ?)", event.Collection, string(payload)).Error
	if err != nil {
		p.logger.Error("change event publish failed",
			slog.String("collection", event.Collection),
			slog.String("record_id", event.RecordID),
			slog.Any("error", err))
	}
}
