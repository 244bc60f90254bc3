package shipment_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"opsboard/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEntry(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("should encode status with note", func(t *testing.T) {
		line := shipment.EncodeEntry(at, shipment.Delivered, "left at door")

		assert.Equal(t, "2026-03-14T09:26:53Z: DELIVERED - left at door", line)
	})

	t.Run("should omit separator for empty note", func(t *testing.T) {
		line := shipment.EncodeEntry(at, shipment.PickedUp, "")

		assert.Equal(t, "2026-03-14T09:26:53Z: PICKED_UP", line)
	})

	t.Run("should omit separator for whitespace-only note", func(t *testing.T) {
		line := shipment.EncodeEntry(at, shipment.InTransit, "   ")

		assert.Equal(t, "2026-03-14T09:26:53Z: IN_TRANSIT", line)
	})

	t.Run("should normalize timestamp to UTC", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		line := shipment.EncodeEntry(time.Date(2026, 3, 14, 10, 26, 53, 0, loc), shipment.Delayed, "")

		assert.True(t, strings.HasPrefix(line, "2026-03-14T09:26:53Z"))
	})
}

func TestAppendEntry(t *testing.T) {
	t.Run("should place entry alone in empty log", func(t *testing.T) {
		log := shipment.AppendEntry("", "entry one")

		assert.Equal(t, "entry one", log)
	})

	t.Run("should prepend entry to existing log", func(t *testing.T) {
		log := shipment.AppendEntry("older line", "newer line")

		assert.Equal(t, "newer line\nolder line", log)
	})
}

func TestDecodeLog(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("should round-trip a single entry", func(t *testing.T) {
		log := shipment.AppendEntry("", shipment.EncodeEntry(at, shipment.Delivered, "left at door"))

		entries := shipment.DecodeLog(log)

		require.Len(t, entries, 1)
		assert.True(t, entries[0].Timestamp.Equal(at))
		assert.Equal(t, "DELIVERED", entries[0].Status)
		assert.Equal(t, "left at door", entries[0].Note)
	})

	t.Run("should round-trip entry without note", func(t *testing.T) {
		log := shipment.EncodeEntry(at, shipment.PickedUp, "")

		entries := shipment.DecodeLog(log)

		require.Len(t, entries, 1)
		assert.Equal(t, "PICKED_UP", entries[0].Status)
		assert.Empty(t, entries[0].Note)
	})

	t.Run("should preserve newest-first order for appended entries", func(t *testing.T) {
		statuses := []shipment.Status{
			shipment.PickedUp, shipment.InTransit, shipment.OutForDelivery, shipment.Delivered,
		}

		log := ""
		for i, status := range statuses {
			entry := shipment.EncodeEntry(at.Add(time.Duration(i)*time.Hour), status, fmt.Sprintf("step %d", i))
			log = shipment.AppendEntry(log, entry)
		}

		entries := shipment.DecodeLog(log)

		require.Len(t, entries, len(statuses))
		for i, entry := range entries {
			// Newest first: decoded order is the reverse of append order.
			expected := statuses[len(statuses)-1-i]
			assert.Equal(t, expected.HistoryCode(), entry.Status)
		}
		for i := 1; i < len(entries); i++ {
			assert.True(t, entries[i].Timestamp.Before(entries[i-1].Timestamp))
		}
	})

	t.Run("should silently drop malformed lines", func(t *testing.T) {
		log := strings.Join([]string{
			shipment.EncodeEntry(at, shipment.Delayed, "weather hold"),
			"not a valid entry",
			"",
			shipment.EncodeEntry(at.Add(-time.Hour), shipment.PickedUp, ""),
		}, "\n")

		entries := shipment.DecodeLog(log)

		require.Len(t, entries, 2)
		assert.Equal(t, "DELAYED", entries[0].Status)
		assert.Equal(t, "PICKED_UP", entries[1].Status)
	})

	t.Run("should drop lines with unparseable timestamps", func(t *testing.T) {
		entries := shipment.DecodeLog("yesterday-ish: DELIVERED - looks structured but is not")

		assert.Empty(t, entries)
	})

	t.Run("should drop lowercase status lines", func(t *testing.T) {
		entries := shipment.DecodeLog("2026-03-14T09:26:53Z: delivered - case matters")

		assert.Empty(t, entries)
	})

	t.Run("should return nil for empty log", func(t *testing.T) {
		assert.Nil(t, shipment.DecodeLog(""))
	})

	t.Run("should keep note containing dashes intact", func(t *testing.T) {
		log := shipment.EncodeEntry(at, shipment.InTransit, "hand-off at hub - dock 7")

		entries := shipment.DecodeLog(log)

		require.Len(t, entries, 1)
		assert.Equal(t, "hand-off at hub - dock 7", entries[0].Note)
	})
}
