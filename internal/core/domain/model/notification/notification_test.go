package notification_test

import (
	"testing"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	now := time.Now()

	t.Run("should create unread notification", func(t *testing.T) {
		n, err := notification.NewNotification(
			kernel.NewUUID(), "Low Stock Alert", "Uplight Fixture is running low", notification.KindWarning, now,
		)

		require.NoError(t, err)
		assert.False(t, n.IsRead())
		assert.Equal(t, notification.KindWarning, n.Kind())
		assert.Equal(t, now, n.CreatedAt())
		require.NoError(t, n.Validate())
	})

	t.Run("should reject missing title or message", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "", "", notification.KindInfo, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, notification.ErrTitleIsRequired)
		assert.ErrorIs(t, err, notification.ErrMessageIsRequired)
	})

	t.Run("should reject invalid kind", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), "t", "m", notification.KindUnknown, now)

		require.Error(t, err)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	n, err := notification.NewNotification(
		kernel.NewUUID(), "Event created", "New event", notification.KindInfo, time.Now(),
	)
	require.NoError(t, err)

	n.MarkRead()
	assert.True(t, n.IsRead())

	// Idempotent.
	n.MarkRead()
	assert.True(t, n.IsRead())
}

func TestRestoreNotification(t *testing.T) {
	n, err := notification.RestoreNotification(
		kernel.NewUUID(), "t", "m", notification.KindSuccess, true, time.Now(),
	)

	require.NoError(t, err)
	assert.True(t, n.IsRead())
	assert.Equal(t, notification.KindSuccess, n.Kind())
}

func TestKindFromString(t *testing.T) {
	for _, name := range []string{"info", "warning", "error", "success"} {
		kind, err := notification.KindFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, kind.String())
	}

	_, err := notification.KindFromString("fatal")
	require.Error(t, err)
}
