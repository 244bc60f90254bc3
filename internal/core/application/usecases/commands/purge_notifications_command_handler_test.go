package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
	"opsboard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRetentionNotificationRepository struct{ mock.Mock }

func (m *MockRetentionNotificationRepository) Add(_ context.Context, _ *notification.Notification) error {
	return errors.New("not implemented in mock")
}

func (m *MockRetentionNotificationRepository) Update(_ context.Context, _ *notification.Notification) error {
	return errors.New("not implemented in mock")
}

func (m *MockRetentionNotificationRepository) Get(_ context.Context, _ kernel.UUID) (*notification.Notification, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockRetentionNotificationRepository) MarkAllRead(_ context.Context) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

func (m *MockRetentionNotificationRepository) Delete(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

func (m *MockRetentionNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockRetentionUoW struct{ mock.Mock }

func (m *MockRetentionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRetentionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRetentionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRetentionUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockRetentionUoWFactory struct{ mock.Mock }

func (m *MockRetentionUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

func TestNewPurgeNotificationsCommand(t *testing.T) {
	t.Run("valid retention", func(t *testing.T) {
		cmd, err := commands.NewPurgeNotificationsCommand(30 * 24 * time.Hour)

		require.NoError(t, err)
		assert.Equal(t, 30*24*time.Hour, cmd.Retention())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("zero retention", func(t *testing.T) {
		_, err := commands.NewPurgeNotificationsCommand(0)

		assert.ErrorIs(t, err, commands.ErrRetentionIsInvalid)
	})

	t.Run("negative retention", func(t *testing.T) {
		_, err := commands.NewPurgeNotificationsCommand(-time.Hour)

		assert.ErrorIs(t, err, commands.ErrRetentionIsInvalid)
	})
}

func TestPurgeNotificationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	retention := 7 * 24 * time.Hour
	cmd, err := commands.NewPurgeNotificationsCommand(retention)
	require.NoError(t, err)

	before := time.Now().UTC().Add(-retention)

	repo := new(MockRetentionNotificationRepository)
	uow := new(MockRetentionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("DeleteReadOlderThan", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			after := time.Now().UTC().Add(-retention)
			return !cutoff.Before(before) && !cutoff.After(after)
		})).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRetentionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeNotificationsCommandHandler(factory)

	removed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestPurgeNotificationsCommandHandler_Handle_DeleteErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPurgeNotificationsCommand(24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockRetentionNotificationRepository)
	repo.On("DeleteReadOlderThan", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("relation does not exist")).Once()

	uow := new(MockRetentionUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRetentionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeNotificationsCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestPurgeNotificationsCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockRetentionUoWFactory)
	handler := commands.NewPurgeNotificationsCommandHandler(factory)

	_, err := handler.Handle(t.Context(), commands.PurgeNotificationsCommand{})

	assert.ErrorIs(t, err, commands.ErrPurgeNotificationsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
