package commands_test

import (
	"context"
	"testing"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/event"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/notification"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventRepository struct{ mock.Mock }

func (m *MockEventRepository) Add(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, e *event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) Get(ctx context.Context, id kernel.UUID) (*event.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

type MockEventUoW struct{ mock.Mock }

func (m *MockEventUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventUoW) EventRepository() ports.EventRepository {
	args := m.Called()
	return args.Get(0).(ports.EventRepository)
}

type MockEventUoWFactory struct{ mock.Mock }

func (m *MockEventUoWFactory) Create() commands.EventUoW {
	args := m.Called()
	return args.Get(0).(commands.EventUoW)
}

func pendingEvent(t *testing.T) *event.Event {
	t.Helper()

	start := time.Date(2026, 10, 3, 18, 0, 0, 0, time.UTC)
	e, err := event.NewEvent(
		kernel.NewUUID(),
		"Summer Gala", "Chen & Co", "Harbor Hall",
		start, start.Add(6*time.Hour),
		event.Contact{Name: "Ada Chen", Email: "ada@client.example"},
	)
	require.NoError(t, err)
	return e
}

func updateCommandFor(t *testing.T, e *event.Event, status event.Status) commands.UpdateEventCommand {
	t.Helper()

	cmd, err := commands.NewUpdateEventCommand(
		e.ID(),
		e.Title(), e.Client(), e.Venue(),
		e.StartDate(), e.EndDate(),
		e.ContactDetails(),
		"updated description",
		status,
	)
	require.NoError(t, err)
	return cmd
}

func TestUpdateEventCommandHandler_Handle_CancellationEmitsWarning(t *testing.T) {
	ctx := t.Context()
	e := pendingEvent(t)
	cmd := updateCommandFor(t, e, event.Cancelled)

	repo := new(MockEventRepository)
	uow := new(MockEventUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).Return(e, nil).Once(),
		repo.On("Update", mock.Anything, e).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	notificationRepo := new(MockEmitNotificationRepository)
	notificationRepo.On("Add", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Kind() == notification.KindWarning && n.Title() == "Event cancelled"
	})).Return(nil).Once()

	activityRepo := new(MockEmitActivityRepository)
	activityRepo.On("Add", mock.Anything, mock.AnythingOfType("*activity.Activity")).Return(nil).Once()

	emitUoW := new(MockEmitUoW)
	emitUoW.On("Begin", mock.Anything).Return(nil).Once()
	emitUoW.On("NotificationRepository").Return(notificationRepo).Once()
	emitUoW.On("ActivityRepository").Return(activityRepo).Once()
	emitUoW.On("Commit", mock.Anything).Return(nil).Once()
	emitUoW.On("Rollback", mock.Anything).Return(nil).Once()

	emitFactory := new(MockEmitUoWFactory)
	emitFactory.On("Create").Return(emitUoW).Once()

	h := commands.NewUpdateEventCommandHandler(factory, emitFactory, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, e.IsCancelled())
	notificationRepo.AssertExpectations(t)
}

func TestUpdateEventCommandHandler_Handle_AlreadyCancelledStillEmitsWarning(t *testing.T) {
	ctx := t.Context()
	e := pendingEvent(t)
	require.NoError(t, e.ChangeStatus(event.Cancelled))
	cmd := updateCommandFor(t, e, event.Cancelled)

	repo := new(MockEventRepository)
	uow := new(MockEventUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).Return(e, nil).Once(),
		repo.On("Update", mock.Anything, e).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	notificationRepo := new(MockEmitNotificationRepository)
	notificationRepo.On("Add", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Kind() == notification.KindWarning && n.Title() == "Event cancelled"
	})).Return(nil).Once()

	activityRepo := new(MockEmitActivityRepository)
	activityRepo.On("Add", mock.Anything, mock.AnythingOfType("*activity.Activity")).Return(nil).Once()

	emitUoW := new(MockEmitUoW)
	emitUoW.On("Begin", mock.Anything).Return(nil).Once()
	emitUoW.On("NotificationRepository").Return(notificationRepo).Once()
	emitUoW.On("ActivityRepository").Return(activityRepo).Once()
	emitUoW.On("Commit", mock.Anything).Return(nil).Once()
	emitUoW.On("Rollback", mock.Anything).Return(nil).Once()

	emitFactory := new(MockEmitUoWFactory)
	emitFactory.On("Create").Return(emitUoW).Once()

	h := commands.NewUpdateEventCommandHandler(factory, emitFactory, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestUpdateEventCommandHandler_Handle_PlainUpdateEmitsInfo(t *testing.T) {
	ctx := t.Context()
	e := pendingEvent(t)
	cmd := updateCommandFor(t, e, event.Active)

	repo := new(MockEventRepository)
	uow := new(MockEventUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).Return(e, nil).Once(),
		repo.On("Update", mock.Anything, e).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	notificationRepo := new(MockEmitNotificationRepository)
	notificationRepo.On("Add", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Kind() == notification.KindInfo && n.Title() == "Event updated"
	})).Return(nil).Once()

	activityRepo := new(MockEmitActivityRepository)
	activityRepo.On("Add", mock.Anything, mock.AnythingOfType("*activity.Activity")).Return(nil).Once()

	emitUoW := new(MockEmitUoW)
	emitUoW.On("Begin", mock.Anything).Return(nil).Once()
	emitUoW.On("NotificationRepository").Return(notificationRepo).Once()
	emitUoW.On("ActivityRepository").Return(activityRepo).Once()
	emitUoW.On("Commit", mock.Anything).Return(nil).Once()
	emitUoW.On("Rollback", mock.Anything).Return(nil).Once()

	emitFactory := new(MockEmitUoWFactory)
	emitFactory.On("Create").Return(emitUoW).Once()

	h := commands.NewUpdateEventCommandHandler(factory, emitFactory, testLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, event.Active, e.Status())
	notificationRepo.AssertExpectations(t)
}

func TestUpdateEventCommandHandler_Handle_EventNotFound(t *testing.T) {
	ctx := t.Context()
	e := pendingEvent(t)
	cmd := updateCommandFor(t, e, event.Active)

	repo := new(MockEventRepository)
	uow := new(MockEventUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("EventRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, e.ID()).
			Return(nil, errs.NewObjectNotFoundError("eventID", e.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEventUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateEventCommandHandler(factory, brokenEmitFactory(), testLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEventNotFound)
}
