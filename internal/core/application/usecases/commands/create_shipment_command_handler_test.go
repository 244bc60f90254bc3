package commands_test

import (
	"errors"
	"testing"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(id, shipment.ServiceSameDay, "12 Dock Rd", "88 Venue Ave")
	require.NoError(t, err)

	var created *shipment.Shipment
	repo := new(MockWorkflowShipmentRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*shipment.Shipment)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, brokenEmitFactory(), testLogger())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, created)
	require.Equal(t, shipment.Processing, created.Status())
	require.True(t, created.TrackingNumber().Matches())
	require.True(t, created.ID().IsEqual(id))
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), shipment.ServiceStandard, "12 Dock Rd", "88 Venue Ave")
	require.NoError(t, err)

	repo := new(MockWorkflowShipmentRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, brokenEmitFactory(), testLogger())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockWorkflowUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory, brokenEmitFactory(), testLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
