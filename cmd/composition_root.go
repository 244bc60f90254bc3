package cmd

import (
	"log/slog"

	"opsboard/internal/adapters/out/postgres"
	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.ChangePublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, publisher),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.emitUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory(), c.emitUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateEventCommandHandler() commands.CreateEventCommandHandler {
	return commands.NewCreateEventCommandHandler(c.eventUoWFactory(), c.emitUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateEventCommandHandler() commands.UpdateEventCommandHandler {
	return commands.NewUpdateEventCommandHandler(c.eventUoWFactory(), c.emitUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	return commands.NewCreateInventoryItemCommandHandler(c.inventoryUoWFactory(), c.emitUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateInventoryItemCommandHandler() commands.UpdateInventoryItemCommandHandler {
	return commands.NewUpdateInventoryItemCommandHandler(c.inventoryUoWFactory(), c.emitUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	return commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() commands.MarkAllNotificationsReadCommandHandler {
	return commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	return commands.NewDeleteNotificationCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreatePurgeNotificationsCommandHandler() commands.PurgeNotificationsCommandHandler {
	return commands.NewPurgeNotificationsCommandHandler(c.notificationUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByTrackingQueryHandler() queries.GetShipmentByTrackingQueryHandler {
	return queries.NewGetShipmentByTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEventsQueryHandler() queries.GetEventsQueryHandler {
	return queries.NewGetEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryItemsQueryHandler() queries.GetInventoryItemsQueryHandler {
	return queries.NewGetInventoryItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActivitiesQueryHandler() queries.GetActivitiesQueryHandler {
	return queries.NewGetActivitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) eventUoWFactory() commands.EventUoWFactory {
	return FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) emitUoWFactory() commands.EmitUoWFactory {
	return FuncEmitUoWFactory(func() commands.EmitUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncEmitUoWFactory func() commands.EmitUoW

func (f FuncEmitUoWFactory) Create() commands.EmitUoW {
	return f()
}
