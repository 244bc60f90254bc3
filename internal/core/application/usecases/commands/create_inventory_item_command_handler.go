package commands

import (
	"context"
	"fmt"
	"log/slog"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/domain/model/inventory"
	"opsboard/internal/core/domain/services"
)

// CreateInventoryItemCommandHandler handles the business logic for inventory
// item creation. The low-stock check runs once, after a successful create: an
// item created already at or below its threshold emits the warning immediately.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
	policy     services.NotificationPolicy
	emitter    emitter
}

// NewCreateInventoryItemCommandHandler creates a handler for inventory creation operations.
func NewCreateInventoryItemCommandHandler(
	uowFactory InventoryUoWFactory,
	emitFactory EmitUoWFactory,
	logger *slog.Logger,
) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewNotificationPolicy(),
		emitter:    newEmitter(emitFactory, logger),
	}
}

// Handle processes the inventory creation command.
func (h CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := inventory.NewItem(cmd.ItemID(), cmd.SKU(), cmd.Name(), cmd.StockLevel())
	if err != nil {
		return err
	}

	item.SetDescription(cmd.Description())
	item.SetCategory(cmd.Category())
	item.MarkPIItem(cmd.IsPIItem())

	if cmd.UnitPrice() != nil {
		if err = item.SetUnitPrice(*cmd.UnitPrice()); err != nil {
			return err
		}
	}

	if cmd.LowStockThreshold() != nil {
		if err = item.SetLowStockThreshold(*cmd.LowStockThreshold()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventoryRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if draft, ok := h.policy.LowStock(item); ok {
		h.emitter.emit(ctx, draft,
			fmt.Sprintf("Inventory item %q added", item.Name()),
			activity.TypeInventory)
	} else {
		h.emitter.recordActivity(ctx,
			fmt.Sprintf("Inventory item %q added", item.Name()),
			activity.TypeInventory)
	}

	return nil
}
