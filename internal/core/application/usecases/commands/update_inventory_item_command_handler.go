package commands

import (
	"context"
	"errors"
	"log/slog"

	"opsboard/internal/core/domain/model/activity"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/pkg/errs"
)

var ErrInventoryItemNotFound = errors.New("no inventory item found")

// UpdateInventoryItemCommandHandler handles the business logic for inventory
// item updates. The low-stock check runs once, after a successful update:
// crossing the threshold emits the warning, staying below it emits another one
// on the next update too. The check is per-write, not continuous.
type UpdateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
	policy     services.NotificationPolicy
	emitter    emitter
}

// NewUpdateInventoryItemCommandHandler creates a handler for inventory update operations.
func NewUpdateInventoryItemCommandHandler(
	uowFactory InventoryUoWFactory,
	emitFactory EmitUoWFactory,
	logger *slog.Logger,
) UpdateInventoryItemCommandHandler {
	return UpdateInventoryItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewNotificationPolicy(),
		emitter:    newEmitter(emitFactory, logger),
	}
}

// Handle processes the inventory update command.
// Returns ErrInventoryItemNotFound when the item does not exist.
func (h UpdateInventoryItemCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()

	item, err := inventoryRepo.Get(ctx, cmd.ItemID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrInventoryItemNotFound
	}
	if err != nil {
		return err
	}

	if err = item.Rename(cmd.Name()); err != nil {
		return err
	}

	item.SetDescription(cmd.Description())
	item.SetCategory(cmd.Category())
	item.MarkPIItem(cmd.IsPIItem())

	if err = item.AdjustStockLevel(cmd.StockLevel()); err != nil {
		return err
	}

	if cmd.UnitPrice() != nil {
		if err = item.SetUnitPrice(*cmd.UnitPrice()); err != nil {
			return err
		}
	}

	if cmd.LowStockThreshold() != nil {
		if err = item.SetLowStockThreshold(*cmd.LowStockThreshold()); err != nil {
			return err
		}
	} else {
		item.ClearLowStockThreshold()
	}

	if err = inventoryRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if draft, ok := h.policy.LowStock(item); ok {
		h.emitter.emit(ctx, draft, "", activity.TypeInventory)
	}

	return nil
}
