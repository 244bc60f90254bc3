package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var ErrUpdateInventoryItemCommandIsNotConstructed = errors.New(
	"UpdateInventoryItemCommand must be created via NewUpdateInventoryItemCommand constructor",
)

// UpdateInventoryItemCommand represents a request to replace an inventory
// item's editable fields. SKU is fixed at creation. A nil threshold clears
// any stored one.
type UpdateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID            kernel.UUID
	name              string
	description       string
	category          string
	stockLevel        int
	unitPrice         *float64
	isPIItem          bool
	lowStockThreshold *int

	guard guard.ConstructorGuard
}

// NewUpdateInventoryItemCommand creates a command to update an inventory item.
// Validates that the ID is valid, the name is non-empty, and the stock level
// is not negative.
func NewUpdateInventoryItemCommand(
	itemID kernel.UUID,
	name string,
	description, category string,
	stockLevel int,
	unitPrice *float64,
	isPIItem bool,
	lowStockThreshold *int,
) (UpdateInventoryItemCommand, error) {
	cmd := UpdateInventoryItemCommand{
		description:       description,
		category:          category,
		unitPrice:         unitPrice,
		isPIItem:          isPIItem,
		lowStockThreshold: lowStockThreshold,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setStockLevel(stockLevel),
	); err != nil {
		return UpdateInventoryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateInventoryItemCommandIsNotConstructed if validation fails.
func (c UpdateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the item.
func (c UpdateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item name.
func (c UpdateInventoryItemCommand) Name() string {
	return c.name
}

// Description returns the free-text description.
func (c UpdateInventoryItemCommand) Description() string {
	return c.description
}

// Category returns the item category.
func (c UpdateInventoryItemCommand) Category() string {
	return c.category
}

// StockLevel returns the new stock level.
func (c UpdateInventoryItemCommand) StockLevel() int {
	return c.stockLevel
}

// UnitPrice returns the new unit price, nil when not set.
func (c UpdateInventoryItemCommand) UnitPrice() *float64 {
	return c.unitPrice
}

// IsPIItem reports whether the item belongs to the PI catalogue.
func (c UpdateInventoryItemCommand) IsPIItem() bool {
	return c.isPIItem
}

// LowStockThreshold returns the new threshold, nil to clear it.
func (c UpdateInventoryItemCommand) LowStockThreshold() *int {
	return c.lowStockThreshold
}

func (c *UpdateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateInventoryItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateInventoryItemCommand) setStockLevel(stockLevel int) error {
	if stockLevel < 0 {
		return ErrStockLevelIsInvalid
	}

	c.stockLevel = stockLevel
	return nil
}
