package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

var (
	ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
		"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
	)
	ErrSKUIsRequired       = errors.New("sku is required")
	ErrNameIsRequired      = errors.New("name is required")
	ErrStockLevelIsInvalid = errors.New("stock level must not be negative")
)

// CreateInventoryItemCommand represents a request to register a new inventory
// item. Description, category, unit price, PI flag, and low-stock threshold
// are optional.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID            kernel.UUID
	sku               string
	name              string
	description       string
	category          string
	stockLevel        int
	unitPrice         *float64
	isPIItem          bool
	lowStockThreshold *int

	guard guard.ConstructorGuard
}

// NewCreateInventoryItemCommand creates a command to register a new inventory item.
// Validates that the ID is valid, SKU and name are non-empty, and the stock
// level is not negative.
func NewCreateInventoryItemCommand(
	itemID kernel.UUID,
	sku, name string,
	stockLevel int,
) (CreateInventoryItemCommand, error) {
	cmd := CreateInventoryItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setSKU(sku),
		cmd.setName(name),
		cmd.setStockLevel(stockLevel),
	); err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateInventoryItemCommandIsNotConstructed if validation fails.
func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the item.
func (c CreateInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// SKU returns the stock keeping unit code.
func (c CreateInventoryItemCommand) SKU() string {
	return c.sku
}

// Name returns the item name.
func (c CreateInventoryItemCommand) Name() string {
	return c.name
}

// Description returns the free-text description.
func (c CreateInventoryItemCommand) Description() string {
	return c.description
}

// Category returns the item category.
func (c CreateInventoryItemCommand) Category() string {
	return c.category
}

// StockLevel returns the initial stock level.
func (c CreateInventoryItemCommand) StockLevel() int {
	return c.stockLevel
}

// UnitPrice returns the optional unit price, nil when not set.
func (c CreateInventoryItemCommand) UnitPrice() *float64 {
	return c.unitPrice
}

// IsPIItem reports whether the item belongs to the PI catalogue.
func (c CreateInventoryItemCommand) IsPIItem() bool {
	return c.isPIItem
}

// LowStockThreshold returns the optional low-stock threshold, nil when not set.
func (c CreateInventoryItemCommand) LowStockThreshold() *int {
	return c.lowStockThreshold
}

// WithDescription attaches a description to the command.
func (c CreateInventoryItemCommand) WithDescription(description string) CreateInventoryItemCommand {
	c.description = description
	return c
}

// WithCategory attaches a category to the command.
func (c CreateInventoryItemCommand) WithCategory(category string) CreateInventoryItemCommand {
	c.category = category
	return c
}

// WithUnitPrice attaches a unit price to the command.
func (c CreateInventoryItemCommand) WithUnitPrice(price float64) CreateInventoryItemCommand {
	c.unitPrice = &price
	return c
}

// WithPIFlag marks the item as part of the PI catalogue.
func (c CreateInventoryItemCommand) WithPIFlag(isPI bool) CreateInventoryItemCommand {
	c.isPIItem = isPI
	return c
}

// WithLowStockThreshold attaches a low-stock threshold to the command.
func (c CreateInventoryItemCommand) WithLowStockThreshold(threshold int) CreateInventoryItemCommand {
	c.lowStockThreshold = &threshold
	return c
}

func (c *CreateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateInventoryItemCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreateInventoryItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateInventoryItemCommand) setStockLevel(stockLevel int) error {
	if stockLevel < 0 {
		return ErrStockLevelIsInvalid
	}

	c.stockLevel = stockLevel
	return nil
}
