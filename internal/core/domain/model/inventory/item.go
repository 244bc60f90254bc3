// Package inventory implements the inventory-item aggregate. The only piece
// of workflow attached to inventory is the low-stock check: an item whose
// stock level sits at or below its optional threshold triggers a warning
// notification, evaluated once per create or update call rather than
// continuously.
package inventory

import (
	"errors"
	"fmt"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrSKUIsRequired is returned when an item is created without a SKU.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")

	// ErrNameIsRequired is returned when an item is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Item is the aggregate root for one stocked article.
type Item struct {
	id                kernel.UUID
	sku               string
	name              string
	description       string
	category          string
	stockLevel        int
	unitPrice         *float64
	isPIItem          bool
	lowStockThreshold *int

	isConstructed bool
}

// NewItem creates a new inventory item. SKU and name are required; stock level
// must not be negative.
func NewItem(id kernel.UUID, sku, name string, stockLevel int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setSKU(sku),
		item.setName(name),
		item.setStockLevel(stockLevel),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, re-validating invariants.
func RestoreItem(
	id kernel.UUID,
	sku, name, description, category string,
	stockLevel int,
	unitPrice *float64,
	isPIItem bool,
	lowStockThreshold *int,
) (*Item, error) {
	item := &Item{
		description:   description,
		category:      category,
		isPIItem:      isPIItem,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setSKU(sku),
		item.setName(name),
		item.setStockLevel(stockLevel),
	); err != nil {
		return nil, err
	}

	if unitPrice != nil {
		if err := item.SetUnitPrice(*unitPrice); err != nil {
			return nil, err
		}
	}
	if lowStockThreshold != nil {
		if err := item.SetLowStockThreshold(*lowStockThreshold); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the stock-keeping unit code.
func (i *Item) SKU() string {
	return i.sku
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the free-text description.
func (i *Item) Description() string {
	return i.description
}

// Category returns the item category.
func (i *Item) Category() string {
	return i.category
}

// StockLevel returns the current stock level.
func (i *Item) StockLevel() int {
	return i.stockLevel
}

// UnitPrice returns the unit price, or nil when not recorded.
func (i *Item) UnitPrice() *float64 {
	return i.unitPrice
}

// IsPIItem reports whether the item belongs to the permanent-installation pool.
func (i *Item) IsPIItem() bool {
	return i.isPIItem
}

// LowStockThreshold returns the low-stock threshold, or nil when none is set.
func (i *Item) LowStockThreshold() *int {
	return i.lowStockThreshold
}

// IsLowStock reports whether the item currently sits at or below its low-stock
// threshold. Always false when no threshold is set.
func (i *Item) IsLowStock() bool {
	return i.lowStockThreshold != nil && i.stockLevel <= *i.lowStockThreshold
}

// Rename changes the item name. Empty names are rejected.
func (i *Item) Rename(name string) error {
	return i.setName(name)
}

// SetDescription records the free-text description.
func (i *Item) SetDescription(description string) {
	i.description = description
}

// SetCategory records the item category.
func (i *Item) SetCategory(category string) {
	i.category = category
}

// MarkPIItem flags or unflags the item as permanent installation.
func (i *Item) MarkPIItem(isPI bool) {
	i.isPIItem = isPI
}

// AdjustStockLevel sets the current stock level. Levels below zero are rejected.
func (i *Item) AdjustStockLevel(level int) error {
	return i.setStockLevel(level)
}

// SetUnitPrice records the unit price.
func (i *Item) SetUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", price))
	}
	i.unitPrice = &price
	return nil
}

// SetLowStockThreshold records the level at or below which the item counts as
// low on stock.
func (i *Item) SetLowStockThreshold(threshold int) error {
	if threshold < 0 {
		return errs.NewValueIsInvalidErrorWithCause("lowStockThreshold", fmt.Errorf("%d is negative", threshold))
	}
	i.lowStockThreshold = &threshold
	return nil
}

// ClearLowStockThreshold removes the threshold; the item will no longer count
// as low on stock.
func (i *Item) ClearLowStockThreshold() {
	i.lowStockThreshold = nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	i.sku = sku
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setStockLevel(level int) error {
	if level < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockLevel", fmt.Errorf("%d is negative", level))
	}
	i.stockLevel = level
	return nil
}
