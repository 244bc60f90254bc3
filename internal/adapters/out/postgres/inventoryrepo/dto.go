// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory persistence.
package inventoryrepo

import (
	"time"

	"opsboard/internal/core/domain/model/inventory"
	"opsboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting inventory items.
type ItemDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SKU               string    `gorm:"column:sku;index" json:"sku"`
	Name              string    `gorm:"index" json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	StockLevel        int       `json:"stock_level"`
	UnitPrice         *float64  `json:"unit_price,omitempty"`
	IsPIItem          bool      `gorm:"column:is_pi_item" json:"is_pi_item"`
	LowStockThreshold *int      `json:"low_stock_threshold,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the database table name for inventory items.
func (ItemDTO) TableName() string {
	return "inventory"
}

// fromDomain converts an inventory item to its database representation.
func fromDomain(aggregate *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:                aggregate.ID().Bytes(),
		SKU:               aggregate.SKU(),
		Name:              aggregate.Name(),
		Description:       aggregate.Description(),
		Category:          aggregate.Category(),
		StockLevel:        aggregate.StockLevel(),
		UnitPrice:         aggregate.UnitPrice(),
		IsPIItem:          aggregate.IsPIItem(),
		LowStockThreshold: aggregate.LowStockThreshold(),
	}
}

// toDomain converts a database DTO to an inventory item.
func toDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(
		id,
		dto.SKU,
		dto.Name,
		dto.Description,
		dto.Category,
		dto.StockLevel,
		dto.UnitPrice,
		dto.IsPIItem,
		dto.LowStockThreshold,
	)
}
