package models

import (
	"time"

	"github.com/google/uuid"
)

// Inventory holds the on-hand quantity and reorder threshold for one tank.
// quantity_available is the single source of truth for stock on hand.
type Inventory struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TankID            uuid.UUID  `gorm:"column:tank_id;type:uuid;not null;uniqueIndex"`
	QuantityAvailable int        `gorm:"column:quantity_available;not null;default:0"`
	MinimumStock      int        `gorm:"column:minimum_stock;not null;default:5"`
	LastUpdated       time.Time  `gorm:"column:last_updated;autoUpdateTime"`
	UpdatedBy         *uuid.UUID `gorm:"column:updated_by;type:uuid"`

	Tank *GasTank `gorm:"foreignKey:TankID"`
}

// TableName keeps the singular table name used by the schema.
func (Inventory) TableName() string {
	return "inventory"
}
