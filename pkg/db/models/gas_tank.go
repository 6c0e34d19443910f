package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
)

// GasTank is a physical, individually serialized cylinder of a given type.
type GasTank struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TypeID          uuid.UUID        `gorm:"column:type_id;type:uuid;not null"`
	SerialNumber    string           `gorm:"column:serial_number;not null;uniqueIndex"`
	CurrentStatus   enums.TankStatus `gorm:"column:current_status;type:text;not null;default:available"`
	Location        *string          `gorm:"column:location"`
	LastMaintenance *time.Time       `gorm:"column:last_maintenance"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`

	TankType *GasTankType `gorm:"foreignKey:TypeID"`
}
