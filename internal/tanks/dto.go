package tanks

import (
	"time"

	"github.com/google/uuid"

	"github.com/oscarfuentes/gasinv-backend/internal/catalog"
	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
)

// TankDTO is the transport shape for a physical tank.
type TankDTO struct {
	ID              uuid.UUID            `json:"id"`
	TypeID          uuid.UUID            `json:"type_id"`
	SerialNumber    string               `json:"serial_number"`
	CurrentStatus   enums.TankStatus     `json:"current_status"`
	Location        *string              `json:"location,omitempty"`
	LastMaintenance *time.Time           `json:"last_maintenance,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	TankType        *catalog.TankTypeDTO `json:"tank_type,omitempty"`
}

// CreateTankRequest captures the payload accepted when registering a tank.
type CreateTankRequest struct {
	TypeID       uuid.UUID `json:"type_id" validate:"required"`
	SerialNumber string    `json:"serial_number" validate:"required"`
	Status       string    `json:"current_status" validate:"omitempty,oneof=available in_use maintenance retired"`
	Location     *string   `json:"location"`
}

// UpdateTankRequest captures a partial tank update. Nil fields are left unchanged.
type UpdateTankRequest struct {
	TypeID          *uuid.UUID `json:"type_id"`
	SerialNumber    *string    `json:"serial_number" validate:"omitempty,min=1"`
	Status          *string    `json:"current_status" validate:"omitempty,oneof=available in_use maintenance retired"`
	Location        *string    `json:"location"`
	LastMaintenance *time.Time `json:"last_maintenance"`
}

// ListFilter narrows the tank listing.
type ListFilter struct {
	Status *enums.TankStatus
}

func FromModel(t *models.GasTank) *TankDTO {
	if t == nil {
		return nil
	}

	return &TankDTO{
		ID:              t.ID,
		TypeID:          t.TypeID,
		SerialNumber:    t.SerialNumber,
		CurrentStatus:   t.CurrentStatus,
		Location:        t.Location,
		LastMaintenance: t.LastMaintenance,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		TankType:        catalog.FromModel(t.TankType),
	}
}
