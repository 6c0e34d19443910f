package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
)

// TankTypeDTO is the transport shape for a catalog entry.
type TankTypeDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Capacity    decimal.Decimal `json:"capacity"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateTankTypeRequest captures the payload accepted when registering a tank type.
type CreateTankTypeRequest struct {
	Name        string          `json:"name" validate:"required"`
	Capacity    decimal.Decimal `json:"capacity" validate:"required"`
	Description *string         `json:"description"`
}

func FromModel(t *models.GasTankType) *TankTypeDTO {
	if t == nil {
		return nil
	}

	return &TankTypeDTO{
		ID:          t.ID,
		Name:        t.Name,
		Capacity:    t.Capacity,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
