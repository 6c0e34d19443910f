package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/oscarfuentes/gasinv-backend/internal/tanks"
	"github.com/oscarfuentes/gasinv-backend/internal/users"
	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
)

// InventoryDTO is the transport shape for a stock row.
type InventoryDTO struct {
	ID                uuid.UUID      `json:"id"`
	TankID            uuid.UUID      `json:"tank_id"`
	QuantityAvailable int            `json:"quantity_available"`
	MinimumStock      int            `json:"minimum_stock"`
	LastUpdated       time.Time      `json:"last_updated"`
	UpdatedBy         *uuid.UUID     `json:"updated_by,omitempty"`
	Tank              *tanks.TankDTO `json:"tank,omitempty"`
}

// UpdateInventoryRequest captures a partial stock row update. Nil fields are left unchanged.
type UpdateInventoryRequest struct {
	QuantityAvailable *int `json:"quantity_available"`
	MinimumStock      *int `json:"minimum_stock" validate:"omitempty,gte=0"`
}

// TransactionDTO is the transport shape for a ledger entry.
type TransactionDTO struct {
	ID              uuid.UUID             `json:"id"`
	TankID          uuid.UUID             `json:"tank_id"`
	TransactionType enums.TransactionType `json:"transaction_type"`
	Quantity        int                   `json:"quantity"`
	UserID          uuid.UUID             `json:"user_id"`
	Timestamp       time.Time             `json:"timestamp"`
	Notes           *string               `json:"notes,omitempty"`
	Tank            *tanks.TankDTO        `json:"tank,omitempty"`
	User            *users.UserDTO        `json:"user,omitempty"`
}

// CreateTransactionRequest captures the payload accepted when recording a stock movement.
type CreateTransactionRequest struct {
	TankID          uuid.UUID `json:"tank_id" validate:"required"`
	TransactionType string    `json:"transaction_type" validate:"required,oneof=in out transfer"`
	Quantity        int       `json:"quantity" validate:"required,gt=0"`
	Notes           *string   `json:"notes"`
}

// ListFilter narrows the inventory listing.
type ListFilter struct {
	LowStock bool
}

// TransactionFilter narrows the ledger listing.
type TransactionFilter struct {
	TankID *uuid.UUID
}

func FromModel(inv *models.Inventory) *InventoryDTO {
	if inv == nil {
		return nil
	}

	return &InventoryDTO{
		ID:                inv.ID,
		TankID:            inv.TankID,
		QuantityAvailable: inv.QuantityAvailable,
		MinimumStock:      inv.MinimumStock,
		LastUpdated:       inv.LastUpdated,
		UpdatedBy:         inv.UpdatedBy,
		Tank:              tanks.FromModel(inv.Tank),
	}
}

func TransactionFromModel(t *models.Transaction) *TransactionDTO {
	if t == nil {
		return nil
	}

	return &TransactionDTO{
		ID:              t.ID,
		TankID:          t.TankID,
		TransactionType: t.TransactionType,
		Quantity:        t.Quantity,
		UserID:          t.UserID,
		Timestamp:       t.Timestamp,
		Notes:           t.Notes,
		Tank:            tanks.FromModel(t.Tank),
		User:            users.FromModel(t.User),
	}
}
