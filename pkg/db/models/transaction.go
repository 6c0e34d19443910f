package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
)

// Transaction records an immutable stock movement against a tank.
// Rows are append-only; nothing in the system updates or deletes them.
type Transaction struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TankID          uuid.UUID             `gorm:"column:tank_id;type:uuid;not null"`
	TransactionType enums.TransactionType `gorm:"column:transaction_type;type:text;not null"`
	Quantity        int                   `gorm:"column:quantity;not null"`
	UserID          uuid.UUID             `gorm:"column:user_id;type:uuid;not null"`
	Timestamp       time.Time             `gorm:"column:timestamp;autoCreateTime"`
	Notes           *string               `gorm:"column:notes"`

	Tank *GasTank `gorm:"foreignKey:TankID"`
	User *User    `gorm:"foreignKey:UserID"`
}
