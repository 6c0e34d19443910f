package dashboard

import (
	"github.com/oscarfuentes/gasinv-backend/internal/inventory"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
)

// StatsDTO is the aggregate snapshot served to the dashboard.
type StatsDTO struct {
	TotalTanks         int64                      `json:"total_tanks"`
	AvailableTanks     int64                      `json:"available_tanks"`
	LowStockCount      int64                      `json:"low_stock_count"`
	RecentTransactions []inventory.TransactionDTO `json:"recent_transactions"`
}

// StatusSummaryEntry is one slice of the fleet grouped by status.
type StatusSummaryEntry struct {
	Status enums.TankStatus `json:"status"`
	Count  int64            `json:"count"`
}
