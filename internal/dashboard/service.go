package dashboard

import (
	"context"
	"fmt"

	"github.com/oscarfuentes/gasinv-backend/internal/inventory"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
	pkgerrors "github.com/oscarfuentes/gasinv-backend/pkg/errors"
)

const recentTransactionLimit = 10

// Service defines the dashboard reporting operations.
type Service interface {
	Stats(ctx context.Context) (*StatsDTO, error)
	LowStock(ctx context.Context) ([]inventory.InventoryDTO, error)
	TankStatusSummary(ctx context.Context) ([]StatusSummaryEntry, error)
}

type service struct {
	repo Repository
}

// NewService constructs the dashboard service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("dashboard repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Stats(ctx context.Context) (*StatsDTO, error) {
	total, err := s.repo.CountTanks(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count tanks")
	}
	available, err := s.repo.CountTanksByStatus(ctx, enums.TankStatusAvailable)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count available tanks")
	}
	lowStock, err := s.repo.CountLowStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count low stock")
	}
	recent, err := s.repo.RecentTransactions(ctx, recentTransactionLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recent transactions")
	}

	txns := make([]inventory.TransactionDTO, 0, len(recent))
	for i := range recent {
		txns = append(txns, *inventory.TransactionFromModel(&recent[i]))
	}

	return &StatsDTO{
		TotalTanks:         total,
		AvailableTanks:     available,
		LowStockCount:      lowStock,
		RecentTransactions: txns,
	}, nil
}

func (s *service) LowStock(ctx context.Context) ([]inventory.InventoryDTO, error) {
	rows, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list low stock")
	}

	out := make([]inventory.InventoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *inventory.FromModel(&rows[i]))
	}
	return out, nil
}

// TankStatusSummary reports a count for every known status, including zeroes.
func (s *service) TankStatusSummary(ctx context.Context) ([]StatusSummaryEntry, error) {
	counts, err := s.repo.StatusSummary(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "status summary")
	}

	statuses := []enums.TankStatus{
		enums.TankStatusAvailable,
		enums.TankStatusInUse,
		enums.TankStatusMaintenance,
		enums.TankStatusRetired,
	}
	out := make([]StatusSummaryEntry, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, StatusSummaryEntry{Status: status, Count: counts[status]})
	}
	return out, nil
}
