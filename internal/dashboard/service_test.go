package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
)

type stubDashboardRepo struct {
	totalTanks   int64
	byStatus     map[enums.TankStatus]int64
	lowStock     []models.Inventory
	transactions []models.Transaction
	lastLimit    int
}

func (r *stubDashboardRepo) CountTanks(_ context.Context) (int64, error) {
	return r.totalTanks, nil
}

func (r *stubDashboardRepo) CountTanksByStatus(_ context.Context, status enums.TankStatus) (int64, error) {
	return r.byStatus[status], nil
}

func (r *stubDashboardRepo) CountLowStock(_ context.Context) (int64, error) {
	return int64(len(r.lowStock)), nil
}

func (r *stubDashboardRepo) ListLowStock(_ context.Context) ([]models.Inventory, error) {
	return r.lowStock, nil
}

func (r *stubDashboardRepo) RecentTransactions(_ context.Context, limit int) ([]models.Transaction, error) {
	r.lastLimit = limit
	if len(r.transactions) > limit {
		return r.transactions[:limit], nil
	}
	return r.transactions, nil
}

func (r *stubDashboardRepo) StatusSummary(_ context.Context) (map[enums.TankStatus]int64, error) {
	return r.byStatus, nil
}

func TestServiceStatsAggregates(t *testing.T) {
	txns := make([]models.Transaction, 12)
	for i := range txns {
		txns[i] = models.Transaction{ID: uuid.New(), TankID: uuid.New(), TransactionType: enums.TransactionTypeIn, Quantity: 1, UserID: uuid.New()}
	}
	repo := &stubDashboardRepo{
		totalTanks: 7,
		byStatus: map[enums.TankStatus]int64{
			enums.TankStatusAvailable: 4,
			enums.TankStatusInUse:     3,
		},
		lowStock:     []models.Inventory{{ID: uuid.New()}, {ID: uuid.New()}},
		transactions: txns,
	}

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.TotalTanks != 7 {
		t.Fatalf("expected 7 tanks, got %d", stats.TotalTanks)
	}
	if stats.AvailableTanks != 4 {
		t.Fatalf("expected 4 available, got %d", stats.AvailableTanks)
	}
	if stats.LowStockCount != 2 {
		t.Fatalf("expected 2 low stock, got %d", stats.LowStockCount)
	}
	if repo.lastLimit != 10 {
		t.Fatalf("expected recent transactions capped at 10, asked for %d", repo.lastLimit)
	}
	if len(stats.RecentTransactions) != 10 {
		t.Fatalf("expected 10 recent transactions, got %d", len(stats.RecentTransactions))
	}
}

func TestServiceTankStatusSummaryIncludesZeroStatuses(t *testing.T) {
	repo := &stubDashboardRepo{
		byStatus: map[enums.TankStatus]int64{
			enums.TankStatusAvailable: 2,
		},
	}

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	summary, err := svc.TankStatusSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if len(summary) != 4 {
		t.Fatalf("expected entries for all 4 statuses, got %d", len(summary))
	}
	counts := map[enums.TankStatus]int64{}
	for _, entry := range summary {
		counts[entry.Status] = entry.Count
	}
	if counts[enums.TankStatusAvailable] != 2 {
		t.Fatalf("expected 2 available, got %d", counts[enums.TankStatusAvailable])
	}
	if counts[enums.TankStatusRetired] != 0 {
		t.Fatalf("expected 0 retired, got %d", counts[enums.TankStatusRetired])
	}
}

func TestServiceLowStock(t *testing.T) {
	repo := &stubDashboardRepo{
		lowStock: []models.Inventory{
			{ID: uuid.New(), TankID: uuid.New(), QuantityAvailable: 1, MinimumStock: 5},
		},
	}

	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	out, err := svc.LowStock(context.Background())
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(out) != 1 || out[0].QuantityAvailable != 1 {
		t.Fatalf("unexpected low stock rows: %v", out)
	}
}
