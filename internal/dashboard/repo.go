package dashboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/internal/repo"
	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
)

// Repository exposes the aggregate queries behind the dashboard.
type Repository interface {
	CountTanks(ctx context.Context) (int64, error)
	CountTanksByStatus(ctx context.Context, status enums.TankStatus) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	ListLowStock(ctx context.Context) ([]models.Inventory, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
	StatusSummary(ctx context.Context) (map[enums.TankStatus]int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a dashboard repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) CountTanks(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).Model(&models.GasTank{}).Count(&count).Error
	return count, err
}

func (r *repository) CountTanksByStatus(ctx context.Context, status enums.TankStatus) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.GasTank{}).
		Where("current_status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.Inventory{}).
		Where("quantity_available <= minimum_stock").
		Count(&count).Error
	return count, err
}

func (r *repository) ListLowStock(ctx context.Context) ([]models.Inventory, error) {
	var out []models.Inventory
	err := r.DB(ctx).
		Preload("Tank").
		Preload("Tank.TankType").
		Where("quantity_available <= minimum_stock").
		Order("quantity_available ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	var out []models.Transaction
	err := r.DB(ctx).
		Preload("Tank").
		Preload("User").
		Order("timestamp DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) StatusSummary(ctx context.Context) (map[enums.TankStatus]int64, error) {
	type row struct {
		CurrentStatus enums.TankStatus
		Count         int64
	}
	var rows []row
	err := r.DB(ctx).
		Model(&models.GasTank{}).
		Select("current_status, COUNT(*) AS count").
		Group("current_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[enums.TankStatus]int64, len(rows))
	for _, r := range rows {
		out[r.CurrentStatus] = r.Count
	}
	return out, nil
}
