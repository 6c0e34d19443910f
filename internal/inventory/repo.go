package inventory

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

// Repository manages persistence for stock rows and the transaction ledger.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error)
	FindByTankID(ctx context.Context, tankID uuid.UUID) (*models.Inventory, error)
	List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Inventory, error)
	Save(ctx context.Context, inv *models.Inventory) error
	TankExists(ctx context.Context, tankID uuid.UUID) (bool, error)
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.Params) ([]models.Transaction, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an inventory repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	var inv models.Inventory
	err := r.db.WithContext(ctx).
		Preload("Tank").
		Preload("Tank.TankType").
		First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) FindByTankID(ctx context.Context, tankID uuid.UUID) (*models.Inventory, error) {
	var inv models.Inventory
	err := r.db.WithContext(ctx).
		First(&inv, "tank_id = ?", tankID).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Inventory, error) {
	q := r.db.WithContext(ctx).
		Preload("Tank").
		Preload("Tank.TankType")
	if filter.LowStock {
		q = q.Where("quantity_available <= minimum_stock")
	}

	var out []models.Inventory
	err := q.
		Order("last_updated DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Save(ctx context.Context, inv *models.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *repository) TankExists(ctx context.Context, tankID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GasTank{}).
		Where("id = ?", tankID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *repository) ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.Params) ([]models.Transaction, error) {
	q := r.db.WithContext(ctx)
	if filter.TankID != nil {
		q = q.Where("tank_id = ?", *filter.TankID)
	}

	var out []models.Transaction
	err := q.
		Preload("Tank").
		Preload("Tank.TankType").
		Preload("User").
		Order("timestamp DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
