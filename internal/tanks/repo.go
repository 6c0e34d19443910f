package tanks

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

// Repository manages persistence for gas tanks.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, tank *models.GasTank) error
	CreateInventory(ctx context.Context, inv *models.Inventory) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.GasTank, error)
	List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.GasTank, error)
	Save(ctx context.Context, tank *models.GasTank) error
	TypeExists(ctx context.Context, typeID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a tanks repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, tank *models.GasTank) error {
	return r.db.WithContext(ctx).Create(tank).Error
}

func (r *repository) CreateInventory(ctx context.Context, inv *models.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.GasTank, error) {
	var tank models.GasTank
	err := r.db.WithContext(ctx).
		Preload("TankType").
		First(&tank, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tank, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.GasTank, error) {
	q := r.db.WithContext(ctx).Preload("TankType")
	if filter.Status != nil {
		q = q.Where("current_status = ?", *filter.Status)
	}

	var out []models.GasTank
	err := q.
		Order("created_at ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) Save(ctx context.Context, tank *models.GasTank) error {
	return r.db.WithContext(ctx).Save(tank).Error
}

func (r *repository) TypeExists(ctx context.Context, typeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.GasTankType{}).
		Where("id = ?", typeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
