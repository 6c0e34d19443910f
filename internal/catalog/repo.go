package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/internal/repo"
	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

// Repository manages persistence for gas tank types.
type Repository interface {
	Create(ctx context.Context, tankType *models.GasTankType) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.GasTankType, error)
	List(ctx context.Context, page pagination.Params) ([]models.GasTankType, error)
}

type repository struct {
	repo.Base
}

// NewRepository returns a catalog repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) Create(ctx context.Context, tankType *models.GasTankType) error {
	return r.DB(ctx).Create(tankType).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.GasTankType, error) {
	var tankType models.GasTankType
	if err := r.DB(ctx).First(&tankType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tankType, nil
}

func (r *repository) List(ctx context.Context, page pagination.Params) ([]models.GasTankType, error) {
	var out []models.GasTankType
	err := r.DB(ctx).
		Order("created_at ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
