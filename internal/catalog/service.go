package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	pkgerrors "github.com/oscarfuentes/gasinv-backend/pkg/errors"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

// Service defines the tank type catalog operations.
type Service interface {
	List(ctx context.Context, page pagination.Params) ([]TankTypeDTO, error)
	Create(ctx context.Context, req CreateTankTypeRequest) (*TankTypeDTO, error)
}

type service struct {
	repo Repository
}

// NewService constructs the catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, page pagination.Params) ([]TankTypeDTO, error) {
	rows, err := s.repo.List(ctx, pagination.Normalize(page))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tank types")
	}

	out := make([]TankTypeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, req CreateTankTypeRequest) (*TankTypeDTO, error) {
	if req.Capacity.Sign() <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "capacity must be positive")
	}

	tankType := &models.GasTankType{
		Name:        strings.TrimSpace(req.Name),
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if tankType.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	if err := s.repo.Create(ctx, tankType); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create tank type")
	}
	return FromModel(tankType), nil
}
