package tanks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/pkg/db"
	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
	pkgerrors "github.com/oscarfuentes/gasinv-backend/pkg/errors"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the tank fleet operations.
type Service interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) ([]TankDTO, error)
	Create(ctx context.Context, req CreateTankRequest, actorID uuid.UUID) (*TankDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*TankDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTankRequest) (*TankDTO, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs the tanks service.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tanks repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]TankDTO, error) {
	rows, err := s.repo.List(ctx, filter, pagination.Normalize(page))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list tanks")
	}

	out := make([]TankDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Create registers a tank and its zero-quantity inventory row in one transaction.
func (s *service) Create(ctx context.Context, req CreateTankRequest, actorID uuid.UUID) (*TankDTO, error) {
	status := enums.TankStatusAvailable
	if req.Status != "" {
		parsed, err := enums.ParseTankStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		status = parsed
	}

	serial := strings.TrimSpace(req.SerialNumber)
	if serial == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "serial_number is required")
	}

	tank := &models.GasTank{
		TypeID:        req.TypeID,
		SerialNumber:  serial,
		CurrentStatus: status,
		Location:      req.Location,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.TypeExists(ctx, req.TypeID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check tank type")
		}
		if !exists {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown tank type")
		}

		if err := repo.Create(ctx, tank); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "serial number already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create tank")
		}

		inv := &models.Inventory{
			TankID:    tank.ID,
			UpdatedBy: &actorID,
		}
		if err := repo.CreateInventory(ctx, inv); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create inventory row")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, tank.ID)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*TankDTO, error) {
	tank, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(tank), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateTankRequest) (*TankDTO, error) {
	tank, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TypeID != nil {
		exists, err := s.repo.TypeExists(ctx, *req.TypeID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check tank type")
		}
		if !exists {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown tank type")
		}
		tank.TypeID = *req.TypeID
	}
	if req.SerialNumber != nil {
		serial := strings.TrimSpace(*req.SerialNumber)
		if serial == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "serial_number cannot be empty")
		}
		tank.SerialNumber = serial
	}
	if req.Status != nil {
		parsed, err := enums.ParseTankStatus(*req.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		tank.CurrentStatus = parsed
	}
	if req.Location != nil {
		tank.Location = req.Location
	}
	if req.LastMaintenance != nil {
		tank.LastMaintenance = req.LastMaintenance
	}

	if err := s.repo.Save(ctx, tank); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "serial number already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update tank")
	}
	return s.Get(ctx, tank.ID)
}

func (s *service) find(ctx context.Context, id uuid.UUID) (*models.GasTank, error) {
	tank, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tank not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup tank")
	}
	return tank, nil
}
