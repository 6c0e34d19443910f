package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	pkgerrors "github.com/oscarfuentes/gasinv-backend/pkg/errors"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

type stubCatalogRepo struct {
	rows    []models.GasTankType
	created []*models.GasTankType
}

func (r *stubCatalogRepo) Create(_ context.Context, tankType *models.GasTankType) error {
	tankType.ID = uuid.New()
	r.created = append(r.created, tankType)
	r.rows = append(r.rows, *tankType)
	return nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id uuid.UUID) (*models.GasTankType, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			return &r.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogRepo) List(_ context.Context, _ pagination.Params) ([]models.GasTankType, error) {
	return r.rows, nil
}

func TestServiceCreateTrimsNameAndPersists(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateTankTypeRequest{
		Name:     "  Oxygen 50L  ",
		Capacity: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if dto.Name != "Oxygen 50L" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestServiceCreateRejectsNonPositiveCapacity(t *testing.T) {
	svc, err := NewService(&stubCatalogRepo{})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateTankTypeRequest{
		Name:     "Nitrogen",
		Capacity: decimal.Zero,
	})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceListReturnsCatalog(t *testing.T) {
	repo := &stubCatalogRepo{rows: []models.GasTankType{
		{ID: uuid.New(), Name: "Oxygen", Capacity: decimal.NewFromInt(50)},
		{ID: uuid.New(), Name: "Argon", Capacity: decimal.NewFromInt(20)},
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	out, err := svc.List(context.Background(), pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 tank types, got %d", len(out))
	}
}
