package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oscarfuentes/gasinv-backend/pkg/db/models"
	"github.com/oscarfuentes/gasinv-backend/pkg/enums"
	pkgerrors "github.com/oscarfuentes/gasinv-backend/pkg/errors"
	"github.com/oscarfuentes/gasinv-backend/pkg/pagination"
)

const insufficientStockMessage = "Insufficient stock"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the stock and ledger operations.
type Service interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) ([]InventoryDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateInventoryRequest, actorID uuid.UUID) (*InventoryDTO, error)
	CreateTransaction(ctx context.Context, req CreateTransactionRequest, actorID uuid.UUID) (*TransactionDTO, error)
	ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.Params) ([]TransactionDTO, error)
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService constructs the inventory service.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{repo: repo, tx: tx}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]InventoryDTO, error) {
	rows, err := s.repo.List(ctx, filter, pagination.Normalize(page))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list inventory")
	}

	out := make([]InventoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Update edits a stock row directly. Quantity edits write a ledger entry in
// the same transaction so the audit trail stays complete.
func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateInventoryRequest, actorID uuid.UUID) (*InventoryDTO, error) {
	var updatedID uuid.UUID

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		inv, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "inventory record not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup inventory")
		}

		diff := 0
		quantityEdited := req.QuantityAvailable != nil
		if quantityEdited {
			diff = *req.QuantityAvailable - inv.QuantityAvailable
			inv.QuantityAvailable = *req.QuantityAvailable
		}
		if req.MinimumStock != nil {
			inv.MinimumStock = *req.MinimumStock
		}
		inv.UpdatedBy = &actorID

		if err := repo.Save(ctx, inv); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update inventory")
		}

		// Every quantity edit lands in the ledger, a no-op edit included,
		// so the audit trail records who touched the stock count.
		if quantityEdited {
			txnType := enums.TransactionTypeOut
			qty := -diff
			if diff > 0 {
				txnType = enums.TransactionTypeIn
				qty = diff
			}
			note := fmt.Sprintf("Inventory adjustment: %+d", diff)
			txn := &models.Transaction{
				TankID:          inv.TankID,
				TransactionType: txnType,
				Quantity:        qty,
				UserID:          actorID,
				Notes:           &note,
			}
			if err := repo.CreateTransaction(ctx, txn); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record adjustment")
			}
		}

		updatedID = inv.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	inv, err := s.repo.FindByID(ctx, updatedID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload inventory")
	}
	return FromModel(inv), nil
}

// CreateTransaction records a stock movement and applies it to the tank's
// inventory. OUT movements must not exceed the quantity on hand.
func (s *service) CreateTransaction(ctx context.Context, req CreateTransactionRequest, actorID uuid.UUID) (*TransactionDTO, error) {
	txnType, err := enums.ParseTransactionType(req.TransactionType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transaction type")
	}
	if req.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	var created *TransactionDTO

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.TankExists(ctx, req.TankID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check tank")
		}
		if !exists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "tank not found")
		}

		inv, err := repo.FindByTankID(ctx, req.TankID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "inventory record not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup inventory")
		}

		switch txnType {
		case enums.TransactionTypeOut:
			if inv.QuantityAvailable < req.Quantity {
				return pkgerrors.New(pkgerrors.CodeBusinessRule, insufficientStockMessage)
			}
			inv.QuantityAvailable -= req.Quantity
		default:
			// in and transfer both add stock to the receiving tank
			inv.QuantityAvailable += req.Quantity
		}
		inv.UpdatedBy = &actorID

		if err := repo.Save(ctx, inv); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "apply stock movement")
		}

		txn := &models.Transaction{
			TankID:          req.TankID,
			TransactionType: txnType,
			Quantity:        req.Quantity,
			UserID:          actorID,
			Notes:           req.Notes,
		}
		if err := repo.CreateTransaction(ctx, txn); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record transaction")
		}

		created = TransactionFromModel(txn)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.Params) ([]TransactionDTO, error) {
	rows, err := s.repo.ListTransactions(ctx, filter, pagination.Normalize(page))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list transactions")
	}

	out := make([]TransactionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *TransactionFromModel(&rows[i]))
	}
	return out, nil
}
