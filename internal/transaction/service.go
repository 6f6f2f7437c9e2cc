package transaction

import (
	"log/slog"
	"time"

	"github.com/FarhanAryadi/fintrack/internal"
	categoryDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/category"
	transactionDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/transaction"
)

type RepositoryAPI interface {
	GetAll() ([]*transactionDatamodel.Transaction, error)
	GetByID(id string) (*transactionDatamodel.Transaction, error)
	GetByDateRange(start, end time.Time) ([]*transactionDatamodel.Transaction, error)
	Create(tx *transactionDatamodel.Transaction) error
	Update(tx *transactionDatamodel.Transaction) error
	Delete(id string) (int64, error)
}

// CategoryResolver resolves a category id at write time. Reads never go
// through it: a transaction whose category has since been deleted stays
// readable on its snapshotted name.
type CategoryResolver interface {
	GetByID(id string) (*categoryDatamodel.Category, error)
}

type Service struct {
	repo       RepositoryAPI
	categories CategoryResolver
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, categories CategoryResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

// GetAllTransactions returns the full ledger, newest date first.
func (s *Service) GetAllTransactions() ([]*Transaction, error) {
	dataTransactions, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get transactions", "error", err)
		return nil, internal.NewInternalError("failed to get transactions", err)
	}
	return FromDataModelSlice(dataTransactions), nil
}

// GetTransactionsByDateRange returns ledger entries whose date falls within
// [start, end], both bounds inclusive, newest date first.
func (s *Service) GetTransactionsByDateRange(start, end time.Time) ([]*Transaction, error) {
	if end.Before(start) {
		return nil, internal.NewValidationError("End date must not be before start date", internal.ErrCodeInvalidDateRange)
	}

	dataTransactions, err := s.repo.GetByDateRange(start, end)
	if err != nil {
		s.logger.Error("failed to get transactions by date range", "error", err, "start", start, "end", end)
		return nil, internal.NewInternalError("failed to get transactions", err)
	}
	return FromDataModelSlice(dataTransactions), nil
}

// CreateTransaction records a ledger entry. The category reference is
// resolved strictly: creation against an unknown category is a validation
// failure, and the resolved name is snapshotted onto the row.
func (s *Service) CreateTransaction(dto CreateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("transaction validation failed", "error", err)
		return nil, err
	}

	cat, err := s.categories.GetByID(dto.CategoryID)
	if err != nil {
		s.logger.Error("failed to resolve category", "error", err, "category_id", dto.CategoryID)
		return nil, internal.NewInternalError("failed to create transaction", err)
	}
	if cat == nil {
		s.logger.Warn("transaction references unknown category", "category_id", dto.CategoryID)
		return nil, internal.ErrCategoryUnresolved
	}

	date := time.Now()
	if dto.Date != nil {
		date = *dto.Date
	}

	categoryID := cat.ID
	dataTransaction := &transactionDatamodel.Transaction{
		Amount:       dto.Amount,
		Type:         dto.Type,
		CategoryID:   &categoryID,
		CategoryName: cat.Name,
		Description:  dto.Description,
		Date:         date,
	}

	if err := s.repo.Create(dataTransaction); err != nil {
		s.logger.Error("failed to create transaction", "error", err)
		return nil, internal.NewInternalError("failed to create transaction", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", dataTransaction.ID,
		"type", dataTransaction.Type,
		"amount", dataTransaction.Amount,
		"category", dataTransaction.CategoryName)

	return FromDataModel(dataTransaction), nil
}

// UpdateTransaction applies a partial update. Supplying a category id
// re-resolves the reference and re-snapshots the name.
func (s *Service) UpdateTransaction(id string, dto UpdateTransactionDTO) (*Transaction, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("transaction validation failed", "error", err, "transaction_id", id)
		return nil, err
	}

	dataTransaction, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get transaction for update", "error", err, "transaction_id", id)
		return nil, internal.NewInternalError("failed to update transaction", err)
	}
	if dataTransaction == nil {
		return nil, internal.ErrTransactionNotFound
	}

	if dto.CategoryID != nil {
		cat, err := s.categories.GetByID(*dto.CategoryID)
		if err != nil {
			s.logger.Error("failed to resolve category", "error", err, "category_id", *dto.CategoryID)
			return nil, internal.NewInternalError("failed to update transaction", err)
		}
		if cat == nil {
			s.logger.Warn("transaction update references unknown category", "category_id", *dto.CategoryID)
			return nil, internal.ErrCategoryUnresolved
		}
		categoryID := cat.ID
		dataTransaction.CategoryID = &categoryID
		dataTransaction.CategoryName = cat.Name
	}

	if dto.Amount != nil {
		dataTransaction.Amount = *dto.Amount
	}
	if dto.Type != nil {
		dataTransaction.Type = *dto.Type
	}
	if dto.Description != nil {
		dataTransaction.Description = dto.Description
	}
	if dto.Date != nil {
		dataTransaction.Date = *dto.Date
	}

	if err := s.repo.Update(dataTransaction); err != nil {
		s.logger.Error("failed to update transaction", "error", err, "transaction_id", id)
		return nil, internal.NewInternalError("failed to update transaction", err)
	}

	s.logger.Info("transaction updated", "transaction_id", id)
	return FromDataModel(dataTransaction), nil
}

// DeleteTransaction removes a ledger entry permanently. Deleting an id that
// is already gone reports not found, so reconciling callers can treat that as
// "already deleted".
func (s *Service) DeleteTransaction(id string) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete transaction", "error", err, "transaction_id", id)
		return internal.NewInternalError("failed to delete transaction", err)
	}
	if affected == 0 {
		return internal.ErrTransactionNotFound
	}

	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}
