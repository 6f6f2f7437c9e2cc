package postgres

import (
	"time"

	transactionDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/transaction"
	"github.com/FarhanAryadi/fintrack/internal/transaction"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) transaction.RepositoryAPI {
	return &TransactionRepository{db: db}
}

// GetAll returns the full ledger ordered by economic date descending. Equal
// dates keep insertion order so repeated reads return identical sequences.
func (r *TransactionRepository) GetAll() ([]*transactionDatamodel.Transaction, error) {
	var transactions []*transactionDatamodel.Transaction
	err := r.db.Preload("Category").
		Order("date DESC").
		Order("created_at ASC").
		Find(&transactions).Error
	return transactions, err
}

// GetByDateRange restricts to rows whose date falls in [start, end], both
// bounds inclusive.
func (r *TransactionRepository) GetByDateRange(start, end time.Time) ([]*transactionDatamodel.Transaction, error) {
	var transactions []*transactionDatamodel.Transaction
	err := r.db.Preload("Category").
		Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Order("created_at ASC").
		Find(&transactions).Error
	return transactions, err
}

func (r *TransactionRepository) GetByID(id string) (*transactionDatamodel.Transaction, error) {
	var tx transactionDatamodel.Transaction
	err := r.db.Preload("Category").Where("id = ?", id).First(&tx).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) Create(tx *transactionDatamodel.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *TransactionRepository) Update(tx *transactionDatamodel.Transaction) error {
	// Omit the association so a preloaded Category is never written back.
	return r.db.Omit("Category").Save(tx).Error
}

func (r *TransactionRepository) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&transactionDatamodel.Transaction{})
	return result.RowsAffected, result.Error
}
