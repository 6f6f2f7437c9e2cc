package transaction

import (
	"time"

	"github.com/FarhanAryadi/fintrack/internal/category"
	transactionDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/transaction"
)

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

func ValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single ledger entry. Amount is a positive magnitude in
// minor currency units; the sign of its contribution to a balance comes from
// Type, never from the stored value. CategoryID may be nil after the
// referenced category is deleted; CategoryName keeps the snapshot taken when
// the reference was last resolved.
type Transaction struct {
	ID           string             `json:"id"`
	Amount       int64              `json:"amount"`
	Type         string             `json:"type"`
	CategoryID   *string            `json:"categoryId"`
	CategoryName string             `json:"categoryName"`
	Description  *string            `json:"description,omitempty"`
	Date         time.Time          `json:"date"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	Category     *category.Category `json:"category,omitempty"`
}

func ToDataModel(t *Transaction) *transactionDatamodel.Transaction {
	return &transactionDatamodel.Transaction{
		ID:           t.ID,
		Amount:       t.Amount,
		Type:         t.Type,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		Description:  t.Description,
		Date:         t.Date,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func FromDataModel(t *transactionDatamodel.Transaction) *Transaction {
	tx := &Transaction{
		ID:           t.ID,
		Amount:       t.Amount,
		Type:         t.Type,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		Description:  t.Description,
		Date:         t.Date,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if t.Category != nil {
		tx.Category = category.FromDataModel(t.Category)
	}
	return tx
}

func FromDataModelSlice(transactions []*transactionDatamodel.Transaction) []*Transaction {
	result := make([]*Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = FromDataModel(t)
	}
	return result
}
