package transaction

import (
	"time"

	"github.com/FarhanAryadi/fintrack/internal"
)

// CreateTransactionDTO is the request payload for recording a ledger entry.
// Date defaults to "now" when omitted; the economic event date may be back-
// or postdated relative to creation.
type CreateTransactionDTO struct {
	Amount      int64      `json:"amount"`
	Type        string     `json:"type"`
	CategoryID  string     `json:"categoryId"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (dto CreateTransactionDTO) Validate() error {
	if dto.Amount <= 0 {
		return internal.NewValidationError("Amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if !ValidType(dto.Type) {
		return internal.NewValidationError("Type must be INCOME or EXPENSE", internal.ErrCodeInvalidType)
	}
	if dto.CategoryID == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingFields)
	}
	return nil
}

// UpdateTransactionDTO carries a partial update. Every field is independently
// optional; nil means unchanged.
type UpdateTransactionDTO struct {
	Amount      *int64     `json:"amount,omitempty"`
	Type        *string    `json:"type,omitempty"`
	CategoryID  *string    `json:"categoryId,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (dto UpdateTransactionDTO) Validate() error {
	if dto.Amount != nil && *dto.Amount <= 0 {
		return internal.NewValidationError("Amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if dto.Type != nil && !ValidType(*dto.Type) {
		return internal.NewValidationError("Type must be INCOME or EXPENSE", internal.ErrCodeInvalidType)
	}
	if dto.CategoryID != nil && *dto.CategoryID == "" {
		return internal.NewValidationError("Category id cannot be empty", internal.ErrCodeInvalidCategoryRef)
	}
	return nil
}

type DeleteResponse struct {
	Message string `json:"message"`
}
