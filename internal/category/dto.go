package category

import "github.com/FarhanAryadi/fintrack/internal"

// CategoryDTO is the request payload for creating or updating a category.
// All three fields are required on both operations.
type CategoryDTO struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Type string `json:"type"`
}

func (dto CategoryDTO) Validate() error {
	if dto.Name == "" || dto.Icon == "" || dto.Type == "" {
		return internal.NewValidationError("Missing required fields", internal.ErrCodeMissingFields)
	}
	if !ValidType(dto.Type) {
		return internal.NewValidationError("Type must be INCOME or EXPENSE", internal.ErrCodeInvalidType)
	}
	return nil
}

type DeleteResponse struct {
	Message string `json:"message"`
}
