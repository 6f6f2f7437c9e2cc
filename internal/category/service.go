package category

import (
	"log/slog"

	"github.com/FarhanAryadi/fintrack/internal"
	categoryDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	GetAll(txType string) ([]*categoryDatamodel.Category, error)
	GetByID(id string) (*categoryDatamodel.Category, error)
	GetByName(name string) (*categoryDatamodel.Category, error)
	Create(category *categoryDatamodel.Category) error
	Update(category *categoryDatamodel.Category) error
	Delete(id string) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetCategories lists categories sorted by name. txType narrows the result to
// INCOME or EXPENSE categories; empty means no filter.
func (s *Service) GetCategories(txType string) ([]*Category, error) {
	if txType != "" && !ValidType(txType) {
		return nil, internal.NewValidationError("Type must be INCOME or EXPENSE", internal.ErrCodeInvalidType)
	}

	dataCategories, err := s.repo.GetAll(txType)
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err)
		return nil, internal.NewInternalError("failed to get categories", err)
	}

	s.logger.Debug("retrieved categories", "count", len(dataCategories), "type", txType)
	return FromDataModelSlice(dataCategories), nil
}

func (s *Service) GetCategoryByID(id string) (*Category, error) {
	dataCategory, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get category", "error", err, "category_id", id)
		return nil, internal.NewInternalError("failed to get category", err)
	}
	if dataCategory == nil {
		return nil, internal.ErrCategoryNotFound
	}
	return FromDataModel(dataCategory), nil
}

func (s *Service) CreateCategory(dto CategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("category validation failed", "error", err)
		return nil, err
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to check category name", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("failed to create category", err)
	}
	if existing != nil {
		s.logger.Warn("duplicate category name", "name", dto.Name)
		return nil, internal.ErrDuplicateCategory
	}

	dataCategory := &categoryDatamodel.Category{
		Name: dto.Name,
		Icon: dto.Icon,
		Type: dto.Type,
	}

	if err := s.repo.Create(dataCategory); err != nil {
		s.logger.Error("failed to create category", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("failed to create category", err)
	}

	s.logger.Info("category created", "category_id", dataCategory.ID, "name", dataCategory.Name, "type", dataCategory.Type)
	return FromDataModel(dataCategory), nil
}

func (s *Service) UpdateCategory(id string, dto CategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("category validation failed", "error", err, "category_id", id)
		return nil, err
	}

	dataCategory, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get category for update", "error", err, "category_id", id)
		return nil, internal.NewInternalError("failed to update category", err)
	}
	if dataCategory == nil {
		return nil, internal.ErrCategoryNotFound
	}

	if dto.Name != dataCategory.Name {
		existing, err := s.repo.GetByName(dto.Name)
		if err != nil {
			s.logger.Error("failed to check category name", "error", err, "name", dto.Name)
			return nil, internal.NewInternalError("failed to update category", err)
		}
		if existing != nil {
			s.logger.Warn("duplicate category name on rename", "name", dto.Name, "category_id", id)
			return nil, internal.ErrDuplicateCategory
		}
	}

	dataCategory.Name = dto.Name
	dataCategory.Icon = dto.Icon
	dataCategory.Type = dto.Type

	if err := s.repo.Update(dataCategory); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return nil, internal.NewInternalError("failed to update category", err)
	}

	s.logger.Info("category updated", "category_id", id, "name", dataCategory.Name)
	return FromDataModel(dataCategory), nil
}

// DeleteCategory removes a category. Transactions that reference it are
// detached (category_id set to NULL) and keep their snapshotted name.
func (s *Service) DeleteCategory(id string) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete category", "error", err, "category_id", id)
		return internal.NewInternalError("failed to delete category", err)
	}
	if affected == 0 {
		return internal.ErrCategoryNotFound
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}
