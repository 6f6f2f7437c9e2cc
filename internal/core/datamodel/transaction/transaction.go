package transaction

import (
	"time"

	categoryDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is the persisted ledger row. CategoryID is a nullable reference
// (ON DELETE SET NULL in the schema); CategoryName is the denormalized
// snapshot taken when the category was last resolved, kept for display after
// the category is renamed or removed.
type Transaction struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Amount       int64     `gorm:"column:amount;not null"`
	Type         string    `gorm:"column:type;not null"`
	CategoryID   *string   `gorm:"column:category_id;type:uuid"`
	CategoryName string    `gorm:"column:category_name;not null"`
	Description  *string   `gorm:"column:description"`
	Date         time.Time `gorm:"column:date;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Category *categoryDatamodel.Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
