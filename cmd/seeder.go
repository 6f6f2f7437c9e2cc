package cmd

import (
	"fmt"
	"log"

	"github.com/FarhanAryadi/fintrack/internal/category"
	categoryDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/category"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the default category set",
	Long:  `Seed the database with the default income and expense categories.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Delete(&categoryDatamodel.Category{}).Error; err != nil {
				log.Fatalf("failed to clear categories: %v", err)
			}
			fmt.Println("Cleared existing categories")
		}

		categories := []categoryDatamodel.Category{
			{Name: "Food", Icon: "food", Type: category.TypeExpense},
			{Name: "Transport", Icon: "car", Type: category.TypeExpense},
			{Name: "Shopping", Icon: "shopping-outline", Type: category.TypeExpense},
			{Name: "Entertainment", Icon: "movie-open", Type: category.TypeExpense},
			{Name: "Bills", Icon: "file-document-outline", Type: category.TypeExpense},
			{Name: "Salary", Icon: "cash-multiple", Type: category.TypeIncome},
			{Name: "Investment", Icon: "chart-line", Type: category.TypeIncome},
			{Name: "Other Income", Icon: "plus-circle-outline", Type: category.TypeIncome},
		}

		for _, c := range categories {
			var existing categoryDatamodel.Category
			err := db.Where("name = ?", c.Name).First(&existing).Error
			if err == nil {
				continue
			}
			if err != gorm.ErrRecordNotFound {
				log.Fatalf("failed to check category %s: %v", c.Name, err)
			}

			if err := db.Create(&c).Error; err != nil {
				log.Fatalf("failed to insert category %s: %v", c.Name, err)
			}
			fmt.Printf("Seeded category: %s\n", c.Name)
		}

		fmt.Println("Categories seeded successfully")
	},
}
