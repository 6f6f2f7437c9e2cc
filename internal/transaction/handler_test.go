package transaction_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/FarhanAryadi/fintrack/internal"
	categoryPostgres "github.com/FarhanAryadi/fintrack/internal/category/postgres"
	categoryDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/category"
	transactionDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/transaction"
	"github.com/FarhanAryadi/fintrack/internal/transaction"
	transactionPostgres "github.com/FarhanAryadi/fintrack/internal/transaction/postgres"
	"github.com/FarhanAryadi/fintrack/internal/transport"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var _ = Describe("Transaction Handler", func() {
	var (
		db      *gorm.DB
		router  *chi.Mux
		foodCat *categoryDatamodel.Category
	)

	doRequest := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(payload)
		} else {
			reader = bytes.NewReader(nil)
		}

		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	createTransaction := func(dto transaction.CreateTransactionDTO) transaction.Transaction {
		recorder := doRequest(http.MethodPost, "/transactions", dto)
		Expect(recorder.Code).To(Equal(http.StatusCreated))

		var created transaction.Transaction
		Expect(json.Unmarshal(recorder.Body.Bytes(), &created)).To(Succeed())
		return created
	}

	BeforeEach(func() {
		var err error
		// SQLite in-memory database stands in for postgres
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&categoryDatamodel.Category{}, &transactionDatamodel.Transaction{})
		Expect(err).NotTo(HaveOccurred())

		foodCat = &categoryDatamodel.Category{Name: "Food", Icon: "food", Type: "EXPENSE"}
		Expect(db.Create(foodCat).Error).To(Succeed())

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		categoryRepo := categoryPostgres.NewCategoryRepository(db)
		transactionRepo := transactionPostgres.NewTransactionRepository(db)
		service := transaction.NewService(transactionRepo, categoryRepo, logger)
		handler := transaction.NewHandler(transport.NewBaseHandler(logger), service)

		router = chi.NewRouter()
		router.Route("/transactions", func(r chi.Router) {
			r.Get("/", handler.GetTransactions)
			r.Post("/", handler.CreateTransaction)
			r.Get("/date-range", handler.GetTransactionsByDateRange)
			r.Put("/{id}", handler.UpdateTransaction)
			r.Delete("/{id}", handler.DeleteTransaction)
		})
	})

	Describe("POST /transactions", func() {
		It("should create a transaction with the snapshotted category name", func() {
			created := createTransaction(transaction.CreateTransactionDTO{
				Amount:     30000,
				Type:       "EXPENSE",
				CategoryID: foodCat.ID,
			})

			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Amount).To(Equal(int64(30000)))
			Expect(created.CategoryName).To(Equal("Food"))
		})

		It("should reject an unknown category with 400", func() {
			recorder := doRequest(http.MethodPost, "/transactions", transaction.CreateTransactionDTO{
				Amount:     1000,
				Type:       "EXPENSE",
				CategoryID: uuid.NewString(),
			})
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))

			var response internal.Response
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Error).To(Equal("Category not found"))
		})

		It("should reject a non-positive amount with 400", func() {
			recorder := doRequest(http.MethodPost, "/transactions", transaction.CreateTransactionDTO{
				Amount:     -100,
				Type:       "EXPENSE",
				CategoryID: foodCat.ID,
			})
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /transactions", func() {
		It("should list transactions newest date first with the joined category", func() {
			older := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
			newer := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
			createTransaction(transaction.CreateTransactionDTO{Amount: 1000, Type: "EXPENSE", CategoryID: foodCat.ID, Date: &older})
			createTransaction(transaction.CreateTransactionDTO{Amount: 2000, Type: "EXPENSE", CategoryID: foodCat.ID, Date: &newer})

			recorder := doRequest(http.MethodGet, "/transactions", nil)
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var txs []*transaction.Transaction
			Expect(json.Unmarshal(recorder.Body.Bytes(), &txs)).To(Succeed())
			Expect(txs).To(HaveLen(2))
			Expect(txs[0].Amount).To(Equal(int64(2000)))
			Expect(txs[0].Category).NotTo(BeNil())
			Expect(txs[0].Category.Name).To(Equal("Food"))
		})
	})

	Describe("GET /transactions/date-range", func() {
		BeforeEach(func() {
			for _, day := range []int{5, 10, 15} {
				date := time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
				createTransaction(transaction.CreateTransactionDTO{Amount: 1000, Type: "EXPENSE", CategoryID: foodCat.ID, Date: &date})
			}
		})

		It("should return entries within the inclusive window", func() {
			path := fmt.Sprintf("/transactions/date-range?startDate=%s&endDate=%s",
				"2024-06-10T00:00:00Z", "2024-06-15T00:00:00Z")

			recorder := doRequest(http.MethodGet, path, nil)
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var txs []*transaction.Transaction
			Expect(json.Unmarshal(recorder.Body.Bytes(), &txs)).To(Succeed())
			Expect(txs).To(HaveLen(2))
		})

		It("should require both dates", func() {
			recorder := doRequest(http.MethodGet, "/transactions/date-range?startDate=2024-06-10T00:00:00Z", nil)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))

			var response internal.Response
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Error).To(Equal("Start date and end date are required"))
		})

		It("should reject a malformed date", func() {
			recorder := doRequest(http.MethodGet, "/transactions/date-range?startDate=yesterday&endDate=2024-06-15T00:00:00Z", nil)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /transactions/{id}", func() {
		It("should apply a partial update", func() {
			created := createTransaction(transaction.CreateTransactionDTO{
				Amount:     5000,
				Type:       "EXPENSE",
				CategoryID: foodCat.ID,
			})

			recorder := doRequest(http.MethodPut, "/transactions/"+created.ID, map[string]interface{}{
				"amount": 7500,
			})
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var updated transaction.Transaction
			Expect(json.Unmarshal(recorder.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.Amount).To(Equal(int64(7500)))
			Expect(updated.CategoryName).To(Equal("Food"))
		})

		It("should return 404 for an unknown id", func() {
			recorder := doRequest(http.MethodPut, "/transactions/"+uuid.NewString(), map[string]interface{}{
				"amount": 7500,
			})
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /transactions/{id}", func() {
		It("should delete and confirm", func() {
			created := createTransaction(transaction.CreateTransactionDTO{
				Amount:     1000,
				Type:       "EXPENSE",
				CategoryID: foodCat.ID,
			})

			recorder := doRequest(http.MethodDelete, "/transactions/"+created.ID, nil)
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response transaction.DeleteResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Message).To(Equal("Transaction deleted successfully"))

			repeat := doRequest(http.MethodDelete, "/transactions/"+created.ID, nil)
			Expect(repeat.Code).To(Equal(http.StatusNotFound))
		})
	})
})
