package category_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/FarhanAryadi/fintrack/internal"
	"github.com/FarhanAryadi/fintrack/internal/category"
	categoryPostgres "github.com/FarhanAryadi/fintrack/internal/category/postgres"
	categoryDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/category"
	transactionDatamodel "github.com/FarhanAryadi/fintrack/internal/core/datamodel/transaction"
	"github.com/FarhanAryadi/fintrack/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

var _ = Describe("Category Handler", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
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

	createCategory := func(name, icon, catType string) category.Category {
		recorder := doRequest(http.MethodPost, "/categories", category.CategoryDTO{
			Name: name,
			Icon: icon,
			Type: catType,
		})
		Expect(recorder.Code).To(Equal(http.StatusCreated))

		var created category.Category
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

		logger := newTestLogger()
		repo := categoryPostgres.NewCategoryRepository(db)
		service := category.NewService(repo, logger)
		handler := category.NewHandler(transport.NewBaseHandler(logger), service)

		router = chi.NewRouter()
		router.Route("/categories", func(r chi.Router) {
			r.Get("/", handler.GetCategories)
			r.Post("/", handler.CreateCategory)
			r.Put("/{id}", handler.UpdateCategory)
			r.Delete("/{id}", handler.DeleteCategory)
		})
	})

	Describe("POST /categories", func() {
		It("should create a category", func() {
			created := createCategory("Food", "food", "EXPENSE")
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Name).To(Equal("Food"))
			Expect(created.Type).To(Equal("EXPENSE"))
		})

		It("should reject missing fields with 400", func() {
			recorder := doRequest(http.MethodPost, "/categories", category.CategoryDTO{Name: "Food"})
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))

			var response internal.Response
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Error).NotTo(BeEmpty())
		})

		It("should reject a duplicate name with 409", func() {
			createCategory("Food", "food", "EXPENSE")

			recorder := doRequest(http.MethodPost, "/categories", category.CategoryDTO{
				Name: "Food",
				Icon: "pizza",
				Type: "EXPENSE",
			})
			Expect(recorder.Code).To(Equal(http.StatusConflict))

			var response internal.Response
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Error).To(Equal("Category name already exists"))
		})

		It("should reject a malformed body with 400", func() {
			req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader([]byte("{not json")))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /categories", func() {
		BeforeEach(func() {
			createCategory("Transport", "car", "EXPENSE")
			createCategory("Food", "food", "EXPENSE")
			createCategory("Salary", "cash-multiple", "INCOME")
		})

		It("should list categories ordered by name", func() {
			recorder := doRequest(http.MethodGet, "/categories", nil)
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var categories []category.Category
			Expect(json.Unmarshal(recorder.Body.Bytes(), &categories)).To(Succeed())
			Expect(categories).To(HaveLen(3))
			Expect(categories[0].Name).To(Equal("Food"))
			Expect(categories[1].Name).To(Equal("Salary"))
			Expect(categories[2].Name).To(Equal("Transport"))
		})

		It("should filter by type", func() {
			recorder := doRequest(http.MethodGet, "/categories?type=INCOME", nil)
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var categories []category.Category
			Expect(json.Unmarshal(recorder.Body.Bytes(), &categories)).To(Succeed())
			Expect(categories).To(HaveLen(1))
			Expect(categories[0].Name).To(Equal("Salary"))
		})

		It("should reject an invalid type filter with 400", func() {
			recorder := doRequest(http.MethodGet, "/categories?type=TRANSFER", nil)
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /categories/{id}", func() {
		It("should update a category", func() {
			created := createCategory("Food", "food", "EXPENSE")

			recorder := doRequest(http.MethodPut, "/categories/"+created.ID, category.CategoryDTO{
				Name: "Groceries",
				Icon: "cart",
				Type: "EXPENSE",
			})
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var updated category.Category
			Expect(json.Unmarshal(recorder.Body.Bytes(), &updated)).To(Succeed())
			Expect(updated.ID).To(Equal(created.ID))
			Expect(updated.Name).To(Equal("Groceries"))
		})

		It("should return 404 for an unknown id", func() {
			recorder := doRequest(http.MethodPut, "/categories/missing", category.CategoryDTO{
				Name: "Groceries",
				Icon: "cart",
				Type: "EXPENSE",
			})
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /categories/{id}", func() {
		It("should delete a category and confirm", func() {
			created := createCategory("Food", "food", "EXPENSE")

			recorder := doRequest(http.MethodDelete, "/categories/"+created.ID, nil)
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response category.DeleteResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Message).To(Equal("Category deleted successfully"))

			listRecorder := doRequest(http.MethodGet, "/categories", nil)
			var categories []category.Category
			Expect(json.Unmarshal(listRecorder.Body.Bytes(), &categories)).To(Succeed())
			Expect(categories).To(BeEmpty())
		})

		It("should return 404 for an unknown id", func() {
			recorder := doRequest(http.MethodDelete, "/categories/missing", nil)
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})
})
