package rest

import (
	"database/sql"
	"log/slog"

	"github.com/FarhanAryadi/fintrack/internal/category"
	"github.com/FarhanAryadi/fintrack/internal/report"
	"github.com/FarhanAryadi/fintrack/internal/transaction"
	"github.com/FarhanAryadi/fintrack/internal/transport/middleware"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes mounts the FinTrack API under /api.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, categoryHandler *category.Handler, transactionHandler *transaction.Handler, reportHandler *report.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if categoryHandler != nil {
			r.Route("/categories", func(cr chi.Router) {
				cr.Get("/", categoryHandler.GetCategories)
				cr.Post("/", categoryHandler.CreateCategory)
				cr.Put("/{id}", categoryHandler.UpdateCategory)
				cr.Delete("/{id}", categoryHandler.DeleteCategory)
			})
		}

		if transactionHandler != nil {
			r.Route("/transactions", func(tr chi.Router) {
				tr.Get("/", transactionHandler.GetTransactions)
				tr.Post("/", transactionHandler.CreateTransaction)
				tr.Get("/date-range", transactionHandler.GetTransactionsByDateRange)
				if reportHandler != nil {
					tr.Get("/summary", reportHandler.GetSummary)
				}
				tr.Put("/{id}", transactionHandler.UpdateTransaction)
				tr.Delete("/{id}", transactionHandler.DeleteTransaction)
			})
		}
	})
}
