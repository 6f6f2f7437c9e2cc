package report

import (
	"net/http"
	"time"

	"github.com/FarhanAryadi/fintrack/internal/transaction"
	"github.com/FarhanAryadi/fintrack/internal/transport"
)

// RangeSummary is the summary endpoint's response: range totals plus the raw
// transaction list, so callers get both in one round trip.
type RangeSummary struct {
	TotalIncome        int64                      `json:"totalIncome"`
	TotalExpense       int64                      `json:"totalExpense"`
	Balance            int64                      `json:"balance"`
	RecentTransactions []*transaction.Transaction `json:"recentTransactions"`
}

// TransactionSource supplies the snapshot the summary is computed from.
type TransactionSource interface {
	GetTransactionsByDateRange(start, end time.Time) ([]*transaction.Transaction, error)
}

type Handler struct {
	*transport.BaseHandler
	Source TransactionSource
}

func NewHandler(baseHandler *transport.BaseHandler, source TransactionSource) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Source:      source,
	}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")

	if startStr == "" || endStr == "" {
		h.WriteError(w, http.StatusBadRequest, "Start date and end date are required")
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		h.Logger.Error("GetSummary: invalid start date", "error", err, "startDate", startStr)
		h.WriteError(w, http.StatusBadRequest, "invalid start date")
		return
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		h.Logger.Error("GetSummary: invalid end date", "error", err, "endDate", endStr)
		h.WriteError(w, http.StatusBadRequest, "invalid end date")
		return
	}

	transactions, err := h.Source.GetTransactionsByDateRange(start, end)
	if err != nil {
		h.Logger.Error("GetSummary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	if transactions == nil {
		transactions = []*transaction.Transaction{}
	}

	totals := Totals(transactions)

	h.WriteJSON(w, http.StatusOK, RangeSummary{
		TotalIncome:        totals.TotalIncome,
		TotalExpense:       totals.TotalExpense,
		Balance:            totals.Balance,
		RecentTransactions: transactions,
	})
}
