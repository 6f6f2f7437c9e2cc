package transaction

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/FarhanAryadi/fintrack/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetAllTransactions() ([]*Transaction, error)
	GetTransactionsByDateRange(start, end time.Time) ([]*Transaction, error)
	CreateTransaction(dto CreateTransactionDTO) (*Transaction, error)
	UpdateTransaction(id string, dto UpdateTransactionDTO) (*Transaction, error)
	DeleteTransaction(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.Service.GetAllTransactions()
	if err != nil {
		h.Logger.Error("GetTransactions: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transactions)
}

func (h *Handler) GetTransactionsByDateRange(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.parseDateRange(w, r)
	if !ok {
		return
	}

	transactions, err := h.Service.GetTransactionsByDateRange(start, end)
	if err != nil {
		h.Logger.Error("GetTransactionsByDateRange: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transactions)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateTransaction(dto)
	if err != nil {
		h.Logger.Error("CreateTransaction: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTransaction: transaction created",
		"transaction_id", created.ID,
		"type", created.Type,
		"amount", created.Amount)

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto UpdateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateTransaction: invalid request body", "error", err, "transaction_id", id)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateTransaction(id, dto)
	if err != nil {
		h.Logger.Error("UpdateTransaction: service error", "error", err, "transaction_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.DeleteTransaction(id); err != nil {
		h.Logger.Error("DeleteTransaction: service error", "error", err, "transaction_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{Message: "Transaction deleted successfully"})
}

// parseDateRange reads the startDate/endDate query parameters shared by the
// date-range and summary endpoints. Both are required, RFC 3339.
func (h *Handler) parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startStr := r.URL.Query().Get("startDate")
	endStr := r.URL.Query().Get("endDate")

	if startStr == "" || endStr == "" {
		h.WriteError(w, http.StatusBadRequest, "Start date and end date are required")
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		h.Logger.Error("invalid start date", "error", err, "startDate", startStr)
		h.WriteError(w, http.StatusBadRequest, "invalid start date")
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		h.Logger.Error("invalid end date", "error", err, "endDate", endStr)
		h.WriteError(w, http.StatusBadRequest, "invalid end date")
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}
