package report_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"time"

	"github.com/FarhanAryadi/fintrack/internal"
	"github.com/FarhanAryadi/fintrack/internal/report"
	"github.com/FarhanAryadi/fintrack/internal/transaction"
	"github.com/FarhanAryadi/fintrack/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// stubSource implements report.TransactionSource for testing
type stubSource struct {
	transactions []*transaction.Transaction
	err          error
}

func (s *stubSource) GetTransactionsByDateRange(start, end time.Time) ([]*transaction.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.transactions, nil
}

var _ = Describe("Summary Handler", func() {
	var (
		source  *stubSource
		handler *report.Handler
	)

	BeforeEach(func() {
		source = &stubSource{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = report.NewHandler(transport.NewBaseHandler(logger), source)
	})

	getSummary := func(startDate, endDate string) *httptest.ResponseRecorder {
		query := url.Values{}
		if startDate != "" {
			query.Set("startDate", startDate)
		}
		if endDate != "" {
			query.Set("endDate", endDate)
		}

		req := httptest.NewRequest(http.MethodGet, "/transactions/summary?"+query.Encode(), nil)
		recorder := httptest.NewRecorder()
		handler.GetSummary(recorder, req)
		return recorder
	}

	It("should return totals alongside the matching transactions", func() {
		source.transactions = []*transaction.Transaction{
			tx("a", 100000, transaction.TypeIncome, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
			tx("b", 30000, transaction.TypeExpense, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)),
		}

		recorder := getSummary("2024-06-01T00:00:00Z", "2024-06-30T00:00:00Z")
		Expect(recorder.Code).To(Equal(http.StatusOK))

		var summary report.RangeSummary
		Expect(json.Unmarshal(recorder.Body.Bytes(), &summary)).To(Succeed())
		Expect(summary.TotalIncome).To(Equal(int64(100000)))
		Expect(summary.TotalExpense).To(Equal(int64(30000)))
		Expect(summary.Balance).To(Equal(int64(70000)))
		Expect(summary.RecentTransactions).To(HaveLen(2))
	})

	It("should return zero totals and an empty list for an empty range", func() {
		recorder := getSummary("2024-06-01T00:00:00Z", "2024-06-30T00:00:00Z")
		Expect(recorder.Code).To(Equal(http.StatusOK))

		var summary report.RangeSummary
		Expect(json.Unmarshal(recorder.Body.Bytes(), &summary)).To(Succeed())
		Expect(summary.Balance).To(BeZero())
		Expect(summary.RecentTransactions).NotTo(BeNil())
		Expect(summary.RecentTransactions).To(BeEmpty())
	})

	It("should require both date parameters", func() {
		recorder := getSummary("2024-06-01T00:00:00Z", "")
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))

		var response internal.Response
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Error).To(Equal("Start date and end date are required"))
	})

	It("should reject a malformed date", func() {
		recorder := getSummary("June 1st", "2024-06-30T00:00:00Z")
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})

	It("should map a service error onto its status", func() {
		source.err = internal.NewValidationError("End date must not be before start date", internal.ErrCodeInvalidDateRange)

		recorder := getSummary("2024-06-30T00:00:00Z", "2024-06-01T00:00:00Z")
		Expect(recorder.Code).To(Equal(http.StatusBadRequest))
	})
})
