// Package apiclient is the client half of the sync contract: a typed HTTP
// client for the FinTrack API with per-call deadlines and structured error
// classification, plus a ledger cache that always treats the remote store as
// canonical.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FarhanAryadi/fintrack/internal"
	"github.com/FarhanAryadi/fintrack/internal/category"
	"github.com/FarhanAryadi/fintrack/internal/report"
	"github.com/FarhanAryadi/fintrack/internal/transaction"
)

type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.RequestTimeout
	if timeout <= 0 {
		timeout = internal.DefaultClientTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// ----------------- CATEGORIES -----------------

func (c *Client) ListCategories(ctx context.Context, txType string) ([]*category.Category, error) {
	path := "/categories"
	if txType != "" {
		path += "?type=" + url.QueryEscape(txType)
	}

	var categories []*category.Category
	if err := c.do(ctx, http.MethodGet, path, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, dto category.CategoryDTO) (*category.Category, error) {
	var created category.Category
	if err := c.do(ctx, http.MethodPost, "/categories", dto, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, dto category.CategoryDTO) (*category.Category, error) {
	var updated category.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), dto, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}

// ----------------- TRANSACTIONS -----------------

func (c *Client) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	var transactions []*transaction.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]*transaction.Transaction, error) {
	path := fmt.Sprintf("/transactions/date-range?startDate=%s&endDate=%s",
		url.QueryEscape(start.Format(time.RFC3339)),
		url.QueryEscape(end.Format(time.RFC3339)))

	var transactions []*transaction.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) GetSummary(ctx context.Context, start, end time.Time) (*report.RangeSummary, error) {
	path := fmt.Sprintf("/transactions/summary?startDate=%s&endDate=%s",
		url.QueryEscape(start.Format(time.RFC3339)),
		url.QueryEscape(end.Format(time.RFC3339)))

	var summary report.RangeSummary
	if err := c.do(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) CreateTransaction(ctx context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
	var created transaction.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", dto, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, dto transaction.UpdateTransactionDTO) (*transaction.Transaction, error) {
	var updated transaction.Transaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+url.PathEscape(id), dto, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+url.PathEscape(id), nil, nil)
}

// ----------------- TRANSPORT -----------------

// do performs one request/response cycle under the client deadline. A fired
// deadline surfaces as a timeout error, a non-2xx response keeps its status
// and body, and transport failures are wrapped as transient network errors.
// There is no retry here: callers decide whether a retryable failure is worth
// re-invoking.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return internal.NewInternalError("failed to marshal request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return internal.NewInternalError("failed to create request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.logger.Warn("api request timed out", "method", method, "path", path, "timeout", c.timeout)
			return internal.NewTimeoutError(fmt.Sprintf("request to %s timed out after %s", path, c.timeout))
		}
		c.logger.Error("api request failed", "method", method, "path", path, "error", err)
		return internal.NewNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return internal.NewNetworkError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		appErr := classifyResponse(resp.StatusCode, data)
		c.logger.Warn("api request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"retryable", appErr.Retryable())
		return appErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return internal.NewInternalError("failed to decode response", err)
		}
	}
	return nil
}

// classifyResponse turns a non-2xx response into the error taxonomy. The
// body's {"error": ...} detail is preserved so a 4xx can be shown to the user
// verbatim and a 5xx can be retried knowingly.
func classifyResponse(statusCode int, body []byte) *internal.AppError {
	detail := strings.TrimSpace(string(body))
	var wire internal.Response
	if err := json.Unmarshal(body, &wire); err == nil && wire.Error != "" {
		detail = wire.Error
	}
	if detail == "" {
		detail = http.StatusText(statusCode)
	}

	switch statusCode {
	case http.StatusBadRequest:
		return internal.NewValidationError(detail, internal.ErrCodeValidationFailed)
	case http.StatusNotFound:
		return internal.NewNotFoundError(detail, internal.ErrCodeNotFound)
	case http.StatusConflict:
		return internal.NewConflictError(detail, internal.ErrCodeDuplicateCategory)
	default:
		return internal.NewExternalError(statusCode, detail)
	}
}
