package apiclient

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/FarhanAryadi/fintrack/internal/report"
	"github.com/FarhanAryadi/fintrack/internal/transaction"
)

// Ledger keeps a local copy of the remote transaction list. The remote store
// is canonical: every successful mutation triggers a refetch of the full
// list, and a failed refetch keeps the previous snapshot instead of blanking
// it. Dependent operations (delete then refresh, say) must be awaited in
// order by the caller; the ledger does not sequence concurrent calls.
type Ledger struct {
	client *Client
	logger *slog.Logger

	mu           sync.RWMutex
	transactions []*transaction.Transaction
	loaded       bool
}

func NewLedger(client *Client, logger *slog.Logger) *Ledger {
	return &Ledger{
		client: client,
		logger: logger,
	}
}

// Refresh replaces the snapshot with the authoritative remote list. On
// failure the existing snapshot is left untouched and the classified error is
// returned for the caller's retry decision.
func (l *Ledger) Refresh(ctx context.Context) error {
	transactions, err := l.client.ListTransactions(ctx)
	if err != nil {
		l.logger.Warn("ledger refresh failed, keeping previous snapshot", "error", err)
		return err
	}

	l.mu.Lock()
	l.transactions = transactions
	l.loaded = true
	l.mu.Unlock()

	l.logger.Debug("ledger refreshed", "count", len(transactions))
	return nil
}

// Loaded reports whether at least one refresh has succeeded.
func (l *Ledger) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Transactions returns the current snapshot. The returned slice is a copy;
// mutating it does not affect the ledger.
func (l *Ledger) Transactions() []*transaction.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make([]*transaction.Transaction, len(l.transactions))
	copy(snapshot, l.transactions)
	return snapshot
}

// Create records a transaction remotely, then refetches the list. The create
// result is returned even when the refetch fails; the snapshot then keeps the
// optimistically prepended entry until a later refresh succeeds.
func (l *Ledger) Create(ctx context.Context, dto transaction.CreateTransactionDTO) (*transaction.Transaction, error) {
	created, err := l.client.CreateTransaction(ctx, dto)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.transactions = append([]*transaction.Transaction{created}, l.transactions...)
	l.mu.Unlock()

	if err := l.Refresh(ctx); err != nil {
		l.logger.Warn("refetch after create failed", "transaction_id", created.ID, "error", err)
	}
	return created, nil
}

// Update applies a partial update remotely, then refetches the list.
func (l *Ledger) Update(ctx context.Context, id string, dto transaction.UpdateTransactionDTO) (*transaction.Transaction, error) {
	updated, err := l.client.UpdateTransaction(ctx, id, dto)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions[i] = updated
			break
		}
	}
	l.mu.Unlock()

	if err := l.Refresh(ctx); err != nil {
		l.logger.Warn("refetch after update failed", "transaction_id", id, "error", err)
	}
	return updated, nil
}

// Delete removes a transaction remotely, then refetches the list. A NOT_FOUND
// from the remote means the entry is already gone; the caller may treat that
// as success when reconciling.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	if err := l.client.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	kept := l.transactions[:0]
	for _, tx := range l.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	l.transactions = kept
	l.mu.Unlock()

	if err := l.Refresh(ctx); err != nil {
		l.logger.Warn("refetch after delete failed", "transaction_id", id, "error", err)
	}
	return nil
}

// Totals derives income/expense/balance from the current snapshot.
func (l *Ledger) Totals() report.Summary {
	return report.Totals(l.Transactions())
}

// Periods derives day/week/month totals for one transaction type from the
// current snapshot.
func (l *Ledger) Periods(txType string, now time.Time) report.PeriodTotals {
	return report.Periods(l.Transactions(), txType, now)
}

// Recent returns the newest transactions of one type from the snapshot.
func (l *Ledger) Recent(txType string) []*transaction.Transaction {
	return report.Recent(l.Transactions(), txType, report.DefaultRecentLimit)
}

// MonthlySeries derives the Jan..Dec chart series for one transaction type
// from the snapshot.
func (l *Ledger) MonthlySeries(txType string) []report.Point {
	return report.MonthlySeries(l.Transactions(), txType)
}
