// Package report folds transaction snapshots into derived views: balances,
// period totals and chart series. Everything here is pure: no I/O, no stored
// state, inputs never mutated. Dangling category references are irrelevant to
// the arithmetic; only each transaction's own type decides its sign.
package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/FarhanAryadi/fintrack/internal/transaction"
)

// DefaultRecentLimit is how many entries the recent-transactions view shows.
const DefaultRecentLimit = 5

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Summary holds range-scoped totals. Balance is income minus expense over the
// whole queried range, not a per-period roll-up.
type Summary struct {
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Balance      int64 `json:"balance"`
}

// PeriodTotals reports sums of a single transaction type over calendar
// windows ending now. Unlike Summary there is no balance here; periods only
// report one-sided totals.
type PeriodTotals struct {
	Day   int64 `json:"day"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
}

// Point is one chart bucket.
type Point struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Totals folds a snapshot into income/expense/balance. The fold is
// commutative, so input order does not matter, and an empty snapshot yields
// all zeros.
func Totals(txs []*transaction.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			s.TotalIncome += tx.Amount
		case transaction.TypeExpense:
			s.TotalExpense += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

// Periods sums transactions of txType over the day/week/month windows ending
// at now. The week starts on Sunday. Window bounds are inclusive: a
// transaction dated exactly at a window start or at now counts.
func Periods(txs []*transaction.Transaction, txType string, now time.Time) PeriodTotals {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var totals PeriodTotals
	for _, tx := range txs {
		if tx.Type != txType || tx.Date.After(now) {
			continue
		}
		if !tx.Date.Before(startOfDay) {
			totals.Day += tx.Amount
		}
		if !tx.Date.Before(startOfWeek) {
			totals.Week += tx.Amount
		}
		if !tx.Date.Before(startOfMonth) {
			totals.Month += tx.Amount
		}
	}
	return totals
}

// MonthlySeries buckets transactions of txType by month of their date into a
// fixed Jan..Dec axis. Every bucket is present even when empty.
func MonthlySeries(txs []*transaction.Transaction, txType string) []Point {
	series := make([]Point, len(monthLabels))
	for i, label := range monthLabels {
		series[i].Label = label
	}
	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		series[tx.Date.Month()-1].Amount += tx.Amount
	}
	return series
}

// DailySeries buckets transactions of txType by day of month into a fixed
// 1..31 axis. Every bucket is present even when empty.
func DailySeries(txs []*transaction.Transaction, txType string) []Point {
	series := make([]Point, 31)
	for i := range series {
		series[i].Label = strconv.Itoa(i + 1)
	}
	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		series[tx.Date.Day()-1].Amount += tx.Amount
	}
	return series
}

// Recent returns up to limit transactions of txType, newest date first. The
// sort is stable so transactions sharing a date keep their snapshot order.
// The input slice is left untouched.
func Recent(txs []*transaction.Transaction, txType string, limit int) []*transaction.Transaction {
	filtered := make([]*transaction.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == txType {
			filtered = append(filtered, tx)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	if limit >= 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
