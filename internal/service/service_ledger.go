package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/models"
)

// ledgerService is the concrete implementation of LedgerService, covering
// both monthly due records and one-off expenses.
type ledgerService struct {
	recordRepository  store.RecordRepository
	expenseRepository store.ExpenseRepository

	// idGenerator assigns identifiers to new expenses.
	idGenerator IDGenerator

	// now is swapped in tests to pin the paid-date stamp.
	now func() time.Time

	logger *logger.Logger
}

// NewLedgerService constructs a LedgerService over the record and expense
// repositories.
func NewLedgerService(records store.RecordRepository, expenses store.ExpenseRepository, idGenerator IDGenerator, logger *logger.Logger) LedgerService {
	return &ledgerService{
		recordRepository:  records,
		expenseRepository: expenses,
		idGenerator:       idGenerator,
		now:               time.Now,
		logger:            logger,
	}
}

// UpsertRecord creates or replaces the due record keyed by (name, period).
//
// Input handling mirrors the permissive contract the clients rely on:
//   - name and period are required (ErrInvalidDataProvided).
//   - amount may arrive as a number, a numeric string, or garbage; anything
//     that does not parse to a positive number becomes the standard due of
//     500.
//   - status defaults to Pending and must be Pending or Done after
//     defaulting (ErrInvalidStatus).
//   - marking Done without a paid date stamps today (YYYY-MM-DD); marking
//     Pending clears the paid date no matter what was sent.
func (l *ledgerService) UpsertRecord(ctx context.Context, name, period string, amount any, status, paidDate string) (models.Record, error) {
	log := logger.FromContext(ctx)

	if name == "" || period == "" {
		return models.Record{}, ErrInvalidDataProvided
	}

	if status == "" {
		status = models.StatusPending
	}
	switch status {
	case models.StatusDone:
		if paidDate == "" {
			paidDate = l.now().Format("2006-01-02")
		}
	case models.StatusPending:
		paidDate = ""
	default:
		return models.Record{}, ErrInvalidStatus
	}

	record, err := l.recordRepository.UpsertRecord(ctx, models.Record{
		Name:     name,
		Period:   period,
		Amount:   coerceAmount(amount),
		Status:   status,
		PaidDate: paidDate,
	})
	if err != nil {
		log.Err(err).Str("name", name).Str("period", period).Msg("record upsert failed")
		return models.Record{}, fmt.Errorf("record upsert failed: %w", err)
	}

	return record, nil
}

// ListRecords returns the records matching the filter.
func (l *ledgerService) ListRecords(ctx context.Context, filter store.RecordFilter) ([]models.Record, error) {
	records, err := l.recordRepository.ListRecords(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("record listing failed")
		return nil, fmt.Errorf("record listing failed: %w", err)
	}

	return records, nil
}

// AddExpense stores a new expense.
//
// description and date are required and amount must parse to a positive
// number (ErrInvalidDataProvided otherwise); category defaults to "Other".
// The identifier is generated here so the caller gets it back in the stored
// row.
func (l *ledgerService) AddExpense(ctx context.Context, description string, amount any, date, category string) (models.Expense, error) {
	log := logger.FromContext(ctx)

	description = strings.TrimSpace(description)
	if description == "" || date == "" {
		return models.Expense{}, ErrInvalidDataProvided
	}

	parsedAmount, ok := parseAmount(amount)
	if !ok || parsedAmount <= 0 {
		return models.Expense{}, ErrInvalidDataProvided
	}

	if category == "" {
		category = models.DefaultExpenseCategory
	}

	expense, err := l.expenseRepository.CreateExpense(ctx, models.Expense{
		ID:          l.idGenerator.Generate(),
		Description: description,
		Amount:      parsedAmount,
		Date:        date,
		Category:    category,
	})
	if err != nil {
		log.Err(err).Str("description", description).Msg("expense creation failed")
		return models.Expense{}, fmt.Errorf("expense creation failed: %w", err)
	}

	return expense, nil
}

// RemoveExpense deletes the expense with the given id. Absent ids are not an
// error.
func (l *ledgerService) RemoveExpense(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := l.expenseRepository.DeleteExpense(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("expense deletion failed")
		return fmt.Errorf("expense deletion failed: %w", err)
	}

	return nil
}

// ListExpenses returns every stored expense.
func (l *ledgerService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := l.expenseRepository.ListExpenses(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("expense listing failed")
		return nil, fmt.Errorf("expense listing failed: %w", err)
	}

	return expenses, nil
}

// parseAmount extracts a number from the loosely typed amount values clients
// send: JSON numbers decode as float64, but numeric strings are accepted
// too.
func parseAmount(amount any) (float64, bool) {
	switch v := amount.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// coerceAmount resolves a due amount: anything absent, non-numeric, or not
// positive falls back to the standard due.
func coerceAmount(amount any) float64 {
	parsed, ok := parseAmount(amount)
	if !ok || parsed <= 0 {
		return models.DefaultRecordAmount
	}
	return parsed
}
