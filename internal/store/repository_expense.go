package store

import (
	"context"
	"fmt"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
)

// expenseRepository is the SQL-backed implementation of [ExpenseRepository].
type expenseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExpense inserts the expense under its pre-generated id and returns
// the stored row.
func (r *expenseRepository) CreateExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExpense,
		expense.ID, expense.Description, expense.Amount, expense.Date, expense.Category)

	if err := row.Scan(&expense.ID, &expense.Description, &expense.Amount, &expense.Date, &expense.Category, &expense.CreatedAt); err != nil {
		log.Err(err).Str("func", "*expenseRepository.CreateExpense").Msg("error: inserting expense")
		return models.Expense{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return expense, nil
}

// DeleteExpense removes the expense with the given id. Deleting an absent
// expense succeeds with zero rows affected.
func (r *expenseRepository) DeleteExpense(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteExpense, id); err != nil {
		log.Err(err).Str("func", "*expenseRepository.DeleteExpense").Msg("error: deleting expense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListExpenses returns every expense ordered by creation time.
func (r *expenseRepository) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listExpenses)
	if err != nil {
		log.Err(err).Str("func", "*expenseRepository.ListExpenses").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*expenseRepository.ListExpenses").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return expenses, nil
}
