package models

import "time"

// DefaultExpenseCategory is assigned when an expense is created without an
// explicit category.
const DefaultExpenseCategory = "Other"

// Expense is a one-off household expense. Unlike records, expenses have no
// natural key: each one gets a generated identifier and is immutable after
// creation (it can only be deleted).
type Expense struct {
	// ID is the server-generated identifier of the expense.
	ID string `json:"id"`

	// Description is a short free-form note about the expense.
	Description string `json:"description"`

	// Amount is the expense amount; always a positive number.
	Amount float64 `json:"amount"`

	// Date is the "YYYY-MM-DD" date the expense occurred.
	Date string `json:"date"`

	// Category groups expenses for reporting; defaults to "Other".
	Category string `json:"category"`

	// CreatedAt is the timestamp the expense was recorded.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}
