package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/bishtbros/ledger/models"
)

const (
	createUser = `INSERT INTO users (mobile, password, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, mobile, password, name, role, created_at;`

	countUsers = `SELECT COUNT(*) FROM users;`

	findUserByMobile = `SELECT user_id, mobile, password, name, role, created_at
    FROM users
    WHERE mobile = $1;`

	upsertUser = `INSERT INTO users (mobile, password, name, role)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (mobile) DO UPDATE SET
        password = EXCLUDED.password,
        name     = EXCLUDED.name,
        role     = EXCLUDED.role;`

	updateUserRole = `UPDATE users SET role = $1 WHERE mobile = $2;`

	listUsers = `SELECT user_id, mobile, password, name, role, created_at
    FROM users
    ORDER BY user_id;`

	upsertRecord = `INSERT INTO records (name, period, amount, status, paid_date)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (name, period) DO UPDATE SET
        amount    = EXCLUDED.amount,
        status    = EXCLUDED.status,
        paid_date = EXCLUDED.paid_date
    RETURNING record_id, name, period, amount, status, paid_date, created_at;`

	createExpense = `INSERT INTO expenses (id, description, amount, date, category)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, description, amount, date, category, created_at;`

	deleteExpense = `DELETE FROM expenses WHERE id = $1;`

	listExpenses = `SELECT id, description, amount, date, category, created_at
    FROM expenses
    ORDER BY created_at;`

	listMembers = `SELECT code, name, phone FROM members ORDER BY code;`

	deleteAllMembers = `DELETE FROM members;`

	getSetting = `SELECT key, value FROM settings WHERE key = $1;`

	putSetting = `INSERT INTO settings (key, value)
    VALUES ($1, $2)
    ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`
)

// queryBuilder is the squirrel builder configured for the $n placeholder
// format both supported backends understand.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListRecordsQuery builds the records listing SELECT, applying the
// optional name and status filters.
func buildListRecordsQuery(filter RecordFilter) (string, []any, error) {
	builder := queryBuilder.
		Select("record_id", "name", "period", "amount", "status", "paid_date", "created_at").
		From("records").
		OrderBy("record_id")

	if filter.Name != "" {
		builder = builder.Where(sq.Eq{"name": filter.Name})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	return builder.ToSql()
}

// buildInsertMembersQuery builds the batch INSERT that installs the new
// registry inside ReplaceMembers.
func buildInsertMembersQuery(members []models.Member) (string, []any, error) {
	builder := queryBuilder.
		Insert("members").
		Columns("code", "name", "phone")

	for _, m := range members {
		builder = builder.Values(m.Code, m.Name, m.Phone)
	}

	return builder.ToSql()
}
