package store

import (
	"context"
	"fmt"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
// Writes are upserts keyed on the (name, period) natural key; the unique
// index on that pair guarantees at most one row per key even under
// concurrent writers.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertRecord creates or replaces the due record keyed by (name, period).
// On conflict only amount, status, and paid_date change; record_id and
// created_at keep their original values. The RETURNING clause hands back the
// canonical stored row either way.
func (r *recordRepository) UpsertRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertRecord,
		record.Name, record.Period, record.Amount, record.Status, record.PaidDate)

	if err := row.Scan(&record.RecordID, &record.Name, &record.Period, &record.Amount, &record.Status, &record.PaidDate, &record.CreatedAt); err != nil {
		log.Err(err).Str("func", "*recordRepository.UpsertRecord").Msg("error: upserting record")
		return models.Record{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// ListRecords returns records matching the filter, full snapshot when the
// filter is zero. The query is built dynamically because the WHERE clause
// shape depends on which filters are present.
func (r *recordRepository) ListRecords(ctx context.Context, filter RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.RecordID, &rec.Name, &rec.Period, &rec.Amount, &rec.Status, &rec.PaidDate, &rec.CreatedAt); err != nil {
			log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
