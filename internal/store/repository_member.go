package store

import (
	"context"
	"fmt"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/models"
)

// memberRepository is the SQL-backed implementation of [MemberRepository].
// The registry is only ever replaced wholesale; the delete-all and
// insert-all run under one transaction so a failure partway leaves the
// previous registry intact.
type memberRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemberRepository constructs a [MemberRepository] backed by the provided
// database connection and logger.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		db:     db,
		logger: logger,
	}
}

// ListMembers returns every stored member ordered by code. An empty registry
// yields an empty slice; the seed-roster fallback lives at the service layer
// because it is presentation state, not stored data.
func (r *memberRepository) ListMembers(ctx context.Context) ([]models.Member, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMembers)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ListMembers").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.Code, &m.Name, &m.Phone); err != nil {
			log.Err(err).Str("func", "*memberRepository.ListMembers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

// ReplaceMembers atomically swaps the whole registry: delete-all then
// insert-all inside one transaction. Replacing with an empty list leaves the
// registry empty (reads then fall back to the seed roster).
func (r *memberRepository) ReplaceMembers(ctx context.Context, members []models.Member) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ReplaceMembers").Msg("error: beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAllMembers); err != nil {
		log.Err(err).Str("func", "*memberRepository.ReplaceMembers").Msg("error: clearing members")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(members) > 0 {
		query, args, err := buildInsertMembersQuery(members)
		if err != nil {
			log.Err(err).Str("func", "*memberRepository.ReplaceMembers").Msg("error: building insert")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*memberRepository.ReplaceMembers").Msg("error: inserting members")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*memberRepository.ReplaceMembers").Msg("error: committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
