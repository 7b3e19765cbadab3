package service

import (
	"context"
	"fmt"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/models"
)

// memberService is the concrete implementation of MemberService.
type memberService struct {
	memberRepository store.MemberRepository
	logger           *logger.Logger
}

// NewMemberService constructs a MemberService over the member repository.
func NewMemberService(members store.MemberRepository, logger *logger.Logger) MemberService {
	return &memberService{
		memberRepository: members,
		logger:           logger,
	}
}

// ListMembers returns the stored registry. While the registry has never been
// written, callers see the built-in seed roster instead; the fallback is
// presentation only and nothing is persisted.
func (m *memberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	members, err := m.memberRepository.ListMembers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("member listing failed")
		return nil, fmt.Errorf("member listing failed: %w", err)
	}

	if len(members) == 0 {
		return models.DefaultMembers(), nil
	}

	return members, nil
}

// ReplaceMembers swaps the whole registry for the given list in one
// transaction. An empty or nil list empties the registry, after which reads
// fall back to the seed roster.
func (m *memberService) ReplaceMembers(ctx context.Context, members []models.Member) error {
	log := logger.FromContext(ctx)

	for _, member := range members {
		if member.Code == "" || member.Name == "" {
			return ErrInvalidDataProvided
		}
	}

	if err := m.memberRepository.ReplaceMembers(ctx, members); err != nil {
		log.Err(err).Int("count", len(members)).Msg("member replacement failed")
		return fmt.Errorf("member replacement failed: %w", err)
	}

	log.Info().Int("count", len(members)).Msg("members updated")
	return nil
}
