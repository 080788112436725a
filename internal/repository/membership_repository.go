package repository

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type MembershipRepository interface {
	// Upsert сохраняет строку участия; не более одной строки на пару (team_id, user_id)
	Upsert(ctx context.Context, membership *domain.TeamMembership) error
	Get(ctx context.Context, teamID int64, userID string) (*domain.TeamMembership, error)
	GetByTeamID(ctx context.Context, teamID int64) ([]*domain.TeamMembership, error)
	// GetByUserID возвращает строки участия вместе с именем команды
	GetByUserID(ctx context.Context, userID string) ([]*domain.TeamMembership, error)
	Delete(ctx context.Context, teamID int64, userID string) error
}
