package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type CreateTeamInput struct {
	Name        string
	Description string
}

type TeamService interface {
	CreateTeam(ctx context.Context, principal *domain.Principal, input CreateTeamInput) (*domain.Team, error)
	GetTeam(ctx context.Context, principal *domain.Principal, teamID int64) (*domain.Team, []*domain.TeamMember, error)
	ListTeams(ctx context.Context, principal *domain.Principal) ([]*domain.TeamAccess, error)
	UpdateTeam(ctx context.Context, principal *domain.Principal, teamID int64, input CreateTeamInput) (*domain.Team, error)
	DeleteTeam(ctx context.Context, principal *domain.Principal, teamID int64) error

	// InviteMember добавляет участника с ролью; не более одной строки на пару (team, user)
	InviteMember(ctx context.Context, principal *domain.Principal, teamID int64, userID string, role domain.Role) error
	ChangeMemberRole(ctx context.Context, principal *domain.Principal, teamID int64, userID string, role domain.Role) error
	RemoveMember(ctx context.Context, principal *domain.Principal, teamID int64, userID string) error
}
