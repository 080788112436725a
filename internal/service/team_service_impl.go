package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type teamService struct {
	teamRepo       repository.TeamRepository
	membershipRepo repository.MembershipRepository
	membership     MembershipService
	enricher       *Enricher
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	membershipRepo repository.MembershipRepository,
	membership MembershipService,
	enricher *Enricher,
) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
		membership:     membership,
		enricher:       enricher,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, principal *domain.Principal, input CreateTeamInput) (*domain.Team, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	team := &domain.Team{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   principal.ID,
	}

	err := s.teamRepo.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeam возвращает команду и обогащенный список участников.
// Владелец включается первым с ролью admin, даже без строки участия.
func (s *teamService) GetTeam(ctx context.Context, principal *domain.Principal, teamID int64) (*domain.Team, []*domain.TeamMember, error) {
	if principal == nil {
		return nil, nil, domain.ErrUnauthenticated
	}

	_, err := s.membership.Authorize(ctx, principal.ID, teamID, domain.CapViewTasks)
	if err != nil {
		return nil, nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, nil, domain.NewNotFoundError("team")
		}
		return nil, nil, err
	}

	memberships, err := s.membershipRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}

	members := make([]*domain.TeamMember, 0, len(memberships)+1)
	members = append(members, &domain.TeamMember{
		UserID:  team.CreatedBy,
		Role:    domain.RoleAdmin,
		IsOwner: true,
	})
	for _, membership := range memberships {
		if membership.UserID == team.CreatedBy {
			// Заблудшая строка участия владельца не понижает его роль
			continue
		}
		members = append(members, &domain.TeamMember{
			UserID: membership.UserID,
			Role:   membership.Role,
		})
	}

	members = s.enricher.EnrichMembers(ctx, members)

	return team, members, nil
}

func (s *teamService) ListTeams(ctx context.Context, principal *domain.Principal) ([]*domain.TeamAccess, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	return s.membership.Resolve(ctx, principal.ID)
}

func (s *teamService) UpdateTeam(ctx context.Context, principal *domain.Principal, teamID int64, input CreateTeamInput) (*domain.Team, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	_, err := s.membership.Authorize(ctx, principal.ID, teamID, domain.CapManageTeam)
	if err != nil {
		return nil, err
	}

	team := &domain.Team{
		ID:          teamID,
		Name:        input.Name,
		Description: input.Description,
	}

	err = s.teamRepo.Update(ctx, team)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, principal *domain.Principal, teamID int64) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}

	_, err := s.membership.Authorize(ctx, principal.ID, teamID, domain.CapManageTeam)
	if err != nil {
		return err
	}

	err = s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		if err.Error() == "team not found" {
			return domain.NewNotFoundError("team")
		}
		return err
	}

	return nil
}

func (s *teamService) InviteMember(ctx context.Context, principal *domain.Principal, teamID int64, userID string, role domain.Role) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}

	if _, err := CapabilitiesFor(role); err != nil {
		return err
	}

	_, err := s.membership.Authorize(ctx, principal.ID, teamID, domain.CapInviteMembers)
	if err != nil {
		return err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if err.Error() == "team not found" {
			return domain.NewNotFoundError("team")
		}
		return err
	}

	// Владелец и так admin, строка участия ему не нужна
	if team.CreatedBy == userID {
		return domain.ErrMemberExists
	}

	existing, err := s.membershipRepo.Get(ctx, teamID, userID)
	if err != nil && err.Error() != "membership not found" {
		return err
	}
	if existing != nil {
		return domain.ErrMemberExists
	}

	return s.membershipRepo.Upsert(ctx, &domain.TeamMembership{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	})
}

func (s *teamService) ChangeMemberRole(ctx context.Context, principal *domain.Principal, teamID int64, userID string, role domain.Role) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}

	if _, err := CapabilitiesFor(role); err != nil {
		return err
	}

	_, err := s.membership.Authorize(ctx, principal.ID, teamID, domain.CapAssignRoles)
	if err != nil {
		return err
	}

	_, err = s.membershipRepo.Get(ctx, teamID, userID)
	if err != nil {
		if err.Error() == "membership not found" {
			return domain.NewNotFoundError("membership")
		}
		return err
	}

	return s.membershipRepo.Upsert(ctx, &domain.TeamMembership{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	})
}

func (s *teamService) RemoveMember(ctx context.Context, principal *domain.Principal, teamID int64, userID string) error {
	if principal == nil {
		return domain.ErrUnauthenticated
	}

	_, err := s.membership.Authorize(ctx, principal.ID, teamID, domain.CapManageTeam)
	if err != nil {
		return err
	}

	err = s.membershipRepo.Delete(ctx, teamID, userID)
	if err != nil {
		if err.Error() == "membership not found" {
			return domain.NewNotFoundError("membership")
		}
		return err
	}

	return nil
}
