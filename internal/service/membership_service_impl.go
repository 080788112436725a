package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type membershipService struct {
	teamRepo       repository.TeamRepository
	membershipRepo repository.MembershipRepository
}

// NewMembershipService создает новый экземпляр MembershipService
func NewMembershipService(teamRepo repository.TeamRepository, membershipRepo repository.MembershipRepository) MembershipService {
	return &membershipService{
		teamRepo:       teamRepo,
		membershipRepo: membershipRepo,
	}
}

// Resolve объединяет созданные команды и команды по строкам участия.
// Владение имеет приоритет: строка участия в собственной команде
// отбрасывается, команда никогда не появляется в результате дважды.
func (s *membershipService) Resolve(ctx context.Context, principalID string) ([]*domain.TeamAccess, error) {
	ownedTeams, err := s.teamRepo.GetByCreator(ctx, principalID)
	if err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.GetByUserID(ctx, principalID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.TeamAccess, 0, len(ownedTeams)+len(memberships))
	seen := make(map[int64]bool, len(ownedTeams))

	for _, team := range ownedTeams {
		result = append(result, &domain.TeamAccess{
			TeamID:        team.ID,
			TeamName:      team.Name,
			EffectiveRole: domain.RoleAdmin,
			IsOwner:       true,
		})
		seen[team.ID] = true
	}

	for _, membership := range memberships {
		if seen[membership.TeamID] {
			continue
		}
		seen[membership.TeamID] = true
		result = append(result, &domain.TeamAccess{
			TeamID:        membership.TeamID,
			TeamName:      membership.TeamName,
			EffectiveRole: membership.Role,
			IsOwner:       false,
		})
	}

	return result, nil
}

func (s *membershipService) RoleOf(ctx context.Context, principalID string, teamID int64) (*domain.TeamRole, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if err.Error() == "team not found" {
			// Несуществующая команда неотличима от чужой
			return nil, nil
		}
		return nil, err
	}

	if team.CreatedBy == principalID {
		return &domain.TeamRole{Role: domain.RoleAdmin, IsOwner: true}, nil
	}

	membership, err := s.membershipRepo.Get(ctx, teamID, principalID)
	if err != nil {
		if err.Error() == "membership not found" {
			return nil, nil
		}
		return nil, err
	}

	return &domain.TeamRole{Role: membership.Role, IsOwner: false}, nil
}

func (s *membershipService) IsMember(ctx context.Context, principalID string, teamID int64) (bool, error) {
	teamRole, err := s.RoleOf(ctx, principalID, teamID)
	if err != nil {
		return false, err
	}
	return teamRole != nil, nil
}

// Authorize поднимает ошибки авторизации до каких-либо запросов доменных
// данных: существование недоступной команды не раскрывается.
func (s *membershipService) Authorize(ctx context.Context, principalID string, teamID int64, capability domain.Capability) (*domain.TeamRole, error) {
	teamRole, err := s.RoleOf(ctx, principalID, teamID)
	if err != nil {
		return nil, err
	}
	if teamRole == nil {
		return nil, domain.ErrNotAMember
	}

	capabilities, err := CapabilitiesFor(teamRole.Role)
	if err != nil {
		return nil, err
	}

	if !capabilities.Has(capability) {
		return nil, domain.ErrForbidden
	}

	return teamRole, nil
}
