package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type MembershipService interface {
	// Resolve возвращает все команды, в которых принципал может действовать,
	// без дубликатов по teamID
	Resolve(ctx context.Context, principalID string) ([]*domain.TeamAccess, error)

	// RoleOf возвращает эффективную роль принципала в команде;
	// nil означает отсутствие какого-либо отношения
	RoleOf(ctx context.Context, principalID string, teamID int64) (*domain.TeamRole, error)

	IsMember(ctx context.Context, principalID string, teamID int64) (bool, error)

	// Authorize проверяет отношение к команде и требуемую возможность
	// до любого обращения к доменным данным
	Authorize(ctx context.Context, principalID string, teamID int64, capability domain.Capability) (*domain.TeamRole, error)
}
