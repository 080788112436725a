package repository

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
)

// ProfileRepository - батчевый доступ к профилям из пространства имен
// идентичности. Профили нельзя соединять с доменными таблицами, поэтому
// единственная операция - выборка проекций по набору идентификаторов.
type ProfileRepository interface {
	// GetByIDs возвращает найденные профили; отсутствующие id просто не попадают в map
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error)
}
