package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
	"github.com/sirupsen/logrus"
)

// Enricher присоединяет проекции профилей к доменным записям.
// Хранилище не умеет соединять доменные таблицы с пространством имен
// идентичности, поэтому обогащение выполняется ядром в два прохода:
// сбор уникальных id, затем один батчевый запрос профилей.
type Enricher struct {
	profileRepo repository.ProfileRepository
	logger      *logrus.Logger
}

func NewEnricher(profileRepo repository.ProfileRepository, logger *logrus.Logger) *Enricher {
	return &Enricher{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// EnrichTasks возвращает задачи в исходном порядке с проекцией профиля
// исполнителя. Отсутствующий профиль и ошибка выборки деградируют до nil:
// удаленный аккаунт не должен блокировать просмотр задачи.
func (e *Enricher) EnrichTasks(ctx context.Context, tasks []*domain.Task) []*domain.EnrichedTask {
	enriched := make([]*domain.EnrichedTask, 0, len(tasks))
	if len(tasks) == 0 {
		return enriched
	}

	ids := make([]string, 0, len(tasks))
	seen := make(map[string]bool)
	for _, task := range tasks {
		if task.AssignedTo == nil || seen[*task.AssignedTo] {
			continue
		}
		seen[*task.AssignedTo] = true
		ids = append(ids, *task.AssignedTo)
	}

	profiles := e.lookup(ctx, ids)

	for _, task := range tasks {
		item := &domain.EnrichedTask{Task: *task}
		if task.AssignedTo != nil {
			item.AssigneeData = profiles[*task.AssignedTo]
		}
		enriched = append(enriched, item)
	}

	return enriched
}

// EnrichMembers присоединяет профили к участникам команды тем же
// двухпроходным способом, сохраняя порядок входа.
func (e *Enricher) EnrichMembers(ctx context.Context, members []*domain.TeamMember) []*domain.TeamMember {
	if len(members) == 0 {
		return members
	}

	ids := make([]string, 0, len(members))
	seen := make(map[string]bool)
	for _, member := range members {
		if seen[member.UserID] {
			continue
		}
		seen[member.UserID] = true
		ids = append(ids, member.UserID)
	}

	profiles := e.lookup(ctx, ids)

	for _, member := range members {
		member.Profile = profiles[member.UserID]
	}

	return members
}

func (e *Enricher) lookup(ctx context.Context, ids []string) map[string]*domain.Profile {
	if len(ids) == 0 {
		return nil
	}

	profiles, err := e.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		e.logger.WithError(err).Warn("profile lookup failed, returning records without enrichment")
		return nil
	}

	return profiles
}
