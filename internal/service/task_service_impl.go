package service

import (
	"context"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/repository"
)

type taskService struct {
	taskRepo   repository.TaskRepository
	membership MembershipService
	enricher   *Enricher
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(taskRepo repository.TaskRepository, membership MembershipService, enricher *Enricher) TaskService {
	return &taskService{
		taskRepo:   taskRepo,
		membership: membership,
		enricher:   enricher,
	}
}

func (s *taskService) CreateTask(ctx context.Context, principal *domain.Principal, input TaskInput) (*domain.Task, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	if input.TeamID != nil {
		_, err := s.membership.Authorize(ctx, principal.ID, *input.TeamID, domain.CapCreateTasks)
		if err != nil {
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = domain.StatusTodo
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    input.Priority,
		UserID:      principal.ID,
		TeamID:      input.TeamID,
		AssignedTo:  input.AssignedTo,
		DueDate:     input.DueDate,
	}

	err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, principal *domain.Principal, taskID int64) (*domain.EnrichedTask, error) {
	task, err := s.authorizeTask(ctx, principal, taskID, domain.CapViewTasks)
	if err != nil {
		return nil, err
	}

	enriched := s.enricher.EnrichTasks(ctx, []*domain.Task{task})

	return enriched[0], nil
}

func (s *taskService) ListTeamTasks(ctx context.Context, principal *domain.Principal, teamID int64) ([]*domain.EnrichedTask, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	_, err := s.membership.Authorize(ctx, principal.ID, teamID, domain.CapViewTasks)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return s.enricher.EnrichTasks(ctx, tasks), nil
}

func (s *taskService) ListPersonalTasks(ctx context.Context, principal *domain.Principal) ([]*domain.EnrichedTask, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	tasks, err := s.taskRepo.GetPersonalByUserID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	return s.enricher.EnrichTasks(ctx, tasks), nil
}

func (s *taskService) UpdateTask(ctx context.Context, principal *domain.Principal, taskID int64, input TaskInput) (*domain.Task, error) {
	task, err := s.authorizeTask(ctx, principal, taskID, domain.CapUpdateTasks)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	if input.Status != "" {
		task.Status = input.Status
	}
	task.Priority = input.Priority
	task.AssignedTo = input.AssignedTo
	task.DueDate = input.DueDate

	err = s.taskRepo.Update(ctx, task)
	if err != nil {
		if err.Error() == "task not found" {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, err
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, principal *domain.Principal, taskID int64) error {
	_, err := s.authorizeTask(ctx, principal, taskID, domain.CapDeleteTasks)
	if err != nil {
		return err
	}

	err = s.taskRepo.Delete(ctx, taskID)
	if err != nil {
		if err.Error() == "task not found" {
			return domain.NewNotFoundError("task")
		}
		return err
	}

	return nil
}

// authorizeTask загружает задачу и проверяет права на нее до возврата
// каких-либо данных. Личная задача доступна только создателю и для чужого
// принципала неотличима от несуществующей.
func (s *taskService) authorizeTask(ctx context.Context, principal *domain.Principal, taskID int64, capability domain.Capability) (*domain.Task, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if err.Error() == "task not found" {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, err
	}

	if task.TeamID == nil {
		if task.UserID != principal.ID {
			return nil, domain.NewNotFoundError("task")
		}
		return task, nil
	}

	_, err = s.membership.Authorize(ctx, principal.ID, *task.TeamID, capability)
	if err != nil {
		return nil, err
	}

	return task, nil
}
