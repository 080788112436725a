package service

import (
	"context"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type TaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    *domain.TaskPriority
	TeamID      *int64
	AssignedTo  *string
	DueDate     *time.Time
}

type TaskService interface {
	CreateTask(ctx context.Context, principal *domain.Principal, input TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, principal *domain.Principal, taskID int64) (*domain.EnrichedTask, error)
	// ListTeamTasks проверяет членство до какого-либо чтения задач
	ListTeamTasks(ctx context.Context, principal *domain.Principal, teamID int64) ([]*domain.EnrichedTask, error)
	ListPersonalTasks(ctx context.Context, principal *domain.Principal) ([]*domain.EnrichedTask, error)
	UpdateTask(ctx context.Context, principal *domain.Principal, taskID int64, input TaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, principal *domain.Principal, taskID int64) error
}
