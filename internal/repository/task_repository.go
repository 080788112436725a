package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	GetByTeamID(ctx context.Context, teamID int64) ([]*domain.Task, error)
	// GetPersonalByUserID возвращает личные задачи (team_id IS NULL) создателя
	GetPersonalByUserID(ctx context.Context, userID string) ([]*domain.Task, error)
	// GetDueForReminder выбирает задачи с reminder_sent = false и due_date в [from, to]
	GetDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Task, error)
	// MarkReminderSent выставляет reminder_sent = true для одной задачи
	MarkReminderSent(ctx context.Context, id int64) error
}
