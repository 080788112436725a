package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

const taskColumns = `id, title, description, status, priority, user_id, team_id, assigned_to, due_date, reminder_sent, created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, description, status, priority, user_id, team_id, assigned_to, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, reminder_sent, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		string(task.Status),
		priorityOrNil(task.Priority),
		task.UserID,
		task.TeamID,
		task.AssignedTo,
		task.DueDate,
		time.Now(),
	).Scan(&task.ID, &task.ReminderSent, &task.CreatedAt)
	if err != nil {
		return err
	}

	task.UpdatedAt = nil

	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("task not found")
		}
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, priority = $5, assigned_to = $6, due_date = $7, updated_at = $8
		WHERE id = $1
		RETURNING reminder_sent, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		string(task.Status),
		priorityOrNil(task.Priority),
		task.AssignedTo,
		task.DueDate,
		time.Now(),
	).Scan(&task.ReminderSent, &task.CreatedAt, &updatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("task not found")
		}
		return err
	}

	if updatedAt.Valid {
		task.UpdatedAt = &updatedAt.Time
	} else {
		task.UpdatedAt = nil
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("task not found")
	}

	return nil
}

func (r *taskRepository) GetByTeamID(ctx context.Context, teamID int64) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE team_id = $1
		ORDER BY created_at
	`

	return r.queryTasks(ctx, query, teamID)
}

func (r *taskRepository) GetPersonalByUserID(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND team_id IS NULL
		ORDER BY created_at
	`

	return r.queryTasks(ctx, query, userID)
}

func (r *taskRepository) GetDueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE reminder_sent = FALSE AND due_date IS NOT NULL AND due_date >= $1 AND due_date <= $2
		ORDER BY due_date
	`

	return r.queryTasks(ctx, query, from, to)
}

func (r *taskRepository) MarkReminderSent(ctx context.Context, id int64) error {
	query := `
		UPDATE tasks
		SET reminder_sent = TRUE
		WHERE id = $1 AND reminder_sent = FALSE
	`

	result, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("task not found")
	}

	return nil
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var priority sql.NullString
	var teamID sql.NullInt64
	var assignedTo sql.NullString
	var dueDate sql.NullTime
	var updatedAt sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&priority,
		&task.UserID,
		&teamID,
		&assignedTo,
		&dueDate,
		&task.ReminderSent,
		&task.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if priority.Valid {
		p := domain.TaskPriority(priority.String)
		task.Priority = &p
	}
	if teamID.Valid {
		task.TeamID = &teamID.Int64
	}
	if assignedTo.Valid {
		task.AssignedTo = &assignedTo.String
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	if updatedAt.Valid {
		task.UpdatedAt = &updatedAt.Time
	}

	return task, nil
}

func priorityOrNil(priority *domain.TaskPriority) any {
	if priority == nil {
		return nil
	}
	return string(*priority)
}
