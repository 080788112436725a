package domain

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Task. TeamID == nil означает личную задачу, видимую только создателю.
// ReminderSent переходит false -> true ровно один раз и не откатывается.
type Task struct {
	ID           int64
	Title        string
	Description  string
	Status       TaskStatus
	Priority     *TaskPriority
	UserID       string
	TeamID       *int64
	AssignedTo   *string
	DueDate      *time.Time
	ReminderSent bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// EnrichedTask - задача с проекцией профиля исполнителя. Чисто производное
// представление, существует только в рамках запроса.
type EnrichedTask struct {
	Task
	AssigneeData *Profile
}
