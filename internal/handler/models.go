package handler

import "time"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ProfileResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type CreateTeamRequest struct {
	TeamName    string `json:"team_name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type TeamResponse struct {
	TeamID      int64   `json:"team_id"`
	TeamName    string  `json:"team_name"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type TeamMemberResponse struct {
	UserID  string           `json:"user_id"`
	Role    string           `json:"role"`
	IsOwner bool             `json:"is_owner"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

type GetTeamResponse struct {
	Team    TeamResponse         `json:"team"`
	Members []TeamMemberResponse `json:"members"`
}

type TeamAccessResponse struct {
	TeamID        int64  `json:"team_id"`
	TeamName      string `json:"team_name"`
	EffectiveRole string `json:"effective_role"`
	IsOwner       bool   `json:"is_owner"`
}

type ListTeamsResponse struct {
	Teams []TeamAccessResponse `json:"teams"`
}

type UpdateTeamRequest struct {
	TeamID      int64  `json:"team_id" validate:"required"`
	TeamName    string `json:"team_name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type DeleteTeamRequest struct {
	TeamID int64 `json:"team_id" validate:"required"`
}

type InviteMemberRequest struct {
	TeamID int64  `json:"team_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=admin member viewer"`
}

type ChangeMemberRoleRequest struct {
	TeamID int64  `json:"team_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=admin member viewer"`
}

type RemoveMemberRequest struct {
	TeamID int64  `json:"team_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	TeamID      *int64     `json:"team_id"`
	AssignedTo  *string    `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskRequest struct {
	TaskID      int64      `json:"task_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo  *string    `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
}

type DeleteTaskRequest struct {
	TaskID int64 `json:"task_id" validate:"required"`
}

type TaskResponse struct {
	TaskID       int64            `json:"task_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Status       string           `json:"status"`
	Priority     *string          `json:"priority,omitempty"`
	UserID       string           `json:"user_id"`
	TeamID       *int64           `json:"team_id,omitempty"`
	AssignedTo   *string          `json:"assigned_to,omitempty"`
	AssigneeData *ProfileResponse `json:"assignee_data,omitempty"`
	DueDate      *string          `json:"due_date,omitempty"`
	ReminderSent bool             `json:"reminder_sent"`
	CreatedAt    *string          `json:"created_at,omitempty"`
}

type CreateTaskResponse struct {
	Task TaskResponse `json:"task"`
}

type GetTaskResponse struct {
	Task TaskResponse `json:"task"`
}

type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type ReminderFailureResponse struct {
	TaskID int64  `json:"task_id"`
	Reason string `json:"reason"`
}

type ReminderRunResponse struct {
	Processed int                       `json:"processed"`
	Succeeded []int64                   `json:"succeeded"`
	Failures  []ReminderFailureResponse `json:"failures"`
}
