package handler

import (
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	var createdAt *string
	if !team.CreatedAt.IsZero() {
		formatted := team.CreatedAt.Format(time.RFC3339)
		createdAt = &formatted
	}

	return TeamResponse{
		TeamID:      team.ID,
		TeamName:    team.Name,
		Description: team.Description,
		CreatedBy:   team.CreatedBy,
		CreatedAt:   createdAt,
	}
}

func domainProfileToHTTP(profile *domain.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	return &ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
	}
}

func domainMembersToHTTP(members []*domain.TeamMember) []TeamMemberResponse {
	result := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, TeamMemberResponse{
			UserID:  member.UserID,
			Role:    string(member.Role),
			IsOwner: member.IsOwner,
			Profile: domainProfileToHTTP(member.Profile),
		})
	}
	return result
}

func domainAccessesToHTTP(accesses []*domain.TeamAccess) []TeamAccessResponse {
	result := make([]TeamAccessResponse, 0, len(accesses))
	for _, access := range accesses {
		result = append(result, TeamAccessResponse{
			TeamID:        access.TeamID,
			TeamName:      access.TeamName,
			EffectiveRole: string(access.EffectiveRole),
			IsOwner:       access.IsOwner,
		})
	}
	return result
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	response := TaskResponse{
		TaskID:       task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		UserID:       task.UserID,
		TeamID:       task.TeamID,
		AssignedTo:   task.AssignedTo,
		ReminderSent: task.ReminderSent,
	}

	if task.Priority != nil {
		priority := string(*task.Priority)
		response.Priority = &priority
	}
	if task.DueDate != nil {
		formatted := task.DueDate.Format(time.RFC3339)
		response.DueDate = &formatted
	}
	if !task.CreatedAt.IsZero() {
		formatted := task.CreatedAt.Format(time.RFC3339)
		response.CreatedAt = &formatted
	}

	return response
}

func domainEnrichedTaskToHTTP(task *domain.EnrichedTask) TaskResponse {
	response := domainTaskToHTTP(&task.Task)
	response.AssigneeData = domainProfileToHTTP(task.AssigneeData)
	return response
}

func domainEnrichedTasksToHTTP(tasks []*domain.EnrichedTask) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainEnrichedTaskToHTTP(task))
	}
	return result
}

func domainReportToHTTP(report *domain.ReminderReport) ReminderRunResponse {
	failures := make([]ReminderFailureResponse, 0, len(report.Failures))
	for _, failure := range report.Failures {
		failures = append(failures, ReminderFailureResponse{
			TaskID: failure.TaskID,
			Reason: failure.Reason,
		})
	}

	succeeded := report.Succeeded
	if succeeded == nil {
		succeeded = []int64{}
	}

	return ReminderRunResponse{
		Processed: report.Processed,
		Succeeded: succeeded,
		Failures:  failures,
	}
}

func httpTaskInputFromCreate(req CreateTaskRequest) (status domain.TaskStatus, priority *domain.TaskPriority) {
	status = domain.TaskStatus(req.Status)
	if req.Priority != nil {
		p := domain.TaskPriority(*req.Priority)
		priority = &p
	}
	return status, priority
}
