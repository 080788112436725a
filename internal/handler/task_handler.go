package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/service"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	status, priority := httpTaskInputFromCreate(req)
	task, err := h.taskService.CreateTask(r.Context(), p, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		TeamID:      req.TeamID,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTaskResponse{
		Task: domainTaskToHTTP(task),
	})
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	taskID, err := queryInt64(r, "task_id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), p, taskID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetTaskResponse{
		Task: domainEnrichedTaskToHTTP(task),
	})
}

func (h *Handler) ListTeamTasks(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	teamID, err := queryInt64(r, "team_id")
	if err != nil {
		h.handleError(w, err)
		return
	}

	tasks, err := h.taskService.ListTeamTasks(r.Context(), p, teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListTasksResponse{
		Tasks: domainEnrichedTasksToHTTP(tasks),
	})
}

func (h *Handler) ListPersonalTasks(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	tasks, err := h.taskService.ListPersonalTasks(r.Context(), p)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListTasksResponse{
		Tasks: domainEnrichedTasksToHTTP(tasks),
	})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	task, err := h.taskService.UpdateTask(r.Context(), p, req.TaskID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CreateTaskResponse{
		Task: domainTaskToHTTP(task),
	})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req DeleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), p, req.TaskID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
