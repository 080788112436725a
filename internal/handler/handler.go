package handler

import (
	"github.com/bagdasarian/taskhub/internal/service"
	"github.com/bagdasarian/taskhub/internal/worker"
)

type Handler struct {
	teamService service.TeamService
	taskService service.TaskService
	dispatcher  *worker.ReminderDispatcher
}

func NewHandler(
	teamService service.TeamService,
	taskService service.TaskService,
	dispatcher *worker.ReminderDispatcher,
) *Handler {
	return &Handler{
		teamService: teamService,
		taskService: taskService,
		dispatcher:  dispatcher,
	}
}
