package server

import (
	"net/http"

	"github.com/bagdasarian/taskhub/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /teams/create", h.CreateTeam)
	mux.HandleFunc("GET /teams/get", h.GetTeam)
	mux.HandleFunc("GET /teams/list", h.ListTeams)
	mux.HandleFunc("POST /teams/update", h.UpdateTeam)
	mux.HandleFunc("POST /teams/delete", h.DeleteTeam)
	mux.HandleFunc("POST /teams/invite", h.InviteMember)
	mux.HandleFunc("POST /teams/changeRole", h.ChangeMemberRole)
	mux.HandleFunc("POST /teams/removeMember", h.RemoveMember)
	mux.HandleFunc("POST /tasks/create", h.CreateTask)
	mux.HandleFunc("GET /tasks/get", h.GetTask)
	mux.HandleFunc("GET /tasks/list", h.ListTeamTasks)
	mux.HandleFunc("GET /tasks/personal", h.ListPersonalTasks)
	mux.HandleFunc("POST /tasks/update", h.UpdateTask)
	mux.HandleFunc("POST /tasks/delete", h.DeleteTask)
	mux.HandleFunc("POST /reminders/run", h.RunReminders)
}
