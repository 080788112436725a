package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/taskhub/internal/domain"
	"github.com/bagdasarian/taskhub/internal/service"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), p, service.CreateTeamInput{
		Name:        req.TeamName,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
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

	team, members, err := h.teamService.GetTeam(r.Context(), p, teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetTeamResponse{
		Team:    domainTeamToHTTP(team),
		Members: domainMembersToHTTP(members),
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	accesses, err := h.teamService.ListTeams(r.Context(), p)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ListTeamsResponse{
		Teams: domainAccessesToHTTP(accesses),
	})
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), p, req.TeamID, service.CreateTeamInput{
		Name:        req.TeamName,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req DeleteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), p, req.TeamID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	err = h.teamService.InviteMember(r.Context(), p, req.TeamID, req.UserID, domain.Role(req.Role))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) ChangeMemberRole(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req ChangeMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	err = h.teamService.ChangeMemberRole(r.Context(), p, req.TeamID, req.UserID, domain.Role(req.Role))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := validateStruct(req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), p, req.TeamID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.NewValidationError(name + " parameter is required")
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name + " must be an integer")
	}
	return value, nil
}
