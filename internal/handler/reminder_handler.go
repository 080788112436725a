package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// RunReminders запускает один батч напоминаний по внешнему триггеру.
// Эндпоинт работает с системными правами и не проходит авторизацию:
// ноль подходящих задач и ошибки отдельных задач - это успешный запуск,
// фатальна только недоступность хранилища.
func (h *Handler) RunReminders(w http.ResponseWriter, r *http.Request) {
	report, err := h.dispatcher.RunOnce(r.Context(), time.Now())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainReportToHTTP(report))
}
