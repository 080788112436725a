package handler

import (
	"net/http"

	"github.com/bagdasarian/taskhub/internal/domain"
)

// principal восстанавливает уже аутентифицированного пользователя из
// заголовков, проставленных внешним слоем аутентификации. Ядро не
// проверяет подлинность - принципал для него непрозрачен.
func principal(r *http.Request) (*domain.Principal, error) {
	id := r.Header.Get("X-User-ID")
	if id == "" {
		return nil, domain.ErrUnauthenticated
	}

	return &domain.Principal{
		ID:    id,
		Email: r.Header.Get("X-User-Email"),
	}, nil
}
