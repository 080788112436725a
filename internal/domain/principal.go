package domain

// Principal - аутентифицированный пользователь. Создается внешним
// провайдером аутентификации, ядро его никогда не изменяет.
type Principal struct {
	ID    string
	Email string
}
