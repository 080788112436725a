package domain

// Profile - минимальная проекция профиля из отдельного пространства имен
// идентичности. Домен не может соединять задачи с профилями на уровне SQL.
type Profile struct {
	ID        string
	Email     string
	Name      *string
	AvatarURL *string
}
