package domain

import "time"

type Team struct {
	ID          int64
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// TeamMembership - строка участия (team_id, user_id, role). Для владельца
// команды строка не требуется: его права выводятся из teams.created_by.
type TeamMembership struct {
	TeamID    int64
	UserID    string
	Role      Role
	TeamName  string
	CreatedAt time.Time
}

// TeamMember - участник команды в ответе API, с опциональной проекцией
// профиля. Profile никогда не сохраняется, только вычисляется.
type TeamMember struct {
	UserID  string
	Role    Role
	IsOwner bool
	Profile *Profile
}

// TeamAccess - команда, в которой принципал может действовать,
// с эффективной ролью после учета приоритета владельца.
type TeamAccess struct {
	TeamID        int64
	TeamName      string
	EffectiveRole Role
	IsOwner       bool
}
