package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bagdasarian/taskhub/internal/domain"
)

// profileRepository читает таблицу auth_profiles - реплику пространства имен
// идентичности. Доменные запросы не соединяются с ней на уровне SQL,
// единственный путь доступа - батчевая выборка по набору id.
type profileRepository struct {
	executor DBExecutor
}

func NewProfileRepository(db *sql.DB) *profileRepository {
	return &profileRepository{executor: db}
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Profile, error) {
	profiles := make(map[string]*domain.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, id)
	}

	query := `
		SELECT id, email, name, avatar_url
		FROM auth_profiles
		WHERE id IN (` + strings.Join(placeholders, ", ") + `)
	`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		profile := &domain.Profile{}
		var name sql.NullString
		var avatarURL sql.NullString
		err := rows.Scan(&profile.ID, &profile.Email, &name, &avatarURL)
		if err != nil {
			return nil, err
		}
		if name.Valid {
			profile.Name = &name.String
		}
		if avatarURL.Valid {
			profile.AvatarURL = &avatarURL.String
		}
		profiles[profile.ID] = profile
	}

	return profiles, rows.Err()
}
