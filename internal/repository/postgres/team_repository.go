package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, description, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	now := time.Now()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.Name,
		team.Description,
		team.CreatedBy,
		now,
	).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return err
	}

	team.UpdatedAt = nil

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT id, name, description, created_by, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.CreatedBy,
		&team.CreatedAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("team not found")
		}
		return nil, err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	} else {
		team.UpdatedAt = nil
	}

	return team, nil
}

func (r *teamRepository) GetByCreator(ctx context.Context, userID string) ([]*domain.Team, error) {
	query := `
		SELECT id, name, description, created_by, created_at, updated_at
		FROM teams
		WHERE created_by = $1
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		team := &domain.Team{}
		var updatedAt sql.NullTime
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Description,
			&team.CreatedBy,
			&team.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			team.UpdatedAt = &updatedAt.Time
		} else {
			team.UpdatedAt = nil
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.Description,
		time.Now(),
	).Scan(&team.CreatedAt, &updatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("team not found")
		}
		return err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	} else {
		team.UpdatedAt = nil
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM teams WHERE id = $1`

	result, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("team not found")
	}

	return nil
}
