package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/taskhub/internal/domain"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

func NewMembershipRepositoryWithTx(tx *sql.Tx) *membershipRepository {
	return &membershipRepository{executor: tx}
}

func (r *membershipRepository) Upsert(ctx context.Context, membership *domain.TeamMembership) error {
	query := `
		INSERT INTO team_memberships (team_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_id, user_id) DO UPDATE
		SET role = EXCLUDED.role
		RETURNING created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		membership.TeamID,
		membership.UserID,
		string(membership.Role),
		time.Now(),
	).Scan(&membership.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *membershipRepository) Get(ctx context.Context, teamID int64, userID string) (*domain.TeamMembership, error) {
	query := `
		SELECT m.team_id, m.user_id, m.role, t.name, m.created_at
		FROM team_memberships m
		JOIN teams t ON m.team_id = t.id
		WHERE m.team_id = $1 AND m.user_id = $2
	`

	membership := &domain.TeamMembership{}
	err := r.executor.QueryRowContext(ctx, query, teamID, userID).Scan(
		&membership.TeamID,
		&membership.UserID,
		&membership.Role,
		&membership.TeamName,
		&membership.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("membership not found")
		}
		return nil, err
	}

	return membership, nil
}

func (r *membershipRepository) GetByTeamID(ctx context.Context, teamID int64) ([]*domain.TeamMembership, error) {
	query := `
		SELECT m.team_id, m.user_id, m.role, t.name, m.created_at
		FROM team_memberships m
		JOIN teams t ON m.team_id = t.id
		WHERE m.team_id = $1
		ORDER BY m.created_at
	`

	return r.queryMemberships(ctx, query, teamID)
}

func (r *membershipRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.TeamMembership, error) {
	query := `
		SELECT m.team_id, m.user_id, m.role, t.name, m.created_at
		FROM team_memberships m
		JOIN teams t ON m.team_id = t.id
		WHERE m.user_id = $1
		ORDER BY m.created_at
	`

	return r.queryMemberships(ctx, query, userID)
}

func (r *membershipRepository) queryMemberships(ctx context.Context, query string, arg any) ([]*domain.TeamMembership, error) {
	rows, err := r.executor.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []*domain.TeamMembership
	for rows.Next() {
		membership := &domain.TeamMembership{}
		err := rows.Scan(
			&membership.TeamID,
			&membership.UserID,
			&membership.Role,
			&membership.TeamName,
			&membership.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}

	return memberships, rows.Err()
}

func (r *membershipRepository) Delete(ctx context.Context, teamID int64, userID string) error {
	query := `DELETE FROM team_memberships WHERE team_id = $1 AND user_id = $2`

	result, err := r.executor.ExecContext(ctx, query, teamID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("membership not found")
	}

	return nil
}
