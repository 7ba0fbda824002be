package community

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a new PostgreSQL member repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, display_name, bio, interests, accessibility_notes, created_at, updated_at
		FROM community_members
		ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying community members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Member, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, display_name, bio, interests, accessibility_notes, created_at, updated_at
		FROM community_members
		WHERE id = $1
	`, id)

	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	return m, err
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*Member, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, display_name, bio, interests, accessibility_notes, created_at, updated_at
		FROM community_members
		WHERE user_id = $1
	`, userID)

	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	return m, err
}

func (r *PostgresRepository) Create(ctx context.Context, m *Member) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO community_members (id, user_id, display_name, bio, interests, accessibility_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, m.ID, m.UserID, m.DisplayName, m.Bio, m.Interests, m.AccessibilityNotes, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting community member: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM community_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting community member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func scanMember(row pgx.Row) (*Member, error) {
	var m Member
	err := row.Scan(
		&m.ID, &m.UserID, &m.DisplayName, &m.Bio,
		&m.Interests, &m.AccessibilityNotes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if m.Interests == nil {
		m.Interests = []string{}
	}
	return &m, nil
}
