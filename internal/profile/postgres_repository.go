package profile

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sensetheworld/sensetheworld/internal/risk"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL profile repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves the profile for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT user_id, mobility_level, conditions, triggers, created_at, updated_at
		FROM traveler_profiles
		WHERE user_id = $1
	`

	var (
		id            string
		mobilityLevel string
		conditions    []string
		triggers      []string
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&id,
		&mobilityLevel,
		&conditions,
		&triggers,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &Profile{
		UserID: id,
		Traveler: risk.TravelerProfile{
			MobilityLevel: risk.MobilityLevel(mobilityLevel),
			Conditions:    conditions,
			Triggers:      triggers,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Upsert creates or replaces the profile for a user.
func (r *PostgresRepository) Upsert(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO traveler_profiles (user_id, mobility_level, conditions, triggers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			mobility_level = EXCLUDED.mobility_level,
			conditions = EXCLUDED.conditions,
			triggers = EXCLUDED.triggers,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		p.UserID,
		string(p.Traveler.MobilityLevel),
		p.Traveler.Conditions,
		p.Traveler.Triggers,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Delete removes the profile for a user.
func (r *PostgresRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM traveler_profiles WHERE user_id = $1`, userID)
	return err
}

// Ensure PostgresRepository implements Repository.
var _ Repository = (*PostgresRepository)(nil)
