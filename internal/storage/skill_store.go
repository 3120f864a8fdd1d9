package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/models"
)

// SkillStore is the read-mostly catalog contract.
type SkillStore interface {
	All(ctx context.Context) ([]models.Skill, error)
	FindByName(ctx context.Context, name string) (*models.Skill, error)
	Seed(ctx context.Context, names []string) error
}

// PostgresSkillStore implements SkillStore on a pgx pool.
type PostgresSkillStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSkillStore creates a new PostgresSkillStore instance
func NewPostgresSkillStore(pool *pgxpool.Pool) *PostgresSkillStore {
	return &PostgresSkillStore{pool: pool}
}

func (s *PostgresSkillStore) All(ctx context.Context) ([]models.Skill, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return skills, nil
}

func (s *PostgresSkillStore) FindByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := s.pool.QueryRow(ctx,
		`SELECT id, name FROM skills WHERE name = $1`, name).Scan(&skill.ID, &skill.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query skill: %w", err)
	}
	return &skill, nil
}

// Seed inserts catalog entries that are not present yet. Existing names
// keep their ids.
func (s *PostgresSkillStore) Seed(ctx context.Context, names []string) error {
	for _, name := range names {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO skills (id, name) VALUES ($1, $2)
			 ON CONFLICT (name) DO NOTHING`, uuid.New(), name)
		if err != nil {
			return fmt.Errorf("seed skill %q: %w", name, err)
		}
	}
	return nil
}
