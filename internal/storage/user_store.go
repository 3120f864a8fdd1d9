package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/models"
)

// ProfileUpdate is the full replacement of a user's editable fields.
type ProfileUpdate struct {
	FName     string
	LName     string
	Email     string
	Username  string
	Bio       string
	Skills    []uuid.UUID
	Interests []uuid.UUID
}

// UserStore is the credential-store contract the service layer depends
// on. The Postgres implementation owns the uniqueness guarantees.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) error
	AddSkills(ctx context.Context, id uuid.UUID, skillIDs []uuid.UUID) error
	AddInterests(ctx context.Context, id uuid.UUID, skillIDs []uuid.UUID) error
	UsernameTaken(ctx context.Context, username string, excluding uuid.UUID) (bool, error)
	EmailTaken(ctx context.Context, email string, excluding uuid.UUID) (bool, error)
	// AddLike reports mutual=true only on the insert that completes
	// the pair; repeats of an existing like never report mutual.
	AddLike(ctx context.Context, from, to uuid.UUID) (mutual bool, err error)
	AddMatch(ctx context.Context, a, b uuid.UUID) error
	AddNotification(ctx context.Context, id uuid.UUID, n models.Notification) error
}

// PostgresUserStore implements UserStore on a pgx pool.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore creates a new PostgresUserStore instance
func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

const userColumns = `id, username, fname, lname, email, password_hash, bio,
	skills, interests, matches, notifications, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		user          models.User
		notifications []byte
	)
	err := row.Scan(
		&user.ID, &user.Username, &user.FName, &user.LName, &user.Email,
		&user.PasswordHash, &user.Bio, &user.Skills, &user.Interests,
		&user.Matches, &notifications, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if len(notifications) > 0 {
		if err := json.Unmarshal(notifications, &user.Notifications); err != nil {
			return nil, fmt.Errorf("decode notifications: %w", err)
		}
	}
	return &user, nil
}

// mapUniqueViolation turns a pg 23505 into the matching sentinel so the
// service layer can report conflicts without knowing constraint names.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "username"):
			return ErrDuplicateUsername
		case strings.Contains(pgErr.ConstraintName, "email"):
			return ErrDuplicateEmail
		}
	}
	return err
}

func (s *PostgresUserStore) Create(ctx context.Context, user *models.User) error {
	notifications, err := json.Marshal(user.Notifications)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	if user.Notifications == nil {
		notifications = []byte("[]")
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (id, username, fname, lname, email, password_hash, bio,
		 skills, interests, matches, notifications, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		user.ID, user.Username, user.FName, user.LName, user.Email,
		user.PasswordHash, user.Bio,
		emptyIfNil(user.Skills), emptyIfNil(user.Interests), emptyIfNil(user.Matches),
		notifications, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (s *PostgresUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *PostgresUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// UpdateProfile replaces the editable fields in a single atomic update.
func (s *PostgresUserStore) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) error {
	ct, err := s.pool.Exec(ctx,
		`UPDATE users SET fname = $2, lname = $3, email = $4, username = $5,
		 bio = $6, skills = $7, interests = $8, updated_at = now()
		 WHERE id = $1`,
		id, upd.FName, upd.LName, upd.Email, upd.Username, upd.Bio,
		emptyIfNil(upd.Skills), emptyIfNil(upd.Interests))
	if err != nil {
		return mapUniqueViolation(err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddSkills unions skill ids into the user's offered set. Duplicates
// are suppressed by the distinct aggregation.
func (s *PostgresUserStore) AddSkills(ctx context.Context, id uuid.UUID, skillIDs []uuid.UUID) error {
	return s.addToSet(ctx, "skills", id, skillIDs)
}

// AddInterests unions skill ids into the user's sought set.
func (s *PostgresUserStore) AddInterests(ctx context.Context, id uuid.UUID, skillIDs []uuid.UUID) error {
	return s.addToSet(ctx, "interests", id, skillIDs)
}

func (s *PostgresUserStore) addToSet(ctx context.Context, column string, id uuid.UUID, skillIDs []uuid.UUID) error {
	if len(skillIDs) == 0 {
		return nil
	}
	// column is one of two fixed identifiers, never user input
	q := fmt.Sprintf(
		`UPDATE users SET %s = (
			SELECT coalesce(array_agg(DISTINCT e), '{}') FROM unnest(%s || $2) AS e
		 ), updated_at = now() WHERE id = $1`, column, column)
	ct, err := s.pool.Exec(ctx, q, id, skillIDs)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresUserStore) UsernameTaken(ctx context.Context, username string, excluding uuid.UUID) (bool, error) {
	return s.taken(ctx, "username", username, excluding)
}

func (s *PostgresUserStore) EmailTaken(ctx context.Context, email string, excluding uuid.UUID) (bool, error) {
	return s.taken(ctx, "email", email, excluding)
}

func (s *PostgresUserStore) taken(ctx context.Context, column, value string, excluding uuid.UUID) (bool, error) {
	q := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM users WHERE %s = $1 AND id <> $2)`, column)
	var exists bool
	if err := s.pool.QueryRow(ctx, q, value, excluding).Scan(&exists); err != nil {
		return false, fmt.Errorf("check %s: %w", column, err)
	}
	return exists, nil
}

// AddLike records a directed like and reports whether it just became
// mutual. Re-liking is a full no-op: the conflict-suppressed insert
// affects zero rows, so a repeat can never re-trigger the match path.
func (s *PostgresUserStore) AddLike(ctx context.Context, from, to uuid.UUID) (bool, error) {
	ct, err := s.pool.Exec(ctx,
		`INSERT INTO likes (from_id, to_id) VALUES ($1, $2)
		 ON CONFLICT (from_id, to_id) DO NOTHING`, from, to)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return false, nil
	}

	var mutual bool
	err = s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE from_id = $1 AND to_id = $2)`,
		to, from).Scan(&mutual)
	if err != nil {
		return false, fmt.Errorf("check reverse like: %w", err)
	}
	return mutual, nil
}

// AddMatch appends each user to the other's ordered match list,
// skipping entries already present. Both writes commit together so a
// match can never exist on one side only.
func (s *PostgresUserStore) AddMatch(ctx context.Context, a, b uuid.UUID) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin match tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, pair := range [][2]uuid.UUID{{a, b}, {b, a}} {
		_, err := tx.Exec(ctx,
			`UPDATE users SET matches = array_append(matches, $2), updated_at = now()
			 WHERE id = $1 AND NOT ($2 = ANY(matches))`,
			pair[0], pair[1])
		if err != nil {
			return fmt.Errorf("append match: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// AddNotification appends a notification record to the user's embedded
// list.
func (s *PostgresUserStore) AddNotification(ctx context.Context, id uuid.UUID, n models.Notification) error {
	encoded, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	ct, err := s.pool.Exec(ctx,
		`UPDATE users SET notifications = notifications || $2::jsonb, updated_at = now()
		 WHERE id = $1`, id, encoded)
	if err != nil {
		return fmt.Errorf("append notification: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func emptyIfNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
