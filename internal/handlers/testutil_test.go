package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/models"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/storage"
)

const testSecret = "handler-test-secret"

// memUserStore is a minimal in-memory UserStore for handler tests.
type memUserStore struct {
	users map[uuid.UUID]*models.User
	likes map[[2]uuid.UUID]bool
}

func newMemUserStore() *memUserStore {
	return &memUserStore{
		users: make(map[uuid.UUID]*models.User),
		likes: make(map[[2]uuid.UUID]bool),
	}
}

func (m *memUserStore) add(user *models.User) {
	m.users[user.ID] = user
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return storage.ErrDuplicateUsername
		}
		if existing.Email == user.Email {
			return storage.ErrDuplicateEmail
		}
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := m.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memUserStore) UpdateProfile(_ context.Context, id uuid.UUID, upd storage.ProfileUpdate) error {
	user, ok := m.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.FName = upd.FName
	user.LName = upd.LName
	user.Email = upd.Email
	user.Username = upd.Username
	user.Bio = upd.Bio
	user.Skills = upd.Skills
	user.Interests = upd.Interests
	return nil
}

func (m *memUserStore) AddSkills(_ context.Context, id uuid.UUID, skillIDs []uuid.UUID) error {
	user, ok := m.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.Skills = append(user.Skills, skillIDs...)
	return nil
}

func (m *memUserStore) AddInterests(_ context.Context, id uuid.UUID, skillIDs []uuid.UUID) error {
	user, ok := m.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.Interests = append(user.Interests, skillIDs...)
	return nil
}

func (m *memUserStore) UsernameTaken(_ context.Context, username string, excluding uuid.UUID) (bool, error) {
	for id, user := range m.users {
		if id != excluding && user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) EmailTaken(_ context.Context, email string, excluding uuid.UUID) (bool, error) {
	for id, user := range m.users {
		if id != excluding && user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserStore) AddLike(_ context.Context, from, to uuid.UUID) (bool, error) {
	if m.likes[[2]uuid.UUID{from, to}] {
		return false, nil
	}
	m.likes[[2]uuid.UUID{from, to}] = true
	return m.likes[[2]uuid.UUID{to, from}], nil
}

func (m *memUserStore) AddMatch(_ context.Context, a, b uuid.UUID) error {
	m.users[a].Matches = append(m.users[a].Matches, b)
	m.users[b].Matches = append(m.users[b].Matches, a)
	return nil
}

func (m *memUserStore) AddNotification(_ context.Context, id uuid.UUID, n models.Notification) error {
	user, ok := m.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.Notifications = append(user.Notifications, n)
	return nil
}

// memSkillStore is a fixed in-memory catalog.
type memSkillStore struct {
	skills []models.Skill
}

func newMemSkillStore(names ...string) *memSkillStore {
	m := &memSkillStore{}
	for _, name := range names {
		m.skills = append(m.skills, models.Skill{ID: uuid.New(), Name: name})
	}
	return m
}

func (m *memSkillStore) All(_ context.Context) ([]models.Skill, error) {
	return append([]models.Skill(nil), m.skills...), nil
}

func (m *memSkillStore) FindByName(_ context.Context, name string) (*models.Skill, error) {
	for _, skill := range m.skills {
		if skill.Name == name {
			clone := skill
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memSkillStore) Seed(_ context.Context, names []string) error {
	for _, name := range names {
		m.skills = append(m.skills, models.Skill{ID: uuid.New(), Name: name})
	}
	return nil
}

// newTestHandler wires a UserHandler over in-memory stores.
func newTestHandler(users *memUserStore, skills *memSkillStore) (*UserHandler, *auth.TokenIssuer) {
	issuer := auth.NewTokenIssuer(testSecret, time.Hour)
	svc := service.NewProfileService(users, skills, issuer)
	return NewUserHandler(svc, issuer), issuer
}

// sessionCookie finds the session cookie in a recorded response.
func sessionCookie(result *http.Response) *http.Cookie {
	for _, cookie := range result.Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie
		}
	}
	return nil
}
