package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/models"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/storage"
)

// fakeUserStore is an in-memory UserStore with the same uniqueness
// semantics as the Postgres implementation.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
	likes map[[2]uuid.UUID]bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users: make(map[uuid.UUID]*models.User),
		likes: make(map[[2]uuid.UUID]bool),
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return storage.ErrDuplicateUsername
		}
		if existing.Email == user.Email {
			return storage.ErrDuplicateEmail
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f.findBy(func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return f.findBy(func(u *models.User) bool { return u.Username == username })
}

func (f *fakeUserStore) findBy(match func(*models.User) bool) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if match(user) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id uuid.UUID, upd storage.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	for otherID, other := range f.users {
		if otherID == id {
			continue
		}
		if other.Username == upd.Username {
			return storage.ErrDuplicateUsername
		}
		if other.Email == upd.Email {
			return storage.ErrDuplicateEmail
		}
	}
	user.FName = upd.FName
	user.LName = upd.LName
	user.Email = upd.Email
	user.Username = upd.Username
	user.Bio = upd.Bio
	user.Skills = append([]uuid.UUID(nil), upd.Skills...)
	user.Interests = append([]uuid.UUID(nil), upd.Interests...)
	return nil
}

func (f *fakeUserStore) AddSkills(_ context.Context, id uuid.UUID, skillIDs []uuid.UUID) error {
	return f.addToSet(id, skillIDs, func(u *models.User) *[]uuid.UUID { return &u.Skills })
}

func (f *fakeUserStore) AddInterests(_ context.Context, id uuid.UUID, skillIDs []uuid.UUID) error {
	return f.addToSet(id, skillIDs, func(u *models.User) *[]uuid.UUID { return &u.Interests })
}

func (f *fakeUserStore) addToSet(id uuid.UUID, ids []uuid.UUID, field func(*models.User) *[]uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	set := field(user)
	for _, candidate := range ids {
		seen := false
		for _, existing := range *set {
			if existing == candidate {
				seen = true
				break
			}
		}
		if !seen {
			*set = append(*set, candidate)
		}
	}
	return nil
}

func (f *fakeUserStore) UsernameTaken(_ context.Context, username string, excluding uuid.UUID) (bool, error) {
	return f.taken(excluding, func(u *models.User) bool { return u.Username == username })
}

func (f *fakeUserStore) EmailTaken(_ context.Context, email string, excluding uuid.UUID) (bool, error) {
	return f.taken(excluding, func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUserStore) taken(excluding uuid.UUID, match func(*models.User) bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, user := range f.users {
		if id != excluding && match(user) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) AddLike(_ context.Context, from, to uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.likes[[2]uuid.UUID{from, to}] {
		return false, nil
	}
	f.likes[[2]uuid.UUID{from, to}] = true
	return f.likes[[2]uuid.UUID{to, from}], nil
}

func (f *fakeUserStore) AddMatch(_ context.Context, a, b uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ua, ok := f.users[a]
	if !ok {
		return storage.ErrNotFound
	}
	ub, ok := f.users[b]
	if !ok {
		return storage.ErrNotFound
	}
	ua.Matches = appendUnique(ua.Matches, b)
	ub.Matches = appendUnique(ub.Matches, a)
	return nil
}

func appendUnique(list []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}

func (f *fakeUserStore) AddNotification(_ context.Context, id uuid.UUID, n models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.Notifications = append(user.Notifications, n)
	return nil
}

// fakeSkillStore is an in-memory SkillStore seeded per test.
type fakeSkillStore struct {
	skills []models.Skill
}

func newFakeSkillStore(names ...string) *fakeSkillStore {
	f := &fakeSkillStore{}
	for _, name := range names {
		f.skills = append(f.skills, models.Skill{ID: uuid.New(), Name: name})
	}
	return f
}

func (f *fakeSkillStore) All(_ context.Context) ([]models.Skill, error) {
	return append([]models.Skill(nil), f.skills...), nil
}

func (f *fakeSkillStore) FindByName(_ context.Context, name string) (*models.Skill, error) {
	for _, skill := range f.skills {
		if skill.Name == name {
			clone := skill
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeSkillStore) Seed(_ context.Context, names []string) error {
	for _, name := range names {
		if _, err := f.FindByName(context.Background(), name); err != nil {
			f.skills = append(f.skills, models.Skill{ID: uuid.New(), Name: name})
		}
	}
	return nil
}

func (f *fakeSkillStore) idOf(name string) uuid.UUID {
	for _, skill := range f.skills {
		if skill.Name == name {
			return skill.ID
		}
	}
	return uuid.Nil
}
