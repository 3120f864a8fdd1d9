package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/dto"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/models"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/storage"
)

// emailPattern is the basic local@domain.tld shape accepted at
// registration and profile edit.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// maxUsernameAttempts bounds the generate-and-check loop. The store's
// unique index is the real guarantee; running out of attempts means
// the candidate space is exhausted beyond reason.
const maxUsernameAttempts = 8

// ProfileService orchestrates registration, login, profile views and
// edits, skill/interest mutation and match resolution. It holds no
// per-request state; every call round-trips to the stores.
type ProfileService struct {
	users  storage.UserStore
	skills storage.SkillStore
	issuer *auth.TokenIssuer
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(users storage.UserStore, skills storage.SkillStore, issuer *auth.TokenIssuer) *ProfileService {
	return &ProfileService{users: users, skills: skills, issuer: issuer}
}

// Register validates the input, generates a unique username, hashes the
// password and creates the user. All-or-nothing: a failed validation or
// insert creates no record.
func (s *ProfileService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	// bounds count characters, not bytes
	if req.FName == "" || utf8.RuneCountInString(req.FName) >= 20 {
		return nil, fmt.Errorf("%w: fname must be non-empty and under 20 characters", ErrValidation)
	}
	if req.LName == "" || utf8.RuneCountInString(req.LName) >= 20 {
		return nil, fmt.Errorf("%w: lname must be non-empty and under 20 characters", ErrValidation)
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if n := utf8.RuneCountInString(req.Password); n <= 6 || n >= 20 {
		return nil, fmt.Errorf("%w: password must be between 7 and 19 characters", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.createWithGeneratedUsername(ctx, func(username string) *models.User {
		return &models.User{
			ID:           uuid.New(),
			Username:     username,
			FName:        req.FName,
			LName:        req.LName,
			Email:        req.Email,
			PasswordHash: string(hash),
		}
	})
}

// RegisterGoogle finds or creates an account for a Google-verified
// email. Created accounts get a generated username and an unusable
// random password, so password login stays closed until set explicitly.
func (s *ProfileService) RegisterGoogle(ctx context.Context, fname, lname, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.createWithGeneratedUsername(ctx, func(username string) *models.User {
		return &models.User{
			ID:           uuid.New(),
			Username:     username,
			FName:        fname,
			LName:        lname,
			Email:        email,
			PasswordHash: string(hash),
		}
	})
}

// createWithGeneratedUsername runs the bounded generate-check-insert
// loop. A username unique violation regenerates and retries; an email
// violation is a real conflict and surfaces immediately.
func (s *ProfileService) createWithGeneratedUsername(ctx context.Context, build func(username string) *models.User) (*models.User, error) {
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		username := generateUsername()

		// best-effort pre-check; the unique index below is the real one
		if _, err := s.users.FindByUsername(ctx, username); err == nil {
			continue
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		user := build(username)
		err := s.users.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if errors.Is(err, storage.ErrDuplicateUsername) {
			continue
		}
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}
	return nil, fmt.Errorf("could not allocate a unique username after %d attempts", maxUsernameAttempts)
}

// Login verifies the credentials and composes the full profile view
// plus a fresh session token. The raw password never appears in any
// failure message.
func (s *ProfileService) Login(ctx context.Context, email, password string) (*dto.ProfileResponse, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: user does not exist", ErrNotFound)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%w: wrong password or email address", ErrUnauthorized)
	}

	namesByID, err := s.skillNames(ctx)
	if err != nil {
		return nil, "", err
	}

	matchNames, err := s.resolveMatchUsernames(ctx, user.Matches)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(user.Username, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	profile := &dto.ProfileResponse{
		FName:         user.FName,
		LName:         user.LName,
		Username:      user.Username,
		Email:         user.Email,
		Skills:        resolveNames(user.Skills, namesByID),
		Interests:     resolveNames(user.Interests, namesByID),
		Matches:       matchNames,
		Bio:           user.Bio,
		Notifications: NotificationItems(user.Notifications),
	}
	return profile, token, nil
}

// ViewProfile resolves a user by id or username and composes the view
// with full catalog entries for skills and interests.
func (s *ProfileService) ViewProfile(ctx context.Context, sel dto.ProfileViewRequest) (*dto.ProfileViewResponse, error) {
	var (
		user *models.User
		err  error
	)
	switch {
	case sel.ID != "":
		id, parseErr := uuid.Parse(sel.ID)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		user, err = s.users.FindByID(ctx, id)
	case sel.Username != "":
		user, err = s.users.FindByUsername(ctx, sel.Username)
	default:
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	catalog, err := s.skills.All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Skill, len(catalog))
	for _, skill := range catalog {
		byID[skill.ID] = skill
	}

	matchNames, err := s.resolveMatchUsernames(ctx, user.Matches)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileViewResponse{
		FName:         user.FName,
		LName:         user.LName,
		Username:      user.Username,
		Email:         user.Email,
		Skills:        resolveItems(user.Skills, byID),
		Interests:     resolveItems(user.Interests, byID),
		Matches:       matchNames,
		Bio:           user.Bio,
		Notifications: NotificationItems(user.Notifications),
	}, nil
}

// EditProfile replaces the named fields and returns a fresh session
// token bound to the (possibly new) username/email pair. Conflicts are
// only raised when another user owns the requested username or email.
func (s *ProfileService) EditProfile(ctx context.Context, userID uuid.UUID, req dto.EditProfileRequest) (string, error) {
	if !emailPattern.MatchString(req.Email) {
		return "", fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if n := utf8.RuneCountInString(req.Username); n < 3 || n > 15 {
		return "", fmt.Errorf("%w: username should be between 3 and 15 characters in length", ErrValidation)
	}

	taken, err := s.users.UsernameTaken(ctx, req.Username, userID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: username is already taken", ErrConflict)
	}

	taken, err = s.users.EmailTaken(ctx, req.Email, userID)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: email is already registered", ErrConflict)
	}

	skillIDs, err := s.catalogIDs(ctx, req.Skills)
	if err != nil {
		return "", err
	}
	interestIDs, err := s.catalogIDs(ctx, req.Interests)
	if err != nil {
		return "", err
	}

	err = s.users.UpdateProfile(ctx, userID, storage.ProfileUpdate{
		FName:     req.FName,
		LName:     req.LName,
		Email:     req.Email,
		Username:  req.Username,
		Bio:       req.Bio,
		Skills:    skillIDs,
		Interests: interestIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateUsername):
			return "", fmt.Errorf("%w: username is already taken", ErrConflict)
		case errors.Is(err, storage.ErrDuplicateEmail):
			return "", fmt.Errorf("%w: email is already registered", ErrConflict)
		case errors.Is(err, storage.ErrNotFound):
			return "", fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return "", err
	}

	token, err := s.issuer.Issue(req.Username, req.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// AddSkills resolves skill names to catalog ids and unions them into
// the user's offered set. Unknown names are silently dropped.
func (s *ProfileService) AddSkills(ctx context.Context, userID uuid.UUID, names []string) error {
	ids, err := s.lookupByName(ctx, names, "skills")
	if err != nil {
		return err
	}
	return s.users.AddSkills(ctx, userID, ids)
}

// AddInterests is AddSkills for the sought set.
func (s *ProfileService) AddInterests(ctx context.Context, userID uuid.UUID, names []string) error {
	ids, err := s.lookupByName(ctx, names, "interests")
	if err != nil {
		return err
	}
	return s.users.AddInterests(ctx, userID, ids)
}

func (s *ProfileService) lookupByName(ctx context.Context, names []string, field string) ([]uuid.UUID, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: missing required field %s", ErrValidation, field)
	}
	var ids []uuid.UUID
	for _, name := range names {
		skill, err := s.skills.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue // lenient-input policy: a typo is not an error
			}
			return nil, err
		}
		ids = append(ids, skill.ID)
	}
	return ids, nil
}

// Matches resolves the user's match list to counterpart summaries,
// preserving list order and dropping references to deleted users.
func (s *ProfileService) Matches(ctx context.Context, userID uuid.UUID) ([]dto.MatchItem, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	matches := make([]dto.MatchItem, 0, len(user.Matches))
	for _, id := range user.Matches {
		counterpart, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, dto.MatchItem{
			Name:     counterpart.DisplayName(),
			Username: counterpart.Username,
		})
	}
	return matches, nil
}

// Like records a directed like from the actor to the named user. The
// like that completes a reciprocal pair writes the match into both
// lists and notifies both users, exactly once; repeat likes are no-ops.
func (s *ProfileService) Like(ctx context.Context, actor *models.User, targetUsername string) (bool, error) {
	target, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return false, err
	}
	if target.ID == actor.ID {
		return false, fmt.Errorf("%w: cannot like yourself", ErrValidation)
	}

	mutual, err := s.users.AddLike(ctx, actor.ID, target.ID)
	if err != nil {
		return false, err
	}
	if !mutual {
		return false, nil
	}

	if err := s.users.AddMatch(ctx, actor.ID, target.ID); err != nil {
		return false, err
	}
	now := time.Now()
	for _, pair := range []struct {
		to      uuid.UUID
		matched string
	}{
		{actor.ID, target.Username},
		{target.ID, actor.Username},
	} {
		n := models.Notification{
			Type:      "match",
			Message:   fmt.Sprintf("You matched with %s!", pair.matched),
			CreatedAt: now,
		}
		if err := s.users.AddNotification(ctx, pair.to, n); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Catalog returns the full skill catalog.
func (s *ProfileService) Catalog(ctx context.Context) ([]models.Skill, error) {
	return s.skills.All(ctx)
}

// --- helpers ---

func (s *ProfileService) skillNames(ctx context.Context) (map[uuid.UUID]string, error) {
	catalog, err := s.skills.All(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(catalog))
	for _, skill := range catalog {
		names[skill.ID] = skill.Name
	}
	return names, nil
}

// catalogIDs parses ids and keeps only those present in the catalog,
// preserving the invariant that user records never reference unknown
// skills.
func (s *ProfileService) catalogIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	catalog, err := s.skills.All(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(catalog))
	for _, skill := range catalog {
		known[skill.ID] = true
	}
	var ids []uuid.UUID
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil || !known[id] {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *ProfileService) resolveMatchUsernames(ctx context.Context, ids []uuid.UUID) ([]string, error) {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue // broken reference, degrade gracefully
			}
			return nil, err
		}
		names = append(names, user.Username)
	}
	return names, nil
}

func resolveNames(ids []uuid.UUID, namesByID map[uuid.UUID]string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := namesByID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

func resolveItems(ids []uuid.UUID, byID map[uuid.UUID]models.Skill) []dto.SkillItem {
	items := make([]dto.SkillItem, 0, len(ids))
	for _, id := range ids {
		if skill, ok := byID[id]; ok {
			items = append(items, dto.SkillItem{ID: skill.ID.String(), Name: skill.Name})
		}
	}
	return items
}

// NotificationItems converts stored notifications to their API shape.
func NotificationItems(list []models.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationItem{
			Type:      n.Type,
			Message:   n.Message,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return items
}
