package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/dto"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/models"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
)

func newSwipeFixture(t *testing.T) (*SwipeHandler, *memUserStore, *models.User, *models.User) {
	t.Helper()
	users := newMemUserStore()
	userHandler, _ := newTestHandler(users, newMemSkillStore())
	alice := contextUser(t, users, doRegister(t, userHandler, "alice@example.com"))
	bob := contextUser(t, users, doRegister(t, userHandler, "bob@example.com"))

	issuer := auth.NewTokenIssuer(testSecret, time.Hour)
	svc := service.NewProfileService(users, newMemSkillStore(), issuer)
	return NewSwipeHandler(svc), users, alice, bob
}

func doLike(t *testing.T, handler *SwipeHandler, actor *models.User, target string) (*httptest.ResponseRecorder, dto.LikeResponse) {
	t.Helper()
	body := `{"username":"` + target + `"}`
	req := withContextUser(httptest.NewRequest(http.MethodPost, "/swipe/like", strings.NewReader(body)), actor)
	rec := httptest.NewRecorder()
	handler.Like(rec, req)

	var resp dto.LikeResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestLikeOneSided(t *testing.T) {
	handler, _, alice, bob := newSwipeFixture(t)

	rec, resp := doLike(t, handler, alice, bob.Username)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.Matched)
	assert.Equal(t, "Like recorded", resp.Message)
}

func TestLikeMutual(t *testing.T) {
	handler, users, alice, bob := newSwipeFixture(t)

	rec, _ := doLike(t, handler, alice, bob.Username)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := doLike(t, handler, bob, alice.Username)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Matched)
	assert.Equal(t, "It's a match!", resp.Message)

	stored, err := users.FindByUsername(context.Background(), alice.Username)
	require.NoError(t, err)
	require.Len(t, stored.Matches, 1)
	assert.Equal(t, bob.ID, stored.Matches[0])
	require.Len(t, stored.Notifications, 1)
	assert.Contains(t, stored.Notifications[0].Message, bob.Username)
}

func TestLikeRepeatAfterMatch(t *testing.T) {
	handler, users, alice, bob := newSwipeFixture(t)

	doLike(t, handler, alice, bob.Username)
	rec, resp := doLike(t, handler, bob, alice.Username)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Matched)

	rec, resp = doLike(t, handler, bob, alice.Username)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, resp.Matched)
	assert.Equal(t, "Like recorded", resp.Message)

	stored, err := users.FindByUsername(context.Background(), alice.Username)
	require.NoError(t, err)
	assert.Len(t, stored.Matches, 1)
	assert.Len(t, stored.Notifications, 1)
}

func TestLikeUnknownUser(t *testing.T) {
	handler, _, alice, _ := newSwipeFixture(t)

	rec, _ := doLike(t, handler, alice, "ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikeSelf(t *testing.T) {
	handler, _, alice, _ := newSwipeFixture(t)

	rec, _ := doLike(t, handler, alice, alice.Username)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeMissingUsername(t *testing.T) {
	handler, _, alice, _ := newSwipeFixture(t)

	req := withContextUser(httptest.NewRequest(http.MethodPost, "/swipe/like", strings.NewReader(`{}`)), alice)
	rec := httptest.NewRecorder()
	handler.Like(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLikeRequiresContextUser(t *testing.T) {
	handler, _, _, _ := newSwipeFixture(t)

	rec := httptest.NewRecorder()
	handler.Like(rec, httptest.NewRequest(http.MethodPost, "/swipe/like", strings.NewReader(`{"username":"x"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
