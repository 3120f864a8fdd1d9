package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/dto"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
)

func TestListSkills(t *testing.T) {
	issuer := auth.NewTokenIssuer(testSecret, time.Hour)
	svc := service.NewProfileService(newMemUserStore(), newMemSkillStore("Cooking", "Guitar"), issuer)
	handler := NewCatalogHandler(svc)

	rec := httptest.NewRecorder()
	handler.ListSkills(rec, httptest.NewRequest(http.MethodGet, "/home/skills", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SkillListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Skills, 2)
	assert.Equal(t, "Cooking", resp.Skills[0].Name)
	assert.NotEmpty(t, resp.Skills[0].ID)

	rec = httptest.NewRecorder()
	handler.ListSkills(rec, httptest.NewRequest(http.MethodPost, "/home/skills", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
