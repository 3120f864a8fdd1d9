package handlers

import (
	"net/http"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/dto"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/utils"
)

// CatalogHandler serves the read-mostly skill catalog
type CatalogHandler struct {
	svc *service.ProfileService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(svc *service.ProfileService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListSkills returns the full skill catalog
// @Summary List skills
// @Description All catalog skills, for profile pickers
// @Tags home
// @Produce json
// @Success 200 {object} dto.SkillListResponse "Skill catalog"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /home/skills [get]
func (h *CatalogHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	skills, err := h.svc.Catalog(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]dto.SkillItem, 0, len(skills))
	for _, skill := range skills {
		items = append(items, dto.SkillItem{ID: skill.ID.String(), Name: skill.Name})
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.SkillListResponse{Skills: items})
}
