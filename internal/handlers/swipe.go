package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/dto"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/middleware"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/utils"
)

// SwipeHandler records likes and completes mutual matches
type SwipeHandler struct {
	svc *service.ProfileService
}

// NewSwipeHandler creates a new SwipeHandler instance
func NewSwipeHandler(svc *service.ProfileService) *SwipeHandler {
	return &SwipeHandler{svc: svc}
}

// Like records a directed like against another user
// @Summary Like a user
// @Description Record a like; when reciprocal, both users gain a match and a notification
// @Tags swipe
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.LikeRequest true "Target username"
// @Success 200 {object} dto.LikeResponse "Like recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /swipe/like [post]
func (h *SwipeHandler) Like(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing user in context")
		return
	}

	var req dto.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Username == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "username is required")
		return
	}

	matched, err := h.svc.Like(r.Context(), user, req.Username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := dto.LikeResponse{Matched: matched, Message: "Like recorded"}
	if matched {
		resp.Message = "It's a match!"
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}
