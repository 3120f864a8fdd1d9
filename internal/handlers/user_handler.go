package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/dto"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/middleware"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/utils"
)

// UserHandler handles registration, login and profile HTTP requests
type UserHandler struct {
	svc    *service.ProfileService
	issuer *auth.TokenIssuer
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(svc *service.ProfileService, issuer *auth.TokenIssuer) *UserHandler {
	return &UserHandler{svc: svc, issuer: issuer}
}

// writeServiceError maps the service error taxonomy to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.WriteErrorResponse(w, http.StatusConflict, "Conflict", err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create an account; the username is generated server-side
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.RegisterResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Input criteria not followed"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.Printf("user created: %s", user.Username)
	utils.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Message:  "User created !",
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password; sets the session cookie
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.ProfileResponse "Composed profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Wrong password or email address"
// @Failure 404 {object} dto.ErrorResponse "User does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.ClearSessionCookie(w)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		auth.ClearSessionCookie(w)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	profile, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// a failed login never leaves a stale credential behind
		auth.ClearSessionCookie(w)
		writeServiceError(w, err)
		return
	}

	auth.SetSessionCookie(w, token, h.issuer.SessionTTL())
	log.Printf("user logged in: %s", profile.Username)
	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

// Logout clears the session
// @Summary Logout user
// @Description Clear the session cookie
// @Tags user
// @Produce json
// @Success 200 {object} dto.MessageResponse "Logged out"
// @Router /user/logout [post]
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// clearing always happens, whatever else this handler grows
	auth.ClearSessionCookie(w)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logged out successfully !"})
}

// ViewProfile fetches a profile by id or username
// @Summary View a profile
// @Description Resolve a user by id or username; skills and interests are full catalog entries
// @Tags user
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.ProfileViewRequest true "Profile selector"
// @Success 200 {object} dto.ProfileViewResponse "Composed profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /user/profile [post]
func (h *UserHandler) ViewProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ProfileViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	profile, err := h.svc.ViewProfile(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

// EditProfile replaces the caller's editable profile fields
// @Summary Edit profile
// @Description Replace fname/lname/email/username/bio/skills/interests; reissues the session token
// @Tags user
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.EditProfileRequest true "Profile replacement"
// @Success 200 {object} dto.MessageResponse "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid email or username"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Username or email taken"
// @Router /user/editProfile [put]
func (h *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing user in context")
		return
	}

	var req dto.EditProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	token, err := h.svc.EditProfile(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// an edit of identity-bearing fields invalidates the prior session
	auth.ClearSessionCookie(w)
	auth.SetSessionCookie(w, token, h.issuer.SessionTTL())
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Profile updated successfully"})
}

// UpdateSkills unions named skills into the caller's offered set
// @Summary Add skills
// @Description Accepts a single name or a list; unknown names are dropped
// @Tags user
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.UpdateSkillsRequest true "Skill names"
// @Success 200 {object} dto.MessageResponse "Skills updated"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /user/updateSkills [post]
func (h *UserHandler) UpdateSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing user in context")
		return
	}

	var req dto.UpdateSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.svc.AddSkills(r.Context(), user.ID, req.Skills); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Skills updated successfully."})
}

// UpdateInterests unions named skills into the caller's sought set
// @Summary Add interests
// @Description Accepts a single name or a list; unknown names are dropped
// @Tags user
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.UpdateInterestsRequest true "Interest names"
// @Success 200 {object} dto.MessageResponse "Interests updated"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /user/updateInterests [post]
func (h *UserHandler) UpdateInterests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing user in context")
		return
	}

	var req dto.UpdateInterestsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.svc.AddInterests(r.Context(), user.ID, req.Interests); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Interests updated successfully."})
}

// GetMatches lists the caller's mutual matches
// @Summary List matches
// @Description Resolve the caller's match list to counterpart summaries; an empty list is a success
// @Tags user
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.MatchListResponse "Match list"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /user/getMatches [get]
func (h *UserHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing user in context")
		return
	}

	matches, err := h.svc.Matches(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := dto.MatchListResponse{Matches: matches}
	if len(matches) == 0 {
		// no matches yet is a successful outcome, not an error
		resp.Matches = []dto.MatchItem{}
		resp.Message = "No matches yet :("
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// GetNotifications returns the caller's notification list
// @Summary List notifications
// @Description Returns the notifications already attached to the authenticated user
// @Tags user
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.NotificationsResponse "Notification list"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /user/getNotifications [get]
func (h *UserHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// the request gate already loaded the full user; no extra lookup
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "missing user in context")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NotificationsResponse{
		Notifications: service.NotificationItems(user.Notifications),
	})
}
