package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/auth"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/config"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/dto"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/service"
	"github.com/mariyam-amjad/Build-Barter-A-skill-exchange-platform/internal/utils"
)

// GoogleAuthHandler handles Google OAuth authentication. A successful
// callback behaves like a password login: find-or-create the account by
// the Google-verified email and set the same session cookie.
type GoogleAuthHandler struct {
	svc          *service.ProfileService
	issuer       *auth.TokenIssuer
	oauth2Config *oauth2.Config
	frontendURL  string
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(svc *service.ProfileService, issuer *auth.TokenIssuer, cfg *config.GoogleOAuthConfig) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleAuthHandler{
		svc:          svc,
		issuer:       issuer,
		oauth2Config: oauth2Config,
		frontendURL:  cfg.FrontendURL,
	}
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Initiate Google OAuth login flow
// @Tags user
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Router /user/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.oauth2Config.ClientID == "" || h.oauth2Config.ClientSecret == "" {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Google OAuth not configured", "GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET are required")
		return
	}

	// state parameter for CSRF protection
	state := uuid.New().String()
	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{
		AuthURL: authURL,
		State:   state,
	})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Exchange the authorization code, find or create the account, set the session cookie
// @Tags user
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string false "State parameter for CSRF protection"
// @Success 302 "Redirect to frontend"
// @Failure 400 {object} dto.ErrorResponse "Missing authorization code"
// @Failure 401 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}

	token, err := h.oauth2Config.Exchange(r.Context(), code)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", err.Error())
		return
	}

	userInfo, err := h.getGoogleUserInfo(r, token.AccessToken)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get user info", err.Error())
		return
	}

	user, err := h.svc.RegisterGoogle(r.Context(), userInfo.GivenName, userInfo.FamilyName, userInfo.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	sessionToken, err := h.issuer.Issue(user.Username, user.Email)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}
	auth.SetSessionCookie(w, sessionToken, h.issuer.SessionTTL())

	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}

// getGoogleUserInfo fetches user information from Google
func (h *GoogleAuthHandler) getGoogleUserInfo(r *http.Request, accessToken string) (*googleOAuth2.Userinfo, error) {
	service, err := googleOAuth2.NewService(r.Context(), option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
	})))
	if err != nil {
		return nil, err
	}
	return service.Userinfo.Get().Do()
}
