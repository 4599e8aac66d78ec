package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/middleware"
	"github.com/macrodyn/solow_model_app/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler handles Google OAuth related requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes sets up the Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token, cfg)

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.GET("/callback", h.CallbackGoogle)
		google.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// ExchangeCodeRequest defines the expected JSON body for the exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginGoogle godoc
// @Summary Start Google login
// @Description Redirects to Google's consent screen with a CSRF state cookie.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google login"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 300, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// CallbackGoogle godoc
// @Summary Google OAuth callback
// @Description Validates the state cookie, exchanges the code and signs the user in.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "OAuth state mismatch"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	h.signInWithCode(c, code)
}

// ExchangeCodeGoogle godoc
// @Summary Exchange authorization code for access token
// @Description Accepts the authorization code obtained by the frontend, validates it with Google and signs the user in.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	h.signInWithCode(c, req.Code)
}

// signInWithCode exchanges the authorization code, validates the identity,
// resolves it to a local user and issues the application tokens.
func (h *GoogleOAuthHandler) signInWithCode(c *gin.Context, code string) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google identity"})
		return
	}

	info := domain.GoogleUserInfo{
		ID:    payload.Subject,
		Email: stringClaim(payload.Claims, "email"),
		Name:  stringClaim(payload.Claims, "name"),
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.VerifiedEmail = verified
	}
	if info.Email == "" {
		// Fall back to the userinfo endpoint when the ID token is sparse.
		fetched, err := h.googleOAuthService.GetUserInfo(ctx, oauth2Token)
		if err != nil {
			logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to retrieve user info from Google"})
			return
		}
		info = *fetched
	}

	user, err := h.userService.GetOrCreateUserByProvider(ctx, info)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	if err := issueAuthTokens(c, h.cfg, h.userService, h.tokenService, user); err != nil {
		logger.Error("Failed to issue tokens after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
