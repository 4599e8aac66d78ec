package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/macrodyn/solow_model_app/internal/apperrors"
	"github.com/macrodyn/solow_model_app/internal/core/domain"
	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/dto"
	"github.com/macrodyn/solow_model_app/internal/middleware"
	"github.com/macrodyn/solow_model_app/internal/platform/config"
	"github.com/macrodyn/solow_model_app/internal/utils"
)

// refreshCookieSeparator joins the user ID and the raw refresh token inside
// the cookie value. Tokens are hex-encoded so a dot can never collide.
const refreshCookieSeparator = "."

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	// 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}

	registerGoogleOAuthRoutes(r, cfg, services)
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.CreateUserRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (e.g., username exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user, returns an access token and sets the refresh token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	if err := h.issueTokens(c, user); err != nil {
		logger.Error("Failed to issue tokens on login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
}

// Refresh godoc
// @Summary Refresh access token
// @Description Rotates the refresh token cookie and returns a fresh access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookieValue, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token missing"})
		return
	}

	userID, rawToken, found := strings.Cut(cookieValue, refreshCookieSeparator)
	if !found || userID == "" || rawToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Malformed refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), userID, rawToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			h.clearRefreshCookie(c)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token expired, please log in again"})
			return
		}
		logger.Warn("Refresh token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	// Rotate: every successful refresh invalidates the previous token.
	if err := h.issueTokens(c, user); err != nil {
		logger.Error("Failed to issue tokens on refresh", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
}

// Logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and expires the cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookieValue, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err == nil {
		if userID, _, found := strings.Cut(cookieValue, refreshCookieSeparator); found && userID != "" {
			if clearErr := h.userService.ClearRefreshToken(c.Request.Context(), userID); clearErr != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to clear refresh token on logout",
					slog.String("error", clearErr.Error()))
			}
		}
	}

	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) issueTokens(c *gin.Context, user *domain.User) error {
	return issueAuthTokens(c, h.cfg, h.userService, h.tokenService, user)
}

// issueAuthTokens generates the access and refresh token pair, persists the
// refresh token hash and writes both the cookie and the JSON response. Shared
// by the local login and the OAuth flows.
func issueAuthTokens(c *gin.Context, cfg *config.Config, userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, user *domain.User) error {
	ctx := c.Request.Context()

	accessToken, accessExpiry, err := tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return err
	}

	refreshToken, refreshExpiry, err := tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return err
	}

	if err := userService.UpdateRefreshToken(ctx, user.UserID, utils.HashToken(refreshToken), refreshExpiry); err != nil {
		return err
	}

	maxAge := int(cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.RefreshTokenCookieName,
		user.UserID+refreshCookieSeparator+refreshToken,
		maxAge, cfg.RefreshTokenCookiePath, "", cfg.IsProduction, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: accessExpiry,
		User:      dto.ToUserResponse(user),
	})
	return nil
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
