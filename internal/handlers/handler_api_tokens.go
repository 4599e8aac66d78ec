package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portssvc "github.com/macrodyn/solow_model_app/internal/core/ports/services"
	"github.com/macrodyn/solow_model_app/internal/handlers/dto"
	"github.com/macrodyn/solow_model_app/internal/middleware"
)

// APITokenHandler handles HTTP requests for API token operations.
type APITokenHandler struct {
	tokenSvc portssvc.APITokenSvc
}

// NewAPITokenHandler creates a new APITokenHandler.
func NewAPITokenHandler(tokenSvc portssvc.APITokenSvc) *APITokenHandler {
	return &APITokenHandler{tokenSvc: tokenSvc}
}

// registerAPITokenRoutes registers the API token routes.
func registerAPITokenRoutes(router *gin.RouterGroup, tokenSvc portssvc.APITokenSvc) {
	handler := NewAPITokenHandler(tokenSvc)

	tokensGroup := router.Group("/tokens")
	{
		tokensGroup.POST("", handler.CreateToken)
		tokensGroup.GET("", handler.ListTokens)
		tokensGroup.DELETE("/:id", handler.RevokeToken)
	}
}

// CreateToken godoc
// @Summary Create a new API token
// @Description Creates a new API token for the authenticated user. The token value is shown only once.
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAPITokenRequest true "Token creation details"
// @Success 201 {object} dto.CreateAPITokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /tokens [post]
func (h *APITokenHandler) CreateToken(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateAPITokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	tokenStr, token, err := h.tokenSvc.CreateToken(c.Request.Context(), creatorUserID, req.Name, req.ExpiryDuration())
	if err != nil {
		respondError(c, err, "Failed to create token")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateAPITokenResponse(tokenStr, *token))
}

// ListTokens godoc
// @Summary List API tokens
// @Description Lists token metadata for the authenticated user. Token values are never returned.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListAPITokensResponse
// @Failure 401 {object} ErrorResponse
// @Router /tokens [get]
func (h *APITokenHandler) ListTokens(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tokens, err := h.tokenSvc.ListTokens(c.Request.Context(), creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to list tokens")
		return
	}

	c.JSON(http.StatusOK, dto.ToAPITokenResponseList(tokens))
}

// RevokeToken godoc
// @Summary Revoke an API token
// @Description Revokes a token by ID, immediately invalidating it. Only the owner can revoke.
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Param id path string true "Token ID (UUID format)" format(uuid)
// @Success 204 "Token revoked successfully"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tokens/{id} [delete]
func (h *APITokenHandler) RevokeToken(c *gin.Context) {
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	tokenID := c.Param("id")
	if _, err := uuid.Parse(tokenID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid token ID"})
		return
	}

	if err := h.tokenSvc.RevokeToken(c.Request.Context(), creatorUserID, tokenID); err != nil {
		respondError(c, err, "Failed to revoke token")
		return
	}

	c.Status(http.StatusNoContent)
}
