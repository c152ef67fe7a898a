package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh2004/Variphi-assignment/internal/middleware"
	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/service"
	"github.com/Abh2004/Variphi-assignment/pkg/config"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
	"github.com/Abh2004/Variphi-assignment/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
	jwtCfg  config.JWTConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{service: svc, jwtCfg: jwtCfg}
}

// Register godoc
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Registration payload"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} response.Detail
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user.Response())
}

// Token godoc
// @Summary Authenticate and issue an access token
// @Description Form-encoded login; username carries the email address
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} response.Detail
// @Router /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	user, token, err := h.service.Login(c.Request.Context(), email, password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Cookie mirrors the bearer token for browser clients.
	c.SetCookie(middleware.AccessTokenCookie, token, int(h.jwtCfg.Expiration.Seconds()), "/", "", false, true)

	response.JSON(c, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserRole:    user.Role,
		UserID:      user.ID,
	})
}

// Logout godoc
// @Summary Clear the access token cookie
// @Description Tokens are stateless; logout only clears the client cookie
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Detail
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	response.JSON(c, http.StatusOK, response.Detail{Detail: "Successfully logged out"})
}
