package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/service"
	"github.com/Abh2004/Variphi-assignment/pkg/response"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler constructs a user handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// Me godoc
// @Summary Current user's profile
// @Tags Users
// @Produce json
// @Success 200 {object} models.UserResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	user, err := h.service.Get(c.Request.Context(), claims, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user.Response())
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param role query string false "Filter by role"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	filter := models.UserFilter{
		Skip:  intQuery(c, "skip", 0),
		Limit: intQuery(c, "limit", 100),
	}
	if raw := c.Query("role"); raw != "" {
		role := models.UserRole(raw)
		filter.Role = &role
	}

	users, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Get godoc
// @Summary Get user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.service.Get(c.Request.Context(), claimsFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user.Response())
}

// ListTutors godoc
// @Summary List all tutors
// @Tags Users
// @Produce json
// @Success 200 {array} models.UserResponse
// @Router /users/tutors/list [get]
func (h *UserHandler) ListTutors(c *gin.Context) {
	tutors, err := h.service.ListTutors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tutors)
}
