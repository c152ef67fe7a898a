package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh2004/Variphi-assignment/internal/service"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
	"github.com/Abh2004/Variphi-assignment/pkg/response"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	service *service.CommentService
}

// NewCommentHandler constructs a comment handler.
func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// Create godoc
// @Summary Add a comment to an assignment
// @Tags Comments
// @Accept json
// @Produce json
// @Param payload body service.CreateCommentRequest true "Comment payload"
// @Success 201 {object} models.CommentResponse
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid comment payload"))
		return
	}

	comment, err := h.service.Create(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

// ListByAssignment godoc
// @Summary List comments for an assignment
// @Tags Comments
// @Produce json
// @Param assignment_id path int true "Assignment ID"
// @Success 200 {array} models.CommentResponse
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /comments/assignment/{assignment_id} [get]
func (h *CommentHandler) ListByAssignment(c *gin.Context) {
	assignmentID, err := idParam(c, "assignment_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := h.service.ListByAssignment(c.Request.Context(), claimsFromContext(c), assignmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comments)
}

// Delete godoc
// @Summary Delete a comment
// @Description Only the author or an admin may delete a comment
// @Tags Comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), claimsFromContext(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
