package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/service"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
	"github.com/Abh2004/Variphi-assignment/pkg/response"
)

// AssignmentHandler handles assignment endpoints.
type AssignmentHandler struct {
	service *service.AssignmentService
}

// NewAssignmentHandler constructs an assignment handler.
func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// Create godoc
// @Summary Submit a new assignment
// @Description Multipart form with an optional file attachment
// @Tags Assignments
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param submission_text formData string false "Submission text"
// @Param subject_id formData int true "Subject ID"
// @Param file formData file false "Attachment"
// @Success 201 {object} models.AssignmentResponse
// @Failure 400 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}

	upload, closeUpload, err := formUpload(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	if closeUpload != nil {
		defer closeUpload()
	}

	assignment, err := h.service.Create(c.Request.Context(), claimsFromContext(c), req, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// List godoc
// @Summary List assignments visible to the caller
// @Tags Assignments
// @Produce json
// @Param status query string false "Filter by status"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.AssignmentResponse
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	req := service.ListAssignmentsRequest{
		Skip:  intQuery(c, "skip", 0),
		Limit: intQuery(c, "limit", 100),
	}
	if raw := c.Query("status"); raw != "" {
		status := models.AssignmentStatus(raw)
		req.Status = &status
	}

	assignments, err := h.service.List(c.Request.Context(), claimsFromContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments)
}

// Get godoc
// @Summary Get assignment by id
// @Tags Assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} models.AssignmentResponse
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	assignment, err := h.service.Get(c.Request.Context(), claimsFromContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// Assign godoc
// @Summary Assign a tutor to an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param payload body service.AssignRequest true "Assign payload"
// @Success 200 {object} models.AssignmentResponse
// @Failure 404 {object} response.Detail
// @Router /assignments/{id}/assign [put]
func (h *AssignmentHandler) Assign(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assign payload"))
		return
	}

	assignment, err := h.service.Assign(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// UpdateStatus godoc
// @Summary Update assignment status and/or description
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param payload body service.UpdateAssignmentRequest true "Update payload"
// @Success 200 {object} models.AssignmentResponse
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /assignments/{id}/status [put]
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid update payload"))
		return
	}

	assignment, err := h.service.UpdateStatus(c.Request.Context(), claimsFromContext(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// UploadSolution godoc
// @Summary Upload a solution file
// @Tags Assignments
// @Accept mpfd
// @Produce json
// @Param id path int true "Assignment ID"
// @Param file formData file true "Solution file"
// @Success 200 {object} models.AssignmentResponse
// @Failure 400 {object} response.Detail
// @Failure 403 {object} response.Detail
// @Failure 404 {object} response.Detail
// @Router /assignments/{id}/solution [put]
func (h *AssignmentHandler) UploadSolution(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	upload, closeUpload, err := formUpload(c, "file")
	if err != nil {
		response.Error(c, err)
		return
	}
	if upload == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "solution file is required"))
		return
	}
	defer closeUpload()

	assignment, err := h.service.UploadSolution(c.Request.Context(), claimsFromContext(c), id, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignment)
}

// formUpload opens the named multipart file if present. A missing file is not
// an error; callers decide whether the upload is required.
func formUpload(c *gin.Context, field string) (*service.Upload, func() error, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid file upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to read uploaded file")
	}
	return &service.Upload{Filename: header.Filename, Reader: file}, file.Close, nil
}
