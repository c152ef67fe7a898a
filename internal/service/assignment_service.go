package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/policy"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
)

const uploadTimestampLayout = "20060102150405"

type assignmentRepository interface {
	Create(ctx context.Context, a *models.Assignment) error
	FindByID(ctx context.Context, id int64) (*models.Assignment, error)
	FindDetailByID(ctx context.Context, id int64) (*models.AssignmentDetail, error)
	List(ctx context.Context, filter models.AssignmentFilter) ([]models.AssignmentDetail, error)
	Update(ctx context.Context, a *models.Assignment) error
}

type assignmentSubjectRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Subject, error)
}

type assignmentUserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

type uploadStore interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// Upload is an incoming file to persist alongside an assignment.
type Upload struct {
	Filename string
	Reader   io.Reader
}

// CreateAssignmentRequest captures the multipart form fields for a submission.
type CreateAssignmentRequest struct {
	Title          string  `form:"title" validate:"required"`
	Description    *string `form:"description"`
	SubmissionText *string `form:"submission_text"`
	SubjectID      int64   `form:"subject_id" validate:"required"`
}

// AssignRequest assigns a tutor, optionally overriding the resulting status.
type AssignRequest struct {
	TutorID int64                   `json:"tutor_id" validate:"required"`
	Status  models.AssignmentStatus `json:"status"`
}

// UpdateAssignmentRequest updates status and/or description.
type UpdateAssignmentRequest struct {
	Status      *models.AssignmentStatus `json:"status"`
	Description *string                  `json:"description"`
}

// ListAssignmentsRequest carries listing query params.
type ListAssignmentsRequest struct {
	Status *models.AssignmentStatus
	Skip   int
	Limit  int
}

// AssignmentService orchestrates policy checks, the status lifecycle and
// persistence for assignments. By default any status overwrite is accepted,
// matching the upstream behaviour; strictTransitions opts into enforcing the
// linear lifecycle order.
type AssignmentService struct {
	repo              assignmentRepository
	subjects          assignmentSubjectRepository
	users             assignmentUserRepository
	storage           uploadStore
	validator         *validator.Validate
	logger            *zap.Logger
	strictTransitions bool
}

// NewAssignmentService constructs the service.
func NewAssignmentService(
	repo assignmentRepository,
	subjects assignmentSubjectRepository,
	users assignmentUserRepository,
	storage uploadStore,
	validate *validator.Validate,
	logger *zap.Logger,
	strictTransitions bool,
) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{
		repo:              repo,
		subjects:          subjects,
		users:             users,
		storage:           storage,
		validator:         validate,
		logger:            logger,
		strictTransitions: strictTransitions,
	}
}

// Create submits a new assignment for the calling student. The optional file
// is written under student_{id}/ before the row is inserted; a failed insert
// can leave an orphaned file behind, which is accepted.
func (s *AssignmentService) Create(ctx context.Context, claims *models.JWTClaims, req CreateAssignmentRequest, file *Upload) (*models.AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	if _, err := s.subjects.FindByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Subject with ID %d not found", req.SubjectID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	assignment := &models.Assignment{
		Title:          req.Title,
		Description:    req.Description,
		SubmissionText: req.SubmissionText,
		Status:         models.StatusSubmitted,
		StudentID:      claims.UserID,
		SubjectID:      req.SubjectID,
	}

	if file != nil {
		stored, err := s.saveUpload(fmt.Sprintf("student_%d", claims.UserID), file.Filename, file.Reader)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store uploaded file")
		}
		assignment.FilePath = &stored
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}

	s.logger.Info("assignment created",
		zap.Int64("assignment_id", assignment.ID),
		zap.Int64("student_id", claims.UserID),
	)
	return s.detail(ctx, assignment.ID)
}

// List returns assignments visible to the caller: students see their own,
// tutors the ones assigned to them, admins everything.
func (s *AssignmentService) List(ctx context.Context, claims *models.JWTClaims, req ListAssignmentsRequest) ([]models.AssignmentResponse, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid status filter")
	}

	filter := models.AssignmentFilter{Status: req.Status, Skip: req.Skip, Limit: req.Limit}
	switch claims.Role {
	case models.RoleStudent:
		id := claims.UserID
		filter.StudentID = &id
	case models.RoleTutor:
		id := claims.UserID
		filter.TutorID = &id
	}

	details, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}

	responses := make([]models.AssignmentResponse, 0, len(details))
	for i := range details {
		responses = append(responses, details[i].Response())
	}
	return responses, nil
}

// Get returns one assignment after the read policy check.
func (s *AssignmentService) Get(ctx context.Context, claims *models.JWTClaims, id int64) (*models.AssignmentResponse, error) {
	detail, err := s.findDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewAssignment(claims, &detail.Assignment) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "You don't have permission to access this assignment")
	}

	resp := detail.Response()
	return &resp, nil
}

// Assign sets the tutor on an assignment. Admin-only (enforced at the
// route); the target must exist and hold the tutor role. The status is taken
// from the request, defaulting to assigned, and overwrites whatever status
// the assignment had.
func (s *AssignmentService) Assign(ctx context.Context, id int64, req AssignRequest) (*models.AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assign payload")
	}

	assignment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	tutor, err := s.users.FindByID(ctx, req.TutorID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tutor")
	}
	if err != nil || tutor.Role != models.RoleTutor {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Tutor with ID %d not found or is not a tutor", req.TutorID))
	}

	status := req.Status
	if status == "" {
		status = models.StatusAssigned
	}
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid assignment status")
	}
	if err := s.checkTransition(assignment.Status, status); err != nil {
		return nil, err
	}

	assignment.TutorID = &tutor.ID
	assignment.Status = status

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to assign tutor")
	}

	s.logger.Info("tutor assigned",
		zap.Int64("assignment_id", assignment.ID),
		zap.Int64("tutor_id", tutor.ID),
		zap.String("status", string(status)),
	)
	return s.detail(ctx, assignment.ID)
}

// UpdateStatus updates status and/or description. Tutors may only touch
// assignments assigned to them. Reaching returned stamps returned_at; no
// later status change clears it.
func (s *AssignmentService) UpdateStatus(ctx context.Context, claims *models.JWTClaims, id int64, req UpdateAssignmentRequest) (*models.AssignmentResponse, error) {
	assignment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanModifyAssignment(claims, assignment) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "You don't have permission to update this assignment")
	}

	if req.Status != nil {
		status := *req.Status
		if !status.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid assignment status")
		}
		if err := s.checkTransition(assignment.Status, status); err != nil {
			return nil, err
		}
		assignment.Status = status
		if status == models.StatusReturned {
			now := time.Now().UTC()
			assignment.ReturnedAt = &now
		}
	}

	if req.Description != nil {
		assignment.Description = req.Description
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update assignment")
	}
	return s.detail(ctx, assignment.ID)
}

// UploadSolution stores the tutor's solution file under tutor_{id}/ and
// forces the status to completed unless the assignment was already returned.
func (s *AssignmentService) UploadSolution(ctx context.Context, claims *models.JWTClaims, id int64, file *Upload) (*models.AssignmentResponse, error) {
	if file == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "solution file is required")
	}

	assignment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanModifyAssignment(claims, assignment) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "You don't have permission to update this assignment")
	}

	stored, err := s.saveUpload(fmt.Sprintf("tutor_%d", claims.UserID), "solution_"+file.Filename, file.Reader)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store solution file")
	}
	assignment.SolutionFilePath = &stored

	if assignment.Status != models.StatusReturned {
		assignment.Status = models.StatusCompleted
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update assignment")
	}

	s.logger.Info("solution uploaded",
		zap.Int64("assignment_id", assignment.ID),
		zap.Int64("tutor_id", claims.UserID),
	)
	return s.detail(ctx, assignment.ID)
}

func (s *AssignmentService) checkTransition(from, to models.AssignmentStatus) error {
	if !s.strictTransitions || from == to {
		return nil
	}
	if !from.CanTransitionTo(to) {
		return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("status transition from '%s' to '%s' is not allowed", from, to))
	}
	return nil
}

// saveUpload writes the file under subdir with a timestamp-prefixed name and
// returns the path stored in the database, e.g.
// "uploads/student_7/20250101120000_notes.pdf".
func (s *AssignmentService) saveUpload(subdir, filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", time.Now().Format(uploadTimestampLayout), filepath.Base(filename))
	rel := path.Join(subdir, name)
	if _, err := s.storage.SaveStream(rel, r); err != nil {
		return "", err
	}
	return path.Join("uploads", rel), nil
}

func (s *AssignmentService) find(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Assignment with ID %d not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	return assignment, nil
}

func (s *AssignmentService) findDetail(ctx context.Context, id int64) (*models.AssignmentDetail, error) {
	detail, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Assignment with ID %d not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	return detail, nil
}

func (s *AssignmentService) detail(ctx context.Context, id int64) (*models.AssignmentResponse, error) {
	detail, err := s.findDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := detail.Response()
	return &resp, nil
}
