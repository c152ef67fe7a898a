package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/policy"
	appErrors "github.com/Abh2004/Variphi-assignment/pkg/errors"
)

type commentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	FindDetailByID(ctx context.Context, id int64) (*models.CommentDetail, error)
	ListByAssignment(ctx context.Context, assignmentID int64) ([]models.CommentDetail, error)
	Delete(ctx context.Context, id int64) error
}

type commentAssignmentRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Assignment, error)
}

// CreateCommentRequest adds a comment to an assignment.
type CreateCommentRequest struct {
	Text         string `json:"text" validate:"required"`
	AssignmentID int64  `json:"assignment_id" validate:"required"`
}

// CommentService handles comment workflows. Commenting and reading comments
// are limited to the assignment's participants.
type CommentService struct {
	repo        commentRepository
	assignments commentAssignmentRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewCommentService constructs the service.
func NewCommentService(repo commentRepository, assignments commentAssignmentRepository, validate *validator.Validate, logger *zap.Logger) *CommentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{repo: repo, assignments: assignments, validator: validate, logger: logger}
}

// Create adds a comment for a participant of the assignment.
func (s *CommentService) Create(ctx context.Context, claims *models.JWTClaims, req CreateCommentRequest) (*models.CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid comment payload")
	}

	assignment, err := s.findAssignment(ctx, req.AssignmentID)
	if err != nil {
		return nil, err
	}

	if !policy.CanComment(claims, assignment) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "You don't have permission to comment on this assignment")
	}

	comment := &models.Comment{
		Text:         req.Text,
		UserID:       claims.UserID,
		AssignmentID: req.AssignmentID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create comment")
	}

	detail, err := s.repo.FindDetailByID(ctx, comment.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load comment")
	}
	resp := detail.Response()
	return &resp, nil
}

// ListByAssignment returns an assignment's comments for a participant,
// ordered by creation time.
func (s *CommentService) ListByAssignment(ctx context.Context, claims *models.JWTClaims, assignmentID int64) ([]models.CommentResponse, error) {
	assignment, err := s.findAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if !policy.CanComment(claims, assignment) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "You don't have permission to view comments for this assignment")
	}

	details, err := s.repo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list comments")
	}

	responses := make([]models.CommentResponse, 0, len(details))
	for i := range details {
		responses = append(responses, details[i].Response())
	}
	return responses, nil
}

// Delete removes a comment. Only the author or an admin may delete.
func (s *CommentService) Delete(ctx context.Context, claims *models.JWTClaims, id int64) error {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Comment with ID %d not found", id))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load comment")
	}

	if !policy.CanDeleteComment(claims, comment) {
		return appErrors.Clone(appErrors.ErrForbidden, "You don't have permission to delete this comment")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete comment")
	}
	return nil
}

func (s *CommentService) findAssignment(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("Assignment with ID %d not found", id))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	return assignment, nil
}
