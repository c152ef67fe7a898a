package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abh2004/Variphi-assignment/internal/models"
)

// CommentRepository persists assignment comments.
type CommentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository constructs the repository.
func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment and fills the generated id.
func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO comments (text, user_id, assignment_id, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &c.ID, query, c.Text, c.UserID, c.AssignmentID, c.CreatedAt); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// FindByID returns a comment by id.
func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	const query = `SELECT id, text, user_id, assignment_id, created_at FROM comments WHERE id = $1 LIMIT 1`
	var c models.Comment
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return &c, nil
}

// FindDetailByID returns a comment joined with its author.
func (r *CommentRepository) FindDetailByID(ctx context.Context, id int64) (*models.CommentDetail, error) {
	const query = `
SELECT c.id, c.text, c.user_id, c.assignment_id, c.created_at,
       u.name AS author_name, u.email AS author_email, u.role AS author_role, u.created_at AS author_created_at
FROM comments c
JOIN users u ON u.id = c.user_id
WHERE c.id = $1 LIMIT 1`
	var detail models.CommentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find comment detail: %w", err)
	}
	return &detail, nil
}

// ListByAssignment returns the assignment's comments with authors, ordered by
// creation time for display.
func (r *CommentRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]models.CommentDetail, error) {
	const query = `
SELECT c.id, c.text, c.user_id, c.assignment_id, c.created_at,
       u.name AS author_name, u.email AS author_email, u.role AS author_role, u.created_at AS author_created_at
FROM comments c
JOIN users u ON u.id = c.user_id
WHERE c.assignment_id = $1
ORDER BY c.created_at ASC`
	var details []models.CommentDetail
	if err := r.db.SelectContext(ctx, &details, query, assignmentID); err != nil {
		return nil, fmt.Errorf("list assignment comments: %w", err)
	}
	return details, nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deleted comment rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
