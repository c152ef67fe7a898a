package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Abh2004/Variphi-assignment/internal/models"
)

// detailColumns joins each assignment with its student, tutor and subject.
const detailColumns = `
SELECT a.id, a.title, a.description, a.submission_text, a.file_path, a.solution_file_path,
       a.status, a.student_id, a.tutor_id, a.subject_id, a.created_at, a.updated_at, a.returned_at,
       st.name AS student_name, st.email AS student_email, st.created_at AS student_created_at,
       tu.name AS tutor_name, tu.email AS tutor_email, tu.created_at AS tutor_created_at,
       s.name AS subject_name, s.description AS subject_description
FROM assignments a
JOIN users st ON st.id = a.student_id
LEFT JOIN users tu ON tu.id = a.tutor_id
JOIN subjects s ON s.id = a.subject_id`

// AssignmentRepository persists assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment and fills the generated id.
func (r *AssignmentRepository) Create(ctx context.Context, a *models.Assignment) error {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	const query = `INSERT INTO assignments (title, description, submission_text, file_path, status, student_id, subject_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.GetContext(ctx, &a.ID, query,
		a.Title, a.Description, a.SubmissionText, a.FilePath, a.Status, a.StudentID, a.SubjectID, a.CreatedAt, a.UpdatedAt); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// FindByID returns a bare assignment row.
func (r *AssignmentRepository) FindByID(ctx context.Context, id int64) (*models.Assignment, error) {
	const query = `SELECT id, title, description, submission_text, file_path, solution_file_path, status, student_id, tutor_id, subject_id, created_at, updated_at, returned_at FROM assignments WHERE id = $1 LIMIT 1`
	var a models.Assignment
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find assignment by id: %w", err)
	}
	return &a, nil
}

// FindDetailByID returns an assignment joined with its relations.
func (r *AssignmentRepository) FindDetailByID(ctx context.Context, id int64) (*models.AssignmentDetail, error) {
	query := detailColumns + " WHERE a.id = $1 LIMIT 1"
	var detail models.AssignmentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find assignment detail: %w", err)
	}
	return &detail, nil
}

// List returns joined assignment rows matching the filter.
func (r *AssignmentRepository) List(ctx context.Context, filter models.AssignmentFilter) ([]models.AssignmentDetail, error) {
	var conditions []string
	var args []interface{}

	if filter.StudentID != nil {
		conditions = append(conditions, fmt.Sprintf("a.student_id = $%d", len(args)+1))
		args = append(args, *filter.StudentID)
	}
	if filter.TutorID != nil {
		conditions = append(conditions, fmt.Sprintf("a.tutor_id = $%d", len(args)+1))
		args = append(args, *filter.TutorID)
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}

	query := detailColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY a.id ASC LIMIT %d OFFSET %d", limit, skip)

	var details []models.AssignmentDetail
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return details, nil
}

// Update persists mutable assignment fields.
func (r *AssignmentRepository) Update(ctx context.Context, a *models.Assignment) error {
	a.UpdatedAt = time.Now().UTC()
	const query = `UPDATE assignments SET title = :title, description = :description, submission_text = :submission_text,
		file_path = :file_path, solution_file_path = :solution_file_path, status = :status,
		tutor_id = :tutor_id, updated_at = :updated_at, returned_at = :returned_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}
