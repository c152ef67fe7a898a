package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Abh2004/Variphi-assignment/internal/models"
)

// SubjectRepository handles persistence for subjects.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository creates a new repository instance.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// List returns subjects with pagination.
func (r *SubjectRepository) List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := fmt.Sprintf("SELECT id, name, description FROM subjects ORDER BY id ASC LIMIT %d OFFSET %d", limit, skip)
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// FindByID returns a subject by id.
func (r *SubjectRepository) FindByID(ctx context.Context, id int64) (*models.Subject, error) {
	const query = `SELECT id, name, description FROM subjects WHERE id = $1 LIMIT 1`
	var subject models.Subject
	if err := r.db.GetContext(ctx, &subject, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find subject by id: %w", err)
	}
	return &subject, nil
}

// ExistsByName checks uniqueness of the subject name.
func (r *SubjectRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := "SELECT 1 FROM subjects WHERE LOWER(name) = LOWER($1)"
	args := []interface{}{name}
	if excludeID > 0 {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}

	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check subject name: %w", err)
	}
	return true, nil
}

// Create persists a new subject and fills the generated id.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	const query = `INSERT INTO subjects (name, description) VALUES ($1, $2) RETURNING id`
	if err := r.db.GetContext(ctx, &subject.ID, query, subject.Name, subject.Description); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

// Update modifies a subject.
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	const query = `UPDATE subjects SET name = :name, description = :description WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, subject); err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	return nil
}

// Delete removes a subject record.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}

// CountAssignments returns the number of assignments referencing the subject.
func (r *SubjectRepository) CountAssignments(ctx context.Context, id int64) (int, error) {
	const query = `SELECT COUNT(*) FROM assignments WHERE subject_id = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		return 0, fmt.Errorf("count subject assignments: %w", err)
	}
	return count, nil
}
