package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abh2004/Variphi-assignment/internal/models"
)

var detailColumnNames = []string{
	"id", "title", "description", "submission_text", "file_path", "solution_file_path",
	"status", "student_id", "tutor_id", "subject_id", "created_at", "updated_at", "returned_at",
	"student_name", "student_email", "student_created_at",
	"tutor_name", "tutor_email", "tutor_created_at",
	"subject_name", "subject_description",
}

func detailRow(now time.Time, tutorID *int64) []driver.Value {
	var tutorName, tutorEmail, tutorCreated, tid driver.Value
	if tutorID != nil {
		tid = *tutorID
		tutorName = "Tutor"
		tutorEmail = "tutor@example.com"
		tutorCreated = now
	}
	return []driver.Value{
		int64(1), "Homework", nil, nil, nil, nil,
		string(models.StatusSubmitted), int64(2), tid, int64(1), now, now, nil,
		"Student", "student@example.com", now,
		tutorName, tutorEmail, tutorCreated,
		"Mathematics", nil,
	}
}

func TestAssignmentCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery("INSERT INTO assignments").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	a := &models.Assignment{Title: "Homework", Status: models.StatusSubmitted, StudentID: 2, SubjectID: 1}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, int64(5), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentFindByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "description", "submission_text", "file_path", "solution_file_path", "status", "student_id", "tutor_id", "subject_id", "created_at", "updated_at", "returned_at"}).
		AddRow(int64(1), "Homework", nil, nil, nil, nil, string(models.StatusSubmitted), int64(2), nil, int64(1), now, now, nil)
	mock.ExpectQuery("SELECT .* FROM assignments WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	a, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Homework", a.Title)
	assert.Nil(t, a.TutorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery("SELECT .* FROM assignments WHERE id").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAssignmentFindDetailByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(detailColumnNames).AddRow(detailRow(now, nil)...)
	mock.ExpectQuery(`(?s)SELECT a\.id,.*FROM assignments a.*WHERE a\.id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	detail, err := repo.FindDetailByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Student", detail.StudentName)
	assert.Equal(t, "Mathematics", detail.SubjectName)
	assert.Nil(t, detail.TutorName)

	resp := detail.Response()
	assert.Equal(t, "Student", resp.Student.Name)
	assert.Nil(t, resp.Tutor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentListFilters(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	now := time.Now()
	tutorID := int64(3)
	rows := sqlmock.NewRows(detailColumnNames).AddRow(detailRow(now, &tutorID)...)
	mock.ExpectQuery(`(?s)SELECT a\.id,.*FROM assignments a.*WHERE a\.tutor_id = \$1 AND a\.status = \$2`).
		WithArgs(tutorID, string(models.StatusAssigned)).
		WillReturnRows(rows)

	status := models.StatusAssigned
	details, err := repo.List(context.Background(), models.AssignmentFilter{TutorID: &tutorID, Status: &status})
	require.NoError(t, err)
	require.Len(t, details, 1)

	resp := details[0].Response()
	require.NotNil(t, resp.Tutor)
	assert.Equal(t, "Tutor", resp.Tutor.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentUpdate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectExec("UPDATE assignments SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tutorID := int64(3)
	a := &models.Assignment{ID: 1, Title: "Homework", Status: models.StatusAssigned, StudentID: 2, TutorID: &tutorID, SubjectID: 1}
	require.NoError(t, repo.Update(context.Background(), a))
	assert.False(t, a.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
