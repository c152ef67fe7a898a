package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abh2004/Variphi-assignment/internal/models"
)

func TestSubjectList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(int64(1), "Mathematics", nil).
		AddRow(int64(2), "Physics", "Mechanics")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description FROM subjects ORDER BY id ASC LIMIT 100 OFFSET 0")).
		WillReturnRows(rows)

	subjects, err := repo.List(context.Background(), models.SubjectFilter{})
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Mathematics", subjects[0].Name)
	assert.Nil(t, subjects[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectExistsByName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(`SELECT 1 FROM subjects WHERE LOWER\(name\) = LOWER\(\$1\) LIMIT 1`).
		WithArgs("Mathematics").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByName(context.Background(), "Mathematics", 0)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSubjectExistsByNameExcludesSelf(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(`SELECT 1 FROM subjects WHERE LOWER\(name\) = LOWER\(\$1\) AND id <> \$2 LIMIT 1`).
		WithArgs("Mathematics", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.ExistsByName(context.Background(), "Mathematics", 3)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSubjectCountAssignments(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM assignments WHERE subject_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountAssignments(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
