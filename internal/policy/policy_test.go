package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abh2004/Variphi-assignment/internal/models"
)

func claimsFor(id int64, role models.UserRole) *models.JWTClaims {
	return &models.JWTClaims{UserID: id, Role: role}
}

func TestAllowedAdminImplicit(t *testing.T) {
	assert.True(t, Allowed(models.RoleAdmin, models.RoleTutor))
	assert.True(t, Allowed(models.RoleAdmin, models.RoleStudent))
	assert.True(t, Allowed(models.RoleAdmin))
	assert.True(t, Allowed(models.RoleTutor, models.RoleTutor))
	assert.False(t, Allowed(models.RoleStudent, models.RoleTutor))
	assert.False(t, Allowed(models.RoleTutor))
}

func TestCanViewAssignment(t *testing.T) {
	tutorID := int64(5)
	owned := &models.Assignment{StudentID: 1, TutorID: &tutorID}
	unassigned := &models.Assignment{StudentID: 1}

	cases := []struct {
		name       string
		claims     *models.JWTClaims
		assignment *models.Assignment
		want       bool
	}{
		{"admin sees all", claimsFor(99, models.RoleAdmin), owned, true},
		{"student owner", claimsFor(1, models.RoleStudent), owned, true},
		{"student not owner", claimsFor(2, models.RoleStudent), owned, false},
		{"assigned tutor", claimsFor(5, models.RoleTutor), owned, true},
		{"other tutor", claimsFor(6, models.RoleTutor), owned, false},
		{"tutor on unassigned", claimsFor(5, models.RoleTutor), unassigned, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanViewAssignment(tc.claims, tc.assignment)
			assert.Equal(t, tc.want, got)

			// The read rule is exactly: admin, or owning student, or
			// assigned tutor. Cross-check against that expression.
			want := tc.claims.Role == models.RoleAdmin ||
				(tc.claims.Role == models.RoleStudent && tc.assignment.StudentID == tc.claims.UserID) ||
				(tc.claims.Role == models.RoleTutor && tc.assignment.TutorID != nil && *tc.assignment.TutorID == tc.claims.UserID)
			assert.Equal(t, want, got)
		})
	}
}

func TestCanModifyAssignment(t *testing.T) {
	tutorID := int64(5)
	a := &models.Assignment{StudentID: 1, TutorID: &tutorID}

	assert.True(t, CanModifyAssignment(claimsFor(99, models.RoleAdmin), a))
	assert.True(t, CanModifyAssignment(claimsFor(5, models.RoleTutor), a))
	assert.False(t, CanModifyAssignment(claimsFor(6, models.RoleTutor), a))
	assert.False(t, CanModifyAssignment(claimsFor(1, models.RoleStudent), a))
}

func TestCanDeleteComment(t *testing.T) {
	comment := &models.Comment{UserID: 3}

	assert.True(t, CanDeleteComment(claimsFor(3, models.RoleStudent), comment))
	assert.True(t, CanDeleteComment(claimsFor(99, models.RoleAdmin), comment))
	assert.False(t, CanDeleteComment(claimsFor(4, models.RoleTutor), comment))
}

func TestCanViewUser(t *testing.T) {
	assert.True(t, CanViewUser(claimsFor(3, models.RoleStudent), 3))
	assert.True(t, CanViewUser(claimsFor(1, models.RoleAdmin), 3))
	assert.False(t, CanViewUser(claimsFor(3, models.RoleStudent), 4))
	assert.False(t, CanViewUser(claimsFor(3, models.RoleTutor), 4))
}
