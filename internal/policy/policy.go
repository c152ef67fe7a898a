// Package policy holds the pure allow/deny decisions for the API. Route-level
// role gates and resource-level ownership checks both live here so services
// and middleware share one rule set.
package policy

import "github.com/Abh2004/Variphi-assignment/internal/models"

// Allowed reports whether the role is a member of the allowed set. Admin
// satisfies every role gate, so callers never list it explicitly.
func Allowed(role models.UserRole, allowed ...models.UserRole) bool {
	if role == models.RoleAdmin {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// CanViewAssignment applies the read rule: admins see everything, students
// only their own submissions, tutors only assignments assigned to them.
func CanViewAssignment(claims *models.JWTClaims, a *models.Assignment) bool {
	switch claims.Role {
	case models.RoleAdmin:
		return true
	case models.RoleStudent:
		return a.StudentID == claims.UserID
	case models.RoleTutor:
		return a.TutorID != nil && *a.TutorID == claims.UserID
	}
	return false
}

// CanModifyAssignment applies the status/solution rule: admins always, tutors
// only when the assignment is assigned to them. Students never mutate status.
func CanModifyAssignment(claims *models.JWTClaims, a *models.Assignment) bool {
	switch claims.Role {
	case models.RoleAdmin:
		return true
	case models.RoleTutor:
		return a.TutorID != nil && *a.TutorID == claims.UserID
	}
	return false
}

// CanComment applies the participant rule for creating and reading comments:
// the owning student, the assigned tutor, or an admin.
func CanComment(claims *models.JWTClaims, a *models.Assignment) bool {
	return CanViewAssignment(claims, a)
}

// CanDeleteComment allows the comment author or an admin.
func CanDeleteComment(claims *models.JWTClaims, c *models.Comment) bool {
	return claims.Role == models.RoleAdmin || c.UserID == claims.UserID
}

// CanViewUser allows self or admin.
func CanViewUser(claims *models.JWTClaims, userID int64) bool {
	return claims.Role == models.RoleAdmin || claims.UserID == userID
}
