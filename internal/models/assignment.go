package models

import "time"

// AssignmentStatus is the lifecycle state of an assignment.
type AssignmentStatus string

const (
	StatusSubmitted  AssignmentStatus = "submitted"
	StatusAssigned   AssignmentStatus = "assigned"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusCompleted  AssignmentStatus = "completed"
	StatusReturned   AssignmentStatus = "returned"
)

// statusOrder positions each status on the linear lifecycle.
var statusOrder = map[AssignmentStatus]int{
	StatusSubmitted:  0,
	StatusAssigned:   1,
	StatusInProgress: 2,
	StatusCompleted:  3,
	StatusReturned:   4,
}

// Valid reports whether the status is a known lifecycle state.
func (s AssignmentStatus) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// CanTransitionTo reports whether next is the immediate successor of s on the
// linear lifecycle. Only consulted when strict transitions are enabled; the
// default mode accepts any status, matching the upstream behaviour.
func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	if !ok {
		return false
	}
	return to == from+1
}

// Assignment is a student submission, optionally assigned to a tutor.
// TutorID stays nil until an admin performs the assign operation, and
// ReturnedAt is set the first time the status reaches returned.
type Assignment struct {
	ID               int64            `db:"id" json:"id"`
	Title            string           `db:"title" json:"title"`
	Description      *string          `db:"description" json:"description"`
	SubmissionText   *string          `db:"submission_text" json:"submission_text"`
	FilePath         *string          `db:"file_path" json:"file_path"`
	SolutionFilePath *string          `db:"solution_file_path" json:"solution_file_path"`
	Status           AssignmentStatus `db:"status" json:"status"`
	StudentID        int64            `db:"student_id" json:"student_id"`
	TutorID          *int64           `db:"tutor_id" json:"tutor_id"`
	SubjectID        int64            `db:"subject_id" json:"subject_id"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
	ReturnedAt       *time.Time       `db:"returned_at" json:"returned_at"`
}

// AssignmentDetail is an assignment joined with its student, tutor and
// subject rows for API responses.
type AssignmentDetail struct {
	Assignment
	StudentName        string     `db:"student_name"`
	StudentEmail       string     `db:"student_email"`
	StudentCreatedAt   time.Time  `db:"student_created_at"`
	TutorName          *string    `db:"tutor_name"`
	TutorEmail         *string    `db:"tutor_email"`
	TutorCreatedAt     *time.Time `db:"tutor_created_at"`
	SubjectName        string     `db:"subject_name"`
	SubjectDescription *string    `db:"subject_description"`
}

// AssignmentResponse is the public shape of an assignment with nested
// participant and subject data.
type AssignmentResponse struct {
	Assignment
	Student UserResponse  `json:"student"`
	Tutor   *UserResponse `json:"tutor"`
	Subject Subject       `json:"subject"`
}

// Response converts a joined detail row into the nested response shape.
func (d *AssignmentDetail) Response() AssignmentResponse {
	resp := AssignmentResponse{
		Assignment: d.Assignment,
		Student: UserResponse{
			ID:        d.StudentID,
			Name:      d.StudentName,
			Email:     d.StudentEmail,
			Role:      RoleStudent,
			CreatedAt: d.StudentCreatedAt,
		},
		Subject: Subject{
			ID:          d.SubjectID,
			Name:        d.SubjectName,
			Description: d.SubjectDescription,
		},
	}
	if d.TutorID != nil && d.TutorName != nil && d.TutorEmail != nil {
		tutor := UserResponse{
			ID:    *d.TutorID,
			Name:  *d.TutorName,
			Email: *d.TutorEmail,
			Role:  RoleTutor,
		}
		if d.TutorCreatedAt != nil {
			tutor.CreatedAt = *d.TutorCreatedAt
		}
		resp.Tutor = &tutor
	}
	return resp
}

// AssignmentFilter scopes assignment listings. StudentID and TutorID are set
// by the service from the caller's role, never from request input.
type AssignmentFilter struct {
	StudentID *int64
	TutorID   *int64
	Status    *AssignmentStatus
	Skip      int
	Limit     int
}
