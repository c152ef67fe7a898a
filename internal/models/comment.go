package models

import "time"

// Comment belongs to exactly one assignment and one author.
type Comment struct {
	ID           int64     `db:"id" json:"id"`
	Text         string    `db:"text" json:"text"`
	UserID       int64     `db:"user_id" json:"user_id"`
	AssignmentID int64     `db:"assignment_id" json:"assignment_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CommentDetail is a comment joined with its author row.
type CommentDetail struct {
	Comment
	AuthorName      string    `db:"author_name"`
	AuthorEmail     string    `db:"author_email"`
	AuthorRole      UserRole  `db:"author_role"`
	AuthorCreatedAt time.Time `db:"author_created_at"`
}

// CommentResponse is the public shape of a comment with its author nested.
type CommentResponse struct {
	Comment
	User UserResponse `json:"user"`
}

// Response converts a joined detail row into the nested response shape.
func (d *CommentDetail) Response() CommentResponse {
	return CommentResponse{
		Comment: d.Comment,
		User: UserResponse{
			ID:        d.UserID,
			Name:      d.AuthorName,
			Email:     d.AuthorEmail,
			Role:      d.AuthorRole,
			CreatedAt: d.AuthorCreatedAt,
		},
	}
}
