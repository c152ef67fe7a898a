package models

// Subject is a named category assignments belong to. Names are unique.
type Subject struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// SubjectFilter captures pagination for listing subjects.
type SubjectFilter struct {
	Skip  int
	Limit int
}
