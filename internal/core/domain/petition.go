package domain

import "time"

// Petition is a shared petition document. Unlike processes, petitions are
// visible and editable by any authenticated user; the author is recorded for
// attribution only.
type Petition struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Body          string    `json:"body" bson:"body"`
	ProcessNumber string    `json:"process_number,omitempty" bson:"process_number,omitempty"`
	AuthorID      string    `json:"author_id" bson:"author_id"`
	AuthorName    string    `json:"author_name,omitempty" bson:"author_name,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
