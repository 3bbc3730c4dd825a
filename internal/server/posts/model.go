package posts

import "time"

// Post is a content record on the board. OwnerID is set at creation and
// never reassigned.
type Post struct {
	ID        string
	OwnerID   string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
