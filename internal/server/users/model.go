package users

import "time"

// User is an account on the board. ID is immutable once created; the
// password hash changes only through an explicit re-hash operation.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
