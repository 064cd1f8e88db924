package users

import "errors"

// ErrNotFound is returned when no user matches the requested id.
var ErrNotFound = errors.New("user not found")

// User is a single record in the collection.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// IDPolicy controls how Create assigns ids to new users.
type IDPolicy string

const (
	// IDPolicyLength assigns len(collection)+1. After a delete this can
	// hand out an id that is still held by another record.
	IDPolicyLength IDPolicy = "length"
	// IDPolicySequence assigns one past the highest id ever handed out,
	// so ids are never reused.
	IDPolicySequence IDPolicy = "sequence"
)

// Valid reports whether p is a recognized policy.
func (p IDPolicy) Valid() bool {
	return p == IDPolicyLength || p == IDPolicySequence
}

// DefaultSeed returns the records present at startup.
func DefaultSeed() []User {
	return []User{
		{ID: 1, Name: "Juan", Email: "juan@email.com"},
		{ID: 2, Name: "Ana", Email: "ana@email.com"},
	}
}
