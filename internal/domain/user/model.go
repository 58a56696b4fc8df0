package user

import (
	"github.com/agencyhub/agencyhub/internal/types"
)

// User is an agency staff member. Tasks, leads, and projects reference
// users through their assigned_to fields.
type User struct {
	// ID is the unique identifier for the user
	ID string `db:"id" json:"id"`

	// Name is the display name of the user
	Name string `db:"name" json:"name"`

	// Email is the login/contact email, unique within an agency
	Email string `db:"email" json:"email"`

	// Role controls what the user can do within the agency
	Role types.UserRole `db:"role" json:"role"`

	types.BaseModel
}
