package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email"`
}

// UpdateUserRequest represents the request payload for replacing an existing
// user. Updates are full replacements of the mutable fields.
type UpdateUserRequest struct {
	ID    int64  `validate:"required"`
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email"`
}

// UserResponse represents a user returned by the service.
type UserResponse struct {
	ID    int64
	Name  string
	Email string
}
