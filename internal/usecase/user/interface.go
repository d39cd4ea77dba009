package user

import "context"

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	CreateUser(ctx context.Context, in CreateUserRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, in UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUser(ctx context.Context, id int64) (*UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
}
