package user

import (
	"context"

	"go.uber.org/zap"

	domain "shop-services/internal/domain/user"
	apperrors "shop-services/pkg/errors"
	"shop-services/pkg/validate"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Replace(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.User, error)
}

// usecase implements the business logic for user management operations.
type usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validate.Validator
}

// New creates a new user Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log, validate: validate.New()}
}

func toResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// CreateUser creates a new user after validating the request and checking
// email uniqueness.
func (uc *usecase) CreateUser(ctx context.Context, in CreateUserRequest) (*UserResponse, error) {
	uc.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	// The unique index is the real guarantee; this check just gives a clean
	// error without burning a failed insert.
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("email already exists", zap.String("email", in.Email))
		return nil, apperrors.NewConflictError("user", "email already exists")
	}

	created, err := uc.repo.Create(ctx, &domain.User{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return toResponse(created), nil
}

// UpdateUser replaces an existing user's fields after validating the request
// and checking email uniqueness.
func (uc *usecase) UpdateUser(ctx context.Context, in UpdateUserRequest) (*UserResponse, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID), zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil && existing.ID != in.ID {
		uc.log.Warn("email already exists", zap.String("email", in.Email), zap.Int64("existing_id", existing.ID))
		return nil, apperrors.NewConflictError("user", "email already exists")
	}

	updated, err := uc.repo.Replace(ctx, &domain.User{
		ID:    in.ID,
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		uc.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return toResponse(updated), nil
}

// DeleteUser deletes a user by ID.
func (uc *usecase) DeleteUser(ctx context.Context, id int64) error {
	uc.log.Info("deleting user", zap.Int64("id", id))

	if id <= 0 {
		return apperrors.NewValidationError("id", "must be a positive integer")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Warn("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return err
	}

	return nil
}

// GetUser retrieves a user by ID.
func (uc *usecase) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("id", "must be a positive integer")
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Warn("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toResponse(u), nil
}

// ListUsers retrieves all users.
func (uc *usecase) ListUsers(ctx context.Context) ([]UserResponse, error) {
	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]UserResponse, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = *toResponse(&du)
	}

	return users, nil
}
