package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	usecase "shop-services/internal/usecase/user"
	apperrors "shop-services/pkg/errors"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, in usecase.CreateUserRequest) (*usecase.UserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UserResponse), args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, in usecase.UpdateUserRequest) (*usecase.UserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UserResponse), args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id int64) (*usecase.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UserResponse), args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]usecase.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.UserResponse), args.Error(1)
}

func setupUserTest(t *testing.T) (*gin.Engine, *MockUserUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockUserUsecase)
	h := NewUserHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	return r, mockUsecase
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		reqBody := UserPayload{Name: "Ada Lovelace", Email: "ada@example.com"}
		jsonBody, _ := json.Marshal(reqBody)

		mockUsecase.On("CreateUser", mock.Anything, usecase.CreateUserRequest{
			Name:  reqBody.Name,
			Email: reqBody.Email,
		}).Return(&usecase.UserResponse{ID: 1, Name: reqBody.Name, Email: reqBody.Email}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Ada Lovelace", resp.Name)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		r, _ := setupUserTest(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Validation Error", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("email", "email must be a valid email address"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"name":"Ada","email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewConflictError("user", "email already registered"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"name":"Ada","email":"ada@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "constraint_violation", resp.Error)
	})

	t.Run("Usecase Error", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("CreateUser", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"name":"Ada","email":"ada@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("GetUser", mock.Anything, int64(1)).
			Return(&usecase.UserResponse{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ada@example.com", resp.Email)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUsecase.AssertNotCalled(t, "GetUser")
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("GetUser", mock.Anything, int64(5)).
			Return(nil, apperrors.NewNotFoundError("user", "user not found"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "not_found", resp.Error)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		reqBody := UserPayload{Name: "Ada Updated", Email: "ada.updated@example.com"}
		jsonBody, _ := json.Marshal(reqBody)

		mockUsecase.On("UpdateUser", mock.Anything, usecase.UpdateUserRequest{
			ID:    1,
			Name:  reqBody.Name,
			Email: reqBody.Email,
		}).Return(&usecase.UserResponse{ID: 1, Name: reqBody.Name, Email: reqBody.Email}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/users/1", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, _ := setupUserTest(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/users/abc", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("UpdateUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewNotFoundError("user", "user not found"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/users/9", bytes.NewBufferString(`{"name":"Ada","email":"ada@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("DeleteUser", mock.Anything, int64(1)).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/users/1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User deleted successfully", resp["message"])
	})

	t.Run("Not Found", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("DeleteUser", mock.Anything, int64(7)).
			Return(apperrors.NewNotFoundError("user", "user not found"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/users/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("ListUsers", mock.Anything).Return([]usecase.UserResponse{
			{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"},
			{ID: 2, Name: "Grace Hopper", Email: "grace@example.com"},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("Empty", func(t *testing.T) {
		r, mockUsecase := setupUserTest(t)

		mockUsecase.On("ListUsers", mock.Anything).Return([]usecase.UserResponse{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
