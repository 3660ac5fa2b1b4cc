package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evently/internal/delivery/http/helpers"
	"evently/internal/domain"
)

var testIdentity = &domain.Identity{UserID: "u-1", Email: "ada@example.com", Role: domain.RoleUser}

func testUser() *domain.User {
	return &domain.User{ID: "u-1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleUser, PasswordHash: "secret-hash"}
}

func TestAuthController_Register(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusCreated, wantMessage: "User registered successfully"},
		{name: "duplicate email", serviceErr: domain.ErrDuplicateEmail, wantStatus: http.StatusConflict, wantMessage: "User with this email already exists"},
		{
			name:        "short password",
			serviceErr:  domain.NewValidationError("Password must be at least 6 characters long"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must be at least 6 characters long",
		},
		{name: "internal", serviceErr: errors.New("db"), wantStatus: http.StatusInternalServerError, wantMessage: "Registration failed. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{user: testUser(), token: "jwt", err: tt.serviceErr}
			c := NewAuthController(testLogger, svc)
			body := map[string]string{"name": "Ada", "email": "ada@example.com", "password": "secret1"}
			rr := serve("POST /api/auth/register", c.Register, newRequest(t, http.MethodPost, "/api/auth/register", body, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusCreated {
				assert.Equal(t, tt.wantMessage, decode[helpers.ErrorResponse](t, rr).Message)
				return
			}
			raw := decode[map[string]any](t, rr)
			assert.Equal(t, tt.wantMessage, raw["message"])
			user := raw["user"].(map[string]any)
			assert.Equal(t, "u-1", user["id"])
			assert.Equal(t, "jwt", user["token"])
			assert.NotContains(t, user, "passwordHash")
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{user: testUser(), token: "jwt"})
		rr := serve("POST /api/auth/login", c.Login, newRequest(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "ada@example.com", "password": "secret1"}, nil))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[AuthResponse](t, rr)
		assert.Equal(t, "Login successful", resp.Message)
		assert.Equal(t, "jwt", resp.User.Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{err: domain.ErrInvalidCredentials})
		rr := serve("POST /api/auth/login", c.Login, newRequest(t, http.MethodPost, "/api/auth/login",
			map[string]string{"email": "ada@example.com", "password": "wrong"}, nil))

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		resp := decode[helpers.ErrorResponse](t, rr)
		assert.Equal(t, helpers.ErrCodeUnauthorized, resp.Error.Code)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})
}

func TestAuthController_Verify(t *testing.T) {
	t.Run("returns caller without token", func(t *testing.T) {
		svc := &fakeAuthService{user: testUser()}
		c := NewAuthController(testLogger, svc)
		rr := serve("GET /api/auth/verify", c.Verify, newRequest(t, http.MethodGet, "/api/auth/verify", nil, testIdentity))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "u-1", svc.lastUserID)
		resp := decode[AuthResponse](t, rr)
		assert.Empty(t, resp.User.Token)
		assert.Equal(t, "Ada", resp.User.Name)
	})

	t.Run("deleted user", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{err: domain.ErrUserNotFound})
		rr := serve("GET /api/auth/verify", c.Verify, newRequest(t, http.MethodGet, "/api/auth/verify", nil, testIdentity))

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid token", decode[helpers.ErrorResponse](t, rr).Message)
	})

	t.Run("no identity", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{user: testUser()})
		rr := serve("GET /api/auth/verify", c.Verify, newRequest(t, http.MethodGet, "/api/auth/verify", nil, nil))

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthController_UpdateProfile(t *testing.T) {
	svc := &fakeAuthService{user: testUser()}
	c := NewAuthController(testLogger, svc)
	rr := serve("PUT /api/auth/profile", c.UpdateProfile, newRequest(t, http.MethodPut, "/api/auth/profile",
		map[string]string{"location": "London"}, testIdentity))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u-1", svc.lastUserID)
	require.NotNil(t, svc.lastProfile.Location)
	assert.Equal(t, "London", *svc.lastProfile.Location)
	assert.Nil(t, svc.lastProfile.Name)
}

func TestAuthController_ChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", wantStatus: http.StatusOK, wantMessage: "Password changed successfully"},
		{name: "wrong current password", serviceErr: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMessage: "Current password is incorrect"},
		{
			name:        "short new password",
			serviceErr:  domain.NewValidationError("New password must be at least 6 characters long"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "New password must be at least 6 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAuthService{err: tt.serviceErr}
			c := NewAuthController(testLogger, svc)
			body := map[string]string{"currentPassword": "secret1", "newPassword": "secret2"}
			rr := serve("PUT /api/auth/change-password", c.ChangePassword,
				newRequest(t, http.MethodPut, "/api/auth/change-password", body, testIdentity))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "secret2", svc.lastNewPass)
			resp := decode[helpers.ErrorResponse](t, rr)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
