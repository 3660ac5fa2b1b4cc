package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"evently/internal/delivery/http/helpers"
	"evently/internal/delivery/http/middleware"
	"evently/internal/domain"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the request body for PUT /auth/profile. Omitted fields are unchanged.
type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Avatar      *string `json:"avatar"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	Location    *string `json:"location"`
}

// ChangePasswordRequest is the request body for PUT /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthUser is a user as returned by the auth endpoints; token is set on register and login.
type AuthUser struct {
	*domain.User
	Token string `json:"token,omitempty"`
}

// AuthResponse is the response body of the auth endpoints.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	User    AuthUser `json:"user"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Sign up
// @Description Creates a user with role user and returns it with a token. A welcome email is sent.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Sign-up data"
// @Success 201 {object} controllers.AuthResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse "email already registered"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, token, err := c.Service.Register(r.Context(), req.Name, req.Email, req.Password, req.Avatar)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Registration failed. Please try again later."})
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "User registered successfully",
		User:    AuthUser{User: user, Token: token},
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticates with email and password and returns the user with a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.AuthResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{internal: "Login failed. Please try again later."})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    AuthUser{User: user, Token: token},
	})
}

// Verify godoc
// @Summary Verify a token
// @Description Returns the user the bearer token belongs to.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.AuthResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /auth/verify [get]
func (c *AuthController) Verify(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Invalid token")
		return
	}
	user, err := c.Service.GetUser(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Invalid token")
			return
		}
		writeServiceError(w, r, c.Logger, err, errorMessages{})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, AuthResponse{Success: true, User: AuthUser{User: user}})
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Profile fields (all optional)"
// @Success 200 {object} controllers.AuthResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /auth/profile [put]
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Authentication required")
		return
	}
	var req UpdateProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.UpdateProfile(r.Context(), identity.UserID, domain.ProfileUpdate{
		Name:        req.Name,
		Avatar:      req.Avatar,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Location:    req.Location,
	})
	if err != nil {
		writeServiceError(w, r, c.Logger, err, errorMessages{notFound: "User not found", internal: "Failed to update profile"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    AuthUser{User: user},
	})
}

// ChangePassword godoc
// @Summary Change the caller's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse "missing token or wrong current password"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /auth/change-password [put]
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Authentication required")
		return
	}
	var req ChangePasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.ChangePassword(r.Context(), identity.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "Current password is incorrect")
			return
		}
		writeServiceError(w, r, c.Logger, err, errorMessages{notFound: "User not found", internal: "Failed to change password"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Success: true, Message: "Password changed successfully"})
}
