package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Role codes.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a registered user
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser returns a new User with the default role. ID is typically set by the repository on create.
func NewUser(name, email, passwordHash, avatar string, now time.Time) *User {
	return &User{
		Name:         name,
		Email:        email,
		Role:         RoleUser,
		PasswordHash: passwordHash,
		Avatar:       avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the authenticated caller carried by a verified token.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// PasswordHasher hashes and verifies passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(user *User) (string, error)
}

// TokenVerifier verifies a token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// Update writes profile fields (name, avatar, phone, dateOfBirth, location).
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error
}

// ProfileUpdate holds the optional profile fields a user may change. Nil fields are unchanged.
type ProfileUpdate struct {
	Name        *string
	Avatar      *string
	Phone       *string
	DateOfBirth *string
	Location    *string
}

// AuthService defines sign-up, login and account maintenance.
type AuthService interface {
	Register(ctx context.Context, name, email, password, avatar string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}
