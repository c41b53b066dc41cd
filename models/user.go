package models

import "time"

// Roles.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

// User is an account in the in-memory user store. Accounts live for the
// process lifetime only; nothing survives a restart.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Location    string    `json:"location,omitempty"`
	Role        string    `json:"role"`
	TrustRating float64   `json:"trust_rating"`
	IsVerified  bool      `json:"is_verified"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Role     string `json:"role" binding:"omitempty,oneof=customer seller"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both sign-in and sign-up.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
