package dto

import "github.com/eduhire/placement-be/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest uses pointers so handlers can tell "absent" from
// "set to empty". Password, when present and non-empty, triggers a re-hash.
type UpdateProfileRequest struct {
	Name     *string   `json:"name"`
	Phone    *string   `json:"phone"`
	Bio      *string   `json:"bio"`
	Skills   *[]string `json:"skills"`
	Password *string   `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type UserResponse struct {
	User models.User `json:"user"`
}
