package models

import "time"

type UserType string

const (
	UserTypeUser  UserType = "user"
	UserTypeAdmin UserType = "admin"
)

// User is the identity record returned by /users/me and inside the
// login response. Field names follow the backend's JSON.
type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name,omitempty"`
	UserType    UserType  `json:"user_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// LoginResponse is the body of a successful POST /users/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
