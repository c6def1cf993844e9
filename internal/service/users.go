package service

import (
	"context"
	"net/url"

	"medicheck/cli/internal/api"
	"medicheck/cli/internal/models"
)

// Users wraps the /users endpoints. It implements session.Backend.
type Users struct {
	client *api.Client
}

func NewUsers(client *api.Client) *Users {
	return &Users{client: client}
}

// Login posts form-encoded credentials; the backend's authentication
// endpoint does not accept JSON.
func (s *Users) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp models.LoginResponse
	if err := s.client.LoginForm(ctx, "/users/login", form, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	return resp, nil
}

func (s *Users) FetchCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/users/me", &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
