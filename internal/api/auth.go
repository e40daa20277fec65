package api

import (
	"context"
	"net/url"

	"solidaire/internal/models"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var response LoginResponse
	if err := c.post(ctx, "/api/auth/login", body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var response RegisterResponse
	if err := c.post(ctx, "/api/auth/register", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) VerifyEmail(ctx context.Context, token string) (*MessageResponse, error) {
	query := url.Values{}
	query.Set("token", token)

	var response MessageResponse
	if err := c.get(ctx, "/api/auth/verify-email", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	body := map[string]string{"email": email}

	var response MessageResponse
	if err := c.post(ctx, "/api/auth/forgot-password", body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) (*MessageResponse, error) {
	body := map[string]string{
		"token":    token,
		"password": password,
	}

	var response MessageResponse
	if err := c.post(ctx, "/api/auth/reset-password", body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Me возвращает профиль текущего пользователя по bearer-токену
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var response struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "/api/auth/me", nil, &response); err != nil {
		return nil, err
	}

	return &response.User, nil
}
