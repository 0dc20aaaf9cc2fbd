package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

var _ ports.AuthAPI = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userWire `json:"user"`
}

type registerRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a token and the user record. A 401 from
// the exchange surfaces as domain.ErrInvalidCredentials so callers can show
// it inline instead of treating it as fatal.
func (c *Client) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation) {
			return domain.Identity{}, fmt.Errorf("%w", domain.ErrInvalidCredentials)
		}
		return domain.Identity{}, err
	}
	if resp.Token == "" {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	user := toUser(resp.User)
	return domain.Identity{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
		Token:    resp.Token,
	}, nil
}

func (c *Client) Register(ctx context.Context, reg ports.Registration) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", nil, registerRequest{
		FullName: reg.FullName,
		Email:    reg.Email,
		Password: reg.Password,
		Role:     string(reg.Role),
	}, nil)
}
