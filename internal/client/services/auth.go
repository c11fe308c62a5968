// Package services contains the application services of the storefront
// client. They sit between the CLI views and the API gateway: views call
// services, services call the gateway and keep the session store in sync.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/portfolioimane/storefront-cli/internal/client/api"
	"github.com/portfolioimane/storefront-cli/internal/client/store"
	"github.com/portfolioimane/storefront-cli/internal/common"
	"github.com/portfolioimane/storefront-cli/internal/logging"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login: authenticate against the server, persist the session
//     write-through and refresh the cart count from the server.
//   - Register: create an account; local confirmation check runs before any
//     network call; server validation errors are flattened into one message.
//   - Logout: clear in-memory and persisted session state; idempotent.
type AuthService interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password, confirmation string) (string, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewAuthService(client api.Client, st *store.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: st, log: log}
}

// Login collapses every failure into a single generic error so the view
// cannot leak whether the email or the password was wrong.
func (a *authService) Login(ctx context.Context, email, password string) error {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err.Error())
		return common.ErrInvalidCredentials
	}

	if err := a.store.Login(ctx, resp.User, resp.Token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	a.refreshCartCount(ctx)
	return nil
}

func (a *authService) Register(ctx context.Context, name, email, password, confirmation string) (string, error) {
	if password != confirmation {
		return "", common.ErrPasswordsDoNotMatch
	}

	msg, err := a.client.Register(ctx, api.RegisterRequest{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
	})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
			return "", errors.New(apiErr.Flatten())
		}
		return "", fmt.Errorf("failed to register: %w", err)
	}

	if msg == "" {
		msg = "Registration successful! Please log in."
	}
	return msg, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Logout(ctx)
}

// refreshCartCount re-fetches the cart item count from the server and caches
// it in the store. The count is never derived locally; a failed refresh
// keeps the previous value and is only logged.
func (a *authService) refreshCartCount(ctx context.Context) {
	count, err := a.client.CartCount(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to refresh cart count", "error", err.Error())
		return
	}
	a.store.SetCartCount(count)
}
