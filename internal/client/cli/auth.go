package cli

import (
	"context"
	"os"

	"github.com/portfolioimane/storefront-cli/internal/common"
)

// getSimpleText, getPassword and getID are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getID = GetID

// Login prompts the user for credentials and tries to authenticate.
//
// On success the session is already persisted by the auth service; the
// command that triggered the login (if any) is resumed exactly once. On
// failure a single generic message is shown regardless of the cause, so the
// view cannot leak whether the email or the password was wrong.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, string(password)); err != nil {
		a.pending = nil
		printlnFn("Invalid email or password.")
		return err
	}

	printlnFn("Logged in.")

	if fn := a.pending; fn != nil {
		a.pending = nil
		return fn(ctx)
	}
	return nil
}

// Register prompts for the account fields and attempts to create a new
// account. The confirmation mismatch is caught locally before any network
// call; server validation errors arrive flattened into one message. On
// success the server's message is shown and the login view follows.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword("Confirm password: ", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	msg, err := a.authService.Register(ctx, name, email, string(password), string(confirmation))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(msg)
	return a.Login(ctx)
}

// Logout clears the session. Logging out while logged out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami shows the signed-in account and, when the bearer token is a JWT,
// its expiry. The expiry is informational only and is never verified.
func (a *App) Whoami(ctx context.Context) error {
	session := a.store.Session()
	if !session.IsAuthenticated {
		printlnFn("Not logged in.")
		return nil
	}

	if session.User != nil {
		printlnFn("Name: ", session.User.Name)
		printlnFn("Email:", session.User.Email)
	}

	if exp, ok := a.store.TokenExpiry(); ok {
		printlnFn("Session expires:", exp.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}
