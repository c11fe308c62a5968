package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	out := captureOutput(t)
	stubText(t, "imane@example.org")
	stubPassword(t, "secret")

	a := newTestApp(t, "cli-login-ok", false)
	f := &fakeAuthSvc{}
	a.authService = f

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "imane@example.org", f.LastEmail)
	assert.Equal(t, "secret", f.LastPass)
	assert.True(t, outputContains(*out, "Logged in."))
}

func TestLogin_FailureGenericMessage(t *testing.T) {
	out := captureOutput(t)
	stubText(t, "imane@example.org")
	stubPassword(t, "wrong")

	a := newTestApp(t, "cli-login-fail", false)
	a.authService = &fakeAuthSvc{LoginErr: errors.New("401")}
	a.pending = func(ctx context.Context) error { t.Fatal("pending must not run"); return nil }

	require.Error(t, a.Login(context.Background()))

	assert.True(t, outputContains(*out, "Invalid email or password."))
	assert.Nil(t, a.pending)
}

func TestLogin_ResumesPendingCommand(t *testing.T) {
	captureOutput(t)
	stubText(t, "imane@example.org")
	stubPassword(t, "secret")

	a := newTestApp(t, "cli-login-resume", false)
	a.authService = &fakeAuthSvc{}

	resumed := 0
	a.pending = func(ctx context.Context) error { resumed++; return nil }

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, 1, resumed)
	assert.Nil(t, a.pending)
}

func TestRegister_SuccessLeadsToLogin(t *testing.T) {
	out := captureOutput(t)
	// register prompts: name, email; then the follow-up login prompts email.
	stubText(t, "Imane", "imane@example.org", "imane@example.org")
	stubPassword(t, "secret", "secret", "secret")

	a := newTestApp(t, "cli-register-ok", false)
	f := &fakeAuthSvc{RegisterMsg: "Registration successful! Please log in."}
	a.authService = f

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, [4]string{"Imane", "imane@example.org", "secret", "secret"}, f.LastRegister)
	assert.True(t, outputContains(*out, "Registration successful! Please log in."))
	assert.Equal(t, 1, f.LoginCalls)
}

func TestRegister_FailureShowsFlattenedMessage(t *testing.T) {
	out := captureOutput(t)
	stubText(t, "Imane", "imane@example.org")
	stubPassword(t, "secret", "secret")

	a := newTestApp(t, "cli-register-fail", false)
	f := &fakeAuthSvc{RegisterErr: errors.New("email already taken, password too short")}
	a.authService = f

	require.Error(t, a.Register(context.Background()))

	assert.True(t, outputContains(*out, "email already taken, password too short"))
	assert.Equal(t, 0, f.LoginCalls)
}

func TestLogout(t *testing.T) {
	out := captureOutput(t)

	a := newTestApp(t, "cli-logout", true)
	f := &fakeAuthSvc{}
	a.authService = f

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, 1, f.LogoutCalls)
	assert.True(t, outputContains(*out, "Logged out."))
}

func TestWhoami(t *testing.T) {
	t.Run("logged out", func(t *testing.T) {
		out := captureOutput(t)
		a := newTestApp(t, "cli-whoami-out", false)

		require.NoError(t, a.Whoami(context.Background()))
		assert.True(t, outputContains(*out, "Not logged in."))
	})

	t.Run("logged in", func(t *testing.T) {
		out := captureOutput(t)
		a := newTestApp(t, "cli-whoami-in", true)

		require.NoError(t, a.Whoami(context.Background()))
		assert.True(t, outputContains(*out, "imane@example.org"))
	})
}

func TestStatusLine(t *testing.T) {
	a := newTestApp(t, "cli-status", true)

	assert.Equal(t, "(Imane)", a.getStatus())

	a.store.SetCartCount(3)
	assert.Equal(t, "(Imane cart:3)", a.getStatus())

	require.NoError(t, a.store.Logout(context.Background()))
	assert.Equal(t, "", a.getStatus())
}
