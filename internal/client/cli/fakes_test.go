package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/portfolioimane/storefront-cli/internal/client/models"
	"github.com/portfolioimane/storefront-cli/internal/client/payments"
	"github.com/portfolioimane/storefront-cli/internal/client/store"
	"github.com/portfolioimane/storefront-cli/internal/logging"
)

// ---- output / input seams ----

// captureOutput redirects printlnFn into a slice for assertions.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// stubText replaces getSimpleText with a queue of canned answers.
func stubText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPassword replaces getPassword with a queue of canned secrets.
func stubPassword(t *testing.T, secrets ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if i >= len(secrets) {
			return nil, io.EOF
		}
		s := secrets[i]
		i++
		return []byte(s), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func stubID(t *testing.T, id int64) {
	t.Helper()
	orig := getID
	getID = func(_ *bufio.Reader, _ string, _ io.Writer) (int64, error) { return id, nil }
	t.Cleanup(func() { getID = orig })
}

// ---- store helper ----

func newTestStore(t *testing.T, name string, loggedIn bool) *store.Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)

	st, err := store.Load(context.Background(), db)
	require.NoError(t, err)

	if loggedIn {
		user := models.User{ID: 1, Name: "Imane", Email: "imane@example.org"}
		require.NoError(t, st.Login(context.Background(), user, "tok-1"))
	}
	return st
}

func newTestApp(t *testing.T, name string, loggedIn bool) *App {
	t.Helper()
	a := &App{
		log:    logging.NewTextLogger(io.Discard, slog.LevelError),
		store:  newTestStore(t, name, loggedIn),
		reader: bufio.NewReader(strings.NewReader("")),
	}
	a.refreshStatus()
	a.store.Subscribe(a.refreshStatus)
	return a
}

// ---- fake services ----

type fakeAuthSvc struct {
	LoginErr   error
	LoginCalls int
	LastEmail  string
	LastPass   string

	RegisterMsg  string
	RegisterErr  error
	LastRegister [4]string

	LogoutErr   error
	LogoutCalls int
}

func (f *fakeAuthSvc) Login(_ context.Context, email, password string) error {
	f.LoginCalls++
	f.LastEmail, f.LastPass = email, password
	return f.LoginErr
}

func (f *fakeAuthSvc) Register(_ context.Context, name, email, password, confirmation string) (string, error) {
	f.LastRegister = [4]string{name, email, password, confirmation}
	return f.RegisterMsg, f.RegisterErr
}

func (f *fakeAuthSvc) Logout(context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

type fakeCartSvc struct {
	Lines      []models.CartLine
	ItemsErr   error
	ItemsCalls int

	RemoveErr error
	Removed   []int64
}

func (f *fakeCartSvc) Items(context.Context) ([]models.CartLine, error) {
	f.ItemsCalls++
	return f.Lines, f.ItemsErr
}

func (f *fakeCartSvc) Remove(_ context.Context, id int64) error {
	f.Removed = append(f.Removed, id)
	return f.RemoveErr
}

func (f *fakeCartSvc) RefreshCount(context.Context) error { return nil }

type fakeCheckoutSvc struct {
	SummaryResp *models.CheckoutSummary
	SummaryErr  error

	CashID  int64
	CashErr error

	WalletURL string
	WalletErr error

	CardID   int64
	CardErr  error
	LastCard payments.Card
}

func (f *fakeCheckoutSvc) Summary(context.Context) (*models.CheckoutSummary, error) {
	return f.SummaryResp, f.SummaryErr
}

func (f *fakeCheckoutSvc) PlaceCashOrder(context.Context) (int64, error) {
	return f.CashID, f.CashErr
}

func (f *fakeCheckoutSvc) StartWalletPayment(context.Context) (string, error) {
	return f.WalletURL, f.WalletErr
}

func (f *fakeCheckoutSvc) PayWithCard(_ context.Context, card payments.Card) (int64, error) {
	f.LastCard = card
	return f.CardID, f.CardErr
}

type fakeOrderSvc struct {
	Resp       *models.OrderDetails
	DetailsErr error
	Requested  []int64
}

func (f *fakeOrderSvc) Details(_ context.Context, id int64) (*models.OrderDetails, error) {
	f.Requested = append(f.Requested, id)
	return f.Resp, f.DetailsErr
}
