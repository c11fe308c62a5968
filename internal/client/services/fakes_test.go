package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/portfolioimane/storefront-cli/internal/client/api"
	"github.com/portfolioimane/storefront-cli/internal/client/models"
	"github.com/portfolioimane/storefront-cli/internal/client/payments"
	"github.com/portfolioimane/storefront-cli/internal/client/store"
	"github.com/portfolioimane/storefront-cli/internal/logging"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newTestStore(t *testing.T, name string) (*store.Store, *sql.DB) {
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
	return st, db
}

// ---- fake API client ----

// fakeClient implements api.Client for unit tests of the services layer.
type fakeClient struct {
	LoginResp         *api.LoginResponse
	LoginErr          error
	LastLoginEmail    string
	LastLoginPassword string

	RegisterMsg   string
	RegisterErr   error
	RegisterCalls int
	LastRegister  api.RegisterRequest

	CartItems []models.CartLine
	CartErr   error

	RemoveErr  error
	RemovedIDs []int64

	Count      int
	CountErr   error
	CountCalls int

	SummaryResp *models.CheckoutSummary
	SummaryErr  error

	CashResp *api.OrderPlacement
	CashErr  error

	WalletURL string
	WalletErr error

	CardResp            *api.CardPayment
	CardErr             error
	ProcessCalls        int
	LastPaymentMethodID string

	OrderResp *models.OrderDetails
	OrderErr  error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	f.LastLoginEmail, f.LastLoginPassword = email, password
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (string, error) {
	f.RegisterCalls++
	f.LastRegister = req
	return f.RegisterMsg, f.RegisterErr
}

func (f *fakeClient) Cart(ctx context.Context) ([]models.CartLine, error) {
	return f.CartItems, f.CartErr
}

func (f *fakeClient) RemoveCartItem(ctx context.Context, id int64) error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.RemovedIDs = append(f.RemovedIDs, id)
	return nil
}

func (f *fakeClient) CartCount(ctx context.Context) (int, error) {
	f.CountCalls++
	return f.Count, f.CountErr
}

func (f *fakeClient) CheckoutSummary(ctx context.Context) (*models.CheckoutSummary, error) {
	return f.SummaryResp, f.SummaryErr
}

func (f *fakeClient) PlaceCashOrder(ctx context.Context) (*api.OrderPlacement, error) {
	return f.CashResp, f.CashErr
}

func (f *fakeClient) CreateWalletPayment(ctx context.Context) (string, error) {
	return f.WalletURL, f.WalletErr
}

func (f *fakeClient) ProcessCardPayment(ctx context.Context, paymentMethodID string) (*api.CardPayment, error) {
	f.ProcessCalls++
	f.LastPaymentMethodID = paymentMethodID
	return f.CardResp, f.CardErr
}

func (f *fakeClient) OrderDetails(ctx context.Context, id int64) (*models.OrderDetails, error) {
	return f.OrderResp, f.OrderErr
}

// ---- fake payment processor ----

type fakeProcessor struct {
	PaymentMethodID string
	CreateErr       error
	CreateCalls     int
	LastCard        payments.Card

	Intent       *payments.Intent
	ConfirmErr   error
	ConfirmCalls int
	LastSecret   string
}

func (f *fakeProcessor) CreatePaymentMethod(ctx context.Context, card payments.Card) (string, error) {
	f.CreateCalls++
	f.LastCard = card
	return f.PaymentMethodID, f.CreateErr
}

func (f *fakeProcessor) ConfirmPayment(ctx context.Context, clientSecret string) (*payments.Intent, error) {
	f.ConfirmCalls++
	f.LastSecret = clientSecret
	return f.Intent, f.ConfirmErr
}
