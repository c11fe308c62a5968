package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/portfolioimane/storefront-cli/internal/client/api"
	"github.com/portfolioimane/storefront-cli/internal/client/config"
	"github.com/portfolioimane/storefront-cli/internal/client/payments"
	"github.com/portfolioimane/storefront-cli/internal/client/services"
	"github.com/portfolioimane/storefront-cli/internal/client/store"
	"github.com/portfolioimane/storefront-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client. All commands are methods on it; the REPL
// dispatches to them through the execIface seam.
type App struct {
	config *config.Config
	log    logging.Logger

	store           *store.Store
	authService     services.AuthService
	cartService     services.CartService
	checkoutService services.CheckoutService
	orderService    services.OrderService

	reader *bufio.Reader

	// status is the prompt decoration (user + cart badge). It is rebuilt by
	// a store subscription, so views never compute it themselves.
	status string

	// pending is a command that required authentication; it is resumed once
	// after the next successful login.
	pending func(ctx context.Context) error
}

// NewApp opens the local session database, restores the persisted session
// and wires the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	st, err := store.Load(ctx, db)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(c.APIBaseURL, st, log)
	processor := payments.NewHTTPProcessor(c.ProcessorBaseURL, c.ProcessorKey, log)

	a := &App{
		config:          c,
		log:             log,
		store:           st,
		authService:     services.NewAuthService(apiClient, st, log),
		cartService:     services.NewCartService(apiClient, st, log),
		checkoutService: services.NewCheckoutService(apiClient, processor, st, log),
		orderService:    services.NewOrderService(apiClient),
		reader:          bufio.NewReader(os.Stdin),
	}

	a.refreshStatus()
	st.Subscribe(a.refreshStatus)

	return a, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to the storefront CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	return a.status
}

func (a *App) refreshStatus() {
	session := a.store.Session()
	if !session.IsAuthenticated {
		a.status = ""
		return
	}

	name := "?"
	if session.User != nil {
		name = session.User.Name
	}

	if n := a.store.CartCount(); n > 0 {
		a.status = fmt.Sprintf("(%s cart:%d)", name, n)
		return
	}
	a.status = fmt.Sprintf("(%s)", name)
}

// requireAuth runs fn when a session exists; otherwise it stashes fn as the
// pending command and starts the login view, which resumes fn on success.
func (a *App) requireAuth(ctx context.Context, fn func(ctx context.Context) error) error {
	if a.isLoggedIn() {
		return fn(ctx)
	}
	printlnFn("Please log in first.")
	a.pending = fn
	return a.Login(ctx)
}
