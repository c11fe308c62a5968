// Package store holds the client-side session state: the auth token, the
// logged-in user and the cached cart item count. It is the single source of
// truth for all of them; views read it through the injected *Store and learn
// about changes via Subscribe, never through ad hoc storage reads.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/portfolioimane/storefront-cli/internal/client/models"
	"github.com/portfolioimane/storefront-cli/internal/client/repositories/metadata"
	"github.com/portfolioimane/storefront-cli/internal/common"
	"github.com/portfolioimane/storefront-cli/internal/dbx"
)

// Store keeps the session in memory and mirrors token+user into the local
// metadata table write-through: every mutation persists before the in-memory
// copy becomes visible, so the two can never diverge.
type Store struct {
	mu        sync.RWMutex
	session   models.Session
	cartCount int
	db        *sql.DB
	subs      []func()
}

// Load restores the session from persisted storage. A stored token marks the
// session authenticated; a missing or unreadable user record degrades to an
// anonymous session rather than failing startup.
func Load(ctx context.Context, db *sql.DB) (*Store, error) {
	repo := metadata.NewSQLiteRepository(db)

	token, err := repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	s := &Store{db: db}
	if len(token) == 0 {
		return s, nil
	}

	s.session = models.Session{IsAuthenticated: true, Token: string(token)}

	rawUser, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if len(rawUser) > 0 {
		var u models.User
		if err := json.Unmarshal(rawUser, &u); err == nil {
			s.session.User = &u
		}
	}

	return s, nil
}

// Session returns a copy of the current session.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Token returns the current bearer token, empty when logged out. It
// satisfies the api.TokenSource interface.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated
}

// Login stores the authenticated user and token. The persisted copies are
// written first, in one transaction; only then does the in-memory session
// change and subscribers get notified. Calling Login again simply replaces
// the session.
func (s *Store) Login(ctx context.Context, user models.User, token string) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.StorageKeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUser, rawUser)
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.session = models.Session{IsAuthenticated: true, User: &user, Token: token}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Logout clears the session in memory and in persisted storage. A second
// call is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return nil
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.StorageKeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, common.StorageKeyUser)
	})
	if err != nil {
		return fmt.Errorf("failed to erase session: %w", err)
	}

	s.mu.Lock()
	s.session = models.Session{}
	s.cartCount = 0
	s.mu.Unlock()

	s.notify()
	return nil
}

// CartCount returns the cached cart item count.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartCount
}

// SetCartCount caches a server-reported cart item count. The count is never
// computed locally from a cart snapshot; callers must pass values obtained
// from the count endpoint.
func (s *Store) SetCartCount(n int) {
	s.mu.Lock()
	changed := s.cartCount != n
	s.cartCount = n
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Subscribe registers fn to be called after every session or cart-count
// change. Callbacks run synchronously on the mutating goroutine and must not
// mutate the store.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

// TokenExpiry reads the exp claim from the bearer token without verifying
// the signature. Display only: the server remains the authority on token
// validity.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
