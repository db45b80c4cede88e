// Package session holds the authenticated session and keeps the persisted
// token in step with it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"caseshop/internal/logging"
	"caseshop/internal/notify"
	"caseshop/internal/service"
	"caseshop/internal/storage"
)

// ErrSuperseded is returned when another session transition happened while
// a request was in flight. The response is discarded.
var ErrSuperseded = errors.New("session changed while the request was in flight")

// Session is the token and the profile it resolved to.
// User is only set when Token is.
type Session struct {
	Token string
	User  *service.Profile
}

// Authenticated reports whether the session carries a resolved user.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Store owns the current Session.
type Store struct {
	svc      service.Service
	store    storage.Store
	notifier notify.Notifier
	log      *zap.Logger

	mu  sync.Mutex
	cur Session
	// seq advances on every transition and every request start; a response
	// carrying an older ticket is stale.
	seq         uint64
	loginHooks  []func(Session)
	logoutHooks []func()
}

// New creates a store with an empty session.
func New(svc service.Service, store storage.Store, notifier notify.Notifier, log *zap.Logger) *Store {
	return &Store{
		svc:      svc,
		store:    store,
		notifier: notifier,
		log:      logging.OrNop(log),
	}
}

// OnLogin registers fn to run after every successful login.
func (s *Store) OnLogin(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginHooks = append(s.loginHooks, fn)
}

// OnLogout registers fn to run after every logout and invalidation.
func (s *Store) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutHooks = append(s.logoutHooks, fn)
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.clone()
}

// Token returns the current bearer token, or "".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Token
}

// Login installs token and profile as the session and persists the token.
// If the token cannot be persisted the session is left unchanged.
func (s *Store) Login(ctx context.Context, token string, profile service.Profile) error {
	return s.commitLogin(ctx, 0, token, profile)
}

// Logout clears the session and deletes the persisted token.
// If the token cannot be deleted the session is left unchanged.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	if err := s.store.Delete(ctx, storage.KeyToken); err != nil {
		s.mu.Unlock()
		s.log.Warn("failed to delete token", zap.Error(err))
		return fmt.Errorf("delete token: %w", err)
	}
	s.cur = Session{}
	s.seq++
	hooks := append([]func(){}, s.logoutHooks...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	s.notifier.Show("Logged out successfully. See you soon!", notify.Success)
	return nil
}

// Invalidate drops a session the server no longer accepts. It behaves like
// Logout but queues the expiry warning instead of the farewell. Unlike
// Logout, the in-memory session is cleared even when the token cannot be
// deleted: the server has already rejected it. The delete failure is
// returned so the caller can report it; Restore retries the delete on the
// next start.
func (s *Store) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	if s.cur.Token == "" {
		s.mu.Unlock()
		return nil
	}
	var derr error
	if err := s.store.Delete(ctx, storage.KeyToken); err != nil {
		derr = fmt.Errorf("delete token: %w", err)
	}
	s.cur = Session{}
	s.seq++
	hooks := append([]func(){}, s.logoutHooks...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	s.notifier.Show("Session expired. Please login again.", notify.Warning)
	return derr
}

// Restore rehydrates the session from the persisted token. A token the
// server does not resolve is deleted. It is called once at startup.
func (s *Store) Restore(ctx context.Context) Session {
	token, ok, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		s.log.Warn("failed to read token", zap.Error(err))
		return s.Current()
	}
	if !ok || token == "" {
		return s.Current()
	}

	ticket := s.begin()
	profile, err := s.svc.Me(ctx, token)

	s.mu.Lock()
	if ticket != s.seq {
		s.mu.Unlock()
		s.log.Debug("discarding stale restore")
		return s.Current()
	}
	if err != nil {
		// A token left behind by a failed delete is rejected again next start.
		if derr := s.store.Delete(ctx, storage.KeyToken); derr != nil {
			s.log.Warn("failed to delete token", zap.Error(derr))
		}
		s.cur = Session{}
		s.seq++
		s.mu.Unlock()

		s.log.Info("session restore failed", zap.Error(err))
		if service.Kind(err) == service.KindTransport {
			s.notifier.Show("Connection error. Please try again.", notify.Error)
		} else {
			s.notifier.Show("Session expired. Please login again.", notify.Warning)
		}
		return Session{}
	}
	s.cur = Session{Token: token, User: &profile}
	s.seq++
	cur := s.cur.clone()
	s.mu.Unlock()

	s.notifier.Show(fmt.Sprintf("Welcome back, %s!", profile.Name), notify.Success)
	return cur
}

// Authenticate signs in with credentials: it validates them, exchanges them
// for a token, resolves the profile and then logs in.
func (s *Store) Authenticate(ctx context.Context, email, password string) (Session, error) {
	if err := ValidateCredentials("", email, password, false); err != nil {
		return Session{}, err
	}

	ticket := s.begin()
	token, err := s.svc.Login(ctx, email, password)
	if err != nil {
		s.authFailed(err)
		return Session{}, err
	}
	profile, err := s.svc.Me(ctx, token)
	if err != nil {
		s.authFailed(err)
		return Session{}, err
	}

	if err := s.commitLogin(ctx, ticket, token, profile); err != nil {
		return Session{}, err
	}
	return s.Current(), nil
}

// Register creates an account and signs in with the same credentials.
func (s *Store) Register(ctx context.Context, name, email, password string) (Session, error) {
	if err := ValidateCredentials(name, email, password, true); err != nil {
		return Session{}, err
	}

	profile, err := s.svc.Register(ctx, name, email, password)
	if err != nil {
		s.authFailed(err)
		return Session{}, err
	}
	s.log.Info("account registered", zap.String("email", profile.Email))

	sess, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	s.notifier.Show(fmt.Sprintf("Welcome to caseshop, %s!", profile.Name), notify.Success)
	return sess, nil
}

// begin takes a ticket for a request that will end in a transition.
func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// commitLogin installs the session unless ticket is stale. A zero ticket
// is never stale.
func (s *Store) commitLogin(ctx context.Context, ticket uint64, token string, profile service.Profile) error {
	if token == "" {
		return errors.New("login requires a token")
	}

	s.mu.Lock()
	if ticket != 0 && ticket != s.seq {
		s.mu.Unlock()
		s.log.Debug("discarding stale login")
		return ErrSuperseded
	}
	if err := s.store.Set(ctx, storage.KeyToken, token); err != nil {
		s.mu.Unlock()
		s.log.Warn("failed to persist token", zap.Error(err))
		return fmt.Errorf("save token: %w", err)
	}
	p := profile
	s.cur = Session{Token: token, User: &p}
	s.seq++
	cur := s.cur.clone()
	hooks := append([]func(Session){}, s.loginHooks...)
	s.mu.Unlock()

	s.notifier.Show(fmt.Sprintf("Welcome back, %s!", profile.Name), notify.Success)
	for _, fn := range hooks {
		fn(cur)
	}
	return nil
}

func (s *Store) authFailed(err error) {
	s.log.Info("authentication failed", zap.Error(err))
	if service.Kind(err) == service.KindTransport {
		s.notifier.Show("Network error. Please try again.", notify.Error)
		return
	}
	s.notifier.Show("Authentication failed", notify.Error)
}

func (s Session) clone() Session {
	if s.User == nil {
		return s
	}
	u := *s.User
	return Session{Token: s.Token, User: &u}
}
