// Package app composes the storefront: it owns the stores, wires their
// hooks together and decides which screen to show.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"caseshop/internal/cart"
	"caseshop/internal/catalog"
	"caseshop/internal/config"
	"caseshop/internal/logging"
	"caseshop/internal/notify"
	"caseshop/internal/service"
	"caseshop/internal/session"
	"caseshop/internal/storage"
	"caseshop/internal/tasks"
)

// ErrLoginRequired is returned by gated actions without a session.
var ErrLoginRequired = errors.New("login required")

// Screen is what the composer renders.
type Screen string

const (
	ScreenHome       Screen = "home"
	ScreenProducts   Screen = "products"
	ScreenDashboard  Screen = "dashboard"
	ScreenProfile    Screen = "profile"
	ScreenRestricted Screen = "restricted"
)

// Options configures New.
type Options struct {
	Config  *config.Config
	Service service.Service
	Store   storage.Store
	Logger  *zap.Logger

	// Products defaults to the built-in catalog.
	Products []catalog.Product

	// QueueOptions are passed to the notification queue.
	QueueOptions []notify.Option
}

// App is the top-level composition.
type App struct {
	Config   *config.Config
	Log      *zap.Logger
	Store    storage.Store
	Toasts   *notify.Queue
	Session  *session.Store
	Cart     *cart.Ledger
	Tasks    *tasks.Collection
	Nav      *Navigator
	Prefs    *Preferences
	Products []catalog.Product
}

// New builds an App. Nothing is loaded until Start.
func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("app: config required")
	}
	if opts.Service == nil {
		return nil, errors.New("app: service required")
	}
	if opts.Store == nil {
		return nil, errors.New("app: store required")
	}
	log := logging.OrNop(opts.Logger)
	products := opts.Products
	if products == nil {
		products = catalog.Products()
	}

	toasts := notify.New(opts.Config.ToastDuration, opts.QueueOptions...)
	sess := session.New(opts.Service, opts.Store, toasts, log.Named("session"))
	a := &App{
		Config:   opts.Config,
		Log:      log,
		Store:    opts.Store,
		Toasts:   toasts,
		Session:  sess,
		Cart:     cart.New(opts.Store, toasts, products, log.Named("cart")),
		Tasks:    tasks.New(opts.Service, sess.Token, toasts, log.Named("tasks")),
		Nav:      NewNavigator(),
		Prefs:    newPreferences(opts.Store),
		Products: products,
	}

	sess.OnLogin(func(session.Session) { a.Nav.DismissAuth() })
	sess.OnLogout(func() {
		a.Nav.Reset()
		a.Tasks.Reset()
	})
	a.Tasks.OnUnauthorized(func(ctx context.Context) {
		if err := sess.Invalidate(ctx); err != nil {
			log.Warn("failed to clear rejected session", zap.Error(err))
		}
	})

	toasts.OnChange(func(t notify.Toast, visible bool) {
		if visible {
			log.Debug("toast", zap.String("kind", string(t.Kind)), zap.String("message", t.Message))
		}
	})
	return a, nil
}

// Start loads local state, restores the session and, only once a session
// is resolved, loads its tasks.
func (a *App) Start(ctx context.Context) error {
	if err := a.Cart.Load(ctx); err != nil {
		a.Log.Warn("ignoring unreadable cart", zap.Error(err))
	}
	if err := a.Prefs.Load(ctx); err != nil {
		a.Log.Warn("ignoring unreadable preferences", zap.Error(err))
	}

	if a.Session.Restore(ctx).Authenticated() {
		a.loadTasks(ctx)
	}
	return nil
}

// Close dismisses the visible toast and releases the store.
func (a *App) Close() error {
	a.Toasts.Dismiss()
	if c, ok := a.Store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Login signs in with credentials and loads the new session's tasks.
func (a *App) Login(ctx context.Context, email, password string) error {
	if _, err := a.Session.Authenticate(ctx, email, password); err != nil {
		return err
	}
	a.loadTasks(ctx)
	return nil
}

// Register creates an account, signs in and loads its tasks.
func (a *App) Register(ctx context.Context, name, email, password string) error {
	if _, err := a.Session.Register(ctx, name, email, password); err != nil {
		return err
	}
	a.loadTasks(ctx)
	return nil
}

func (a *App) loadTasks(ctx context.Context) {
	if err := a.Tasks.Load(ctx); err != nil && !errors.Is(err, tasks.ErrStale) {
		a.Log.Info("task load failed", zap.Error(err))
	}
}

// Screen returns the screen for the selected page. Gated pages without a
// session render the restricted screen.
func (a *App) Screen() Screen {
	page := a.Nav.Page()
	if page.RequiresSession() && !a.Session.Current().Authenticated() {
		return ScreenRestricted
	}
	return Screen(page)
}

// Show navigates to page and returns the screen to render. Opening a gated
// page without a session raises the auth prompt.
func (a *App) Show(page Page) Screen {
	a.Nav.Navigate(page)
	s := a.Screen()
	if s == ScreenRestricted {
		a.Nav.PromptAuth()
	}
	return s
}

// Product resolves ref against the catalog.
func (a *App) Product(ref string) (catalog.Product, error) {
	return catalog.Resolve(a.Products, ref)
}

// AddToCart adds qty of the referenced product. It needs a session; with
// one, it also records an order-processing task.
func (a *App) AddToCart(ctx context.Context, ref string, qty int) (catalog.Product, error) {
	p, err := a.Product(ref)
	if err != nil {
		return catalog.Product{}, err
	}
	sess := a.Session.Current()
	if !sess.Authenticated() {
		a.requireLogin("Please login to add items to cart")
		return p, ErrLoginRequired
	}
	if err := a.Cart.Add(ctx, p, qty); err != nil {
		return p, err
	}
	a.Tasks.Record(ctx, OrderTask(p, *sess.User))
	return p, nil
}

// AddToWishlist wishlists the referenced product. It needs a session.
func (a *App) AddToWishlist(ctx context.Context, ref string) (catalog.Product, error) {
	p, err := a.Product(ref)
	if err != nil {
		return catalog.Product{}, err
	}
	if !a.Session.Current().Authenticated() {
		a.requireLogin("Please login to add items to wishlist")
		return p, ErrLoginRequired
	}
	_, err = a.Cart.AddToWishlist(ctx, p)
	return p, err
}

// Checkout is gated on a session. Payment is not implemented.
func (a *App) Checkout() error {
	if !a.Session.Current().Authenticated() {
		a.requireLogin("Please login to continue checkout")
		return ErrLoginRequired
	}
	a.Toasts.Show("Checkout feature coming soon!", notify.Success)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	return a.Session.Logout(ctx)
}

// ToggleDarkMode flips the palette.
func (a *App) ToggleDarkMode(ctx context.Context) (bool, error) {
	return a.Prefs.ToggleDarkMode(ctx)
}

// ProfileSummary is the profile page content.
type ProfileSummary struct {
	User          service.Profile
	Tasks         tasks.Stats
	TotalSpent    float64
	CartItems     int
	WishlistItems int
}

// Profile summarizes the signed-in user's activity.
func (a *App) Profile() (ProfileSummary, error) {
	sess := a.Session.Current()
	if !sess.Authenticated() {
		return ProfileSummary{}, ErrLoginRequired
	}
	return ProfileSummary{
		User:          *sess.User,
		Tasks:         a.Tasks.Stats(),
		TotalSpent:    a.Cart.Total(),
		CartItems:     a.Cart.ItemCount(),
		WishlistItems: len(a.Cart.Wishlist()),
	}, nil
}

// OrderTask is the support task filed when a signed-in user adds p to the
// cart.
func OrderTask(p catalog.Product, user service.Profile) service.TaskDraft {
	return service.TaskDraft{
		Title:       "Order Processing: " + p.Name,
		Description: fmt.Sprintf("Process order for %s - %s. Customer: %s (%s)", p.Name, p.Price, user.Name, user.Email),
		Status:      service.StatusPending,
		Priority:    service.PriorityMedium,
		Category:    service.CategorySupport,
	}
}

func (a *App) requireLogin(msg string) {
	a.Nav.PromptAuth()
	a.Toasts.Show(msg, notify.Warning)
}
