// Package cart implements the shopping cart and wishlist ledger. Mutations
// apply locally without server confirmation and are mirrored in full to
// persistent storage.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"caseshop/internal/catalog"
	"caseshop/internal/logging"
	"caseshop/internal/notify"
	"caseshop/internal/storage"
)

// ErrInvalidQuantity is returned when adding fewer than one unit.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Line is one product/quantity pairing. Quantity is always >= 1.
type Line struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is the line's unit price times quantity.
func (l Line) Subtotal() float64 {
	return catalog.ParsePrice(l.Price) * float64(l.Quantity)
}

// WishItem is a wishlisted product reference.
type WishItem struct {
	ProductID int    `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
}

// Ledger holds the cart lines and the wishlist.
type Ledger struct {
	mu       sync.Mutex
	store    storage.Store
	notifier notify.Notifier
	products []catalog.Product
	log      *zap.Logger

	lines    []Line
	wishlist []WishItem
}

// New creates an empty ledger. products is used to name items whose line
// is already gone.
func New(store storage.Store, notifier notify.Notifier, products []catalog.Product, log *zap.Logger) *Ledger {
	return &Ledger{
		store:    store,
		notifier: notifier,
		products: products,
		log:      logging.OrNop(log),
	}
}

// Load rehydrates cart and wishlist from storage. Absent keys are empty.
// Lines with a non-positive quantity are dropped and duplicates merged.
// Each key is decoded on its own: an unreadable cart still loads the
// wishlist and the reverse. The returned error joins both failures.
func (l *Ledger) Load(ctx context.Context) error {
	var cartErr, wishErr error
	var lines []Line
	if err := storage.GetJSON(ctx, l.store, storage.KeyCartItems, &lines); err != nil {
		cartErr = fmt.Errorf("load cart: %w", err)
		lines = nil
	}
	var wish []WishItem
	if err := storage.GetJSON(ctx, l.store, storage.KeyWishlist, &wish); err != nil {
		wishErr = fmt.Errorf("load wishlist: %w", err)
		wish = nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = normalizeLines(lines)
	l.wishlist = normalizeWishlist(wish)
	return errors.Join(cartErr, wishErr)
}

// Add puts qty units of p into the cart, merging into an existing line.
func (l *Ledger) Add(ctx context.Context, p catalog.Product, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	next := cloneLines(l.lines)
	i := indexLine(next, p.ID)
	if i >= 0 {
		next[i].Quantity += qty
	} else {
		next = append(next, Line{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: qty})
	}
	err := l.commitLinesLocked(ctx, next)
	l.mu.Unlock()
	if err != nil {
		return err
	}

	if i >= 0 {
		l.notifier.Show(fmt.Sprintf("Updated %s quantity!", p.Name), notify.Success)
	} else {
		l.notifier.Show(fmt.Sprintf("%s added to cart!", p.Name), notify.Success)
	}
	return nil
}

// UpdateQuantity overwrites a line's quantity. qty <= 0 removes the line.
// Unknown products are ignored.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID, qty int) error {
	if qty <= 0 {
		return l.Remove(ctx, productID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexLine(l.lines, productID)
	if i < 0 {
		return nil
	}
	next := cloneLines(l.lines)
	next[i].Quantity = qty
	return l.commitLinesLocked(ctx, next)
}

// Remove deletes the line for productID.
func (l *Ledger) Remove(ctx context.Context, productID int) error {
	l.mu.Lock()
	i := indexLine(l.lines, productID)
	var name string
	var err error
	if i >= 0 {
		name = l.lines[i].Name
		next := cloneLines(l.lines)
		next = append(next[:i], next[i+1:]...)
		err = l.commitLinesLocked(ctx, next)
	} else if p, ok := catalog.Find(l.products, productID); ok {
		name = p.Name
	}
	l.mu.Unlock()
	if err != nil {
		return err
	}

	if name == "" {
		l.notifier.Show("Item removed from cart", notify.Success)
	} else {
		l.notifier.Show(fmt.Sprintf("%s removed from cart", name), notify.Success)
	}
	return nil
}

// Clear empties the cart.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	err := l.commitLinesLocked(ctx, nil)
	l.mu.Unlock()
	if err != nil {
		return err
	}
	l.notifier.Show("Cart cleared successfully!", notify.Success)
	return nil
}

// AddToWishlist adds p unless it is already wishlisted. It reports whether
// the wishlist changed.
func (l *Ledger) AddToWishlist(ctx context.Context, p catalog.Product) (bool, error) {
	l.mu.Lock()
	if indexWish(l.wishlist, p.ID) >= 0 {
		l.mu.Unlock()
		l.notifier.Show("Already in wishlist!", notify.Warning)
		return false, nil
	}
	next := append(cloneWishlist(l.wishlist), WishItem{ProductID: p.ID, Name: p.Name, Price: p.Price})
	err := l.commitWishlistLocked(ctx, next)
	l.mu.Unlock()
	if err != nil {
		return false, err
	}
	l.notifier.Show(fmt.Sprintf("%s added to wishlist!", p.Name), notify.Success)
	return true, nil
}

// RemoveFromWishlist drops productID from the wishlist.
func (l *Ledger) RemoveFromWishlist(ctx context.Context, productID int) error {
	l.mu.Lock()
	i := indexWish(l.wishlist, productID)
	var name string
	var err error
	if i >= 0 {
		name = l.wishlist[i].Name
		next := cloneWishlist(l.wishlist)
		next = append(next[:i], next[i+1:]...)
		err = l.commitWishlistLocked(ctx, next)
	} else if p, ok := catalog.Find(l.products, productID); ok {
		name = p.Name
	}
	l.mu.Unlock()
	if err != nil {
		return err
	}

	if name == "" {
		l.notifier.Show("Item removed from wishlist", notify.Success)
	} else {
		l.notifier.Show(fmt.Sprintf("%s removed from wishlist", name), notify.Success)
	}
	return nil
}

// Total is the sum of unit price times quantity over all lines.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total float64
	for _, line := range l.lines {
		total += line.Subtotal()
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (l *Ledger) ItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Lines returns a copy of the cart lines in insertion order.
func (l *Ledger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneLines(l.lines)
}

// Wishlist returns a copy of the wishlist in insertion order.
func (l *Ledger) Wishlist() []WishItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneWishlist(l.wishlist)
}

// InWishlist reports whether productID is wishlisted.
func (l *Ledger) InWishlist(productID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return indexWish(l.wishlist, productID) >= 0
}

// commitLinesLocked persists next and only then makes it current, so memory
// never runs ahead of storage.
func (l *Ledger) commitLinesLocked(ctx context.Context, next []Line) error {
	if next == nil {
		next = []Line{}
	}
	if err := storage.SetJSON(ctx, l.store, storage.KeyCartItems, next); err != nil {
		l.log.Warn("failed to persist cart", zap.Error(err))
		return fmt.Errorf("save cart: %w", err)
	}
	l.lines = next
	return nil
}

func (l *Ledger) commitWishlistLocked(ctx context.Context, next []WishItem) error {
	if next == nil {
		next = []WishItem{}
	}
	if err := storage.SetJSON(ctx, l.store, storage.KeyWishlist, next); err != nil {
		l.log.Warn("failed to persist wishlist", zap.Error(err))
		return fmt.Errorf("save wishlist: %w", err)
	}
	l.wishlist = next
	return nil
}

func indexLine(lines []Line, productID int) int {
	for i, line := range lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func indexWish(items []WishItem, productID int) int {
	for i, it := range items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

func cloneWishlist(items []WishItem) []WishItem {
	out := make([]WishItem, len(items))
	copy(out, items)
	return out
}

// normalizeLines drops non-positive quantities and merges duplicate products read from storage.
func normalizeLines(in []Line) []Line {
	out := make([]Line, 0, len(in))
	for _, line := range in {
		if line.Quantity < 1 {
			continue
		}
		if i := indexLine(out, line.ProductID); i >= 0 {
			out[i].Quantity += line.Quantity
			continue
		}
		out = append(out, line)
	}
	return out
}

func normalizeWishlist(in []WishItem) []WishItem {
	out := make([]WishItem, 0, len(in))
	for _, it := range in {
		if indexWish(out, it.ProductID) >= 0 {
			continue
		}
		out = append(out, it)
	}
	return out
}
