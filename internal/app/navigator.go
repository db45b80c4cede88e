package app

import (
	"fmt"
	"sync"
)

// Page is a navigation target.
type Page string

const (
	PageHome      Page = "home"
	PageProducts  Page = "products"
	PageDashboard Page = "dashboard"
	PageProfile   Page = "profile"
)

// Pages lists the navigation targets in menu order.
var Pages = []Page{PageHome, PageProducts, PageDashboard, PageProfile}

// ParsePage validates a page name.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page: %s", s)
}

// RequiresSession reports whether p is only shown to signed-in users.
func (p Page) RequiresSession() bool {
	return p == PageDashboard || p == PageProfile
}

// Navigator tracks the selected page and whether the auth prompt is up.
type Navigator struct {
	mu         sync.Mutex
	page       Page
	authPrompt bool
}

// NewNavigator starts on the home page.
func NewNavigator() *Navigator {
	return &Navigator{page: PageHome}
}

// Navigate selects p.
func (n *Navigator) Navigate(p Page) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.page = p
}

// Page returns the selected page.
func (n *Navigator) Page() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.page
}

// Reset returns to the home page and closes the auth prompt.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.page = PageHome
	n.authPrompt = false
}

// PromptAuth asks the user to sign in.
func (n *Navigator) PromptAuth() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.authPrompt = true
}

// DismissAuth closes the auth prompt.
func (n *Navigator) DismissAuth() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.authPrompt = false
}

// AuthPrompt reports whether the auth prompt is up.
func (n *Navigator) AuthPrompt() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.authPrompt
}
