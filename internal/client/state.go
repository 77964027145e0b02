package client

import (
	"sync"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// SessionUser is the identity returned at login.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// State caches the session, cart and wishlist of one signed-in user.
// Readers always get copies.
type State struct {
	mu       sync.RWMutex
	token    string
	user     *SessionUser
	cart     []models.CartItem
	wishlist []models.Product
}

func (s *State) setSession(token string, user *SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

func (s *State) setCart(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = items
}

func (s *State) setWishlist(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist = products
}

func (s *State) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.cart = nil
	s.wishlist = nil
}

// Token returns the bearer token, empty when signed out.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user or nil.
func (s *State) User() *SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Cart returns the cached cart.
func (s *State) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Wishlist returns the cached wishlist.
func (s *State) Wishlist() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// CartCount is the total quantity across cart entries.
func (s *State) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, item := range s.cart {
		n += item.Quantity
	}
	return n
}

// CartTotal is the sum of price times quantity.
func (s *State) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, item := range s.cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// InWishlist reports whether productID is in the cached wishlist.
func (s *State) InWishlist(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.wishlist {
		if p.ID == productID {
			return true
		}
	}
	return false
}
