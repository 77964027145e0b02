// Package client is a Go client for the storefront API. It keeps the signed-in
// user, cart and wishlist in a local State and re-reads them after every
// mutation, so the cache always mirrors the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// ErrNotSignedIn is returned by calls that need a token before Login.
var ErrNotSignedIn = errors.New("not signed in")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Client talks to the API rooted at baseURL (for example http://localhost:3000/api).
type Client struct {
	baseURL    string
	httpClient *http.Client
	state      *State
}

// Opt configures a Client.
type Opt func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Opt {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a signed-out client.
func New(baseURL string, opts ...Opt) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		state:      &State{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State exposes the cached session.
func (c *Client) State() *State {
	return c.state
}

// Register creates an account. It does not sign in.
func (c *Client) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	var resp struct {
		UserID uuid.UUID `json:"userId"`
	}
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/register", body, false, &resp); err != nil {
		return uuid.Nil, err
	}
	return resp.UserID, nil
}

// Login signs in and loads the cart and wishlist.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string      `json:"token"`
		User  SessionUser `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", body, false, &resp); err != nil {
		return err
	}

	c.state.setSession(resp.Token, &resp.User)
	return c.Sync(ctx)
}

// Logout drops the cached session.
func (c *Client) Logout() {
	c.state.clear()
}

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, true, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Sync reloads the cart and wishlist from the server.
func (c *Client) Sync(ctx context.Context) error {
	if err := c.refreshCart(ctx); err != nil {
		return err
	}
	return c.refreshWishlist(ctx)
}

// AddToCart adds quantity units of a product and refreshes the cart.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	body := map[string]any{"productId": productID, "quantity": quantity}
	if err := c.do(ctx, http.MethodPost, "/cart/add", body, true, nil); err != nil {
		return err
	}
	return c.refreshCart(ctx)
}

// UpdateCart sets the quantity of a cart entry and refreshes the cart.
func (c *Client) UpdateCart(ctx context.Context, productID int64, quantity int) error {
	body := map[string]any{"quantity": quantity}
	if err := c.do(ctx, http.MethodPut, "/cart/update/"+strconv.FormatInt(productID, 10), body, true, nil); err != nil {
		return err
	}
	return c.refreshCart(ctx)
}

// RemoveFromCart deletes a cart entry and refreshes the cart.
func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	if err := c.do(ctx, http.MethodDelete, "/cart/remove/"+strconv.FormatInt(productID, 10), nil, true, nil); err != nil {
		return err
	}
	return c.refreshCart(ctx)
}

// AddToWishlist adds a product and refreshes the wishlist.
func (c *Client) AddToWishlist(ctx context.Context, productID int64) error {
	body := map[string]any{"productId": productID}
	if err := c.do(ctx, http.MethodPost, "/wishlist/add", body, true, nil); err != nil {
		return err
	}
	return c.refreshWishlist(ctx)
}

// RemoveFromWishlist deletes a product and refreshes the wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) error {
	if err := c.do(ctx, http.MethodDelete, "/wishlist/remove/"+strconv.FormatInt(productID, 10), nil, true, nil); err != nil {
		return err
	}
	return c.refreshWishlist(ctx)
}

// PlaceOrder submits an order and returns its id.
func (c *Client) PlaceOrder(ctx context.Context, items []models.OrderItem, totalAmount float64) (uuid.UUID, error) {
	var resp struct {
		OrderID uuid.UUID `json:"orderId"`
	}
	body := map[string]any{"items": items, "totalAmount": totalAmount}
	if err := c.do(ctx, http.MethodPost, "/orders", body, true, &resp); err != nil {
		return uuid.Nil, err
	}
	return resp.OrderID, nil
}

// Checkout orders the cached cart at its cached prices.
func (c *Client) Checkout(ctx context.Context) (uuid.UUID, error) {
	cart := c.state.Cart()
	items := make([]models.OrderItem, 0, len(cart))
	for _, item := range cart {
		items = append(items, models.OrderItem{ProductID: item.ID, Quantity: item.Quantity, Price: item.Price})
	}
	return c.PlaceOrder(ctx, items, c.state.CartTotal())
}

// Products lists the catalog, optionally filtered by category.
func (c *Client) Products(ctx context.Context, category string) ([]models.Product, error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, path, nil, false, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one catalog entry.
func (c *Client) Product(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(productID, 10), nil, false, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) refreshCart(ctx context.Context) error {
	var items []models.CartItem
	if err := c.do(ctx, http.MethodGet, "/cart", nil, true, &items); err != nil {
		return err
	}
	c.state.setCart(items)
	return nil
}

func (c *Client) refreshWishlist(ctx context.Context) error {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, true, &products); err != nil {
		return err
	}
	c.state.setWishlist(products)
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		token := c.state.Token()
		if token == "" {
			return ErrNotSignedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &e) == nil && e.Error != "" {
			apiErr.Message = e.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		logger.Log.Debugw("api call failed", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}
