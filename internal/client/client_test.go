package client_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-storefront/internal/app"
	"github.com/sbilibin2017/gw-storefront/internal/client"
	"github.com/sbilibin2017/gw-storefront/internal/jwt"
	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/storage"
)

type env struct {
	db        *sqlx.DB
	client    *client.Client
	mugID     int64
	speakerID int64
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ctx := context.Background()
	db, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Migrate(ctx, db))

	e := &env{db: db}
	e.mugID = seedProduct(t, db, "Mug", "kitchen", 12.5, `["ceramic"]`)
	e.speakerID = seedProduct(t, db, "Speaker", "audio", 80, `["bluetooth","waterproof"]`)

	srv := httptest.NewServer(app.NewHandler(app.Deps{
		DB:  db,
		JWT: jwt.New(jwt.WithSecretKey("e2e-secret")),
	}))
	t.Cleanup(srv.Close)

	e.client = client.New(srv.URL+"/api", client.WithHTTPClient(srv.Client()))
	return e
}

func seedProduct(t *testing.T, db *sqlx.DB, name, category string, price float64, features string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowx(
		db.Rebind(`INSERT INTO products (name, price, category, features) VALUES (?, ?, ?, ?) RETURNING id`),
		name, price, category, features,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func count(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestClient_Session(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.client

	userID, err := c.Register(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "", userID.String())

	_, err = c.Register(ctx, "alice2", "a@x.com", "secret123")
	assert.Equal(t, http.StatusConflict, client.StatusCode(err))
	_, err = c.Register(ctx, "", "b@x.com", "secret123")
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(err))
	assert.Equal(t, 1, count(t, e.db, "users"))

	err = c.Login(ctx, "a@x.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, client.StatusCode(err))
	err = c.Login(ctx, "nobody@x.com", "secret123")
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))

	_, err = c.Profile(ctx)
	assert.ErrorIs(t, err, client.ErrNotSignedIn)

	require.NoError(t, c.Login(ctx, "a@x.com", "secret123"))
	require.NotNil(t, c.State().User())
	assert.Equal(t, "alice", c.State().User().Username)
	assert.Equal(t, userID.String(), c.State().User().ID)
	assert.NotEmpty(t, c.State().Token())
	assert.Empty(t, c.State().Cart())
	assert.Empty(t, c.State().Wishlist())

	profile, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.False(t, profile.CreatedAt.IsZero())

	c.Logout()
	assert.Nil(t, c.State().User())
	assert.ErrorIs(t, c.AddToCart(ctx, e.mugID, 1), client.ErrNotSignedIn)
}

func TestClient_CartWishlistAndOrders(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.client

	_, err := c.Register(ctx, "bob", "bob@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, c.Login(ctx, "bob@x.com", "pw"))

	// cart add accumulates
	require.NoError(t, c.AddToCart(ctx, e.mugID, 2))
	require.NoError(t, c.AddToCart(ctx, e.mugID, 3))
	cart := c.State().Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
	assert.Equal(t, "Mug", cart[0].Name)
	assert.Equal(t, models.Features{"ceramic"}, cart[0].Features)
	assert.Equal(t, 1, count(t, e.db, "cart_items"))

	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.AddToCart(ctx, 9999, 1)))
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.AddToCart(ctx, e.mugID, 0)))

	require.NoError(t, c.UpdateCart(ctx, e.mugID, 1))
	assert.Equal(t, 1, c.State().Cart()[0].Quantity)
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.UpdateCart(ctx, e.mugID, 0)))
	assert.Equal(t, http.StatusNotFound, client.StatusCode(c.UpdateCart(ctx, e.speakerID, 1)))

	require.NoError(t, c.AddToCart(ctx, e.speakerID, 2))
	assert.Equal(t, 3, c.State().CartCount())
	assert.InDelta(t, 12.5+2*80, c.State().CartTotal(), 1e-9)

	// wishlist duplicate add is a conflict
	require.NoError(t, c.AddToWishlist(ctx, e.speakerID))
	assert.Equal(t, http.StatusConflict, client.StatusCode(c.AddToWishlist(ctx, e.speakerID)))
	assert.True(t, c.State().InWishlist(e.speakerID))
	assert.Len(t, c.State().Wishlist(), 1)
	assert.Equal(t, 1, count(t, e.db, "wishlist_items"))
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.AddToWishlist(ctx, 9999)))

	require.NoError(t, c.RemoveFromWishlist(ctx, e.speakerID))
	assert.False(t, c.State().InWishlist(e.speakerID))
	assert.Equal(t, http.StatusNotFound, client.StatusCode(c.RemoveFromWishlist(ctx, e.speakerID)))

	// checkout stores one header and one line per cart entry
	orderID, err := c.Checkout(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", orderID.String())
	assert.Equal(t, 1, count(t, e.db, "orders"))
	assert.Equal(t, 2, count(t, e.db, "order_items"))

	// a failing line rolls back the whole order
	_, err = c.PlaceOrder(ctx, []models.OrderItem{
		{ProductID: e.mugID, Quantity: 1, Price: 12.5},
		{ProductID: 9999, Quantity: 1, Price: 1},
	}, 13.5)
	assert.Equal(t, http.StatusInternalServerError, client.StatusCode(err))
	assert.ErrorContains(t, err, "Error processing order.")
	assert.Equal(t, 1, count(t, e.db, "orders"))
	assert.Equal(t, 2, count(t, e.db, "order_items"))

	_, err = c.PlaceOrder(ctx, nil, 10)
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(err))

	require.NoError(t, c.RemoveFromCart(ctx, e.mugID))
	require.Len(t, c.State().Cart(), 1)
	assert.Equal(t, e.speakerID, c.State().Cart()[0].ID)
	assert.Equal(t, http.StatusNotFound, client.StatusCode(c.RemoveFromCart(ctx, e.mugID)))
}

func TestClient_CartQuantityLimit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	c := e.client

	_, err := c.Register(ctx, "erin", "erin@x.com", "pw")
	require.NoError(t, err)
	require.NoError(t, c.Login(ctx, "erin@x.com", "pw"))

	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.AddToCart(ctx, e.mugID, math.MaxInt64)))
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.AddToCart(ctx, e.mugID, models.MaxCartQuantity+1)))
	assert.Equal(t, 0, count(t, e.db, "cart_items"))

	require.NoError(t, c.AddToCart(ctx, e.mugID, models.MaxCartQuantity))
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.AddToCart(ctx, e.mugID, 1)))
	assert.Equal(t, http.StatusBadRequest, client.StatusCode(c.UpdateCart(ctx, e.mugID, models.MaxCartQuantity+1)))

	require.NoError(t, c.Sync(ctx))
	cart := c.State().Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, models.MaxCartQuantity, cart[0].Quantity)

	var kind string
	require.NoError(t, e.db.Get(&kind, "SELECT typeof(quantity) FROM cart_items"))
	assert.Equal(t, "integer", kind)
}

func TestClient_Catalog(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	all, err := e.client.Products(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, e.mugID, all[0].ID)

	audio, err := e.client.Products(ctx, "audio")
	require.NoError(t, err)
	require.Len(t, audio, 1)
	assert.Equal(t, "Speaker", audio[0].Name)

	p, err := e.client.Product(ctx, e.speakerID)
	require.NoError(t, err)
	assert.Equal(t, models.Features{"bluetooth", "waterproof"}, p.Features)
	assert.Nil(t, p.OriginalPrice)

	_, err = e.client.Product(ctx, 9999)
	assert.Equal(t, http.StatusNotFound, client.StatusCode(err))
}

func TestClient_UsersAreIsolated(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	other := client.New(e.client.BaseURL())
	for _, u := range []struct {
		c     *client.Client
		name  string
		email string
	}{{e.client, "carol", "carol@x.com"}, {other, "dave", "dave@x.com"}} {
		_, err := u.c.Register(ctx, u.name, u.email, "pw")
		require.NoError(t, err)
		require.NoError(t, u.c.Login(ctx, u.email, "pw"))
	}

	require.NoError(t, e.client.AddToCart(ctx, e.mugID, 1))
	require.NoError(t, other.Sync(ctx))
	assert.Empty(t, other.State().Cart())
	assert.Equal(t, http.StatusNotFound, client.StatusCode(other.RemoveFromCart(ctx, e.mugID)))
}

func TestAPIError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).Products(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, client.StatusCode(err))
	assert.EqualError(t, err, "api error 502: Bad Gateway")
}
