package routes

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaute-shop/client"
	"beaute-shop/config"
	"beaute-shop/models"
	"beaute-shop/repositories"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

// newTestClient boots a freshly seeded dev server and returns the typed
// client pointed at it.
func newTestClient(t *testing.T) (*client.Client, *recordingNotifier) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret:     "test-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	}

	store := repositories.NewStore()
	store.Seed()

	router := gin.New()
	SetupRoutes(router, store, nil)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	notifier := &recordingNotifier{}
	c, err := client.New(server.URL, client.WithNotifier(notifier))
	require.NoError(t, err)
	return c, notifier
}

func login(t *testing.T, c *client.Client, username string) {
	t.Helper()
	_, err := c.Login(context.Background(), username, "motdepasse")
	require.NoError(t, err)
}

func TestLoginAndMe(t *testing.T) {
	c, notifier := newTestClient(t)
	ctx := context.Background()

	_, err := c.Login(ctx, "claire", "mauvais-mot-de-passe")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, []string{"Identifiants invalides"}, notifier.messages)

	login(t, c, "claire")
	user, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "claire", user.Username)
	assert.False(t, user.IsAdmin)
}

func TestMeRequiresAuthentication(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Me(context.Background())
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	login(t, c, "claire")
	before, _ := c.Credentials().Tokens()

	access, err := c.Refresh(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	after, ok := c.Credentials().Tokens()
	require.True(t, ok)
	assert.Equal(t, access, after.Access)
	assert.Equal(t, before.Refresh, after.Refresh, "refresh token is kept")

	// The new access token works.
	_, err = c.Me(ctx)
	assert.NoError(t, err)
}

func TestRegisterThenLogin(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	user, err := c.Register(ctx, models.RegisterRequest{
		Username:  "lea",
		Email:     "lea@example.com",
		Password:  "motdepasse",
		FirstName: "Léa",
	})
	require.NoError(t, err)
	assert.Equal(t, "lea", user.Username)

	_, err = c.Login(ctx, "lea", "motdepasse")
	require.NoError(t, err)

	// Duplicate username is refused.
	_, err = c.Register(ctx, models.RegisterRequest{
		Username: "lea", Email: "other@example.com", Password: "motdepasse",
	})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestProfileRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()
	login(t, c, "claire")

	profile, err := c.MyProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "claire", profile.User.Username)

	updated, err := c.UpdateProfile(ctx, models.UpdateProfileRequest{
		Phone:      "0700000000",
		Address:    "3 avenue des Roses, Lyon",
		Newsletter: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "0700000000", updated.Phone)
	assert.True(t, updated.Newsletter)
}

func TestProductListPaginationEnvelope(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	page, err := c.ListProducts(ctx, client.ProductListParams{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, page.Count, "inactive products are hidden")
	assert.Len(t, page.Results, 2)
	assert.Nil(t, page.Previous)
	require.NotNil(t, page.Next)
	assert.Contains(t, *page.Next, "page=2")

	page2, err := c.ListProducts(ctx, client.ProductListParams{PageSize: 2, Page: 2})
	require.NoError(t, err)
	require.NotNil(t, page2.Previous)
	assert.Contains(t, *page2.Previous, "page=1")
}

func TestProductListFilters(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	inStock := true
	page, err := c.ListProducts(ctx, client.ProductListParams{InStock: &inStock})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Count, "sold-out mask is excluded")

	page, err = c.ListProducts(ctx, client.ProductListParams{Search: "sérum"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Count)
	assert.Equal(t, "serum-vitamine-c-eclat", page.Results[0].Slug)

	page, err = c.ListProducts(ctx, client.ProductListParams{Category: "soins-visage"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Count)

	maxPrice := decimal.NewFromInt(15)
	page, err = c.ListProducts(ctx, client.ProductListParams{MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count, "masque 14.50 and shampoing 9.90")

	page, err = c.ListProducts(ctx, client.ProductListParams{Ordering: client.OrderingPriceAsc})
	require.NoError(t, err)
	require.NotEmpty(t, page.Results)
	assert.Equal(t, "shampoing-solide-doux", page.Results[0].Slug)

	featured := true
	page, err = c.ListProducts(ctx, client.ProductListParams{IsFeatured: &featured})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Count)
}

func TestProductDetailAndSimilar(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	product, err := c.GetProductBySlug(ctx, "creme-hydratante-aloe-vera")
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	require.NotNil(t, product.DiscountPrice)
	assert.True(t, product.UnitPrice().Equal(decimal.NewFromFloat(19.90)))

	similar, err := c.SimilarProducts(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, similar, 2, "the two other soins-visage products")
	for _, p := range similar {
		assert.NotEqual(t, product.ID, p.ID)
		assert.Equal(t, product.Category.ID, p.Category.ID)
	}

	_, err = c.GetProduct(ctx, 9999)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Produit introuvable", apiErr.Message)
}

func TestCategories(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	page, err := c.ListCategories(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Count)

	category, err := c.GetCategoryBySlug(ctx, "soins-visage")
	require.NoError(t, err)
	assert.Equal(t, 3, category.ProductCount)

	_, err = c.GetCategoryBySlug(ctx, "parfums")
	assert.Error(t, err)
}

func TestOrderLifecycle(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()
	login(t, c, "claire")

	order, err := c.CreateOrder(ctx, models.CreateOrderRequest{
		Items: []models.OrderItemRequest{
			{ProductID: 2, Quantity: 1}, // 39.00
			{ProductID: 4, Quantity: 1}, // 24.90 (discounted)
		},
		ShippingAddress: "12 rue des Lilas, 75011 Paris",
		Phone:           "0612345678",
		Email:           "claire@example.com",
		CouponCode:      "BIENVENUE10",
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "En attente", order.StatusDisplay)
	require.NotNil(t, order.Coupon)
	// Subtotal 63.90: free shipping, 10% coupon.
	assert.True(t, order.ShippingCost.IsZero())
	assert.True(t, order.DiscountAmount.Equal(decimal.NewFromFloat(6.39)), "discount is %s", order.DiscountAmount)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(57.51)), "total is %s", order.TotalAmount)
	assert.Equal(t, order.ShippingAddress, order.BillingAddress, "billing defaults to shipping")

	// Stock was decremented.
	product, err := c.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, product.Stock)

	// The order shows up in the list and detail.
	page, err := c.ListOrders(ctx, client.OrderListParams{})
	require.NoError(t, err)
	require.Equal(t, 1, page.Count)

	fetched, err := c.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 2)
	assert.True(t, fetched.Items[0].Price.Equal(decimal.NewFromFloat(39.00)), "price-at-purchase snapshot")

	// Cancelling restocks.
	cancelled, err := c.CancelOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	product, err = c.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, product.Stock)

	// A cancelled order cannot be cancelled again.
	_, err = c.CancelOrder(ctx, order.ID)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestOrderInsufficientStock(t *testing.T) {
	c, notifier := newTestClient(t)
	ctx := context.Background()
	login(t, c, "claire")

	_, err := c.CreateOrder(ctx, models.CreateOrderRequest{
		Items:           []models.OrderItemRequest{{ProductID: 3, Quantity: 1}}, // sold out
		ShippingAddress: "12 rue des Lilas, 75011 Paris",
		Phone:           "0612345678",
		Email:           "claire@example.com",
	})

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Stock insuffisant", apiErr.Message)
	assert.Contains(t, notifier.messages, "Stock insuffisant")

	// Nothing was sold.
	page, err := c.ListOrders(ctx, client.OrderListParams{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Count)
}

func TestShippingBelowThreshold(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()
	login(t, c, "claire")

	order, err := c.CreateOrder(ctx, models.CreateOrderRequest{
		Items:           []models.OrderItemRequest{{ProductID: 6, Quantity: 2}}, // 19.80
		ShippingAddress: "12 rue des Lilas, 75011 Paris",
		Phone:           "0612345678",
		Email:           "claire@example.com",
	})
	require.NoError(t, err)
	assert.True(t, order.ShippingCost.Equal(decimal.NewFromFloat(4.90)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(24.70)), "total is %s", order.TotalAmount)
}

func TestReviews(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()
	login(t, c, "claire")

	// Buy the shampoing first so the review is a verified purchase.
	_, err := c.CreateOrder(ctx, models.CreateOrderRequest{
		Items:           []models.OrderItemRequest{{ProductID: 6, Quantity: 1}},
		ShippingAddress: "12 rue des Lilas, 75011 Paris",
		Phone:           "0612345678",
		Email:           "claire@example.com",
	})
	require.NoError(t, err)

	review, err := c.SubmitReview(ctx, 6, models.ReviewRequest{Rating: 5, Comment: "Mousse très bien"})
	require.NoError(t, err)
	assert.True(t, review.IsVerifiedPurchase)

	// One review per user per product.
	_, err = c.SubmitReview(ctx, 6, models.ReviewRequest{Rating: 4, Comment: "Encore mieux"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)

	// The product aggregates reflect the review.
	product, err := c.GetProduct(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, product.ReviewCount)
	require.NotNil(t, product.AverageRating)
	assert.Equal(t, 5.0, *product.AverageRating)

	// A review on an unpurchased product is not verified.
	review, err = c.SubmitReview(ctx, 5, models.ReviewRequest{Rating: 3, Comment: "Correct"})
	require.NoError(t, err)
	assert.False(t, review.IsVerifiedPurchase)
}

func TestWishlist(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()
	login(t, c, "claire")

	wishlist, err := c.Wishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, wishlist.Products)

	wishlist, err = c.AddToWishlist(ctx, 1)
	require.NoError(t, err)
	wishlist, err = c.AddToWishlist(ctx, 4)
	require.NoError(t, err)
	require.Len(t, wishlist.Products, 2)
	assert.Equal(t, 1, wishlist.Products[0].ID)

	// Re-adding is idempotent.
	wishlist, err = c.AddToWishlist(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, wishlist.Products, 2)

	wishlist, err = c.RemoveFromWishlist(ctx, 1)
	require.NoError(t, err)
	require.Len(t, wishlist.Products, 1)
	assert.Equal(t, 4, wishlist.Products[0].ID)

	_, err = c.AddToWishlist(ctx, 9999)
	assert.Error(t, err)
}

func TestCoupons(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	verification, err := c.VerifyCoupon(ctx, "BIENVENUE10", decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, verification.Valid)
	assert.Equal(t, 10, verification.DiscountPercent)
	assert.True(t, verification.DiscountAmount.Equal(decimal.NewFromInt(4)))

	// Below the minimum amount.
	verification, err = c.VerifyCoupon(ctx, "BIENVENUE10", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.False(t, verification.Valid)
	assert.NotEmpty(t, verification.Message)

	// Expired campaign.
	verification, err = c.VerifyCoupon(ctx, "ETE2024", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.False(t, verification.Valid)

	// Unknown code.
	verification, err = c.VerifyCoupon(ctx, "RIEN", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.False(t, verification.Valid)

	// Apply consumes a use and returns the discounted total.
	application, err := c.ApplyCoupon(ctx, "BIENVENUE10", decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, application.DiscountAmount.Equal(decimal.NewFromInt(4)))
	assert.True(t, application.Total.Equal(decimal.NewFromInt(36)))

	_, err = c.ApplyCoupon(ctx, "RIEN", decimal.NewFromInt(40))
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestNewsletter(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SubscribeNewsletter(ctx, "claire@example.com"))
	require.NoError(t, c.UnsubscribeNewsletter(ctx, "claire@example.com"))

	err := c.UnsubscribeNewsletter(ctx, "claire@example.com")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestAdminEndpoints(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	// A customer is refused.
	login(t, c, "claire")
	_, err := c.LowStockProducts(ctx)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 403, apiErr.StatusCode)

	// Place an order as the customer so the dashboard has data.
	order, err := c.CreateOrder(ctx, models.CreateOrderRequest{
		Items:           []models.OrderItemRequest{{ProductID: 2, Quantity: 2}}, // 78.00
		ShippingAddress: "12 rue des Lilas, 75011 Paris",
		Phone:           "0612345678",
		Email:           "claire@example.com",
	})
	require.NoError(t, err)

	login(t, c, "admin")

	lowStock, err := c.LowStockProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, lowStock, 2, "sérum (6 left after the order) and masque (0)")

	stats, err := c.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 1, stats.RecentOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(78)))
	assert.Equal(t, 1, stats.TotalCustomers)
	require.NotEmpty(t, stats.TopProducts)
	assert.Equal(t, 2, stats.TopProducts[0].ID)
	assert.Equal(t, []models.StatusCount{{Status: "pending", Count: 1}}, stats.OrdersByStatus)

	recent, err := c.RecentOrders(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)

	customers, err := c.TopCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "claire", customers[0].User.Username)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.NewFromInt(78)))

	updated, err := c.UpdateOrderStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, "Expédiée", updated.StatusDisplay)

	_, err = c.UpdateOrderStatus(ctx, order.ID, "inconnu")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
}
