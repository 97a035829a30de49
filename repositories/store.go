// Package repositories implements the data layer of the reference dev
// server. Everything lives in memory so the client's tests and local
// frontend work need no database; the real storefront talks to the remote
// production API instead.
package repositories

import (
	"errors"
	"sync"

	"beaute-shop/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrAlreadyReviewed   = errors.New("product already reviewed by this user")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrCouponInvalid     = errors.New("coupon is not valid")
)

// Account couples the public user record with server-side state the API
// never exposes directly.
type Account struct {
	User         models.User
	PasswordHash string
	Profile      models.Profile
}

// Store owns every collection behind one mutex so cross-collection
// operations (order creation touching stock) stay atomic.
type Store struct {
	mu sync.RWMutex

	accounts   []*Account
	categories []*models.Category
	products   []*models.Product
	orders     []*models.Order
	coupons    []*models.Coupon
	wishlists  map[int][]int   // user id -> product ids, insertion order
	newsletter map[string]bool // email -> active

	nextUserID    int
	nextProductID int
	nextOrderID   int
	nextReviewID  int
	nextItemID    int
}

func NewStore() *Store {
	return &Store{
		wishlists:     make(map[int][]int),
		newsletter:    make(map[string]bool),
		nextUserID:    1,
		nextProductID: 1,
		nextOrderID:   1,
		nextReviewID:  1,
		nextItemID:    1,
	}
}

// productByID must be called with the lock held.
func (s *Store) productByID(id int) *models.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// accountByID must be called with the lock held.
func (s *Store) accountByID(id int) *Account {
	for _, a := range s.accounts {
		if a.User.ID == id {
			return a
		}
	}
	return nil
}

// productView clones a stored product and fills its derived fields. Must be
// called with the lock held.
func (s *Store) productView(p *models.Product) models.Product {
	view := *p

	view.Reviews = make([]models.Review, len(p.Reviews))
	copy(view.Reviews, p.Reviews)
	view.ReviewCount = len(p.Reviews)

	if len(p.Reviews) > 0 {
		sum := 0
		for _, r := range p.Reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(p.Reviews))
		view.AverageRating = &avg
	} else {
		view.AverageRating = nil
	}

	return view
}

// categoryView fills product_count. Must be called with the lock held.
func (s *Store) categoryView(c *models.Category) models.Category {
	view := *c
	view.ProductCount = 0
	for _, p := range s.products {
		if p.IsActive && p.Category.ID == c.ID {
			view.ProductCount++
		}
	}
	return view
}

// orderView clones a stored order with its display label. Must be called
// with the lock held.
func (s *Store) orderView(o *models.Order) models.Order {
	view := *o
	view.StatusDisplay = models.OrderStatusLabels[o.Status]
	view.Items = make([]models.OrderItem, len(o.Items))
	copy(view.Items, o.Items)
	return view
}
