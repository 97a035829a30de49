package repositories

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"beaute-shop/models"
)

type ProductRepository struct {
	s *Store
}

func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

type ProductFilters struct {
	Search     string
	Category   string // slug or numeric id
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Ordering   string
	IsFeatured *bool
	InStock    *bool
}

// List returns every active product matching the filters, ordered. The
// caller applies pagination on top.
func (r *ProductRepository) List(filters ProductFilters) []models.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.s.products {
		if !p.IsActive {
			continue
		}
		if !matchesFilters(p, filters) {
			continue
		}
		products = append(products, r.s.productView(p))
	}

	sortProducts(products, filters.Ordering)
	return products
}

func matchesFilters(p *models.Product, filters ProductFilters) bool {
	if filters.Search != "" {
		needle := strings.ToLower(filters.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Category.Name), needle) {
			return false
		}
	}
	if filters.Category != "" {
		if p.Category.Slug != filters.Category && strconv.Itoa(p.Category.ID) != filters.Category {
			return false
		}
	}
	if filters.MinPrice != nil && p.UnitPrice().LessThan(*filters.MinPrice) {
		return false
	}
	if filters.MaxPrice != nil && p.UnitPrice().GreaterThan(*filters.MaxPrice) {
		return false
	}
	if filters.IsFeatured != nil && p.IsFeatured != *filters.IsFeatured {
		return false
	}
	if filters.InStock != nil && p.IsInStock() != *filters.InStock {
		return false
	}
	return true
}

func sortProducts(products []models.Product, ordering string) {
	switch ordering {
	case "price":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].UnitPrice().LessThan(products[j].UnitPrice())
		})
	case "-price":
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].UnitPrice().LessThan(products[i].UnitPrice())
		})
	case "name":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	default: // -created_at
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].CreatedAt.Before(products[i].CreatedAt)
		})
	}
}

func (r *ProductRepository) ByID(id int) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p := r.s.productByID(id)
	if p == nil || !p.IsActive {
		return nil, ErrNotFound
	}
	view := r.s.productView(p)
	return &view, nil
}

func (r *ProductRepository) BySlug(slug string) (*models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.products {
		if p.Slug == slug && p.IsActive {
			view := r.s.productView(p)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ProductRepository) Featured() []models.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.s.products {
		if p.IsActive && p.IsFeatured {
			products = append(products, r.s.productView(p))
		}
	}
	return products
}

// Similar returns other active products of the same category.
func (r *ProductRepository) Similar(id, limit int) ([]models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	base := r.s.productByID(id)
	if base == nil || !base.IsActive {
		return nil, ErrNotFound
	}

	products := []models.Product{}
	for _, p := range r.s.products {
		if p.ID == id || !p.IsActive || p.Category.ID != base.Category.ID {
			continue
		}
		products = append(products, r.s.productView(p))
		if len(products) == limit {
			break
		}
	}
	return products, nil
}

func (r *ProductRepository) LowStock(threshold int) []models.Product {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.s.products {
		if p.IsActive && p.Stock <= threshold {
			products = append(products, r.s.productView(p))
		}
	}
	return products
}

// AddReview appends a review, rejecting a second review from the same user.
func (r *ProductRepository) AddReview(productID int, user models.User, rating int, comment string, verified bool) (*models.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p := r.s.productByID(productID)
	if p == nil || !p.IsActive {
		return nil, ErrNotFound
	}

	for _, review := range p.Reviews {
		if review.User.ID == user.ID {
			return nil, ErrAlreadyReviewed
		}
	}

	review := models.Review{
		ID:                 r.s.nextReviewID,
		User:               user,
		Rating:             rating,
		Comment:            comment,
		IsVerifiedPurchase: verified,
		CreatedAt:          time.Now(),
	}
	r.s.nextReviewID++
	p.Reviews = append(p.Reviews, review)

	return &review, nil
}

func (r *ProductRepository) Categories() []models.Category {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	categories := []models.Category{}
	for _, c := range r.s.categories {
		if c.IsActive {
			categories = append(categories, r.s.categoryView(c))
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

func (r *ProductRepository) CategoryByID(id int) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.ID == id && c.IsActive {
			view := r.s.categoryView(c)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ProductRepository) CategoryBySlug(slug string) (*models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.categories {
		if c.Slug == slug && c.IsActive {
			view := r.s.categoryView(c)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}
