package repositories

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"beaute-shop/models"
)

// Flat shipping cost, waived above the free-shipping threshold.
var (
	shippingCost          = decimal.NewFromFloat(4.90)
	freeShippingThreshold = decimal.NewFromInt(50)
)

type OrderRepository struct {
	s *Store
}

func NewOrderRepository(s *Store) *OrderRepository {
	return &OrderRepository{s: s}
}

// Create places an order atomically: stock is checked and decremented,
// prices are snapshotted at their current value, and the optional coupon is
// validated against the subtotal and consumed.
func (r *OrderRepository) Create(user models.User, req models.CreateOrderRequest) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Validate every line before mutating anything.
	for _, item := range req.Items {
		p := r.s.productByID(item.ProductID)
		if p == nil || !p.IsActive {
			return nil, fmt.Errorf("%w: produit %d", ErrNotFound, item.ProductID)
		}
		if p.Stock < item.Quantity {
			return nil, fmt.Errorf("%w: stock insuffisant pour %s", ErrInsufficientStock, p.Name)
		}
	}

	now := time.Now()
	order := &models.Order{
		ID:              r.s.nextOrderID,
		User:            user,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Phone:           req.Phone,
		Email:           req.Email,
		Notes:           req.Notes,
		DiscountAmount:  decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if order.BillingAddress == "" {
		order.BillingAddress = req.ShippingAddress
	}

	subtotal := decimal.Zero
	for _, item := range req.Items {
		p := r.s.productByID(item.ProductID)
		price := p.UnitPrice()
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))

		order.Items = append(order.Items, models.OrderItem{
			ID:       r.s.nextItemID,
			Product:  r.s.productView(p),
			Quantity: item.Quantity,
			Price:    price,
		})
		r.s.nextItemID++
		p.Stock -= item.Quantity
	}

	if req.CouponCode != "" {
		coupon, discount, err := r.s.validateCoupon(req.CouponCode, subtotal)
		if err != nil {
			// Roll the stock back, nothing was sold.
			for _, item := range req.Items {
				r.s.productByID(item.ProductID).Stock += item.Quantity
			}
			return nil, err
		}
		coupon.TimesUsed++
		clone := *coupon
		order.Coupon = &clone
		order.DiscountAmount = discount
	}

	order.ShippingCost = shippingCost
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		order.ShippingCost = decimal.Zero
	}
	order.TotalAmount = subtotal.Add(order.ShippingCost).Sub(order.DiscountAmount)

	r.s.nextOrderID++
	r.s.orders = append(r.s.orders, order)

	view := r.s.orderView(order)
	return &view, nil
}

// ListFor returns the user's orders, newest first; staff sees every order.
func (r *OrderRepository) ListFor(user models.User, ordering string) []models.Order {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range r.s.orders {
		if user.IsAdmin || o.User.ID == user.ID {
			orders = append(orders, r.s.orderView(o))
		}
	}

	switch ordering {
	case "total_amount":
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].TotalAmount.LessThan(orders[j].TotalAmount)
		})
	case "status":
		sort.SliceStable(orders, func(i, j int) bool { return orders[i].Status < orders[j].Status })
	default:
		sort.SliceStable(orders, func(i, j int) bool { return orders[j].CreatedAt.Before(orders[i].CreatedAt) })
	}
	return orders
}

func (r *OrderRepository) ByID(id int, user models.User) (*models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.orders {
		if o.ID == id {
			if !user.IsAdmin && o.User.ID != user.ID {
				return nil, ErrNotFound
			}
			view := r.s.orderView(o)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}

func (r *OrderRepository) UpdateStatus(id int, status string) (*models.Order, error) {
	if _, ok := models.OrderStatusLabels[status]; !ok {
		return nil, ErrInvalidStatus
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, o := range r.s.orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedAt = time.Now()
			view := r.s.orderView(o)
			return &view, nil
		}
	}
	return nil, ErrNotFound
}

// Cancel puts a pending or confirmed order back, restocking its items.
func (r *OrderRepository) Cancel(id int, user models.User) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, o := range r.s.orders {
		if o.ID != id {
			continue
		}
		if !user.IsAdmin && o.User.ID != user.ID {
			return nil, ErrNotFound
		}
		if o.Status != models.OrderStatusPending && o.Status != models.OrderStatusConfirmed {
			return nil, ErrNotCancellable
		}

		for _, item := range o.Items {
			if p := r.s.productByID(item.Product.ID); p != nil {
				p.Stock += item.Quantity
			}
		}
		o.Status = models.OrderStatusCancelled
		o.UpdatedAt = time.Now()

		view := r.s.orderView(o)
		return &view, nil
	}
	return nil, ErrNotFound
}

func (r *OrderRepository) Recent(limit int) []models.Order {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range r.s.orders {
		orders = append(orders, r.s.orderView(o))
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[j].CreatedAt.Before(orders[i].CreatedAt) })

	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}

// HasPurchased reports whether the user has a non-cancelled order containing
// the product. Drives the verified-purchase flag on reviews.
func (r *OrderRepository) HasPurchased(userID, productID int) bool {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.orders {
		if o.User.ID != userID || o.Status == models.OrderStatusCancelled {
			continue
		}
		for _, item := range o.Items {
			if item.Product.ID == productID {
				return true
			}
		}
	}
	return false
}

// Stats aggregates the admin dashboard over a 30-day recent window.
func (r *OrderRepository) Stats() models.DashboardStats {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	stats := models.DashboardStats{
		TotalRevenue:  decimal.Zero,
		RecentRevenue: decimal.Zero,
	}

	byStatus := map[string]int{}
	orderCounts := map[int]int{} // product id -> units sold
	for _, o := range r.s.orders {
		stats.TotalOrders++
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		if o.CreatedAt.After(thirtyDaysAgo) {
			stats.RecentOrders++
			stats.RecentRevenue = stats.RecentRevenue.Add(o.TotalAmount)
		}
		byStatus[o.Status]++
		for _, item := range o.Items {
			orderCounts[item.Product.ID] += item.Quantity
		}
	}

	for _, a := range r.s.accounts {
		if !a.User.IsAdmin {
			stats.TotalCustomers++
		}
	}
	for _, p := range r.s.products {
		if p.IsActive && p.Stock <= 10 {
			stats.LowStockProducts++
		}
	}

	stats.OrdersByStatus = []models.StatusCount{}
	for status := range models.OrderStatusLabels {
		if count := byStatus[status]; count > 0 {
			stats.OrdersByStatus = append(stats.OrdersByStatus, models.StatusCount{Status: status, Count: count})
		}
	}
	sort.Slice(stats.OrdersByStatus, func(i, j int) bool {
		return stats.OrdersByStatus[i].Status < stats.OrdersByStatus[j].Status
	})

	type sold struct {
		id    int
		units int
	}
	ranking := []sold{}
	for id, units := range orderCounts {
		ranking = append(ranking, sold{id: id, units: units})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].units != ranking[j].units {
			return ranking[i].units > ranking[j].units
		}
		return ranking[i].id < ranking[j].id
	})

	stats.TopProducts = []models.Product{}
	for _, s := range ranking {
		if p := r.s.productByID(s.id); p != nil {
			stats.TopProducts = append(stats.TopProducts, r.s.productView(p))
		}
		if len(stats.TopProducts) == 5 {
			break
		}
	}

	return stats
}

// TopCustomers ranks non-staff accounts by total spend.
func (r *OrderRepository) TopCustomers(limit int) []models.TopCustomer {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	spent := map[int]*models.TopCustomer{}
	for _, o := range r.s.orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		tc, ok := spent[o.User.ID]
		if !ok {
			tc = &models.TopCustomer{User: o.User, TotalSpent: decimal.Zero}
			spent[o.User.ID] = tc
		}
		tc.OrderCount++
		tc.TotalSpent = tc.TotalSpent.Add(o.TotalAmount)
	}

	customers := []models.TopCustomer{}
	for _, tc := range spent {
		customers = append(customers, *tc)
	}
	sort.Slice(customers, func(i, j int) bool {
		if !customers[i].TotalSpent.Equal(customers[j].TotalSpent) {
			return customers[j].TotalSpent.LessThan(customers[i].TotalSpent)
		}
		return customers[i].User.ID < customers[j].User.ID
	})

	if len(customers) > limit {
		customers = customers[:limit]
	}
	return customers
}
