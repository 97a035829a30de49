// Package cart holds the session-local shopping cart. It is pure state:
// mutations never touch the network, and the server only learns about the
// cart when the caller turns it into an order.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"beaute-shop/models"
)

// Line is one (product, quantity) pair in the cart. UnitPrice is snapshotted
// when the line is created, so a later refetch of the product cannot silently
// change what the cart displays.
type Line struct {
	Product   models.Product
	Quantity  int
	UnitPrice decimal.Decimal
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart keeps one line per distinct product id, in first-seen order. All
// methods are safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges into an existing line for the same product, accumulating
// the quantity, or appends a new line at the end. Non-positive quantities
// are ignored.
func (c *Cart) AddItem(product models.Product, quantity int) {
	if quantity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, Line{
		Product:   product,
		Quantity:  quantity,
		UnitPrice: product.UnitPrice(),
	})
}

// RemoveItem drops the line for the given product id. Removing an absent
// product is a no-op.
func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity verbatim. A quantity of zero or
// less removes the line. Updating an absent product is a no-op.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Line, len(c.lines))
	copy(items, c.lines)
	return items
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Total is recomputed from the lines on every call, never stored.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// OrderItems converts the cart into the payload of POST /orders/.
func (c *Cart) OrderItems() []models.OrderItemRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.OrderItemRequest, len(c.lines))
	for i, l := range c.lines {
		items[i] = models.OrderItemRequest{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
		}
	}
	return items
}
