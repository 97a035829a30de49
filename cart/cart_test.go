package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"beaute-shop/models"
)

func newTestProduct(id int, price float64) models.Product {
	return models.Product{
		ID:    id,
		Name:  "Produit",
		Price: decimal.NewFromFloat(price),
	}
}

func TestAddItemDistinctProducts(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct(3, 5.00), 1)
	c.AddItem(newTestProduct(1, 10.00), 2)
	c.AddItem(newTestProduct(2, 7.50), 1)

	items := c.Items()
	assert.Len(t, items, 3)

	// One line per id, in first-seen order.
	assert.Equal(t, 3, items[0].Product.ID)
	assert.Equal(t, 1, items[1].Product.ID)
	assert.Equal(t, 2, items[2].Product.ID)
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	c := New()
	p := newTestProduct(1, 10.00)

	c.AddItem(p, 2)
	c.AddItem(p, 3)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(50)), "total is %s", c.Total())
}

func TestAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct(1, 10.00), 0)
	c.AddItem(newTestProduct(2, 10.00), -3)
	assert.Equal(t, 0, c.Len())
}

func TestAddItemUsesDiscountPrice(t *testing.T) {
	discount := decimal.NewFromFloat(8.00)
	p := newTestProduct(1, 10.00)
	p.DiscountPrice = &discount

	c := New()
	c.AddItem(p, 2)

	assert.True(t, c.Total().Equal(decimal.NewFromInt(16)), "total is %s", c.Total())
}

func TestUpdateQuantity(t *testing.T) {
	testCases := []struct {
		name          string
		productID     int
		quantity      int
		expectedLines int
		expectedQty   int
	}{
		{name: "sets quantity verbatim", productID: 1, quantity: 1, expectedLines: 2, expectedQty: 1},
		{name: "does not accumulate", productID: 1, quantity: 7, expectedLines: 2, expectedQty: 7},
		{name: "zero removes the line", productID: 1, quantity: 0, expectedLines: 1},
		{name: "negative removes the line", productID: 1, quantity: -2, expectedLines: 1},
		{name: "absent id is a no-op", productID: 99, quantity: 4, expectedLines: 2, expectedQty: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.AddItem(newTestProduct(1, 10.00), 5)
			c.AddItem(newTestProduct(2, 3.00), 1)

			c.UpdateQuantity(tc.productID, tc.quantity)

			items := c.Items()
			assert.Len(t, items, tc.expectedLines)
			if tc.expectedLines == 2 {
				assert.Equal(t, tc.expectedQty, items[0].Quantity)
				// The other line is untouched.
				assert.Equal(t, 2, items[1].Product.ID)
				assert.Equal(t, 1, items[1].Quantity)
			}
		})
	}
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct(1, 10.00), 1)
	c.AddItem(newTestProduct(2, 5.00), 1)

	c.RemoveItem(99)
	assert.Equal(t, 2, c.Len(), "removing an absent id leaves the cart unchanged")

	c.RemoveItem(1)
	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct(1, 10.00), 2)
	c.AddItem(newTestProduct(2, 5.00), 1)

	c.Clear()

	assert.Empty(t, c.Items())
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, 0, c.Count())
}

// Mirrors the reference scenario: add, merge, update, remove.
func TestCartScenario(t *testing.T) {
	c := New()
	p := newTestProduct(1, 10.00)

	c.AddItem(p, 2)
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Total().Equal(decimal.NewFromInt(20)))

	c.AddItem(p, 3)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 5, c.Items()[0].Quantity)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(50)))

	c.UpdateQuantity(1, 1)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(10)))

	c.RemoveItem(1)
	assert.Empty(t, c.Items())
	assert.True(t, c.Total().IsZero())
}

func TestOrderItems(t *testing.T) {
	c := New()
	c.AddItem(newTestProduct(4, 12.00), 2)
	c.AddItem(newTestProduct(9, 3.00), 1)

	items := c.OrderItems()
	assert.Equal(t, []models.OrderItemRequest{
		{ProductID: 4, Quantity: 2},
		{ProductID: 9, Quantity: 1},
	}, items)
}
