package cart

import (
	"fmt"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

// Cart maintains the client-side pending-purchase set. Every mutation
// persists the full snapshot through the Store so the cart survives reloads.
// Cart is not safe for concurrent use; it models a single client session.
type Cart struct {
	store Store
	items []domain.CartItem
}

// New loads a Cart from the store. Load errors other than corruption are
// returned; corruption is handled inside the store and yields an empty cart.
func New(store Store) (*Cart, error) {
	items, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Cart{store: store, items: items}, nil
}

// Items returns a copy of the cart entries.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add puts one unit of the product into the cart. An existing
// (product, sponsor) entry has its quantity incremented instead of a second
// row being appended.
func (c *Cart) Add(item domain.CartItem) error {
	for i := range c.items {
		if c.items[i].SameIdentity(item.ProductID, item.SponsorID) {
			c.items[i].Quantity++
			return c.persist()
		}
	}
	item.Quantity = 1
	c.items = append(c.items, item)
	return c.persist()
}

// Remove deletes the (product, sponsor) entry if present.
func (c *Cart) Remove(productID int64, sponsorID *int64) error {
	kept := c.items[:0]
	for _, it := range c.items {
		if !it.SameIdentity(productID, sponsorID) {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return c.persist()
}

// UpdateQuantity sets the entry's quantity. A quantity of zero or less is
// equivalent to Remove.
func (c *Cart) UpdateQuantity(productID int64, sponsorID *int64, qty int) error {
	if qty <= 0 {
		return c.Remove(productID, sponsorID)
	}
	for i := range c.items {
		if c.items[i].SameIdentity(productID, sponsorID) {
			c.items[i].Quantity = qty
			return c.persist()
		}
	}
	return c.persist()
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.items = nil
	return c.persist()
}

// Total returns the point cost of the whole cart.
func (c *Cart) Total() int64 {
	var total int64
	for _, it := range c.items {
		total += it.TotalPoints()
	}
	return total
}

// ItemCount returns the number of units across all entries.
func (c *Cart) ItemCount() int {
	count := 0
	for _, it := range c.items {
		count += it.Quantity
	}
	return count
}

// Len returns the number of distinct entries.
func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) persist() error {
	if err := c.store.Save(c.items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
