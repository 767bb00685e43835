// Package cart holds the session-scoped order-in-progress. Carts live in
// memory only: they are created when a guest session starts, mutated by
// add/remove, and gone after checkout or session expiry. Nothing here is
// persisted.
package cart

import (
	"sync"

	"github.com/anasmohamad369/hotelzeeshan/catalog"
	"github.com/anasmohamad369/hotelzeeshan/pricing"
)

// Line is one slug's entry in a cart. Quantity is always >= 1; a line is
// removed outright when decremented to zero.
type Line struct {
	Slug     string  `json:"slug"`
	Item     string  `json:"item"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart is a mutable set of lines keyed by slug, in insertion order.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges the unit into the cart: an existing line's quantity goes up
// by one, otherwise a new line is appended with quantity 1.
func (c *Cart) Add(u catalog.Unit) Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Slug == u.Slug {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}

	line := Line{Slug: u.Slug, Item: u.Item, Price: u.Price, Image: u.Image, Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

// Remove decrements the line for slug, dropping it entirely at zero.
// Unknown slugs are a no-op.
func (c *Cart) Remove(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Slug != slug {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
			return
		}
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalCount is the sum of all quantities, used for the cart badge.
func (c *Cart) TotalCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// PricingLines adapts the cart for the pricing engine.
func (c *Cart) PricingLines() []pricing.Line {
	lines := c.Lines()
	out := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, pricing.Line{Price: l.Price, Quantity: l.Quantity})
	}
	return out
}
