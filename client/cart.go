package client

import "encoding/json"

// CartLine is one product in the cart. Lines are keyed by product id, so a
// product appears at most once; Qty is always at least 1.
type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Cart is the device-local cart. Every mutation persists immediately.
type Cart struct {
	storage Storage
	lines   []CartLine
}

// NewCart loads the persisted cart, ignoring corrupt state.
func NewCart(storage Storage) *Cart {
	c := &Cart{storage: storage}
	if raw, ok := storage.Get(CartKey); ok {
		var lines []CartLine
		if err := json.Unmarshal(raw, &lines); err == nil {
			c.lines = lines
		}
	}
	return c
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	return append([]CartLine(nil), c.lines...)
}

// Add puts one more unit of productID in the cart.
func (c *Cart) Add(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty++
			c.save()
			return
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: productID, Qty: 1})
	c.save()
}

// SetQty pins the quantity for productID. Quantities below 1 remove the line.
func (c *Cart) SetQty(productID string, qty int) {
	if qty < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty = qty
			c.save()
			return
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: productID, Qty: qty})
	c.save()
}

// Remove drops the line for productID if present.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.save()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.storage.Delete(CartKey)
}

func (c *Cart) save() {
	data, err := json.Marshal(c.lines)
	if err != nil {
		return
	}
	c.storage.Set(CartKey, data)
}
