package cart

import (
	"encoding/json"
	"sort"
)

// Cart is a mapping from product ID to quantity. Entries with quantity <= 0
// are removed rather than stored as zero.
type Cart struct {
	quantities map[string]int
}

func NewCart() *Cart {
	return &Cart{
		quantities: make(map[string]int),
	}
}

func (c *Cart) Get(productID string) int {
	return c.quantities[productID]
}

func (c *Cart) Set(productID string, quantity int) {
	if quantity <= 0 {
		delete(c.quantities, productID)
		return
	}
	c.quantities[productID] = quantity
}

func (c *Cart) Add(productID string, delta int) {
	c.Set(productID, c.quantities[productID]+delta)
}

func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
}

func (c *Cart) IsEmpty() bool {
	return len(c.quantities) == 0
}

func (c *Cart) Len() int {
	return len(c.quantities)
}

type Entry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Entries returns the cart contents ordered by product ID so callers get a
// stable iteration order.
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, 0, len(c.quantities))
	for id, qty := range c.quantities {
		entries = append(entries, Entry{ProductID: id, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ProductID < entries[j].ProductID
	})
	return entries
}

// Encode serializes the cart for durable storage.
func (c *Cart) Encode() ([]byte, error) {
	return json.Marshal(c.quantities)
}

// Decode rebuilds a cart from stored bytes. Corrupt or empty payloads yield
// an empty cart, never an error: a cart that cannot be parsed is treated as
// if it was never saved.
func Decode(data []byte) *Cart {
	c := NewCart()
	if len(data) == 0 {
		return c
	}

	var stored map[string]int
	if err := json.Unmarshal(data, &stored); err != nil {
		return c
	}

	for id, qty := range stored {
		c.Set(id, qty)
	}

	return c
}
