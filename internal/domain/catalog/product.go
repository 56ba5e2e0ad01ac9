package catalog

import (
	"errors"
	"time"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	ImageURLs   []string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(id, name, description, category string, price float64, imageURLs []string) (*Product, error) {
	if id == "" {
		return nil, errors.New("product id cannot be empty")
	}

	if name == "" {
		return nil, errors.New("product name cannot be empty")
	}

	if price < 0 {
		return nil, errors.New("product price cannot be negative")
	}

	now := time.Now().UTC()
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		ImageURLs:   imageURLs,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

func (p *Product) MarkUnavailable() {
	p.Available = false
	p.UpdatedAt = time.Now().UTC()
}
