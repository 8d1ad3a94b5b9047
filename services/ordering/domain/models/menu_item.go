package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCategory is assigned when a menu item is created without one.
const DefaultCategory = "General"

// MenuItem is a dish on the menu. Price is the current list price; orders
// snapshot it into their lines at creation time, so changing it never
// rewrites history.
type MenuItem struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
	Category    string
	CreatedAt   time.Time
}

// NewMenuItem constructs a valid MenuItem. An empty category falls back to
// DefaultCategory and a blank description becomes nil. The ID is assigned by
// the repository on insert.
func NewMenuItem(name string, price float64, description *string, category string) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if description != nil {
		d := strings.TrimSpace(*description)
		if d == "" {
			description = nil
		} else {
			description = &d
		}
	}

	if name == "" {
		return nil, fmt.Errorf("menu item name must not be empty")
	}
	if price < 0 {
		return nil, fmt.Errorf("menu item price must not be negative, got %v", price)
	}
	if category == "" {
		category = DefaultCategory
	}

	return &MenuItem{
		Name:        name,
		Price:       price,
		Description: description,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
