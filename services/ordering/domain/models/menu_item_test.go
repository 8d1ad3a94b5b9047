package models

import "testing"

func TestNewMenuItem(t *testing.T) {
	t.Run("sets fields correctly", func(t *testing.T) {
		desc := strptr("Crispy crepe with spiced potato")
		item, err := NewMenuItem("Masala Dosa", 8.50, desc, "Dosas")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "Masala Dosa" {
			t.Fatalf("expected Name %q, got %q", "Masala Dosa", item.Name)
		}
		if item.Price != 8.50 {
			t.Fatalf("expected Price 8.50, got %v", item.Price)
		}
		if item.Category != "Dosas" {
			t.Fatalf("expected Category %q, got %q", "Dosas", item.Category)
		}
		if item.Description == nil || *item.Description != *desc {
			t.Fatalf("expected Description set, got %v", item.Description)
		}
	})

	t.Run("empty category defaults to General", func(t *testing.T) {
		item, err := NewMenuItem("Idli", 4.00, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Category != DefaultCategory {
			t.Fatalf("expected default category %q, got %q", DefaultCategory, item.Category)
		}
	})

	t.Run("whitespace category defaults to General", func(t *testing.T) {
		item, err := NewMenuItem("Idli", 4.00, nil, "   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Category != DefaultCategory {
			t.Fatalf("expected default category %q, got %q", DefaultCategory, item.Category)
		}
	})

	t.Run("blank description becomes nil", func(t *testing.T) {
		item, err := NewMenuItem("Idli", 4.00, strptr("   "), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Description != nil {
			t.Fatalf("expected nil Description, got %q", *item.Description)
		}
	})

	t.Run("allows zero price", func(t *testing.T) {
		if _, err := NewMenuItem("Water", 0, nil, "Drinks"); err != nil {
			t.Fatalf("unexpected error for zero price: %v", err)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		if _, err := NewMenuItem("Bad", -1, nil, ""); err == nil {
			t.Fatal("expected error for negative price")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := NewMenuItem("  ", 5, nil, ""); err == nil {
			t.Fatal("expected error for empty name")
		}
	})
}
