// Package services contains stateless domain services for the ordering
// bounded context. They operate purely on domain types with zero external
// dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"

	"github.com/ghuser/dosadiner/services/ordering/domain/models"
)

// ConsolidateLines validates requested order lines and collapses duplicate
// item references. One order holds at most one line per item; when the same
// item appears more than once in a request the later quantity wins, matching
// the upsert behavior of the line store.
//
// An empty list is valid: orders may be created without lines and have them
// attached afterward.
//
// Rules:
//   - every quantity must be positive
//   - item IDs must be positive
func ConsolidateLines(lines []models.LineInput) ([]models.LineInput, error) {
	index := make(map[int64]int, len(lines))
	out := make([]models.LineInput, 0, len(lines))

	for i, l := range lines {
		if l.ItemID <= 0 {
			return nil, fmt.Errorf("line %d: item_id must be positive, got %d", i, l.ItemID)
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("line %d: quantity must be positive, got %d", i, l.Quantity)
		}

		if at, seen := index[l.ItemID]; seen {
			out[at].Quantity = l.Quantity
			continue
		}
		index[l.ItemID] = len(out)
		out = append(out, l)
	}

	return out, nil
}

// ValidateQuantity checks a standalone quantity adjustment.
func ValidateQuantity(quantity int32) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	return nil
}
