package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/dosadiner/services/ordering/domain/events"
)

func TestOrderCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.OrderCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		OrderID:    42,
		CustomerID: 7,
		Status:     "Pending",
		LineCount:  3,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "order_id", "customer_id", "status", "line_count", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestMenuItemCreatedEvent_JSONFieldNames(t *testing.T) {
	description := "Crispy crepe with spiced potato"
	evt := events.MenuItemCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      9,
		Name:        "Masala Dosa",
		Price:       8.50,
		Description: &description,
		Category:    "Dosas",
		CreatedAt:   time.Now().UTC(),
		OccurredAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "price", "description", "category", "created_at", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if raw["description"] != description {
		t.Errorf("expected description %q, got %v", description, raw["description"])
	}
}

func TestTopicValues(t *testing.T) {
	if events.TopicOrderCreated != "ordering.order.created" {
		t.Errorf("unexpected order topic %q", events.TopicOrderCreated)
	}
	if events.TopicMenuItemCreated != "ordering.menu_item.created" {
		t.Errorf("unexpected menu item topic %q", events.TopicMenuItemCreated)
	}
}
