package auth

import (
	"context"
	"errors"
	"testing"
)

func TestWithStaffID_StaffIDFromCtx(t *testing.T) {
	ctx := WithStaffID(context.Background(), "staff-42")

	got, err := StaffIDFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "staff-42" {
		t.Fatalf("expected staff-42, got %q", got)
	}
}

func TestStaffIDFromCtx_EmptyContext(t *testing.T) {
	_, err := StaffIDFromCtx(context.Background())
	if !errors.Is(err, ErrStaffIDNotFound) {
		t.Fatalf("expected ErrStaffIDNotFound, got %v", err)
	}
}

func TestStaffIDFromCtx_EmptyValue(t *testing.T) {
	ctx := WithStaffID(context.Background(), "")
	_, err := StaffIDFromCtx(ctx)
	if !errors.Is(err, ErrStaffIDNotFound) {
		t.Fatalf("expected ErrStaffIDNotFound for empty staff id, got %v", err)
	}
}

func TestStaffIDFromCtx_Isolation(t *testing.T) {
	ctx1 := WithStaffID(context.Background(), "staff-1")
	ctx2 := WithStaffID(context.Background(), "staff-2")

	got1, _ := StaffIDFromCtx(ctx1)
	got2, _ := StaffIDFromCtx(ctx2)

	if got1 != "staff-1" {
		t.Fatalf("ctx1: expected staff-1, got %q", got1)
	}
	if got2 != "staff-2" {
		t.Fatalf("ctx2: expected staff-2, got %q", got2)
	}
}
