package utils

import (
	"context"
	"testing"
)

func TestGetEmailFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "alice@x.com")

	email, ok := GetEmailFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true for context with email")
	}
	if email != "alice@x.com" {
		t.Errorf("expected alice@x.com, got %q", email)
	}
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	_, ok := GetEmailFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, 42)

	_, ok := GetEmailFromContext(ctx)
	if ok {
		t.Error("expected ok=false for value of wrong type")
	}
}
