package services_test

import (
	"context"
	"testing"

	"wordfreq/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithComponent(ctx, "counter")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if component, ok := services.ComponentFromContext(ctx); !ok || component != "counter" {
		t.Fatalf("unexpected component: %v %v", component, ok)
	}
}

func TestComponentBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithComponent(ctx, "")
	if _, ok := services.ComponentFromContext(ctx); ok {
		t.Fatal("expected no component value")
	}
}
