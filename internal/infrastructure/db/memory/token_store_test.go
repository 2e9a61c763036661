package memory

import (
	"context"
	"testing"
	"time"

	"github.com/serverest/usuarios-api/internal/core/domain"
)

func TestTokenStore_SaveAndLookup(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()

	if err := store.Save(ctx, "tok1", "user1", time.Minute); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	userID, err := store.Lookup(ctx, "tok1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if userID != "user1" {
		t.Fatalf("expected user1, got %q", userID)
	}

	if _, err := store.Lookup(ctx, "desconhecido"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTokenStore_Expiry(t *testing.T) {
	store := NewTokenStore()
	ctx := context.Background()

	if err := store.Save(ctx, "tok1", "user1", -time.Second); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.Lookup(ctx, "tok1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}
