package cache

import (
	"context"
	"errors"
	"testing"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	c, err := NewCache("", false)
	if err != nil {
		t.Fatalf("NewCache returned error: %v", err)
	}
	if c.Enabled() {
		t.Fatalf("expected cache to be disabled")
	}

	ctx := context.Background()
	if err := c.CacheHelpTopic(ctx, "names", "<p>x</p>"); err != nil {
		t.Fatalf("expected Set on disabled cache to succeed, got %v", err)
	}
	if _, err := c.GetCachedHelpTopic(ctx, "names"); !errors.Is(err, ErrCacheDisabled) {
		t.Fatalf("expected ErrCacheDisabled, got %v", err)
	}
	if err := c.InvalidateHelpTopics(ctx); err != nil {
		t.Fatalf("expected invalidate on disabled cache to succeed, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("expected Close on disabled cache to succeed, got %v", err)
	}
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	if c.Enabled() {
		t.Fatalf("expected nil cache to report disabled")
	}
	if err := c.Set(context.Background(), "k", "v", 0); err != nil {
		t.Fatalf("expected Set on nil cache to be a no-op, got %v", err)
	}
}
