package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("unexpected hit before Set")
	}

	// Set then Get
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "value" {
		t.Errorf("Get = %q, %v; want value, true", data, hit)
	}

	// Delete
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("unexpected hit after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete missing key error: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Already-expired entry should be a miss
	if err := c.Set(ctx, "key", []byte("value"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expired entry should be a miss")
	}

	// An entry within its TTL stays a hit
	if err := c.Set(ctx, "fresh", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "fresh")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "value" {
		t.Errorf("Get(fresh) = %q, %v; want value, true", data, hit)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	c := fc.(*FileCache)

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	_, hit, _ := c.Get(ctx, "a")
	if hit {
		t.Error("unexpected hit after Clear")
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// TimelineKey should include the version in the hash
	tk1 := k.TimelineKey("CoincidentLine", TimelineKeyOpts{Version: "1.0.0"})
	tk2 := k.TimelineKey("CoincidentLine", TimelineKeyOpts{Version: "1.1.0"})
	if tk1 == tk2 {
		t.Error("Different versions should produce different timeline keys")
	}
	if !strings.HasPrefix(tk1, "timeline:") {
		t.Errorf("TimelineKey should carry the timeline prefix: %s", tk1)
	}

	// ArtifactKey should include quality and format
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Quality: "low", Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Quality: "high", Format: "svg"})
	ak3 := k.ArtifactKey("hash123", ArtifactKeyOpts{Quality: "low", Format: "json"})
	if ak1 == ak2 {
		t.Error("Different qualities should produce different artifact keys")
	}
	if ak1 == ak3 {
		t.Error("Different formats should produce different artifact keys")
	}

	// Same inputs produce the same key
	if k.TimelineKey("A", TimelineKeyOpts{}) != k.TimelineKey("A", TimelineKeyOpts{}) {
		t.Error("Keys should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "proj:demo:")

	// All keys should be prefixed
	tk := scoped.TimelineKey("TangentArc", TimelineKeyOpts{})
	if !strings.HasPrefix(tk, "proj:demo:timeline:") {
		t.Errorf("ScopedKeyer TimelineKey should be prefixed: %s", tk)
	}

	ak := scoped.ArtifactKey("hash", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(ak, "proj:demo:artifact:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", ak)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.TimelineKey("Scene", TimelineKeyOpts{})
	if !strings.HasPrefix(key, "prefix:timeline:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}
