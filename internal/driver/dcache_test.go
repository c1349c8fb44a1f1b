package driver

import (
	"context"
	"crypto/sha256"
	"path/filepath"
	"testing"

	"quill/internal/checker"
	"quill/internal/diag"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var key Digest
	key[0] = 0xab
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		ContentHash: Digest(sha256.Sum256([]byte("hello"))),
		Issues: []CachedIssue{
			{Severity: uint8(diag.SevWarning), Code: uint16(diag.StyleDoubleSpace), Message: "Avoid double spaces.", Start: 2, End: 4, Context: "he  walked"},
		},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if len(got.Issues) != 1 || got.Issues[0].Message != "Avoid double spaces." {
		t.Errorf("payload mangled: %+v", got)
	}
	if got.ContentHash != payload.ContentHash {
		t.Errorf("content hash mangled")
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var key Digest
	key[0] = 0x01
	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatal("unexpected hit on empty cache")
	}
}

func TestCacheKeySensitivity(t *testing.T) {
	content := sha256.Sum256([]byte("Some text."))
	base := checker.DefaultOptions()

	k1 := CacheKey(content, base)
	if k2 := CacheKey(content, base); k2 != k1 {
		t.Error("key not deterministic")
	}

	other := sha256.Sum256([]byte("Other text."))
	if CacheKey(other, base) == k1 {
		t.Error("key ignores content")
	}

	tweaked := base
	tweaked.Params.MaxSentenceWords = 10
	if CacheKey(content, tweaked) == k1 {
		t.Error("key ignores thresholds")
	}

	disabled := base
	disabled.Disabled = map[diag.Code]bool{diag.StyleVerbTense: true}
	if CacheKey(content, disabled) == k1 {
		t.Error("key ignores disabled rules")
	}
}

func TestCheckPathsUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.txt", "he  walked home\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	_, first, err := CheckPaths(context.Background(), []string{filepath.Join(dir, "doc.txt")}, cache, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run must not hit the cache")
	}

	_, second, err := CheckPaths(context.Background(), []string{filepath.Join(dir, "doc.txt")}, cache, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second run must hit the cache")
	}
	if got, want := second[0].Bag.Len(), first[0].Bag.Len(); got != want {
		t.Fatalf("cached issues = %d, fresh = %d", got, want)
	}

	a, b := first[0].Bag.Items(), second[0].Bag.Items()
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Primary.Start != b[i].Primary.Start || a[i].Message != b[i].Message {
			t.Errorf("issue %d differs after cache restore:\n fresh %+v\ncached %+v", i, a[i], b[i])
		}
	}
}
