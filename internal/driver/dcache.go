package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"quill/internal/checker"
	"quill/internal/diag"
	"quill/internal/source"
)

// Increment when the DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

// DiskCache stores per-file check results keyed by content and options.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedIssue is one issue in its serialized form. Spans are stored as raw
// offsets; the file ID is reattached on restore.
type CachedIssue struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Context  string
}

// DiskPayload is the on-disk record for one (file content, options) pair.
type DiskPayload struct {
	Schema      uint16
	ContentHash Digest
	Issues      []CachedIssue
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and atomically writes a payload.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or a schema mismatch is a clean miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// CacheKey derives the cache key for content checked under opts. Any change
// to the content, the thresholds, the disabled set, the cap, or the payload
// schema produces a different key.
func CacheKey(contentHash [sha256.Size]byte, opts checker.Options) Digest {
	h := sha256.New()
	var buf [8]byte

	binary.LittleEndian.PutUint16(buf[:2], diskCacheSchemaVersion)
	h.Write(buf[:2])
	h.Write(contentHash[:])

	binary.LittleEndian.PutUint64(buf[:], uint64(opts.Params.MaxSentenceWords))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(opts.Params.ContextWindow))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(opts.MaxIssues))
	h.Write(buf[:])

	disabled := make([]uint16, 0, len(opts.Disabled))
	for code, off := range opts.Disabled {
		if off {
			disabled = append(disabled, uint16(code))
		}
	}
	sort.Slice(disabled, func(i, j int) bool { return disabled[i] < disabled[j] })
	for _, code := range disabled {
		binary.LittleEndian.PutUint16(buf[:2], code)
		h.Write(buf[:2])
	}

	var key Digest
	h.Sum(key[:0])
	return key
}

// payloadFromBag snapshots a bag for caching.
func payloadFromBag(contentHash [sha256.Size]byte, bag *diag.Bag) *DiskPayload {
	items := bag.Items()
	issues := make([]CachedIssue, len(items))
	for i, d := range items {
		issues[i] = CachedIssue{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Context:  d.Context,
		}
	}
	return &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		ContentHash: contentHash,
		Issues:      issues,
	}
}

// bagFromPayload restores a bag, rebinding spans to fileID.
func bagFromPayload(payload *DiskPayload, fileID source.FileID, maxIssues int) *diag.Bag {
	bag := diag.NewBag(maxIssues)
	for _, issue := range payload.Issues {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(issue.Severity),
			Code:     diag.Code(issue.Code),
			Message:  issue.Message,
			Primary:  source.Span{File: fileID, Start: issue.Start, End: issue.End},
			Context:  issue.Context,
		})
	}
	return bag
}
