package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"brec/internal/highlight"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// DiskCache stores decoration results keyed by content digest on disk.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedHighlight is one colored column range in the cached form.
type CachedHighlight struct {
	Start uint32
	End   uint32
	Color uint8
}

// CachedLine is one decorated line in the cached form.
type CachedLine struct {
	Line       uint32
	Highlights []CachedHighlight
}

// CachedField is one field's decoration in the cached form.
type CachedField struct {
	Name  string
	Lines []CachedLine
}

// DiskPayload stores one fixture's decoration results so an unchanged
// fixture/source pair skips parsing entirely.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Fields []CachedField
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

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root readable and easy to wipe.
	return filepath.Join(c.dir, "dec", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
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
	defer func() {
		// Best effort; the temp file is gone after a successful rename.
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A missing
// entry is (false, nil), not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
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

	// Rename first so a concurrent reader never sees a half-deleted tree.
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey derives the lookup digest from both inputs of a decoration run.
func cacheKey(fixtureContent, sourceContent []byte) Digest {
	h := sha256.New()
	h.Write([]byte{byte(diskCacheSchemaVersion), byte(diskCacheSchemaVersion >> 8)})
	h.Write(fixtureContent)
	h.Write([]byte{0})
	h.Write(sourceContent)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// toCachedField flattens a SyntaxInfo into its serializable form with
// lines in ascending order.
func toCachedField(name string, info *highlight.SyntaxInfo) CachedField {
	cf := CachedField{Name: name}
	for _, num := range sortedLines(info) {
		ls := info.Line(num)
		cl := CachedLine{Line: num, Highlights: make([]CachedHighlight, len(ls.Highlights))}
		for i, hl := range ls.Highlights {
			cl.Highlights[i] = CachedHighlight{Start: hl.Start, End: hl.End, Color: uint8(hl.Color)}
		}
		cf.Lines = append(cf.Lines, cl)
	}
	return cf
}

func sortedLines(info *highlight.SyntaxInfo) []uint32 {
	nums := make([]uint32, 0, len(info.Lines))
	for num := range info.Lines {
		nums = append(nums, num)
	}
	slices.Sort(nums)
	return nums
}

// fromCachedField rebuilds a SyntaxInfo from its cached form.
func fromCachedField(cf CachedField) *highlight.SyntaxInfo {
	info := highlight.NewSyntaxInfo()
	for _, cl := range cf.Lines {
		ls := &highlight.LineSyntax{Highlights: make([]highlight.Highlight, len(cl.Highlights))}
		for i, ch := range cl.Highlights {
			ls.Highlights[i] = highlight.Highlight{Start: ch.Start, End: ch.End, Color: highlight.Color(ch.Color)}
		}
		info.Lines[cl.Line] = ls
	}
	return info
}
