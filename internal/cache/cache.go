// Package cache stores analysis results keyed by file content, so unchanged
// files are not re-analyzed across runs.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"codelint/internal/diag"
	"codelint/internal/engine"
	"codelint/internal/version"
)

// SchemaVersion must be bumped whenever Payload changes shape.
const SchemaVersion uint16 = 1

// Digest identifies one cache entry.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Key hashes the schema, the tool version, every salt (registry fingerprint,
// diagnostic limit) and the content. Parts are length-prefixed so that
// ("ab", "c") and ("a", "bc") differ.
func Key(content string, salts ...string) Digest {
	h := sha256.New()
	var buf [8]byte
	write := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		h.Write([]byte(s))
	}
	binary.LittleEndian.PutUint16(buf[:2], SchemaVersion)
	h.Write(buf[:2])
	write(version.Version)
	for _, s := range salts {
		write(s)
	}
	write(content)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Payload is the cached part of an engine.Result. Timings and failures are
// per-run facts and are not stored.
type Payload struct {
	Schema      uint16            `msgpack:"schema"`
	Diagnostics []diag.Diagnostic `msgpack:"diagnostics"`
	Truncated   int               `msgpack:"truncated"`
	Score       int               `msgpack:"score"`
	Counts      diag.Counts       `msgpack:"counts"`
	Suggestions []string          `msgpack:"suggestions"`
	Language    string            `msgpack:"language"`
	StoredAt    time.Time         `msgpack:"stored_at"`
}

// FromResult converts a result for storage. Results with rule failures are
// not worth caching; callers check ok.
func FromResult(res *engine.Result) (p *Payload, ok bool) {
	if res == nil || len(res.Failures) > 0 {
		return nil, false
	}
	return &Payload{
		Schema:      SchemaVersion,
		Diagnostics: res.Diagnostics,
		Truncated:   res.Truncated,
		Score:       res.Score,
		Counts:      res.Counts,
		Suggestions: res.Suggestions,
		Language:    res.Language,
		StoredAt:    time.Now().UTC(),
	}, true
}

// Result rebuilds an engine.Result.
func (p *Payload) Result() *engine.Result {
	hints := p.Suggestions
	if hints == nil {
		hints = []string{}
	}
	return &engine.Result{
		Diagnostics: p.Diagnostics,
		Truncated:   p.Truncated,
		Score:       p.Score,
		Grade:       engine.GradeOf(p.Score),
		Counts:      p.Counts,
		Suggestions: hints,
		Language:    p.Language,
	}
}

// Cache is a disk store with an in-process layer in front of it.
// Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
	mem map[Digest]*Payload
}

// DefaultDir is $XDG_CACHE_HOME/codelint or ~/.cache/codelint.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "codelint"), nil
}

// Open creates dir if needed. An empty dir means DefaultDir.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &Cache{dir: dir, mem: make(map[Digest]*Payload)}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := key.String()
	// двухсимвольный шард, чтобы не держать тысячи файлов в одном каталоге
	return filepath.Join(c.dir, "results", hexKey[:2], hexKey+".mp")
}

// Put stores payload under key. The file is written to a temp name and
// renamed, so readers never see a partial entry. A nil Cache ignores writes.
func (c *Cache) Put(key Digest, payload *Payload) (err error) {
	if c == nil || payload == nil {
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
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	c.mem[key] = payload
	return nil
}

// Get returns the entry for key. A missing entry, an entry of another
// schema and an undecodable entry are all misses; only I/O failures other
// than "not found" are errors.
func (c *Cache) Get(key Digest) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	if p, ok := c.mem[key]; ok {
		c.mu.RUnlock()
		return p, true, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var p Payload
	if err := msgpack.Unmarshal(data, &p); err != nil || p.Schema != SchemaVersion {
		return nil, false, nil
	}

	c.mu.Lock()
	c.mem[key] = &p
	c.mu.Unlock()
	return &p, true, nil
}

// Clear removes every entry.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mem = make(map[Digest]*Payload)
	// переименование сначала: параллельный Put не увидит полуудалённый каталог
	results := filepath.Join(c.dir, "results")
	old := results + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(results, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
