package internal

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
	"time"

	tt "github.com/konstankino/nameit/internal/types"
)

type cacheEntry struct {
	Hash     string
	Findings []tt.Finding
	LintedAt time.Time
}

// Cache remembers the last findings per file, keyed by content hash.
type Cache struct {
	entries map[string]cacheEntry
	mutex   sync.RWMutex
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

func hashContent(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached findings of filename if its content is unchanged.
func (c *Cache) Get(filename string, content []byte) ([]tt.Finding, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, ok := c.entries[filename]
	if !ok || entry.Hash != hashContent(content) {
		return nil, false
	}
	return entry.Findings, true
}

func (c *Cache) Set(filename string, content []byte, findings []tt.Finding) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[filename] = cacheEntry{
		Hash:     hashContent(content),
		Findings: findings,
		LintedAt: time.Now(),
	}
}

func (c *Cache) Invalidate(filename string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, filename)
}

func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}
