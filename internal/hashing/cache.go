package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// TableCache holds one ZobristTable per geometry with mutex protection for
// concurrent access. Tables are built on first use and never modified.
type TableCache struct {
	tables map[chess.Geometry]*ZobristTable
	mu     sync.RWMutex
}

// NewTableCache creates an empty cache.
func NewTableCache() *TableCache {
	return &TableCache{
		tables: make(map[chess.Geometry]*ZobristTable),
	}
}

// Get returns the table for g, building it if needed.
func (c *TableCache) Get(g chess.Geometry) *ZobristTable {
	c.mu.RLock()
	zt, ok := c.tables[g]
	c.mu.RUnlock()
	if ok {
		return zt
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if zt, ok := c.tables[g]; ok {
		return zt
	}
	zt = NewZobristTable(g)
	c.tables[g] = zt
	return zt
}

// Len returns the number of cached geometries.
func (c *TableCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}

var defaultCache = NewTableCache()

// Tables returns the shared table for g.
func Tables(g chess.Geometry) *ZobristTable {
	return defaultCache.Get(g)
}
