package main

import "sync"

// AISearchCache hands out the process-wide transposition table. Every solo
// session's searcher shares it: the zobrist key covers position, side to
// move and search mode, so entries written by one game are valid for every
// other and classic and removal searches never read each other's scores.
type AISearchCache struct {
	mu   sync.Mutex
	tt   *TranspositionTable
	size int
}

var searchCache = &AISearchCache{}

// table returns the shared table, creating or resizing it when the
// configured size changed. A resize drops the old entries.
func (c *AISearchCache) table(size int) *TranspositionTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tt == nil || c.size != size {
		c.tt = NewTranspositionTable(size)
		c.size = size
	}
	return c.tt
}

func (c *AISearchCache) current() (*TranspositionTable, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tt, c.size
}

func (c *AISearchCache) replace(tt *TranspositionTable, size int) {
	c.mu.Lock()
	c.tt = tt
	c.size = size
	c.mu.Unlock()
}
