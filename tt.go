package main

import "sync"

type TTFlag uint8

const (
	TTExact TTFlag = iota
	TTLower
	TTUpper
)

type TTEntry struct {
	Key     uint64
	Depth   int
	Score   float64
	Flag    TTFlag
	BestCol int
	Valid   bool
}

// TranspositionTable is a fixed-size, power-of-two keyed cache of search
// results. Deeper entries are never overwritten by shallower ones for the
// same key.
type TranspositionTable struct {
	mu      sync.RWMutex
	mask    uint64
	entries []TTEntry
}

func NewTranspositionTable(size int) *TranspositionTable {
	if size < 1 {
		size = 1
	}
	n := nextPowerOfTwo(uint64(size))
	return &TranspositionTable{
		mask:    n - 1,
		entries: make([]TTEntry, n),
	}
}

func (tt *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	entry := tt.entries[key&tt.mask]
	if !entry.Valid || entry.Key != key {
		return TTEntry{}, false
	}
	return entry, true
}

func (tt *TranspositionTable) Store(key uint64, depth int, score float64, flag TTFlag, bestCol int) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	slot := &tt.entries[key&tt.mask]
	if slot.Valid && slot.Key == key && slot.Depth > depth {
		return
	}
	*slot = TTEntry{
		Key:     key,
		Depth:   depth,
		Score:   score,
		Flag:    flag,
		BestCol: bestCol,
		Valid:   true,
	}
}

func (tt *TranspositionTable) Count() int {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	count := 0
	for i := range tt.entries {
		if tt.entries[i].Valid {
			count++
		}
	}
	return count
}

func (tt *TranspositionTable) Capacity() int {
	return len(tt.entries)
}

// snapshotEntries copies the raw entry slots for persistence.
func (tt *TranspositionTable) snapshotEntries() []TTEntry {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	entries := make([]TTEntry, len(tt.entries))
	copy(entries, tt.entries)
	return entries
}

// loadEntries restores persisted slots. The caller guarantees the slice
// length matches the table capacity.
func (tt *TranspositionTable) loadEntries(entries []TTEntry) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	copy(tt.entries, entries)
}

func (tt *TranspositionTable) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

func nextPowerOfTwo(value uint64) uint64 {
	n := uint64(1)
	for n < value {
		n <<= 1
	}
	return n
}
