package main

import (
	"encoding/gob"
	"log"
	"os"
	"path/filepath"
)

var dockerCacheDir = "/cache_logs"

// ttPersistenceSnapshot is the on-disk shape of the shared transposition
// table, written with encoding/gob on shutdown and restored on startup.
type ttPersistenceSnapshot struct {
	Size    int
	Entries []TTEntry
}

func countValidTTEntries(entries []TTEntry) int {
	count := 0
	for _, entry := range entries {
		if entry.Valid {
			count++
		}
	}
	return count
}

// loadTTPersistence warm-starts the shared search cache from a previous
// run. Every failure path is non-fatal: the cache just starts cold.
func loadTTPersistence(cfg Config) {
	if !cfg.AiUseTranspositionTable || cfg.AiTtPersistencePath == "" {
		return
	}
	path := resolveTTPersistencePath(cfg.AiTtPersistencePath)
	file, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[ai:cache] failed to open persisted table %s: %v", path, err)
		}
		return
	}
	defer file.Close()

	var snapshot ttPersistenceSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		log.Printf("[ai:cache] failed to decode persisted table %s: %v", path, err)
		return
	}
	tt := NewTranspositionTable(snapshot.Size)
	if tt.Capacity() != len(snapshot.Entries) || snapshot.Size != cfg.AiTtSize {
		log.Printf("[ai:cache] persisted table size %d does not match configured size %d, starting cold",
			snapshot.Size, cfg.AiTtSize)
		return
	}
	tt.loadEntries(snapshot.Entries)
	searchCache.replace(tt, snapshot.Size)
	log.Printf("[ai:cache] restored %d/%d entries from %s",
		countValidTTEntries(snapshot.Entries), len(snapshot.Entries), path)
}

// persistTTPersistence writes the shared search cache to disk so the next
// run starts warm.
func persistTTPersistence(cfg Config) {
	if !cfg.AiUseTranspositionTable || cfg.AiTtPersistencePath == "" {
		return
	}
	tt, size := searchCache.current()
	if tt == nil {
		return
	}
	path := resolveTTPersistencePath(cfg.AiTtPersistencePath)
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("[ai:cache] unable to create cache directory %s: %v", dir, err)
			return
		}
	}
	file, err := os.Create(path)
	if err != nil {
		log.Printf("[ai:cache] failed to create %s: %v", path, err)
		return
	}
	defer file.Close()

	entries := tt.snapshotEntries()
	snapshot := ttPersistenceSnapshot{Size: size, Entries: entries}
	if err := gob.NewEncoder(file).Encode(&snapshot); err != nil {
		log.Printf("[ai:cache] failed to encode %s: %v", path, err)
		return
	}
	log.Printf("[ai:cache] stored %d/%d entries to %s",
		countValidTTEntries(entries), len(entries), path)
}

// resolveTTPersistencePath keeps absolute paths as-is and anchors relative
// ones in the container cache volume when it exists.
func resolveTTPersistencePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if stat, err := os.Stat(dockerCacheDir); err == nil && stat.IsDir() {
		return filepath.Join(dockerCacheDir, path)
	}
	return path
}
