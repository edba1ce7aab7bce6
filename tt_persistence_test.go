package main

import (
	"path/filepath"
	"testing"
)

func TestResolveTTPersistencePathKeepsAbsolutePath(t *testing.T) {
	got := resolveTTPersistencePath("/var/lib/cache/tt.gob")
	if got != "/var/lib/cache/tt.gob" {
		t.Fatalf("expected the absolute path unchanged, got %q", got)
	}
}

func TestResolveTTPersistencePathUsesDockerCacheDirWhenPresent(t *testing.T) {
	oldDir := dockerCacheDir
	dockerCacheDir = t.TempDir()
	defer func() { dockerCacheDir = oldDir }()

	got := resolveTTPersistencePath("tt.gob")
	want := filepath.Join(dockerCacheDir, "tt.gob")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveTTPersistencePathFallsBackToRelativeWhenDockerCacheDirMissing(t *testing.T) {
	oldDir := dockerCacheDir
	dockerCacheDir = filepath.Join(t.TempDir(), "does-not-exist")
	defer func() { dockerCacheDir = oldDir }()

	if got := resolveTTPersistencePath("tt.gob"); got != "tt.gob" {
		t.Fatalf("expected the relative path unchanged, got %q", got)
	}
}

func TestTTPersistenceRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AiTtSize = 64
	cfg.AiTtPersistencePath = filepath.Join(t.TempDir(), "tt.gob")

	tt := searchCache.table(cfg.AiTtSize)
	tt.Clear()
	tt.Store(1234, 5, 42.5, TTExact, 3)
	persistTTPersistence(cfg)

	// Drop the in-memory cache, then restore from disk.
	searchCache.replace(NewTranspositionTable(cfg.AiTtSize), cfg.AiTtSize)
	loadTTPersistence(cfg)
	restored, _ := searchCache.current()
	entry, ok := restored.Probe(1234)
	if !ok {
		t.Fatalf("expected the persisted entry to survive the round trip")
	}
	if entry.Depth != 5 || entry.Score != 42.5 || entry.BestCol != 3 {
		t.Fatalf("expected the entry contents back, got %+v", entry)
	}
}

func TestLoadTTPersistenceSkipsMismatchedSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AiTtSize = 64
	cfg.AiTtPersistencePath = filepath.Join(t.TempDir(), "tt.gob")

	tt := searchCache.table(cfg.AiTtSize)
	tt.Clear()
	tt.Store(99, 2, 1, TTExact, 0)
	persistTTPersistence(cfg)

	cfg.AiTtSize = 128
	fresh := NewTranspositionTable(cfg.AiTtSize)
	searchCache.replace(fresh, cfg.AiTtSize)
	loadTTPersistence(cfg)
	current, size := searchCache.current()
	if current != fresh || size != cfg.AiTtSize {
		t.Fatalf("expected the mismatched snapshot to be ignored")
	}
}

func TestSearchersShareTheGlobalCache(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AiTtSize = 256
	a := NewMinimaxSearcher(cfg)
	b := NewMinimaxSearcher(cfg)
	if a.tt == nil || a.tt != b.tt {
		t.Fatalf("expected both searchers to share one transposition table")
	}
	bare := cfg
	bare.AiUseTranspositionTable = false
	if NewMinimaxSearcher(bare).tt != nil {
		t.Fatalf("expected no table when the cache is disabled")
	}
}
