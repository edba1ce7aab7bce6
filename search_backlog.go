package main

import (
	"log"
	"runtime"
	"sync"
)

const backlogDepthBoost = 2

// backlogItem is one position queued for deeper offline analysis.
type backlogItem struct {
	board []int32
	depth int
	mode  int
}

// searchBacklog re-searches recently played positions in the background at
// a higher depth. The results land in the shared transposition table, so
// the next foreground search of a nearby position starts warmer. Items are
// dropped, never queued blockingly, when the workers fall behind.
type searchBacklog struct {
	searcher *MinimaxSearcher
	queue    chan backlogItem
	wg       sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func backlogWorkerCount(cfg Config) int {
	workers := cfg.AiBacklogWorkers
	if workers <= 0 {
		return 1
	}
	if cpus := runtime.NumCPU(); workers > cpus {
		return cpus
	}
	return workers
}

func newSearchBacklog(cfg Config) *searchBacklog {
	b := &searchBacklog{
		searcher: NewMinimaxSearcher(cfg),
		queue:    make(chan backlogItem, 64),
	}
	workers := backlogWorkerCount(cfg)
	for i := 0; i < workers; i++ {
		b.wg.Add(1)
		go b.worker()
	}
	log.Printf("[ai:backlog] %d worker(s) started", workers)
	return b
}

func (b *searchBacklog) worker() {
	defer b.wg.Done()
	for item := range b.queue {
		b.searcher.BestMove(SearchRequest{
			Board: item.board,
			Depth: item.depth + backlogDepthBoost,
			Mode:  item.mode,
		})
	}
}

// enqueue schedules one position and reports whether it was accepted.
func (b *searchBacklog) enqueue(item backlogItem) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	select {
	case b.queue <- item:
		return true
	default:
		return false
	}
}

func (b *searchBacklog) close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()
	b.wg.Wait()
}
