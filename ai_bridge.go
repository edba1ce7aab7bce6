package main

// Mode codes understood by the move-search engine.
const (
	SearchModeClassic = 0
	SearchModeRemoval = 1
)

// SearchRequest is the full contract toward the search engine: a flattened
// row-major board snapshot (index = row*7 + col, values in {-1, 0, 1}), a
// minimax depth, and the variant mode code.
type SearchRequest struct {
	Board []int32
	Depth int
	Mode  int
}

// MoveSearcher answers a SearchRequest with a column for the AI side. The
// call blocks until the search completes; the engine gives the answer no
// trust and routes it through the same validation as a human move, so an
// out-of-range or full column comes back as an invalid move.
type MoveSearcher interface {
	BestMove(req SearchRequest) int
}

// SearcherFactory builds the search engine for a new game session. Loading
// may fail; the session then keeps a nil searcher and solo AI turns become
// silent no-ops instead of crashing construction.
type SearcherFactory func(config Config) (MoveSearcher, error)

func DefaultSearcherFactory(config Config) (MoveSearcher, error) {
	return NewMinimaxSearcher(config), nil
}
