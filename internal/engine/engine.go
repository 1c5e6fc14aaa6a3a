package engine

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"blogql/internal/store"
)

// Engine implements the query and mutation operations over a Store, plus the
// relationship accessors. It is the only component allowed to call the
// store's mutation primitives after seeding.
//
// All operations run behind a single RWMutex: mutations hold the write lock
// for their whole validate-then-apply span, so each one is atomic with
// respect to every other operation. Reads and relation lookups share the
// read lock.
type Engine struct {
	mu       sync.RWMutex
	store    *store.Store
	validate *validator.Validate
}

// New creates an engine over the given store.
func New(s *store.Store) *Engine {
	return &Engine{
		store:    s,
		validate: validator.New(),
	}
}
