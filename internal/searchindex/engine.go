package searchindex

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/blevesearch/bleve/v2"
)

// Engine owns the search collection. Readers go through an atomic
// pointer so queries stay lock-free while a rebuild swaps the index
// underneath them; rebuildMu serializes rebuilds so two reindex
// triggers cannot interleave.
type Engine struct {
	path string

	current   atomic.Pointer[bleve.Index]
	rebuildMu sync.Mutex

	// wg tracks in-flight queries so an old index is only closed once
	// its readers are done.
	wg sync.WaitGroup
}

// Open opens the collection at path, creating it with the declared
// schema when absent. An existing collection's schema is never altered.
func Open(path string) (*Engine, error) {
	e := &Engine{path: path}

	var (
		idx bleve.Index
		err error
	)
	if _, statErr := os.Stat(path); statErr == nil {
		idx, err = bleve.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening index at %s: %w", path, err)
		}
	} else if os.IsNotExist(statErr) {
		idx, err = bleve.New(path, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("creating index at %s: %w", path, err)
		}
	} else {
		return nil, fmt.Errorf("checking index path %s: %w", path, statErr)
	}

	e.current.Store(&idx)
	return e, nil
}

// DocCount returns the number of documents in the collection.
func (e *Engine) DocCount() (uint64, error) {
	idx, err := e.index()
	if err != nil {
		return 0, err
	}
	return idx.DocCount()
}

// Close waits for in-flight queries and closes the collection.
func (e *Engine) Close() error {
	ptr := e.current.Swap(nil)
	if ptr == nil {
		return nil
	}
	e.wg.Wait()
	return (*ptr).Close()
}

// index returns the live index or an explicit error when the engine is
// closed, so infrastructure failure is never mistaken for zero matches.
func (e *Engine) index() (bleve.Index, error) {
	ptr := e.current.Load()
	if ptr == nil {
		return nil, fmt.Errorf("search index is not open")
	}
	return *ptr, nil
}
