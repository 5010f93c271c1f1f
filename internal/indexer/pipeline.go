package indexer

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/maktaba/portal-search/internal/db"
	"github.com/maktaba/portal-search/internal/document"
	"github.com/maktaba/portal-search/internal/extract"
	"github.com/maktaba/portal-search/internal/searchindex"
)

// Pipeline orchestrates the full reindex workflow:
// extract -> enrich -> rebuild. Extraction fans out over a bounded
// worker pool, one task per source category.
type Pipeline struct {
	db         *db.DB
	engine     *searchindex.Engine
	workers    int
	onProgress ProgressFunc
}

// New creates a Pipeline. workers bounds extraction concurrency; values
// below 1 fall back to one worker per source.
func New(d *db.DB, engine *searchindex.Engine, workers int) *Pipeline {
	return &Pipeline{db: d, engine: engine, workers: workers}
}

// SetProgressFunc sets the per-source progress callback.
func (p *Pipeline) SetProgressFunc(fn ProgressFunc) {
	p.onProgress = fn
}

// Run executes a full reindex. A failing source contributes zero
// documents and is reported in the result; the remaining sources still
// index. Only the final rebuild failing aborts the run, since that
// would leave no usable collection to swap in.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	extractors := extract.All()

	workers := p.workers
	if workers < 1 {
		workers = len(extractors)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("creating extraction pool: %w", err)
	}
	defer pool.Release()

	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		docs       []document.SearchDocument
		sourceErrs []SourceError
	)

	fail := func(source string, err error) {
		log.Printf("extracting %s failed, source skipped: %v", source, err)
		mu.Lock()
		sourceErrs = append(sourceErrs, SourceError{Source: source, Err: err.Error()})
		mu.Unlock()
	}

	for _, ex := range extractors {
		ex := ex
		wg.Add(1)
		task := func() {
			defer wg.Done()
			batch, err := ex.Extract(ctx, p.db)
			if err != nil {
				fail(ex.Source(), err)
				return
			}
			for i := range batch {
				batch[i].Enrich()
			}
			mu.Lock()
			docs = append(docs, batch...)
			mu.Unlock()
			if p.onProgress != nil {
				p.onProgress(ex.Source(), len(batch))
			}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			fail(ex.Source(), err)
		}
	}
	wg.Wait()

	// Deterministic document order across runs.
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	sort.Slice(sourceErrs, func(i, j int) bool { return sourceErrs[i].Source < sourceErrs[j].Source })

	summary, err := p.engine.Rebuild(docs)
	if err != nil {
		return nil, fmt.Errorf("rebuilding index: %w", err)
	}

	result := &Result{
		RunID:        uuid.NewString(),
		Indexed:      summary.Indexed,
		Breakdown:    summary.Breakdown,
		SourceErrors: sourceErrs,
		Duration:     time.Since(start),
	}
	log.Printf("reindex %s: %d documents from %d sources in %s",
		result.RunID, result.Indexed, len(result.Breakdown), result.Duration.Round(time.Millisecond))
	return result, nil
}
