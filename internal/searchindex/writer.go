package searchindex

import (
	"fmt"
	"log"
	"os"

	"github.com/blevesearch/bleve/v2"

	"github.com/maktaba/portal-search/internal/document"
)

// batchSize is the number of documents per bulk upsert.
const batchSize = 100

// Rebuild replaces the whole collection with docs. The new index is
// built in a staging directory, renamed over the old one and swapped
// into the reader pointer, so queries never observe an empty
// collection. A failed batch is logged and skipped; the summary counts
// only what was written (partial index preferred over total failure).
func (e *Engine) Rebuild(docs []document.SearchDocument) (*RebuildSummary, error) {
	e.rebuildMu.Lock()
	defer e.rebuildMu.Unlock()

	tempPath := e.path + ".tmp"

	// Leftover staging dir from a crashed run.
	if err := os.RemoveAll(tempPath); err != nil {
		return nil, fmt.Errorf("cleaning staging index: %w", err)
	}

	staging, err := bleve.New(tempPath, buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating staging index: %w", err)
	}

	summary := &RebuildSummary{Breakdown: make(map[string]int)}

	flush := func(batch *bleve.Batch, pending map[string]int) {
		if batch.Size() == 0 {
			return
		}
		if err := staging.Batch(batch); err != nil {
			log.Printf("index batch of %d documents failed, continuing: %v", batch.Size(), err)
			return
		}
		for source, n := range pending {
			summary.Indexed += n
			summary.Breakdown[source] += n
		}
	}

	batch := staging.NewBatch()
	pending := make(map[string]int)
	for _, doc := range docs {
		if err := batch.Index(doc.ID, indexFields(doc)); err != nil {
			log.Printf("indexing document %s failed, skipping: %v", doc.ID, err)
			continue
		}
		pending[doc.SourceTable]++

		if batch.Size() >= batchSize {
			flush(batch, pending)
			batch = staging.NewBatch()
			pending = make(map[string]int)
		}
	}
	flush(batch, pending)

	if err := staging.Close(); err != nil {
		os.RemoveAll(tempPath)
		return nil, fmt.Errorf("closing staging index: %w", err)
	}

	// Swap the staging directory into place. Readers still hold the old
	// descriptors, so unlinking the previous files does not disturb
	// in-flight queries.
	if err := os.RemoveAll(e.path); err != nil && !os.IsNotExist(err) {
		os.RemoveAll(tempPath)
		return nil, fmt.Errorf("removing previous index: %w", err)
	}
	if err := os.Rename(tempPath, e.path); err != nil {
		os.RemoveAll(tempPath)
		return nil, fmt.Errorf("swapping staging index into place: %w", err)
	}

	fresh, err := bleve.Open(e.path)
	if err != nil {
		return nil, fmt.Errorf("opening rebuilt index: %w", err)
	}

	old := e.current.Swap(&fresh)
	if old != nil {
		go func() {
			e.wg.Wait()
			if err := (*old).Close(); err != nil {
				log.Printf("closing previous index: %v", err)
			}
		}()
	}

	log.Printf("index rebuilt: %d documents across %d sources", summary.Indexed, len(summary.Breakdown))
	return summary, nil
}
