package indexer

import "time"

// SourceError records a source category that failed during a reindex
// run. The run continues without it.
type SourceError struct {
	Source string `json:"source"`
	Err    string `json:"error"`
}

// Result summarizes the outcome of a full reindex run.
type Result struct {
	RunID        string         `json:"run_id"`
	Indexed      int            `json:"indexed"`
	Breakdown    map[string]int `json:"breakdown"`
	SourceErrors []SourceError  `json:"source_errors,omitempty"`
	Duration     time.Duration  `json:"-"`
}

// ProgressFunc is called once per source as its extraction completes.
type ProgressFunc func(source string, docs int)
