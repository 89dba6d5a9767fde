// Package dataset keeps the uploaded workbook currently on display and
// avoids re-parsing content it has already seen.
package dataset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"faunadash/domain/core"
	"faunadash/domain/table"
	"faunadash/internal/errors"

	"golang.org/x/sync/singleflight"
)

// Loader parses uploaded bytes into a table
type Loader func(content []byte) (*table.Table, error)

// Entry is a parsed upload
type Entry struct {
	ID       core.DatasetID
	Filename string
	Size     int
	Table    *table.Table
	LoadedAt time.Time
}

// Store holds the current dataset. Uploading the same bytes again reuses
// the parsed table; uploading different bytes replaces it.
type Store struct {
	load   Loader
	logger *slog.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	current *Entry
}

// NewStore creates a store around load
func NewStore(load Loader, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{load: load, logger: logger}
}

// Upload makes content the current dataset. On a LoadError the current
// dataset is cleared and the error returned. Entries are keyed by content;
// the same bytes under another name share the parsed table but carry the
// new filename.
func (s *Store) Upload(ctx context.Context, filename string, content []byte) (*Entry, error) {
	id := core.NewDatasetID(content)

	s.mu.Lock()
	if current := s.current; current != nil && current.ID == id {
		entry := current.withFilename(filename)
		s.current = entry
		s.mu.Unlock()
		s.logger.Debug("[DatasetStore] reusing parsed dataset", "dataset_id", id.Short(), "filename", filename)
		return entry, nil
	}
	s.mu.Unlock()

	ch := s.group.DoChan(id.String(), func() (interface{}, error) {
		tbl, err := s.load(content)
		if err != nil {
			return nil, err
		}
		return &Entry{
			ID:       id,
			Filename: filename,
			Size:     len(content),
			Table:    tbl,
			LoadedAt: time.Now(),
		}, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "upload cancelled")
	case res = <-ch:
	}

	if res.Err != nil {
		s.Invalidate()
		s.logger.Warn("[DatasetStore] upload rejected", "filename", filename, "error", res.Err)
		return nil, res.Err
	}

	// Concurrent uploads of the same bytes share one result.
	entry := res.Val.(*Entry).withFilename(filename)
	s.mu.Lock()
	previous := s.current
	s.current = entry
	s.mu.Unlock()

	if previous != nil && previous.ID != entry.ID {
		s.logger.Info("[DatasetStore] replaced dataset", "previous", previous.ID.Short(), "dataset_id", entry.ID.Short())
	}
	s.logger.Info("[DatasetStore] dataset loaded",
		"dataset_id", entry.ID.Short(),
		"filename", filename,
		"rows", entry.Table.Len(),
		"columns", len(entry.Table.Columns()))
	return entry, nil
}

func (e *Entry) withFilename(filename string) *Entry {
	if e.Filename == filename {
		return e
	}
	renamed := *e
	renamed.Filename = filename
	return &renamed
}

// Current returns the dataset on display
func (s *Store) Current() (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// Invalidate drops the current dataset
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
