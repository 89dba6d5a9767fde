package dashboard

import (
	"context"
	"log/slog"

	"faunadash/domain/core"
	"faunadash/internal/dataset"
	"faunadash/internal/errors"

	"github.com/dgraph-io/ristretto"
)

// Service renders the dashboard for the current dataset. Rendered views are
// cached per dataset and selection; the cache is emptied whenever the
// dataset changes.
type Service struct {
	store  *dataset.Store
	opts   Options
	views  *ristretto.Cache
	logger *slog.Logger
}

// NewService builds a service. maxCost is the number of rendered views kept.
func NewService(store *dataset.Store, opts Options, maxCost int64, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	views, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create view cache")
	}
	return &Service{store: store, opts: opts, views: views, logger: logger}, nil
}

// Options returns the dashboard settings
func (s *Service) Options() Options {
	return s.opts
}

// Upload parses content and makes it the dataset on display
func (s *Service) Upload(ctx context.Context, filename string, content []byte) (*dataset.Entry, error) {
	var previous core.DatasetID
	if current, ok := s.store.Current(); ok {
		previous = current.ID
	}

	entry, err := s.store.Upload(ctx, filename, content)
	if err != nil {
		s.views.Clear()
		return nil, err
	}
	if entry.ID != previous {
		s.views.Clear()
	}
	return entry, nil
}

// Current returns the dataset on display
func (s *Service) Current() (*dataset.Entry, bool) {
	return s.store.Current()
}

// Render builds the view of the current dataset for sel. Without a dataset
// it returns a NOT_FOUND error.
func (s *Service) Render(sel Selection) (View, error) {
	entry, ok := s.store.Current()
	if !ok {
		return View{}, errors.NotFound("dataset")
	}

	key := core.ComputeSelectionHash(entry.ID, sel.Map()).String()
	if cached, found := s.views.Get(key); found {
		if view, ok := cached.(View); ok {
			s.logger.Debug("[Dashboard] view cache hit", "dataset_id", entry.ID.Short())
			view.Filename = entry.Filename
			return view, nil
		}
	}

	view := Build(entry.Table, sel, s.opts)
	view.DatasetID = entry.ID.String()
	view.Filename = entry.Filename
	s.views.Set(key, view, 1)

	s.logger.Debug("[Dashboard] view rendered",
		"dataset_id", entry.ID.Short(),
		"source_rows", view.SourceRows,
		"filtered_rows", view.FilteredRows,
		"notices", len(view.Notices))
	return view, nil
}

// Close releases the view cache
func (s *Service) Close() {
	s.views.Close()
}
