// Package pipeline orchestrates dataset loading, selection, statistics, and
// the forecast fit.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmaia/cpidash/internal/source"
	"github.com/dmaia/cpidash/internal/store"
)

var (
	loadOnce sync.Once
	loaded   *store.Store
	loadErr  error
)

// Load fetches, decodes, and indexes the remote dataset exactly once per
// process. Every later call returns the memoized result — including a
// memoized failure: a failed fetch requires restarting the session, there
// are no automatic retries.
func Load(ctx context.Context, url string) (*store.Store, error) {
	loadOnce.Do(func() {
		loaded, loadErr = loadDataset(ctx, url)
	})
	return loaded, loadErr
}

// loadDataset is the uncached load path: fetch, decode, index.
func loadDataset(ctx context.Context, url string) (*store.Store, error) {
	data, err := source.NewClient(url).Fetch(ctx)
	if err != nil {
		return nil, err
	}

	obs, err := source.Decode(data)
	if err != nil {
		return nil, err
	}

	st, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrDataUnavailable, err)
	}
	if err := st.Insert(obs); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("%w: indexing observations: %v", source.ErrDataUnavailable, err)
	}

	return st, nil
}
