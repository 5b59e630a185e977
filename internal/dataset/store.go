// Package dataset holds the fully loaded in-memory price dataset and the
// store that resolves metal names to their daily price series.
package dataset

import (
	"sort"
	"sync"
	"time"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
)

// MetalDataset is a loaded dataset snapshot: one start date shared by every
// metal, and one ordered daily price series per metal name. Index i of a
// series is the price for StartDate plus i days; series are contiguous and
// non-empty. A snapshot is immutable once constructed.
type MetalDataset struct {
	StartDate time.Time
	Series    map[string][]float64
}

// Store hands out price series by metal name. It holds at most one dataset
// snapshot at a time; Replace swaps the whole snapshot atomically, so lookups
// never observe a partially loaded dataset. All other state is read-only.
type Store struct {
	mu sync.RWMutex
	ds *MetalDataset
}

// NewStore creates an empty Store. Until Replace is called every query
// reports apperrors.ErrDatasetUninitialized.
func NewStore() *Store {
	return &Store{}
}

// Replace installs a fully resolved dataset snapshot.
func (s *Store) Replace(ds *MetalDataset) {
	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()
}

// Lookup resolves a metal name to its ordered daily price series. Matching is
// case-sensitive and exact. Returns ErrDatasetUninitialized before the first
// Replace and ErrMetalNotFound for unknown names; the two are distinct
// because callers treat the former as a fatal setup error and the latter as
// an empty selection.
func (s *Store) Lookup(name string) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ds == nil {
		return nil, apperrors.ErrDatasetUninitialized
	}

	prices, ok := s.ds.Series[name]
	if !ok {
		return nil, apperrors.ErrMetalNotFound
	}
	return prices, nil
}

// StartDate returns the shared origin date of the loaded dataset.
func (s *Store) StartDate() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ds == nil {
		return time.Time{}, apperrors.ErrDatasetUninitialized
	}
	return s.ds.StartDate, nil
}

// Metals returns the known metal names in sorted order.
func (s *Store) Metals() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ds == nil {
		return nil, apperrors.ErrDatasetUninitialized
	}

	names := make([]string, 0, len(s.ds.Series))
	for name := range s.ds.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
