package dataset

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/repository"
)

// Loader builds dataset snapshots from the price repository and installs them
// into a Store. Loading is a precondition for every metrics query: the store
// only ever sees complete snapshots, never one under construction.
type Loader struct {
	repo  *repository.PriceRepository
	store *Store
}

// NewLoader creates a Loader that feeds the given store.
func NewLoader(repo *repository.PriceRepository, store *Store) *Loader {
	return &Loader{repo: repo, store: store}
}

// Load reads every metal's price history, validates the dataset invariants
// and atomically replaces the store's snapshot. Per-metal series are loaded
// concurrently; any failure aborts the whole load and leaves the previous
// snapshot in place.
//
// Invariants checked:
//   - every metal shares the same start date,
//   - every series is non-empty,
//   - day indexes are contiguous from 0 (index i is i days after the start).
func (l *Loader) Load(ctx context.Context) error {
	metals, err := l.repo.GetMetals(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrieveMetals, err)
	}

	ds := &MetalDataset{Series: make(map[string][]float64, len(metals))}

	for i, m := range metals {
		if i == 0 {
			ds.StartDate = m.StartDate
			continue
		}
		if !m.StartDate.Equal(ds.StartDate) {
			return fmt.Errorf("%w: %s starts %s, expected %s",
				apperrors.ErrStartDateMismatch, m.Name,
				m.StartDate.Format("2006-01-02"), ds.StartDate.Format("2006-01-02"))
		}
	}

	series := make([][]float64, len(metals))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range metals {
		i, m := i, m
		g.Go(func() error {
			prices, err := l.repo.GetPrices(gctx, m.ID)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", apperrors.ErrFailedToRetrievePrices, m.Name, err)
			}
			if len(prices) == 0 {
				return fmt.Errorf("%w: %s", apperrors.ErrEmptySeries, m.Name)
			}

			values := make([]float64, len(prices))
			for j, p := range prices {
				if p.DayIndex != j {
					return fmt.Errorf("%w: %s at day %d", apperrors.ErrSeriesGap, m.Name, j)
				}
				values[j] = p.Price
			}
			series[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, m := range metals {
		ds.Series[m.Name] = series[i]
	}

	l.store.Replace(ds)
	return nil
}
