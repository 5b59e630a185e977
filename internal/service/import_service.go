package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/dataset"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/model"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/repository"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/validation"
)

// ImportService ingests CSV price history into the database and refreshes the
// in-memory dataset snapshot afterwards, so imported prices become queryable
// as soon as the import call returns.
type ImportService struct {
	repo   *repository.PriceRepository
	loader *dataset.Loader
}

// NewImportService creates a new ImportService.
func NewImportService(repo *repository.PriceRepository, loader *dataset.Loader) *ImportService {
	return &ImportService{repo: repo, loader: loader}
}

// ImportPrices reads a CSV file with a "date,price" header and one row per
// consecutive calendar day, stores the rows for the named metal and reloads
// the dataset. The metal is created on first import, with its start date set
// to the first row's date. Re-importing overlapping days overwrites them.
//
// Returns the number of imported rows.
func (s *ImportService) ImportPrices(ctx context.Context, metalName, symbol string, r io.Reader) (int, error) {
	if err := validation.ValidateMetalName(metalName); err != nil {
		return 0, err
	}

	dates, values, err := parsePriceCSV(r)
	if err != nil {
		return 0, err
	}

	metal, err := s.repo.GetMetalByName(ctx, metalName)
	if errors.Is(err, apperrors.ErrMetalNotFound) {
		// A new metal must share the dataset's start date. Checked before any
		// write: a committed mismatch would make every subsequent load fail.
		metals, lerr := s.repo.GetMetals(ctx)
		if lerr != nil {
			return 0, fmt.Errorf("%w: %v", apperrors.ErrFailedToImportPrices, lerr)
		}
		if len(metals) > 0 && !dates[0].Equal(metals[0].StartDate) {
			return 0, fmt.Errorf("%w: %s starts %s, expected %s",
				apperrors.ErrStartDateMismatch, metalName,
				dates[0].Format("2006-01-02"), metals[0].StartDate.Format("2006-01-02"))
		}

		metal, err = s.repo.CreateMetal(ctx, model.Metal{
			Name:      metalName,
			Symbol:    symbol,
			StartDate: dates[0],
		})
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrFailedToImportPrices, err)
	}

	firstIndex := daysBetween(metal.StartDate, dates[0])
	if firstIndex < 0 {
		return 0, fmt.Errorf("%w: import begins %s, before series start %s",
			apperrors.ErrFailedToImportPrices,
			dates[0].Format("2006-01-02"), metal.StartDate.Format("2006-01-02"))
	}

	// Appending past the end of the stored series would leave days with no
	// price between the old tail and the new rows.
	existing, err := s.repo.GetPrices(ctx, metal.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrFailedToImportPrices, err)
	}
	if firstIndex > len(existing) {
		return 0, fmt.Errorf("%w: import begins at day %d but series ends at day %d",
			apperrors.ErrSeriesGap, firstIndex, len(existing)-1)
	}

	rows := make([]model.MetalPrice, len(values))
	for i, v := range values {
		rows[i] = model.MetalPrice{
			MetalID:  metal.ID,
			DayIndex: firstIndex + i,
			Price:    v,
		}
	}

	if err := s.repo.UpsertPrices(ctx, metal.ID, rows); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrFailedToImportPrices, err)
	}

	if err := s.loader.Load(ctx); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// parsePriceCSV reads and checks the import file: a date,price header, then
// one row per day with strictly consecutive dates.
func parsePriceCSV(r io.Reader) ([]time.Time, []float64, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCSVHeaders, err)
	}
	if len(header) != 2 ||
		!strings.EqualFold(strings.TrimSpace(header[0]), "date") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "price") {
		return nil, nil, fmt.Errorf("%w: expected date,price", apperrors.ErrInvalidCSVHeaders)
	}

	var dates []time.Time
	var values []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToImportPrices, err)
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", apperrors.ErrFailedToImportPrices, len(dates)+1, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", apperrors.ErrFailedToImportPrices, len(dates)+1, err)
		}

		if len(dates) > 0 && daysBetween(dates[len(dates)-1], date) != 1 {
			return nil, nil, fmt.Errorf("%w: %s does not follow %s",
				apperrors.ErrSeriesGap,
				date.Format("2006-01-02"), dates[len(dates)-1].Format("2006-01-02"))
		}

		dates = append(dates, date)
		values = append(values, price)
	}

	if len(dates) == 0 {
		return nil, nil, fmt.Errorf("%w: import file has no data rows", apperrors.ErrEmptySeries)
	}

	return dates, values, nil
}
