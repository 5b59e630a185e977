package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/apperrors"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/model"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/repository"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/testutil"
)

func TestPriceRepository_GetMetals(t *testing.T) {
	t.Run("returns empty slice when no metals exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		metals, err := repo.GetMetals(context.Background())

		if err != nil {
			t.Fatalf("GetMetals returned unexpected error: %v", err)
		}
		if len(metals) != 0 {
			t.Errorf("Expected empty slice, got %d metals", len(metals))
		}
	})

	t.Run("returns metals ordered by name with parsed start dates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		testutil.NewMetal().WithName("Silver").WithStartDate(start).Build(t, db)
		testutil.NewMetal().WithName("Gold").WithStartDate(start).Build(t, db)

		repo := repository.NewPriceRepository(db)
		metals, err := repo.GetMetals(context.Background())

		if err != nil {
			t.Fatalf("GetMetals returned unexpected error: %v", err)
		}
		if len(metals) != 2 {
			t.Fatalf("Expected 2 metals, got %d", len(metals))
		}
		if metals[0].Name != "Gold" || metals[1].Name != "Silver" {
			t.Errorf("Metals not ordered by name: %s, %s", metals[0].Name, metals[1].Name)
		}
		if !metals[0].StartDate.Equal(start) {
			t.Errorf("Expected start date %v, got %v", start, metals[0].StartDate)
		}
	})
}

func TestPriceRepository_GetMetalByName(t *testing.T) {
	t.Run("finds a metal by exact name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		created := testutil.NewMetal().WithName("Gold").WithSymbol("XAU").Build(t, db)

		repo := repository.NewPriceRepository(db)
		metal, err := repo.GetMetalByName(context.Background(), "Gold")

		if err != nil {
			t.Fatalf("GetMetalByName returned unexpected error: %v", err)
		}
		if metal.ID != created.ID || metal.Symbol != "XAU" {
			t.Errorf("Unexpected metal: %+v", metal)
		}
	})

	t.Run("returns ErrMetalNotFound for unknown names", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		_, err := repo.GetMetalByName(context.Background(), "Unobtainium")

		if !errors.Is(err, apperrors.ErrMetalNotFound) {
			t.Errorf("Expected ErrMetalNotFound, got %v", err)
		}
	})
}

func TestPriceRepository_CreateMetal(t *testing.T) {
	t.Run("assigns an ID and a default unit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPriceRepository(db)

		created, err := repo.CreateMetal(context.Background(), model.Metal{
			Name:      "Palladium",
			Symbol:    "XPD",
			StartDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
		})

		if err != nil {
			t.Fatalf("CreateMetal returned unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Error("Expected a generated ID")
		}
		if created.Unit != "USD/oz" {
			t.Errorf("Expected default unit USD/oz, got %q", created.Unit)
		}

		fetched, err := repo.GetMetalByName(context.Background(), "Palladium")
		if err != nil {
			t.Fatalf("Created metal not retrievable: %v", err)
		}
		if fetched.ID != created.ID {
			t.Errorf("Expected ID %s, got %s", created.ID, fetched.ID)
		}
	})
}

func TestPriceRepository_Prices(t *testing.T) {
	t.Run("returns prices ordered by day index", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		metal := testutil.NewMetal().WithName("Gold").WithPrices(100, 102, 98, 105).Build(t, db)

		repo := repository.NewPriceRepository(db)
		prices, err := repo.GetPrices(context.Background(), metal.ID)

		if err != nil {
			t.Fatalf("GetPrices returned unexpected error: %v", err)
		}
		if len(prices) != 4 {
			t.Fatalf("Expected 4 prices, got %d", len(prices))
		}
		for i, p := range prices {
			if p.DayIndex != i {
				t.Errorf("Expected day index %d at position %d, got %d", i, i, p.DayIndex)
			}
		}
		if prices[3].Price != 105 {
			t.Errorf("Expected last price 105, got %v", prices[3].Price)
		}
	})

	t.Run("upsert overwrites existing days", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		metal := testutil.NewMetal().WithName("Gold").WithPrices(100, 102).Build(t, db)

		repo := repository.NewPriceRepository(db)
		err := repo.UpsertPrices(context.Background(), metal.ID, []model.MetalPrice{
			{DayIndex: 1, Price: 103},
			{DayIndex: 2, Price: 99},
		})

		if err != nil {
			t.Fatalf("UpsertPrices returned unexpected error: %v", err)
		}

		prices, err := repo.GetPrices(context.Background(), metal.ID)
		if err != nil {
			t.Fatalf("GetPrices returned unexpected error: %v", err)
		}
		if len(prices) != 3 {
			t.Fatalf("Expected 3 prices after upsert, got %d", len(prices))
		}
		if prices[1].Price != 103 {
			t.Errorf("Expected overwritten price 103 at day 1, got %v", prices[1].Price)
		}
		if prices[2].Price != 99 {
			t.Errorf("Expected appended price 99 at day 2, got %v", prices[2].Price)
		}
	})
}
