package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrDatasetUninitialized indicates the price dataset was queried before it
	// was loaded. This is a fatal setup condition: callers should refuse to
	// proceed rather than retry, and it must never be confused with a missing
	// metal.
	ErrDatasetUninitialized = errors.New("price dataset not initialized")

	// ErrMetalNotFound indicates that no series exists for the requested metal
	// name. Non-fatal: callers treat it as "nothing to display".
	ErrMetalNotFound = errors.New("metal not found")

	// ErrSettingNotFound indicates that a display preference key has no stored value.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrEmptySeries indicates a stored metal has no price rows. Every series a
	// caller can query must be non-empty, so the loader rejects such datasets.
	ErrEmptySeries = errors.New("price series is empty")

	// ErrInvalidTheme indicates a display preference value outside light/dark.
	ErrInvalidTheme = errors.New("invalid theme value")

	// ErrInvalidLookback indicates a non-positive window or lookback parameter.
	ErrInvalidLookback = errors.New("lookback must be a positive integer")

	// ErrInvalidCSVHeaders indicates an import file whose header row does not
	// match the expected date,price shape.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")

	// ErrEmptyMetalName indicates a required metal name parameter is missing.
	ErrEmptyMetalName = errors.New("metal name cannot be empty")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrieveMetals  = errors.New("failed to retrieve metals")
	ErrFailedToRetrievePrices  = errors.New("failed to retrieve prices")
	ErrFailedToRetrieveSetting = errors.New("failed to retrieve setting")
	ErrFailedToImportPrices    = errors.New("failed to import prices")
)

// Data integrity errors represent inconsistencies in the stored dataset.
var (
	// ErrStartDateMismatch indicates that the metals in the dataset do not share
	// a single series origin date.
	ErrStartDateMismatch = errors.New("metal series start dates differ")

	// ErrSeriesGap indicates that a series is missing a day: index i of a series
	// must always be exactly i days after the start date.
	ErrSeriesGap = errors.New("price series has a gap")
)
