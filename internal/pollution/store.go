// Copyright (c) 2026 Aeris Labs. All rights reserved.

package pollution

import (
	"context"
)

// # Repository Contracts

// ListFilter narrows and pages the reading list.
type ListFilter struct {
	// Location, when set, matches against the normalized location key.
	Location string
	Limit    int
	Offset   int
}

// Repository defines the persistence contract for monitor readings.
type Repository interface {
	/*
		Create persists a new reading.

		Parameters:
		  - context: context.Context
		  - reading: *Reading (Hydrated entity with ID, AQI, and LocationKey set)

		Returns:
		  - error: Storage failures
	*/
	Create(context context.Context, reading *Reading) error

	/*
		List returns a filtered, paginated slice of readings, newest first,
		with the total count matching the filter.

		Parameters:
		  - context: context.Context
		  - filter: ListFilter

		Returns:
		  - []*Reading: Page of readings
		  - int: Total matching count
		  - error: Storage failures
	*/
	List(context context.Context, filter ListFilter) ([]*Reading, int, error)

	/*
		FindByID retrieves a single reading.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Reading: Loaded entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Reading, error)

	/*
		Delete permanently removes a reading.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound if the reading does not exist
	*/
	Delete(context context.Context, id string) error

	/*
		Summarize computes the aggregate AQI statistics over all readings.

		Parameters:
		  - context: context.Context

		Returns:
		  - *Summary: Aggregates, nil-valued when no readings exist
		  - error: Storage failures
	*/
	Summarize(context context.Context) (*Summary, error)
}

// SummaryCache fronts the analytics aggregate with a short-lived cache.
//
// A cache failure is never fatal to the caller; the service treats any error
// as a miss and recomputes from storage.
type SummaryCache interface {
	// Get returns the cached summary, or apperr.NotFound on a miss.
	Get(context context.Context) (*Summary, error)

	// Set stores the summary with the configured TTL.
	Set(context context.Context, summary *Summary) error

	// Invalidate drops the cached summary after a write to the readings.
	Invalidate(context context.Context) error
}
