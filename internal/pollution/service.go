// Copyright (c) 2026 Aeris Labs. All rights reserved.

package pollution

import (
	"context"
	"log/slog"
	"math"

	"github.com/aeris-labs/aeris/internal/platform/apperr"
	"github.com/aeris-labs/aeris/internal/pollution/aqi"
	"github.com/aeris-labs/aeris/internal/pollution/predict"
	"github.com/aeris-labs/aeris/pkg/normalize"
	"github.com/aeris-labs/aeris/pkg/uuid"
)

// # Service Layer

// Service orchestrates reading ingestion, retrieval, and analytics.
//
// The analytics summary is served cache-aside: reads consult Redis first,
// writes invalidate it. Cache failures degrade to direct Postgres reads
// rather than surfacing to the client.
type Service struct {
	readingRepository Repository
	summaryCache      SummaryCache
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(readingRepo Repository, cache SummaryCache, logger *slog.Logger) *Service {
	return &Service{
		readingRepository: readingRepo,
		summaryCache:      cache,
		logger:            logger,
	}
}

// # Ingestion

// AddInput holds a new measurement submitted by a monitor operator.
type AddInput struct {
	Location string
	PM25     float64
	PM10     float64
	NO2      *float64
}

/*
Add classifies and persists a new reading.

Description: The AQI bucket is derived from PM2.5 at ingestion time and
stored with the row, so historical classifications survive any future change
to the bucket boundaries. The location is normalized into a search key and
the analytics cache is invalidated.

Parameters:
  - context: context.Context
  - actorID: string (The admin recording the measurement)
  - input: AddInput

Returns:
  - *Reading: Persisted entity with ID, AQI, and health category
  - error: Storage failures
*/
func (service *Service) Add(context context.Context, actorID string, input AddInput) (*Reading, error) {
	reading := &Reading{
		ID:          uuid.New(),
		Location:    input.Location,
		LocationKey: normalize.Key(input.Location),
		PM25:        input.PM25,
		PM10:        input.PM10,
		NO2:         input.NO2,
		AQI:         aqi.FromPM25(input.PM25),
		CreatedBy:   actorID,
	}

	if err := service.readingRepository.Create(context, reading); err != nil {
		return nil, err
	}

	service.invalidateSummary(context)

	service.logger.Info("reading_recorded",
		slog.String("reading_id", reading.ID),
		slog.String("location", reading.Location),
		slog.Int("aqi", reading.AQI),
	)

	reading.Health = aqi.HealthCategory(reading.AQI)
	return reading, nil
}

// # Retrieval

/*
List returns a filtered, paginated page of readings with health categories.

Description: The location filter is normalized with the same key function
used at ingestion, so queries are accent- and case-insensitive.

Parameters:
  - context: context.Context
  - filter: ListFilter (Location is the raw user-supplied string)

Returns:
  - []*Reading: Page of annotated readings, newest first
  - int: Total matching count
  - error: Storage failures
*/
func (service *Service) List(context context.Context, filter ListFilter) ([]*Reading, int, error) {
	filter.Location = normalize.Key(filter.Location)

	readings, total, err := service.readingRepository.List(context, filter)
	if err != nil {
		return nil, 0, err
	}

	for _, reading := range readings {
		reading.Health = aqi.HealthCategory(reading.AQI)
	}

	return readings, total, nil
}

/*
Get retrieves a single reading with its health category.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Reading: Annotated entity
  - error: apperr.NotFound or storage failures
*/
func (service *Service) Get(context context.Context, id string) (*Reading, error) {
	reading, err := service.readingRepository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	reading.Health = aqi.HealthCategory(reading.AQI)
	return reading, nil
}

/*
Delete permanently removes a reading and invalidates the analytics cache.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: apperr.NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.readingRepository.Delete(context, id); err != nil {
		return err
	}

	service.invalidateSummary(context)

	service.logger.Info("reading_deleted", slog.String("reading_id", id))
	return nil
}

// # Analytics

/*
Summary returns the aggregate AQI statistics, cache-aside.

Description: Consults the Redis cache first; on a miss (or any cache
failure) it recomputes from Postgres and repopulates the cache best-effort.

Parameters:
  - context: context.Context

Returns:
  - *Summary: Aggregates, nil-valued when no readings exist
  - error: Storage failures
*/
func (service *Service) Summary(context context.Context) (*Summary, error) {
	cached, err := service.summaryCache.Get(context)
	if err == nil {
		return cached, nil
	}
	if apperr.As(err) == nil {
		service.logger.Warn("summary_cache_read_failed", slog.String("error", err.Error()))
	}

	summary, err := service.readingRepository.Summarize(context)
	if err != nil {
		return nil, err
	}

	// The average is reported with two decimal places.
	if summary.AverageAQI != nil {
		rounded := math.Round(*summary.AverageAQI*100) / 100
		summary.AverageAQI = &rounded
	}

	if err := service.summaryCache.Set(context, summary); err != nil {
		service.logger.Warn("summary_cache_write_failed", slog.String("error", err.Error()))
	}

	return summary, nil
}

/*
Predict estimates the AQI for hypothetical pollutant levels.

Parameters:
  - pm25: float64
  - pm10: float64
  - no2: float64

Returns:
  - float64: Continuous AQI estimate, two decimal places
*/
func (service *Service) Predict(pm25, pm10, no2 float64) float64 {
	return predict.AQI(pm25, pm10, no2)
}

// invalidateSummary drops the cached analytics after a write. Failures are
// logged, not returned; the TTL bounds staleness anyway.
func (service *Service) invalidateSummary(context context.Context) {
	if err := service.summaryCache.Invalidate(context); err != nil {
		service.logger.Warn("summary_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}
