// Copyright (c) 2026 Aeris Labs. All rights reserved.

/*
Package pollution implements the air quality monitoring domain of the Aeris
platform.

It covers the full lifecycle of a monitor reading: ingestion with automatic
AQI classification, location-normalized search, aggregate analytics with a
Redis cache in front of Postgres, and a linear-model AQI estimator.

# Architecture

  - Entities: Reading, Summary.
  - Storage: PostgreSQL for durable readings, Redis as a read-through cache
    for the analytics summary.
  - Classification: AQI bucketing lives in the aqi subpackage, estimation in
    the predict subpackage.
*/
package pollution

import (
	"time"

	"github.com/aeris-labs/aeris/internal/pollution/aqi"
)

// # Domain Entities

// Reading represents a single air quality measurement from a monitor.
//
// LocationKey is a normalized, accent-stripped form of Location used for
// case-insensitive search; it never leaves the storage layer.
type Reading struct {
	ID          string       `json:"id"`
	Location    string       `json:"location"`
	LocationKey string       `json:"-"`
	PM25        float64      `json:"pm25"`
	PM10        float64      `json:"pm10"`
	NO2         *float64     `json:"no2,omitempty"`
	AQI         int          `json:"aqi"`
	Health      aqi.Category `json:"health_category,omitempty"`
	CreatedBy   string       `json:"created_by,omitempty"`
	RecordedAt  time.Time    `json:"recorded_at"`
}

// Summary aggregates the stored readings for the analytics endpoint.
//
// Both fields are nil when no readings exist, which serializes to JSON null
// rather than a misleading zero.
type Summary struct {
	AverageAQI *float64 `json:"average_aqi"`
	WorstAQI   *int     `json:"worst_aqi"`
}

// # JSON Field Names

const (
	FieldLocation = "location"
	FieldPM25     = "pm25"
	FieldPM10     = "pm10"
	FieldNO2      = "no2"
	FieldID       = "id"
)
