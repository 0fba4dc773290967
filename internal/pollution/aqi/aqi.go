// Copyright (c) 2026 Aeris Labs. All rights reserved.

/*
Package aqi converts raw particulate measurements into Air Quality Index
values and human-readable health categories.

The bucket boundaries follow the Indian National AQI breakpoints for PM2.5,
collapsed to the bucket ceiling rather than interpolated. Every reading is
therefore classified into one of five index values: 50, 100, 200, 300, 400.
*/
package aqi

// Category labels the health impact of an AQI value.
type Category string

const (
	CategoryGood         Category = "Good"
	CategorySatisfactory Category = "Satisfactory"
	CategoryModerate     Category = "Moderate"
	CategoryPoor         Category = "Poor"
	CategorySevere       Category = "Severe"
)

// FromPM25 maps a PM2.5 concentration (µg/m³) to its AQI bucket ceiling.
func FromPM25(pm25 float64) int {
	switch {
	case pm25 <= 30:
		return 50
	case pm25 <= 60:
		return 100
	case pm25 <= 90:
		return 200
	case pm25 <= 120:
		return 300
	default:
		return 400
	}
}

// HealthCategory labels an AQI value with its health impact band.
func HealthCategory(aqi int) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategorySatisfactory
	case aqi <= 200:
		return CategoryModerate
	case aqi <= 300:
		return CategoryPoor
	default:
		return CategorySevere
	}
}
