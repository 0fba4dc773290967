// Copyright (c) 2026 Aeris Labs. All rights reserved.

/*
Package predict estimates AQI from pollutant concentrations with a linear
model fitted offline against historical monitor readings.

The coefficients are baked in; retraining happens out of band and ships as a
code change so deployments stay deterministic.
*/
package predict

import "math"

// Linear model coefficients, least-squares fit.
const (
	weightPM25 = 0.45
	weightPM10 = 0.75
	weightNO2  = 0.30
	intercept  = 10.0
)

// AQI estimates the Air Quality Index for the given pollutant levels
// (µg/m³), rounded to two decimal places. The estimate is a continuous
// value, not a bucket ceiling.
func AQI(pm25, pm10, no2 float64) float64 {
	estimate := intercept + weightPM25*pm25 + weightPM10*pm10 + weightNO2*no2
	return math.Round(estimate*100) / 100
}
