// Copyright (c) 2026 Aeris Labs. All rights reserved.

package predict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeris-labs/aeris/internal/pollution/predict"
)

/*
TestAQI pins the model output for known inputs so coefficient changes are
deliberate.
*/
func TestAQI(t *testing.T) {
	tests := []struct {
		name            string
		pm25, pm10, no2 float64
		want            float64
	}{
		{"clean_air", 0, 0, 0, 10.0},
		{"light_pollution", 20, 30, 10, 44.5},
		{"heavy_pollution", 100, 120, 60, 163.0},
		{"fractional_rounding", 10.5, 20.25, 5.125, 31.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, predict.AQI(tt.pm25, tt.pm10, tt.no2), 0.001)
		})
	}
}
