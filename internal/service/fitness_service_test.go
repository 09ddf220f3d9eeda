package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(70, 1.75)
	require.NoError(t, err)
	assert.Equal(t, 22.86, bmi)
	assert.Greater(t, bmi, 22.0)
	assert.Less(t, bmi, 23.0)

	bmi, err = CalculateBMI(0, 1.8)
	require.NoError(t, err)
	assert.Zero(t, bmi)

	bmi, err = CalculateBMI(90, 2)
	require.NoError(t, err)
	assert.Equal(t, 22.5, bmi)
}

func TestCalculateBMI_RoundsTiesToEven(t *testing.T) {
	cases := []struct {
		weight, height float64
		want           float64
	}{
		{0.125, 1, 0.12},
		{0.375, 1, 0.38},
		{0.625, 1, 0.62},
		{1.005, 1, 1.0}, // stored just below the tie
		{70, 1.75, 22.86},
	}
	for _, tc := range cases {
		bmi, err := CalculateBMI(tc.weight, tc.height)
		require.NoError(t, err)
		assert.Equal(t, tc.want, bmi, "weight=%v height=%v", tc.weight, tc.height)
	}
}

func TestCalculateBMI_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name           string
		weight, height float64
	}{
		{"zero height", 70, 0},
		{"negative height", 70, -1.75},
		{"negative weight", -70, 1.75},
		{"overflow", math.MaxFloat64, 1e-300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateBMI(tc.weight, tc.height)
			assert.ErrorIs(t, err, ErrInvalidMeasurement)
		})
	}
}

func TestParseMeasurement(t *testing.T) {
	v, err := ParseMeasurement("70")
	require.NoError(t, err)
	assert.Equal(t, 70.0, v)

	v, err = ParseMeasurement(" 1.75 ")
	require.NoError(t, err)
	assert.Equal(t, 1.75, v)

	v, err = ParseMeasurement("7e1")
	require.NoError(t, err)
	assert.Equal(t, 70.0, v)

	for _, raw := range []string{"", "  ", "abc", "xyz", "1,75", "NaN", "inf", "-Inf", "70kg"} {
		_, err := ParseMeasurement(raw)
		assert.ErrorIs(t, err, ErrInvalidMeasurement, "raw=%q", raw)
	}
}
