package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMeasurement is returned for weight/height values that cannot yield a BMI.
var ErrInvalidMeasurement = errors.New("invalid input")

// ParseMeasurement reads a decimal body measurement from a query value.
func ParseMeasurement(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidMeasurement
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidMeasurement
	}
	return v, nil
}

// CalculateBMI returns weight / height², rounded to two decimal places.
// Height must be positive and weight non-negative.
func CalculateBMI(weight, height float64) (float64, error) {
	if height <= 0 || weight < 0 {
		return 0, ErrInvalidMeasurement
	}
	bmi := weight / (height * height)
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, ErrInvalidMeasurement
	}
	return roundHalfEven(bmi, 2), nil
}

// roundHalfEven rounds the exact binary value of x to the given number of
// decimals; exact ties go to the even digit (0.125 -> 0.12).
func roundHalfEven(x float64, decimals int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', decimals, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}
