// Package health implements the stateless fitness calculators: BMI,
// body-fat estimation, and daily calorie needs.
package health

import (
	"errors"
	"math"
)

var (
	ErrInvalidMeasurements = errors.New("measurements must be positive")
	ErrUnknownGender       = errors.New("gender must be male or female")
	ErrUnknownActivity     = errors.New("activity level must be low, moderate or high")
)

// BMICategory is the WHO weight classification of a BMI value.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal weight"
	Overweight   BMICategory = "Overweight"
	Obesity      BMICategory = "Obesity"
)

// BMI computes the body mass index from weight in kilograms and height in
// centimeters.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurements
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// ClassifyBMI maps a BMI value onto its weight category.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obesity
	}
}

// BodyFatPercent estimates body fat from waist and height circumference
// measurements (cm) using gender-specific log formulas.
func BodyFatPercent(gender string, heightCm, waistCm float64) (float64, error) {
	if heightCm <= 0 || waistCm <= 0 {
		return 0, ErrInvalidMeasurements
	}
	switch gender {
	case "male":
		return 86.010*math.Log10(waistCm) - 70.041*math.Log10(heightCm) + 36.76, nil
	case "female":
		return 163.205*math.Log10(waistCm) - 97.684*math.Log10(heightCm) - 78.387, nil
	default:
		return 0, ErrUnknownGender
	}
}

// Activity multipliers applied to the basal metabolic rate.
var activityMultipliers = map[string]float64{
	"low":      1.375,
	"moderate": 1.55,
	"high":     1.725,
}

// DailyCalories estimates total daily calorie needs via the Harris-Benedict
// basal metabolic rate scaled by the activity multiplier.
func DailyCalories(gender string, weightKg, heightCm float64, age int, activityLevel string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, ErrInvalidMeasurements
	}

	var bmr float64
	switch gender {
	case "male":
		bmr = 88.36 + 13.4*weightKg + 4.8*heightCm - 5.7*float64(age)
	case "female":
		bmr = 447.6 + 9.2*weightKg + 3.1*heightCm - 4.3*float64(age)
	default:
		return 0, ErrUnknownGender
	}

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, ErrUnknownActivity
	}

	return bmr * multiplier, nil
}
