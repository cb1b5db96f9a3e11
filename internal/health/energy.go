package health

import (
	"fmt"
	"math"
)

var genderOffsets = map[Gender]float64{
	Male:        5,
	Female:      -161,
	Unspecified: 0,
}

// ComputeBMR estimates the basal metabolic rate with Mifflin-St Jeor.
// Unspecified gender gets no offset.
func ComputeBMR(weightKg, heightM float64, ageYears int, gender Gender) float64 {
	bmr := 10*weightKg + 6.25*(heightM*100) - 5*float64(ageYears)
	return bmr + genderOffsets[gender]
}

// CalorieNeeds scales bmr by the activity multiplier and rounds half away
// from zero to whole kcal/day. Estimates that do not fit an int are rejected.
func CalorieNeeds(bmr float64, level ActivityLevel) (int, error) {
	mult, ok := level.Multiplier()
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidMeasurement, level)
	}

	kcal := round(bmr*mult, 0)
	if math.IsNaN(kcal) || kcal >= float64(math.MaxInt) || kcal < float64(math.MinInt) {
		return 0, fmt.Errorf("%w: calorie estimate out of range for bmr %g", ErrInvalidMeasurement, bmr)
	}
	return int(kcal), nil
}
