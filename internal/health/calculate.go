package health

import (
	"fmt"
	"math"
)

// Measurement is one calculation request as collected from the user.
type Measurement struct {
	WeightKg      float64
	HeightRaw     float64
	HeightUnit    HeightUnit
	AgeYears      int
	Gender        Gender
	ActivityLevel ActivityLevel
}

// Validate enforces the collection-time constraints. A zero height passes;
// it is reported as ErrInvalidHeight by the computation itself.
func (m Measurement) Validate() error {
	if math.IsNaN(m.WeightKg) || math.IsInf(m.WeightKg, 0) || m.WeightKg < 0 {
		return fmt.Errorf("%w: weight must be a non-negative number, got %g", ErrInvalidMeasurement, m.WeightKg)
	}
	if math.IsNaN(m.HeightRaw) || math.IsInf(m.HeightRaw, 0) || m.HeightRaw < 0 {
		return fmt.Errorf("%w: height must be a non-negative number, got %g", ErrInvalidMeasurement, m.HeightRaw)
	}
	if !m.HeightUnit.valid() {
		return fmt.Errorf("%w: unknown height unit %q", ErrInvalidMeasurement, m.HeightUnit)
	}
	if m.AgeYears < 0 || m.AgeYears > 120 {
		return fmt.Errorf("%w: age must be between 0 and 120, got %d", ErrInvalidMeasurement, m.AgeYears)
	}
	if _, ok := genderOffsets[m.Gender]; !ok {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidMeasurement, m.Gender)
	}
	if _, ok := m.ActivityLevel.Multiplier(); !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidMeasurement, m.ActivityLevel)
	}
	return nil
}

// Record is the history entry kept for each successful calculation.
type Record struct {
	BMI           float64       `json:"bmi"`
	WeightKg      float64       `json:"weight_kg"`
	HeightRaw     float64       `json:"height"`
	HeightUnit    HeightUnit    `json:"height_unit"`
	AgeYears      int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// Result is everything a single calculation produces.
type Result struct {
	HeightM        float64
	BMI            float64
	Band           Band
	BMR            float64
	Calories       int
	DietAdjustment string
	Exercise       []string
	Record         Record
}

// Calculate runs the full pipeline for m. It has no side effects; callers
// append Result.Record to a History on success.
func Calculate(m Measurement) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}

	heightM, err := ConvertHeight(m.HeightRaw, m.HeightUnit)
	if err != nil {
		return Result{}, err
	}

	bmi, err := ComputeBMI(m.WeightKg, heightM)
	if err != nil {
		return Result{}, err
	}

	bmr := ComputeBMR(m.WeightKg, heightM, m.AgeYears, m.Gender)
	if math.IsInf(bmr, 0) || math.IsNaN(bmr) {
		return Result{}, fmt.Errorf("%w: weight %g kg is out of range", ErrInvalidMeasurement, m.WeightKg)
	}

	calories, err := CalorieNeeds(bmr, m.ActivityLevel)
	if err != nil {
		return Result{}, err
	}

	return Result{
		HeightM:        heightM,
		BMI:            bmi,
		Band:           Classify(bmi),
		BMR:            bmr,
		Calories:       calories,
		DietAdjustment: DietGuidance(bmi),
		Exercise:       ExerciseGuidance(bmi),
		Record: Record{
			BMI:           bmi,
			WeightKg:      m.WeightKg,
			HeightRaw:     m.HeightRaw,
			HeightUnit:    m.HeightUnit,
			AgeYears:      m.AgeYears,
			Gender:        m.Gender,
			ActivityLevel: m.ActivityLevel,
		},
	}, nil
}
