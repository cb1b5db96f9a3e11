package health

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Band is one row of the BMI classification table. A BMI belongs to the
// highest band whose Min it reaches.
type Band struct {
	Min      float64
	Range    string
	Category Category
	Severity Severity
	Tip      string
}

// bands is sorted by Min ascending.
var bands = []Band{
	{
		Min:      math.Inf(-1),
		Range:    "< 16",
		Category: ExtremelyUnderweight,
		Severity: SeverityCritical,
		Tip:      "Increase calorie intake with protein-rich food; consult a doctor.",
	},
	{
		Min:      16,
		Range:    "16 - 18.4",
		Category: Underweight,
		Severity: SeverityWarning,
		Tip:      "Add more healthy calories, carbs, and proteins.",
	},
	{
		Min:      18.5,
		Range:    "18.5 - 24.9",
		Category: Healthy,
		Severity: SeverityOK,
		Tip:      "Maintain diet and regular activity.",
	},
	{
		Min:      25,
		Range:    "25 - 29.9",
		Category: Overweight,
		Severity: SeverityWarning,
		Tip:      "Reduce sugar & fats; increase cardio.",
	},
	{
		Min:      30,
		Range:    "≥ 30",
		Category: ExtremelyOverweight,
		Severity: SeverityCritical,
		Tip:      "Start walking, reduce fast food, consult a nutritionist.",
	},
}

// ConvertHeight converts a raw height in unit to metres.
func ConvertHeight(raw float64, unit HeightUnit) (float64, error) {
	switch unit {
	case Centimeters:
		return raw / 100, nil
	case Meters:
		return raw, nil
	case Feet:
		return raw / 3.28, nil
	}
	return 0, fmt.Errorf("%w: unknown height unit %q", ErrInvalidMeasurement, unit)
}

// ComputeBMI returns weight / height² rounded to two decimals.
func ComputeBMI(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, ErrInvalidHeight
	}

	bmi := weightKg / (heightM * heightM)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return 0, ErrInvalidHeight
	}

	return round(bmi, 2), nil
}

// Classify returns the band bmi falls into. It is total: anything below the
// first boundary (including NaN) lands in the lowest band.
func Classify(bmi float64) Band {
	for i := len(bands) - 1; i > 0; i-- {
		if bmi >= bands[i].Min {
			return bands[i]
		}
	}
	return bands[0]
}

// Chart returns the BMI reference chart, lowest band first.
func Chart() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// round is half away from zero on the shortest decimal form of v.
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
