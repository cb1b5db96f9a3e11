package health

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidHeight is returned when the height resolves to zero metres and
	// BMI/BMR are undefined.
	ErrInvalidHeight = errors.New("invalid height entered")

	// ErrInvalidMeasurement wraps every collection-time validation failure.
	ErrInvalidMeasurement = errors.New("invalid measurement")
)

// HeightUnit is the unit the raw height was entered in.
type HeightUnit string

const (
	Centimeters HeightUnit = "cm"
	Meters      HeightUnit = "m"
	Feet        HeightUnit = "ft"
)

// ParseHeightUnit accepts the short unit code or its spelled-out name.
func ParseHeightUnit(s string) (HeightUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm", "cms", "centimeters", "centimetres":
		return Centimeters, nil
	case "m", "meters", "metres":
		return Meters, nil
	case "ft", "feet":
		return Feet, nil
	}
	return "", fmt.Errorf("%w: unknown height unit %q", ErrInvalidMeasurement, s)
}

func (u HeightUnit) valid() bool {
	return u == Centimeters || u == Meters || u == Feet
}

// Gender selects the BMR offset.
type Gender string

const (
	Male        Gender = "male"
	Female      Gender = "female"
	Unspecified Gender = "unspecified"
)

var genderLabels = map[Gender]string{
	Male:        "Male",
	Female:      "Female",
	Unspecified: "Prefer not to say",
}

// ParseGender maps user input onto a Gender. An empty value is Unspecified.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	case "", "unspecified", "prefer not to say", "prefer_not_to_say":
		return Unspecified, nil
	}
	return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidMeasurement, s)
}

// Label is the display text for g.
func (g Gender) Label() string {
	if l, ok := genderLabels[g]; ok {
		return l
	}
	return string(g)
}

// ActivityLevel is one of the five fixed activity levels.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	SuperActive      ActivityLevel = "super_active"
)

// activityMultipliers maps each activity level to its TDEE multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	SuperActive:      1.9,
}

var activityLabels = map[ActivityLevel]string{
	Sedentary:        "Sedentary (little/no exercise)",
	LightlyActive:    "Lightly active (light exercise/sports 1-3 days/week)",
	ModeratelyActive: "Moderately active (moderate exercise/sports 3-5 days/week)",
	VeryActive:       "Very active (hard exercise/sports 6-7 days a week)",
	SuperActive:      "Super active (twice/day training or physical job)",
}

// ParseActivityLevel accepts the level code; spaces and dashes are treated as
// underscores so "lightly active" and "lightly-active" also match.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	level := ActivityLevel(norm)
	if _, ok := activityMultipliers[level]; !ok {
		return "", fmt.Errorf("%w: unknown activity level %q", ErrInvalidMeasurement, s)
	}
	return level, nil
}

// Multiplier returns the fixed calorie multiplier for l.
func (l ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[l]
	return m, ok
}

// Label is the display text for l.
func (l ActivityLevel) Label() string {
	if s, ok := activityLabels[l]; ok {
		return s
	}
	return string(l)
}

// Category is the BMI classification label.
type Category string

const (
	ExtremelyUnderweight Category = "Extremely Underweight"
	Underweight          Category = "Underweight"
	Healthy              Category = "Healthy"
	Overweight           Category = "Overweight"
	ExtremelyOverweight  Category = "Extremely Overweight"
)

// Severity tells the presentation layer how loudly to render a category.
type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)
