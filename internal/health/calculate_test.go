package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMeasurement() Measurement {
	return Measurement{
		WeightKg:      70,
		HeightRaw:     175,
		HeightUnit:    Centimeters,
		AgeYears:      30,
		Gender:        Male,
		ActivityLevel: Sedentary,
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(validMeasurement())
	require.NoError(t, err)

	assert.Equal(t, 22.86, res.BMI)
	assert.Equal(t, Healthy, res.Band.Category)
	assert.Equal(t, SeverityOK, res.Band.Severity)
	assert.Equal(t, 1648.75, res.BMR)
	assert.Equal(t, 1979, res.Calories)
	assert.Equal(t, "Maintain current calorie intake", res.DietAdjustment)
	assert.Equal(t, []string{"Maintain current routine", "Yoga, jogging, swimming recommended"}, res.Exercise)

	assert.Equal(t, Record{
		BMI:           22.86,
		WeightKg:      70,
		HeightRaw:     175,
		HeightUnit:    Centimeters,
		AgeYears:      30,
		Gender:        Male,
		ActivityLevel: Sedentary,
	}, res.Record)
}

func TestCalculate_Underweight(t *testing.T) {
	m := validMeasurement()
	m.WeightKg = 45
	m.Gender = Female
	m.ActivityLevel = ModeratelyActive

	res, err := Calculate(m)
	require.NoError(t, err)

	assert.Equal(t, 14.69, res.BMI)
	assert.Equal(t, ExtremelyUnderweight, res.Band.Category)
	assert.Equal(t, "Suggested surplus: +500 kcal/day", res.DietAdjustment)
	assert.Equal(t, "Light cardio", res.Exercise[1])
}

func TestCalculate_ZeroHeightInAnyUnit(t *testing.T) {
	for _, unit := range []HeightUnit{Centimeters, Meters, Feet} {
		t.Run(string(unit), func(t *testing.T) {
			m := validMeasurement()
			m.HeightRaw = 0
			m.HeightUnit = unit

			_, err := Calculate(m)
			assert.ErrorIs(t, err, ErrInvalidHeight)
		})
	}
}

func TestMeasurement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Measurement)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Measurement) {}},
		{name: "zero weight allowed", mutate: func(m *Measurement) { m.WeightKg = 0 }},
		{name: "age 0 allowed", mutate: func(m *Measurement) { m.AgeYears = 0 }},
		{name: "age 120 allowed", mutate: func(m *Measurement) { m.AgeYears = 120 }},
		{name: "negative weight", mutate: func(m *Measurement) { m.WeightKg = -1 }, wantErr: true},
		{name: "NaN weight", mutate: func(m *Measurement) { m.WeightKg = math.NaN() }, wantErr: true},
		{name: "negative height", mutate: func(m *Measurement) { m.HeightRaw = -170 }, wantErr: true},
		{name: "infinite height", mutate: func(m *Measurement) { m.HeightRaw = math.Inf(1) }, wantErr: true},
		{name: "age above range", mutate: func(m *Measurement) { m.AgeYears = 121 }, wantErr: true},
		{name: "negative age", mutate: func(m *Measurement) { m.AgeYears = -1 }, wantErr: true},
		{name: "unknown unit", mutate: func(m *Measurement) { m.HeightUnit = "yd" }, wantErr: true},
		{name: "unknown gender", mutate: func(m *Measurement) { m.Gender = "other" }, wantErr: true},
		{name: "unknown activity", mutate: func(m *Measurement) { m.ActivityLevel = "extreme" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeasurement()
			tt.mutate(&m)

			err := m.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMeasurement)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseEnums(t *testing.T) {
	unit, err := ParseHeightUnit("Feet")
	require.NoError(t, err)
	assert.Equal(t, Feet, unit)

	unit, err = ParseHeightUnit("cms")
	require.NoError(t, err)
	assert.Equal(t, Centimeters, unit)

	_, err = ParseHeightUnit("inches")
	assert.ErrorIs(t, err, ErrInvalidMeasurement)

	g, err := ParseGender("")
	require.NoError(t, err)
	assert.Equal(t, Unspecified, g)
	assert.Equal(t, "Prefer not to say", g.Label())

	g, err = ParseGender("Female")
	require.NoError(t, err)
	assert.Equal(t, Female, g)

	_, err = ParseGender("x")
	assert.ErrorIs(t, err, ErrInvalidMeasurement)

	level, err := ParseActivityLevel("Very Active")
	require.NoError(t, err)
	assert.Equal(t, VeryActive, level)
	assert.Equal(t, "Very active (hard exercise/sports 6-7 days a week)", level.Label())

	_, err = ParseActivityLevel("lazy")
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestCalculate_RejectsOutOfRangeEnergy(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
	}{
		{name: "calories overflow int", weight: 1e20},
		{name: "bmr overflows float", weight: 1e308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMeasurement()
			m.WeightKg = tt.weight
			m.HeightRaw = 1
			m.HeightUnit = Meters

			_, err := Calculate(m)
			assert.ErrorIs(t, err, ErrInvalidMeasurement)
		})
	}
}
