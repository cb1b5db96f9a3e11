package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertHeight(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		unit HeightUnit
		want float64
	}{
		{name: "centimeters", raw: 175, unit: Centimeters, want: 1.75},
		{name: "meters", raw: 1.75, unit: Meters, want: 1.75},
		{name: "feet", raw: 5.74, unit: Feet, want: 1.75},
		{name: "zero", raw: 0, unit: Feet, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertHeight(tt.raw, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertHeight_UnknownUnit(t *testing.T) {
	_, err := ConvertHeight(10, HeightUnit("in"))
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		height  float64
		want    float64
		wantErr error
	}{
		{name: "rounds to two decimals", weight: 70, height: 1.75, want: 22.86},
		{name: "exact value", weight: 80, height: 2, want: 20},
		{name: "zero weight", weight: 0, height: 1.8, want: 0},
		{name: "zero height", weight: 70, height: 0, wantErr: ErrInvalidHeight},
		{name: "overflow", weight: math.MaxFloat64, height: 1e-200, wantErr: ErrInvalidHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBMI(tt.weight, tt.height)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeBMI_Deterministic(t *testing.T) {
	first, err := ComputeBMI(63.4, 1.68)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		got, err := ComputeBMI(63.4, 1.68)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestComputeBMI_TiesRoundHalfAwayFromZero(t *testing.T) {
	got, err := ComputeBMI(22.675, 1)
	require.NoError(t, err)
	assert.Equal(t, 22.68, got)

	got, err = ComputeBMI(22.665, 1)
	require.NoError(t, err)
	assert.Equal(t, 22.67, got)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		bmi      float64
		category Category
		severity Severity
	}{
		{bmi: 0, category: ExtremelyUnderweight, severity: SeverityCritical},
		{bmi: 15.99, category: ExtremelyUnderweight, severity: SeverityCritical},
		{bmi: 16.0, category: Underweight, severity: SeverityWarning},
		{bmi: 18.49, category: Underweight, severity: SeverityWarning},
		{bmi: 18.5, category: Healthy, severity: SeverityOK},
		{bmi: 24.99, category: Healthy, severity: SeverityOK},
		{bmi: 25.0, category: Overweight, severity: SeverityWarning},
		{bmi: 29.99, category: Overweight, severity: SeverityWarning},
		{bmi: 30.0, category: ExtremelyOverweight, severity: SeverityCritical},
		{bmi: 95, category: ExtremelyOverweight, severity: SeverityCritical},
		{bmi: math.Inf(1), category: ExtremelyOverweight, severity: SeverityCritical},
		{bmi: math.NaN(), category: ExtremelyUnderweight, severity: SeverityCritical},
	}

	for _, tt := range tests {
		band := Classify(tt.bmi)
		assert.Equal(t, tt.category, band.Category, "bmi %v", tt.bmi)
		assert.Equal(t, tt.severity, band.Severity, "bmi %v", tt.bmi)
		assert.NotEmpty(t, band.Tip)
	}
}

func TestClassify_Tips(t *testing.T) {
	assert.Equal(t, "Increase calorie intake with protein-rich food; consult a doctor.", Classify(10).Tip)
	assert.Equal(t, "Add more healthy calories, carbs, and proteins.", Classify(17).Tip)
	assert.Equal(t, "Maintain diet and regular activity.", Classify(22).Tip)
	assert.Equal(t, "Reduce sugar & fats; increase cardio.", Classify(27).Tip)
	assert.Equal(t, "Start walking, reduce fast food, consult a nutritionist.", Classify(35).Tip)
}

func TestChart_ReturnsCopy(t *testing.T) {
	chart := Chart()
	require.Len(t, chart, 5)
	assert.Equal(t, "< 16", chart[0].Range)
	assert.Equal(t, "≥ 30", chart[4].Range)

	chart[0].Category = "mutated"
	assert.Equal(t, ExtremelyUnderweight, Chart()[0].Category)
}
