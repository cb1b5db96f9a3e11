package calculator

import "bmi-calculator/internal/health"

// BMIRequest is the JSON body for POST /calculator/bmi.
type BMIRequest struct {
	WeightKg      float64 `json:"weight_kg"`
	Height        float64 `json:"height"`
	HeightUnit    string  `json:"height_unit"`    // "cm", "m", "ft"
	Age           int     `json:"age"`            // 0..120
	Gender        string  `json:"gender"`         // "male", "female", "unspecified"
	ActivityLevel string  `json:"activity_level"` // "sedentary" .. "super_active"
}

// Measurement parses the enumerated fields and validates the request.
func (r BMIRequest) Measurement() (health.Measurement, error) {
	unit, err := health.ParseHeightUnit(r.HeightUnit)
	if err != nil {
		return health.Measurement{}, err
	}

	gender, err := health.ParseGender(r.Gender)
	if err != nil {
		return health.Measurement{}, err
	}

	level, err := health.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return health.Measurement{}, err
	}

	m := health.Measurement{
		WeightKg:      r.WeightKg,
		HeightRaw:     r.Height,
		HeightUnit:    unit,
		AgeYears:      r.Age,
		Gender:        gender,
		ActivityLevel: level,
	}
	return m, m.Validate()
}

// BMIResponse is the full result bundle of one calculation.
type BMIResponse struct {
	BMI              float64  `json:"bmi"`
	Category         string   `json:"category"`
	Severity         string   `json:"severity"`
	Tip              string   `json:"tip"`
	BMR              float64  `json:"bmr"`
	Calories         int      `json:"calories"`
	DietAdjustment   string   `json:"diet_adjustment"`
	RecommendedFoods []string `json:"recommended_foods"`
	FoodsToAvoid     []string `json:"foods_to_avoid"`
	Exercise         []string `json:"exercise"`
}

func newBMIResponse(res health.Result) BMIResponse {
	return BMIResponse{
		BMI:              res.BMI,
		Category:         string(res.Band.Category),
		Severity:         string(res.Band.Severity),
		Tip:              res.Band.Tip,
		BMR:              res.BMR,
		Calories:         res.Calories,
		DietAdjustment:   res.DietAdjustment,
		RecommendedFoods: health.RecommendedFoods,
		FoodsToAvoid:     health.FoodsToAvoid,
		Exercise:         res.Exercise,
	}
}

// HistoryResponse is the JSON response for GET /calculator/history.
// Records and Lines are most recent first.
type HistoryResponse struct {
	Count   int             `json:"count"`
	Records []health.Record `json:"records"`
	Lines   []string        `json:"lines"`
}

// ChartBand is one row of the BMI reference chart.
type ChartBand struct {
	Range    string `json:"range"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Tip      string `json:"tip"`
}

// ChartResponse is the JSON response for GET /calculator/chart.
type ChartResponse struct {
	Bands []ChartBand `json:"bands"`
}
