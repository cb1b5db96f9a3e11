package health

const (
	surplusText  = "Suggested surplus: +500 kcal/day"
	deficitText  = "Suggested deficit: −500 kcal/day"
	maintainText = "Maintain current calorie intake"
)

var (
	// RecommendedFoods is shown with every calorie estimate.
	RecommendedFoods = []string{
		"Fresh fruits & vegetables",
		"Whole grains & lean proteins",
		"Stay hydrated",
	}

	// FoodsToAvoid is shown with every calorie estimate.
	FoodsToAvoid = []string{
		"Sugary drinks",
		"Processed foods",
		"Excessive fast food",
	}
)

// DietGuidance returns the calorie adjustment for bmi. A BMI of exactly 25
// still reads as maintain.
func DietGuidance(bmi float64) string {
	switch {
	case bmi < 18.5:
		return surplusText
	case bmi > 25:
		return deficitText
	default:
		return maintainText
	}
}

// ExerciseGuidance returns the exercise suggestions for bmi.
func ExerciseGuidance(bmi float64) []string {
	switch {
	case bmi < 18.5:
		return []string{
			"Strength training 3-4 days a week",
			"Light cardio",
		}
	case bmi < 25:
		return []string{
			"Maintain current routine",
			"Yoga, jogging, swimming recommended",
		}
	default:
		return []string{
			"Brisk walking, cycling, or HIIT workouts",
			"Start slow and increase gradually",
		}
	}
}
