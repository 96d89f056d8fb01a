package solver

import (
	"fmt"

	"github.com/anthropics/tutor-engine/internal/domain"
)

func (e *Engine) healthRules() []rule {
	return []rule{
		{anyOf("bmi", "body mass index"), e.solveBMI},
		{anyOf("nutrition", "diet", "food"), e.solveNutrition},
		{anyOf("disease", "diabetes", "cancer", "heart"), e.solveDisease},
		{anyOf("mental", "stress", "anxiety", "depression"), e.solveMentalHealth},
	}
}

func (e *Engine) solveBMI(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 || nums[1] <= 0 {
		return e.fallback(domain.SubjectHealth)
	}
	weight, height := nums[0], nums[1]
	// Heights over 3 are assumed to be centimeters.
	if height > 3 {
		height /= 100
	}
	bmi := weight / (height * height)

	category := "obese"
	switch {
	case bmi < 18.5:
		category = "underweight"
	case bmi < 25:
		category = "normal weight"
	case bmi < 30:
		category = "overweight"
	}

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Given: weight = %s kg, height = %s m",
				formatNum(weight), formatNum(height)),
			"Step 2: Use BMI formula: BMI = weight / height²",
			fmt.Sprintf("Step 3: Calculate: BMI = %s / (%s)² = %.1f",
				formatNum(weight), formatNum(height), bmi),
			fmt.Sprintf("Step 4: Category: %s", category),
		},
		Explanation: []string{
			"BMI (Body Mass Index) estimates body fat from weight and height.",
			"Categories: underweight (<18.5), normal (18.5-24.9), overweight (25-29.9), obese (30+).",
		},
		FinalAnswer:     fmt.Sprintf("BMI = %.1f (%s)", bmi, category),
		Method:          "BMI Formula (weight/height²)",
		WhyThisWorks:    "BMI normalizes weight by height, giving a rough screening measure of body composition.",
		HowItIsPossible: "Dividing mass by squared height adjusts for the fact that taller people naturally weigh more.",
		Reasons: []string{
			"Widely used health screening tool",
			"Simple to calculate from two measurements",
			"Tracks population health trends",
		},
		Resources: e.resources[domain.SubjectHealth],
	}
}

func (e *Engine) solveNutrition(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the nutritional component or diet question",
			"Step 2: Consider macronutrients (carbs, proteins, fats)",
			"Step 3: Consider micronutrients (vitamins, minerals)",
			"Step 4: Apply balanced diet principles",
		},
		Explanation: []string{
			"A balanced diet includes carbohydrates, proteins, fats, vitamins, minerals, and water.",
			"Each nutrient has specific functions in the body.",
		},
		FinalAnswer:     "Balanced nutrition is essential for health",
		Method:          "Nutritional Analysis",
		WhyThisWorks:    "Different nutrients provide energy and building blocks for body functions.",
		HowItIsPossible: "Through digestion, nutrients are absorbed and used by cells.",
		Reasons: []string{
			"Prevents deficiency diseases",
			"Supports immune system",
			"Maintains healthy weight",
		},
		Resources: e.resources[domain.SubjectHealth],
	}
}

func (e *Engine) solveDisease(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the disease type and symptoms",
			"Step 2: Understand causes (genetic, environmental, lifestyle)",
			"Step 3: Consider prevention and treatment options",
		},
		Explanation: []string{
			"Diseases can be infectious (caused by pathogens) or non-communicable (chronic).",
			"Many diseases are influenced by lifestyle factors.",
		},
		FinalAnswer:     "Disease understanding helps in prevention and treatment",
		Method:          "Medical Analysis",
		WhyThisWorks:    "Diseases have specific causes and pathological mechanisms.",
		HowItIsPossible: "Through medical research and clinical studies.",
		Reasons: []string{
			"Important for public health",
			"Guides treatment decisions",
			"Helps in prevention",
		},
		Resources: e.resources[domain.SubjectHealth],
	}
}

func (e *Engine) solveMentalHealth(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the mental health concern",
			"Step 2: Consider contributing factors",
			"Step 3: Suggest coping strategies and professional help",
		},
		Explanation: []string{
			"Mental health affects thinking, feeling, and behavior.",
			"It involves emotional, psychological, and social well-being.",
		},
		FinalAnswer:     "Mental health is as important as physical health",
		Method:          "Mental Health Analysis",
		WhyThisWorks:    "Mental health involves complex interactions of brain chemistry, genetics, and environment.",
		HowItIsPossible: "Through therapy, medication, lifestyle changes, and support systems.",
		Reasons: []string{
			"Affects quality of life",
			"Connected to physical health",
			"Important for productivity",
		},
		Resources: e.resources[domain.SubjectHealth],
	}
}
