package solver

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
	"github.com/anthropics/tutor-engine/internal/equation"
)

// mathRules is the priority-ordered dispatch table for mathematics. The
// order is a contract: "difference of squares" must hit the subtraction
// rule before anything else gets a look.
func (e *Engine) mathRules() []rule {
	return []rule{
		{anyOf("add", "sum", "plus", "total of"), e.solveAddition},
		{anyOf("subtract", "minus", "difference", "less"), e.solveSubtraction},
		{anyOf("multiply", "times", "product", "multiplied"), e.solveMultiplication},
		{anyOf("divide", "quotient", "divided", "per"), e.solveDivision},
		{anyOf("solve for", "solve the equation", "="), e.solveAlgebraicEquation},
		{anyOf("quadratic", "x^2", "x²"), e.solveQuadraticByCoefficients},
		{anyOf("percent", "%"), e.solvePercentage},
		{anyOf("profit", "loss"), e.solveProfitLoss},
		{anyOf("interest"), e.solveInterest},
		{anyOf("average", "mean"), e.solveAverage},
		{anyOf("ratio", "proportion"), e.solveRatio},
		{anyOf("area", "perimeter"), e.solveGeometry},
		{anyOf("sine", "cosine", "tangent", "sin", "cos", "tan"), e.solveTrigonometry},
		{anyOf("pythagoras", "pythagorean"), e.solvePythagoras},
		{anyOf("probability", "chance"), e.solveProbability},
		{anyOf("median", "mode"), e.solveStatistics},
		{anyOf("derivative", "differentiate", "dy/dx"), e.solveDerivative},
		{anyOf("integral", "integrate", "∫"), e.solveIntegral},
	}
}

func (e *Engine) solveAddition(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	total := 0.0
	for _, n := range nums {
		total += n
	}

	steps := []string{
		fmt.Sprintf("Step 1: Identify the numbers to add: %s", formatNums(nums)),
		"Step 2: Add the numbers sequentially:",
	}
	running := nums[0]
	for _, n := range nums[1:] {
		steps = append(steps, fmt.Sprintf("   %s + %s = %s",
			formatNum(running), formatNum(n), formatNum(running+n)))
		running += n
	}

	return domain.SolutionRecord{
		Solution: steps,
		Explanation: []string{
			"Addition is the process of combining two or more quantities to find their total.",
			"We add numbers from left to right, carrying over if needed (for multi-digit numbers).",
		},
		FinalAnswer:     fmt.Sprintf("The sum is %s", formatNum(total)),
		Method:          "Basic Addition Algorithm",
		WhyThisWorks:    "Addition follows the commutative property, meaning the order doesn't matter: a + b = b + a. It's also associative: (a + b) + c = a + (b + c).",
		HowItIsPossible: "When we add, we're essentially counting forward. Each number represents a quantity, and combining them gives the total count.",
		Reasons: []string{
			"Addition is fundamental to mathematics",
			"It represents combining sets of objects",
			"It's the basis for more complex operations",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveSubtraction(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	result := nums[0] - nums[1]

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify the numbers: %s (minuend) - %s (subtrahend)",
				formatNum(nums[0]), formatNum(nums[1])),
			fmt.Sprintf("Step 2: Subtract %s from %s", formatNum(nums[1]), formatNum(nums[0])),
			fmt.Sprintf("Step 3: Result = %s", formatNum(result)),
		},
		Explanation: []string{
			"Subtraction is the inverse operation of addition.",
			"It finds the difference between two quantities.",
		},
		FinalAnswer:     fmt.Sprintf("The difference is %s", formatNum(result)),
		Method:          "Basic Subtraction Algorithm",
		WhyThisWorks:    "Subtraction works because it undoes addition. If a + b = c, then c - b = a.",
		HowItIsPossible: "Subtraction represents taking away a quantity from another to find what's left.",
		Reasons: []string{
			"Used to compare quantities",
			"Essential for finding differences",
			"Important in real-world applications like money",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveMultiplication(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify the factors: %s", formatNums(nums)),
			fmt.Sprintf("Step 2: Multiply %s × %s = %s",
				formatNum(nums[0]), formatNum(nums[1]), formatNum(product)),
		},
		Explanation: []string{
			"Multiplication is repeated addition.",
			"a × b means adding a to itself b times (or vice versa).",
		},
		FinalAnswer:     fmt.Sprintf("The product is %s", formatNum(product)),
		Method:          "Basic Multiplication Algorithm",
		WhyThisWorks:    "Multiplication is commutative (a × b = b × a) and associative ((a × b) × c = a × (b × c)). It's also distributive: a × (b + c) = a×b + a×c.",
		HowItIsPossible: "Multiplication efficiently combines equal groups. Instead of adding 5 ten times, we calculate 5 × 10.",
		Reasons: []string{
			"Efficient way to add equal groups",
			"Used in area calculations",
			"Foundation for algebra",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveDivision(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 || nums[1] == 0 {
		return e.mathFallback()
	}
	quotient := nums[0] / nums[1]
	remainder := math.Mod(nums[0], nums[1])

	answer := fmt.Sprintf("The quotient is %s", formatNum(quotient))
	if remainder > 0 {
		answer += fmt.Sprintf(" with remainder %s", formatNum(remainder))
	}

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify dividend (%s) and divisor (%s)",
				formatNum(nums[0]), formatNum(nums[1])),
			fmt.Sprintf("Step 2: Divide %s by %s", formatNum(nums[0]), formatNum(nums[1])),
			fmt.Sprintf("Step 3: Quotient = %s, Remainder = %s",
				formatNum(quotient), formatNum(remainder)),
		},
		Explanation: []string{
			"Division is the inverse of multiplication.",
			"It distributes a quantity into equal parts.",
		},
		FinalAnswer:     answer,
		Method:          "Basic Division Algorithm",
		WhyThisWorks:    "If a × b = c, then c ÷ b = a. Division essentially asks: 'How many times does the divisor fit into the dividend?'",
		HowItIsPossible: "Division groups quantities into equal-sized sets. It answers 'how many of one number fit into another.'",
		Reasons: []string{
			"Used to share equally",
			"Essential for fractions and ratios",
			"Important in measurement",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveAlgebraicEquation(question string, nums []float64) domain.SolutionRecord {
	candidate := extractEquation(question)
	if candidate == "" {
		return e.mathFallback()
	}
	sol := equation.Solve(candidate)
	if !sol.Success {
		return e.mathFallback()
	}

	answer := formatSolutions(sol.Solutions)
	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify the equation: %s", strings.TrimSpace(candidate)),
			"Step 2: Rearrange to isolate the variable",
			fmt.Sprintf("Step 3: Solution: %s", answer),
		},
		Explanation: []string{
			"Algebraic equations use variables (like x) to represent unknown values.",
			"We solve by applying inverse operations to isolate the variable.",
		},
		FinalAnswer:     answer,
		Method:          "Algebraic Manipulation",
		WhyThisWorks:    "We use the property that 'whatever you do to one side, you must do to the other' to maintain equality while isolating the unknown.",
		HowItIsPossible: "Equations represent balanced relationships. By doing the same operation to both sides, we maintain balance while moving toward the solution.",
		Reasons: []string{
			"Equations model real-world situations",
			"They help find unknown values",
			"Essential for problem-solving",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

// solveQuadraticByCoefficients reads a, b, c positionally from the
// question text ("quadratic with coefficients 1, -5 and 6"); with only two
// numbers, a is taken as 1.
func (e *Engine) solveQuadraticByCoefficients(question string, nums []float64) domain.SolutionRecord {
	var a, b, c float64
	switch {
	case len(nums) >= 3:
		a, b, c = nums[0], nums[1], nums[2]
	case len(nums) == 2:
		a, b, c = 1, nums[0], nums[1]
	default:
		return e.mathFallback()
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return domain.SolutionRecord{
			Solution:        []string{fmt.Sprintf("Discriminant = %s (negative)", formatNum(discriminant))},
			Explanation:     []string{"When discriminant < 0, there are no real solutions"},
			FinalAnswer:     "No real solutions (complex roots)",
			Method:          "Quadratic Formula",
			WhyThisWorks:    "Negative discriminant means the parabola doesn't cross the x-axis",
			HowItIsPossible: "The square root of a negative number gives imaginary results",
			Reasons:         []string{"Quadratic equations can have complex solutions"},
			Resources:       e.resources[domain.SubjectMathematics],
		}
	}

	x1 := (-b + math.Sqrt(discriminant)) / (2 * a)
	x2 := (-b - math.Sqrt(discriminant)) / (2 * a)

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify coefficients: a = %s, b = %s, c = %s",
				formatNum(a), formatNum(b), formatNum(c)),
			"Step 2: Use quadratic formula: x = (-b ± √(b²-4ac)) / 2a",
			fmt.Sprintf("Step 3: Calculate discriminant: b² - 4ac = %s² - 4(%s)(%s) = %s",
				formatNum(b), formatNum(a), formatNum(c), formatNum(discriminant)),
			fmt.Sprintf("Step 4: x₁ = (%s + √%s) / %s = %s",
				formatNum(-b), formatNum(discriminant), formatNum(2*a), formatNum(x1)),
			fmt.Sprintf("Step 5: x₂ = (%s - √%s) / %s = %s",
				formatNum(-b), formatNum(discriminant), formatNum(2*a), formatNum(x2)),
		},
		Explanation: []string{
			"Quadratic equations have the form ax² + bx + c = 0",
			"The quadratic formula works for all quadratic equations",
		},
		FinalAnswer:     fmt.Sprintf("x₁ = %s, x₂ = %s", formatNum(x1), formatNum(x2)),
		Method:          "Quadratic Formula",
		WhyThisWorks:    "The quadratic formula is derived from completing the square. It gives exact solutions for any quadratic equation.",
		HowItIsPossible: "By completing the square, we transform the quadratic into a perfect square form, allowing us to take the square root of both sides.",
		Reasons: []string{
			"Derived from completing the square method",
			"Works for all real and complex solutions",
			"Essential for analyzing parabolas",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solvePercentage(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	percent, value := nums[0], nums[1]
	result := percent / 100 * value

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Convert %s%% to decimal: %s/100 = %s",
				formatNum(percent), formatNum(percent), formatNum(percent/100)),
			fmt.Sprintf("Step 2: Multiply by the value: %s × %s = %s",
				formatNum(percent/100), formatNum(value), formatNum(result)),
		},
		Explanation: []string{
			"Percentage means 'per hundred'",
			"To find a percentage of a number, multiply the decimal form by the number",
		},
		FinalAnswer:     fmt.Sprintf("%s%% of %s = %s", formatNum(percent), formatNum(value), formatNum(result)),
		Method:          "Percentage Calculation",
		WhyThisWorks:    "Percentages are fractions with denominator 100. So 20% = 20/100 = 0.20",
		HowItIsPossible: "We convert the percentage to a decimal and multiply by the base value",
		Reasons: []string{
			"Percentages are used in everyday life",
			"Useful for discounts, interest rates, statistics",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveProfitLoss(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 || nums[0] == 0 {
		return e.mathFallback()
	}
	costPrice, sellingPrice := nums[0], nums[1]
	profit := sellingPrice - costPrice
	profitPercent := profit / costPrice * 100

	if profit >= 0 {
		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Cost Price (CP) = %s", formatNum(costPrice)),
				fmt.Sprintf("Step 2: Selling Price (SP) = %s", formatNum(sellingPrice)),
				fmt.Sprintf("Step 3: Profit = SP - CP = %s - %s = %s",
					formatNum(sellingPrice), formatNum(costPrice), formatNum(profit)),
				fmt.Sprintf("Step 4: Profit %% = (Profit/CP) × 100 = (%s/%s) × 100 = %s%%",
					formatNum(profit), formatNum(costPrice), formatNum(profitPercent)),
			},
			Explanation: []string{
				"Profit occurs when Selling Price > Cost Price",
				"Profit percentage shows profit relative to cost price",
			},
			FinalAnswer:     fmt.Sprintf("Profit = %s, Profit %% = %s%%", formatNum(profit), formatNum(profitPercent)),
			Method:          "Profit/Loss Calculation",
			WhyThisWorks:    "Profit represents the gain from a transaction. Percentage helps compare profits across different cost bases.",
			HowItIsPossible: "By subtracting cost from selling price, we find the absolute profit. Dividing by cost and multiplying by 100 gives the percentage.",
			Reasons: []string{
				"Essential for business calculations",
				"Used in everyday shopping decisions",
			},
			Resources: e.resources[domain.SubjectMathematics],
		}
	}

	loss := costPrice - sellingPrice
	lossPercent := loss / costPrice * 100
	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Cost Price (CP) = %s", formatNum(costPrice)),
			fmt.Sprintf("Step 2: Selling Price (SP) = %s", formatNum(sellingPrice)),
			fmt.Sprintf("Step 3: Loss = CP - SP = %s - %s = %s",
				formatNum(costPrice), formatNum(sellingPrice), formatNum(loss)),
			fmt.Sprintf("Step 4: Loss %% = (Loss/CP) × 100 = (%s/%s) × 100 = %s%%",
				formatNum(loss), formatNum(costPrice), formatNum(lossPercent)),
		},
		Explanation: []string{
			"Loss occurs when Selling Price < Cost Price",
			"Loss percentage shows loss relative to cost price",
		},
		FinalAnswer:     fmt.Sprintf("Loss = %s, Loss %% = %s%%", formatNum(loss), formatNum(lossPercent)),
		Method:          "Profit/Loss Calculation",
		WhyThisWorks:    "Loss represents the negative gain from a transaction.",
		HowItIsPossible: "When SP < CP, the seller loses money on each unit sold.",
		Reasons: []string{
			"Important for business viability",
			"Used to analyze business performance",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveInterest(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 3 {
		return e.mathFallback()
	}
	principal, rate, years := nums[0], nums[1], nums[2]
	lower := strings.ToLower(question)

	if strings.Contains(lower, "compound") {
		n := 1.0
		if strings.Contains(lower, "monthly") {
			n = 12
		}
		amount := principal * math.Pow(1+rate/100/n, n*years)
		ci := amount - principal

		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Principal (P) = %s", formatNum(principal)),
				fmt.Sprintf("Step 2: Rate (r) = %s%%", formatNum(rate)),
				fmt.Sprintf("Step 3: Time (t) = %s years", formatNum(years)),
				"Step 4: Compound Interest Formula: A = P(1 + r/n)^(nt)",
				fmt.Sprintf("Step 5: A = %s(1 + %s/100/%s)^(%s×%s) = %s",
					formatNum(principal), formatNum(rate), formatNum(n),
					formatNum(n), formatNum(years), formatNum(amount)),
				fmt.Sprintf("Step 6: CI = A - P = %s - %s = %s",
					formatNum(amount), formatNum(principal), formatNum(ci)),
			},
			Explanation: []string{
				"Compound interest calculates interest on both principal and accumulated interest",
				"It's more common in real-world financial applications",
			},
			FinalAnswer:     fmt.Sprintf("Compound Interest = %s, Total Amount = %s", formatNum(ci), formatNum(amount)),
			Method:          "Compound Interest Formula",
			WhyThisWorks:    "Each period, interest is calculated on the new principal (original + previous interest), creating exponential growth.",
			HowItIsPossible: "The formula (1 + r/n)^(nt) represents the growth factor over time with compounding frequency n.",
			Reasons: []string{
				"Banks use compound interest for savings and loans",
				"Important for financial planning",
			},
			Resources: e.resources[domain.SubjectMathematics],
		}
	}

	si := principal * rate * years / 100
	amount := principal + si
	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Principal (P) = %s", formatNum(principal)),
			fmt.Sprintf("Step 2: Rate (r) = %s%%", formatNum(rate)),
			fmt.Sprintf("Step 3: Time (t) = %s years", formatNum(years)),
			"Step 4: Simple Interest Formula: SI = (P × R × T) / 100",
			fmt.Sprintf("Step 5: SI = (%s × %s × %s) / 100 = %s",
				formatNum(principal), formatNum(rate), formatNum(years), formatNum(si)),
			fmt.Sprintf("Step 6: Total Amount = P + SI = %s + %s = %s",
				formatNum(principal), formatNum(si), formatNum(amount)),
		},
		Explanation: []string{
			"Simple interest calculates interest only on the original principal",
			"Formula: Interest = (Principal × Rate × Time) / 100",
		},
		FinalAnswer:     fmt.Sprintf("Simple Interest = %s, Total Amount = %s", formatNum(si), formatNum(amount)),
		Method:          "Simple Interest Formula",
		WhyThisWorks:    "Simple interest is linear because interest is always calculated on the original principal, not accumulated interest.",
		HowItIsPossible: "The rate represents the percentage of principal paid as interest per time period.",
		Reasons: []string{
			"Used in short-term loans",
			"Easier to calculate than compound interest",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveAverage(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	total := 0.0
	var parts []string
	for _, n := range nums {
		total += n
		parts = append(parts, formatNum(n))
	}
	average := total / float64(len(nums))

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify all values: %s", formatNums(nums)),
			fmt.Sprintf("Step 2: Sum all values: %s = %s", strings.Join(parts, " + "), formatNum(total)),
			fmt.Sprintf("Step 3: Divide by count: %s / %d = %s",
				formatNum(total), len(nums), formatNum(average)),
		},
		Explanation: []string{
			"The arithmetic mean (average) is the sum of values divided by the number of values",
			"It represents the central tendency of a dataset",
		},
		FinalAnswer:     fmt.Sprintf("Average = %s", formatNum(average)),
		Method:          "Arithmetic Mean",
		WhyThisWorks:    "The mean balances out the values - the sum of deviations above the mean equals the sum of deviations below it.",
		HowItIsPossible: "By adding all values and dividing by the count, we find the 'typical' or representative value.",
		Reasons: []string{
			"Used in statistics to represent data",
			"Important for comparing performances",
			"Foundation for more advanced statistics",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveRatio(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	a, b := nums[0], nums[1]
	ratio := 0.0
	if b != 0 {
		ratio = a / b
	}

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify the two quantities: %s and %s", formatNum(a), formatNum(b)),
			fmt.Sprintf("Step 2: Write ratio as a:b = %s:%s", formatNum(a), formatNum(b)),
			fmt.Sprintf("Step 3: Simplify ratio = %s/%s = %s", formatNum(a), formatNum(b), formatNum(ratio)),
		},
		Explanation: []string{
			"A ratio compares two quantities of the same kind",
			"It shows how many times one quantity is of the other",
		},
		FinalAnswer:     fmt.Sprintf("Ratio = %s (or %s:%s)", formatNum(ratio), formatNum(a), formatNum(b)),
		Method:          "Ratio Calculation",
		WhyThisWorks:    "Ratios express relative sizes. A ratio of 3:2 means for every 3 of A, there are 2 of B.",
		HowItIsPossible: "By dividing one quantity by the other, we express them as a proportional relationship.",
		Reasons: []string{
			"Used in recipes, mixtures, maps",
			"Important for scaling",
			"Essential in business ratios",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveGeometry(question string, nums []float64) domain.SolutionRecord {
	lower := strings.ToLower(question)

	switch {
	case strings.Contains(lower, "triangle") && strings.Contains(lower, "area") && len(nums) >= 2:
		base, height := nums[0], nums[1]
		area := 0.5 * base * height
		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Identify base (b) = %s, height (h) = %s", formatNum(base), formatNum(height)),
				"Step 2: Area of triangle = (1/2) × b × h",
				fmt.Sprintf("Step 3: Area = (1/2) × %s × %s = %s", formatNum(base), formatNum(height), formatNum(area)),
			},
			Explanation:     []string{"A triangle is half of a rectangle with the same base and height"},
			FinalAnswer:     fmt.Sprintf("Area = %s square units", formatNum(area)),
			Method:          "Triangle Area Formula",
			WhyThisWorks:    "A triangle can be seen as half of a parallelogram, which can be rearranged into a rectangle.",
			HowItIsPossible: "The area formula comes from dividing a rectangle (base × height) into two equal triangles.",
			Reasons: []string{
				"Derived from rectangle area",
				"Used in construction and design",
			},
			Resources: e.resources[domain.SubjectMathematics],
		}

	case strings.Contains(lower, "circle") && strings.Contains(lower, "area") && len(nums) >= 1:
		radius := nums[0]
		area := math.Pi * radius * radius
		circumference := 2 * math.Pi * radius
		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Radius (r) = %s", formatNum(radius)),
				fmt.Sprintf("Step 2: Area = πr² = π × %s² = π × %s = %.2f",
					formatNum(radius), formatNum(radius*radius), area),
				fmt.Sprintf("Step 3: Circumference = 2πr = 2π × %s = %.2f", formatNum(radius), circumference),
			},
			Explanation: []string{
				"Area of circle = πr² (π ≈ 3.14159)",
				"Circumference = 2πr",
			},
			FinalAnswer:     fmt.Sprintf("Area = %.2f, Circumference = %.2f", area, circumference),
			Method:          "Circle Formulas",
			WhyThisWorks:    "π represents the ratio of circumference to diameter. The area formula is derived by considering circles as infinite polygons.",
			HowItIsPossible: "Mathematicians proved that as the number of sides of a regular polygon approaches infinity, its area approaches πr².",
			Reasons: []string{
				"π is a fundamental mathematical constant",
				"Essential in engineering and physics",
			},
			Resources: e.resources[domain.SubjectMathematics],
		}

	case strings.Contains(lower, "rectangle") && len(nums) >= 2:
		length, width := nums[0], nums[1]
		area := length * width
		perimeter := 2 * (length + width)
		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Length = %s, Width = %s", formatNum(length), formatNum(width)),
				fmt.Sprintf("Step 2: Area = length × width = %s × %s = %s",
					formatNum(length), formatNum(width), formatNum(area)),
				fmt.Sprintf("Step 3: Perimeter = 2(length + width) = 2(%s + %s) = %s",
					formatNum(length), formatNum(width), formatNum(perimeter)),
			},
			Explanation: []string{
				"Area = length × width",
				"Perimeter = 2(length + width)",
			},
			FinalAnswer:     fmt.Sprintf("Area = %s, Perimeter = %s", formatNum(area), formatNum(perimeter)),
			Method:          "Rectangle Formulas",
			WhyThisWorks:    "Area counts unit squares that fit inside. Perimeter is the total distance around.",
			HowItIsPossible: "By multiplying dimensions, we find how many square units fit. Adding all sides gives perimeter.",
			Reasons: []string{
				"Rectangles are the simplest polygons",
				"Used in architecture and design",
			},
			Resources: e.resources[domain.SubjectMathematics],
		}
	}

	return e.mathFallback()
}

func (e *Engine) solveTrigonometry(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 1 {
		return e.mathFallback()
	}
	angle := nums[0]
	rad := angle * math.Pi / 180
	lower := strings.ToLower(question)

	switch {
	case containsAny(lower, "sine", "sin"):
		return e.trigRecord("sine", "sin", angle, math.Sin(rad))
	case containsAny(lower, "cosine", "cos"):
		return e.trigRecord("cosine", "cos", angle, math.Cos(rad))
	case containsAny(lower, "tangent", "tan"):
		return e.trigRecord("tangent", "tan", angle, math.Tan(rad))
	}
	return e.mathFallback()
}

func (e *Engine) trigRecord(name, fn string, angle, value float64) domain.SolutionRecord {
	rad := angle * math.Pi / 180
	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Given angle = %s°", formatNum(angle)),
			fmt.Sprintf("Step 2: Convert to radians: %s° × (π/180) = %.4f radians", formatNum(angle), rad),
			fmt.Sprintf("Step 3: Calculate %s: %s(%s°) = %.4f", name, fn, formatNum(angle), value),
		},
		Explanation: []string{
			fmt.Sprintf("The %s function gives the ratio of the opposite side to hypotenuse (sin), adjacent to hypotenuse (cos), or opposite to adjacent (tan) in a right triangle.", name),
			"Trigonometric functions are periodic and relate angles to side ratios in right triangles.",
		},
		FinalAnswer:     fmt.Sprintf("%s(%s°) = %.4f", fn, formatNum(angle), value),
		Method:          "Trigonometric Function Calculation",
		WhyThisWorks:    "In a unit circle, the coordinates give cosine and sine values. The ratios are constant for any right triangle with the same angle.",
		HowItIsPossible: "Ancient mathematicians discovered that angle measures correspond to fixed ratios in right triangles, enabling precise calculations.",
		Reasons: []string{
			"Essential in engineering and physics",
			"Used in navigation and surveying",
			"Foundation for wave functions",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solvePythagoras(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	a, b := nums[0], nums[1]
	c := math.Sqrt(a*a + b*b)

	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: In a right triangle, a² + b² = c²",
			fmt.Sprintf("Step 2: Given: a = %s, b = %s", formatNum(a), formatNum(b)),
			fmt.Sprintf("Step 3: c² = %s² + %s² = %s + %s = %s",
				formatNum(a), formatNum(b), formatNum(a*a), formatNum(b*b), formatNum(a*a+b*b)),
			fmt.Sprintf("Step 4: c = √%s = %.4f", formatNum(a*a+b*b), c),
		},
		Explanation: []string{
			"The Pythagorean Theorem states: In a right triangle, the square of the hypotenuse equals the sum of squares of the other two sides.",
			"c² = a² + b²",
		},
		FinalAnswer:     fmt.Sprintf("Hypotenuse (c) = %.4f units", c),
		Method:          "Pythagorean Theorem",
		WhyThisWorks:    "This theorem was proven by Euclid and many others. It works because the areas of squares on the sides sum perfectly.",
		HowItIsPossible: "The theorem can be proven geometrically by showing that the area of the square on the hypotenuse equals the sum of areas of squares on the other two sides.",
		Reasons: []string{
			"One of the oldest mathematical theorems",
			"Essential in navigation and construction",
			"Foundation for distance calculations",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveProbability(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	favorable, total := nums[0], nums[1]
	if total <= 0 || favorable > total {
		return e.mathFallback()
	}
	probability := favorable / total

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify favorable outcomes = %s", formatNum(favorable)),
			fmt.Sprintf("Step 2: Identify total possible outcomes = %s", formatNum(total)),
			fmt.Sprintf("Step 3: Probability = Favorable/Total = %s/%s = %.4f",
				formatNum(favorable), formatNum(total), probability),
			fmt.Sprintf("Step 4: As percentage = %.2f%%", probability*100),
		},
		Explanation: []string{
			"Probability measures the likelihood of an event occurring",
			"Formula: P(Event) = Number of favorable outcomes / Total outcomes",
		},
		FinalAnswer:     fmt.Sprintf("Probability = %.4f (%.2f%%)", probability, probability*100),
		Method:          "Classical Probability",
		WhyThisWorks:    "When all outcomes are equally likely, the probability is the ratio of favorable to total outcomes. This gives a number between 0 and 1.",
		HowItIsPossible: "In the classical definition, we assume each outcome has equal chance. This works well for games of chance and controlled experiments.",
		Reasons: []string{
			"Used in statistics and data science",
			"Essential for risk assessment",
			"Foundation for decision making under uncertainty",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveStatistics(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 2 {
		return e.mathFallback()
	}
	lower := strings.ToLower(question)

	if strings.Contains(lower, "median") {
		sorted := append([]float64(nil), nums...)
		sort.Float64s(sorted)
		n := len(sorted)

		var median float64
		var howFound string
		if n%2 == 0 {
			median = (sorted[n/2-1] + sorted[n/2]) / 2
			howFound = fmt.Sprintf("(%s + %s)/2", formatNum(sorted[n/2-1]), formatNum(sorted[n/2]))
		} else {
			median = sorted[n/2]
			howFound = "middle value"
		}
		parity := "odd"
		if n%2 == 0 {
			parity = "even"
		}

		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: Arrange data in order: %s", formatNums(sorted)),
				fmt.Sprintf("Step 2: Count number of values: n = %d", n),
				fmt.Sprintf("Step 3: Since n is %s,", parity),
				fmt.Sprintf("Step 4: Median = %s = %s", howFound, formatNum(median)),
			},
			Explanation: []string{
				"The median is the middle value when data is ordered",
				"It divides the data into two equal halves",
			},
			FinalAnswer:     fmt.Sprintf("Median = %s", formatNum(median)),
			Method:          "Median Calculation",
			WhyThisWorks:    "The median is a measure of central tendency that's not affected by extreme values (unlike mean).",
			HowItIsPossible: "By ordering all values and finding the middle, we find the value that splits the data equally.",
			Reasons: []string{
				"Robust to outliers",
				"Used in income statistics",
				"Important in descriptive statistics",
			},
			Resources: e.resources[domain.SubjectMathematics],
		}
	}

	if strings.Contains(lower, "mode") {
		counts := make(map[float64]int)
		maxCount := 0
		for _, n := range nums {
			counts[n]++
			if counts[n] > maxCount {
				maxCount = counts[n]
			}
		}
		// All values tied for the highest frequency, in first-seen order.
		var modes []float64
		seen := make(map[float64]bool)
		for _, n := range nums {
			if counts[n] == maxCount && !seen[n] {
				modes = append(modes, n)
				seen[n] = true
			}
		}

		return domain.SolutionRecord{
			Solution: []string{
				fmt.Sprintf("Step 1: List all values: %s", formatNums(nums)),
				fmt.Sprintf("Step 2: Count frequency of each value (highest frequency = %d)", maxCount),
				fmt.Sprintf("Step 3: Find most frequent value(s): %s", formatNums(modes)),
			},
			Explanation: []string{
				"The mode is the most frequently occurring value",
				"A dataset can have one mode (unimodal), multiple modes (multimodal), or no mode",
			},
			FinalAnswer:     fmt.Sprintf("Mode = %s", formatNums(modes)),
			Method:          "Mode Calculation",
			WhyThisWorks:    "Mode represents the most common or popular value in a dataset.",
			HowItIsPossible: "By counting occurrences of each value, we identify which appears most often.",
			Reasons: []string{
				"Used in categorical data analysis",
				"Important in business (most popular product)",
				"Simple to calculate",
			},
			Resources: e.resources[domain.SubjectMathematics],
		}
	}

	return e.mathFallback()
}

func (e *Engine) solveDerivative(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 1 {
		return e.mathFallback()
	}
	n := nums[0]

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify the power: x^%s", formatNum(n)),
			"Step 2: Apply power rule: d/dx(x^n) = n × x^(n-1)",
			fmt.Sprintf("Step 3: Derivative = %s × x^(%s) = %sx^%s",
				formatNum(n), formatNum(n-1), formatNum(n), formatNum(n-1)),
		},
		Explanation: []string{
			"The derivative represents the rate of change of a function",
			"The power rule: d/dx(x^n) = nx^(n-1)",
		},
		FinalAnswer:     fmt.Sprintf("d/dx(x^%s) = %sx^%s", formatNum(n), formatNum(n), formatNum(n-1)),
		Method:          "Power Rule for Derivatives",
		WhyThisWorks:    "The power rule comes from the definition of derivative. It tells us how fast the function changes at any point.",
		HowItIsPossible: "Mathematically, taking the limit as h→0 of [(x+h)^n - x^n]/h gives us n*x^(n-1).",
		Reasons: []string{
			"Essential in physics for velocity and acceleration",
			"Used in optimization problems",
			"Foundation for differential equations",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

func (e *Engine) solveIntegral(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 1 {
		return e.mathFallback()
	}
	n := nums[0]

	result := fmt.Sprintf("x^%s/(%s) + C", formatNum(n+1), formatNum(n+1))
	if n == -1 {
		result = "ln|x| + C"
	}

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Identify the function: x^%s", formatNum(n)),
			"Step 2: Apply power rule for integrals: ∫x^n dx = x^(n+1)/(n+1) + C (where n ≠ -1)",
			fmt.Sprintf("Step 3: ∫x^%s dx = %s", formatNum(n), result),
		},
		Explanation: []string{
			"Integration is the reverse process of differentiation",
			"The constant C represents the constant of integration",
		},
		FinalAnswer:     fmt.Sprintf("∫x^%s dx = %s", formatNum(n), result),
		Method:          "Power Rule for Integration",
		WhyThisWorks:    "Integration undoes differentiation. Since d/dx(x^(n+1)/(n+1)) = x^n, the integral must be x^(n+1)/(n+1) + C.",
		HowItIsPossible: "We find a function whose derivative gives us the original function. This is the antiderivative.",
		Reasons: []string{
			"Used to calculate areas under curves",
			"Essential in physics for work and energy",
			"Important in probability and statistics",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

// extractEquation pulls the longest equation-shaped substring around the
// first '=' in the question, so "solve the equation 2x + 5 = 15" yields
// "2x + 5 = 15".
func extractEquation(question string) string {
	idx := strings.Index(question, "=")
	if idx < 0 {
		return ""
	}
	isEquationChar := func(c byte) bool {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			return true
		case c == '+', c == '-', c == '*', c == '/', c == '^', c == '.', c == '(', c == ')', c == ' ':
			return true
		}
		return false
	}
	start := idx
	for start > 0 && isEquationChar(question[start-1]) {
		start--
	}
	end := idx + 1
	for end < len(question) && isEquationChar(question[end]) {
		end++
	}
	candidate := strings.TrimSpace(question[start:end])

	// Drop leading words that are not part of the expression ("solve the
	// equation 2x + 5 = 15" keeps only "2x + 5 = 15").
	eq := strings.Index(candidate, "=")
	words := strings.Fields(candidate[:eq])
	keep := len(words)
	for keep > 0 && isOperand(words[keep-1]) {
		keep--
	}
	candidate = strings.Join(words[keep:], " ") + " " + candidate[eq:]
	return strings.TrimSpace(candidate)
}

// isOperand reports whether a word can appear inside an equation side.
func isOperand(word string) bool {
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= '0' && c <= '9', c == 'x', c == 'X':
		case c == '+', c == '-', c == '*', c == '/', c == '^', c == '.', c == '(', c == ')':
		default:
			return false
		}
	}
	return len(word) > 0
}

func formatNums(nums []float64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = formatNum(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatSolutions(solutions []any) string {
	if len(solutions) == 0 {
		return "No solution (contradiction)"
	}
	parts := make([]string, len(solutions))
	for i, s := range solutions {
		switch v := s.(type) {
		case float64:
			parts[i] = formatNum(v)
		case string:
			parts[i] = v
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return "x = " + strings.Join(parts, " or x = ")
}
