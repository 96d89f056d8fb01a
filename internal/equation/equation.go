// Package equation solves linear and quadratic equations in x.
//
// Rather than symbolic manipulation, the solver samples the rearranged
// expression f(x) = left - right at small integer points and recovers the
// polynomial coefficients by finite differences. A residual check at one
// extra point rejects inputs that are not actually polynomial in x.
package equation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
	"github.com/anthropics/tutor-engine/internal/eval"
)

const (
	// zeroCoeff is the threshold below which a leading coefficient is
	// treated as absent and the equation degrades a degree.
	zeroCoeff = 1e-10
	// residualTolerance bounds how far a sample may sit from the fitted
	// polynomial before the input is rejected as non-polynomial.
	residualTolerance = 1e-6
)

// Solve parses and solves an equation of the form "left = right" where
// both sides are polynomial in x of degree at most two.
func Solve(equation string) domain.EquationSolution {
	eq := strings.ReplaceAll(equation, " ", "")

	switch strings.Count(eq, "=") {
	case 0:
		return errorSolution(equation, "no equation found; use a form like '2x + 5 = 15'")
	case 1:
	default:
		return errorSolution(equation, "invalid equation format: more than one '='")
	}

	parts := strings.SplitN(eq, "=", 2)
	if parts[0] == "" || parts[1] == "" {
		return errorSolution(equation, "invalid equation format: empty side")
	}

	combined := "(" + parts[0] + ")-(" + parts[1] + ")"
	normalized := eval.Normalize(combined)

	if strings.Contains(normalized, "x**2") {
		return solveQuadratic(equation, normalized)
	}
	return solveLinear(equation, normalized)
}

// solveLinear recovers f(x) = ax + b from f(0) and f(1).
func solveLinear(equation, normalized string) domain.EquationSolution {
	f0, err := eval.EvalAt(normalized, 0)
	if err != nil {
		return evalFailure(equation, err)
	}
	f1, err := eval.EvalAt(normalized, 1)
	if err != nil {
		return evalFailure(equation, err)
	}
	b := f0
	a := f1 - f0

	// An affine f must hit a*2+b exactly at x=2; anything else means the
	// input had x under a function or another non-linear shape.
	f2, err := eval.EvalAt(normalized, 2)
	if err != nil {
		return evalFailure(equation, err)
	}
	if math.Abs(f2-(a*2+b)) > residualTolerance*math.Max(1, math.Abs(f2)) {
		return errorSolution(equation, domain.ErrNotPolynomial.Message)
	}

	return linearSolution(equation, a, b)
}

func linearSolution(equation string, a, b float64) domain.EquationSolution {
	if math.Abs(a) < zeroCoeff {
		if math.Abs(b) < zeroCoeff {
			return domain.EquationSolution{
				Success:     true,
				Equation:    equation,
				Type:        domain.EquationLinear,
				Solutions:   []any{domain.AllRealNumbers},
				Explanation: "Infinite solutions (identity)",
			}
		}
		return domain.EquationSolution{
			Success:     true,
			Equation:    equation,
			Type:        domain.EquationLinear,
			Solutions:   []any{},
			Explanation: "No solution (contradiction)",
		}
	}

	x := round10(-b / a)
	return domain.EquationSolution{
		Success:     true,
		Equation:    equation,
		Type:        domain.EquationLinear,
		Solutions:   []any{x},
		Explanation: fmt.Sprintf("x = %s", formatFloat(x)),
	}
}

// solveQuadratic recovers f(x) = ax² + bx + c from f(0), f(1), f(2) by
// finite differences: c = f(0), a = (f(2)-2f(1)+f(0))/2, b = (f(1)-f(0))-a.
func solveQuadratic(equation, normalized string) domain.EquationSolution {
	f0, err := eval.EvalAt(normalized, 0)
	if err != nil {
		return evalFailure(equation, err)
	}
	f1, err := eval.EvalAt(normalized, 1)
	if err != nil {
		return evalFailure(equation, err)
	}
	f2, err := eval.EvalAt(normalized, 2)
	if err != nil {
		return evalFailure(equation, err)
	}

	c := f0
	a := (f2 - 2*f1 + f0) / 2
	b := (f1 - f0) - a

	f3, err := eval.EvalAt(normalized, 3)
	if err != nil {
		return evalFailure(equation, err)
	}
	if math.Abs(f3-(9*a+3*b+c)) > residualTolerance*math.Max(1, math.Abs(f3)) {
		return errorSolution(equation, domain.ErrNotPolynomial.Message)
	}

	// Degenerate leading coefficient, e.g. x^2 terms that cancel.
	if math.Abs(a) < zeroCoeff {
		return linearSolution(equation, b, c)
	}

	discriminant := b*b - 4*a*c
	sol := domain.EquationSolution{
		Success:      true,
		Equation:     equation,
		Type:         domain.EquationQuadratic,
		A:            float64Ptr(round10(a)),
		B:            float64Ptr(round10(b)),
		C:            float64Ptr(round10(c)),
		Discriminant: float64Ptr(round10(discriminant)),
	}

	switch {
	case discriminant > 0:
		x1 := round10((-b + math.Sqrt(discriminant)) / (2 * a))
		x2 := round10((-b - math.Sqrt(discriminant)) / (2 * a))
		sol.Solutions = []any{x1, x2}
		sol.Explanation = fmt.Sprintf("Two real solutions: x = %s or x = %s",
			formatFloat(x1), formatFloat(x2))
	case discriminant == 0:
		x := round10(-b / (2 * a))
		sol.Solutions = []any{x}
		sol.Explanation = fmt.Sprintf("One repeated solution: x = %s", formatFloat(x))
	default:
		re := round10(-b / (2 * a))
		im := round10(math.Sqrt(-discriminant) / (2 * math.Abs(a)))
		sol.Solutions = []any{
			fmt.Sprintf("%s+%si", formatFloat(re), formatFloat(im)),
			fmt.Sprintf("%s-%si", formatFloat(re), formatFloat(im)),
		}
		sol.Explanation = fmt.Sprintf("Two complex solutions: x = %s ± %si",
			formatFloat(re), formatFloat(im))
	}
	return sol
}

func round10(v float64) float64 {
	r := math.Round(v*1e10) / 1e10
	if r == 0 {
		return 0 // avoid rendering negative zero
	}
	return r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func float64Ptr(v float64) *float64 { return &v }

func errorSolution(equation, msg string) domain.EquationSolution {
	return domain.EquationSolution{
		Success:  false,
		Equation: equation,
		Type:     domain.EquationError,
		Error:    msg,
	}
}

func evalFailure(equation string, err error) domain.EquationSolution {
	msg := err.Error()
	if ee, ok := err.(*domain.EngineError); ok {
		msg = ee.Message
	}
	return errorSolution(equation, "could not evaluate equation: "+msg)
}
