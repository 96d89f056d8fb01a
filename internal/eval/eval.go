package eval

import (
	"fmt"
	"math"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// imagTolerance is the relative threshold below which a complex result is
// collapsed to its real part. cmplx round trips introduce tiny imaginary
// residue on purely real expressions.
const imagTolerance = 1e-12

// Evaluate normalizes, parses, and evaluates an arithmetic expression.
// The returned record always echoes the original expression text; failures
// come back as Success=false with a message rather than an error value.
func Evaluate(expression string) domain.CalculationResult {
	if strings.TrimSpace(expression) == "" {
		return errorResult(expression, domain.ErrEmptyExpression)
	}
	normalized := Normalize(expression)
	v, err := evaluate(normalized, nil)
	if err != nil {
		return errorResult(expression, err)
	}

	if math.Abs(imag(v)) > imagTolerance*math.Max(1, math.Abs(real(v))) {
		return domain.CalculationResult{
			Success:    true,
			Expression: expression,
			Result:     formatComplex(v),
			Type:       domain.ResultComplex,
		}
	}

	return domain.CalculationResult{
		Success:    true,
		Expression: expression,
		Result:     shapeReal(real(v)),
		Type:       classifyType(normalized),
	}
}

// EvalAt evaluates an already-normalized expression with x bound to the
// given value, requiring a real result. The equation solver samples
// polynomials through this.
func EvalAt(normalized string, x float64) (float64, error) {
	v, err := evaluate(normalized, map[string]complex128{"x": complex(x, 0)})
	if err != nil {
		return 0, err
	}
	if math.Abs(imag(v)) > imagTolerance*math.Max(1, math.Abs(real(v))) {
		return 0, domain.NewEngineError(domain.ErrExpressionDomain.Code,
			"expression is not real-valued")
	}
	return real(v), nil
}

// shapeReal rounds to ten decimal places and coerces integral values to
// int64, so 4.0 renders as 4 but 7.1415926536 keeps its fraction.
func shapeReal(v float64) any {
	r := math.Round(v*1e10) / 1e10
	if r == math.Trunc(r) && math.Abs(r) < 1<<53 {
		return int64(r)
	}
	return r
}

func formatComplex(v complex128) string {
	re := math.Round(real(v)*1e10) / 1e10
	im := math.Round(imag(v)*1e10) / 1e10
	if im >= 0 {
		return fmt.Sprintf("%g+%gi", re, im)
	}
	return fmt.Sprintf("%g-%gi", re, -im)
}

var functionMarkers = []string{"sqrt", "sin", "cos", "tan", "log", "ln", "exp"}

// classifyType buckets a result by what the normalized expression used.
func classifyType(normalized string) domain.ResultType {
	lower := strings.ToLower(normalized)
	for _, marker := range functionMarkers {
		if strings.Contains(lower, marker) {
			return domain.ResultFunction
		}
	}
	if strings.Contains(normalized, "**") {
		return domain.ResultExponent
	}
	return domain.ResultBasic
}

func errorResult(expression string, err error) domain.CalculationResult {
	msg := err.Error()
	if ee, ok := err.(*domain.EngineError); ok {
		msg = ee.Message
	}
	return domain.CalculationResult{
		Success:    false,
		Expression: expression,
		Error:      msg,
		Type:       domain.ResultError,
	}
}
