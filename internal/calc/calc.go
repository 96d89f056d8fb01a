// Package calc is the calculator façade: expression evaluation with a
// result cache, equation solving, unit conversion, tip and percentage
// helpers, and the formula reference.
package calc

import (
	"math"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/anthropics/tutor-engine/internal/domain"
	"github.com/anthropics/tutor-engine/internal/equation"
	"github.com/anthropics/tutor-engine/internal/eval"
)

// DefaultCacheSize bounds the expression result cache when the config
// does not say otherwise.
const DefaultCacheSize = 256

// Manager bundles the calculator operations behind one handle. Results
// are immutable values, so the cache can hand them out to concurrent
// callers as-is.
type Manager struct {
	cache *lru.Cache[string, domain.CalculationResult]
}

// New builds a Manager with an expression cache of the given size.
// Non-positive sizes fall back to DefaultCacheSize.
func New(cacheSize int) (*Manager, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, domain.CalculationResult](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Manager{cache: cache}, nil
}

// Calculate evaluates a mathematical expression, serving repeated
// expressions from the cache. Errors are cached too: a bad expression
// stays bad.
func (m *Manager) Calculate(expression string) domain.CalculationResult {
	if cached, ok := m.cache.Get(expression); ok {
		return cached
	}
	result := eval.Evaluate(expression)
	m.cache.Add(expression, result)
	return result
}

// SolveEquation solves a linear or quadratic equation in x.
func (m *Manager) SolveEquation(eq string) domain.EquationSolution {
	return equation.Solve(eq)
}

// CalculateTip computes the tip and total for a bill, rounded to cents.
func (m *Manager) CalculateTip(amount, percentage float64) domain.TipResult {
	if amount < 0 {
		return domain.TipResult{
			Success: false,
			Error:   "Amount cannot be negative",
			Type:    "error",
		}
	}
	if percentage < 0 {
		return domain.TipResult{
			Success: false,
			Error:   "Percentage cannot be negative",
			Type:    "error",
		}
	}

	tip := roundTo(amount*percentage/100, 2)
	total := roundTo(amount+tip, 2)
	return domain.TipResult{
		Success:       true,
		BillAmount:    amount,
		TipPercentage: percentage,
		TipAmount:     tip,
		TotalAmount:   total,
		Type:          "tip",
	}
}

// CalculatePercentage computes percentage% of value, rounded to four
// decimals.
func (m *Manager) CalculatePercentage(value, percentage float64) domain.PercentageResult {
	result := roundTo(value*percentage/100, 4)
	return domain.PercentageResult{
		Success:    true,
		Value:      value,
		Percentage: percentage,
		Result:     result,
		Formula:    formatFloat(percentage) + "% of " + formatFloat(value) + " = " + formatFloat(result),
		Type:       "percentage",
	}
}

// roundTo rounds half away from zero at the given decimal place.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
