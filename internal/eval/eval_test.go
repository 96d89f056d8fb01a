package eval

import (
	"math"
	"strings"
	"testing"

	"github.com/anthropics/tutor-engine/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func evalFloat(t *testing.T, expr string) float64 {
	t.Helper()
	res := Evaluate(expr)
	if !res.Success {
		t.Fatalf("Evaluate(%q) failed: %s", expr, res.Error)
	}
	switch v := res.Result.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		t.Fatalf("Evaluate(%q) returned %T, want numeric", expr, res.Result)
		return 0
	}
}

func TestEvaluateBasicArithmetic(t *testing.T) {
	res := Evaluate("2 + 2")
	if !res.Success {
		t.Fatalf("evaluate failed: %s", res.Error)
	}
	if v, ok := res.Result.(int64); !ok || v != 4 {
		t.Errorf("got %v (%T), want int64 4", res.Result, res.Result)
	}
	if res.Type != domain.ResultBasic {
		t.Errorf("type = %s, want basic", res.Type)
	}
	if res.Expression != "2 + 2" {
		t.Errorf("expression not echoed: %q", res.Expression)
	}
}

func TestEvaluateImplicitMultiplication(t *testing.T) {
	cases := map[string]float64{
		"2(3)":     6,
		"(2)(3)":   6,
		"2*3":      6,
		"(1+1)(3)": 6,
		"(2)3":     6,
	}
	for expr, want := range cases {
		if got := evalFloat(t, expr); !almostEqual(got, want) {
			t.Errorf("%q = %v, want %v", expr, got, want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"2(3)", "2x + 5", "log10(100)", "sqrt(16) + pi", "2^3", "(2)(3)"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizePreservesFunctionNames(t *testing.T) {
	got := Normalize("log10(100)")
	if got != "log10(100)" {
		t.Fatalf("Normalize corrupted function call: %q", got)
	}
	if got := Normalize("2x"); got != "2*x" {
		t.Fatalf("Normalize(2x) = %q, want 2*x", got)
	}
}

func TestEvaluateFunctions(t *testing.T) {
	res := Evaluate("sqrt(16) + pi")
	if !res.Success {
		t.Fatalf("evaluate failed: %s", res.Error)
	}
	v, ok := res.Result.(float64)
	if !ok {
		t.Fatalf("got %T, want float64", res.Result)
	}
	if !almostEqual(v, 7.1415926536) {
		t.Errorf("sqrt(16) + pi = %v, want 7.1415926536", v)
	}
	if res.Type != domain.ResultFunction {
		t.Errorf("type = %s, want function", res.Type)
	}

	if got := evalFloat(t, "log10(100)"); !almostEqual(got, 2) {
		t.Errorf("log10(100) = %v, want 2", got)
	}
	if got := evalFloat(t, "factorial(5)"); !almostEqual(got, 120) {
		t.Errorf("factorial(5) = %v, want 120", got)
	}
	if got := evalFloat(t, "gcd(12, 18)"); !almostEqual(got, 6) {
		t.Errorf("gcd(12, 18) = %v, want 6", got)
	}
	if got := evalFloat(t, "degrees(pi)"); !almostEqual(got, 180) {
		t.Errorf("degrees(pi) = %v, want 180", got)
	}
}

func TestEvaluateExponents(t *testing.T) {
	res := Evaluate("2^3")
	if !res.Success {
		t.Fatalf("evaluate failed: %s", res.Error)
	}
	if v, ok := res.Result.(int64); !ok || v != 8 {
		t.Errorf("2^3 = %v, want 8", res.Result)
	}
	if res.Type != domain.ResultExponent {
		t.Errorf("type = %s, want exponent", res.Type)
	}

	if got := evalFloat(t, "-2**2"); !almostEqual(got, -4) {
		t.Errorf("-2**2 = %v, want -4 (negation binds looser)", got)
	}
	if got := evalFloat(t, "2**3**2"); !almostEqual(got, 512) {
		t.Errorf("2**3**2 = %v, want 512 (right associative)", got)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	res := Evaluate("1/0")
	if res.Success {
		t.Fatalf("1/0 should fail, got %v", res.Result)
	}
	if res.Type != domain.ResultError {
		t.Errorf("type = %s, want error", res.Type)
	}
	if !strings.Contains(strings.ToLower(res.Error), "division by zero") {
		t.Errorf("error = %q, want division by zero message", res.Error)
	}
}

func TestEvaluateComplexResult(t *testing.T) {
	res := Evaluate("sqrt(-1)")
	if !res.Success {
		t.Fatalf("sqrt(-1) failed: %s", res.Error)
	}
	if res.Type != domain.ResultComplex {
		t.Errorf("type = %s, want complex", res.Type)
	}
	if s, ok := res.Result.(string); !ok || !strings.Contains(s, "i") {
		t.Errorf("result = %v, want complex string", res.Result)
	}
}

func TestEvaluateRejectsUnknownNames(t *testing.T) {
	for _, expr := range []string{"foo(2)", "x + 1", "__import__(1)", "open(1)"} {
		res := Evaluate(expr)
		if res.Success {
			t.Errorf("%q should not evaluate, got %v", expr, res.Result)
		}
	}
}

func TestEvaluateSyntaxErrors(t *testing.T) {
	for _, expr := range []string{"", "2 +", "(1+2", "2 ** ", "1 @ 2", "sqrt"} {
		res := Evaluate(expr)
		if res.Success {
			t.Errorf("%q should fail, got %v", expr, res.Result)
		}
		if res.Type != domain.ResultError {
			t.Errorf("%q: type = %s, want error", expr, res.Type)
		}
	}
}

func TestEvaluateBadArguments(t *testing.T) {
	for _, expr := range []string{"factorial(2.5)", "factorial(-1)", "gcd(1.5, 2)", "pow(1)"} {
		if res := Evaluate(expr); res.Success {
			t.Errorf("%q should fail, got %v", expr, res.Result)
		}
	}
}

func TestEvaluateIdempotentAcrossCalls(t *testing.T) {
	first := Evaluate("3 * (4 + 1)")
	second := Evaluate("3 * (4 + 1)")
	if first.Result != second.Result || first.Type != second.Type {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}

func TestEvalAt(t *testing.T) {
	normalized := Normalize("2x + 5")
	f0, err := EvalAt(normalized, 0)
	if err != nil {
		t.Fatalf("EvalAt(0): %v", err)
	}
	f1, err := EvalAt(normalized, 1)
	if err != nil {
		t.Fatalf("EvalAt(1): %v", err)
	}
	if !almostEqual(f0, 5) || !almostEqual(f1, 7) {
		t.Errorf("f(0)=%v f(1)=%v, want 5 and 7", f0, f1)
	}
}
