package equation

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/anthropics/tutor-engine/internal/domain"
)

func floatSolutions(t *testing.T, sol domain.EquationSolution) []float64 {
	t.Helper()
	var out []float64
	for _, s := range sol.Solutions {
		v, ok := s.(float64)
		if !ok {
			t.Fatalf("solution %v is %T, want float64", s, s)
		}
		out = append(out, v)
	}
	return out
}

func TestSolveLinear(t *testing.T) {
	sol := Solve("2x + 5 = 15")
	if !sol.Success {
		t.Fatalf("solve failed: %s", sol.Error)
	}
	if sol.Type != domain.EquationLinear {
		t.Errorf("type = %s, want linear", sol.Type)
	}
	roots := floatSolutions(t, sol)
	if len(roots) != 1 || math.Abs(roots[0]-5) > 1e-9 {
		t.Errorf("solutions = %v, want [5]", sol.Solutions)
	}
}

func TestSolveLinearRandomTriples(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		a := float64(rng.Intn(19) - 9)
		if a == 0 {
			a = 3
		}
		b := float64(rng.Intn(41) - 20)
		c := float64(rng.Intn(41) - 20)
		eq := fmt.Sprintf("%gx + %g = %g", a, b, c)

		sol := Solve(eq)
		if !sol.Success {
			t.Fatalf("Solve(%q) failed: %s", eq, sol.Error)
		}
		roots := floatSolutions(t, sol)
		if len(roots) != 1 {
			t.Fatalf("Solve(%q): %d solutions, want 1", eq, len(roots))
		}
		want := (c - b) / a
		if math.Abs(roots[0]-want) > 1e-9 {
			t.Errorf("Solve(%q) = %v, want %v", eq, roots[0], want)
		}
	}
}

func TestSolveQuadraticTwoRealRoots(t *testing.T) {
	sol := Solve("x^2 - 5x + 6 = 0")
	if !sol.Success {
		t.Fatalf("solve failed: %s", sol.Error)
	}
	if sol.Type != domain.EquationQuadratic {
		t.Errorf("type = %s, want quadratic", sol.Type)
	}
	roots := floatSolutions(t, sol)
	if len(roots) != 2 {
		t.Fatalf("%d solutions, want 2", len(roots))
	}
	got := map[float64]bool{roots[0]: true, roots[1]: true}
	if !got[3] || !got[2] {
		t.Errorf("solutions = %v, want {3, 2}", roots)
	}
	if sol.A == nil || *sol.A != 1 || sol.B == nil || *sol.B != -5 || sol.C == nil || *sol.C != 6 {
		t.Errorf("coefficients a=%v b=%v c=%v, want 1, -5, 6", sol.A, sol.B, sol.C)
	}
	if sol.Discriminant == nil || *sol.Discriminant != 1 {
		t.Errorf("discriminant = %v, want 1", sol.Discriminant)
	}
}

func TestSolveQuadraticRootsSatisfyEquation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		a := float64(rng.Intn(5) + 1)
		b := float64(rng.Intn(21) - 10)
		c := float64(rng.Intn(11) - 10)
		if b*b-4*a*c <= 0 {
			continue
		}
		eq := fmt.Sprintf("%gx^2 + %gx + %g = 0", a, b, c)
		sol := Solve(eq)
		if !sol.Success {
			t.Fatalf("Solve(%q) failed: %s", eq, sol.Error)
		}
		for _, x := range floatSolutions(t, sol) {
			residual := a*x*x + b*x + c
			if math.Abs(residual) > 1e-6 {
				t.Errorf("Solve(%q): root %v gives residual %v", eq, x, residual)
			}
		}
	}
}

func TestSolveQuadraticRepeatedRoot(t *testing.T) {
	sol := Solve("x^2 - 4x + 4 = 0")
	if !sol.Success {
		t.Fatalf("solve failed: %s", sol.Error)
	}
	roots := floatSolutions(t, sol)
	if len(roots) != 1 || math.Abs(roots[0]-2) > 1e-9 {
		t.Errorf("solutions = %v, want exactly [2]", sol.Solutions)
	}
}

func TestSolveQuadraticComplexRoots(t *testing.T) {
	sol := Solve("x^2 + 1 = 0")
	if !sol.Success {
		t.Fatalf("solve failed: %s", sol.Error)
	}
	if len(sol.Solutions) != 2 {
		t.Fatalf("%d solutions, want 2", len(sol.Solutions))
	}
	first, ok1 := sol.Solutions[0].(string)
	second, ok2 := sol.Solutions[1].(string)
	if !ok1 || !ok2 {
		t.Fatalf("complex roots should be strings, got %T and %T", sol.Solutions[0], sol.Solutions[1])
	}
	if first != "0+1i" || second != "0-1i" {
		t.Errorf("solutions = %q, %q, want conjugate pair 0+1i / 0-1i", first, second)
	}
}

func TestSolveIdentityAndContradiction(t *testing.T) {
	sol := Solve("2x + 3 = 2x + 3")
	if !sol.Success {
		t.Fatalf("identity solve failed: %s", sol.Error)
	}
	if len(sol.Solutions) != 1 || sol.Solutions[0] != domain.AllRealNumbers {
		t.Errorf("identity solutions = %v, want [all real numbers]", sol.Solutions)
	}

	sol = Solve("x + 1 = x + 2")
	if !sol.Success {
		t.Fatalf("contradiction solve failed: %s", sol.Error)
	}
	if len(sol.Solutions) != 0 {
		t.Errorf("contradiction solutions = %v, want none", sol.Solutions)
	}
}

func TestSolveDegenerateQuadratic(t *testing.T) {
	// The x^2 terms cancel, leaving a linear equation.
	sol := Solve("x^2 + 2x + 1 = x^2 + 7")
	if !sol.Success {
		t.Fatalf("solve failed: %s", sol.Error)
	}
	if sol.Type != domain.EquationLinear {
		t.Errorf("type = %s, want linear after cancellation", sol.Type)
	}
	roots := floatSolutions(t, sol)
	if len(roots) != 1 || math.Abs(roots[0]-3) > 1e-9 {
		t.Errorf("solutions = %v, want [3]", sol.Solutions)
	}
}

func TestSolveRejectsNonPolynomial(t *testing.T) {
	for _, eq := range []string{"2^x = 8", "sin(x) = 0"} {
		sol := Solve(eq)
		if sol.Success {
			t.Errorf("Solve(%q) should fail, got %v", eq, sol.Solutions)
		}
		if !strings.Contains(sol.Error, "not linear or quadratic") {
			t.Errorf("Solve(%q) error = %q, want non-polynomial message", eq, sol.Error)
		}
	}
}

func TestSolveMalformedInput(t *testing.T) {
	cases := []string{"2x + 5", "1 = 2 = 3", "= 5", "x ="}
	for _, eq := range cases {
		sol := Solve(eq)
		if sol.Success {
			t.Errorf("Solve(%q) should fail", eq)
		}
		if sol.Type != domain.EquationError {
			t.Errorf("Solve(%q) type = %s, want error", eq, sol.Type)
		}
		if sol.Equation != eq {
			t.Errorf("Solve(%q) did not echo equation: %q", eq, sol.Equation)
		}
	}
}
