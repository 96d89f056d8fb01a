package solver

import (
	"math"
	"strings"
	"testing"

	"github.com/anthropics/tutor-engine/internal/domain"
)

func TestSolveAddition(t *testing.T) {
	e := New()
	rec := e.Solve("calculate the sum of 12 and 30")

	if rec.DetectedSubject != domain.SubjectMathematics {
		t.Fatalf("subject = %q, want mathematics", rec.DetectedSubject)
	}
	if rec.FinalAnswer != "The sum is 42" {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
	if rec.Method != "Basic Addition Algorithm" {
		t.Errorf("method = %q", rec.Method)
	}
	if len(rec.Solution) == 0 || len(rec.Resources) == 0 {
		t.Errorf("solution steps or resources missing: %+v", rec)
	}
}

func TestSolveDivisionWithRemainder(t *testing.T) {
	e := New()
	rec := e.Solve("calculate 17 divided by 5")

	if !strings.Contains(rec.FinalAnswer, "The quotient is 3.4") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
	if !strings.Contains(rec.FinalAnswer, "remainder 2") {
		t.Errorf("remainder missing from %q", rec.FinalAnswer)
	}
}

func TestSolveProfit(t *testing.T) {
	e := New()
	rec := e.Solve("calculate the profit if i buy at 100 and sell at 120")

	if !strings.Contains(rec.FinalAnswer, "Profit = 20") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
	if !strings.Contains(rec.FinalAnswer, "20%") {
		t.Errorf("profit percent missing from %q", rec.FinalAnswer)
	}
}

func TestSolveLoss(t *testing.T) {
	e := New()
	rec := e.Solve("calculate the loss when buying at 200 and selling at 150")

	if !strings.Contains(rec.FinalAnswer, "Loss = 50") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
	if !strings.Contains(rec.FinalAnswer, "25%") {
		t.Errorf("loss percent missing from %q", rec.FinalAnswer)
	}
}

func TestSolveAlgebraicEquation(t *testing.T) {
	e := New()
	rec := e.Solve("solve the equation 2x + 5 = 15")

	if !strings.Contains(rec.FinalAnswer, "x = 5") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
	if rec.Method != "Algebraic Manipulation" {
		t.Errorf("method = %q", rec.Method)
	}
}

func TestSolveQuadraticByCoefficients(t *testing.T) {
	e := New()
	rec := e.Solve("solve the quadratic with coefficients 1, -5 and 6")

	if !strings.Contains(rec.FinalAnswer, "x₁ = 3") || !strings.Contains(rec.FinalAnswer, "x₂ = 2") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
}

func TestSolveQuadraticComplexRoots(t *testing.T) {
	e := New()
	rec := e.Solve("solve the quadratic with coefficients 1, 0 and 4")

	if rec.FinalAnswer != "No real solutions (complex roots)" {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
}

func TestSolveInterest(t *testing.T) {
	e := New()

	rec := e.Solve("find the simple interest on 1000 at rate 5 for 2 years")
	if !strings.Contains(rec.FinalAnswer, "Simple Interest = 100") {
		t.Errorf("simple interest answer = %q", rec.FinalAnswer)
	}

	rec = e.Solve("find the compound interest on 1000 at rate 10 for 2 years")
	if !strings.Contains(rec.FinalAnswer, "Compound Interest = 210") {
		t.Errorf("compound interest answer = %q", rec.FinalAnswer)
	}
}

func TestSolveMedianEvenCount(t *testing.T) {
	e := New()
	rec := e.Solve("find the median of 3, 1, 4, 2")

	if !strings.Contains(rec.FinalAnswer, "Median = 2.5") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
}

func TestSolveModeKeepsFirstSeenOrder(t *testing.T) {
	e := New()
	rec := e.Solve("find the mode of 5, 3, 5, 3, 1")

	if !strings.Contains(rec.FinalAnswer, "[5, 3]") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
}

func TestSolveForce(t *testing.T) {
	e := New()
	rec := e.Solve("what force is needed to accelerate a mass of 10 kg at 5 m/s")

	if rec.DetectedSubject != domain.SubjectPhysics {
		t.Fatalf("subject = %q, want physics", rec.DetectedSubject)
	}
	if !strings.Contains(rec.FinalAnswer, "Force = 50 Newtons") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
}

func TestSolvePH(t *testing.T) {
	e := New()
	rec := e.Solve("what is the ph of a solution with concentration 0.001 in this chemical reaction")

	if rec.DetectedSubject != domain.SubjectChemistry {
		t.Fatalf("subject = %q, want chemistry", rec.DetectedSubject)
	}
	if !strings.Contains(rec.FinalAnswer, "pH = 3.00") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
}

func TestSolveBMI(t *testing.T) {
	e := New()
	rec := e.Solve("what is the bmi given weight 70 and height 1.75 for my health and fitness")

	if rec.DetectedSubject != domain.SubjectHealth {
		t.Fatalf("subject = %q, want health", rec.DetectedSubject)
	}
	if !strings.Contains(rec.FinalAnswer, "BMI = 22.9") {
		t.Errorf("final answer = %q", rec.FinalAnswer)
	}
	if !strings.Contains(rec.FinalAnswer, "normal weight") {
		t.Errorf("category missing from %q", rec.FinalAnswer)
	}
}

func TestFallbackRecordsAreComplete(t *testing.T) {
	e := New()
	subjects := []domain.Subject{
		domain.SubjectMathematics,
		domain.SubjectPhysics,
		domain.SubjectChemistry,
		domain.SubjectBiology,
		domain.SubjectSocialScience,
		domain.SubjectEconomics,
		domain.SubjectHealth,
		domain.SubjectComputerScience,
	}
	for _, subject := range subjects {
		rec := e.fallback(subject)
		if len(rec.Solution) == 0 || len(rec.Explanation) == 0 || rec.FinalAnswer == "" ||
			rec.Method == "" || rec.WhyThisWorks == "" || rec.HowItIsPossible == "" ||
			len(rec.Reasons) == 0 || len(rec.Resources) == 0 {
			t.Errorf("%s fallback has empty fields: %+v", subject, rec)
		}
	}
}

func TestSolveGeneralQuestion(t *testing.T) {
	e := New()
	rec := e.Solve("hello there")

	if rec.DetectedSubject != domain.SubjectGeneral {
		t.Fatalf("subject = %q, want general", rec.DetectedSubject)
	}
	if rec.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", rec.Confidence)
	}
	if len(rec.Resources) != 0 {
		t.Errorf("general record should carry no resources")
	}
}

func TestExtractNumbers(t *testing.T) {
	nums := ExtractNumbers("add 3.5 and -2 to the total")
	want := []float64{3.5, -2}
	if len(nums) != len(want) {
		t.Fatalf("got %v, want %v", nums, want)
	}
	for i := range want {
		if math.Abs(nums[i]-want[i]) > 1e-12 {
			t.Errorf("nums[%d] = %v, want %v", i, nums[i], want[i])
		}
	}
}

func TestExtractEquation(t *testing.T) {
	if got := extractEquation("solve the equation 2x + 5 = 15"); got != "2x + 5 = 15" {
		t.Errorf("extractEquation = %q", got)
	}
	if got := extractEquation("no equals sign here"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
