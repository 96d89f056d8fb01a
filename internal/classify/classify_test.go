package classify

import (
	"testing"

	"github.com/anthropics/tutor-engine/internal/domain"
)

func TestDetectMathematics(t *testing.T) {
	subject, confidence := Detect("solve the quadratic equation x^2 - 5x + 6 = 0")
	if subject != domain.SubjectMathematics {
		t.Errorf("subject = %s, want mathematics", subject)
	}
	if confidence <= 0 {
		t.Errorf("confidence = %v, want > 0", confidence)
	}
}

func TestDetectAcrossSubjects(t *testing.T) {
	cases := []struct {
		question string
		want     domain.Subject
	}{
		{"what force is needed to accelerate a 10 kg mass at 2 m/s^2 using newton's law", domain.SubjectPhysics},
		{"balance the chemical equation for this oxidation reaction with a catalyst", domain.SubjectChemistry},
		{"explain photosynthesis and respiration in a plant cell with chloroplast and mitochondria", domain.SubjectBiology},
		{"describe the nutrition and diet needed to manage diabetes and hypertension in a patient", domain.SubjectHealth},
		{"write a python programming algorithm using recursion and a hash table data structure", domain.SubjectComputerScience},
		{"how do demand and supply determine market price and gdp inflation", domain.SubjectEconomics},
	}
	for _, tc := range cases {
		got, confidence := Detect(tc.question)
		if got != tc.want {
			t.Errorf("Detect(%q) = %s, want %s", tc.question, got, tc.want)
		}
		if confidence <= 0 {
			t.Errorf("Detect(%q) confidence = %v, want > 0", tc.question, confidence)
		}
	}
}

func TestDetectNoMatchIsGeneral(t *testing.T) {
	subject, confidence := Detect("hello there")
	if subject != domain.SubjectGeneral {
		t.Errorf("subject = %s, want general", subject)
	}
	if confidence != 0 {
		t.Errorf("confidence = %v, want 0", confidence)
	}
}

func TestDetectConfidenceSaturates(t *testing.T) {
	// Seven distinct math keywords; score/5 must cap at 1.0.
	_, confidence := Detect("calculate and solve the algebra equation with a fraction, percentage and ratio")
	if confidence != 1.0 {
		t.Errorf("confidence = %v, want capped at 1.0", confidence)
	}
}

func TestDetectTieGoesToFirstSubject(t *testing.T) {
	// "equilibrium" appears in both the chemistry and economics keyword
	// sets; the earlier table entry (chemistry) must win the tie.
	subject, _ := Detect("equilibrium")
	if subject != domain.SubjectChemistry {
		t.Errorf("tie broken to %s, want chemistry (first in table order)", subject)
	}
}

func TestDetectScalesWithMatches(t *testing.T) {
	_, low := Detect("add")
	_, high := Detect("add and subtract then multiply and divide")
	if high <= low {
		t.Errorf("more keyword hits should not lower confidence: %v vs %v", low, high)
	}
}
