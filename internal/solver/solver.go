// Package solver answers classified questions with structured, explained
// solutions.
//
// Each subject carries an ordered list of (predicate, handler) rules; the
// first rule whose predicate matches the lowercased question produces the
// record. Nothing here errors toward the caller: a question that matches
// no rule gets the subject's generic fallback record, and a question that
// matches no subject at all gets a general one.
package solver

import (
	"strings"

	"github.com/anthropics/tutor-engine/internal/classify"
	"github.com/anthropics/tutor-engine/internal/domain"
)

// rule pairs a match predicate with the handler that builds the record.
// Predicates see the lowercased question; handlers see the original text
// plus its extracted numbers.
type rule struct {
	match   func(lower string) bool
	handler func(question string, nums []float64) domain.SolutionRecord
}

// Engine routes questions to domain solvers. All tables are built once in
// New and never mutated, so one Engine serves concurrent callers.
type Engine struct {
	resources map[domain.Subject][]domain.Resource
	rules     map[domain.Subject][]rule
}

// New builds an engine with the full rule and resource tables.
func New() *Engine {
	e := &Engine{resources: verifiedResources()}
	e.rules = map[domain.Subject][]rule{
		domain.SubjectMathematics:     e.mathRules(),
		domain.SubjectPhysics:         e.physicsRules(),
		domain.SubjectChemistry:       e.chemistryRules(),
		domain.SubjectBiology:         e.biologyRules(),
		domain.SubjectSocialScience:   e.socialScienceRules(),
		domain.SubjectEconomics:       e.economicsRules(),
		domain.SubjectHealth:          e.healthRules(),
		domain.SubjectComputerScience: e.computerScienceRules(),
	}
	return e
}

// Solve classifies the question, routes it to the matching subject solver,
// and stamps the detected subject and confidence onto the record.
func (e *Engine) Solve(question string) domain.SolutionRecord {
	subject, confidence := classify.Detect(question)

	var rec domain.SolutionRecord
	rules, ok := e.rules[subject]
	if !ok {
		rec = e.generalSolution()
	} else {
		rec = e.dispatch(subject, rules, question)
	}

	rec.DetectedSubject = subject
	rec.Confidence = confidence
	return rec
}

// Resources returns the curated reference links for a subject, or nil for
// subjects without a table (general).
func (e *Engine) Resources(subject domain.Subject) []domain.Resource {
	return e.resources[subject]
}

func (e *Engine) dispatch(subject domain.Subject, rules []rule, question string) domain.SolutionRecord {
	lower := strings.ToLower(question)
	nums := ExtractNumbers(question)
	for _, r := range rules {
		if r.match(lower) {
			return r.handler(question, nums)
		}
	}
	return e.fallback(subject)
}

// containsAny reports whether the text holds any of the given substrings.
func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func anyOf(keywords ...string) func(string) bool {
	return func(lower string) bool { return containsAny(lower, keywords...) }
}
