package solver

import "github.com/anthropics/tutor-engine/internal/domain"

func (e *Engine) socialScienceRules() []rule {
	return []rule{
		{anyOf("history", "when", "year"), e.solveHistory},
		{anyOf("geography", "country", "capital"), e.solveGeography},
	}
}

func (e *Engine) solveHistory(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the historical event or period mentioned",
			"Step 2: Research the timeline and context",
			"Step 3: Connect to causes and consequences",
		},
		Explanation: []string{
			"History studies past events to understand present and future.",
			"Historical events are connected through cause-effect relationships.",
		},
		FinalAnswer:     "Historical analysis provides context and lessons",
		Method:          "Historical Analysis",
		WhyThisWorks:    "History follows documented evidence and scholarly interpretation.",
		HowItIsPossible: "Through primary sources, archaeology, and historical records.",
		Reasons: []string{
			"Helps us learn from past",
			"Explains current situations",
			"Preserves cultural memory",
		},
		Resources: e.resources[domain.SubjectSocialScience],
	}
}

func (e *Engine) solveGeography(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the location or geographic feature",
			"Step 2: Consider physical and human geography",
			"Step 3: Analyze relationships between environment and society",
		},
		Explanation: []string{
			"Geography studies the Earth surface and human activities.",
			"It includes physical features, climate, and human settlement patterns.",
		},
		FinalAnswer:     "Geographic factors influence human activities",
		Method:          "Geographic Analysis",
		WhyThisWorks:    "Physical geography shapes where and how humans live.",
		HowItIsPossible: "Through mapping, remote sensing, and spatial analysis.",
		Reasons: []string{
			"Important for planning",
			"Helps understand cultures",
			"Essential for environmental management",
		},
		Resources: e.resources[domain.SubjectSocialScience],
	}
}
