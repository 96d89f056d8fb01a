package solver

import "github.com/anthropics/tutor-engine/internal/domain"

// fallback returns the subject's generic record for questions that match
// no rule. Every field is populated so the rendered report is never empty.
func (e *Engine) fallback(subject domain.Subject) domain.SolutionRecord {
	switch subject {
	case domain.SubjectMathematics:
		return e.mathFallback()
	case domain.SubjectPhysics:
		return domain.SolutionRecord{
			Solution:        []string{"This is a physics problem requiring analysis."},
			Explanation:     []string{"Physics explains natural phenomena through laws and principles."},
			FinalAnswer:     "Please provide specific values for precise calculation.",
			Method:          "Physics Problem Solving",
			WhyThisWorks:    "Physics laws are derived from observations and experiments.",
			HowItIsPossible: "Through careful measurement and mathematical modeling.",
			Reasons: []string{
				"Physics is the foundation of all natural sciences",
				"It explains how the universe works",
			},
			Resources: e.resources[domain.SubjectPhysics],
		}
	case domain.SubjectChemistry:
		return domain.SolutionRecord{
			Solution:        []string{"This is a chemistry problem."},
			Explanation:     []string{"Chemistry studies matter and its transformations."},
			FinalAnswer:     "Please provide more specific details.",
			Method:          "Chemistry Problem Solving",
			WhyThisWorks:    "Chemistry follows laws and principles derived from experiments.",
			HowItIsPossible: "Through understanding atomic and molecular behavior.",
			Reasons: []string{
				"Chemistry is central to many industries",
				"Essential for understanding life processes",
			},
			Resources: e.resources[domain.SubjectChemistry],
		}
	case domain.SubjectBiology:
		return domain.SolutionRecord{
			Solution:        []string{"This is a biology question."},
			Explanation:     []string{"Biology studies living organisms and their processes."},
			FinalAnswer:     "Please provide more specific details.",
			Method:          "Biology Problem Solving",
			WhyThisWorks:    "Biological systems follow physical and chemical principles.",
			HowItIsPossible: "Through evolution, life has developed remarkable mechanisms.",
			Reasons: []string{
				"Biology explains life at all levels",
				"Essential for medicine and environment",
			},
			Resources: e.resources[domain.SubjectBiology],
		}
	case domain.SubjectSocialScience:
		return domain.SolutionRecord{
			Solution:        []string{"This is a social science question."},
			Explanation:     []string{"Social sciences study human society and relationships."},
			FinalAnswer:     "Please provide specific details.",
			Method:          "Social Science Analysis",
			WhyThisWorks:    "Social sciences apply scientific methods to human behavior.",
			HowItIsPossible: "Through observation, surveys, experiments, and case studies.",
			Reasons: []string{
				"Helps understand society",
				"Informs policy decisions",
			},
			Resources: e.resources[domain.SubjectSocialScience],
		}
	case domain.SubjectEconomics:
		return domain.SolutionRecord{
			Solution:        []string{"This is an economics question."},
			Explanation:     []string{"Economics studies how societies allocate scarce resources."},
			FinalAnswer:     "Please provide specific details.",
			Method:          "Economic Analysis",
			WhyThisWorks:    "Economics applies theories to understand resource allocation.",
			HowItIsPossible: "Through models, data analysis, and policy evaluation.",
			Reasons: []string{
				"Essential for business decisions",
				"Informs government policy",
				"Helps understand markets",
			},
			Resources: e.resources[domain.SubjectEconomics],
		}
	case domain.SubjectHealth:
		return domain.SolutionRecord{
			Solution:        []string{"This is a health-related question."},
			Explanation:     []string{"Health involves physical, mental, and social well-being."},
			FinalAnswer:     "Please provide specific details.",
			Method:          "Health Analysis",
			WhyThisWorks:    "Health science applies biology, medicine, and public health principles.",
			HowItIsPossible: "Through research, prevention, and treatment.",
			Reasons: []string{
				"Fundamental to well-being",
				"Reduces disease burden",
				"Improves quality of life",
			},
			Resources: e.resources[domain.SubjectHealth],
		}
	case domain.SubjectComputerScience:
		return domain.SolutionRecord{
			Solution:        []string{"This is a computer science question."},
			Explanation:     []string{"Computer science studies computation, algorithms, and information processing."},
			FinalAnswer:     "Please provide specific details.",
			Method:          "CS Problem Solving",
			WhyThisWorks:    "CS applies mathematical and engineering principles to computing.",
			HowItIsPossible: "Through hardware, software, and theoretical foundations.",
			Reasons: []string{
				"Drives technological progress",
				"Essential for digital transformation",
			},
			Resources: e.resources[domain.SubjectComputerScience],
		}
	}
	return e.generalSolution()
}

// mathFallback is the generic math record, also used by calculation
// handlers when the question lacks the numbers they need.
func (e *Engine) mathFallback() domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"This appears to be a mathematics problem.",
			"I'll provide a detailed analysis and solution.",
		},
		Explanation: []string{
			"Mathematics uses logical reasoning and systematic approaches to solve problems.",
			"The solution depends on understanding the specific type of problem.",
		},
		FinalAnswer:     "Please provide more specific details about your math problem for a precise solution.",
		Method:          "General Mathematical Analysis",
		WhyThisWorks:    "Mathematics builds from basic principles to solve complex problems.",
		HowItIsPossible: "Through logical reasoning and established formulas.",
		Reasons: []string{
			"Math is the language of quantitative reasoning",
			"It provides tools for solving real-world problems",
		},
		Resources: e.resources[domain.SubjectMathematics],
	}
}

// generalSolution handles questions that classify to no subject. It carries
// no resource list.
func (e *Engine) generalSolution() domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"This appears to be a general knowledge or specialized question.",
			"I'll provide information based on verified sources.",
		},
		Explanation: []string{
			"Many questions require analysis from multiple perspectives.",
			"The answer depends on the specific context and field.",
		},
		FinalAnswer:     "Please provide more details for a specific answer.",
		Method:          "General Analysis",
		WhyThisWorks:    "Different subjects have different methodologies and frameworks.",
		HowItIsPossible: "Through interdisciplinary approaches and evidence-based reasoning.",
		Reasons: []string{
			"Knowledge is interconnected",
			"Context matters for answers",
		},
		Resources: nil,
	}
}
