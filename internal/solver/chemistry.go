package solver

import (
	"fmt"
	"math"

	"github.com/anthropics/tutor-engine/internal/domain"
)

func (e *Engine) chemistryRules() []rule {
	return []rule{
		{anyOf("ph"), e.solvePH},
		{anyOf("molar mass", "mole"), e.solveMolarMass},
		{func(lower string) bool {
			return containsAny(lower, "balance") && containsAny(lower, "equation")
		}, e.solveBalancing},
		{anyOf("periodic", "element"), e.solvePeriodicTable},
	}
}

func (e *Engine) solvePH(question string, nums []float64) domain.SolutionRecord {
	if len(nums) < 1 || nums[0] <= 0 {
		return e.fallback(domain.SubjectChemistry)
	}
	concentration := nums[0]
	ph := -math.Log10(concentration)

	return domain.SolutionRecord{
		Solution: []string{
			fmt.Sprintf("Step 1: Given [H+] = %s M", formatNum(concentration)),
			"Step 2: Use pH formula: pH = -log₁₀[H⁺]",
			fmt.Sprintf("Step 3: Calculate: pH = -log₁₀(%s) = %.2f", formatNum(concentration), ph),
		},
		Explanation: []string{
			"pH is a measure of hydrogen ion concentration in a solution.",
			"pH scale ranges from 0 (very acidic) to 14 (very basic), 7 is neutral.",
		},
		FinalAnswer:     fmt.Sprintf("pH = %.2f", ph),
		Method:          "pH Formula",
		WhyThisWorks:    "The logarithmic scale allows us to express very wide ranges of acidity. Each pH unit represents a 10-fold change in [H⁺].",
		HowItIsPossible: "The negative log transforms the small decimal concentrations into manageable numbers.",
		Reasons: []string{
			"Important in biology and medicine",
			"Used in water quality testing",
			"Essential in chemical processes",
		},
		Resources: e.resources[domain.SubjectChemistry],
	}
}

func (e *Engine) solveMolarMass(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the chemical formula of the compound",
			"Step 2: Add atomic masses of all elements (from periodic table)",
			"Step 3: The sum gives molar mass in g/mol",
		},
		Explanation: []string{
			"Molar mass is the mass of one mole of a substance.",
			"It's expressed in grams per mole (g/mol) and equals the molecular weight.",
		},
		FinalAnswer:     "Molar mass depends on the chemical formula",
		Method:          "Molar Mass Calculation",
		WhyThisWorks:    "One mole contains Avogadro's number (6.022 × 10²³) of particles, and the molar mass equals the atomic/molecular weight in grams.",
		HowItIsPossible: "By adding up the atomic masses from the periodic table.",
		Reasons: []string{
			"Used in stoichiometry",
			"Essential for conversions",
			"Important in solution preparation",
		},
		Resources: e.resources[domain.SubjectChemistry],
	}
}

func (e *Engine) solveBalancing(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Write the unbalanced equation",
			"Step 2: Count atoms of each element on both sides",
			"Step 3: Add coefficients to balance atoms",
			"Step 4: Verify all atoms are balanced",
		},
		Explanation: []string{
			"Chemical equations must obey the Law of Conservation of Mass.",
			"Atoms cannot be created or destroyed in a chemical reaction.",
		},
		FinalAnswer:     "Balanced equation shows equal atoms on both sides",
		Method:          "Equation Balancing",
		WhyThisWorks:    "The total mass of reactants equals total mass of products (Lavoisier's Law).",
		HowItIsPossible: "By adjusting coefficients (not subscripts), we balance atoms without changing the actual compounds.",
		Reasons: []string{
			"Essential for stoichiometric calculations",
			"Required for predicting yields",
			"Fundamental to chemistry",
		},
		Resources: e.resources[domain.SubjectChemistry],
	}
}

func (e *Engine) solvePeriodicTable(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the element's position (group and period)",
			"Step 2: Use periodic trends to predict properties",
			"Step 3: Consider electron configuration",
		},
		Explanation: []string{
			"The periodic table organizes elements by atomic number and properties.",
			"Elements in the same group have similar chemical properties.",
		},
		FinalAnswer:     "Properties can be predicted from position in periodic table",
		Method:          "Periodic Law Analysis",
		WhyThisWorks:    "Elements are arranged by increasing atomic number, revealing periodic patterns in properties.",
		HowItIsPossible: "Electron configuration determines chemical behavior, and it varies periodically with atomic number.",
		Reasons: []string{
			"Predicts chemical behavior",
			"Organizes all known elements",
			"Foundation of chemistry",
		},
		Resources: e.resources[domain.SubjectChemistry],
	}
}
