package solver

import "github.com/anthropics/tutor-engine/internal/domain"

func (e *Engine) economicsRules() []rule {
	return []rule{
		{anyOf("demand", "supply"), e.solveDemandSupply},
		{anyOf("gdp"), e.solveGDP},
		{anyOf("inflation"), e.solveInflation},
	}
}

func (e *Engine) solveDemandSupply(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the economic concept (demand/supply)",
			"Step 2: Analyze factors affecting demand/supply",
			"Step 3: Consider equilibrium and market forces",
		},
		Explanation: []string{
			"Demand is the willingness and ability to buy at various prices.",
			"Supply is the willingness to sell at various prices.",
			"Market equilibrium occurs where demand equals supply.",
		},
		FinalAnswer:     "Price is determined by interaction of demand and supply",
		Method:          "Demand-Supply Analysis",
		WhyThisWorks:    "Buyers and sellers interact in markets to determine prices and quantities.",
		HowItIsPossible: "Law of demand (inverse relationship) and law of supply (direct relationship).",
		Reasons: []string{
			"Foundation of microeconomics",
			"Explains price formation",
			"Helps predict market behavior",
		},
		Resources: e.resources[domain.SubjectEconomics],
	}
}

func (e *Engine) solveGDP(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: GDP = C + I + G + (X-M)",
			"Step 2: C = Consumer spending",
			"Step 3: I = Investment",
			"Step 4: G = Government spending",
			"Step 5: X-M = Exports minus Imports",
		},
		Explanation: []string{
			"GDP (Gross Domestic Product) measures total economic output.",
			"It represents the market value of all final goods and services produced.",
		},
		FinalAnswer:     "GDP measures economic size and health",
		Method:          "GDP Calculation",
		WhyThisWorks:    "GDP captures all economic activity within a country's borders.",
		HowItIsPossible: "By summing all expenditures or all incomes in an economy.",
		Reasons: []string{
			"Standard measure of economic health",
			"Used for international comparisons",
			"Guides policy decisions",
		},
		Resources: e.resources[domain.SubjectEconomics],
	}
}

func (e *Engine) solveInflation(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Inflation = (Current Price Index - Base Price Index) / Base × 100",
			"Step 2: Common measures: CPI, GDP deflator",
			"Step 3: Effects: purchasing power decreases",
		},
		Explanation: []string{
			"Inflation is the rate at which prices rise over time.",
			"It reduces the purchasing power of money.",
		},
		FinalAnswer:     "Inflation measures price level changes",
		Method:          "Inflation Calculation",
		WhyThisWorks:    "When money supply grows faster than output, prices rise.",
		HowItIsPossible: "Through too much money chasing too few goods.",
		Reasons: []string{
			"Affects interest rates",
			"Impacts savings and investments",
			"Important for monetary policy",
		},
		Resources: e.resources[domain.SubjectEconomics],
	}
}
