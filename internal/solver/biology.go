package solver

import "github.com/anthropics/tutor-engine/internal/domain"

func (e *Engine) biologyRules() []rule {
	return []rule{
		{anyOf("cell", "mitochondria", "nucleus"), e.solveCellBiology},
		{anyOf("dna", "genetics", "gene"), e.solveGenetics},
		{anyOf("photosynthesis"), e.solvePhotosynthesis},
		{anyOf("respiration"), e.solveRespiration},
		{anyOf("ecosystem", "food chain"), e.solveEcosystem},
	}
}

func (e *Engine) solveCellBiology(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the cell structure or process involved",
			"Step 2: Understand its function in the cell",
			"Step 3: Connect to cellular processes and energy flow",
		},
		Explanation: []string{
			"The cell is the basic unit of life.",
			"Different organelles have specific functions: nucleus (DNA), mitochondria (energy), ribosomes (protein synthesis), etc.",
		},
		FinalAnswer:     "Cell structures work together for life processes",
		Method:          "Cell Biology Analysis",
		WhyThisWorks:    "Cells are organized systems where each part contributes to survival and function.",
		HowItIsPossible: "Through evolution, cells developed specialized structures for different functions.",
		Reasons: []string{
			"All living things are made of cells",
			"Cell theory is fundamental to biology",
			"Understanding cells is key to medicine",
		},
		Resources: e.resources[domain.SubjectBiology],
	}
}

func (e *Engine) solveGenetics(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify the genetic concept or problem",
			"Step 2: Apply principles of inheritance",
			"Step 3: Consider Mendel's laws or molecular genetics",
		},
		Explanation: []string{
			"DNA carries genetic information in genes.",
			"Genes are passed from parents to offspring following specific patterns.",
		},
		FinalAnswer:     "Genetic information determines traits",
		Method:          "Genetic Analysis",
		WhyThisWorks:    "DNA sequence determines protein synthesis, which determines traits. Inheritance follows predictable patterns.",
		HowItIsPossible: "Through replication, transcription, and translation, genetic information is expressed.",
		Reasons: []string{
			"Explains inheritance and variation",
			"Basis for genetic diseases",
			"Important for biotechnology",
		},
		Resources: e.resources[domain.SubjectBiology],
	}
}

func (e *Engine) solvePhotosynthesis(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify inputs: CO₂ + H₂O + Light → Output",
			"Step 2: Light reactions: Chlorophyll absorbs light energy",
			"Step 3: Dark reactions (Calvin cycle): CO₂ is fixed into glucose",
			"Step 4: Overall: 6CO₂ + 6H₂O + light → C₆H₁₂O₆ + 6O₂",
		},
		Explanation: []string{
			"Photosynthesis converts light energy into chemical energy (glucose).",
			"It occurs in chloroplasts using chlorophyll to capture light.",
		},
		FinalAnswer:     "Produces glucose and oxygen from carbon dioxide and water",
		Method:          "Photosynthesis Analysis",
		WhyThisWorks:    "Plants convert solar energy into chemical energy through a series of enzyme-catalyzed reactions.",
		HowItIsPossible: "Chlorophyll absorbs light photons, exciting electrons that drive the synthesis of ATP and NADPH.",
		Reasons: []string{
			"Basis of food chains",
			"Produces oxygen we breathe",
			"Important for climate regulation",
		},
		Resources: e.resources[domain.SubjectBiology],
	}
}

func (e *Engine) solveRespiration(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify type: Aerobic (with O₂) or Anaerobic (without O₂)",
			"Step 2: Aerobic: C₆H₁₂O₆ + 6O₂ → 6CO₂ + 6H₂O + ATP",
			"Step 3: Occurs in mitochondria",
			"Step 4: Produces 36-38 ATP per glucose",
		},
		Explanation: []string{
			"Cellular respiration releases energy from glucose.",
			"Aerobic respiration requires oxygen and produces more ATP.",
		},
		FinalAnswer:     "Breaks down glucose to release energy (ATP)",
		Method:          "Cellular Respiration Analysis",
		WhyThisWorks:    "Glucose is oxidized, releasing electrons that power ATP synthesis through the electron transport chain.",
		HowItIsPossible: "A series of metabolic reactions (glycolysis, Krebs cycle, ETC) extract energy step by step.",
		Reasons: []string{
			"Provides energy for cells",
			"Essential for life",
			"Opposite of photosynthesis",
		},
		Resources: e.resources[domain.SubjectBiology],
	}
}

func (e *Engine) solveEcosystem(question string, nums []float64) domain.SolutionRecord {
	return domain.SolutionRecord{
		Solution: []string{
			"Step 1: Identify components: producers, consumers, decomposers",
			"Step 2: Trace energy flow from sun → producers → consumers",
			"Step 3: Each level loses energy as heat (10% rule)",
		},
		Explanation: []string{
			"Ecosystems include living (biotic) and non-living (abiotic) components.",
			"Energy flows through food chains, but matter is recycled.",
		},
		FinalAnswer:     "Energy flows, matter cycles in ecosystems",
		Method:          "Ecosystem Analysis",
		WhyThisWorks:    "Producers capture solar energy, consumers transfer it, decomposers recycle nutrients.",
		HowItIsPossible: "Through photosynthesis, biogeochemical cycles, and food webs.",
		Reasons: []string{
			"Maintains balance in nature",
			"Important for conservation",
			"Explains environmental relationships",
		},
		Resources: e.resources[domain.SubjectBiology],
	}
}
