// Package classify assigns free-text questions to a subject.
//
// Classification is keyword scoring: each subject carries a keyword list,
// a question scores one point per keyword it contains, and the best score
// wins. Ties go to the subject listed first in the table, so the ordering
// below is part of the contract.
package classify

import (
	"math"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// confidenceCap normalizes the winning score: five keyword hits count as
// full confidence.
const confidenceCap = 5.0

type pattern struct {
	subject  domain.Subject
	keywords []string
}

// patterns is scanned in order; matching is a case-sensitive substring
// test against the lowercased question.
var patterns = []pattern{
	{domain.SubjectMathematics, []string{
		"calculate", "solve", "equation", "algebra", "geometry", "arithmetic",
		"math", "add", "subtract", "multiply", "divide", "fraction", "decimal",
		"percentage", "profit", "loss", "interest", "average", "ratio", "proportion",
		"triangle", "circle", "area", "perimeter", "volume", "surface", "angle",
		"polynomial", "quadratic", "linear", "matrix", "determinant", "integral",
		"derivative", "differential", "limit", "series", "probability", "statistics",
		"mean", "median", "mode", "variance", "standard deviation", "permutation",
		"combination", "factor", "prime", "lcm", "gcd", "exponent", "root", "square",
		"cube", "logarithm", "trigonometry", "sine", "cosine", "tangent", "pythagoras",
	}},
	{domain.SubjectPhysics, []string{
		"physics", "force", "velocity", "acceleration", "motion", "newton", "gravity",
		"energy", "power", "work", "momentum", "impulse", "pressure", "density",
		"mass", "weight", "volume", "temperature", "heat", "thermodynamics",
		"wave", "frequency", "amplitude", "light", "reflection", "refraction",
		"optics", "electricity", "magnetism", "current", "voltage", "resistance",
		"capacitance", "inductance", "circuit", "magnetic", "field",
		"entropy", "kinetic", "potential", "mechanics", "quantum",
		"relativity", "nuclear", "atomic", "sound", "oscillation", "pendulum",
	}},
	{domain.SubjectChemistry, []string{
		"chemistry", "atom", "molecule", "element", "compound", "reaction",
		"bond", "ionic", "covalent", "metallic", "periodic", "table", "electron",
		"proton", "neutron", "valence", "oxidation", "reduction", "acid", "base",
		"salt", "ph", "indicator", "titration", "equilibrium", "kinetics",
		"thermochemistry", "electrochemistry", "organic", "inorganic", "polymer",
		"isomer", "functional group", "alcohol", "aldehyde", "ketone", "carboxylic",
		"amine", "ester", "amide", "catalyst", "enzyme", "solution", "concentration",
		"molarity", "molality", "colloid", "suspension", "solubility", "gas", "liquid",
		"solid", "plasma", "chemical equation", "stoichiometry", "mole", "avogadro",
	}},
	{domain.SubjectBiology, []string{
		"biology", "cell", "tissue", "organ", "system", "organism", "dna", "rna",
		"protein", "enzyme", "metabolism", "photosynthesis", "respiration",
		"mitosis", "meiosis", "genetics", "evolution", "ecosystem", "food chain",
		"nutrient", "carbohydrate", "lipid", "fat", "vitamin", "mineral",
		"digestion", "circulation", "blood", "heart", "lung", "brain", "neuron",
		"immune", "antibody", "antigen", "virus", "bacteria", "fungi", "plant",
		"animal", "human anatomy", "physiology", "homeostasis", "osmosis",
		"diffusion", "active transport", "passive transport", "cell membrane",
		"nucleus", "mitochondria", "chloroplast", "ribosome", "endoplasmic",
		"golgi", "lysosome", "chromosome", "gene", "allele", "mutation",
	}},
	{domain.SubjectSocialScience, []string{
		"history", "geography", "civics", "political", "society", "culture",
		"anthropology", "sociology", "psychology", "economics", "politics",
		"government", "democracy", "monarchy", "constitution", "law", "rights",
		"freedom", "revolution", "war", "peace", "treaty", "trade", "economy",
		"development", "poverty", "globalization", "urbanization", "migration",
		"population", "resource", "climate", "environment", "sustainability",
		"colonialism", "imperialism", "nationalism", "terrorism", "conflict",
		"diplomacy", "international", "organization", "religion", "belief",
		"tradition", "custom", "language", "art",
	}},
	{domain.SubjectEconomics, []string{
		"economics", "demand", "supply", "price", "cost", "value", "market",
		"equilibrium", "elasticity", "gdp", "gnp", "inflation", "deflation",
		"unemployment", "interest rate", "exchange rate", "trade", "tariff",
		"tax", "subsidy", "budget", "fiscal", "monetary", "policy", "bank",
		"investment", "saving", "consumption", "production", "distribution",
		"allocation", "resource", "opportunity cost", "scarcity", "utility",
		"profit", "revenue", "wage", "rent", "interest", "capital",
		"entrepreneur", "firm", "industry", "market structure", "monopoly",
		"oligopoly", "competition", "regulation", "deregulation", "globalization",
		"development", "growth", "sustainability", "poverty", "inequality",
	}},
	{domain.SubjectHealth, []string{
		"health", "disease", "illness", "symptom", "treatment", "medicine",
		"drug", "therapy", "surgery", "diagnosis", "prognosis", "prevention",
		"nutrition", "diet", "exercise", "fitness", "wellness", "mental health",
		"stress", "anxiety", "depression", "psychology", "counseling",
		"hospital", "clinic", "doctor", "nurse", "patient", "healthcare",
		"vaccine", "immunization", "infection", "bacterial", "viral", "parasitic",
		"cancer", "diabetes", "heart disease", "hypertension", "stroke",
		"asthma", "allergy", "autoimmune", "genetic", "hereditary", "chronic",
		"acute", "infectious", "contagious", "pandemic", "epidemic", "public health",
		"hygiene", "sanitation", "water", "air quality", "sleep", "rest",
	}},
	{domain.SubjectComputerScience, []string{
		"computer", "programming", "coding", "algorithm", "software", "hardware",
		"internet", "website", "app", "application", "database", "server", "cloud",
		"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift",
		"kotlin", "html", "css", "sql", "query", "data", "structure", "array",
		"list", "stack", "queue", "tree", "graph", "heap", "hash", "table",
		"sort", "search", "loop", "function", "class", "object", "method",
		"variable", "constant", "type", "string", "integer", "boolean", "float",
		"recursion", "iteration", "condition", "if", "else", "switch", "case",
		"machine learning", "ai", "artificial intelligence", "deep learning",
		"neural network", "data science", "big data", "analytics", "cybersecurity",
		"network", "protocol", "api", "framework", "library", "package",
	}},
}

// Detect returns the best-scoring subject for a question and a confidence
// in [0, 1]. Questions matching no keywords come back as general with zero
// confidence.
func Detect(question string) (domain.Subject, float64) {
	lower := strings.ToLower(question)

	best := domain.SubjectGeneral
	bestScore := 0
	for _, p := range patterns {
		score := 0
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = p.subject
			bestScore = score
		}
	}

	if bestScore == 0 {
		return domain.SubjectGeneral, 0
	}
	return best, math.Min(float64(bestScore)/confidenceCap, 1.0)
}
