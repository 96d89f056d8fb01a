// Package domain defines the core types for the Tutor Engine.
package domain

// Subject identifies a question domain handled by the engine.
type Subject string

const (
	SubjectMathematics     Subject = "mathematics"
	SubjectPhysics         Subject = "physics"
	SubjectChemistry       Subject = "chemistry"
	SubjectBiology         Subject = "biology"
	SubjectSocialScience   Subject = "social_science"
	SubjectEconomics       Subject = "economics"
	SubjectHealth          Subject = "health"
	SubjectComputerScience Subject = "computer_science"
	SubjectGeneral         Subject = "general"
)

// Resource is a curated reference link attached to every solution.
type Resource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// SolutionRecord is the canonical output of every domain solver.
// Every field is always populated, possibly with fallback text; a solver
// never returns a partial record.
type SolutionRecord struct {
	Solution        []string   `json:"solution"`
	Explanation     []string   `json:"explanation"`
	FinalAnswer     string     `json:"final_answer"`
	Method          string     `json:"method"`
	WhyThisWorks    string     `json:"why_this_works"`
	HowItIsPossible string     `json:"how_it_is_possible"`
	Reasons         []string   `json:"reasons"`
	Resources       []Resource `json:"resources"`
	DetectedSubject Subject    `json:"detected_subject,omitempty"`
	Confidence      float64    `json:"confidence"`
}

// ResultType categorizes a calculation result.
type ResultType string

const (
	ResultBasic    ResultType = "basic"
	ResultFunction ResultType = "function"
	ResultExponent ResultType = "exponent"
	ResultComplex  ResultType = "complex"
	ResultError    ResultType = "error"
)

// CalculationResult is the output of the expression evaluator.
// Expression always echoes the original, un-normalized input. On success,
// Result holds an int64, float64, or a string rendering of a complex value;
// on failure it is absent and Error carries a human-readable message.
type CalculationResult struct {
	Success    bool       `json:"success"`
	Expression string     `json:"expression"`
	Result     any        `json:"result,omitempty"`
	Error      string     `json:"error,omitempty"`
	Type       ResultType `json:"type"`
}

// EquationType categorizes an equation solution.
type EquationType string

const (
	EquationLinear    EquationType = "linear"
	EquationQuadratic EquationType = "quadratic"
	EquationError     EquationType = "error"
)

// AllRealNumbers is the sentinel solution for identities such as 0 = 0.
const AllRealNumbers = "all real numbers"

// EquationSolution is the output of the equation solver. Solutions holds
// float64 roots, string renderings of complex roots, or the single sentinel
// AllRealNumbers. It is empty exactly when the equation is a contradiction.
// A, B, C, and Discriminant are populated for quadratics only.
type EquationSolution struct {
	Success      bool         `json:"success"`
	Equation     string       `json:"equation"`
	Type         EquationType `json:"type"`
	Solutions    []any        `json:"solutions"`
	Explanation  string       `json:"explanation,omitempty"`
	A            *float64     `json:"a,omitempty"`
	B            *float64     `json:"b,omitempty"`
	C            *float64     `json:"c,omitempty"`
	Discriminant *float64     `json:"discriminant,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// ConversionResult is the output of a unit conversion.
type ConversionResult struct {
	Success          bool     `json:"success"`
	Value            float64  `json:"value"`
	FromUnit         string   `json:"from_unit"`
	ToUnit           string   `json:"to_unit"`
	Result           float64  `json:"result,omitempty"`
	ConversionFactor float64  `json:"conversion_factor,omitempty"`
	Formula          string   `json:"formula,omitempty"`
	AvailableUnits   []string `json:"available_units,omitempty"`
	Error            string   `json:"error,omitempty"`
	Type             string   `json:"type"`
}

// TipResult is the output of a tip calculation.
type TipResult struct {
	Success       bool    `json:"success"`
	BillAmount    float64 `json:"bill_amount,omitempty"`
	TipPercentage float64 `json:"tip_percentage,omitempty"`
	TipAmount     float64 `json:"tip_amount,omitempty"`
	TotalAmount   float64 `json:"total_amount,omitempty"`
	Error         string  `json:"error,omitempty"`
	Type          string  `json:"type"`
}

// PercentageResult is the output of a percentage calculation.
type PercentageResult struct {
	Success    bool    `json:"success"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Result     float64 `json:"result"`
	Formula    string  `json:"formula"`
	Type       string  `json:"type"`
}

// MathHelpResult is the output of a formula reference lookup.
type MathHelpResult struct {
	Success         bool                         `json:"success"`
	Topic           string                       `json:"topic"`
	Formulas        map[string]string            `json:"formulas,omitempty"`
	MatchingTopics  map[string]map[string]string `json:"matching_topics,omitempty"`
	AvailableTopics []string                     `json:"available_topics,omitempty"`
	RelatedTopics   []string                     `json:"related_topics,omitempty"`
	Error           string                       `json:"error,omitempty"`
	Type            string                       `json:"type"`
}

// SolveRecord is a persisted row of the solve history.
type SolveRecord struct {
	ID          string  `json:"id"`
	Question    string  `json:"question"`
	Subject     Subject `json:"subject"`
	Confidence  float64 `json:"confidence"`
	FinalAnswer string  `json:"final_answer"`
	Method      string  `json:"method"`
	CreatedAt   int64   `json:"created_at"`
}

// CalcRecord is a persisted row of the calculator history.
type CalcRecord struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Success   bool   `json:"success"`
	CreatedAt int64  `json:"created_at"`
}
