package calc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// mathHelpTopics is the formula reference served by MathHelp.
var mathHelpTopics = map[string]map[string]string{
	"area": {
		"circle":        "Area = π × r² (r = radius)",
		"triangle":      "Area = ½ × base × height",
		"rectangle":     "Area = length × width",
		"square":        "Area = side²",
		"trapezoid":     "Area = ½ × (a + b) × h (a, b = parallel sides)",
		"parallelogram": "Area = base × height",
	},
	"perimeter": {
		"circle":    "Circumference = 2 × π × r or π × d",
		"triangle":  "Perimeter = a + b + c (sum of sides)",
		"rectangle": "Perimeter = 2 × (length + width)",
		"square":    "Perimeter = 4 × side",
	},
	"volume": {
		"sphere":   "Volume = (4/3) × π × r³",
		"cube":     "Volume = side³",
		"cylinder": "Volume = π × r² × h",
		"cone":     "Volume = (1/3) × π × r² × h",
		"pyramid":  "Volume = (1/3) × base_area × height",
	},
	"surface_area": {
		"sphere":   "Surface area = 4 × π × r²",
		"cube":     "Surface area = 6 × side²",
		"cylinder": "Surface area = 2πr² + 2πrh",
		"cone":     "Surface area = πr² + πr×s (s = slant height)",
	},
	"trigonometry": {
		"sine":           "sin(θ) = opposite / hypotenuse",
		"cosine":         "cos(θ) = adjacent / hypotenuse",
		"tangent":        "tan(θ) = opposite / adjacent",
		"pythagorean":    "a² + b² = c²",
		"law_of_sines":   "a/sin(A) = b/sin(B) = c/sin(C)",
		"law_of_cosines": "c² = a² + b² - 2ab×cos(C)",
	},
	"algebra": {
		"quadratic":       "x = (-b ± √(b²-4ac)) / 2a",
		"slope":           "m = (y₂-y₁) / (x₂-x₁)",
		"point_slope":     "y - y₁ = m(x - x₁)",
		"slope_intercept": "y = mx + b",
		"distance":        "d = √((x₂-x₁)² + (y₂-y₁)²)",
		"midpoint":        "M = ((x₁+x₂)/2, (y₁+y₂)/2)",
	},
	"statistics": {
		"mean":     "Sum of values / number of values",
		"median":   "Middle value when sorted (or average of middle two)",
		"mode":     "Most frequently occurring value",
		"std_dev":  "√(Σ(x-mean)² / n)",
		"variance": "Σ(x-mean)² / n",
	},
	"derivatives": {
		"constant": "d/dx(c) = 0",
		"power":    "d/dx(xⁿ) = n×xⁿ⁻¹",
		"sum":      "d/dx(f+g) = f' + g'",
		"product":  "d/dx(f×g) = f'g + fg'",
		"quotient": "d/dx(f/g) = (f'g - fg') / g²",
		"chain":    "d/dx(f(g(x))) = f'(g(x)) × g'(x)",
	},
	"integrals": {
		"constant": "∫c dx = cx + C",
		"power":    "∫xⁿ dx = xⁿ⁺¹/(n+1) + C (n≠-1)",
		"exp":      "∫e^x dx = e^x + C",
		"ln":       "∫1/x dx = ln|x| + C",
		"sin":      "∫sin(x) dx = -cos(x) + C",
		"cos":      "∫cos(x) dx = sin(x) + C",
	},
}

// MathHelp looks up formulas for a topic: exact topic match first, then
// partial topic-name overlap, then topics whose formula names mention the
// query. A miss still lists every available topic.
func (m *Manager) MathHelp(topic string) domain.MathHelpResult {
	topic = strings.ToLower(strings.TrimSpace(topic))

	if formulas, ok := mathHelpTopics[topic]; ok {
		return domain.MathHelpResult{
			Success:  true,
			Topic:    topic,
			Formulas: formulas,
			Type:     "help",
		}
	}

	matching := make(map[string]map[string]string)
	for key, formulas := range mathHelpTopics {
		if strings.Contains(key, topic) || strings.Contains(topic, key) {
			matching[key] = formulas
		}
	}
	if len(matching) > 0 {
		return domain.MathHelpResult{
			Success:        true,
			Topic:          topic,
			MatchingTopics: matching,
			Type:           "help",
		}
	}

	var related []string
	for key, formulas := range mathHelpTopics {
		for name := range formulas {
			if strings.Contains(name, topic) {
				related = append(related, key)
				break
			}
		}
	}
	sort.Strings(related)

	available := make([]string, 0, len(mathHelpTopics))
	for key := range mathHelpTopics {
		available = append(available, key)
	}
	sort.Strings(available)

	return domain.MathHelpResult{
		Success:         false,
		Topic:           topic,
		Error:           fmt.Sprintf("Topic '%s' not found", topic),
		AvailableTopics: available,
		RelatedTopics:   related,
		Type:            "error",
	}
}
