package solver

import (
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`-?\d+\.?\d*`)

// ExtractNumbers pulls every numeric literal out of free text, left to
// right. Downstream formulas consume these positionally (first number is
// the first operand), which is a documented approximation: a question that
// phrases its numbers out of the expected order gets a wrong answer.
func ExtractNumbers(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	var numbers []float64
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, v)
	}
	return numbers
}

// formatNum renders a float the way a person would write it: no trailing
// zeros, 5.0 as "5".
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
