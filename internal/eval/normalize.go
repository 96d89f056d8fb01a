// Package eval implements the restricted arithmetic expression evaluator.
//
// Expressions are normalized (caret exponents, implicit multiplication),
// tokenized, and evaluated by a small recursive-descent parser over
// complex128. Only the names in the package function table resolve; there
// is no access to anything outside it.
package eval

import "strings"

// Normalize rewrites an expression into the canonical form the parser
// accepts: "^" becomes "**" and implicit multiplication is made explicit.
// The rules, in order:
//
//	2(3)   -> 2*(3)
//	(2)3   -> (2)*3
//	(2)(3) -> (2)*(3)
//	2x     -> 2*x
//
// A digit that terminates an identifier, as in log10(, never triggers the
// digit rules. Normalization is idempotent.
func Normalize(expression string) string {
	expr := strings.TrimSpace(strings.ReplaceAll(expression, "^", "**"))
	var out []byte
	n := len(expr)
	for i := 0; i < n; i++ {
		c := expr[i]
		out = append(out, c)

		// Peek at the next non-space byte.
		j := i + 1
		for j < n && expr[j] == ' ' {
			j++
		}
		if j >= n {
			break
		}
		next := expr[j]

		switch {
		case c == ')' && (next == '(' || isDigit(next)):
			out = append(out, '*')
		case isDigit(c) && (next == '(' || isLetter(next)) && !partOfIdentifier(expr, i):
			out = append(out, '*')
		}
	}
	return string(out)
}

// partOfIdentifier reports whether the digit at index i belongs to an
// identifier such as log10 rather than a numeric literal.
func partOfIdentifier(s string, i int) bool {
	j := i
	for j >= 0 && (isDigit(s[j]) || isLetter(s[j])) {
		j--
	}
	return isLetter(s[j+1])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
