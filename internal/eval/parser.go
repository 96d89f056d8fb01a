package eval

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"

	"github.com/anthropics/tutor-engine/internal/domain"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokPower
	tokLParen
	tokRParen
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	val  float64
	pos  int
}

func tokenize(expr string) ([]token, error) {
	var toks []token
	i := 0
	n := len(expr)
	for i < n {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < n && (isDigit(expr[i]) || expr[i] == '.') {
				i++
			}
			text := expr[start:i]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, domain.WrapEngineError(domain.ErrInvalidSyntax.Code,
					fmt.Sprintf("bad number %q at position %d", text, start), err)
			}
			toks = append(toks, token{kind: tokNumber, text: text, val: v, pos: start})
		case isLetter(c):
			start := i
			for i < n && (isLetter(expr[i]) || isDigit(expr[i]) || expr[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: expr[start:i], pos: start})
		case c == '*':
			if i+1 < n && expr[i+1] == '*' {
				toks = append(toks, token{kind: tokPower, text: "**", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, text: "*", pos: i})
				i++
			}
		case c == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash, text: "/", pos: i})
			i++
		case c == '%':
			toks = append(toks, token{kind: tokPercent, text: "%", pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i++
		default:
			return nil, domain.NewEngineError(domain.ErrInvalidSyntax.Code,
				fmt.Sprintf("unexpected character %q at position %d", string(c), i))
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: n})
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
	vars map[string]complex128
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, domain.NewEngineError(domain.ErrInvalidSyntax.Code,
			fmt.Sprintf("expected %s at position %d, found %q", what, t.pos, t.text))
	}
	return p.next(), nil
}

// parseExpr handles addition and subtraction, the lowest precedence level.
func (p *parser) parseExpr() (complex128, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case tokMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (complex128, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case tokSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, domain.ErrDivisionByZero
			}
			left /= right
		case tokPercent:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			a, err := realArg(left, "%")
			if err != nil {
				return 0, err
			}
			b, err := realArg(right, "%")
			if err != nil {
				return 0, err
			}
			if b == 0 {
				return 0, domain.ErrDivisionByZero
			}
			left = complex(math.Mod(a, b), 0)
		default:
			return left, nil
		}
	}
}

// parseUnary binds looser than exponentiation so that -2**2 is -(2**2).
func (p *parser) parseUnary() (complex128, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower is right-associative: 2**3**2 is 2**(3**2).
func (p *parser) parsePower() (complex128, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	if p.peek().kind != tokPower {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if base == 0 && real(exp) < 0 {
		return 0, domain.ErrDivisionByZero
	}
	return cmplx.Pow(base, exp), nil
}

func (p *parser) parseAtom() (complex128, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		return complex(t.val, 0), nil
	case tokLParen:
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if _, err := p.expect(tokRParen, "closing parenthesis"); err != nil {
			return 0, err
		}
		return v, nil
	case tokIdent:
		p.next()
		return p.resolveIdent(t)
	case tokEOF:
		return 0, domain.NewEngineError(domain.ErrInvalidSyntax.Code, "unexpected end of expression")
	default:
		return 0, domain.NewEngineError(domain.ErrInvalidSyntax.Code,
			fmt.Sprintf("unexpected %q at position %d", t.text, t.pos))
	}
}

func (p *parser) resolveIdent(t token) (complex128, error) {
	if v, ok := p.vars[t.text]; ok {
		return v, nil
	}
	if v, ok := constants[t.text]; ok {
		return v, nil
	}
	fn, ok := functions[t.text]
	if !ok {
		return 0, domain.NewEngineError(domain.ErrUnknownSymbol.Code,
			fmt.Sprintf("unknown function or constant %q", t.text))
	}
	if p.peek().kind != tokLParen {
		return 0, domain.NewEngineError(domain.ErrInvalidSyntax.Code,
			fmt.Sprintf("%s requires arguments, e.g. %s(...)", t.text, t.text))
	}
	p.next()
	var args []complex128
	if p.peek().kind != tokRParen {
		for {
			v, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			args = append(args, v)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(tokRParen, "closing parenthesis"); err != nil {
		return 0, err
	}
	return fn(t.text, args)
}

// evaluate parses and evaluates a normalized expression with the given
// variable bindings. The bindings map may be nil.
func evaluate(normalized string, vars map[string]complex128) (complex128, error) {
	toks, err := tokenize(normalized)
	if err != nil {
		return 0, err
	}
	p := &parser{toks: toks, vars: vars}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, domain.NewEngineError(domain.ErrInvalidSyntax.Code,
			fmt.Sprintf("unexpected %q at position %d", t.text, t.pos))
	}
	if cmplx.IsInf(v) || cmplx.IsNaN(v) {
		return 0, domain.ErrExpressionDomain
	}
	return v, nil
}
