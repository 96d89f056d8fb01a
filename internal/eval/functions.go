package eval

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// constants and functions form the entire evaluation namespace. Both tables
// are package-level and never written after init, so concurrent callers
// share them safely and no call can extend the namespace.
var constants = map[string]complex128{
	"pi": complex(math.Pi, 0),
	"e":  complex(math.E, 0),
}

type evalFunc func(name string, args []complex128) (complex128, error)

var functions = map[string]evalFunc{
	"abs":       fn1(func(v complex128) (complex128, error) { return complex(cmplx.Abs(v), 0), nil }),
	"sqrt":      fn1(wrapC(cmplx.Sqrt)),
	"sin":       fn1(wrapC(cmplx.Sin)),
	"cos":       fn1(wrapC(cmplx.Cos)),
	"tan":       fn1(wrapC(cmplx.Tan)),
	"asin":      fn1(wrapC(cmplx.Asin)),
	"acos":      fn1(wrapC(cmplx.Acos)),
	"atan":      fn1(wrapC(cmplx.Atan)),
	"sinh":      fn1(wrapC(cmplx.Sinh)),
	"cosh":      fn1(wrapC(cmplx.Cosh)),
	"tanh":      fn1(wrapC(cmplx.Tanh)),
	"exp":       fn1(wrapC(cmplx.Exp)),
	"ln":        fn1(logNatural),
	"log10":     fn1(logBase10),
	"log":       logFn,
	"pow":       powFn,
	"floor":     fnReal1(math.Floor),
	"ceil":      fnReal1(math.Ceil),
	"degrees":   fnReal1(func(v float64) float64 { return v * 180 / math.Pi }),
	"radians":   fnReal1(func(v float64) float64 { return v * math.Pi / 180 }),
	"round":     roundFn,
	"factorial": factorialFn,
	"gcd":       gcdFn,
}

func wrapC(f func(complex128) complex128) func(complex128) (complex128, error) {
	return func(v complex128) (complex128, error) { return f(v), nil }
}

func fn1(f func(complex128) (complex128, error)) evalFunc {
	return func(name string, args []complex128) (complex128, error) {
		if len(args) != 1 {
			return 0, argCountErr(name, "1", len(args))
		}
		return f(args[0])
	}
}

func fnReal1(f func(float64) float64) evalFunc {
	return func(name string, args []complex128) (complex128, error) {
		if len(args) != 1 {
			return 0, argCountErr(name, "1", len(args))
		}
		v, err := realArg(args[0], name)
		if err != nil {
			return 0, err
		}
		return complex(f(v), 0), nil
	}
}

func logNatural(v complex128) (complex128, error) {
	if v == 0 {
		return 0, domain.NewEngineError(domain.ErrExpressionDomain.Code, "log of zero is undefined")
	}
	return cmplx.Log(v), nil
}

func logBase10(v complex128) (complex128, error) {
	if v == 0 {
		return 0, domain.NewEngineError(domain.ErrExpressionDomain.Code, "log of zero is undefined")
	}
	return cmplx.Log10(v), nil
}

// logFn accepts log(x) for the natural logarithm or log(x, base).
func logFn(name string, args []complex128) (complex128, error) {
	switch len(args) {
	case 1:
		return logNatural(args[0])
	case 2:
		num, err := logNatural(args[0])
		if err != nil {
			return 0, err
		}
		den, err := logNatural(args[1])
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, domain.NewEngineError(domain.ErrExpressionDomain.Code, "log base 1 is undefined")
		}
		return num / den, nil
	default:
		return 0, argCountErr(name, "1 or 2", len(args))
	}
}

func powFn(name string, args []complex128) (complex128, error) {
	if len(args) != 2 {
		return 0, argCountErr(name, "2", len(args))
	}
	if args[0] == 0 && real(args[1]) < 0 {
		return 0, domain.ErrDivisionByZero
	}
	return cmplx.Pow(args[0], args[1]), nil
}

// roundFn accepts round(x) or round(x, digits).
func roundFn(name string, args []complex128) (complex128, error) {
	if len(args) != 1 && len(args) != 2 {
		return 0, argCountErr(name, "1 or 2", len(args))
	}
	v, err := realArg(args[0], name)
	if err != nil {
		return 0, err
	}
	digits := 0.0
	if len(args) == 2 {
		digits, err = realArg(args[1], name)
		if err != nil {
			return 0, err
		}
		if digits != math.Trunc(digits) {
			return 0, domain.NewEngineError(domain.ErrBadArgument.Code, "round digits must be an integer")
		}
	}
	shift := math.Pow(10, digits)
	return complex(math.Round(v*shift)/shift, 0), nil
}

func factorialFn(name string, args []complex128) (complex128, error) {
	if len(args) != 1 {
		return 0, argCountErr(name, "1", len(args))
	}
	v, err := realArg(args[0], name)
	if err != nil {
		return 0, err
	}
	if v < 0 || v != math.Trunc(v) {
		return 0, domain.NewEngineError(domain.ErrBadArgument.Code,
			"factorial requires a non-negative integer")
	}
	if v > 170 {
		return 0, domain.NewEngineError(domain.ErrExpressionDomain.Code,
			"factorial argument too large")
	}
	result := 1.0
	for i := 2.0; i <= v; i++ {
		result *= i
	}
	return complex(result, 0), nil
}

func gcdFn(name string, args []complex128) (complex128, error) {
	if len(args) != 2 {
		return 0, argCountErr(name, "2", len(args))
	}
	a, err := intArg(args[0], name)
	if err != nil {
		return 0, err
	}
	b, err := intArg(args[1], name)
	if err != nil {
		return 0, err
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return complex(float64(a), 0), nil
}

// realArg rejects arguments with a meaningful imaginary part.
func realArg(v complex128, name string) (float64, error) {
	if math.Abs(imag(v)) > 1e-9 {
		return 0, domain.NewEngineError(domain.ErrBadArgument.Code,
			fmt.Sprintf("%s requires a real argument", name))
	}
	return real(v), nil
}

func intArg(v complex128, name string) (int64, error) {
	r, err := realArg(v, name)
	if err != nil {
		return 0, err
	}
	if r != math.Trunc(r) {
		return 0, domain.NewEngineError(domain.ErrBadArgument.Code,
			fmt.Sprintf("%s requires integer arguments", name))
	}
	return int64(r), nil
}

func argCountErr(name, want string, got int) error {
	return domain.NewEngineError(domain.ErrBadArgument.Code,
		fmt.Sprintf("%s expects %s argument(s), got %d", name, want, got))
}
