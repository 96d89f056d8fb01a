package domain

import "fmt"

// EngineError is the unified error type for the engine.
// Each error has a numeric code and human-readable message.
type EngineError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("engine error %d: %s", e.Code, e.Message)
}

// NewEngineError creates a new EngineError.
func NewEngineError(code int, msg string) *EngineError {
	return &EngineError{Code: code, Message: msg}
}

// WrapEngineError creates an EngineError that includes a cause.
func WrapEngineError(code int, msg string, cause error) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf("%s: %v", msg, cause)}
}

// ---- Evaluator errors (-33010 to -33039) ----

var (
	ErrDivisionByZero   = &EngineError{Code: -33010, Message: "division by zero is not allowed"}
	ErrInvalidSyntax    = &EngineError{Code: -33011, Message: "invalid expression syntax"}
	ErrUnknownSymbol    = &EngineError{Code: -33012, Message: "unknown function or constant"}
	ErrBadArgument      = &EngineError{Code: -33013, Message: "invalid argument for function"}
	ErrEmptyExpression  = &EngineError{Code: -33014, Message: "expression is empty"}
	ErrExpressionDomain = &EngineError{Code: -33015, Message: "value outside function domain"}
)

// ---- Equation errors (-33040 to -33069) ----

var (
	ErrNoEquation      = &EngineError{Code: -33040, Message: "no equation found; expected a single '='"}
	ErrEquationFormat  = &EngineError{Code: -33041, Message: "invalid equation format"}
	ErrNotPolynomial   = &EngineError{Code: -33042, Message: "equation is not linear or quadratic in x"}
	ErrEquationEval    = &EngineError{Code: -33043, Message: "could not evaluate equation"}
)

// ---- Calculator / units errors (-33070 to -33099) ----

var (
	ErrUnsupportedConversion = &EngineError{Code: -33070, Message: "unit conversion not supported"}
	ErrNegativeAmount        = &EngineError{Code: -33071, Message: "amount cannot be negative"}
	ErrNegativePercentage    = &EngineError{Code: -33072, Message: "percentage cannot be negative"}
	ErrHelpTopicNotFound     = &EngineError{Code: -33073, Message: "help topic not found"}
)

// ---- Guard errors (-33100 to -33129) ----

var (
	ErrRateLimitExceeded = &EngineError{Code: -33100, Message: "rate limit exceeded"}
	ErrQuestionTooLong   = &EngineError{Code: -33101, Message: "question exceeds maximum length"}
	ErrEmptyQuestion     = &EngineError{Code: -33102, Message: "question is empty"}
)

// ---- Store / Config errors (-33130 to -33159) ----

var (
	ErrStoreInit     = &EngineError{Code: -33130, Message: "failed to initialize store"}
	ErrStoreQuery    = &EngineError{Code: -33131, Message: "store query failed"}
	ErrStoreWrite    = &EngineError{Code: -33132, Message: "store write failed"}
	ErrConfigInvalid = &EngineError{Code: -33136, Message: "invalid configuration"}
)
