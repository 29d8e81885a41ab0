package floatcalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the errors returned by this package.
type ErrorKind int8

const (
	// KindNone is the kind of nil and of errors not from this package.
	KindNone ErrorKind = iota
	// KindLex is an unrecognized character or malformed number.
	KindLex
	// KindSyntax is a structural error: unbalanced parentheses, illegal
	// token adjacency, wrong function arity, or excessive nesting.
	KindSyntax
	// KindUnknownIdentifier is a name that is neither a constant, a
	// function, nor a supplied variable.
	KindUnknownIdentifier
	// KindDomain is an operation that is undefined for its operands or
	// whose result is not finite.
	KindDomain
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLex:
		return "lex"
	case KindSyntax:
		return "syntax"
	case KindUnknownIdentifier:
		return "unknown identifier"
	case KindDomain:
		return "domain"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Sentinel errors for use with errors.Is. Every error from this package
// matches exactly one of them.
var (
	ErrLex               = errors.New("floatcalc: lexical error")
	ErrSyntax            = errors.New("floatcalc: syntax error")
	ErrUnknownIdentifier = errors.New("floatcalc: unknown identifier")
	ErrDomain            = errors.New("floatcalc: domain error")
)

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	var k interface{ ErrorKind() ErrorKind }
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return KindNone
}

// syntaxError is embedded in each syntax error type to classify it.
type syntaxError struct{}

func (syntaxError) ErrorKind() ErrorKind {
	return KindSyntax
}

func (syntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// OperatorError is an error indicating an operator in a position where it
// cannot be used. It implements InputError.
type OperatorError struct {
	syntaxError
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
	// Unary is whether the operator was in a position where only a unary
	// operator is allowed.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" cannot be unary here")
	}
	return errpos(err.Col, "misplaced operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	syntaxError
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, or empty if there was none.
	Left string
	// Right is the closing parenthesis, or empty if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating an illegal use of a comma. It
// implements InputError.
type SeparatorError struct {
	syntaxError
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments or a function name used without an argument list. It implements
// InputError.
type CallError struct {
	syntaxError
	// Col is the position of the function name.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied. It is -1 if the
	// function name was not followed by an argument list.
	Len int
}

func (err *CallError) Error() string {
	if err.Len < 0 {
		return errpos(err.Col, "function "+err.Func+" must be followed by an argument list")
	}
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	syntaxError
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token that cannot follow the token
// before it, e.g. two adjacent numbers. It implements InputError.
type TokenError struct {
	syntaxError
	// Col is the position of the unexpected token.
	Col int
	// Text is the unexpected token.
	Text string
	// After is the token preceding it.
	After string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after "+strconv.Quote(err.After))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// DepthError is an error indicating parentheses or function calls nested
// more deeply than allowed. It implements InputError.
type DepthError struct {
	syntaxError
	// Col is the position of the open parenthesis exceeding the limit.
	Col int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "nesting exceeds maximum depth "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Col
}

// NameError is an error for an identifier that is not a constant, not a
// function, and not a supplied variable. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	if len(err.Name) == 1 {
		return errpos(err.Col, "undefined variable: "+strconv.Quote(err.Name))
	}
	return errpos(err.Col, "unknown identifier: "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

func (err *NameError) ErrorKind() ErrorKind {
	return KindUnknownIdentifier
}

func (err *NameError) Is(target error) bool {
	return target == ErrUnknownIdentifier
}

// DomainError is an error returned when an operation is applied to operands
// outside its domain or produces a value that is not finite. It implements
// InputError.
type DomainError struct {
	// Col is the position of the operator, function name, or operand.
	Col int
	// X is the out-of-domain argument, or the non-finite result if Arg is 0.
	X float64
	// Arg is the 1-based index of the argument, or 0 if the result is at
	// fault.
	Arg int
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	x := strconv.FormatFloat(err.X, 'g', -1, 64)
	if err.Arg == 0 {
		r := "non-finite value " + x
		if err.Func != "" {
			r += " from " + err.Func
		}
		return errpos(err.Col, r)
	}
	r := x + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	r += " (argument " + strconv.Itoa(err.Arg) + ")"
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}

func (err *DomainError) ErrorKind() ErrorKind {
	return KindDomain
}

func (err *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the rune at which the error was
	// detected.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*LexError)(nil)
)
