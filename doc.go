// Package floatcalc implements a double-precision calculator for arithmetic
// expressions given as text.
//
// Expressions use numbers like 2, 0.5, or 1.5e-2; the operators + - * / ^;
// parentheses; the constants pi and e in any case; the functions sin, cos,
// tan, sqrt, log (natural), and pow(x, y); and single-letter variables. "^"
// is right-associative, so "2^3^2" is 512. A leading sign binds more tightly
// than "^", so "-2^2" is 4.
//
// IsValid checks an expression's structure cheaply, e.g. while a user types.
// Evaluate computes a result, and Parse lets an expression be evaluated many
// times with different variables. Results are always finite: division by zero,
// sqrt of a negative, log of a non-positive, and overflow are errors of kind
// KindDomain rather than NaN or infinity.
//
// Everything in the package is safe for concurrent use.
package floatcalc
