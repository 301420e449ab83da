// SPDX-License-Identifier: MIT

// Package evaluator reduces arithmetic and trigonometric expression text
// to a float64 by repeated textual rewriting.
//
// 🚀 What is it?
//
//	An Evaluator does not build a parse tree. It owns an ordered table of
//	operators, each carrying a regular expression over signed decimal
//	numerals, and rewrites the expression text in place:
//	  • innermost parentheses are reduced first (leftmost match),
//	  • then each operator, in table order, replaces every match with its
//	    result formatted to 8 decimal places,
//	  • a "--" artifact collapses to "+" after every pass,
//	  • the loop ends when the text is a single numeral.
//
// ✨ Key features:
//   - fixed operator order  ^ / * + -  then  asin acos atan sin cos tan abs sqrt ln e
//   - constants pi and euler, case- and whitespace-insensitive input
//   - per-instance result cache keyed by the normalised text
//   - NaN / ±Inf are ordinary results (division by zero, ln of a negative)
//
// ⚠️ Precedence is only approximated by table order. "2+3*4" gives 14, but
// "sin(x)+1" adds before it takes the sine; wrap sub-terms in parentheses.
//
// ⚙️ Usage:
//
//	ev := evaluator.New()
//	v, err := ev.Evaluate("2^3 + 1")           // 9
//	v, err = ev.EvaluateWith("x*2", evaluator.Bindings{"x": "4"})
//
// Variable substitution is a plain substring replacement: a variable named
// "e" also rewrites the "e" of the exponential operator and of "sec"-like
// tokens. WithBoundaryAwareSubstitution limits replacement to occurrences
// not touching a letter.
//
// An Evaluator is not safe for concurrent use; give each goroutine its own.
package evaluator
