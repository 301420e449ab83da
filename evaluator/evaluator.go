// SPDX-License-Identifier: MIT

package evaluator

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var errEmptyBinding = errors.New("empty binding key")

// Evaluator reduces expression strings to numbers and remembers every
// successful result for its own lifetime.
type Evaluator struct {
	operators []Operator
	cache     map[string]float64
	stats     CacheStats
	lower     cases.Caser
	opts      options
}

// New returns an Evaluator with the default operator table and an empty
// cache.
func New(opts ...Option) *Evaluator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ops := make([]Operator, len(defaultOperators))
	copy(ops, defaultOperators)

	return &Evaluator{
		operators: ops,
		cache:     make(map[string]float64),
		lower:     cases.Lower(language.Und),
		opts:      o,
	}
}

// Operators returns a copy of the rewrite table in application order.
func (e *Evaluator) Operators() []Operator {
	out := make([]Operator, len(e.operators))
	copy(out, e.operators)

	return out
}

// Stats reports cache hits, misses and the number of stored entries.
func (e *Evaluator) Stats() CacheStats {
	s := e.stats
	s.Entries = len(e.cache)

	return s
}

// Evaluate reduces expression to a number.
//
// A NaN or ±Inf result is returned without error; it marks a point where
// the expression is undefined. Only results that are finite are cached.
// Any other failure is an *EvaluationError wrapping ErrInvalidFunction.
func (e *Evaluator) Evaluate(expression string) (float64, error) {
	key := e.normalize(expression)
	if v, ok := e.cache[key]; ok {
		e.stats.Hits++
		return v, nil
	}
	e.stats.Misses++

	v, err := e.reduce(key)
	if err != nil {
		return 0, invalid(expression, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, nil
	}
	e.cache[key] = v

	return v, nil
}

// EvaluateWith substitutes every binding into expression and evaluates the
// result. Each occurrence of a key is replaced by "(" + value + ")"; keys
// are applied in ascending order.
func (e *Evaluator) EvaluateWith(expression string, bindings Bindings) (float64, error) {
	expr := e.lower.String(expression)

	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k == "" {
			return 0, invalid(expression, errEmptyBinding)
		}
		expr = e.substitute(expr, k, "("+bindings[k]+")")
	}

	return e.Evaluate(expr)
}

func (e *Evaluator) normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = e.lower.String(s)
	s = strings.ReplaceAll(s, "pi", piText)
	s = strings.ReplaceAll(s, "euler", eulerText)

	return s
}

func (e *Evaluator) substitute(expr, key, value string) string {
	if !e.opts.boundaryAware {
		return strings.ReplaceAll(expr, key, value)
	}

	var b strings.Builder
	for {
		i := strings.Index(expr, key)
		if i < 0 {
			b.WriteString(expr)
			return b.String()
		}
		end := i + len(key)
		if touchesLetter(expr, i, end) {
			b.WriteString(expr[:end])
		} else {
			b.WriteString(expr[:i])
			b.WriteString(value)
		}
		expr = expr[end:]
	}
}

func touchesLetter(s string, start, end int) bool {
	if start > 0 && isLetter(s[start-1]) {
		return true
	}

	return end < len(s) && isLetter(s[end])
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// reduce runs parenthesis removal and the operator table over a normalised
// expression and parses what is left.
func (e *Evaluator) reduce(expr string) (float64, error) {
	expr, err := e.removeParentheses(expr)
	if err != nil {
		return 0, err
	}
	expr = e.lower.String(expr)
	if v, ok := special(expr); ok {
		return v, nil
	}

	expr, err = e.searchOperators(expr)
	if err != nil {
		return 0, err
	}
	expr = e.lower.String(expr)
	if v, ok := special(expr); ok {
		return v, nil
	}

	if !numeralRegex.MatchString(expr) {
		return 0, fmt.Errorf("residue %q is not a numeral", expr)
	}

	return parseOperand(expr)
}

// special maps a lowercased NaN/Infinity sentinel anywhere in the text to
// its IEEE value.
func special(expr string) (float64, bool) {
	switch {
	case strings.Contains(expr, "nan"):
		return math.NaN(), true
	case strings.HasPrefix(expr, "-infinity"):
		return math.Inf(-1), true
	case strings.Contains(expr, "infinity"):
		return math.Inf(1), true
	}

	return 0, false
}

// removeParentheses reduces the innermost, leftmost parenthesised run until
// none is left. Every literal occurrence of that run is replaced at once.
func (e *Evaluator) removeParentheses(expr string) (string, error) {
	for m := parenthesisRegex.FindStringSubmatch(expr); m != nil; m = parenthesisRegex.FindStringSubmatch(expr) {
		inner, err := e.searchOperators(m[2])
		if err != nil {
			return "", err
		}
		expr = strings.ReplaceAll(expr, "("+m[2]+")", inner)
	}

	return expr, nil
}

// searchOperators applies each operator whose key occurs in expr, in table
// order.
func (e *Evaluator) searchOperators(expr string) (string, error) {
	var err error
	for _, op := range e.operators {
		if !strings.Contains(expr, op.Key) {
			continue
		}
		if expr, err = e.apply(op, expr); err != nil {
			return "", err
		}
	}

	return expr, nil
}

// apply replaces every match of op until the pattern stops matching, then
// collapses "--" into "+". Matches of one pass are found on the text as it
// was before that pass.
func (e *Evaluator) apply(op Operator, expr string) (string, error) {
	rewritten := false
	for pass := 0; ; pass++ {
		matches := op.Pattern.FindAllStringSubmatch(expr, -1)
		if len(matches) == 0 {
			break
		}
		if pass >= e.opts.maxPasses {
			return "", fmt.Errorf("%s: %w", op.Name, errRunaway)
		}
		rewritten = true

		for _, m := range matches {
			a, err := parseOperand(m[1])
			if err != nil {
				return "", err
			}
			var b float64
			if op.Arity == Binary {
				if b, err = parseOperand(m[2]); err != nil {
					return "", err
				}
			}
			expr = strings.ReplaceAll(expr, m[0], FormatNumeral(op.Apply(a, b)))
		}
	}
	if rewritten {
		expr = strings.ReplaceAll(expr, "--", "+")
	}

	return expr, nil
}
