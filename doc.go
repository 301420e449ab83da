// Package mathengine is a small numerical toolkit for single-variable
// equations written as plain text, from expression evaluation to
// integration, differentiation and extrema search.
//
// 🚀 What is mathengine?
//
//	A string-rewriting evaluator plus the numerical methods built on it:
//		• Evaluation: + - * / ^, sin cos tan asin acos atan abs sqrt ln e, pi
//		• Functions: an equation bound to a free variable, f(x) on demand
//		• Differentiation: five-point central differences, tangent & normal lines
//		• Quadrature: mid-ordinate, trapezium and Simpson rules with formula strings
//		• Extrema: fixed-step derivative scan for local maxima and minima
//
// ✨ Why choose mathengine?
//
//   - Text in, number out – equations arrive as strings from users or tools
//   - Deterministic – results are formatted to 8 decimals between rewrites
//   - Cancellable – long scans and integrations honour context.Context
//   - Served anywhere – cobra CLI and an MCP stdio server share one config
//
// Under the hood, everything is organized under these subpackages:
//
//	evaluator/  - expression reduction, operator table, result cache
//	function/   - equations bound to a variable, the Evaluable interface
//	derivative/ - CentralDifferenceMethod, Tangent
//	quadrature/ - MidOrdinate, Trapezium, Simpson, FormulaString
//	extrema/    - FindExtrema with progress and logging options
//	internal/   - config (YAML), logging (slog), MCP tools and server
//	cmd/        - the mathengine command
//
// Quick example:
//
//	f := function.New("x^2-3")
//	y, _ := f.At(2)                    // 1
//	m, _ := derivative.First(f, 2)     // ≈ 4
//	r, _ := quadrature.Integrate(ctx, f, 0, 3, 6, quadrature.KindSimpson) // 0
//
//	go install github.com/katalvlaran/mathengine/cmd/mathengine@latest
package mathengine
