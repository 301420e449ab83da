// SPDX-License-Identifier: MIT

// Package function binds an expression to one free variable so it can be
// sampled as f(x).
//
// Every Function owns a private evaluator.Evaluator, and with it a private
// cache. Two Functions built from the same equation never share results;
// create one per use site (one per integration, per derivative, per scan)
// and drop it afterwards.
//
//	f := function.New("x^2-3")
//	y, err := f.At(0.5) // -2.75
//
// A NaN or ±Inf from At means "undefined at this point" and is not an
// error. An error means the equation itself cannot be reduced.
package function
