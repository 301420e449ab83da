// SPDX-License-Identifier: MIT

package extrema

import "log/slog"

const panicIntervalInvalid = "extrema: WithProgressInterval: k must be > 0"

// Option configures FindExtrema.
type Option func(*options)

type options struct {
	progress Progress
	interval int
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{interval: DefaultProgressInterval}
}

// WithProgress installs a callback run every progress interval steps.
func WithProgress(fn Progress) Option {
	return func(o *options) { o.progress = fn }
}

// WithProgressInterval sets the steps between progress callbacks. Panics
// when k <= 0.
func WithProgressInterval(k int) Option {
	if k <= 0 {
		panic(panicIntervalInvalid)
	}

	return func(o *options) { o.interval = k }
}

// WithLogger sends debug records for each accepted extremum to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
