// SPDX-License-Identifier: MIT

package partition

import "log/slog"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds optional settings shared by every partition entry point.
// The zero value is not used directly; gatherOptions fills defaults.
type Options struct {
	logger *slog.Logger
}

// WithLogger routes debug events to l. A nil l restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: discardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
