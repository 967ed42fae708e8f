package meshx

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the package logger. Mirror matching logs a warning
// per vertex with no in-tolerance counterpart; traversal logs at debug
// level only.
func SetLogger(l *slog.Logger) {
	if l == nil {
		panic("meshx: nil logger")
	}
	logger = l
}
