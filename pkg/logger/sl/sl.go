// Package sl holds small slog attribute helpers shared across the service.
package sl

import "log/slog"

// Err returns an attribute carrying the error text under the "error" key.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
