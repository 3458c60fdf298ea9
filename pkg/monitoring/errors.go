package monitoring

import "errors"

// ErrNotConfigured is returned by probes that have no target.
var ErrNotConfigured = errors.New("database not configured")
