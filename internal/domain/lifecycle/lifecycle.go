// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as graceful shutdown and
// startup connectivity checks.
const DefaultTimeout = 30 * time.Second
