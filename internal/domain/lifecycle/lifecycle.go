// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook, such as a database ping or a graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
