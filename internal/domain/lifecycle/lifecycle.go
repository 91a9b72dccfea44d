// Package lifecycle holds shared process lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks of long-running components.
const DefaultTimeout = 10 * time.Second
