package preview

import (
	"fmt"
	"time"
)

// Bucket thresholds in whole seconds, evaluated in ascending order.
const (
	minuteSeconds = 60
	hourSeconds   = 3600
	daySeconds    = 86400
	weekSeconds   = 604800
	monthSeconds  = 2592000
	yearSeconds   = 31536000
)

// Relative renders a duration as a bucketed phrase like "3 days ago".
// Negative durations are treated via absolute value, so a future
// timestamp reads like a past one of the same magnitude. Counts are not
// pluralization-aware ("1 minutes ago"); both quirks are kept for
// compatibility with existing cache consumers and shell wrappers.
func Relative(d time.Duration) string {
	seconds := int64(d / time.Second)
	if seconds < 0 {
		seconds = -seconds
	}

	switch {
	case seconds < minuteSeconds:
		return fmt.Sprintf("%d seconds ago", seconds)
	case seconds < hourSeconds:
		return fmt.Sprintf("%d minutes ago", seconds/minuteSeconds)
	case seconds < daySeconds:
		return fmt.Sprintf("%d hours ago", seconds/hourSeconds)
	case seconds < weekSeconds:
		return fmt.Sprintf("%d days ago", seconds/daySeconds)
	case seconds < monthSeconds:
		return fmt.Sprintf("%d weeks ago", seconds/weekSeconds)
	case seconds < yearSeconds:
		return fmt.Sprintf("%d months ago", seconds/monthSeconds)
	default:
		return fmt.Sprintf("%d years ago", seconds/yearSeconds)
	}
}
