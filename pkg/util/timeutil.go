package util

import "time"

// NowUTC exposes time.Now truncated to milliseconds, the resolution alert IDs
// and snapshot timestamps are rendered with.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
