package main

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// progressInterval bounds the cadence of console progress updates so
// the hooks stay cheap even on million-word dictionaries.
const progressInterval = 100 * time.Millisecond

// newProgressLimiter returns the rate limiter shared by all console
// progress sinks.
func newProgressLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(progressInterval), 1)
}

// formatDuration renders a duration as "2h 3m 4s", dropping leading
// zero units.
func formatDuration(d time.Duration) string {
	s := int(d.Seconds())
	switch {
	case s >= 3600:
		return fmt.Sprintf("%dh %s", s/3600, formatDuration(time.Duration(s%3600)*time.Second))
	case s >= 60:
		return fmt.Sprintf("%dm %s", s/60, formatDuration(time.Duration(s%60)*time.Second))
	default:
		return fmt.Sprintf("%ds", s)
	}
}
