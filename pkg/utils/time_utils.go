package utils

import (
	"math"
	"time"
)

// Records are stamped in unix seconds.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatUnixRFC3339 renders an epoch value in seconds as RFC3339 UTC.
// Returns "" if t<=0 to let callers decide how to render.
func FormatUnixRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}

// RoundPremium rounds half away from zero to two decimals.
func RoundPremium(v float64) float64 {
	return math.Round(v*100) / 100
}
