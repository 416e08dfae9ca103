package rules

import "time"

// Expired reports whether the link's expiry instant is strictly in the past.
// A nil expiry means the link never expires.
func Expired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && expiresAt.Before(now)
}
