package models

import "time"

// CreateLinkRequest represents a request to register a new short link.
type CreateLinkRequest struct {
	// URL is the destination to redirect to.
	URL string `json:"url"`

	// CustomCode is an optional alias that resolves alongside the
	// generated code.
	CustomCode string `json:"custom_code,omitempty"`

	// Password gates the link when non-empty; it is hashed at creation.
	Password string `json:"password,omitempty"`

	// ExpiresAt makes the link unresolvable once passed.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// DirectLink skips any interstitial confirmation.
	DirectLink bool `json:"direct_link,omitempty"`

	// BlockedCountries and BlockedIPs are operator-supplied deny lists.
	// IP entries may be exact addresses or CIDR ranges.
	BlockedCountries []string `json:"blocked_countries,omitempty"`
	BlockedIPs       []string `json:"blocked_ips,omitempty"`
}

// CreateLinkResponse represents the response containing the short link.
type CreateLinkResponse struct {
	// Result contains the absolute short URL.
	Result string `json:"result"`

	// Code is the generated short code.
	Code string `json:"code"`
}
