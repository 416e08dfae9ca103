package storage

import "time"

// LinkRecord is the persisted unit of redirection.
type LinkRecord struct {
	ID               string     `json:"uuid"`
	ShortCode        string     `json:"short_code"`
	CustomCode       string     `json:"custom_code,omitempty"`
	OriginalURL      string     `json:"original_url"`
	PasswordHash     string     `json:"-"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	DirectLink       bool       `json:"direct_link"`
	BlockedCountries []string   `json:"blocked_countries,omitempty"`
	BlockedIPs       []string   `json:"blocked_ips,omitempty"`
	Clicks           int64      `json:"clicks"`
	LastClickedAt    *time.Time `json:"last_clicked_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ClickRecord is one accepted visit, owned by its link.
type ClickRecord struct {
	ID        string    `json:"uuid"`
	LinkID    string    `json:"link_id"`
	CreatedAt time.Time `json:"created_at"`
	Device    string    `json:"device,omitempty"`
	Browser   string    `json:"browser,omitempty"`
	OS        string    `json:"os,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	IP        string    `json:"ip,omitempty"`
	Country   string    `json:"country,omitempty"`
	City      string    `json:"city,omitempty"`
}
