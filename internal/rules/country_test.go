package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountryBlocked(t *testing.T) {
	tests := []struct {
		name    string
		country string
		rules   []string
		blocked bool
	}{
		{
			name:    "exact match ignoring case",
			country: "France",
			rules:   []string{"france"},
			blocked: true,
		},
		{
			name:    "rule contained in resolved name",
			country: "United States of America",
			rules:   []string{"United States"},
			blocked: true,
		},
		{
			name:    "resolved name contained in rule",
			country: "Korea",
			rules:   []string{"South Korea"},
			blocked: true,
		},
		{
			name:    "no match",
			country: "Germany",
			rules:   []string{"France", "Spain"},
			blocked: false,
		},
		{
			name:    "unknown country never blocks",
			country: "Inconnu",
			rules:   []string{"France", "Inconnu"},
			blocked: false,
		},
		{
			name:    "empty country never blocks",
			country: "",
			rules:   []string{"France"},
			blocked: false,
		},
		{
			name:    "empty rule entries are skipped",
			country: "France",
			rules:   []string{"", "  "},
			blocked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blocked, CountryBlocked(tt.country, tt.rules))
		})
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, Expired(nil, now))
	assert.True(t, Expired(&past, now))
	assert.False(t, Expired(&future, now))
	assert.False(t, Expired(&now, now))
}
