package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPBlocked(t *testing.T) {
	tests := []struct {
		name    string
		ip      string
		rules   []string
		blocked bool
	}{
		{
			name:    "exact match",
			ip:      "203.0.113.7",
			rules:   []string{"203.0.113.7"},
			blocked: true,
		},
		{
			name:    "inside cidr range",
			ip:      "10.0.0.5",
			rules:   []string{"10.0.0.0/8"},
			blocked: true,
		},
		{
			name:    "outside cidr range",
			ip:      "11.0.0.5",
			rules:   []string{"10.0.0.0/8"},
			blocked: false,
		},
		{
			name:    "malformed rule never matches",
			ip:      "10.0.0.5",
			rules:   []string{"not-a-cidr"},
			blocked: false,
		},
		{
			name:    "malformed rule does not mask later rules",
			ip:      "10.0.0.5",
			rules:   []string{"not-a-cidr", "10.0.0.0/8"},
			blocked: true,
		},
		{
			name:    "malformed candidate fails closed",
			ip:      "not-an-ip",
			rules:   []string{"10.0.0.0/8"},
			blocked: false,
		},
		{
			name:    "malformed candidate still matches exact rule",
			ip:      "not-an-ip",
			rules:   []string{"not-an-ip"},
			blocked: true,
		},
		{
			name:    "empty rules",
			ip:      "10.0.0.5",
			rules:   nil,
			blocked: false,
		},
		{
			name:    "ipv6 exact match",
			ip:      "2001:db8::1",
			rules:   []string{"2001:db8::1"},
			blocked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.blocked, IPBlocked(tt.ip, tt.rules))
			})
		})
	}
}
