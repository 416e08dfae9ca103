package rules

import "strings"

// UnknownCountry is what the geolocation layer reports when every provider
// failed. It never matches a block rule: blocking unknown locations would
// over-block on geolocation outages.
const UnknownCountry = "Inconnu"

// CountryBlocked reports whether the resolved country matches any blocklist
// entry. Matching is a case-insensitive substring test in both directions,
// which tolerates naming variance between providers and operator lists.
func CountryBlocked(country string, blockedCountries []string) bool {
	country = strings.TrimSpace(country)
	if country == "" || strings.EqualFold(country, UnknownCountry) || strings.EqualFold(country, "unknown") {
		return false
	}

	resolved := strings.ToLower(country)
	for _, rule := range blockedCountries {
		rule = strings.ToLower(strings.TrimSpace(rule))
		if rule == "" {
			continue
		}
		if strings.Contains(resolved, rule) || strings.Contains(rule, resolved) {
			return true
		}
	}
	return false
}
