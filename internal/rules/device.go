package rules

import "strings"

// DeviceInfo derives the coarse device, browser and OS classification stored
// with each click. It is intentionally rough: analytics only needs buckets.
func DeviceInfo(userAgent string) (device, browser, os string) {
	agent := strings.ToLower(userAgent)

	switch {
	case strings.Contains(agent, "ipad") || strings.Contains(agent, "tablet"):
		device = "tablet"
	case strings.Contains(agent, "mobi") || strings.Contains(agent, "android") || strings.Contains(agent, "iphone"):
		device = "mobile"
	default:
		device = "desktop"
	}

	switch {
	case strings.Contains(agent, "edg/"):
		browser = "edge"
	case strings.Contains(agent, "opr/") || strings.Contains(agent, "opera"):
		browser = "opera"
	case strings.Contains(agent, "chrome"):
		browser = "chrome"
	case strings.Contains(agent, "firefox"):
		browser = "firefox"
	case strings.Contains(agent, "safari"):
		browser = "safari"
	default:
		browser = "other"
	}

	switch {
	case strings.Contains(agent, "android"):
		os = "android"
	case strings.Contains(agent, "iphone") || strings.Contains(agent, "ipad") || strings.Contains(agent, "ios"):
		os = "ios"
	case strings.Contains(agent, "windows"):
		os = "windows"
	case strings.Contains(agent, "mac os"):
		os = "macos"
	case strings.Contains(agent, "linux"):
		os = "linux"
	default:
		os = "other"
	}

	return device, browser, os
}
