package rules

import (
	"net"
	"strings"
)

// IPBlocked reports whether the candidate address matches any rule. Rules are
// either exact addresses or CIDR ranges. Block rules are operator supplied,
// so malformed rules and malformed candidates fail closed to "not matched"
// instead of erroring.
func IPBlocked(ip string, blockedIPs []string) bool {
	if len(blockedIPs) == 0 {
		return false
	}

	candidate := net.ParseIP(strings.TrimSpace(ip))

	for _, rule := range blockedIPs {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}

		if rule == ip {
			return true
		}

		if candidate == nil || !strings.Contains(rule, "/") {
			continue
		}

		_, network, err := net.ParseCIDR(rule)
		if err != nil {
			continue
		}
		if network.Contains(candidate) {
			return true
		}
	}
	return false
}
