package valueobject

import (
	"net/netip"
	"strings"
)

// privatePrefixes lists address space that is not globally routable:
// RFC1918, loopback, link-local, CGNAT, documentation, benchmarking,
// multicast and reserved blocks, plus their IPv6 counterparts.
var privatePrefixes = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("127.0.0.0/8"),
	netip.MustParsePrefix("169.254.0.0/16"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("192.88.99.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("224.0.0.0/4"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("255.255.255.255/32"),
	netip.MustParsePrefix("::/128"),
	netip.MustParsePrefix("::1/128"),
	netip.MustParsePrefix("fc00::/7"),
	netip.MustParsePrefix("fe80::/10"),
	netip.MustParsePrefix("ff00::/8"),
}

// ParseAddr parses s as an IPv4 or IPv6 address. Zones and surrounding
// whitespace are rejected.
func ParseAddr(s string) (netip.Addr, bool) {
	if s == "" || strings.TrimSpace(s) != s {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return netip.Addr{}, false
	}
	return addr, true
}

// IsPrivateAddr reports whether s is a syntactically valid IP address
// inside a non-globally-routable range. IPv4-mapped IPv6 addresses are
// judged by their IPv4 form.
func IsPrivateAddr(s string) bool {
	addr, ok := ParseAddr(s)
	if !ok {
		return false
	}
	addr = addr.Unmap()
	for _, p := range privatePrefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
