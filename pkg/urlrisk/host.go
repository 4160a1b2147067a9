package urlrisk

import (
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// UnicodeDomain returns the human-readable form of a punycode (IDN) domain so
// that homograph tricks become visible, e.g. "xn--mnchen-3ya.de" becomes
// "münchen.de". It returns an empty string for domains without punycode
// labels or that cannot be decoded.
func UnicodeDomain(d string) string {
	if !strings.Contains(d, punycodeLabelToken) {
		return ""
	}

	u, err := idna.Display.ToUnicode(d)
	if err != nil || u == d {
		return ""
	}

	return u
}

// RegistrableDomain returns the effective TLD plus one label of d (for
// example "example.co.uk" for "login.example.co.uk"). IP hosts, bare public
// suffixes and empty input yield an empty string.
func RegistrableDomain(d string) string {
	if d == "" || ipv4HostPattern.MatchString(d) {
		return ""
	}

	r, err := publicsuffix.EffectiveTLDPlusOne(d)
	if err != nil {
		return ""
	}

	return r
}
