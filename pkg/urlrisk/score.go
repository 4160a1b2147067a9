package urlrisk

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"bangsafe/pkg/domain"
)

// Keyword and TLD lists are part of the externally visible behavior; changing
// membership or order changes scores and reason texts.
//
//nolint: gochecknoglobals
var (
	suspiciousKeywords = []string{
		"login", "secure", "verify", "confirm", "account", "update", "bank", "payment",
		"reset", "support", "service", "auth", "signin", "password", "verify-account",
	}
	suspiciousTLDs = []string{"tk", "ml", "ga", "cf", "gq"}
	brandKeywords  = []string{"facebook", "google", "gmail", "bkash", "nagad", "dbbl", "rocket", "bank"}

	ipv4HostPattern = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,3}){3}$`)
)

const (
	trickCharsWeight   = 25
	ipHostWeight       = 18
	punycodeWeight     = 20
	keywordWeight      = 6
	keywordWeightCap   = 30
	longURLWeight      = 6
	longURLLength      = 120
	queryParamsWeight  = 6
	queryParamsLimit   = 4
	hyphensWeight      = 6
	hyphensThreshold   = 3
	abusedTLDWeight    = 8
	impersonateWeight  = 18
	punycodeLabelToken = "xn--"
)

// SuspiciousKeywords returns a copy of the keywords matched against the whole URL.
func SuspiciousKeywords() []string { return slices.Clone(suspiciousKeywords) }

// SuspiciousTLDs returns a copy of the top-level domains considered often abused.
func SuspiciousTLDs() []string { return slices.Clone(suspiciousTLDs) }

// BrandKeywords returns a copy of the brand names checked for impersonation.
func BrandKeywords() []string { return slices.Clone(brandKeywords) }

// target is the precomputed view of a URL that every rule reads from.
type target struct {
	url    string
	lower  string
	domain string
}

// rule evaluates one heuristic. It returns the points to add and the reason
// to report, or ok=false when the rule does not trigger.
type rule func(t target) (points int, reason string, ok bool)

// rules are applied in this exact order; reasons keep the same order.
//
//nolint: gochecknoglobals
var rules = []rule{
	trickCharsRule,
	ipHostRule,
	punycodeRule,
	keywordRule,
	longURLRule,
	queryParamsRule,
	hyphensRule,
	abusedTLDRule,
	impersonationRule,
}

// Score runs every heuristic against u and returns the capped score, the
// reasons of the triggered rules and the resulting verdict. It is total over
// all strings, including the empty one.
func Score(u string) domain.ScoreResult {
	return ScoreDomain(u, DomainFromURL(u))
}

// ScoreDomain is Score for callers that already extracted the host of u with
// DomainFromURL or Normalize.
func ScoreDomain(u, host string) domain.ScoreResult {
	t := target{
		url:    u,
		lower:  lower(u),
		domain: host,
	}

	score := 0
	reasons := make([]string, 0, len(rules))
	for _, r := range rules {
		points, reason, ok := r(t)
		if !ok {
			continue
		}
		score += points
		reasons = append(reasons, reason)
	}
	score = min(score, domain.MaxScore)

	return domain.ScoreResult{
		Score:   score,
		Reasons: reasons,
		Verdict: domain.VerdictFor(score),
		Domain:  t.domain,
	}
}

func trickCharsRule(t target) (int, string, bool) {
	if !strings.ContainsAny(t.url, "@ ") {
		return 0, "", false
	}

	return trickCharsWeight, "URL contains '@' or spaces (possible trick).", true
}

func ipHostRule(t target) (int, string, bool) {
	if !ipv4HostPattern.MatchString(t.domain) {
		return 0, "", false
	}

	return ipHostWeight, "Host is an IP address.", true
}

func punycodeRule(t target) (int, string, bool) {
	if !strings.Contains(t.domain, punycodeLabelToken) {
		return 0, "", false
	}

	return punycodeWeight, "Punycode / IDN (homograph) risk.", true
}

func keywordRule(t target) (int, string, bool) {
	var hits []string
	for _, k := range suspiciousKeywords {
		if strings.Contains(t.lower, k) {
			hits = append(hits, k)
		}
	}
	if len(hits) == 0 {
		return 0, "", false
	}

	return min(keywordWeightCap, keywordWeight*len(hits)), "Suspicious keywords: " + strings.Join(hits, ", "), true
}

// longURLRule counts characters, not bytes, so multi-byte input is not
// penalized for its encoding.
func longURLRule(t target) (int, string, bool) {
	if utf8.RuneCountInString(t.url) <= longURLLength {
		return 0, "", false
	}

	return longURLWeight, "Very long URL.", true
}

func queryParamsRule(t target) (int, string, bool) {
	if strings.Count(t.url, "?")+strings.Count(t.url, "&") <= queryParamsLimit {
		return 0, "", false
	}

	return queryParamsWeight, "Many query parameters.", true
}

func hyphensRule(t target) (int, string, bool) {
	if strings.Count(t.domain, "-") < hyphensThreshold {
		return 0, "", false
	}

	return hyphensWeight, "Multiple hyphens in domain.", true
}

func abusedTLDRule(t target) (int, string, bool) {
	tld := TLDOf(t.domain)
	if !slices.Contains(suspiciousTLDs, tld) {
		return 0, "", false
	}

	return abusedTLDWeight, fmt.Sprintf("TLD .%s often abused (heuristic).", tld), true
}

// impersonationRule flags brand names embedded in a host that does not itself
// start with the brand, e.g. "secure-bkash.example" but not "bkash.com".
func impersonationRule(t target) (int, string, bool) {
	var hits []string
	for _, b := range brandKeywords {
		if strings.Contains(t.domain, b) && !strings.HasPrefix(t.domain, b) {
			hits = append(hits, b)
		}
	}
	if len(hits) == 0 {
		return 0, "", false
	}

	return impersonateWeight, "Impersonation-like keywords: " + strings.Join(hits, ", "), true
}
