package urlrisk_test

import (
	"strings"
	"testing"

	"bangsafe/pkg/domain"
	"bangsafe/pkg/urlrisk"

	"github.com/stretchr/testify/require"
)

const (
	reasonTrick       = "URL contains '@' or spaces (possible trick)."
	reasonIP          = "Host is an IP address."
	reasonPunycode    = "Punycode / IDN (homograph) risk."
	reasonLong        = "Very long URL."
	reasonQuery       = "Many query parameters."
	reasonHyphens     = "Multiple hyphens in domain."
	reasonTLDPrefix   = "TLD ."
	reasonKeywordPfx  = "Suspicious keywords: "
	reasonBrandPrefix = "Impersonation-like keywords: "
)

func TestScore(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		score   int
		verdict domain.Verdict
		domain  string
		reasons []string
	}{
		{
			name:    "clean domain",
			url:     "http://example.com",
			score:   0,
			verdict: domain.VerdictSafe,
			domain:  "example.com",
			reasons: []string{},
		},
		{
			name:    "ip host with login path stays just below suspicious",
			url:     "http://192.168.1.1/login",
			score:   24,
			verdict: domain.VerdictSafe,
			domain:  "192.168.1.1",
			reasons: []string{reasonIP, reasonKeywordPfx + "login"},
		},
		{
			// the brand rule also triggers: "bank" is inside the host but not its prefix
			name:    "punycode host stuffed with keywords",
			url:     "http://secure-login-verify-bank.xn--p1ai",
			score:   68,
			verdict: domain.VerdictDanger,
			domain:  "secure-login-verify-bank.xn--p1ai",
			reasons: []string{
				reasonPunycode,
				reasonKeywordPfx + "login, secure, verify, bank",
				reasonHyphens,
				reasonBrandPrefix + "bank",
			},
		},
		{
			name:    "misspelled brand is not an impersonation hit",
			url:     "http://faceb00k-login.tk",
			score:   14,
			verdict: domain.VerdictSafe,
			domain:  "faceb00k-login.tk",
			reasons: []string{reasonKeywordPfx + "login", reasonTLDPrefix + "tk often abused (heuristic)."},
		},
		{
			name:    "userinfo trick",
			url:     "http://paypal.com@evil.example",
			score:   25,
			verdict: domain.VerdictSuspicious,
			domain:  "paypal.com@evil.example",
			reasons: []string{reasonTrick},
		},
		{
			name:    "overlapping keywords are counted separately",
			url:     "http://example.com/verify-account",
			score:   18,
			verdict: domain.VerdictSafe,
			domain:  "example.com",
			reasons: []string{reasonKeywordPfx + "verify, account, verify-account"},
		},
		{
			name:    "keyword points are capped",
			url:     "http://example.com/login/secure/verify/confirm/account/update",
			score:   30,
			verdict: domain.VerdictSuspicious,
			domain:  "example.com",
			reasons: []string{reasonKeywordPfx + "login, secure, verify, confirm, account, update"},
		},
		{
			name:    "brand at the start of the host is not flagged",
			url:     "http://bkash.com",
			score:   0,
			verdict: domain.VerdictSafe,
			domain:  "bkash.com",
			reasons: []string{},
		},
		{
			name:    "brand inside the host is flagged",
			url:     "http://www.bkash.com",
			score:   18,
			verdict: domain.VerdictSafe,
			domain:  "www.bkash.com",
			reasons: []string{reasonBrandPrefix + "bkash"},
		},
		{
			name:    "brands are reported in list order",
			url:     "http://my-gmail-google.example",
			score:   18,
			verdict: domain.VerdictSafe,
			domain:  "my-gmail-google.example",
			reasons: []string{reasonBrandPrefix + "google, gmail"},
		},
		{
			name:    "keywords match case-insensitively",
			url:     "HTTP://Example.COM/LOGIN",
			score:   6,
			verdict: domain.VerdictSafe,
			domain:  "example.com",
			reasons: []string{reasonKeywordPfx + "login"},
		},
		{
			name:    "abused tld behind a port",
			url:     "http://evil.ml:8080/",
			score:   8,
			verdict: domain.VerdictSafe,
			domain:  "evil.ml",
			reasons: []string{reasonTLDPrefix + "ml often abused (heuristic)."},
		},
		{
			name:    "ip rule is shape based",
			url:     "http://999.999.999.999",
			score:   18,
			verdict: domain.VerdictSafe,
			domain:  "999.999.999.999",
			reasons: []string{reasonIP},
		},
		{
			name:    "too many digits is not an ip host",
			url:     "http://1234.1.1.1",
			score:   0,
			verdict: domain.VerdictSafe,
			domain:  "1234.1.1.1",
			reasons: []string{},
		},
		{
			name:    "empty input",
			url:     "",
			score:   0,
			verdict: domain.VerdictSafe,
			domain:  "",
			reasons: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := urlrisk.Score(tc.url)
			require.Equal(t, tc.score, res.Score)
			require.Equal(t, tc.verdict, res.Verdict)
			require.Equal(t, tc.domain, res.Domain)
			require.Equal(t, tc.reasons, res.Reasons)
		})
	}
}

func TestScore_Thresholds(t *testing.T) {
	base := "http://example.com/"

	// 19 + 101 = 120 characters: not long yet
	require.Empty(t, urlrisk.Score(base+strings.Repeat("a", 101)).Reasons)
	require.Equal(t, []string{reasonLong}, urlrisk.Score(base+strings.Repeat("a", 102)).Reasons)

	// length is measured in characters, not bytes
	require.Empty(t, urlrisk.Score(base+strings.Repeat("é", 101)).Reasons)

	require.Empty(t, urlrisk.Score(base+"?a&b&c&d").Reasons)
	require.Equal(t, []string{reasonQuery}, urlrisk.Score(base+"?a&b&c&d&e").Reasons)

	require.Empty(t, urlrisk.Score("http://a-b-c.com").Reasons)
	require.Equal(t, []string{reasonHyphens}, urlrisk.Score("http://a-b-c-d.com").Reasons)
}

func TestScore_CappedAtMax(t *testing.T) {
	u := "http://secure-paypal-google-bank.xn--80ak6aa92e.tk/login/verify/account/update/payment" +
		"?a=1&b=2&c=3&d=4&e=5&note=hello world@" + strings.Repeat("x", 60)

	res := urlrisk.Score(u)
	require.Equal(t, domain.MaxScore, res.Score)
	require.Equal(t, domain.VerdictDanger, res.Verdict)
	require.Equal(t, []string{
		reasonTrick,
		reasonPunycode,
		reasonKeywordPfx + "login, secure, verify, account, update, bank, payment",
		reasonLong,
		reasonQuery,
		reasonHyphens,
		reasonTLDPrefix + "tk often abused (heuristic).",
		reasonBrandPrefix + "google, bank",
	}, res.Reasons)
}

func TestScore_Properties(t *testing.T) {
	corpus := []string{
		"",
		" ",
		"@",
		"http://",
		"https://",
		"xn--",
		"::::",
		"////",
		"http://[::1]:8080/",
		"http://10.0.0.1:22/reset?password=1&x=2&y=3&z=4&w=5",
		"https://accounts.google.com.signin-verify.cf/secure",
		"javascript:alert(1)",
		"http://ünïcödé.example/päth",
		strings.Repeat("bank-", 100),
		strings.Repeat("?&", 50),
	}

	for _, u := range corpus {
		first := urlrisk.Score(u)
		require.GreaterOrEqual(t, first.Score, 0, u)
		require.LessOrEqual(t, first.Score, domain.MaxScore, u)
		require.Equal(t, domain.VerdictFor(first.Score), first.Verdict, u)
		require.Equal(t, urlrisk.DomainFromURL(u), first.Domain, u)
		require.Equal(t, first, urlrisk.Score(u), "scoring must be deterministic for %q", u)
	}
}

func TestScore_Concurrent(t *testing.T) {
	const workers = 16

	want := urlrisk.Score("http://secure-login-verify-bank.xn--p1ai")
	done := make(chan domain.ScoreResult, workers)
	for range workers {
		go func() { done <- urlrisk.Score("http://secure-login-verify-bank.xn--p1ai") }()
	}
	for range workers {
		require.Equal(t, want, <-done)
	}
}

func TestKeywordListsAreCopies(t *testing.T) {
	kw := urlrisk.SuspiciousKeywords()
	require.Len(t, kw, 15)
	kw[0] = "changed"
	require.Equal(t, "login", urlrisk.SuspiciousKeywords()[0])

	require.Equal(t, []string{"tk", "ml", "ga", "cf", "gq"}, urlrisk.SuspiciousTLDs())
	require.Equal(t, []string{"facebook", "google", "gmail", "bkash", "nagad", "dbbl", "rocket", "bank"},
		urlrisk.BrandKeywords())
}

func TestScoreDomain(t *testing.T) {
	u := "http://secure-login-verify-bank.xn--p1ai"
	require.Equal(t, urlrisk.Score(u), urlrisk.ScoreDomain(u, urlrisk.DomainFromURL(u)))

	// the given host is what host rules see, the keyword rule still reads the URL
	res := urlrisk.ScoreDomain("http://example.com/login", "10.0.0.1")
	require.Equal(t, "10.0.0.1", res.Domain)
	require.Equal(t, []string{reasonIP, reasonKeywordPfx + "login"}, res.Reasons)
	require.Equal(t, 24, res.Score)
}

func TestScore_FullCaseMapping(t *testing.T) {
	// 'İ' lowers to "i" followed by U+0307, which breaks the "login" keyword
	res := urlrisk.Score("http://log\u0130n.example")
	require.Equal(t, "logi\u0307n.example", res.Domain)
	require.Empty(t, res.Reasons)
	require.Zero(t, res.Score)

	// the Kelvin sign lowers to a plain 'k'
	require.Equal(t, "tk", urlrisk.TLDOf("example.T\u212a"))
	require.Equal(t, []string{reasonTLDPrefix + "tk often abused (heuristic)."},
		urlrisk.Score("http://example.T\u212a").Reasons)
}
