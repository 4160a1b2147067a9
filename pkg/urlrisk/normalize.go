package urlrisk

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bangsafe/pkg/serrors"
)

// schemePattern matches a leading http:// or https:// in any letter case.
var schemePattern = regexp.MustCompile(`(?i)^https?://`) //nolint: gochecknoglobals

// Normalize prepares user input for scoring. Surrounding whitespace is
// trimmed and http:// is prepended when the input does not already start
// with an http or https scheme. It returns the URL to score together with its
// domain, or an ErrBadRequest error when nothing is left after trimming.
func Normalize(raw string) (string, string, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", "", serrors.With(serrors.ErrBadRequest, "Empty URL")
	}

	if !schemePattern.MatchString(u) {
		u = "http://" + u
	}

	return u, DomainFromURL(u), nil
}

// DomainFromURL extracts the lowercase host of u: one leading http:// or
// https:// is removed, then everything from the first '/' and from the first
// ':' is dropped. It never fails; input without recognizable structure comes
// back lowercased.
func DomainFromURL(u string) string {
	host := schemePattern.ReplaceAllString(u, "")
	host, _, _ = strings.Cut(host, "/")
	host, _, _ = strings.Cut(host, ":")

	return lower(host)
}

// TLDOf returns the lowercase label after the last '.' of domain, or an empty
// string when domain has no dot.
func TLDOf(domain string) string {
	i := strings.LastIndexByte(domain, '.')
	if i < 0 {
		return ""
	}

	return lower(domain[i+1:])
}

// lower applies full Unicode case mapping, so 'İ' becomes "i\u0307" rather
// than a plain 'i'. A Caser keeps state and is not shared between goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
