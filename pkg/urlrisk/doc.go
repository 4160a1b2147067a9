// Package urlrisk implements the lexical URL risk heuristics: a tolerant
// normalizer that derives the host of a raw URL string, and a rule-based scorer
// that turns a URL into a 0-100 phishing-risk score with a verdict and
// human-readable reasons.
//
// Everything in this package is a pure function of its input. Nothing here
// performs I/O, holds state or returns an error from scoring, so all functions
// are safe for concurrent use.
package urlrisk
