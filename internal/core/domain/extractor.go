package domain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	ipPattern   = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	hashPattern = regexp.MustCompile(`(?i)\b(?:[a-f0-9]{32}|[a-f0-9]{40}|[a-f0-9]{64})\b`)
	urlPattern  = regexp.MustCompile(`(?i)https?://[^\s/$.?#].[^\s]*`)

	// Anchored dotted-quad shape, used to keep IP-looking strings out of the
	// domain results.
	ipShapePattern = regexp.MustCompile(`^(?:\d{1,3}\.){3}\d{1,3}$`)

	// The domain grammar needs lookbehind/lookahead so a match cannot be a
	// fragment of a larger token; stdlib regexp (RE2) cannot express
	// lookaround, hence regexp2 for this one pattern.
	domainPattern = regexp2.MustCompile(`(?<![a-z0-9-])(?:[a-z0-9-]+\.)+[a-z]{2,}(?![a-z0-9-])`, regexp2.IgnoreCase)
)

// Refang undoes the common "[.]" defanging: every literal bracketed dot
// becomes a plain dot, nothing else changes.
func Refang(text string) string {
	return strings.ReplaceAll(text, "[.]", ".")
}

// validIPv4 requires exactly four base-10 octets, each in [0, 255].
func validIPv4(candidate string) bool {
	parts := strings.Split(candidate, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			return false
		}
		if num < 0 || num > 255 {
			return false
		}
	}
	return true
}

// Extract scans text for IP addresses, domains, hashes and URLs and returns
// the unique, validated indicators. The input is refanged once before all
// four passes, so defanged and plain forms of the same indicator yield
// identical results. Empty input yields an empty set; malformed candidates
// are dropped silently, never reported. The function is pure and safe for
// concurrent callers.
func Extract(text string) Set {
	results := NewSet()
	if text == "" {
		return results
	}

	text = Refang(text)

	for _, candidate := range ipPattern.FindAllString(text, -1) {
		if validIPv4(candidate) {
			results.Add(IOC{Type: IPAddress, Value: candidate})
		}
	}

	for m, err := domainPattern.FindStringMatch(text); m != nil && err == nil; m, err = domainPattern.FindNextMatch(m) {
		value := strings.ToLower(m.String())
		// An IP-shaped string must never appear as both ip and domain.
		if ipShapePattern.MatchString(value) {
			continue
		}
		results.Add(IOC{Type: Domain, Value: value})
	}

	for _, candidate := range hashPattern.FindAllString(text, -1) {
		results.Add(IOC{Type: Hash, Value: candidate})
	}

	for _, candidate := range urlPattern.FindAllString(text, -1) {
		results.Add(IOC{Type: URL, Value: candidate})
	}

	return results
}
