package pipeline

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// RFC 5321 size limits for addresses.
const (
	maxEmailLen = 254
	maxLocalLen = 64
)

var (
	localPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+$`)
	tldPattern   = regexp.MustCompile(`^[a-z]{2,}$`)
)

// ValidateEmail returns s unchanged when it parses as a syntactically valid
// email address and the empty string otherwise. Invalid addresses are an
// expected input, so no error is ever returned; an unexpected panic while
// parsing also counts as invalid.
func ValidateEmail(s string) (valid string) {
	defer func() {
		if recover() != nil {
			valid = ""
		}
	}()

	if s == "" || len(s) > maxEmailLen {
		return ""
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return ""
	}
	local, host := strings.ToLower(s[:at]), strings.ToLower(s[at+1:])

	if len(local) > maxLocalLen || !localPattern.MatchString(local) {
		return ""
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return ""
	}

	// idna enforces the DNS label rules (charset, length, hyphen placement)
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return ""
	}

	labels := strings.Split(ascii, ".")
	if len(labels) < 2 {
		return ""
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return ""
		}
	}
	if !tldPattern.MatchString(labels[len(labels)-1]) {
		return ""
	}

	return s
}
