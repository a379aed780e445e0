package utils

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"

	"github.com/haukened/rr-dig/internal/dns/domain"
)

// lookupProfile maps user input the way resolvers do (lowercase, NFC, punycode)
// but tolerates underscores, which service names like _dmarc need.
var lookupProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
)

// CanonicalDNSName returns a DNS name in canonical form:
// - Trimmed of surrounding whitespace
// - Lowercased
// - No trailing dots
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}

// ParseName turns user input such as "Bücher.example." into ASCII labels.
// An empty string or "." is the root.
func ParseName(input string) (domain.Name, error) {
	trimmed := strings.TrimSpace(input)
	for strings.HasSuffix(trimmed, ".") {
		trimmed = strings.TrimSuffix(trimmed, ".")
	}
	if trimmed == "" {
		return domain.Name{}, nil
	}

	ascii, err := lookupProfile.ToASCII(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid name %q: %w", input, err)
	}
	ascii = CanonicalDNSName(ascii)

	labels := strings.Split(ascii, ".")
	for _, label := range labels {
		if label == "" {
			return nil, fmt.Errorf("invalid name %q: empty label", input)
		}
		if len(label) > 63 {
			return nil, fmt.Errorf("invalid name %q: label too long: %s", input, label)
		}
	}
	return domain.NewName(labels...), nil
}
