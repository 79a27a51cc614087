package voyager

import (
	"regexp"
	"strings"
)

const URNPrefix = "urn:li:"

type IdentifierKind string

const (
	IdentifierUsername     IdentifierKind = "username"
	IdentifierURN          IdentifierKind = "urn"
	IdentifierUnresolvable IdentifierKind = "unresolvable"
)

// ParsedIdentifier is the typed form of a user-supplied identifier string:
// a bare username, a profile URL, or a urn.
type ParsedIdentifier struct {
	Kind IdentifierKind
	Raw  string

	Username string

	URN     string
	URNType string
	URNID   string
}

var profileURLPattern = regexp.MustCompile(`^(?:https?://)?(?:[a-zA-Z0-9-]+\.)?linkedin\.com/in/([^/?#]+)/?(?:[?#].*)?$`)

// ParseIdentifier classifies an identifier string. It never fails: strings
// that look URL-shaped but match no known profile path form come back tagged
// unresolvable, everything else resolves to a urn or a verbatim username.
func ParseIdentifier(raw string) ParsedIdentifier {
	if strings.HasPrefix(raw, URNPrefix) {
		parsed := ParsedIdentifier{Kind: IdentifierURN, Raw: raw, URN: raw}
		segments := strings.SplitN(strings.TrimPrefix(raw, URNPrefix), ":", 2)
		parsed.URNType = segments[0]
		if len(segments) > 1 {
			parsed.URNID = segments[1]
		}
		return parsed
	}

	if looksLikeURL(raw) {
		if match := profileURLPattern.FindStringSubmatch(raw); match != nil {
			return ParsedIdentifier{Kind: IdentifierUsername, Raw: raw, Username: match[1]}
		}
		return ParsedIdentifier{Kind: IdentifierUnresolvable, Raw: raw}
	}

	return ParsedIdentifier{Kind: IdentifierUsername, Raw: raw, Username: raw}
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.Contains(s, "linkedin.com") ||
		strings.Contains(s, "/")
}

// resolveIdentifier is the synchronous half of identifier resolution: it
// rejects empty and unresolvable identifiers before any network call.
func resolveIdentifier(raw string) (ParsedIdentifier, error) {
	if strings.TrimSpace(raw) == "" {
		return ParsedIdentifier{}, &InputError{Input: raw, Reason: "empty identifier"}
	}
	parsed := ParseIdentifier(raw)
	if parsed.Kind == IdentifierUnresolvable {
		return parsed, &InputError{Input: raw, Reason: "no known profile path in url"}
	}
	return parsed, nil
}
