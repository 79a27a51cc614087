package cookies

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type LinkedInCookieName string

const (
	LinkedInLang       LinkedInCookieName = "lang"
	LinkedInBCookie    LinkedInCookieName = "bcookie"
	LinkedInBscookie   LinkedInCookieName = "bscookie"
	LinkedInLiap       LinkedInCookieName = "liap"
	LinkedInLiAt       LinkedInCookieName = "li_at"
	LinkedInJSESSIONID LinkedInCookieName = "JSESSIONID"
	LinkedInTimezone   LinkedInCookieName = "timezone"
	LinkedInLidc       LinkedInCookieName = "lidc"
)

// Provenance records where a credential value came from. It is informational
// only and never alters request behavior.
type Provenance string

const (
	ProvenanceEnv     Provenance = "env"
	ProvenanceFile    Provenance = "file"
	ProvenanceUnknown Provenance = "unknown"
)

type Cookies struct {
	Store map[LinkedInCookieName]string
}

func NewCookies() *Cookies {
	return &Cookies{
		Store: make(map[LinkedInCookieName]string),
	}
}

func NewCookiesFromString(cookieStr string) *Cookies {
	c := NewCookies()
	cookieStrings := strings.Split(cookieStr, ";")
	fakeHeader := http.Header{}
	for _, cookieStr := range cookieStrings {
		trimmedCookieStr := strings.TrimSpace(cookieStr)
		if trimmedCookieStr != "" {
			fakeHeader.Add("Set-Cookie", trimmedCookieStr)
		}
	}
	fakeResponse := &http.Response{Header: fakeHeader}

	for _, cookie := range fakeResponse.Cookies() {
		c.Store[LinkedInCookieName(cookie.Name)] = cookie.Value
	}

	return c
}

func (c *Cookies) String() string {
	out := make([]string, 0, len(c.Store))
	for k, v := range c.Store {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(out)
	return strings.Join(out, "; ")
}

func (c *Cookies) IsCookieEmpty(key LinkedInCookieName) bool {
	return c.Get(key) == ""
}

func (c *Cookies) Get(key LinkedInCookieName) string {
	return c.Store[key]
}

func (c *Cookies) Set(key LinkedInCookieName, value string) {
	c.Store[key] = value
}

// Credentials is the immutable session state a client is constructed with:
// the li_at session cookie, the JSESSIONID-derived csrf token, and the full
// cookie jar. Built once per invocation and owned by the client afterwards.
type Credentials struct {
	cookies    *Cookies
	provenance Provenance
}

func NewCredentials(c *Cookies, provenance Provenance) (*Credentials, error) {
	if c == nil || c.IsCookieEmpty(LinkedInLiAt) {
		return nil, fmt.Errorf("missing li_at session cookie")
	}
	if c.IsCookieEmpty(LinkedInJSESSIONID) {
		return nil, fmt.Errorf("missing JSESSIONID cookie")
	}
	return &Credentials{cookies: c, provenance: provenance}, nil
}

// SessionToken returns the raw li_at session cookie value.
func (c *Credentials) SessionToken() string {
	return c.cookies.Get(LinkedInLiAt)
}

// CsrfToken returns the anti-forgery token, which LinkedIn derives from the
// JSESSIONID cookie. The cookie value is quoted on the wire ("ajax:...").
func (c *Credentials) CsrfToken() string {
	return strings.Trim(c.cookies.Get(LinkedInJSESSIONID), `"`)
}

// CookieString returns the assembled cookie header value.
func (c *Credentials) CookieString() string {
	return c.cookies.String()
}

func (c *Credentials) Provenance() Provenance {
	return c.provenance
}
