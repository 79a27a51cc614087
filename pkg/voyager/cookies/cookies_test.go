package cookies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCookiesFromString(t *testing.T) {
	c := NewCookiesFromString(`li_at=tok123; JSESSIONID="ajax:456"; bcookie=v2`)

	assert.Equal(t, "tok123", c.Get(LinkedInLiAt))
	assert.Equal(t, `"ajax:456"`, c.Get(LinkedInJSESSIONID))
	assert.Equal(t, "v2", c.Get(LinkedInBCookie))
	assert.True(t, c.IsCookieEmpty(LinkedInLidc))
}

func TestCookiesStringIsSorted(t *testing.T) {
	c := NewCookies()
	c.Set(LinkedInLiAt, "tok")
	c.Set(LinkedInBCookie, "b")
	c.Set(LinkedInJSESSIONID, "j")

	// deterministic order regardless of insertion
	assert.Equal(t, "JSESSIONID=j; bcookie=b; li_at=tok", c.String())
}

func TestNewCredentials(t *testing.T) {
	c := NewCookiesFromString(`li_at=tok123; JSESSIONID="ajax:456"`)
	creds, err := NewCredentials(c, ProvenanceEnv)
	require.NoError(t, err)

	assert.Equal(t, "tok123", creds.SessionToken())
	assert.Equal(t, "ajax:456", creds.CsrfToken())
	assert.Equal(t, ProvenanceEnv, creds.Provenance())
	assert.Contains(t, creds.CookieString(), "li_at=tok123")
}

func TestNewCredentialsMissingCookies(t *testing.T) {
	tests := []struct {
		name      string
		cookieStr string
		wantErr   string
	}{
		{"no li_at", `JSESSIONID="ajax:456"`, "li_at"},
		{"no JSESSIONID", `li_at=tok123`, "JSESSIONID"},
		{"empty", ``, "li_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCredentials(NewCookiesFromString(tt.cookieStr), ProvenanceUnknown)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("nil jar", func(t *testing.T) {
		_, err := NewCredentials(nil, ProvenanceUnknown)
		require.Error(t, err)
	})
}

func TestCsrfTokenUnquoting(t *testing.T) {
	c := NewCookies()
	c.Set(LinkedInLiAt, "tok")
	c.Set(LinkedInJSESSIONID, "ajax:unquoted")
	creds, err := NewCredentials(c, ProvenanceFile)
	require.NoError(t, err)

	// already-unquoted values pass through unchanged
	assert.Equal(t, "ajax:unquoted", creds.CsrfToken())
}
