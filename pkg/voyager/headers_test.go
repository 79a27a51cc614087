package voyager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lincli/lincli/pkg/voyager/cookies"
	"github.com/lincli/lincli/pkg/voyager/routing"
	"github.com/lincli/lincli/pkg/voyager/types"
)

func testCredentials(t *testing.T) *cookies.Credentials {
	t.Helper()
	jar := cookies.NewCookies()
	jar.Set(cookies.LinkedInLiAt, "AQEtest")
	jar.Set(cookies.LinkedInJSESSIONID, `"ajax:123456"`)
	creds, err := cookies.NewCredentials(jar, cookies.ProvenanceEnv)
	require.NoError(t, err)
	return creds
}

func TestBuildHeadersDeterministic(t *testing.T) {
	creds := testCredentials(t)
	opts := types.HeaderOpts{
		WithCookies:        true,
		WithCsrfToken:      true,
		WithXLiTrack:       true,
		WithXLiProtocolVer: true,
		WithXLiLang:        true,
	}

	first := buildHeaders(creds, opts)
	second := buildHeaders(creds, opts)
	assert.Equal(t, first, second)
}

func TestBuildHeadersInjectsCredentials(t *testing.T) {
	creds := testCredentials(t)
	headers := buildHeaders(creds, types.HeaderOpts{WithCookies: true, WithCsrfToken: true})

	assert.Equal(t, creds.CookieString(), headers.Get("cookie"))
	assert.Equal(t, "ajax:123456", headers.Get("csrf-token"))
	assert.Equal(t, UserAgent, headers.Get("user-agent"))
}

func TestBuildHeadersConstants(t *testing.T) {
	creds := testCredentials(t)
	headers := buildHeaders(creds, types.HeaderOpts{
		WithXLiTrack:       true,
		WithXLiProtocolVer: true,
		WithXLiLang:        true,
	})

	assert.Equal(t, XLiTrack, headers.Get("x-li-track"))
	assert.Equal(t, "2.0.0", headers.Get("x-restli-protocol-version"))
	assert.Equal(t, "en_US", headers.Get("x-li-lang"))
	assert.Contains(t, headers.Get("user-agent"), BrowserName)
	// the tracking blob never derives from the host environment
	assert.Contains(t, XLiTrack, `"timezone":"Europe/Stockholm"`)
}

func TestBuildHeadersDoesNotMutateStoreDefinitions(t *testing.T) {
	creds := testCredentials(t)
	definition := routing.RequestStoreDefinition[routing.EndpointMe]

	before := len(definition.HeaderOpts.Extra)
	_ = buildHeaders(creds, definition.HeaderOpts)
	assert.Len(t, definition.HeaderOpts.Extra, before)
	_, polluted := definition.HeaderOpts.Extra["cookie"]
	assert.False(t, polluted)
}

func TestBuildHeadersExtraOverrides(t *testing.T) {
	creds := testCredentials(t)
	headers := buildHeaders(creds, types.HeaderOpts{
		Extra: map[string]string{"accept": string(types.ContentTypeJSON)},
	})
	assert.Equal(t, string(types.ContentTypeJSON), headers.Get("accept"))
}
