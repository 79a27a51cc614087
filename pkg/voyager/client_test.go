package voyager

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cli := NewClient(&ClientOpts{
		Credentials: testCredentials(t),
		BaseURL:     server.URL,
	}, zerolog.Nop())
	return cli, server
}

func TestMakeEndpointRequestSendsSessionHeaders(t *testing.T) {
	var seen http.Header
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		io.WriteString(w, legacyProfilePayload)
	}))

	_, err := cli.GetProfile("peggyrayzis")
	require.NoError(t, err)

	assert.Equal(t, "ajax:123456", seen.Get("csrf-token"))
	assert.Contains(t, seen.Get("cookie"), "li_at=")
	assert.Equal(t, "2.0.0", seen.Get("x-restli-protocol-version"))
	assert.NotEmpty(t, seen.Get("x-li-track"))
	assert.NotEmpty(t, seen.Get("user-agent"))
}

func TestAPIErrorCarriesStatusAndPathWithoutRetry(t *testing.T) {
	var requests atomic.Int64
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := cli.GetProfile("someuser")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "/voyager/api/identity/profiles/someuser/profileView", apiErr.Path)
	assert.True(t, apiErr.IsAuthFailure())
	assert.Equal(t, int64(1), requests.Load())
}

func TestWhoAmIChainsNetworkInfoByDiscoveredUsername(t *testing.T) {
	var paths []string
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/voyager/api/me":
			io.WriteString(w, normalizedProfilePayload)
		case "/voyager/api/identity/profiles/peggyrayzis/networkinfo":
			io.WriteString(w, `{"data": {"followersCount": 1500, "connectionsCount": 500}}`)
		default:
			http.NotFound(w, r)
		}
	}))

	identity, err := cli.WhoAmI()
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, "/voyager/api/me", paths[0])
	assert.Equal(t, "/voyager/api/identity/profiles/peggyrayzis/networkinfo", paths[1])

	assert.Equal(t, "Peggy", identity.Profile.FirstName)
	assert.Equal(t, "peggyrayzis", identity.Profile.Username)
	assert.Equal(t, int64(1500), identity.NetworkInfo.FollowersCount)
	assert.Equal(t, int64(500), identity.NetworkInfo.ConnectionsCount)

	// the serialized form exposes the normalized field names
	out, err := json.Marshal(identity)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"firstName":"Peggy"`)
	assert.Contains(t, string(out), `"followersCount":1500`)
}

func TestConnectResolvesUsernameThenPostsMinimalBody(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantKeys []string
	}{
		{"without note", "", []string{"recipientProfileUrn"}},
		{"with note", "hi there", []string{"recipientProfileUrn", "message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var connectBody map[string]json.RawMessage
			var lookupQuery string
			cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/voyager/api/identity/dash/profiles":
					lookupQuery = r.URL.RawQuery
					io.WriteString(w, `{"elements": [{"publicIdentifier": "ada", "entityUrn": "urn:li:fsd_profile:ada1", "firstName": "Ada"}]}`)
				case "/voyager/api/growth/normInvitations":
					require.Equal(t, http.MethodPost, r.Method)
					body, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					require.NoError(t, json.Unmarshal(body, &connectBody))
					w.WriteHeader(http.StatusCreated)
				default:
					http.NotFound(w, r)
				}
			}))

			err := cli.Connect("ada", tt.message)
			require.NoError(t, err)

			assert.Contains(t, lookupQuery, "q=memberIdentity")
			assert.Contains(t, lookupQuery, "memberIdentity=ada")

			require.NotNil(t, connectBody)
			var keys []string
			for key := range connectBody {
				keys = append(keys, key)
			}
			assert.ElementsMatch(t, tt.wantKeys, keys)

			var urn string
			require.NoError(t, json.Unmarshal(connectBody["recipientProfileUrn"], &urn))
			assert.Equal(t, "urn:li:fsd_profile:ada1", urn)
		})
	}
}

func TestConnectByUrnSkipsLookup(t *testing.T) {
	var paths []string
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))

	err := cli.Connect("urn:li:fsd_profile:direct1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/voyager/api/growth/normInvitations"}, paths)
}

func TestResolveProfileURNEmptyResultNamesUsername(t *testing.T) {
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"elements": []}`)
	}))

	_, _, err := cli.ResolveProfileURN("nosuchuser")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuchuser")
}

func TestEmptyIdentifierFailsBeforeAnyRequest(t *testing.T) {
	var requests atomic.Int64
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	for name, call := range map[string]func() error{
		"profile": func() error { _, err := cli.GetProfile(""); return err },
		"connect": func() error { return cli.Connect("   ", "") },
		"network": func() error { _, err := cli.GetNetworkInfo(""); return err },
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, int64(0), requests.Load())
		})
	}
}

func TestGetMessagesAndSend(t *testing.T) {
	var sendBody map[string]json.RawMessage
	cli, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voyager/api/messaging/conversations/2-abc/events" {
			http.NotFound(w, r)
			return
		}
		if r.Method == http.MethodPost {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &sendBody))
			w.WriteHeader(http.StatusCreated)
			return
		}
		io.WriteString(w, `{"elements": [{"entityUrn": "urn:li:fs_event:(2-abc,m1)", "eventContent": {"com.linkedin.voyager.messaging.event.MessageEvent": {"attributedBody": {"text": "hey"}}}}]}`)
	}))

	messages, err := cli.GetMessages("urn:li:fs_conversation:2-abc")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hey", messages[0].Text)

	require.NoError(t, cli.SendMessage("2-abc", "hello back"))
	require.NotNil(t, sendBody)
	assert.Contains(t, sendBody, "eventCreate")
	assert.Contains(t, sendBody, "dedupeByClientGeneratedToken")
}
