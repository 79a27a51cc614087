package routing

import (
	"fmt"
	"net/url"
	"strings"
)

const BaseHost = "www.linkedin.com"
const BaseURL = "https://" + BaseHost

// Endpoint is the logical name of a Voyager operation. Paths are looked up in
// the static table below; {placeholder} segments are substituted by the
// caller through BuildPath.
type Endpoint string

const (
	EndpointMe                 Endpoint = "me"
	EndpointProfileView        Endpoint = "profileView"
	EndpointProfileLookup      Endpoint = "profileLookup"
	EndpointNetworkInfo        Endpoint = "networkInfo"
	EndpointConnections        Endpoint = "connections"
	EndpointConnect            Endpoint = "connect"
	EndpointInvitations        Endpoint = "invitations"
	EndpointInvitationAction   Endpoint = "invitationAction"
	EndpointConversations      Endpoint = "conversations"
	EndpointConversationEvents Endpoint = "conversationEvents"
	EndpointConversationSend   Endpoint = "conversationSend"
)

var Paths = map[Endpoint]string{
	EndpointMe:                 "/voyager/api/me",
	EndpointProfileView:        "/voyager/api/identity/profiles/{username}/profileView",
	EndpointProfileLookup:      "/voyager/api/identity/dash/profiles",
	EndpointNetworkInfo:        "/voyager/api/identity/profiles/{username}/networkinfo",
	EndpointConnections:        "/voyager/api/relationships/connections",
	EndpointConnect:            "/voyager/api/growth/normInvitations",
	EndpointInvitations:        "/voyager/api/relationships/invitation-views",
	EndpointInvitationAction:   "/voyager/api/relationships/invitations/{invitationId}",
	EndpointConversations:      "/voyager/api/messaging/conversations",
	EndpointConversationEvents: "/voyager/api/messaging/conversations/{conversationId}/events",
	EndpointConversationSend:   "/voyager/api/messaging/conversations/{conversationId}/events",
}

// BuildPath substitutes {placeholder} segments in the endpoint's path. Values
// are path-escaped, so urns can be passed for segments named after usernames.
func BuildPath(endpoint Endpoint, params map[string]string) (string, error) {
	path, ok := Paths[endpoint]
	if !ok {
		return "", fmt.Errorf("unknown endpoint %q", endpoint)
	}
	for key, value := range params {
		path = strings.ReplaceAll(path, "{"+key+"}", url.PathEscape(value))
	}
	if idx := strings.IndexByte(path, '{'); idx >= 0 {
		return "", fmt.Errorf("endpoint %q has unsubstituted placeholder in %q", endpoint, path)
	}
	return path, nil
}
