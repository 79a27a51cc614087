package routing

import (
	"net/http"

	"github.com/lincli/lincli/pkg/voyager/types"
)

type RequestEndpointInfo struct {
	Method      string
	HeaderOpts  types.HeaderOpts
	ContentType types.ContentType
}

var voyagerReadHeaderOpts = types.HeaderOpts{
	WithCookies:        true,
	WithCsrfToken:      true,
	WithXLiTrack:       true,
	WithXLiProtocolVer: true,
	WithXLiLang:        true,
	Extra: map[string]string{
		"accept": string(types.ContentTypeJSONLinkedInNormalized),
	},
}

var voyagerWriteHeaderOpts = types.HeaderOpts{
	WithCookies:        true,
	WithCsrfToken:      true,
	WithXLiTrack:       true,
	WithXLiProtocolVer: true,
	WithXLiLang:        true,
	Origin:             BaseURL,
	Extra: map[string]string{
		"accept": string(types.ContentTypeJSON),
	},
}

var RequestStoreDefinition = map[Endpoint]RequestEndpointInfo{
	EndpointMe: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointProfileView: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointProfileLookup: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointNetworkInfo: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointConnections: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointConnect: {
		Method:      http.MethodPost,
		ContentType: types.ContentTypeJSON,
		HeaderOpts:  voyagerWriteHeaderOpts,
	},
	EndpointInvitations: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointInvitationAction: {
		Method:      http.MethodPost,
		ContentType: types.ContentTypeJSON,
		HeaderOpts:  voyagerWriteHeaderOpts,
	},
	EndpointConversations: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointConversationEvents: {
		Method:      http.MethodGet,
		ContentType: types.ContentTypeNone,
		HeaderOpts:  voyagerReadHeaderOpts,
	},
	EndpointConversationSend: {
		Method:      http.MethodPost,
		ContentType: types.ContentTypeJSONPlaintextUTF8,
		HeaderOpts:  voyagerWriteHeaderOpts,
	},
}
