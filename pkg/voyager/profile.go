package voyager

import (
	"fmt"

	"github.com/lincli/lincli/pkg/voyager/routing"
	"github.com/lincli/lincli/pkg/voyager/routing/query"
)

// GetProfile looks up a profile by username, profile URL, or urn.
func (c *Client) GetProfile(identifier string) (*Profile, error) {
	parsed, err := resolveIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	// the profile path's {username} segment accepts a urn just as well
	segment := parsed.Username
	if parsed.Kind == IdentifierURN {
		segment = parsed.URN
	}

	_, respBody, err := c.MakeEndpointRequest(routing.EndpointProfileView, map[string]string{"username": segment}, nil, nil)
	if err != nil {
		return nil, err
	}

	return ParseProfile(respBody)
}

// WhoAmI fetches the logged-in profile, then the network counters keyed by
// the username the first request discovered.
func (c *Client) WhoAmI() (*Identity, error) {
	_, respBody, err := c.MakeEndpointRequest(routing.EndpointMe, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	profile, err := ParseProfile(respBody)
	if err != nil {
		return nil, err
	}

	networkInfo, err := c.GetNetworkInfo(profile.Username)
	if err != nil {
		return nil, err
	}

	return &Identity{Profile: *profile, NetworkInfo: *networkInfo}, nil
}

// GetNetworkInfo fetches follower and connection counts for a username.
func (c *Client) GetNetworkInfo(username string) (*NetworkInfo, error) {
	if username == "" {
		return nil, &InputError{Input: username, Reason: "empty identifier"}
	}

	_, respBody, err := c.MakeEndpointRequest(routing.EndpointNetworkInfo, map[string]string{"username": username}, nil, nil)
	if err != nil {
		return nil, err
	}

	return ParseNetworkInfo(respBody)
}

// ResolveProfileURN turns a username into the canonical entity urn and the
// canonical public username, via the profile lookup endpoint.
func (c *Client) ResolveProfileURN(username string) (string, string, error) {
	lookupQuery := query.ProfileLookupQuery{
		Q:              "memberIdentity",
		MemberIdentity: username,
	}

	_, respBody, err := c.MakeEndpointRequest(routing.EndpointProfileLookup, nil, lookupQuery, nil)
	if err != nil {
		return "", "", err
	}

	profile, err := ParseProfile(respBody)
	if err != nil {
		return "", "", fmt.Errorf("no profile found for username %s", username)
	}

	return profile.URN, profile.Username, nil
}
