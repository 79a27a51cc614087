package voyager

import (
	"fmt"

	"github.com/lincli/lincli/pkg/voyager/routing"
	"github.com/lincli/lincli/pkg/voyager/routing/payload"
	"github.com/lincli/lincli/pkg/voyager/routing/query"
)

// Connect sends a connection request to the profile the identifier resolves
// to, with an optional note. Usernames are resolved to a urn first; urns go
// straight through.
func (c *Client) Connect(identifier string, message string) error {
	parsed, err := resolveIdentifier(identifier)
	if err != nil {
		return err
	}

	recipientUrn := parsed.URN
	if parsed.Kind == IdentifierUsername {
		recipientUrn, _, err = c.ResolveProfileURN(parsed.Username)
		if err != nil {
			return err
		}
	}

	connectPayload := payload.ConnectPayload{
		RecipientProfileUrn: recipientUrn,
		Message:             message,
	}

	_, _, err = c.MakeEndpointRequest(routing.EndpointConnect, nil, nil, connectPayload)
	if err != nil {
		return fmt.Errorf("failed to send connection request to %s: %w", identifier, err)
	}

	return nil
}

// GetConnections fetches one page of the logged-in user's connections.
func (c *Client) GetConnections(start int, count int) ([]Connection, error) {
	if count <= 0 {
		count = 40
	}
	connectionsQuery := query.ConnectionsQuery{Start: start, Count: count}

	_, respBody, err := c.MakeEndpointRequest(routing.EndpointConnections, nil, connectionsQuery, nil)
	if err != nil {
		return nil, err
	}

	return ParseConnections(respBody)
}

// GetInvitations fetches one page of pending invitations.
func (c *Client) GetInvitations(start int, count int) ([]Invitation, error) {
	if count <= 0 {
		count = 20
	}
	invitationsQuery := query.InvitationsQuery{Start: start, Count: count}

	_, respBody, err := c.MakeEndpointRequest(routing.EndpointInvitations, nil, invitationsQuery, nil)
	if err != nil {
		return nil, err
	}

	return ParseInvitations(respBody)
}

// ReplyToInvitation accepts or ignores a pending invitation.
func (c *Client) ReplyToInvitation(invitationID string, sharedSecret string, accept bool) error {
	if invitationID == "" {
		return &InputError{Input: invitationID, Reason: "empty invitation id"}
	}

	action := query.ActionIgnore
	if accept {
		action = query.ActionAccept
	}

	actionPayload := payload.InvitationActionPayload{
		InvitationId: invitationID,
		SharedSecret: sharedSecret,
	}

	_, _, err := c.MakeEndpointRequest(
		routing.EndpointInvitationAction,
		map[string]string{"invitationId": invitationID},
		query.DoActionQuery{Action: action},
		actionPayload,
	)
	if err != nil {
		return fmt.Errorf("failed to %s invitation %s: %w", action, invitationID, err)
	}

	return nil
}
