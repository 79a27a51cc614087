package voyager

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lincli/lincli/pkg/voyager/methods"
	"github.com/lincli/lincli/pkg/voyager/routing"
	"github.com/lincli/lincli/pkg/voyager/routing/payload"
	"github.com/lincli/lincli/pkg/voyager/routing/query"
)

// conversationID reduces a conversation urn (or bare id) to the id segment
// the messaging paths expect.
func conversationID(identifier string) string {
	if strings.HasPrefix(identifier, URNPrefix) {
		return urnLocalID(identifier)
	}
	return identifier
}

// GetConversations fetches the most recent page of the inbox.
func (c *Client) GetConversations() ([]Conversation, error) {
	_, respBody, err := c.MakeEndpointRequest(routing.EndpointConversations, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	return ParseConversations(respBody)
}

// GetMessages fetches one page of events for a conversation, given its urn or
// bare id.
func (c *Client) GetMessages(conversation string) ([]Message, error) {
	if conversation == "" {
		return nil, &InputError{Input: conversation, Reason: "empty conversation id"}
	}

	params := map[string]string{"conversationId": conversationID(conversation)}
	_, respBody, err := c.MakeEndpointRequest(routing.EndpointConversationEvents, params, nil, nil)
	if err != nil {
		return nil, err
	}

	return ParseMessages(respBody)
}

// SendMessage posts a text message into an existing conversation.
func (c *Client) SendMessage(conversation string, text string) error {
	if conversation == "" {
		return &InputError{Input: conversation, Reason: "empty conversation id"}
	}
	if text == "" {
		return &InputError{Input: text, Reason: "empty message text"}
	}

	sendPayload := payload.SendMessagePayload{
		EventCreate: payload.EventCreate{
			OriginToken: uuid.NewString(),
			TrackingId:  methods.GenerateTrackingId(),
			Value: payload.EventCreateValue{
				MessageCreate: payload.MessageCreate{
					AttributedBody: payload.AttributedBody{
						Text:       text,
						Attributes: []any{},
					},
					Attachments: []any{},
				},
			},
		},
	}

	params := map[string]string{"conversationId": conversationID(conversation)}
	_, _, err := c.MakeEndpointRequest(
		routing.EndpointConversationSend,
		params,
		query.DoActionQuery{Action: query.ActionCreate},
		sendPayload,
	)
	if err != nil {
		return fmt.Errorf("failed to send message to conversation %s: %w", conversation, err)
	}

	return nil
}
