package payload

import (
	"encoding/json"
)

// ConnectPayload is the body of a connection request. Message is omitted
// entirely when no note was supplied.
type ConnectPayload struct {
	RecipientProfileUrn string `json:"recipientProfileUrn"`
	Message             string `json:"message,omitempty"`
}

func (p ConnectPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

type InvitationActionPayload struct {
	InvitationId string `json:"invitationId"`
	SharedSecret string `json:"sharedSecret,omitempty"`
}

func (p InvitationActionPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

type SendMessagePayload struct {
	EventCreate                  EventCreate `json:"eventCreate"`
	DedupeByClientGeneratedToken bool        `json:"dedupeByClientGeneratedToken"`
}

func (p SendMessagePayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

type EventCreate struct {
	OriginToken string           `json:"originToken"`
	Value       EventCreateValue `json:"value"`
	TrackingId  string           `json:"trackingId,omitempty"`
}

type EventCreateValue struct {
	MessageCreate MessageCreate `json:"com.linkedin.voyager.messaging.create.MessageCreate"`
}

type MessageCreate struct {
	AttributedBody AttributedBody `json:"attributedBody"`
	Attachments    []any          `json:"attachments"`
}

type AttributedBody struct {
	Text       string `json:"text"`
	Attributes []any  `json:"attributes"`
}
