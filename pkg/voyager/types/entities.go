package types

import (
	"go.mau.fi/util/jsontime"
)

// MiniProfile is the raw profile entity as Voyager ships it, either inline
// (legacy responses) or as an element of an included[] array (normalized
// responses). Different API versions populate different subsets of the three
// urn fields.
type MiniProfile struct {
	Type string `json:"$type"`

	FirstName        LocalizedText `json:"firstName"`
	LastName         LocalizedText `json:"lastName"`
	Occupation       LocalizedText `json:"occupation"`
	Headline         LocalizedText `json:"headline"`
	PublicIdentifier string        `json:"publicIdentifier"`
	Memorialized     bool          `json:"memorialized"`
	LocationName     LocalizedText `json:"locationName"`
	GeoLocationName  LocalizedText `json:"geoLocationName"`

	EntityUrn     string `json:"entityUrn"`
	ObjectUrn     string `json:"objectUrn"`
	DashEntityUrn string `json:"dashEntityUrn"`

	TrackingId string `json:"trackingId"`
}

type MeResponse struct {
	PlainId     int          `json:"plainId"`
	MiniProfile *MiniProfile `json:"miniProfile"`
}

// NetworkInfo uses pointers so that a payload with no counter fields at all
// can be told apart from genuine zero counts.
type NetworkInfo struct {
	Type             string `json:"$type"`
	EntityUrn        string `json:"entityUrn"`
	FollowersCount   *int64 `json:"followersCount"`
	FollowerCount    *int64 `json:"followerCount"`
	ConnectionsCount *int64 `json:"connectionsCount"`
}

// MessagingMember wraps the union key legacy messaging responses use for
// conversation participants.
type MessagingMember struct {
	Member *struct {
		MiniProfile MiniProfile `json:"miniProfile"`
	} `json:"com.linkedin.voyager.messaging.MessagingMember"`
}

type Conversation struct {
	Type            string             `json:"$type"`
	EntityUrn       string             `json:"entityUrn"`
	Read            bool               `json:"read"`
	LastActivityAt  jsontime.UnixMilli `json:"lastActivityAt"`
	Participants    []MessagingMember  `json:"participants"`
	ParticipantRefs []string           `json:"*participants"`
}

type ConversationEvent struct {
	Type         string             `json:"$type"`
	EntityUrn    string             `json:"entityUrn"`
	CreatedAt    jsontime.UnixMilli `json:"createdAt"`
	From         MessagingMember    `json:"from"`
	FromRef      string             `json:"*from"`
	EventContent EventContent       `json:"eventContent"`
}

type EventContent struct {
	MessageEvent *struct {
		Body           string `json:"body"`
		AttributedBody struct {
			Text string `json:"text"`
		} `json:"attributedBody"`
	} `json:"com.linkedin.voyager.messaging.event.MessageEvent"`
}

type Invitation struct {
	Type           string             `json:"$type"`
	EntityUrn      string             `json:"entityUrn"`
	InvitationType string             `json:"invitationType"`
	SharedSecret   string             `json:"sharedSecret"`
	SentTime       jsontime.UnixMilli `json:"sentTime"`
	Message        string             `json:"message"`
	FromMember     *MiniProfile       `json:"fromMember"`
	FromMemberRef  string             `json:"*fromMember"`
}

type Connection struct {
	CreatedAt          jsontime.UnixMilli `json:"createdAt"`
	MiniProfile        *MiniProfile       `json:"miniProfile"`
	ConnectedMemberRef string             `json:"*connectedMember"`
}
