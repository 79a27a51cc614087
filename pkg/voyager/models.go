package voyager

import (
	"time"
)

// Profile is the normalized profile record. Downstream consumers never see
// which raw response shape produced it.
type Profile struct {
	URN        string `json:"urn"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Headline   string `json:"headline"`
	Location   string `json:"location,omitempty"`
	ProfileURL string `json:"profileUrl"`
}

type NetworkInfo struct {
	FollowersCount   int64 `json:"followersCount"`
	ConnectionsCount int64 `json:"connectionsCount"`
}

// Identity is the "who am I" result: own profile plus network counters.
type Identity struct {
	Profile     Profile     `json:"profile"`
	NetworkInfo NetworkInfo `json:"networkInfo"`
}

type Participant struct {
	URN       string `json:"urn"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Connection struct {
	URN         string    `json:"urn"`
	Username    string    `json:"username"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Headline    string    `json:"headline,omitempty"`
	ConnectedAt time.Time `json:"connectedAt,omitempty"`
}

type Invitation struct {
	URN          string      `json:"urn"`
	ID           string      `json:"id"`
	Message      string      `json:"message,omitempty"`
	SharedSecret string      `json:"sharedSecret,omitempty"`
	SentAt       time.Time   `json:"sentAt"`
	From         Participant `json:"from"`
}

type Conversation struct {
	URN            string        `json:"urn"`
	Read           bool          `json:"read"`
	LastActivityAt time.Time     `json:"lastActivityAt"`
	Participants   []Participant `json:"participants"`
}

type Message struct {
	URN    string      `json:"urn"`
	Text   string      `json:"text"`
	SentAt time.Time   `json:"sentAt"`
	Sender Participant `json:"sender"`
}
