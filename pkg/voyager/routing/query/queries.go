package query

import (
	"github.com/google/go-querystring/query"
)

func encode(q any) ([]byte, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

// ProfileLookupQuery finds dash profile entities by public identifier.
type ProfileLookupQuery struct {
	Q              string `url:"q"`
	MemberIdentity string `url:"memberIdentity"`
}

func (q ProfileLookupQuery) Encode() ([]byte, error) {
	return encode(q)
}

type ConnectionsQuery struct {
	Start int `url:"start"`
	Count int `url:"count"`
}

func (q ConnectionsQuery) Encode() ([]byte, error) {
	return encode(q)
}

type InvitationsQuery struct {
	Start int    `url:"start"`
	Count int    `url:"count"`
	Q     string `url:"q,omitempty"`
}

func (q InvitationsQuery) Encode() ([]byte, error) {
	return encode(q)
}

type Action string

const (
	ActionCreate Action = "create"
	ActionAccept Action = "accept"
	ActionIgnore Action = "ignore"
)

type DoActionQuery struct {
	Action Action `url:"action"`
}

func (q DoActionQuery) Encode() ([]byte, error) {
	return []byte("action=" + q.Action), nil
}
