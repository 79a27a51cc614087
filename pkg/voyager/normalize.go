package voyager

import (
	"encoding/json"
	"strings"

	"github.com/lincli/lincli/pkg/voyager/routing"
	"github.com/lincli/lincli/pkg/voyager/types"
)

// envelope is the union of the two response shapes Voyager emits: legacy
// payloads embed entity data inline under named fields, normalized payloads
// hold *-prefixed references under data that resolve against included[].
type envelope struct {
	Data     json.RawMessage
	Included []json.RawMessage
	Elements []json.RawMessage

	hasData     bool
	hasIncluded bool
	hasElements bool
}

func decodeEnvelope(concept string, raw []byte) (*envelope, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, newParseError(concept, "response body is not a json object")
	}

	env := &envelope{}
	if data, ok := keys["data"]; ok {
		env.Data = data
		env.hasData = true
	}
	if included, ok := keys["included"]; ok {
		env.hasIncluded = true
		_ = json.Unmarshal(included, &env.Included)
	}
	if elements, ok := keys["elements"]; ok {
		env.hasElements = true
		_ = json.Unmarshal(elements, &env.Elements)
	}
	return env, nil
}

// resolveReference locates the included element whose entityUrn matches ref.
// Nothing guarantees resolution order beyond first match wins.
func (e *envelope) resolveReference(ref string) json.RawMessage {
	for _, element := range e.Included {
		var probe struct {
			EntityUrn string `json:"entityUrn"`
		}
		if json.Unmarshal(element, &probe) != nil {
			continue
		}
		if probe.EntityUrn == ref {
			return element
		}
	}
	return nil
}

type dataRefs struct {
	miniProfileRef string
	elementRefs    []string
	elements       []json.RawMessage
	hasElements    bool
}

func (e *envelope) refs() dataRefs {
	var refs dataRefs
	if !e.hasData {
		return refs
	}
	var keys map[string]json.RawMessage
	if json.Unmarshal(e.Data, &keys) != nil {
		return refs
	}
	if v, ok := keys["*miniProfile"]; ok {
		_ = json.Unmarshal(v, &refs.miniProfileRef)
	}
	if v, ok := keys["*elements"]; ok {
		refs.hasElements = true
		_ = json.Unmarshal(v, &refs.elementRefs)
	}
	if v, ok := keys["elements"]; ok {
		refs.hasElements = true
		_ = json.Unmarshal(v, &refs.elements)
	}
	return refs
}

// collectionElements gathers a collection concept's elements from whichever
// shape is present. The second return reports whether any recognized shape
// was found at all, so an empty list can be told apart from garbage.
func (e *envelope) collectionElements() ([]json.RawMessage, bool) {
	if e.hasElements {
		return e.Elements, true
	}

	refs := e.refs()
	if refs.hasElements {
		if len(refs.elements) > 0 {
			return refs.elements, true
		}
		resolved := make([]json.RawMessage, 0, len(refs.elementRefs))
		for _, ref := range refs.elementRefs {
			if element := e.resolveReference(ref); element != nil {
				resolved = append(resolved, element)
			}
		}
		return resolved, true
	}

	if e.hasIncluded {
		// entities live directly in included; the caller filters by concept
		return nil, true
	}

	return nil, false
}

func (e *envelope) filterIncluded(keep func(json.RawMessage) bool) []json.RawMessage {
	var out []json.RawMessage
	for _, element := range e.Included {
		if keep(element) {
			out = append(out, element)
		}
	}
	return out
}

func parseCollection(concept string, raw []byte) (*envelope, []json.RawMessage, error) {
	env, err := decodeEnvelope(concept, raw)
	if err != nil {
		return nil, nil, err
	}
	elements, recognized := env.collectionElements()
	if !recognized {
		return nil, nil, newParseError(concept, "no elements in either response shape")
	}
	return env, elements, nil
}

// profileUrnAccessors is the ordered fallback chain for canonical urn
// extraction; response variants populate different subsets of the id fields,
// and first non-empty wins. Adding a new fallback field is a one-line change.
var profileUrnAccessors = []func(*types.MiniProfile) string{
	func(p *types.MiniProfile) string { return p.EntityUrn },
	func(p *types.MiniProfile) string { return p.DashEntityUrn },
	func(p *types.MiniProfile) string { return p.ObjectUrn },
}

func canonicalProfileUrn(p *types.MiniProfile) string {
	for _, accessor := range profileUrnAccessors {
		if urn := accessor(p); urn != "" {
			return urn
		}
	}
	return ""
}

// urnLocalID returns the local id segment of a urn, e.g. the invitation id
// out of urn:li:fs_relInvitation:123456.
func urnLocalID(urn string) string {
	if idx := strings.LastIndexByte(urn, ':'); idx >= 0 {
		return urn[idx+1:]
	}
	return urn
}

// ProfileURL derives the canonical public profile address for a username.
func ProfileURL(username string) string {
	return routing.BaseURL + "/in/" + username
}

func decodeMiniProfile(element json.RawMessage) *types.MiniProfile {
	if element == nil {
		return nil
	}
	var mini types.MiniProfile
	if json.Unmarshal(element, &mini) != nil {
		return nil
	}
	return &mini
}

func profileShaped(p *types.MiniProfile) bool {
	if p == nil {
		return false
	}
	return p.PublicIdentifier != "" || !p.FirstName.IsEmpty()
}

// ParseProfile extracts the one profile a payload describes, in either shape.
func ParseProfile(raw []byte) (*Profile, error) {
	env, err := decodeEnvelope("profile", raw)
	if err != nil {
		return nil, err
	}

	if mini := locateMiniProfile(raw, env); mini != nil {
		return normalizeMiniProfile(mini)
	}
	return nil, newParseError("profile", "no profile-shaped data in either response shape")
}

func locateMiniProfile(raw []byte, env *envelope) *types.MiniProfile {
	// legacy: entity data inline under a named field
	var legacy struct {
		MiniProfile *types.MiniProfile `json:"miniProfile"`
		Profile     *types.MiniProfile `json:"profile"`
	}
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if profileShaped(legacy.MiniProfile) {
			return legacy.MiniProfile
		}
		if profileShaped(legacy.Profile) {
			return legacy.Profile
		}
	}

	// normalized: explicit reference under data first
	if ref := env.refs().miniProfileRef; ref != "" {
		if mini := decodeMiniProfile(env.resolveReference(ref)); profileShaped(mini) {
			return mini
		}
	}

	if elements, ok := env.collectionElements(); ok {
		for _, element := range elements {
			if mini := decodeMiniProfile(element); profileShaped(mini) {
				return mini
			}
		}
	}
	for _, element := range env.Included {
		if mini := decodeMiniProfile(element); profileShaped(mini) {
			return mini
		}
	}
	return nil
}

func normalizeMiniProfile(p *types.MiniProfile) (*Profile, error) {
	username := p.PublicIdentifier
	if username == "" {
		return nil, newParseError("profile", "profile data is missing publicIdentifier")
	}

	headline := p.Headline.String()
	if headline == "" {
		headline = p.Occupation.String()
	}
	location := p.LocationName.String()
	if location == "" {
		location = p.GeoLocationName.String()
	}

	return &Profile{
		URN:        canonicalProfileUrn(p),
		Username:   username,
		FirstName:  p.FirstName.String(),
		LastName:   p.LastName.String(),
		Headline:   headline,
		Location:   location,
		ProfileURL: ProfileURL(username),
	}, nil
}

func normalizeParticipant(p *types.MiniProfile) Participant {
	return Participant{
		URN:       canonicalProfileUrn(p),
		Username:  p.PublicIdentifier,
		FirstName: p.FirstName.String(),
		LastName:  p.LastName.String(),
	}
}

// ParseNetworkInfo extracts follower and connection counters.
func ParseNetworkInfo(raw []byte) (*NetworkInfo, error) {
	env, err := decodeEnvelope("network info", raw)
	if err != nil {
		return nil, err
	}

	candidates := []json.RawMessage{env.Data, raw}
	if elements, ok := env.collectionElements(); ok {
		candidates = append(candidates, elements...)
	}
	candidates = append(candidates, env.Included...)

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		var info types.NetworkInfo
		if json.Unmarshal(candidate, &info) != nil {
			continue
		}
		followers := info.FollowersCount
		if followers == nil {
			followers = info.FollowerCount
		}
		if followers == nil && info.ConnectionsCount == nil {
			continue
		}

		normalized := &NetworkInfo{}
		if followers != nil {
			normalized.FollowersCount = *followers
		}
		if info.ConnectionsCount != nil {
			normalized.ConnectionsCount = *info.ConnectionsCount
		}
		return normalized, nil
	}

	return nil, newParseError("network info", "no counter fields in either response shape")
}

// ParseConnections extracts the connection list from either shape.
func ParseConnections(raw []byte) ([]Connection, error) {
	env, elements, err := parseCollection("connection", raw)
	if err != nil {
		return nil, err
	}

	if len(elements) == 0 {
		elements = env.filterIncluded(func(element json.RawMessage) bool {
			var conn types.Connection
			return json.Unmarshal(element, &conn) == nil &&
				(conn.MiniProfile != nil || conn.ConnectedMemberRef != "")
		})
	}

	out := make([]Connection, 0, len(elements))
	for _, element := range elements {
		var conn types.Connection
		if json.Unmarshal(element, &conn) != nil {
			continue
		}

		mini := conn.MiniProfile
		if mini == nil && conn.ConnectedMemberRef != "" {
			mini = decodeMiniProfile(env.resolveReference(conn.ConnectedMemberRef))
		}
		if mini == nil {
			// connections endpoints sometimes inline profile fields directly
			mini = decodeMiniProfile(element)
		}
		if !profileShaped(mini) {
			continue
		}

		out = append(out, Connection{
			URN:         canonicalProfileUrn(mini),
			Username:    mini.PublicIdentifier,
			FirstName:   mini.FirstName.String(),
			LastName:    mini.LastName.String(),
			Headline:    mini.Occupation.String(),
			ConnectedAt: conn.CreatedAt.Time,
		})
	}
	return out, nil
}

// ParseInvitations extracts pending invitations from either shape.
func ParseInvitations(raw []byte) ([]Invitation, error) {
	env, elements, err := parseCollection("invitation", raw)
	if err != nil {
		return nil, err
	}

	if len(elements) == 0 {
		elements = env.filterIncluded(func(element json.RawMessage) bool {
			var inv types.Invitation
			return json.Unmarshal(element, &inv) == nil &&
				(strings.Contains(inv.Type, "Invitation") || inv.FromMember != nil || inv.FromMemberRef != "" || inv.SharedSecret != "")
		})
	}

	out := make([]Invitation, 0, len(elements))
	for _, element := range elements {
		var inv types.Invitation
		if json.Unmarshal(element, &inv) != nil {
			continue
		}

		from := inv.FromMember
		if from == nil && inv.FromMemberRef != "" {
			from = decodeMiniProfile(env.resolveReference(inv.FromMemberRef))
		}
		if inv.EntityUrn == "" && from == nil {
			continue
		}

		normalized := Invitation{
			URN:          inv.EntityUrn,
			ID:           urnLocalID(inv.EntityUrn),
			Message:      inv.Message,
			SharedSecret: inv.SharedSecret,
			SentAt:       inv.SentTime.Time,
		}
		if from != nil {
			normalized.From = normalizeParticipant(from)
		}
		out = append(out, normalized)
	}
	return out, nil
}

// ParseConversations extracts the conversation list from either shape.
func ParseConversations(raw []byte) ([]Conversation, error) {
	env, elements, err := parseCollection("conversation", raw)
	if err != nil {
		return nil, err
	}

	if len(elements) == 0 {
		elements = env.filterIncluded(func(element json.RawMessage) bool {
			var conv types.Conversation
			return json.Unmarshal(element, &conv) == nil &&
				(strings.Contains(conv.Type, "Conversation") || len(conv.Participants) > 0 || len(conv.ParticipantRefs) > 0)
		})
	}

	out := make([]Conversation, 0, len(elements))
	for _, element := range elements {
		var conv types.Conversation
		if json.Unmarshal(element, &conv) != nil {
			continue
		}
		if conv.EntityUrn == "" {
			continue
		}

		normalized := Conversation{
			URN:            conv.EntityUrn,
			Read:           conv.Read,
			LastActivityAt: conv.LastActivityAt.Time,
		}
		for _, member := range conv.Participants {
			if member.Member != nil {
				normalized.Participants = append(normalized.Participants, normalizeParticipant(&member.Member.MiniProfile))
			}
		}
		for _, ref := range conv.ParticipantRefs {
			if mini := decodeMiniProfile(env.resolveReference(ref)); profileShaped(mini) {
				normalized.Participants = append(normalized.Participants, normalizeParticipant(mini))
			}
		}
		out = append(out, normalized)
	}
	return out, nil
}

// ParseMessages extracts message events from either shape.
func ParseMessages(raw []byte) ([]Message, error) {
	env, elements, err := parseCollection("message", raw)
	if err != nil {
		return nil, err
	}

	if len(elements) == 0 {
		elements = env.filterIncluded(func(element json.RawMessage) bool {
			var event types.ConversationEvent
			return json.Unmarshal(element, &event) == nil &&
				(event.EventContent.MessageEvent != nil || strings.Contains(event.Type, "Event"))
		})
	}

	out := make([]Message, 0, len(elements))
	for _, element := range elements {
		var event types.ConversationEvent
		if json.Unmarshal(element, &event) != nil {
			continue
		}
		content := event.EventContent.MessageEvent
		if content == nil {
			continue
		}

		text := content.AttributedBody.Text
		if text == "" {
			text = content.Body
		}

		normalized := Message{
			URN:    event.EntityUrn,
			Text:   text,
			SentAt: event.CreatedAt.Time,
		}
		if event.From.Member != nil {
			normalized.Sender = normalizeParticipant(&event.From.Member.MiniProfile)
		} else if event.FromRef != "" {
			if mini := decodeMiniProfile(env.resolveReference(event.FromRef)); profileShaped(mini) {
				normalized.Sender = normalizeParticipant(mini)
			}
		}
		out = append(out, normalized)
	}
	return out, nil
}
