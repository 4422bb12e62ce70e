package models

// Redis channels for the async transport
const (
	ChannelSOSRequestCreated = "sos.request.created"
	ChannelMatchCreated      = "match.created"
	ChannelMatchAccepted     = "match.accepted"
)

// MatchCreatedEvent is published once per persisted match
type MatchCreatedEvent struct {
	MatchID      string `json:"matchId"`
	RequestID    string `json:"requestId"`
	VolunteerID  string `json:"volunteerId"`
	SkillType    string `json:"skillType,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
}

// MatchAcceptedEvent is published when a volunteer accepts a match
type MatchAcceptedEvent struct {
	MatchID     string `json:"matchId"`
	RequestID   string `json:"requestId"`
	VolunteerID string `json:"volunteerId"`
}
