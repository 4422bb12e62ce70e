package models

// Match is a proposed pairing between an SOS request and a volunteer (skill match)
// or a resource owner (resource match). Exactly one of skillId/skillType or
// resourceId/resourceType is set.
type Match struct {
	MatchID         string   `dynamodbav:"matchId" json:"matchId"`
	RequestID       string   `dynamodbav:"requestId" json:"requestId"`
	VolunteerID     string   `dynamodbav:"volunteerId" json:"volunteerId"`
	SkillID         string   `dynamodbav:"skillId,omitempty" json:"skillId,omitempty"`
	SkillType       string   `dynamodbav:"skillType,omitempty" json:"skillType,omitempty"`
	ResourceID      string   `dynamodbav:"resourceId,omitempty" json:"resourceId,omitempty"`
	ResourceType    string   `dynamodbav:"resourceType,omitempty" json:"resourceType,omitempty"`
	MatchScore      float64  `dynamodbav:"matchScore" json:"matchScore"`
	Distance        float64  `dynamodbav:"distance" json:"distance"` // kilometers
	TrustScore      *float64 `dynamodbav:"trustScore,omitempty" json:"trustScore,omitempty"`
	Status          string   `dynamodbav:"status" json:"status"`
	AcceptedAt      string   `dynamodbav:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	RejectedAt      string   `dynamodbav:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
	RejectionReason string   `dynamodbav:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// MatchesTable is the DynamoDB table name for match records
const MatchesTable = "Matches"

// MatchesRequestIndex is the GSI keyed on requestId for per-request listing
const MatchesRequestIndex = "requestId-index"

// ResourceMatchScore is the fixed score assigned to resource matches; resources
// are not trust-rated, so they are ranked by distance only.
const ResourceMatchScore = 8.0

// MatchStats is the aggregate view returned by GET /api/stats
type MatchStats struct {
	Total            int    `json:"total"`
	Pending          int    `json:"pending"`
	Accepted         int    `json:"accepted"`
	Rejected         int    `json:"rejected"`
	AverageMatchTime string `json:"averageMatchTime"` // HH:MM:SS over accepted matches
}
