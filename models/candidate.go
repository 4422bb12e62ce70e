package models

// SkillCandidate is a volunteer skill record as returned by the skill registry.
// This service reads candidates, it does not own them.
type SkillCandidate struct {
	UserID             string   `json:"userId"`
	SkillID            string   `json:"skillId"`
	SkillType          string   `json:"skillType"`
	Location           Location `json:"location"`
	Availability       string   `json:"availability"`
	Verified           bool     `json:"verified"`
	TrustScore         *float64 `json:"trustScore,omitempty"` // 0-10, defaults to 5.0 when absent
	CertificationLevel string   `json:"certificationLevel,omitempty"`
}

// ResourceCandidate is a physical resource record as returned by the resource registry
type ResourceCandidate struct {
	OwnerID      string   `json:"ownerId"`
	ResourceID   string   `json:"resourceId"`
	ResourceType string   `json:"resourceType"`
	Location     Location `json:"location"`
	Availability string   `json:"availability"`
}

// ScoredSkillCandidate is a skill candidate that passed filtering, annotated with
// its computed distance and suitability score
type ScoredSkillCandidate struct {
	Candidate  SkillCandidate
	DistanceKm float64
	Score      float64
}

// RankedResourceCandidate is a resource candidate that passed filtering, annotated
// with its computed distance
type RankedResourceCandidate struct {
	Candidate  ResourceCandidate
	DistanceKm float64
}

// TagFailure records a registry query that failed for one skill or resource tag.
// Failures are collected, not fatal: matching proceeds with the tags that succeeded.
type TagFailure struct {
	Tag string
	Err error
}
