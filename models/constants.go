package models

// ✅ Match Statuses (lifecycle is one-way: pending -> accepted OR pending -> rejected)
const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

// ✅ Urgency Tiers
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

// ✅ Disaster Types
const (
	DisasterFlood      = "flood"
	DisasterEarthquake = "earthquake"
	DisasterCyclone    = "cyclone"
	DisasterFire       = "fire"
	DisasterTsunami    = "tsunami"
	DisasterLandslide  = "landslide"
)

// DefaultDisasterType is used when the disaster registry cannot resolve a type
const DefaultDisasterType = DisasterFlood

// ✅ Certification Levels (skill candidates only)
const (
	CertificationNone         = "none"
	CertificationIntermediate = "intermediate"
	CertificationExpert       = "expert"
)

// AvailabilityAvailable is the only availability value that qualifies a candidate
const AvailabilityAvailable = "available"

// DisasterSkillMap maps a disaster type to the skills searched when a request
// does not enumerate requiredSkills. Unknown types map to no skills.
var DisasterSkillMap = map[string][]string{
	DisasterFlood:      {"boat_operator", "swimmer", "medic", "rescue_diver"},
	DisasterEarthquake: {"rescuer", "structural_engineer", "medic", "heavy_lifting"},
	DisasterCyclone:    {"shelter_manager", "logistics", "medic", "evacuation_specialist"},
	DisasterFire:       {"firefighter", "electrician", "medic", "smoke_diver"},
	DisasterTsunami:    {"rescue_diver", "medic", "boat_operator", "swimmer"},
	DisasterLandslide:  {"rescuer", "medic", "heavy_lifting", "structural_engineer"},
}

// SkillsForDisaster returns the default skill set for a disaster type
func SkillsForDisaster(disasterType string) []string {
	return DisasterSkillMap[disasterType]
}

// IsValidUrgency reports whether the given urgency tier is known
func IsValidUrgency(urgency string) bool {
	switch urgency {
	case UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// IsValidDisasterType reports whether the given disaster type is known
func IsValidDisasterType(disasterType string) bool {
	_, ok := DisasterSkillMap[disasterType]
	return ok
}
