package models

// Location is a resolved coordinate pair used throughout the matching pipeline
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationInput is the inbound coordinate shape. Pointers distinguish a missing
// field from a genuine 0.0 so validation can report it.
type LocationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// MatchRequest is the transient trigger for one orchestration run. It arrives
// either as the POST /api/match body or as a sos.request.created queue payload,
// and is not persisted.
type MatchRequest struct {
	RequestID         string         `json:"requestId"`
	DisasterID        string         `json:"disasterId"`
	DisasterType      string         `json:"disasterType,omitempty"`
	RequiredSkills    []string       `json:"requiredSkills,omitempty"`
	RequiredResources []string       `json:"requiredResources,omitempty"`
	Location          *LocationInput `json:"location"`
	Urgency           string         `json:"urgency"`
	Radius            *float64       `json:"radius,omitempty"`
}

// Point returns the request location as a resolved Location. Only call after
// validation has confirmed both coordinates are present.
func (r MatchRequest) Point() Location {
	return Location{Latitude: *r.Location.Latitude, Longitude: *r.Location.Longitude}
}

// MatchResult is the response shape of one orchestration run
type MatchResult struct {
	RequestID       string  `json:"requestId"`
	Matches         []Match `json:"matches"`
	ResourceMatches []Match `json:"resourceMatches"`
	MatchedAt       string  `json:"matchedAt"`
}
