package utils

import (
	"fmt"

	"sosmatch_server/models"
)

// FieldError describes one validation failure on an inbound request
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateMatchRequest checks a MatchRequest and returns every failure at once
// rather than stopping at the first
func ValidateMatchRequest(req models.MatchRequest) []FieldError {
	var errs []FieldError

	if req.RequestID == "" {
		errs = append(errs, FieldError{Field: "requestId", Message: "requestId is required"})
	}
	if req.DisasterID == "" {
		errs = append(errs, FieldError{Field: "disasterId", Message: "disasterId is required"})
	}
	if req.DisasterType != "" && !models.IsValidDisasterType(req.DisasterType) {
		errs = append(errs, FieldError{Field: "disasterType", Message: fmt.Sprintf("unknown disaster type %q", req.DisasterType)})
	}

	if req.Location == nil {
		errs = append(errs, FieldError{Field: "location", Message: "location is required"})
	} else {
		if req.Location.Latitude == nil {
			errs = append(errs, FieldError{Field: "location.latitude", Message: "location.latitude is required"})
		}
		if req.Location.Longitude == nil {
			errs = append(errs, FieldError{Field: "location.longitude", Message: "location.longitude is required"})
		}
	}

	if req.Urgency == "" {
		errs = append(errs, FieldError{Field: "urgency", Message: "urgency is required"})
	} else if !models.IsValidUrgency(req.Urgency) {
		errs = append(errs, FieldError{Field: "urgency", Message: fmt.Sprintf("unknown urgency %q", req.Urgency)})
	}

	if req.Radius != nil && *req.Radius <= 0 {
		errs = append(errs, FieldError{Field: "radius", Message: "radius must be positive"})
	}

	return errs
}
