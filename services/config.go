package services

import (
	"os"
	"strconv"
	"time"
)

// MatchConfig carries the externally tunable matching parameters. It is built
// once in main and passed into the services that need it, never read from the
// environment at call sites.
type MatchConfig struct {
	MatchScoreThreshold float64       // minimum score for a skill match to survive
	MaxRadiusKm         float64       // default search radius
	MaxMatches          int           // cap on matches returned per request
	CollaboratorTimeout time.Duration // per registry/collaborator HTTP call

	DisasterServiceURL string
	SOSServiceURL      string
	RegistryServiceURL string
}

// DefaultMatchConfig returns the reference configuration
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MatchScoreThreshold: 5.0,
		MaxRadiusKm:         50,
		MaxMatches:          10,
		CollaboratorTimeout: 5 * time.Second,
	}
}

// LoadMatchConfigFromEnv builds a MatchConfig from environment variables,
// falling back to the defaults for anything unset or unparsable
func LoadMatchConfigFromEnv() MatchConfig {
	cfg := DefaultMatchConfig()

	if v := os.Getenv("MATCH_SCORE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MatchScoreThreshold = f
		}
	}
	if v := os.Getenv("MAX_SEARCH_RADIUS_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.MaxRadiusKm = f
		}
	}
	if v := os.Getenv("MAX_MATCHES_PER_REQUEST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxMatches = n
		}
	}

	cfg.DisasterServiceURL = os.Getenv("DISASTER_SERVICE_URL")
	cfg.SOSServiceURL = os.Getenv("SOS_SERVICE_URL")
	cfg.RegistryServiceURL = os.Getenv("REGISTRY_SERVICE_URL")

	return cfg
}
