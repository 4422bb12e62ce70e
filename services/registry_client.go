package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"sosmatch_server/models"
)

// Collaborator interfaces consumed by the matching pipeline. RegistryClient
// implements all of them against the real services; tests substitute stubs.

// DisasterRegistry resolves disaster metadata by ID
type DisasterRegistry interface {
	GetDisasterType(ctx context.Context, disasterID string) (string, error)
}

// SOSReporter reports request lifecycle state back to the SOS-request service
type SOSReporter interface {
	UpdateRequestStatus(ctx context.Context, requestID, status string) error
}

// SkillRegistry supplies volunteer skill candidates near a location
type SkillRegistry interface {
	FindSkillCandidates(ctx context.Context, skillType string, location models.Location, radiusKm float64) ([]models.SkillCandidate, error)
}

// ResourceRegistry supplies resource candidates near a location
type ResourceRegistry interface {
	FindResourceCandidates(ctx context.Context, resourceType string, location models.Location, radiusKm float64) ([]models.ResourceCandidate, error)
}

// RegistryClient is the HTTP client for the disaster registry, SOS-request
// service, and skill/resource registry collaborators
type RegistryClient struct {
	DisasterBaseURL string
	SOSBaseURL      string
	RegistryBaseURL string
	HTTPClient      *http.Client
}

// NewRegistryClient creates a collaborator client with the configured
// per-call timeout
func NewRegistryClient(cfg MatchConfig) *RegistryClient {
	return &RegistryClient{
		DisasterBaseURL: cfg.DisasterServiceURL,
		SOSBaseURL:      cfg.SOSServiceURL,
		RegistryBaseURL: cfg.RegistryServiceURL,
		HTTPClient: &http.Client{
			Timeout: cfg.CollaboratorTimeout,
		},
	}
}

// GetDisasterType looks up a disaster by ID and returns its type
func (c *RegistryClient) GetDisasterType(ctx context.Context, disasterID string) (string, error) {
	endpoint := fmt.Sprintf("%s/disasters/%s", c.DisasterBaseURL, disasterID)

	var payload struct {
		DisasterType string `json:"disasterType"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if payload.DisasterType == "" {
		return "", fmt.Errorf("disaster %s has no disasterType", disasterID)
	}
	return payload.DisasterType, nil
}

// UpdateRequestStatus reports the request's status to the SOS-request service
func (c *RegistryClient) UpdateRequestStatus(ctx context.Context, requestID, status string) error {
	endpoint := fmt.Sprintf("%s/requests/%s/status", c.SOSBaseURL, requestID)

	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update request %s status: %w", requestID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SOS service returned status %d for request %s", resp.StatusCode, requestID)
	}
	return nil
}

// FindSkillCandidates queries the skill registry for candidates of one skill
// type near the given location
func (c *RegistryClient) FindSkillCandidates(ctx context.Context, skillType string, location models.Location, radiusKm float64) ([]models.SkillCandidate, error) {
	endpoint := c.registryURL("/skills", skillType, "skillType", location, radiusKm)

	var payload struct {
		Skills []models.SkillCandidate `json:"skills"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Skills, nil
}

// FindResourceCandidates queries the resource registry for candidates of one
// resource type near the given location
func (c *RegistryClient) FindResourceCandidates(ctx context.Context, resourceType string, location models.Location, radiusKm float64) ([]models.ResourceCandidate, error) {
	endpoint := c.registryURL("/resources", resourceType, "resourceType", location, radiusKm)

	var payload struct {
		Resources []models.ResourceCandidate `json:"resources"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Resources, nil
}

func (c *RegistryClient) registryURL(path, typeValue, typeParam string, location models.Location, radiusKm float64) string {
	params := url.Values{}
	params.Set(typeParam, typeValue)
	params.Set("latitude", strconv.FormatFloat(location.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(location.Longitude, 'f', -1, 64))
	params.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	return fmt.Sprintf("%s%s?%s", c.RegistryBaseURL, path, params.Encode())
}

func (c *RegistryClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}
