package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sosmatch_server/models"
	"sosmatch_server/services"
	"sosmatch_server/utils"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for match-related actions
type MatchController struct {
	Orchestrator *services.OrchestratorService
	Store        *services.MatchStore
}

// NewMatchController creates a new MatchController instance
func NewMatchController(orchestrator *services.OrchestratorService, store *services.MatchStore) *MatchController {
	return &MatchController{Orchestrator: orchestrator, Store: store}
}

// CreateMatches handles POST /api/match: validates the request body and runs the
// matching pipeline synchronously
func (mc *MatchController) CreateMatches(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if errs := utils.ValidateMatchRequest(req); len(errs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "validation failed",
			"details": errs,
		})
		return
	}

	result, err := mc.Orchestrator.ProcessSOSRequest(r.Context(), req)
	if err != nil {
		http.Error(w, "failed to process match request", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// AcceptMatch handles POST /api/matches/{matchId}/accept
func (mc *MatchController) AcceptMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var body struct {
		VolunteerID string `json:"volunteerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.VolunteerID == "" {
		http.Error(w, "volunteerId is required", http.StatusBadRequest)
		return
	}

	match, err := mc.Orchestrator.AcceptMatch(r.Context(), matchID, body.VolunteerID)
	if err != nil {
		mc.writeLifecycleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(match)
}

// RejectMatch handles POST /api/matches/{matchId}/reject
func (mc *MatchController) RejectMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var body struct {
		VolunteerID string `json:"volunteerId"`
		Reason      string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.VolunteerID == "" {
		http.Error(w, "volunteerId is required", http.StatusBadRequest)
		return
	}

	match, err := mc.Orchestrator.RejectMatch(r.Context(), matchID, body.VolunteerID, body.Reason)
	if err != nil {
		mc.writeLifecycleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(match)
}

// ListMatches handles GET /api/matches?requestId=...
func (mc *MatchController) ListMatches(w http.ResponseWriter, r *http.Request) {
	requestID := r.URL.Query().Get("requestId")
	if requestID == "" {
		http.Error(w, "requestId is required", http.StatusBadRequest)
		return
	}

	matches, err := mc.Store.ListByRequest(r.Context(), requestID)
	if err != nil {
		http.Error(w, "failed to fetch matches", http.StatusInternalServerError)
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"requestId": requestID,
		"matches":   matches,
	})
}

// GetStats handles GET /api/stats
func (mc *MatchController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := mc.Store.Stats(r.Context())
	if err != nil {
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stats)
}

func (mc *MatchController) writeLifecycleError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrMatchNotFound) {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}
	http.Error(w, "failed to update match", http.StatusInternalServerError)
}
