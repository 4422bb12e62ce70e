package routes

import (
	"sosmatch_server/controllers"
	"sosmatch_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up the matching and lifecycle routes under /api
func RegisterMatchRoutes(r *mux.Router, orchestrator *services.OrchestratorService, store *services.MatchStore) {
	controller := controllers.NewMatchController(orchestrator, store)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/match", controller.CreateMatches).Methods("POST")
	api.HandleFunc("/matches/{matchId}/accept", controller.AcceptMatch).Methods("POST")
	api.HandleFunc("/matches/{matchId}/reject", controller.RejectMatch).Methods("POST")
	api.HandleFunc("/matches", controller.ListMatches).Methods("GET")
	api.HandleFunc("/stats", controller.GetStats).Methods("GET")
}
