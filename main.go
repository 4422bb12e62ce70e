package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"sosmatch_server/queue"
	"sosmatch_server/routes"
	"sosmatch_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	matchConfig := services.LoadMatchConfigFromEnv()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Redis for the event bus and the SOS request queue
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})

	// Initialize Services
	registryClient := services.NewRegistryClient(matchConfig)
	scoring := services.ScoringService{}
	skillMatcher := &services.SkillMatcherService{Config: matchConfig, Registry: registryClient, Scoring: scoring}
	resourceMatcher := &services.ResourceMatcherService{Config: matchConfig, Registry: registryClient, Scoring: scoring}
	matchStore := &services.MatchStore{Dynamo: dynamoService}
	eventPublisher := &services.EventPublisher{Redis: redisClient}
	orchestrator := &services.OrchestratorService{
		Config:    matchConfig,
		Disasters: registryClient,
		SOS:       registryClient,
		Skills:    skillMatcher,
		Resources: resourceMatcher,
		Store:     matchStore,
		Events:    eventPublisher,
	}

	// Start the queue consumer for sos.request.created
	consumer := &queue.Consumer{Redis: redisClient, Orchestrator: orchestrator}
	go consumer.Start(context.Background())

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SOS Match")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterMatchRoutes(r, orchestrator, matchStore)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
