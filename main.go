package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/pedro-boudoux/sublet-app/routes"
	"github.com/pedro-boudoux/sublet-app/services"
	"github.com/pedro-boudoux/sublet-app/socket"
)

func main() {
	// Load .env if present; in production everything comes from the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	listingService := &services.ListingService{Dynamo: dynamoService}
	accountService := &services.AccountService{Dynamo: dynamoService, Listings: listingService}
	matchService := &services.MatchService{Dynamo: dynamoService, Accounts: accountService}
	swipeLedger := &services.SwipeLedger{Dynamo: dynamoService}
	swipeService := &services.SwipeService{
		Ledger:   swipeLedger,
		Matches:  matchService,
		Listings: listingService,
	}
	feedService := &services.FeedService{
		Accounts: accountService,
		Listings: listingService,
		Ledger:   swipeLedger,
	}
	savedListingService := &services.SavedListingService{Dynamo: dynamoService, Listings: listingService}
	locationService := &services.LocationService{Dynamo: dynamoService}
	s3Service := services.NewS3Service()

	// Socket server for live message delivery
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	messageService := &services.MessageService{
		Dynamo:   dynamoService,
		Matches:  matchService,
		Notifier: socketServer,
	}

	// Voice onboarding is optional; it only comes up when both API keys
	// are configured.
	var onboardingService *services.OnboardingService
	elevenLabsKey := os.Getenv("ELEVENLABS_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if elevenLabsKey != "" && geminiKey != "" {
		extractor, err := services.NewGeminiExtractor(geminiKey)
		if err != nil {
			log.Fatalf("Failed to initialize GenAI client: %v", err)
		}
		defer extractor.Close()
		onboardingService = &services.OnboardingService{
			Transcriber: services.NewElevenLabsClient(elevenLabsKey),
			Extractor:   extractor,
		}
	} else {
		log.Println("Voice onboarding disabled: ELEVENLABS_API_KEY or GEMINI_API_KEY not set")
	}

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
		fmt.Fprintln(w, "Welcome to SubletConnect")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterFeedRoutes(r, feedService)
	routes.RegisterUserRoutes(r, accountService)
	routes.RegisterListingRoutes(r, listingService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterMessageRoutes(r, messageService)
	routes.RegisterSavedRoutes(r, savedListingService)
	routes.RegisterLocationRoutes(r, locationService)
	routes.RegisterS3Routes(r, s3Service)
	if onboardingService != nil {
		routes.RegisterOnboardingRoutes(r, onboardingService)
	}

	// Socket.IO endpoint
	r.PathPrefix("/socket.io/").Handler(socketServer)

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
