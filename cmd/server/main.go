package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/princengoc/unspoken-sub000/internal/common/clock"
	commonUUID "github.com/princengoc/unspoken-sub000/internal/common/uuid"
	"github.com/princengoc/unspoken-sub000/internal/handlers/ws"
	"github.com/princengoc/unspoken-sub000/internal/pubsub"
	cardRepo "github.com/princengoc/unspoken-sub000/internal/repositories/card"
	exchangeRepo "github.com/princengoc/unspoken-sub000/internal/repositories/exchange"
	playerRepo "github.com/princengoc/unspoken-sub000/internal/repositories/player"
	reactionRepo "github.com/princengoc/unspoken-sub000/internal/repositories/reaction"
	roomRepo "github.com/princengoc/unspoken-sub000/internal/repositories/room"
	"github.com/princengoc/unspoken-sub000/internal/rotation"
	cardsService "github.com/princengoc/unspoken-sub000/internal/services/cards"
	exchangeService "github.com/princengoc/unspoken-sub000/internal/services/exchange"
	reactionService "github.com/princengoc/unspoken-sub000/internal/services/reaction"
	roomService "github.com/princengoc/unspoken-sub000/internal/services/room"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	roomR, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create room repository: %v", err)
	}

	playerR, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	cardR, err := cardRepo.NewRedis(&cardRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create card repository: %v", err)
	}

	exchangeR, err := exchangeRepo.NewRedis(&exchangeRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create exchange repository: %v", err)
	}

	reactionR, err := reactionRepo.NewRedis(&reactionRepo.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create reaction repository: %v", err)
	}

	// Initialize pubsub over the same Redis
	ps, err := pubsub.NewRedis(&pubsub.Config{RedisClient: redisClient})
	if err != nil {
		log.Fatalf("Failed to create pubsub: %v", err)
	}

	// Initialize shared collaborators
	picker := rotation.New(&rotation.Config{})
	clk := &clock.DefaultClock{}
	uuidGen := commonUUID.New()

	// Initialize services
	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:     roomR,
		PlayerRepo:   playerR,
		CardRepo:     cardR,
		ExchangeRepo: exchangeR,
		ReactionRepo: reactionR,
		Picker:       picker,
		Publisher:    ps,
		Clock:        clk,
		UUID:         uuidGen,
		MaxPlayers:   getEnvInt("MAX_PLAYERS", 8),
	})
	if err != nil {
		log.Fatalf("Failed to create room service: %v", err)
	}

	cardsSvc, err := cardsService.New(&cardsService.Config{
		RoomRepo:   roomR,
		PlayerRepo: playerR,
		CardRepo:   cardR,
		Publisher:  ps,
		Clock:      clk,
	})
	if err != nil {
		log.Fatalf("Failed to create cards service: %v", err)
	}

	exchangeSvc, err := exchangeService.New(&exchangeService.Config{
		RoomRepo:     roomR,
		PlayerRepo:   playerR,
		CardRepo:     cardR,
		ExchangeRepo: exchangeR,
		Publisher:    ps,
		Clock:        clk,
		UUID:         uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create exchange service: %v", err)
	}

	reactionSvc, err := reactionService.New(&reactionService.Config{
		RoomRepo:     roomR,
		PlayerRepo:   playerR,
		ReactionRepo: reactionR,
		Publisher:    ps,
		Clock:        clk,
	})
	if err != nil {
		log.Fatalf("Failed to create reaction service: %v", err)
	}

	// Initialize the websocket gateway
	var allowedOrigins []string
	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		allowedOrigins = splitOrigins(origins)
	}

	gateway, err := ws.New(&ws.Config{
		RoomService:     roomSvc,
		CardsService:    cardsSvc,
		ExchangeService: exchangeSvc,
		ReactionService: reactionSvc,
		Hub:             ws.NewHub(ps),
		AllowedOrigins:  allowedOrigins,
	})
	if err != nil {
		log.Fatalf("Failed to create gateway: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", gateway)
	mux.HandleFunc("/rooms", ws.MakeCreateRoomHandler(roomSvc))

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: mux,
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return parsed
}

func splitOrigins(origins string) []string {
	var result []string
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
