package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vocabquest/vocabquest-go/internal/api/handler"
	"github.com/vocabquest/vocabquest-go/internal/api/middleware"
	"github.com/vocabquest/vocabquest-go/internal/services/auth"
	"github.com/vocabquest/vocabquest-go/internal/services/dictionary"
	"github.com/vocabquest/vocabquest-go/internal/services/session"
	"github.com/vocabquest/vocabquest-go/internal/services/social"
	"github.com/vocabquest/vocabquest-go/internal/services/vocab"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	SessionService *session.Service
	DictService    dictionary.ServiceInterface
	VocabService   *vocab.Service
	SocialService  *social.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	roomHandler := handler.NewRoomHandler(cfg.SessionService, cfg.Logger)
	dictHandler := handler.NewDictionaryHandler(cfg.DictService)
	vocabHandler := handler.NewVocabHandler(cfg.VocabService)
	socialHandler := handler.NewSocialHandler(cfg.SocialService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for signup/signin)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", authHandler.Signin).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/signout", authHandler.Signout).Methods(http.MethodPost)

	// User routes (all require auth)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(authMiddleware)
	users.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet)
	users.HandleFunc("/me", authHandler.UpdateMe).Methods(http.MethodPatch)
	users.HandleFunc("/search", socialHandler.SearchUsers).Methods(http.MethodGet)

	// Room routes (all require auth)
	rooms := api.PathPrefix("/rooms").Subrouter()
	rooms.Use(authMiddleware)
	rooms.HandleFunc("", roomHandler.List).Methods(http.MethodGet)
	rooms.HandleFunc("", roomHandler.Create).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}", roomHandler.Get).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}/join", roomHandler.Join).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/leave", roomHandler.Leave).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/ready", roomHandler.Ready).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/start", roomHandler.Start).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/submit", roomHandler.Submit).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/tick", roomHandler.Tick).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/reset", roomHandler.Reset).Methods(http.MethodPost)
	rooms.HandleFunc("/{id}/standings", roomHandler.Standings).Methods(http.MethodGet)
	rooms.HandleFunc("/{id}/events", roomHandler.Events).Methods(http.MethodGet)

	// Dictionary routes (all require auth)
	dict := api.PathPrefix("/dictionary").Subrouter()
	dict.Use(authMiddleware)
	dict.HandleFunc("/{word}", dictHandler.Lookup).Methods(http.MethodGet)

	// Vocabulary routes (all require auth)
	vocabulary := api.PathPrefix("/vocabulary").Subrouter()
	vocabulary.Use(authMiddleware)
	vocabulary.HandleFunc("", vocabHandler.List).Methods(http.MethodGet)
	vocabulary.HandleFunc("", vocabHandler.Add).Methods(http.MethodPost)
	vocabulary.HandleFunc("/{id}", vocabHandler.Get).Methods(http.MethodGet)
	vocabulary.HandleFunc("/{id}", vocabHandler.Update).Methods(http.MethodPatch)
	vocabulary.HandleFunc("/{id}", vocabHandler.Remove).Methods(http.MethodDelete)

	// Friend routes (all require auth)
	friends := api.PathPrefix("/friends").Subrouter()
	friends.Use(authMiddleware)
	friends.HandleFunc("", socialHandler.ListFriends).Methods(http.MethodGet)
	friends.HandleFunc("/requests", socialHandler.ListRequests).Methods(http.MethodGet)
	friends.HandleFunc("/requests", socialHandler.SendRequest).Methods(http.MethodPost)
	friends.HandleFunc("/requests/{id}/accept", socialHandler.AcceptRequest).Methods(http.MethodPost)
	friends.HandleFunc("/requests/{id}/decline", socialHandler.DeclineRequest).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
