package web

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/osmwrangle/internal/web/handlers"
)

// Config holds the server settings.
type Config struct {
	Host string
	Port int
}

// Server exposes the manual-resolution report and the exploration queries
// over the loaded store.
type Server struct {
	config     Config
	db         *sql.DB
	httpServer *http.Server
	router     *mux.Router
}

// NewServer wires the routes over an open database connection.
func NewServer(config Config, db *sql.DB) *Server {
	server := &Server{config: config, db: db}
	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server
}

func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	problemsHandler := &handlers.ProblemsHandler{DB: s.db}
	recordsHandler := &handlers.RecordsHandler{DB: s.db}
	statsHandler := &handlers.StatsHandler{DB: s.db}

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/problems", problemsHandler.ListProblems).Methods("GET")
	api.HandleFunc("/records/{id:[0-9]+}/tags", recordsHandler.GetRecordTags).Methods("GET")
	api.HandleFunc("/stats/streets", statsHandler.TopStreets).Methods("GET")
	api.HandleFunc("/stats/amenities", statsHandler.TopAmenities).Methods("GET")
	api.HandleFunc("/stats/users", statsHandler.TopUsers).Methods("GET")
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	go func() {
		log.Printf("report server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
