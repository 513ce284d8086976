package transitcatalogue

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds POSTed stat request documents.
const maxBodyBytes = 1 << 20

type ctxKey int

const requestIDKey ctxKey = 0

// Server exposes a Service over HTTP.
type Server struct {
	svc            *Service
	cache          *ResponseCache
	builder        *formatter.ResponseBuilder
	defaultFormat  string
	allowedOrigins []string
	started        time.Time
	httpServer     *http.Server
}

// NewServer creates a server for svc using the server and output sections of cfg.
func NewServer(svc *Service, cfg config.AppConfig) *Server {
	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s := &Server{
		svc:            svc,
		cache:          NewResponseCache(cfg.Server.CacheEntries),
		builder:        formatter.NewResponseBuilder(),
		defaultFormat:  cfg.Output.Format,
		allowedOrigins: origins,
		started:        time.Now(),
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Routes returns the HTTP handler with all endpoints mounted.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}))

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/buses", s.handleBuses)
	r.Get("/api/buses/{name}", s.handleBus)
	r.Get("/api/stops", s.handleStops)
	r.Get("/api/stops/{name}", s.handleStop)
	r.Get("/api/route", s.handleRoute)
	r.Get("/api/map", s.handleMap)
	r.Get("/api/map.svg", s.handleMapSVG)
	r.Post("/api/stat_requests", s.handleStatRequests)
	return r
}

// Start listens in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			glog.Fatalf("server error: %v", err)
		}
	}()
	glog.Infof("server listening on %s", s.httpServer.Addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts the server down.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	glog.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		glog.Errorf("server shutdown error: %v", err)
	} else {
		glog.Info("server shut down successfully")
	}
	glog.Flush()
}

// requestID reuses a valid incoming X-Request-ID or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		glog.V(1).Infof("%s %s %s", id, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestIDFromContext returns the id assigned by the request id middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
