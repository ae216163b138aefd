package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/guestlist/internal/auth"
	"github.com/mmynk/guestlist/internal/config"
	"github.com/mmynk/guestlist/internal/guests"
	"github.com/mmynk/guestlist/internal/metrics"
	"github.com/mmynk/guestlist/internal/middleware"
	"github.com/mmynk/guestlist/internal/service"
	"github.com/mmynk/guestlist/internal/storage"
	"github.com/mmynk/guestlist/internal/storage/memory"
	"github.com/mmynk/guestlist/internal/storage/sqlite"
	"github.com/mmynk/guestlist/pkg/api/apiconnect"
	"github.com/mmynk/guestlist/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(os.Stderr, slog.LevelInfo)
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	m := metrics.New()

	store, err := guests.Open(ctx, kv, cfg.StorageKey,
		guests.WithIDPolicy(cfg.IDPolicy),
		guests.WithMetrics(m),
	)
	if err != nil {
		return err
	}
	slog.Info("Guest list ready", "count", store.Len(), "id_policy", cfg.IDPolicy)

	mux := http.NewServeMux()

	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if cfg.AuthEnabled() {
		authenticator, err := auth.NewPasswordAuthenticator(cfg.HostPasswordHash)
		if err != nil {
			return err
		}
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager,
			apiconnect.GuestServiceAddGuestProcedure,
			apiconnect.GuestServiceDeleteGuestProcedure,
		))

		authPath, authHandler := apiconnect.NewAuthServiceHandler(
			service.NewAuthService(authenticator, jwtManager, slog.Default()),
			connect.WithInterceptors(middleware.LoggingInterceptor()),
		)
		mux.Handle(authPath, authHandler)
		slog.Info("Host authentication enabled", "token_ttl", cfg.TokenTTL)
	}

	guestPath, guestHandler := apiconnect.NewGuestServiceHandler(
		service.NewGuestService(store),
		connect.WithInterceptors(interceptors...),
	)
	mux.Handle(guestPath, guestHandler)

	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with h2c for HTTP/2 without TLS
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func openStorage(cfg *config.Config) (storage.Store, error) {
	if cfg.Storage == config.StorageMemory {
		slog.Warn("Using in-memory storage; the guest list will not survive a restart")
		return memory.New(), nil
	}

	kv, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Storage initialized", "database", cfg.DBPath)
	return kv, nil
}

// loggingMiddleware logs plain HTTP requests. RPCs are logged by the Connect interceptor.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
