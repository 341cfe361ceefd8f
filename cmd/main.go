package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"presence-hub/auth"
	"presence-hub/gateway"
	"presence-hub/internal"
	"presence-hub/moderation"
	"presence-hub/registry"
	"presence-hub/repositories"
	"presence-hub/runtime"
	"presence-hub/services"
	"presence-hub/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so every defer fires before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Registry, repositories and services
	reg := registry.NewBadgerRegistry(db)
	hub := runtime.NewHub()
	router := runtime.NewEventRouter(reg, hub, log)

	users := repositories.NewUserRepository(db)
	conversations := repositories.NewConversationRepository(db)

	moderator, err := buildModerator(config)
	if err != nil {
		return err
	}

	notifications := services.NewNotificationService(repositories.NewNotificationRepository(db), users, router, log)
	messages := services.NewMessageService(
		repositories.NewMessageRepository(db, log),
		conversations,
		users,
		notifications,
		storage.NewAttachmentStore(config.AttachmentDir, config.MaxAttachmentSize, log),
		moderator,
		log,
	)
	presence := services.NewPresenceService(reg, users, log)
	channels := services.NewChannelService(reg, log)
	calls := services.NewCallService(reg, messages, log)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Background workers
	sup := runtime.NewSupervisor(log).
		Add(runtime.NewPresenceRefresher(reg, hub, config.PresenceRefreshInterval, log))
	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	// 6. HTTP server
	verifier := auth.NewVerifier(config.JWTSecret)
	gw := gateway.New(verifier, hub, router, presence, channels, messages, notifications, calls, config.MaxAttachmentSize, log)

	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)
	gw.Routes(mux)

	if config.DebugPort > 0 {
		internal.NewDebugServer(db, hub, presence, log).Start(config.DebugPort)
	}

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{Addr: address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting realtime server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("Server shutdown incomplete", "err", err)
	}
	sup.Stop()
	<-supDone
	log.Info("Program stopped cleanly")

	return nil
}

func buildModerator(config internal.Config) (*moderation.Moderator, error) {
	words := config.Words()
	if len(words) == 0 {
		return nil, nil
	}
	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.NewModerator(words, replacement)
	if err != nil {
		return nil, fmt.Errorf("building moderator: %w", err)
	}
	return &moderator, nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
