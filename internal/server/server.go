package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"

	"github.com/rishabhparsediya7/expensemanager-psql/config"
	chatHttp "github.com/rishabhparsediya7/expensemanager-psql/internal/chat/delivery/http"
	chatRepo "github.com/rishabhparsediya7/expensemanager-psql/internal/chat/repository"
	chatUC "github.com/rishabhparsediya7/expensemanager-psql/internal/chat/usecase"
	keysHttp "github.com/rishabhparsediya7/expensemanager-psql/internal/keys/delivery/http"
	keysRepo "github.com/rishabhparsediya7/expensemanager-psql/internal/keys/repository"
	keysUC "github.com/rishabhparsediya7/expensemanager-psql/internal/keys/usecase"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/middleware"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/presence"
	"github.com/rishabhparsediya7/expensemanager-psql/internal/relay"
	"github.com/rishabhparsediya7/expensemanager-psql/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg    config.Config
	logger logger.Logger
	http   *http.Server
}

func NewServer(cfg config.Config, db *bun.DB, lg logger.Logger) *Server {
	keyRepository := keysRepo.NewKeyRepository(db, lg)
	keyUsecase := keysUC.NewKeyUsecase(keyRepository, lg, cfg)
	keyHandlers := keysHttp.NewKeyHandlers(keyUsecase, lg)

	chatRepository := chatRepo.NewChatRepository(db, lg)
	chatUsecase := chatUC.NewChatUsecase(chatRepository, lg)
	chatHandlers := chatHttp.NewChatHandlers(chatUsecase, lg)

	registry := presence.NewRegistry()
	rl := relay.NewRelay(registry, keyUsecase, chatUsecase, lg)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Welcome to the K-Server"})
	})

	auth := middleware.AuthenticateJWT(cfg, lg)

	api := http.NewServeMux()
	api.HandleFunc("POST /api/chat/keys", keyHandlers.UploadKeys)
	api.HandleFunc("POST /api/chat/passphrase", keyHandlers.UploadPassphrase)
	api.HandleFunc("GET /api/chat/keys/{userId}", keyHandlers.GetKeyBundle)
	api.HandleFunc("GET /api/chat/public-key/{userId}", keyHandlers.GetPublicKey)
	api.HandleFunc("POST /api/chat/message", chatHandlers.SendMessage)
	api.HandleFunc("GET /api/chat/history", chatHandlers.GetHistory)
	api.HandleFunc("GET /api/chat/friends/{userId}", chatHandlers.GetFriends)
	mux.Handle("/api/chat/", auth(api))

	mux.HandleFunc("GET /ws", rl.HandleWS)

	return &Server{
		cfg:    cfg,
		logger: lg,
		http: &http.Server{
			Addr:    cfg.Server.Port,
			Handler: mux,
		},
	}
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.http.Addr, "env", s.cfg.Server.Environment)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
