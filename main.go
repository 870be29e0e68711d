package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "voxia/internal/config"
	api "voxia/internal/http"
	"voxia/internal/repositories"
	"voxia/internal/storage"
	"voxia/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := utils.Logger()
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := intconfig.ConnectDB(ctx, env)
	cancel()
	if err != nil {
		log.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = store.Close(ctx)
	}()

	userRepo := repositories.NewUserRepository(store.DB)
	deps := api.NewDeps(
		env,
		store,
		repositories.NewTravelRequestRepository(store.DB),
		userRepo,
		userRepo,
		storage.NewGridFSBlobStore(store.Bucket),
		repositories.NewPdfMetadataRepository(store.DB),
		repositories.NewChatbotRepository(store.DB),
		gomail.NewDialer(env.SMTPHost, env.SMTPPort, env.SMTPUser, env.SMTPPass),
	)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
