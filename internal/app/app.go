package app

import (
	"context"
	"errors"
	"fruit_slots/internal/config"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	envErr := config.Load(".env")
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Warn("error loading .env file", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpCfg := s.ServiceProvider.HTTPCfg()
	srv := &http.Server{
		Addr:        httpCfg.Address(),
		Handler:     s.ServiceProvider.Router(ctx),
		ReadTimeout: httpCfg.ReadTimeout(),
		IdleTimeout: httpCfg.IdleTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("address", httpCfg.Address()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	// Даем идущим спинам доиграть анимацию
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
