package app

import (
	"context"
	slotAPI "fruit_slots/internal/api/slot"
	"fruit_slots/internal/api/ws"
	"fruit_slots/internal/config"
	"fruit_slots/internal/config/env"
	"fruit_slots/internal/logger"
	"fruit_slots/internal/metrics"
	appMiddleware "fruit_slots/internal/middleware"
	"fruit_slots/internal/repository"
	"fruit_slots/internal/repository/session_repo"
	"fruit_slots/internal/repository/stats_repo"
	"fruit_slots/internal/service"
	"fruit_slots/internal/service/slot"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const configPath = "config.yaml"

type ServiceProvider struct {
	// Logging
	loggerCfg config.LoggerConfig
	log       *zap.Logger

	// Sessions
	sessionCfg  config.SessionConfig
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository

	// Auth
	jwtCfg config.JWTConfig

	// Slot bits
	gameCfg   config.GameConfig
	animCfg   config.AnimationConfig
	generator *slot.Generator
	hub       *ws.Hub
	slotServ  service.SlotService
	slotHand  *slotAPI.Handler

	// Metrics
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		sp.log = logger.New(sp.LoggerCfg())
	}
	return sp.log
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.SessionCfg().TTL(), sp.SessionCfg().CleanupInterval())
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) AnimationCfg() config.AnimationConfig {
	if sp.animCfg == nil {
		cfg, err := env.NewAnimationConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get animation config: " + err.Error())
		}
		sp.animCfg = cfg
	}
	return sp.animCfg
}

func (sp *ServiceProvider) Generator() *slot.Generator {
	if sp.generator == nil {
		sp.generator = slot.NewGenerator()
	}
	return sp.generator
}

func (sp *ServiceProvider) Hub() *ws.Hub {
	if sp.hub == nil {
		sp.hub = ws.NewHub(sp.Logger())
	}
	return sp.hub
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New(sp.Registry(), sp.SessionRepository().Count, sp.StatsRepository().Stats)
	}
	return sp.metrics
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(slot.Deps{
			Repo:      sp.SessionRepository(),
			StatsRepo: sp.StatsRepository(),
			Generator: sp.Generator(),
			Display:   sp.Hub(),
			Observer:  sp.Metrics(),
			Game:      sp.GameCfg(),
			Animation: sp.AnimationCfg(),
			Log:       sp.Logger().With(zap.String("component", "service/slot")),
		})
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv:      sp.SlotService(),
			Streamer:  sp.Hub(),
			SecretKey: sp.JWTCfg().AccessTokenSecretKey(),
			TokenTTL:  sp.JWTCfg().AccessTokenDuration(),
			Log:       sp.Logger().With(zap.String("component", "api/slot")),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(_ context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(appMiddleware.Logger(sp.Logger()))
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		slotHandler := sp.SlotHandler()
		auth := appMiddleware.Auth(sp.JWTCfg().AccessTokenSecretKey())

		// Session endpoints
		r.Post("/session", slotHandler.CreateSession)
		r.With(auth).Delete("/session", slotHandler.CloseSession)

		// Slot endpoints
		r.Get("/slot/stats", slotHandler.Stats)
		r.Route("/slot", func(rr chi.Router) {
			rr.Use(auth)
			rr.Get("/state", slotHandler.State)
			rr.Post("/spin", slotHandler.Spin)
			rr.Post("/bet", slotHandler.Bet)
			rr.Get("/ws", slotHandler.Stream)
		})

		sp.router = r
	}

	return sp.router
}
