package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	analyticsAPI "lotostats_backend/internal/api/analytics"
	gamesAPI "lotostats_backend/internal/api/games"
	generateAPI "lotostats_backend/internal/api/generate"
	historyAPI "lotostats_backend/internal/api/history"
	statisticsAPI "lotostats_backend/internal/api/statistics"
	syncAPI "lotostats_backend/internal/api/sync"
	"lotostats_backend/internal/config"
	"lotostats_backend/internal/config/env"
	"lotostats_backend/internal/repository"
	"lotostats_backend/internal/repository/draw_repo"
	"lotostats_backend/internal/service"
	"lotostats_backend/internal/service/analytics"
	"lotostats_backend/internal/service/export"
	"lotostats_backend/internal/service/generator"
	"lotostats_backend/internal/service/history"
	"lotostats_backend/internal/service/statistics"
	syncserv "lotostats_backend/internal/service/sync"
	"lotostats_backend/pkg/caixa"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Game profiles
	gameCfgs []config.GameConfig
	registry gamesAPI.Registry

	// Repositories
	drawRepo repository.DrawRepository

	// Results provider
	providerCfg config.ProviderConfig
	caixaClient *caixa.Client

	// Services
	historyServ    service.HistoryService
	generatorServ  service.GeneratorService
	analyticsServ  service.AnalyticsService
	statisticsServ service.StatisticsService
	syncServ       service.SyncService
	exportServ     service.ExportService

	// Handlers
	gamesHand      *gamesAPI.Handler
	historyHand    *historyAPI.Handler
	generateHand   *generateAPI.Handler
	analyticsHand  *analyticsAPI.Handler
	statisticsHand *statisticsAPI.Handler
	syncHand       *syncAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) GameCfgs() []config.GameConfig {
	if sp.gameCfgs == nil {
		cfg, err := env.NewGameConfigsFromYAML("games.yaml")
		if err != nil {
			panic("failed to get game configs: " + err.Error())
		}
		sp.gameCfgs = cfg
	}
	return sp.gameCfgs
}

func (sp *ServiceProvider) Registry() gamesAPI.Registry {
	if sp.registry == nil {
		sp.registry = gamesAPI.NewRegistry(sp.GameCfgs())
	}
	return sp.registry
}

func (sp *ServiceProvider) DrawRepository(ctx context.Context) repository.DrawRepository {
	if sp.drawRepo == nil {
		sp.drawRepo = draw_repo.NewDrawRepository(sp.DBClient(ctx))
	}
	return sp.drawRepo
}

func (sp *ServiceProvider) ProviderCfg() config.ProviderConfig {
	if sp.providerCfg == nil {
		cfg, err := env.NewProviderConfig()
		if err != nil {
			panic("failed to get provider config: " + err.Error())
		}
		sp.providerCfg = cfg
	}
	return sp.providerCfg
}

func (sp *ServiceProvider) CaixaClient() *caixa.Client {
	if sp.caixaClient == nil {
		sp.caixaClient = caixa.NewClient(sp.ProviderCfg().BaseURL(), sp.ProviderCfg().Timeout())
	}
	return sp.caixaClient
}

func (sp *ServiceProvider) HistoryService(ctx context.Context) service.HistoryService {
	if sp.historyServ == nil {
		sp.historyServ = history.NewHistoryService(sp.DrawRepository(ctx), 0)
	}
	return sp.historyServ
}

func (sp *ServiceProvider) GeneratorService() service.GeneratorService {
	if sp.generatorServ == nil {
		sp.generatorServ = generator.NewGeneratorService(nil)
	}
	return sp.generatorServ
}

func (sp *ServiceProvider) AnalyticsService(ctx context.Context) service.AnalyticsService {
	if sp.analyticsServ == nil {
		sp.analyticsServ = analytics.NewAnalyticsService(sp.DrawRepository(ctx))
	}
	return sp.analyticsServ
}

func (sp *ServiceProvider) StatisticsService(ctx context.Context) service.StatisticsService {
	if sp.statisticsServ == nil {
		sp.statisticsServ = statistics.NewStatisticsService(sp.DrawRepository(ctx), nil)
	}
	return sp.statisticsServ
}

func (sp *ServiceProvider) SyncService(ctx context.Context) service.SyncService {
	if sp.syncServ == nil {
		sp.syncServ = syncserv.NewSyncService(
			sp.DrawRepository(ctx),
			sp.CaixaClient(),
			sp.HistoryService(ctx),
			sp.TXManager(ctx),
		)
	}
	return sp.syncServ
}

func (sp *ServiceProvider) ExportService(ctx context.Context) service.ExportService {
	if sp.exportServ == nil {
		sp.exportServ = export.NewExportService(sp.DrawRepository(ctx))
	}
	return sp.exportServ
}

func (sp *ServiceProvider) GamesHandler() *gamesAPI.Handler {
	if sp.gamesHand == nil {
		sp.gamesHand = gamesAPI.NewHandler(gamesAPI.HandlerDeps{Games: sp.Registry()})
	}
	return sp.gamesHand
}

func (sp *ServiceProvider) HistoryHandler(ctx context.Context) *historyAPI.Handler {
	if sp.historyHand == nil {
		sp.historyHand = historyAPI.NewHandler(historyAPI.HandlerDeps{
			Games:  sp.Registry(),
			Serv:   sp.HistoryService(ctx),
			Export: sp.ExportService(ctx),
		})
	}
	return sp.historyHand
}

func (sp *ServiceProvider) GenerateHandler(ctx context.Context) *generateAPI.Handler {
	if sp.generateHand == nil {
		sp.generateHand = generateAPI.NewHandler(generateAPI.HandlerDeps{
			Games:   sp.Registry(),
			Serv:    sp.GeneratorService(),
			History: sp.HistoryService(ctx),
			Export:  sp.ExportService(ctx),
		})
	}
	return sp.generateHand
}

func (sp *ServiceProvider) AnalyticsHandler(ctx context.Context) *analyticsAPI.Handler {
	if sp.analyticsHand == nil {
		sp.analyticsHand = analyticsAPI.NewHandler(analyticsAPI.HandlerDeps{
			Games: sp.Registry(),
			Serv:  sp.AnalyticsService(ctx),
		})
	}
	return sp.analyticsHand
}

func (sp *ServiceProvider) StatisticsHandler(ctx context.Context) *statisticsAPI.Handler {
	if sp.statisticsHand == nil {
		sp.statisticsHand = statisticsAPI.NewHandler(statisticsAPI.HandlerDeps{
			Games: sp.Registry(),
			Serv:  sp.StatisticsService(ctx),
		})
	}
	return sp.statisticsHand
}

func (sp *ServiceProvider) SyncHandler(ctx context.Context) *syncAPI.Handler {
	if sp.syncHand == nil {
		sp.syncHand = syncAPI.NewHandler(syncAPI.HandlerDeps{
			Games: sp.Registry(),
			Serv:  sp.SyncService(ctx),
		})
	}
	return sp.syncHand
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

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/games", sp.GamesHandler().List)

		historyHandler := sp.HistoryHandler(ctx)
		generateHandler := sp.GenerateHandler(ctx)
		analyticsHandler := sp.AnalyticsHandler(ctx)
		statisticsHandler := sp.StatisticsHandler(ctx)
		syncHandler := sp.SyncHandler(ctx)

		r.Route("/{game}", func(rr chi.Router) {
			rr.Get("/history", historyHandler.List)
			rr.Post("/history", historyHandler.Add)
			rr.Get("/kpis", historyHandler.KPIs)
			rr.Get("/export", historyHandler.Export)

			rr.Route("/analytics", func(ar chi.Router) {
				ar.Get("/frequency", analyticsHandler.Frequency)
				ar.Get("/delay", analyticsHandler.Delay)
				ar.Get("/parity", analyticsHandler.Parity)
				ar.Get("/sum", analyticsHandler.Sum)
				ar.Get("/pairs", analyticsHandler.Pairs)
				ar.Get("/trios", analyticsHandler.Trios)
				ar.Post("/compare", analyticsHandler.Compare)
			})

			rr.Get("/statistics", statisticsHandler.Summary)
			rr.Get("/statistics/montecarlo", statisticsHandler.MonteCarlo)

			rr.Post("/generate", generateHandler.Generate)
			rr.Post("/export", generateHandler.Export)
			rr.Post("/sync", syncHandler.Sync)
		})

		sp.router = r
	}

	return sp.router
}
