package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UniStayTeam/resident-service/internal/adapter/badgerstore"
	"github.com/UniStayTeam/resident-service/internal/adapter/docstore"
	"github.com/UniStayTeam/resident-service/internal/adapter/events"
	"github.com/UniStayTeam/resident-service/internal/adapter/kvrepo"
	"github.com/UniStayTeam/resident-service/internal/adapter/redisstore"
	"github.com/UniStayTeam/resident-service/internal/app/config"
	"github.com/UniStayTeam/resident-service/internal/auth"
	"github.com/UniStayTeam/resident-service/internal/catalog"
	httpport "github.com/UniStayTeam/resident-service/internal/port/http"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/service"
	"github.com/UniStayTeam/resident-service/internal/storage"
)

type App struct {
	cfg    *config.Config
	log    logger.Logger
	store  storage.Store
	server *httpport.Server
}

func New(cfg *config.Config) (*App, error) {
	log, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Infof("starting resident-service, env: %s", cfg.Env)

	store, err := newStore(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	publisher, err := newPublisher(cfg, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	var docs service.DocumentStore
	if cfg.DocumentStore.Enabled {
		minioStore, err := docstore.NewMinioStore(context.Background(), cfg.DocumentStore, log)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to initialize document store: %w", err)
		}
		docs = minioStore
	}

	listings := catalog.Listings()

	searchRepo := kvrepo.NewSearchStateRepository(store)
	draftRepo := kvrepo.NewDraftRepository(store)
	appRepo := kvrepo.NewApplicationRepository(store)
	convRepo := kvrepo.NewConversationRepository(store)
	offerRepo := kvrepo.NewOfferRepository(store)
	statusRepo := kvrepo.NewStatusRepository(store)
	profileRepo := kvrepo.NewProfileRepository(store)
	favoriteRepo := kvrepo.NewFavoriteRepository(store)

	searchSvc := service.NewSearchService(listings, searchRepo, log)
	appSvc := service.NewApplicationService(listings, draftRepo, appRepo, docs, publisher, log, cfg.Drafts.TTL)
	messagingSvc := service.NewMessagingService(convRepo, publisher, log)
	offerSvc := service.NewOfferService(offerRepo, statusRepo, publisher, log)
	profileSvc := service.NewProfileService(listings, profileRepo, favoriteRepo, log)

	session := auth.NewSession(store, cfg.Session.JWTSecret, log)

	handler := httpport.NewHandler(listings, searchSvc, appSvc, messagingSvc, offerSvc, profileSvc, session, log)
	router := httpport.NewRouter(handler)
	server := httpport.NewServer(log, cfg.HTTPServer.Addr, cfg.HTTPServer.ReadTimeout, cfg.HTTPServer.WriteTimeout, router)

	return &App{
		cfg:    cfg,
		log:    log,
		store:  store,
		server: server,
	}, nil
}

func newStore(cfg *config.Config, log logger.Logger) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "redis":
		client, err := redisstore.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Infof("using redis storage at %s", cfg.Redis.Addr)
		return redisstore.NewStore(client), nil
	default:
		log.Infof("using badger storage at %s", cfg.Storage.Path)
		return badgerstore.New(badgerstore.Config{Path: cfg.Storage.Path, SyncWrites: true})
	}
}

func newPublisher(cfg *config.Config, log logger.Logger) (events.Publisher, error) {
	if !cfg.NATS.Enabled {
		return events.NewNoopPublisher(), nil
	}
	conn, err := events.NewConnection(cfg.NATS)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Infof("connected to NATS at %s", cfg.NATS.URL)
	return events.NewNATSPublisher(conn)
}

func (a *App) Run() error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		a.log.Infof("received signal %v, shutting down", sig)
	case err := <-serveErr:
		if err != nil {
			a.store.Close()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("HTTP server shutdown error: %v", err)
	}
	if err := a.store.Close(); err != nil {
		a.log.Errorf("storage close error: %v", err)
	}

	a.log.Info("resident-service stopped")
	return nil
}
