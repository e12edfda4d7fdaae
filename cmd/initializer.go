package main

import (
	"database/sql"
	"log"

	"github.com/redis/go-redis/v9"

	"lionlease/internal/catalog"
	"lionlease/internal/config"
	"lionlease/internal/handlers"
	"lionlease/internal/repositories"
	"lionlease/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB
	catalog  *catalog.Catalog

	listingHandler     *handlers.ListingHandler
	preferencesHandler *handlers.PreferencesHandler
	savedHandler       *handlers.SavedListingHandler
	viewedHandler      *handlers.ViewedListingHandler
	groupHandler       *handlers.GroupHandler
	inviteHandler      *handlers.InviteHandler
	usageHandler       *handlers.FilterUsageHandler
	assistantHandler   *handlers.AssistantHandler
}

func initializeApp(cfg config.Config, db *sql.DB, errorLog, infoLog *log.Logger) (*application, error) {
	cat, err := catalog.Load(cfg.Listings.Path, cfg.Listings.Seed)
	if err != nil {
		return nil, err
	}
	infoLog.Printf("Loaded %d listings from %s", cat.Len(), cfg.Listings.Path)

	var usageCache *repositories.UsageCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		usageCache = repositories.NewUsageCache(rdb)
	}

	// Repositories
	preferencesRepo := repositories.PreferencesRepository{DB: db}
	savedRepo := repositories.SavedListingRepository{DB: db}
	viewedRepo := repositories.ViewedListingRepository{DB: db}
	groupRepo := repositories.GroupRepository{DB: db}
	inviteRepo := repositories.InviteRepository{DB: db}
	usageRepo := repositories.FilterUsageRepository{DB: db}

	// Services
	listingService := &services.ListingService{Catalog: cat}
	preferencesService := &services.PreferencesService{PreferencesRepo: &preferencesRepo}
	savedService := &services.SavedListingService{SavedRepo: &savedRepo}
	viewedService := &services.ViewedListingService{ViewedRepo: &viewedRepo}
	groupService := &services.GroupService{GroupRepo: &groupRepo}
	inviteService := &services.InviteService{
		InviteRepo:  &inviteRepo,
		GroupRepo:   &groupRepo,
		Email:       services.NewResendClient(nil, cfg.Email.APIKey, cfg.Email.From),
		FrontendURL: cfg.App.FrontendURL,
		ErrorLog:    errorLog,
	}
	usageService := &services.FilterUsageService{
		UsageRepo: &usageRepo,
		Cache:     usageCache,
		ErrorLog:  errorLog,
	}
	assistantService := &services.AssistantService{
		Catalog: cat,
		Client:  services.NewGeminiClient(nil, cfg.AI.APIKey, cfg.AI.Model),
	}

	// Handlers
	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		db:       db,
		catalog:  cat,

		listingHandler:     &handlers.ListingHandler{Service: listingService},
		preferencesHandler: &handlers.PreferencesHandler{Service: preferencesService},
		savedHandler:       &handlers.SavedListingHandler{Service: savedService},
		viewedHandler:      &handlers.ViewedListingHandler{Service: viewedService},
		groupHandler:       &handlers.GroupHandler{Service: groupService},
		inviteHandler:      &handlers.InviteHandler{Service: inviteService},
		usageHandler:       &handlers.FilterUsageHandler{Service: usageService},
		assistantHandler:   &handlers.AssistantHandler{Service: assistantService},
	}, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
