package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/herizorandria/go-link-gate/internal/app/handler"
	"github.com/herizorandria/go-link-gate/internal/app/server"
	"github.com/herizorandria/go-link-gate/internal/app/service"
	"github.com/herizorandria/go-link-gate/internal/config"
	"github.com/herizorandria/go-link-gate/internal/geo"
	"github.com/herizorandria/go-link-gate/internal/logger"
	"github.com/herizorandria/go-link-gate/internal/repository"
	"github.com/herizorandria/go-link-gate/internal/rules"
	"github.com/herizorandria/go-link-gate/internal/storage"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()
	if err := options.Validate(); err != nil {
		panic(err)
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	var store storage.Storage
	if options.DatabaseDSN != "" {
		zapLogger.Info("using db", zap.String("dsn", options.DatabaseDSN))
		db := repository.InitDB(options.DatabaseDSN, options.MigrationsPath, zapLogger)
		defer db.Close()
		store = repository.CreateLinkRepository(db, zapLogger)
	} else {
		zapLogger.Info("using in memory storage")
		memory, err := storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
		store = memory
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	classifier := rules.NewClassifier(rules.NewCache(options.BotCacheTTL), options.DiversionURL)
	geoClient := geo.NewClient(options.GeoPrimaryURL, options.GeoFallbackURL, options.GeoTimeout, zapLogger)
	gate := service.NewPasswordGate(options.SecretKey, options.UnlockTTL)

	recorder := service.NewClickRecorder(store, zapLogger, options.ClickBuffer)
	go recorder.Run(ctx)

	access := service.NewAccessController(store, classifier, geoClient, recorder, gate, zapLogger, options.DecoyURL)
	links := service.NewLink(store, gate, zapLogger, options.ResultHostname)

	resolveHandler := handler.NewResolve(access, gate, zapLogger, options.DiversionURL)
	linkHandler := handler.NewLinkHandler(links, zapLogger, options.ResultHostname)

	r := server.Init(resolveHandler, linkHandler, zapLogger)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:  autocert.DirCache("cache-dir"),
			Prompt: autocert.AcceptTOS,
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", options.Port))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", options.Port))
		if err := http.ListenAndServe(options.Port, r); err != nil {
			panic(err)
		}
	}
}
