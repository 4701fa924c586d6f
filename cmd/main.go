package main

import (
	"context"
	"net/http"
	"os"

	log "github.com/inconshreveable/log15"

	"mensaplan/api"
	"mensaplan/config"
	"mensaplan/db"
	"mensaplan/mensa"
	"mensaplan/qwant"
	"mensaplan/tunnel"
	"mensaplan/utils"
)

func main() {
	logger := log.New("module", "main")

	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		logger.Crit("invalid configuration", "err", err)
		os.Exit(1)
	}

	if err := utils.InitCrypto(cfg.EncryptionKey); err != nil {
		logger.Crit("failed to initialize encryption", "err", err)
		os.Exit(1)
	}

	if cfg.RedisURL != "" {
		if err := utils.InitRedis(cfg.RedisURL); err != nil {
			logger.Crit("failed to connect to redis", "err", err)
			os.Exit(1)
		}
	}

	store, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Crit("failed to connect to database", "err", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	service := api.NewService(cfg, store, mensa.New(cfg.MensaBaseURL), qwant.New(cfg.QwantBaseURL))
	router := SetupRouter(service, cfg.SlackSigningSecret)

	if cfg.TunnelDomain != "" {
		listener, url, err := tunnel.Listen(context.Background(), cfg.TunnelDomain)
		if err != nil {
			logger.Crit("failed to open tunnel", "err", err)
			os.Exit(1)
		}
		logger.Info("Server reachable through tunnel", "url", url)
		if err := http.Serve(listener, router); err != nil {
			logger.Crit("server failed", "err", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("Server running", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Crit("server failed", "err", err)
		os.Exit(1)
	}
}
