package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mensaplan/api"
)

func SetupRouter(service *api.Service, signingSecret string) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", api.HandleHealthCheck)

	r.Get("/slack/install", service.HandleSlackInstall)
	r.Get("/slack/oauth/callback", service.HandleOAuthCallback)

	verified := r.With(api.VerifySlackSignature(signingSecret))
	verified.Post("/slack/commands", service.HandleSlashCommand)
	verified.Post("/slack/interactive", service.HandleInteractive)

	return r
}
