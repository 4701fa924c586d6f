package api

import (
	"errors"
	"fmt"
	"net/http"

	"mensaplan/db"
	"mensaplan/utils"
)

// HandleSlackInstall redirects the browser to Slack's authorize page.
func (s *Service) HandleSlackInstall(w http.ResponseWriter, r *http.Request) {
	redirect := fmt.Sprintf(
		"%s?client_id=%s&scope=%s&redirect_uri=%s%s",
		slackOAuthAuthorizeURL,
		s.cfg.SlackClientID,
		slackOAuthScope,
		s.cfg.BaseURL,
		slackCallbackEndpoint,
	)
	logger.Info("redirecting to Slack OAuth", "url", redirect)
	http.Redirect(w, r, redirect, http.StatusFound)
}

// HandleOAuthCallback exchanges the authorization code and registers the
// workspace. Registration is idempotent: an already-known team gets a
// warning response and its stored credentials stay untouched.
func (s *Service) HandleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return
	}

	oauthResp, err := s.exchangeCode(code)
	if err != nil {
		logger.Error("oauth exchange failed", "err", err)
		http.Error(w, "OAuth request failed", http.StatusInternalServerError)
		return
	}

	encryptedToken, err := utils.Encrypt(oauthResp.Bot.BotAccessToken)
	if err != nil {
		logger.Error("failed to encrypt access token", "team", oauthResp.TeamID, "err", err)
		http.Error(w, "Failed to store credentials", http.StatusInternalServerError)
		return
	}

	err = s.store.RegisterWorkspace(db.Workspace{
		TeamID:      oauthResp.TeamID,
		AccessToken: encryptedToken,
		BotUser:     oauthResp.Bot.BotUserID,
	})
	if errors.Is(err, db.ErrAlreadyRegistered) {
		logger.Warn("workspace already registered", "team", oauthResp.TeamID)
		http.Error(w, "Workspace already registered", http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error("failed to save workspace", "team", oauthResp.TeamID, "err", err)
		http.Error(w, "Failed to save workspace", http.StatusInternalServerError)
		return
	}

	logger.Info("installation successful", "team", oauthResp.TeamName, "teamID", oauthResp.TeamID)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Mensaplan installed successfully. You can now return to Slack."))
}
