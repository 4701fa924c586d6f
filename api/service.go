package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/nlopes/slack"

	"mensaplan/config"
	"mensaplan/db"
	"mensaplan/mensa"
	"mensaplan/qwant"
	"mensaplan/utils"
)

var logger = log.New("module", "api")

// SlackClient is the narrow reply surface the dispatcher needs. Nothing
// below the dispatcher ever talks to the user.
type SlackClient interface {
	PostText(channelID, text string) (string, string, error)
	PostBlocks(channelID string, blocks []slack.Block) (string, string, error)
	OpenDialog(triggerID string, dialog slack.Dialog) error
	DeleteMessage(channelID, timestamp string) (string, string, error)
}

type webClient struct {
	api *slack.Client
}

func (c webClient) PostText(channelID, text string) (string, string, error) {
	return c.api.PostMessage(channelID, slack.MsgOptionText(text, false))
}

func (c webClient) PostBlocks(channelID string, blocks []slack.Block) (string, string, error) {
	return c.api.PostMessage(channelID, slack.MsgOptionBlocks(blocks...))
}

func (c webClient) OpenDialog(triggerID string, dialog slack.Dialog) error {
	return c.api.OpenDialog(triggerID, dialog)
}

func (c webClient) DeleteMessage(channelID, timestamp string) (string, string, error) {
	return c.api.DeleteMessage(channelID, timestamp)
}

// Service wires the store and the upstream gateways into the Slack-facing
// handlers. One instance is built in main and shared by every request.
type Service struct {
	cfg   *config.Config
	store *db.Store
	mensa *mensa.Client
	qwant *qwant.Client

	clientFor    func(token string) SlackClient
	exchangeCode func(code string) (*OAuthAccessResponse, error)
	now          func() time.Time
}

func NewService(cfg *config.Config, store *db.Store, mensaClient *mensa.Client, qwantClient *qwant.Client) *Service {
	s := &Service{
		cfg:   cfg,
		store: store,
		mensa: mensaClient,
		qwant: qwantClient,
		now:   time.Now,
	}
	s.clientFor = func(token string) SlackClient {
		return webClient{api: slack.New(token)}
	}
	s.exchangeCode = s.slackOAuthAccess
	return s
}

// clientForTeam resolves the stored credentials for a team and builds a
// reply client from them.
func (s *Service) clientForTeam(teamID string) (SlackClient, error) {
	encrypted, err := s.store.TokenForTeam(teamID)
	if err != nil {
		return nil, err
	}
	token, err := utils.Decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token for team %s: %w", teamID, err)
	}
	return s.clientFor(token), nil
}

func (s *Service) slackOAuthAccess(code string) (*OAuthAccessResponse, error) {
	resp, err := http.PostForm(slackOAuthTokenURL, url.Values{
		"code":          {code},
		"client_id":     {s.cfg.SlackClientID},
		"client_secret": {s.cfg.SlackClientSecret},
		"redirect_uri":  {s.cfg.BaseURL + slackCallbackEndpoint},
	})
	if err != nil {
		return nil, fmt.Errorf("oauth token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth response body: %w", err)
	}

	var oauthResp OAuthAccessResponse
	if err := json.Unmarshal(body, &oauthResp); err != nil {
		return nil, fmt.Errorf("failed to parse oauth response: %w", err)
	}
	if !oauthResp.Ok {
		return nil, fmt.Errorf("slack oauth error: %s", oauthResp.Error)
	}
	return &oauthResp, nil
}

func HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
