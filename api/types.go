package api

// OAuthAccessResponse is Slack's answer to the oauth.access code exchange
// for the classic commands+bot scope pair.
type OAuthAccessResponse struct {
	Ok          bool     `json:"ok"`
	AccessToken string   `json:"access_token"`
	Scope       string   `json:"scope"`
	TeamName    string   `json:"team_name"`
	TeamID      string   `json:"team_id"`
	Bot         OAuthBot `json:"bot"`
	Error       string   `json:"error,omitempty"`
}

type OAuthBot struct {
	BotUserID      string `json:"bot_user_id"`
	BotAccessToken string `json:"bot_access_token"`
}
