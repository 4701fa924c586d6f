package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/nlopes/slack"
)

// HandleSlashCommand is the entry point for the /mensaplan command.
func (s *Service) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		http.Error(w, "Invalid slash command", http.StatusBadRequest)
		return
	}

	if err := s.dispatchCommand(r.Context(), cmd); err != nil {
		logger.Error("slash command failed", "team", cmd.TeamID, "text", cmd.Text, "err", err)
		s.replyError(cmd.TeamID, cmd.ChannelID, err)
	}
	w.WriteHeader(http.StatusOK)
}

// dispatchCommand routes on the first whitespace token. Unknown input never
// hard-fails; it degrades to the unknown notice plus the help text.
func (s *Service) dispatchCommand(ctx context.Context, cmd slack.SlashCommand) error {
	client, err := s.clientForTeam(cmd.TeamID)
	if err != nil {
		return err
	}

	messages := strings.Split(cmd.Text, " ")
	switch messages[0] {
	case "", "help":
		_, _, err := client.PostText(cmd.ChannelID, helpMessage)
		return err
	case "info":
		_, _, err := client.PostText(cmd.ChannelID, infoMessage)
		return err
	case "location":
		locationID := ""
		if len(messages) > 1 {
			locationID = messages[1]
		}
		dialog, err := s.buildMensaDialog(ctx, cmd.TeamID, locationID)
		if err != nil {
			return err
		}
		return client.OpenDialog(cmd.TriggerID, dialog)
	default:
		if _, _, err := client.PostText(cmd.ChannelID, unknownCommandMessage); err != nil {
			return err
		}
		_, _, err := client.PostText(cmd.ChannelID, helpMessage)
		return err
	}
}

// replyError is the single place a component failure becomes a user-visible
// chat message.
func (s *Service) replyError(teamID, channelID string, cause error) {
	client, err := s.clientForTeam(teamID)
	if err != nil {
		logger.Error("cannot send error reply", "team", teamID, "err", err)
		return
	}
	if _, _, err := client.PostText(channelID, "Something went wrong: "+cause.Error()); err != nil {
		logger.Error("failed to send error reply", "team", teamID, "err", err)
	}
}
