package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nlopes/slack"
)

// HandleInteractive receives dialog submissions and block actions. The
// payload arrives form-encoded with the JSON callback under "payload".
func (s *Service) HandleInteractive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Unable to parse request", http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		http.Error(w, "Invalid interaction payload", http.StatusBadRequest)
		return
	}

	switch callback.Type {
	case slack.InteractionTypeDialogSubmission:
		s.handleDialogSubmission(r.Context(), callback)
	case slack.InteractionTypeBlockActions:
		s.handleBlockActions(callback)
	case slack.InteractionTypeInteractionMessage:
		s.handleInteractiveMessage(callback)
	default:
		logger.Warn("unhandled interaction type", "type", string(callback.Type))
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Service) handleDialogSubmission(ctx context.Context, callback slack.InteractionCallback) {
	client, err := s.clientForTeam(callback.Team.ID)
	if err != nil {
		logger.Error("cannot handle dialog submission", "team", callback.Team.ID, "err", err)
		return
	}

	switch callback.CallbackID {
	case mensaDialogCallbackID:
		if err := s.sendMensaMenu(ctx, client, callback); err != nil {
			logger.Error("dialog submission failed", "team", callback.Team.ID, "err", err)
			if _, _, err := client.PostText(callback.Channel.ID, "Something went wrong: "+err.Error()); err != nil {
				logger.Error("failed to send error reply", "team", callback.Team.ID, "err", err)
			}
		}
	default:
		if _, _, err := client.PostText(callback.Channel.ID, unknownDialogMessage); err != nil {
			logger.Error("failed to send reply", "team", callback.Team.ID, "err", err)
		}
	}
}

// sendMensaMenu resolves the submitted selection, fetches and renders the
// menu, posts the interim loading message, deletes it and posts the menu.
func (s *Service) sendMensaMenu(ctx context.Context, client SlackClient, callback slack.InteractionCallback) error {
	settings, err := s.store.TeamSettingsFor(callback.Team.ID)
	if err != nil {
		return err
	}

	mensaID := callback.Submission["mensa"]
	day, err := time.Parse("2006-1-2", callback.Submission["date"])
	if err != nil {
		return fmt.Errorf("failed to parse submitted date %q: %w", callback.Submission["date"], err)
	}

	weekday, err := mealWeekday(day)
	if err != nil {
		return err
	}

	meals, err := s.mensa.Meals(ctx, mensaID, weekday)
	if err != nil {
		return err
	}

	blocks := s.renderMenu(ctx, meals, settings.Language, day)

	loadingChannel, loadingTimestamp, err := client.PostText(callback.Channel.ID, loadingMessage)
	if err != nil {
		return err
	}
	if _, _, err := client.DeleteMessage(loadingChannel, loadingTimestamp); err != nil {
		logger.Warn("failed to delete loading message", "team", callback.Team.ID, "err", err)
	}

	_, _, err = client.PostBlocks(callback.Channel.ID, blocks)
	return err
}

// handleBlockActions only extracts the selected value for now. The event is
// acknowledged and logged; follow-up behavior continues through the dialog
// flow instead.
func (s *Service) handleBlockActions(callback slack.InteractionCallback) {
	if len(callback.ActionCallback.BlockActions) == 0 {
		logger.Warn("block action callback without actions", "team", callback.Team.ID)
		return
	}
	action := callback.ActionCallback.BlockActions[0]

	switch action.BlockID {
	case blockIDMensaDate:
		logger.Info("date action received", "team", callback.Team.ID, "selected", action.SelectedDate)
	case blockIDMensaLocation:
		logger.Info("location action received", "team", callback.Team.ID, "selected", action.SelectedOption.Value)
	default:
		logger.Warn("unhandled block action", "team", callback.Team.ID, "block", action.BlockID)
	}
}

func (s *Service) handleInteractiveMessage(callback slack.InteractionCallback) {
	text := callback.OriginalMessage.Text
	if text == "" {
		text = "no message"
	}
	logger.Info("interactive message", "team", callback.Team.ID, "text", text)

	client, err := s.clientForTeam(callback.Team.ID)
	if err != nil {
		logger.Error("cannot reply to interactive message", "team", callback.Team.ID, "err", err)
		return
	}
	if _, _, err := client.PostText(callback.Channel.ID, "jo"); err != nil {
		logger.Error("failed to send reply", "team", callback.Team.ID, "err", err)
	}
}
